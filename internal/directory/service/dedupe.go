package service

// candidate is a transient, unscored match produced by a single source query
// before deduplication.
type candidate struct {
	Name         string
	PhoneNumber  string
	IsRegistered bool
}

// mergeCandidates folds source batches into one list with unique phone
// numbers. Batches must arrive in priority order: prefix-matched users,
// prefix-matched contacts, substring-matched users, substring-matched
// contacts.
//
// The accumulator is keyed by phone number with an index map so a collision
// replaces in place: the first candidate for a number wins its position, and
// only a registered candidate may later replace an unregistered holder.
// An unregistered candidate never displaces anything.
func mergeCandidates(batches ...[]candidate) []candidate {
	merged := make([]candidate, 0)
	position := make(map[string]int)

	for _, batch := range batches {
		for _, c := range batch {
			at, seen := position[c.PhoneNumber]
			if !seen {
				position[c.PhoneNumber] = len(merged)
				merged = append(merged, c)
				continue
			}
			if c.IsRegistered && !merged[at].IsRegistered {
				merged[at] = c
			}
		}
	}

	return merged
}
