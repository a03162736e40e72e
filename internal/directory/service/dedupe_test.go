package service

import "testing"

func TestMergeCandidatesKeepsFirstSeen(t *testing.T) {
	merged := mergeCandidates(
		[]candidate{{Name: "Alice", PhoneNumber: "111", IsRegistered: true}},
		[]candidate{{Name: "Ally", PhoneNumber: "111", IsRegistered: false}},
	)

	if len(merged) != 1 {
		t.Fatalf("expected 1 result, got %d", len(merged))
	}
	if merged[0].Name != "Alice" {
		t.Fatalf("expected first-seen candidate to win, got %q", merged[0].Name)
	}
}

func TestMergeCandidatesRegisteredReplacesInPlace(t *testing.T) {
	merged := mergeCandidates(
		[]candidate{
			{Name: "Saved Spammer", PhoneNumber: "222", IsRegistered: false},
			{Name: "Bob", PhoneNumber: "333", IsRegistered: false},
		},
		[]candidate{{Name: "Real Owner", PhoneNumber: "222", IsRegistered: true}},
	)

	if len(merged) != 2 {
		t.Fatalf("expected 2 results, got %d", len(merged))
	}
	if merged[0].Name != "Real Owner" || !merged[0].IsRegistered {
		t.Fatalf("expected registered candidate to replace holder in place, got %+v", merged[0])
	}
	if merged[1].Name != "Bob" {
		t.Fatalf("expected later entries to keep their position, got %q", merged[1].Name)
	}
}

func TestMergeCandidatesUnregisteredNeverDisplaces(t *testing.T) {
	merged := mergeCandidates(
		[]candidate{{Name: "Owner", PhoneNumber: "444", IsRegistered: true}},
		[]candidate{{Name: "Nickname", PhoneNumber: "444", IsRegistered: false}},
	)

	if len(merged) != 1 {
		t.Fatalf("expected 1 result, got %d", len(merged))
	}
	if merged[0].Name != "Owner" || !merged[0].IsRegistered {
		t.Fatalf("expected registered holder to survive, got %+v", merged[0])
	}
}

func TestMergeCandidatesPreservesBatchOrder(t *testing.T) {
	merged := mergeCandidates(
		[]candidate{{Name: "Alice", PhoneNumber: "1", IsRegistered: true}},
		[]candidate{{Name: "Albert", PhoneNumber: "2", IsRegistered: false}},
		[]candidate{{Name: "Carlalice", PhoneNumber: "3", IsRegistered: true}},
	)

	want := []string{"Alice", "Albert", "Carlalice"}
	if len(merged) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(merged))
	}
	for i, name := range want {
		if merged[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, merged[i].Name)
		}
	}
}

func TestMergeCandidatesEmptyInput(t *testing.T) {
	merged := mergeCandidates(nil, []candidate{}, nil)
	if merged == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(merged) != 0 {
		t.Fatalf("expected no results, got %d", len(merged))
	}
}
