// Package score derives a bounded spam likelihood from a raw report count.
package score

const (
	perReport     = 10
	maxLikelihood = 100
	spamThreshold = 50
)

// Likelihood maps a non-negative report count to a 0-100 likelihood.
// Ten points per report, capped at 100.
func Likelihood(reportCount int) int {
	if reportCount <= 0 {
		return 0
	}
	likelihood := reportCount * perReport
	if likelihood > maxLikelihood {
		return maxLikelihood
	}
	return likelihood
}

// IsSpam reports whether a likelihood crosses the spam threshold.
// Exactly 50 is not spam.
func IsSpam(likelihood int) bool {
	return likelihood > spamThreshold
}
