package score

import "testing"

func TestLikelihood(t *testing.T) {
	cases := []struct {
		reports int
		want    int
	}{
		{0, 0},
		{1, 10},
		{3, 30},
		{5, 50},
		{6, 60},
		{10, 100},
		{11, 100},
		{1000, 100},
	}

	for _, tc := range cases {
		if got := Likelihood(tc.reports); got != tc.want {
			t.Fatalf("Likelihood(%d) = %d, want %d", tc.reports, got, tc.want)
		}
	}
}

func TestLikelihoodNegativeCountClampsToZero(t *testing.T) {
	if got := Likelihood(-4); got != 0 {
		t.Fatalf("Likelihood(-4) = %d, want 0", got)
	}
}

func TestLikelihoodMonotonic(t *testing.T) {
	previous := Likelihood(0)
	for count := 1; count <= 30; count++ {
		current := Likelihood(count)
		if current < previous {
			t.Fatalf("Likelihood decreased from %d to %d at count %d", previous, current, count)
		}
		previous = current
	}
}

func TestIsSpam(t *testing.T) {
	if IsSpam(Likelihood(3)) {
		t.Fatal("30 should not be spam")
	}
	if IsSpam(Likelihood(5)) {
		t.Fatal("exactly 50 should not be spam")
	}
	if !IsSpam(Likelihood(6)) {
		t.Fatal("60 should be spam")
	}
	if !IsSpam(Likelihood(100)) {
		t.Fatal("capped likelihood should be spam")
	}
}
