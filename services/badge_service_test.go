package services

import "testing"

func TestTopRatedEligible(t *testing.T) {
	cases := []struct {
		total int64
		avg   float64
		want  bool
	}{
		{0, 0, false},
		{4, 5.0, false},
		{5, 4.4, false},
		{5, 4.5, true},
		{10, 4.9, true},
		{100, 4.49, false},
	}
	for _, c := range cases {
		if got := TopRatedEligible(c.total, c.avg); got != c.want {
			t.Errorf("TopRatedEligible(%d, %.2f) = %v, want %v", c.total, c.avg, got, c.want)
		}
	}
}
