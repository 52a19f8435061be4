package reminder

import (
	"testing"
	"time"
)

func TestCurrentThreshold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		elapsed time.Duration
		want    int
		reached bool
	}{
		{0, 0, false},
		{2 * time.Hour, 0, false},
		{3 * time.Hour, 3, true},
		{4 * time.Hour, 3, true},
		{24 * time.Hour, 24, true},
		{30 * time.Hour, 24, true},
		{47 * time.Hour, 24, true},
		{48 * time.Hour, 48, true},
		{96 * time.Hour, 96, true},
		{167 * time.Hour, 96, true},
		{168 * time.Hour, 168, true},
		{10000 * time.Hour, 168, true},
	}
	for _, tc := range cases {
		got, reached := currentThreshold(tc.elapsed)
		if got != tc.want || reached != tc.reached {
			t.Fatalf("currentThreshold(%v) = (%d, %v), want (%d, %v)",
				tc.elapsed, got, reached, tc.want, tc.reached)
		}
	}
}
