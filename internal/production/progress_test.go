package production

import "testing"

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		name     string
		produced int
		quantity int
		want     int
	}{
		{"not started", 0, 100, 0},
		{"half", 50, 100, 50},
		{"complete", 100, 100, 100},
		{"rounds down", 333, 1000, 33},
		{"rounds up", 667, 1000, 67},
		{"rounds half up", 1, 8, 13},
		{"zero quantity", 10, 0, 0},
		{"negative quantity", 10, -5, 0},
		{"overproduced caps", 150, 100, 100},
		{"negative produced floors", -5, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProgressPercent(tc.produced, tc.quantity)
			if got != tc.want {
				t.Fatalf("ProgressPercent(%d, %d) = %d, want %d", tc.produced, tc.quantity, got, tc.want)
			}
		})
	}
}
