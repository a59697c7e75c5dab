package size

import "testing"

func TestFit4(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5k"},
		{9_960, "10k"},
		{15_000, "15k"},
		{999_999, "1.0M"},
		{37_000_000_000, "37G"},
		{2_000_000_000_000, "2.0T"},
	}
	for _, tc := range cases {
		got := Fit4(tc.in)
		if got != tc.want {
			t.Fatalf("Fit4(%d): expected %q, got %q", tc.in, tc.want, got)
		}
		if len(got) > 4 {
			t.Fatalf("Fit4(%d) exceeds four cells: %q", tc.in, got)
		}
	}
}
