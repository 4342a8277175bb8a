package scoring

import (
	"testing"

	"lumipath/internal/domain"
)

func TestBlendWeightsPreviousOverCurrent(t *testing.T) {
	prev := domain.Ratio{C: 50, L: 30, T: 20}
	cur := domain.Ratio{C: 20, L: 40, T: 40}

	got := Blend(prev, cur)

	want := domain.Ratio{C: 38, L: 34, T: 28}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestBlendIsIdempotentOnEqualInputs(t *testing.T) {
	prev := domain.Ratio{C: 54, L: 31, T: 15}

	if got := Blend(prev, prev); got != prev {
		t.Fatalf("expected blend of equal ratios to stay %+v, got %+v", prev, got)
	}
}

func TestBlendPreservesSumInvariant(t *testing.T) {
	cases := []struct {
		prev, cur domain.Ratio
	}{
		{domain.Ratio{C: 100, L: 0, T: 0}, domain.Ratio{C: 0, L: 0, T: 100}},
		{domain.Ratio{C: 33, L: 33, T: 34}, domain.Ratio{C: 34, L: 33, T: 33}},
		{domain.Ratio{C: 10, L: 80, T: 10}, domain.Ratio{C: 45, L: 10, T: 45}},
	}
	for _, tc := range cases {
		got := Blend(tc.prev, tc.cur)
		if got.Sum() != 100 {
			t.Fatalf("blend(%+v, %+v) = %+v, sum %d", tc.prev, tc.cur, got, got.Sum())
		}
		for _, a := range domain.Axes {
			if v := got.Get(a); v < 0 || v > 100 {
				t.Fatalf("blend(%+v, %+v) = %+v, axis %s out of range", tc.prev, tc.cur, got, a)
			}
		}
	}
}
