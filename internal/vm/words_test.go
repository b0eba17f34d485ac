package vm

import "testing"

func TestWordArithmetic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		a, b     Word
		add, sub Word
	}{
		{"zero", 0, 0, 0, 0},
		{"positive", 2, 3, 5, -1},
		{"overflow", 32767, 1, -32768, 32766},
		{"underflow", -32768, -1, 32767, -32767},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Add(tc.b); got != tc.add {
				t.Errorf("Add: got %d, want %d", got, tc.add)
			}

			if got := tc.a.Sub(tc.b); got != tc.sub {
				t.Errorf("Sub: got %d, want %d", got, tc.sub)
			}
		})
	}
}

func TestWordNeg(t *testing.T) {
	t.Parallel()

	for _, w := range []Word{0, 1, -1, 32767, -32768, 100, -100} {
		if got := w.Neg().Neg(); got != w {
			t.Errorf("Neg(Neg(%d)) = %d, want %d", w, got, w)
		}
	}

	// -32768 negates to itself: there is no positive 32768 in 16 bits.
	if got := Word(-32768).Neg(); got != -32768 {
		t.Errorf("Neg(-32768) = %d, want -32768", got)
	}
}

func TestWordAddSubInverse(t *testing.T) {
	t.Parallel()

	for _, a := range []Word{0, 1, -1, 1000, -1000, 32767, -32768} {
		for _, b := range []Word{0, 1, -1, 500, -500} {
			if got := a.Add(b).Sub(b); got != a {
				t.Errorf("Add(%d,%d).Sub(%d) = %d, want %d", a, b, b, got, a)
			}
		}
	}
}

func TestBool(t *testing.T) {
	t.Parallel()

	if Bool(true) != -1 {
		t.Errorf("Bool(true) = %d, want -1", Bool(true))
	}

	if Bool(false) != 0 {
		t.Errorf("Bool(false) = %d, want 0", Bool(false))
	}
}
