package pricing

import (
	"math"
	"testing"
)

func TestNormCDFAtZero(t *testing.T) {
	got := NormCDF(0)
	if math.Abs(got-0.5) > 1e-7 {
		t.Fatalf("NormCDF(0) = %v, want 0.5 within 1e-7", got)
	}
}

// The polynomial fit carries ~1.5e-7 max error against the true CDF.
func TestNormCDFAgainstErf(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.25 {
		want := 0.5 * (1 + math.Erf(x/math.Sqrt2))
		got := NormCDF(x)
		if math.Abs(got-want) > 1.5e-7 {
			t.Fatalf("NormCDF(%v) = %v, want %v within 1.5e-7", x, got, want)
		}
	}
}

func TestNormCDFSymmetry(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.5 {
		sum := NormCDF(x) + NormCDF(-x)
		if math.Abs(sum-1.0) > 1e-6 {
			t.Fatalf("NormCDF(%v)+NormCDF(%v) = %v, want 1 within 1e-6", x, -x, sum)
		}
	}
}

func TestNormCDFSaturation(t *testing.T) {
	if got := NormCDF(10); math.Abs(got-1) > 1e-9 {
		t.Fatalf("NormCDF(10) = %v, want 1", got)
	}
	if got := NormCDF(-10); math.Abs(got) > 1e-9 {
		t.Fatalf("NormCDF(-10) = %v, want 0", got)
	}
}

func TestNormPDF(t *testing.T) {
	if got := NormPDF(0); math.Abs(got-0.3989422804014327) > 1e-12 {
		t.Fatalf("NormPDF(0) = %v, want 1/sqrt(2π)", got)
	}
	for x := 0.5; x <= 4; x += 0.5 {
		if NormPDF(x) != NormPDF(-x) {
			t.Fatalf("NormPDF not symmetric at x=%v", x)
		}
	}
}
