package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIBMToIEEE_Scenario is literal scenario S4 from the specification.
func TestIBMToIEEE_Scenario(t *testing.T) {
	require.Equal(t, float32(1.0), IBMToIEEE(0x41100000))
	require.Equal(t, float32(-8.0), IBMToIEEE(0xC2080000))
}

func TestIEEEToIBM_RoundTripsCanonicalEncoding(t *testing.T) {
	// The explicit round-trip claim in the spec only covers the canonical
	// (already-normalized) word 0x41100000 — re-encoding 1.0 must reproduce
	// it exactly.
	require.Equal(t, uint32(0x41100000), IEEEToIBM(1.0))
}

func TestIBMIEEE_RoundTripOnSelfEncoded(t *testing.T) {
	values := []float32{0, 1, -1, 8, -8, 0.5, 100.25, -100.25, 1.2, 3.14159, 1e10, -1e10, 1e-10}
	for _, v := range values {
		encoded := IEEEToIBM(v)
		decoded := IBMToIEEE(encoded)
		// IEEEToIBM truncates to a 24-bit base-16 fraction, so the decoded
		// value is within one IBM ulp, at most 2^-20 of the magnitude.
		require.InDelta(t, float64(v), float64(decoded), math.Abs(float64(v))/(1<<20), "value=%v", v)

		reencoded := IEEEToIBM(decoded)
		require.Equal(t, encoded, reencoded, "re-encoding a canonical IBM word must be stable, value=%v", v)
	}
}

func TestIBMToIEEE_Zero(t *testing.T) {
	require.Equal(t, float32(0), IBMToIEEE(0))
	require.Equal(t, math.Float32bits(float32(math.Copysign(0, -1))), math.Float32bits(IBMToIEEE(0x80000000)))
}

func TestIEEEToIBM_Zero(t *testing.T) {
	require.Equal(t, uint32(0), IEEEToIBM(0))
	require.Equal(t, uint32(0x80000000), IEEEToIBM(float32(math.Copysign(0, -1))))
}

func TestIEEEToIBM_InfinitySaturates(t *testing.T) {
	pos := IEEEToIBM(float32(math.Inf(1)))
	neg := IEEEToIBM(float32(math.Inf(-1)))

	require.Equal(t, uint32(0x7fffffff), pos)
	require.Equal(t, uint32(0xffffffff), neg)
}

func TestSampleDataScenario(t *testing.T) {
	// Scenario S2/S3 fixture values: 1.2 + 0.00001*i style series must
	// survive an IEEE->IBM->IEEE round trip within the documented tolerance.
	for i := 0; i < 50; i++ {
		want := 1.2 + 0.00001*float64(i)
		got := float64(IBMToIEEE(IEEEToIBM(float32(want))))
		require.InDelta(t, want, got, 1e-5)
	}
}
