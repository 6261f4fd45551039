package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale_MatchesScalar(t *testing.T) {
	src := make([]float64, 1000)
	for i := range src {
		src[i] = float64(i) / 999
	}

	want := make([]float64, len(src))
	got := make([]float64, len(src))
	Scalar().Scale(want, src, 2.5)
	Default().Scale(got, src, 2.5)

	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "index %d", i)
	}
}

func TestScale_UnitIsIdentity(t *testing.T) {
	src := []float64{0, 0.25, 0.5, 1, 1, 0.5, 0}
	dst := make([]float64, len(src))
	Default().Scale(dst, src, 1)
	assert.Equal(t, src, dst)
}

func TestSum_MatchesScalar(t *testing.T) {
	src := make([]float64, 1000)
	for i := range src {
		src[i] = 0.001 * float64(i%7)
	}

	assert.InDelta(t, Scalar().Sum(src), Default().Sum(src), 1e-9)
}

func TestSum_Empty(t *testing.T) {
	assert.InDelta(t, 0.0, Default().Sum(nil), 0)
	assert.InDelta(t, 0.0, Scalar().Sum(nil), 0)
}

func TestInfo_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, Info())
}

func BenchmarkScaleAccelerated(b *testing.B) {
	src := make([]float64, 1000)
	dst := make([]float64, 1000)
	for i := range src {
		src[i] = float64(i) * 0.001
	}
	ops := Default()

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, src, 0.75)
	}
}

func BenchmarkScaleScalar(b *testing.B) {
	src := make([]float64, 1000)
	dst := make([]float64, 1000)
	for i := range src {
		src[i] = float64(i) * 0.001
	}
	ops := Scalar()

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, src, 0.75)
	}
}
