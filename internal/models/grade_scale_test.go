package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateBoundaries(t *testing.T) {
	cases := map[float64]Letter{
		100:  LetterA,
		85:   LetterA,
		84.9: LetterB,
		84:   LetterB,
		70:   LetterB,
		69:   LetterC,
		60:   LetterC,
		59:   LetterD,
		50:   LetterD,
		49:   LetterE,
		0:    LetterE,
		-5:   LetterE,
	}
	for score, want := range cases {
		assert.Equal(t, want, Predicate(score), "score %v", score)
	}
}

func TestClassLabel(t *testing.T) {
	assert.Equal(t, "excellent", ClassLabel(92))
	assert.Equal(t, "good", ClassLabel(78))
	assert.Equal(t, "average", ClassLabel(65))
	assert.Equal(t, "poor", ClassLabel(55))
	assert.Equal(t, "fail", ClassLabel(10))
}

func TestNewDistribution(t *testing.T) {
	dist := NewDistribution([]float64{85, 92, 88, 78, 65, 50, 12})
	assert.Equal(t, Distribution{LetterA: 3, LetterB: 1, LetterC: 1, LetterD: 1, LetterE: 1}, dist)

	assert.Equal(t, Distribution{LetterA: 0, LetterB: 0, LetterC: 0, LetterD: 0, LetterE: 0}, NewDistribution(nil))
}

func TestDefaultGradeScaleMatchesBands(t *testing.T) {
	scale := DefaultGradeScale()
	assert.Len(t, scale, 5)
	for _, band := range GradeBands() {
		entry := scale[band.Letter]
		assert.Equal(t, band.Min, entry.Min)
		assert.Equal(t, band.Max, entry.Max)
		assert.Equal(t, band.Color, entry.Color)
	}
	assert.Equal(t, []Letter{LetterA, LetterB, LetterC, LetterD, LetterE}, Letters())
}
