package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRubricTotal(t *testing.T) {
	assert.InDelta(t, 7.0, RubricTotal(8, 6, 7, 9, 5), 0.001)
	assert.InDelta(t, 1.0, RubricTotal(1, 1, 1, 1, 1), 0.001)
	assert.InDelta(t, 10.0, RubricTotal(10, 10, 10, 10, 10), 0.001)
	assert.InDelta(t, 5.2, RubricTotal(5, 5, 5, 5, 6), 0.001)
}

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Mean([]float64{}))
	assert.InDelta(t, 6.0, Mean([]float64{4, 8}), 0.001)
	assert.InDelta(t, 7.5, Mean([]float64{7.5}), 0.001)
}
