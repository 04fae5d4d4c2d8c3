package engine

import (
	"math"
	"testing"

	"attireapi/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHourglass(t *testing.T) {
	assert.Equal(t, models.BodyTypeHourglass, Classify(0.75, 1.0, 1.0))
	assert.Equal(t, models.BodyTypeHourglass, Classify(0.7, 0.9, 0.9))
	assert.Equal(t, models.BodyTypeHourglass, Classify(0.8, 1.1, 1.1))
}

func TestClassifyHourglassWinsOverInvertedTriangle(t *testing.T) {
	// satisfies both the hourglass bands and shoulder/hip > 1.05
	assert.Equal(t, models.BodyTypeHourglass, Classify(0.75, 1.0, 1.08))
}

func TestClassifyInvertedTriangle(t *testing.T) {
	assert.Equal(t, models.BodyTypeInvertedTriangle, Classify(0.75, 1.2, 1.2))
	assert.Equal(t, models.BodyTypeInvertedTriangle, Classify(0.9, 1.0, 1.1))
}

func TestClassifyPear(t *testing.T) {
	assert.Equal(t, models.BodyTypePear, Classify(0.7, 0.8, 0.9))
	assert.Equal(t, models.BodyTypePear, Classify(0.72, 0.85, 0.88))
}

func TestClassifyApple(t *testing.T) {
	assert.Equal(t, models.BodyTypeApple, Classify(0.9, 1.0, 1.0))
	assert.Equal(t, models.BodyTypeApple, Classify(0.95, 0.8, 0.9))
}

func TestClassifyRectangleFallback(t *testing.T) {
	assert.Equal(t, models.BodyTypeRectangle, Classify(0.82, 1.0, 1.0))
	assert.Equal(t, models.BodyTypeRectangle, Classify(0.84, 0.95, 0.96))
}

func TestClassifyUndefinedRatios(t *testing.T) {
	assert.Equal(t, models.BodyTypeRectangle, Classify(0, 1.0, 1.0))
	assert.Equal(t, models.BodyTypeRectangle, Classify(-0.5, 1.0, 1.0))
	assert.Equal(t, models.BodyTypeRectangle, Classify(math.NaN(), 1.0, 1.0))
	assert.Equal(t, models.BodyTypeRectangle, Classify(0.75, math.Inf(1), 1.0))
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, Classify(0.75, 1.0, 1.0), Classify(0.75, 1.0, 1.0))
	}
}

func TestClassifyMeasurements(t *testing.T) {
	assert.Equal(t, models.BodyTypeRectangle, ClassifyMeasurements(70, 90, 39, 90))
	assert.Equal(t, models.BodyTypeApple, ClassifyMeasurements(88, 95, 38, 95))
	assert.Equal(t, models.BodyTypeRectangle, ClassifyMeasurements(70, 90, 39, 0))
}
