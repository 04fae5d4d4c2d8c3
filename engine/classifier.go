package engine

import (
	"math"

	"attireapi/models"
)

// Classify maps the three silhouette ratios to a body type. Ratios that are
// non-positive or not finite make the classification undefined and fall back
// to rectangle. When several shapes match, the more specific one wins:
// hourglass, then inverted_triangle, pear, apple, rectangle.
func Classify(waistToHip, bustToHip, shoulderToHip float64) models.BodyType {
	if !usableRatio(waistToHip) || !usableRatio(bustToHip) || !usableRatio(shoulderToHip) {
		return models.BodyTypeRectangle
	}
	switch {
	case waistToHip >= 0.7 && waistToHip <= 0.8 &&
		bustToHip >= 0.9 && bustToHip <= 1.1 &&
		shoulderToHip >= 0.9 && shoulderToHip <= 1.1:
		return models.BodyTypeHourglass
	case shoulderToHip > 1.05:
		return models.BodyTypeInvertedTriangle
	case waistToHip < 0.75 && shoulderToHip < 0.95:
		return models.BodyTypePear
	case waistToHip > 0.85:
		return models.BodyTypeApple
	default:
		return models.BodyTypeRectangle
	}
}

// ClassifyMeasurements derives the ratios from raw measurements. A missing
// or zero hips makes every ratio undefined.
func ClassifyMeasurements(waist, bust, shoulderWidth, hips float64) models.BodyType {
	if hips <= 0 {
		return models.BodyTypeRectangle
	}
	return Classify(waist/hips, bust/hips, shoulderWidth/hips)
}

func usableRatio(r float64) bool {
	return r > 0 && !math.IsNaN(r) && !math.IsInf(r, 0)
}
