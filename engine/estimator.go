package engine

import (
	"math"

	"attireapi/models"
)

const (
	hipsHeightFraction  = 90.0 / 165.0
	waistHeightFraction = 70.0 / 165.0
	defaultComfortLevel = 5
)

// Estimate completes a partial profile. Caller-supplied values are copied
// through untouched; every filled-in value is flagged estimated and clamped
// to its accepted range. At least one anchor measurement (height, weight,
// bust, waist or hips) is required.
func Estimate(partial models.PartialProfile) (models.Profile, error) {
	if partial.Height == nil && partial.Weight == nil && partial.Bust == nil &&
		partial.Waist == nil && partial.Hips == nil {
		return models.Profile{}, &EstimationError{
			Reason: "need at least one of height, weight, bust, waist or hips",
		}
	}

	var p models.Profile
	assignMeasurement(&p.Height, partial.Height)
	assignMeasurement(&p.Weight, partial.Weight)
	assignMeasurement(&p.Bust, partial.Bust)
	assignMeasurement(&p.Underbust, partial.Underbust)
	assignMeasurement(&p.Waist, partial.Waist)
	assignMeasurement(&p.Hips, partial.Hips)
	assignMeasurement(&p.ShoulderWidth, partial.ShoulderWidth)
	assignMeasurement(&p.ArmLength, partial.ArmLength)
	assignMeasurement(&p.Age, partial.Age)

	if partial.CupSize != nil {
		p.CupSize = *partial.CupSize
	}
	if partial.BodyType != nil {
		p.BodyType = models.BodyType(*partial.BodyType)
	}
	p.SpecialRequirement = models.SpecialRequirementNone
	if partial.SpecialRequirement != nil {
		p.SpecialRequirement = models.SpecialRequirement(*partial.SpecialRequirement)
	}
	p.ComfortLevel = defaultComfortLevel
	if partial.ComfortLevel != nil {
		p.ComfortLevel = *partial.ComfortLevel
	}

	estimateFrame(&p)

	// bust from underbust is more direct than any ratio table
	if !known(p.Bust) && known(p.Underbust) {
		p.Bust = estimated(p.Underbust.Value + cupOffset(p.CupSize))
	}

	if p.BodyType == "" {
		p.BodyType = ClassifyMeasurements(
			p.Waist.Value, p.Bust.Value, p.ShoulderWidth.Value, p.Hips.Value)
		p.BodyTypeEstimated = true
	}
	estimateSilhouette(&p, p.BodyType)

	// one re-classification pass now that the silhouette is complete
	if p.BodyTypeEstimated {
		reclassified := ClassifyMeasurements(
			p.Waist.Value, p.Bust.Value, p.ShoulderWidth.Value, p.Hips.Value)
		if reclassified != p.BodyType {
			resetEstimated(&p.Hips, partial.Hips)
			resetEstimated(&p.Waist, partial.Waist)
			if partial.Underbust == nil {
				resetEstimated(&p.Bust, partial.Bust)
			}
			resetEstimated(&p.ShoulderWidth, partial.ShoulderWidth)
			p.BodyType = reclassified
			estimateSilhouette(&p, p.BodyType)
		}
	}

	if !known(p.Underbust) {
		p.Underbust = estimated(p.Bust.Value - cupOffset(p.CupSize))
	}
	if p.CupSize == "" {
		p.CupSize = cupFromDifference(p.Bust.Value - p.Underbust.Value)
		p.CupSizeEstimated = true
	}

	if !known(p.ArmLength) {
		p.ArmLength = estimated(p.Height.Value * armLengthFraction)
	}
	if !known(p.Age) {
		p.Age = estimated(defaultAge)
	}

	clampEstimated("height", &p.Height)
	clampEstimated("weight", &p.Weight)
	clampEstimated("bust", &p.Bust)
	clampEstimated("underbust", &p.Underbust)
	clampEstimated("waist", &p.Waist)
	clampEstimated("hips", &p.Hips)
	clampEstimated("shoulder_width", &p.ShoulderWidth)
	clampEstimated("arm_length", &p.ArmLength)
	clampEstimated("age", &p.Age)

	return p, nil
}

// estimateFrame resolves height and weight around a target BMI of 21, with
// a girth correction when bust or waist deviate from their reference values.
func estimateFrame(p *models.Profile) {
	if !known(p.Height) && !known(p.Weight) {
		p.Height = estimated(defaultHeight)
	}
	if !known(p.Height) {
		p.Height = estimated(math.Sqrt(p.Weight.Value/targetBMI) * 100)
	}
	if !known(p.Weight) {
		w := targetBMI * math.Pow(p.Height.Value/100, 2)
		if known(p.Bust) {
			w += 1.0 * (p.Bust.Value - 85)
		}
		if known(p.Waist) {
			w += 0.5 * (p.Waist.Value - 70)
		}
		p.Weight = estimated(w)
	}
}

// estimateSilhouette fills missing hips, waist, bust and shoulder width
// using the representative ratios of the given body type. Bust is the
// preferred anchor, then waist, then a height-scaled default.
func estimateSilhouette(p *models.Profile, bodyType models.BodyType) {
	ratios := ratiosByBodyType[bodyType]

	hipsAnchored := known(p.Hips) || known(p.Bust) || known(p.Waist)
	if !known(p.Hips) {
		switch {
		case known(p.Bust):
			p.Hips = estimated(p.Bust.Value / ratios.BustToHip)
		case known(p.Waist):
			p.Hips = estimated(p.Waist.Value / ratios.WaistToHip)
		default:
			p.Hips = estimated(p.Height.Value * hipsHeightFraction)
		}
	}
	if !known(p.Waist) {
		if hipsAnchored {
			p.Waist = estimated(p.Hips.Value * ratios.WaistToHip)
		} else {
			p.Waist = estimated(p.Height.Value * waistHeightFraction)
		}
	}
	if !known(p.Bust) {
		p.Bust = estimated(p.Hips.Value * ratios.BustToHip)
	}
	if !known(p.ShoulderWidth) {
		p.ShoulderWidth = estimated(p.Height.Value * ratios.ShoulderFraction)
	}
}

func cupOffset(cup string) float64 {
	if offset, ok := cupOffsets[cup]; ok {
		return offset
	}
	return avgCupOffset
}

func cupFromDifference(diff float64) string {
	for _, cup := range cupSizes {
		if diff <= cupOffsets[cup]+2.5 {
			return cup
		}
	}
	return cupSizes[len(cupSizes)-1]
}

func assignMeasurement(dst *models.Measurement, src *float64) {
	if src != nil {
		*dst = models.Measurement{Value: *src}
	}
}

func resetEstimated(m *models.Measurement, provided *float64) {
	if provided == nil {
		*m = models.Measurement{}
	}
}

func estimated(value float64) models.Measurement {
	return models.Measurement{Value: value, Estimated: true}
}

func known(m models.Measurement) bool {
	return m.Value > 0 || m.Estimated
}

func clampEstimated(field string, m *models.Measurement) {
	if !m.Estimated {
		return
	}
	r := measurementRanges[field]
	if m.Value < r.Min {
		m.Value = r.Min
	}
	if m.Value > r.Max {
		m.Value = r.Max
	}
}
