package engine

import (
	"fmt"

	"attireapi/models"
)

// ValidateProfile checks a complete profile against the measurement guide.
// It returns human-readable violations in guide order followed by the
// relational checks, and never fails: an invalid profile is data, not an
// error.
func ValidateProfile(p models.Profile) []string {
	values := map[string]float64{
		"height":         p.Height.Value,
		"weight":         p.Weight.Value,
		"bust":           p.Bust.Value,
		"underbust":      p.Underbust.Value,
		"waist":          p.Waist.Value,
		"hips":           p.Hips.Value,
		"shoulder_width": p.ShoulderWidth.Value,
		"arm_length":     p.ArmLength.Value,
		"age":            p.Age.Value,
	}
	violations := rangeViolations(values)

	if p.CupSize != "" {
		if _, ok := cupOffsets[p.CupSize]; !ok {
			violations = append(violations,
				fmt.Sprintf("cup_size must be one of %v, got %q", cupSizes, p.CupSize))
		}
	}
	if p.Bust.Value < p.Underbust.Value {
		violations = append(violations,
			fmt.Sprintf("bust (%.1f) must not be smaller than underbust (%.1f)",
				p.Bust.Value, p.Underbust.Value))
	}
	if p.BodyType != models.BodyTypeApple && p.Hips.Value <= p.Waist.Value {
		violations = append(violations,
			fmt.Sprintf("hips (%.1f) must be larger than waist (%.1f) for body type %s",
				p.Hips.Value, p.Waist.Value, p.BodyType))
	}
	if p.ShoulderWidth.Value >= p.Height.Value*0.3 {
		violations = append(violations,
			fmt.Sprintf("shoulder_width (%.1f) is implausible for height %.1f",
				p.ShoulderWidth.Value, p.Height.Value))
	}
	if p.ArmLength.Value >= p.Height.Value {
		violations = append(violations,
			fmt.Sprintf("arm_length (%.1f) must be smaller than height (%.1f)",
				p.ArmLength.Value, p.Height.Value))
	}
	return violations
}

// ValidatePartial checks only the fields the caller actually supplied.
func ValidatePartial(partial models.PartialProfile) []string {
	values := map[string]float64{}
	provided := map[string]*float64{
		"height":         partial.Height,
		"weight":         partial.Weight,
		"bust":           partial.Bust,
		"underbust":      partial.Underbust,
		"waist":          partial.Waist,
		"hips":           partial.Hips,
		"shoulder_width": partial.ShoulderWidth,
		"arm_length":     partial.ArmLength,
		"age":            partial.Age,
	}
	for field, value := range provided {
		if value != nil {
			values[field] = *value
		}
	}
	violations := rangeViolations(values)

	if partial.CupSize != nil {
		if _, ok := cupOffsets[*partial.CupSize]; !ok {
			violations = append(violations,
				fmt.Sprintf("cup_size must be one of %v, got %q", cupSizes, *partial.CupSize))
		}
	}
	if partial.Bust != nil && partial.Underbust != nil && *partial.Bust < *partial.Underbust {
		violations = append(violations,
			fmt.Sprintf("bust (%.1f) must not be smaller than underbust (%.1f)",
				*partial.Bust, *partial.Underbust))
	}
	if partial.Waist != nil && partial.Hips != nil && *partial.Hips <= *partial.Waist {
		violations = append(violations,
			fmt.Sprintf("hips (%.1f) must be larger than waist (%.1f)",
				*partial.Hips, *partial.Waist))
	}
	return violations
}

func rangeViolations(values map[string]float64) []string {
	violations := []string{}
	for _, field := range measurementFields {
		value, ok := values[field]
		if !ok {
			continue
		}
		r := measurementRanges[field]
		if value < r.Min || value > r.Max {
			violations = append(violations,
				fmt.Sprintf("%s must be between %.0f and %.0f %s, got %.1f",
					field, r.Min, r.Max, r.Unit, value))
		}
	}
	return violations
}

// MeasurementGuide exposes the accepted ranges for the transport layer.
func MeasurementGuide() map[string]MeasurementRange {
	guide := make(map[string]MeasurementRange, len(measurementRanges))
	for field, r := range measurementRanges {
		guide[field] = r
	}
	return guide
}
