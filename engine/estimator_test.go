package engine

import (
	"testing"

	"attireapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestEstimateRequiresAnchor(t *testing.T) {
	_, err := Estimate(models.PartialProfile{Age: floatPtr(30)})
	require.Error(t, err)
	estimationErr, ok := err.(*EstimationError)
	require.True(t, ok)
	assert.Contains(t, estimationErr.Reason, "height")
}

func TestEstimateFromHeightAndGirths(t *testing.T) {
	profile, err := Estimate(models.PartialProfile{
		Height: floatPtr(170),
		Bust:   floatPtr(90),
		Waist:  floatPtr(70),
	})
	require.NoError(t, err)

	// provided values pass through untouched
	assert.Equal(t, 170.0, profile.Height.Value)
	assert.False(t, profile.Height.Estimated)
	assert.Equal(t, 90.0, profile.Bust.Value)
	assert.False(t, profile.Bust.Estimated)
	assert.Equal(t, 70.0, profile.Waist.Value)
	assert.False(t, profile.Waist.Estimated)

	assert.True(t, profile.Weight.Estimated)
	assert.InDelta(t, 65.5, profile.Weight.Value, 1.0)

	assert.True(t, profile.Hips.Estimated)
	assert.InDelta(t, 91.0, profile.Hips.Value, 1.0)

	assert.True(t, profile.BodyTypeEstimated)
	assert.Equal(t, models.BodyTypeRectangle, profile.BodyType)
}

func TestEstimateHeightFromWeight(t *testing.T) {
	profile, err := Estimate(models.PartialProfile{Weight: floatPtr(63)})
	require.NoError(t, err)
	assert.True(t, profile.Height.Estimated)
	assert.InDelta(t, 173.2, profile.Height.Value, 0.1)
}

func TestEstimateClampsToRange(t *testing.T) {
	// weight 40 alone implies a height below the accepted minimum
	profile, err := Estimate(models.PartialProfile{Weight: floatPtr(40)})
	require.NoError(t, err)
	assert.True(t, profile.Height.Estimated)
	assert.Equal(t, 140.0, profile.Height.Value)
}

func TestEstimateCupSize(t *testing.T) {
	profile, err := Estimate(models.PartialProfile{
		Height:    floatPtr(165),
		Bust:      floatPtr(90),
		Underbust: floatPtr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "B", profile.CupSize)
	assert.True(t, profile.CupSizeEstimated)
}

func TestEstimateUnderbustFromCup(t *testing.T) {
	profile, err := Estimate(models.PartialProfile{
		Height:  floatPtr(165),
		Bust:    floatPtr(90),
		CupSize: strPtr("C"),
	})
	require.NoError(t, err)
	assert.Equal(t, "C", profile.CupSize)
	assert.False(t, profile.CupSizeEstimated)
	assert.True(t, profile.Underbust.Estimated)
	assert.Equal(t, 80.0, profile.Underbust.Value)
}

func TestEstimateBustFromUnderbust(t *testing.T) {
	profile, err := Estimate(models.PartialProfile{
		Height:    floatPtr(165),
		Underbust: floatPtr(75),
	})
	require.NoError(t, err)
	assert.True(t, profile.Bust.Estimated)
	assert.Equal(t, 85.0, profile.Bust.Value)
}

func TestEstimateRespectsProvidedBodyType(t *testing.T) {
	profile, err := Estimate(models.PartialProfile{
		Height:   floatPtr(165),
		Bust:     floatPtr(80),
		BodyType: strPtr("pear"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BodyTypePear, profile.BodyType)
	assert.False(t, profile.BodyTypeEstimated)
	assert.True(t, profile.Hips.Estimated)
	assert.Equal(t, 100.0, profile.Hips.Value)
}

func TestEstimateDefaults(t *testing.T) {
	profile, err := Estimate(models.PartialProfile{Height: floatPtr(165)})
	require.NoError(t, err)
	assert.Equal(t, 30.0, profile.Age.Value)
	assert.True(t, profile.Age.Estimated)
	assert.Equal(t, 5, profile.ComfortLevel)
	assert.Equal(t, models.SpecialRequirementNone, profile.SpecialRequirement)
	assert.InDelta(t, 165*armLengthFraction, profile.ArmLength.Value, 0.001)
}

func TestEstimateDeterministic(t *testing.T) {
	partial := models.PartialProfile{
		Height: floatPtr(170),
		Bust:   floatPtr(90),
		Waist:  floatPtr(70),
	}
	first, err := Estimate(partial)
	require.NoError(t, err)
	second, err := Estimate(partial)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEstimateFullyProvidedProfileUnchanged(t *testing.T) {
	partial := models.PartialProfile{
		Height:        floatPtr(165),
		Weight:        floatPtr(60),
		Bust:          floatPtr(85),
		Underbust:     floatPtr(75),
		Waist:         floatPtr(70),
		Hips:          floatPtr(90),
		ShoulderWidth: floatPtr(38),
		ArmLength:     floatPtr(58),
		Age:           floatPtr(28),
		CupSize:       strPtr("B"),
		BodyType:      strPtr("hourglass"),
	}
	profile, err := Estimate(partial)
	require.NoError(t, err)

	for _, m := range []models.Measurement{
		profile.Height, profile.Weight, profile.Bust, profile.Underbust,
		profile.Waist, profile.Hips, profile.ShoulderWidth,
		profile.ArmLength, profile.Age,
	} {
		assert.False(t, m.Estimated)
	}
	assert.Equal(t, 60.0, profile.Weight.Value)
	assert.Equal(t, models.BodyTypeHourglass, profile.BodyType)
	assert.False(t, profile.BodyTypeEstimated)
	assert.False(t, profile.CupSizeEstimated)
}

func TestEstimateAndValidateReportsViolations(t *testing.T) {
	profile, violations, err := EstimateAndValidate(models.PartialProfile{
		Height: floatPtr(250),
		Bust:   floatPtr(90),
	})
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0], "height")
	assert.Equal(t, 250.0, profile.Height.Value)
}
