package engine

import (
	"errors"
	"math/rand"
	"testing"

	"attireapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(t *testing.T) models.Profile {
	t.Helper()
	profile, err := Estimate(models.PartialProfile{
		Height: floatPtr(168),
		Bust:   floatPtr(88),
		Waist:  floatPtr(68),
	})
	require.NoError(t, err)
	return profile
}

func TestGenerateStructuralInvariant(t *testing.T) {
	profile := testProfile(t)
	rng := rand.New(rand.NewSource(1))
	seasons := []models.Season{
		models.SeasonWinter, models.SeasonSpring, models.SeasonSummer, models.SeasonFall,
	}
	for i := 0; i < 500; i++ {
		event := models.EventContext{
			EventType: "party",
			Formality: 1 + i%10,
			Season:    seasons[i%len(seasons)],
		}
		outfit, err := NewAssembler(rng).Generate(profile, event)
		require.NoError(t, err)

		require.NotNil(t, outfit.Shoes)
		if outfit.Dress != nil {
			assert.Nil(t, outfit.Top)
			assert.Nil(t, outfit.Bottom)
		} else {
			assert.NotNil(t, outfit.Top)
			assert.NotNil(t, outfit.Bottom)
		}
		assert.GreaterOrEqual(t, outfit.Comfort, 1)
		assert.LessOrEqual(t, outfit.Comfort, 10)
		assert.Equal(t, []string{"party"}, outfit.SuitableFor)
	}
}

func TestGenerateWinterFormal(t *testing.T) {
	profile := testProfile(t)
	rng := rand.New(rand.NewSource(2))
	winter, err := MaterialPalette(models.SeasonWinter)
	require.NoError(t, err)

	sawDress := false
	for i := 0; i < 200; i++ {
		outfit, err := NewAssembler(rng).Generate(profile, models.EventContext{
			EventType: "formal",
			Season:    models.SeasonWinter,
		})
		require.NoError(t, err)
		assert.Equal(t, 8, outfit.Formality)
		assert.Equal(t, models.StyleFormal, outfit.Style)

		for _, material := range outfit.Materials {
			assert.Contains(t, winter, material)
		}
		if outfit.Dress != nil {
			sawDress = true
			// winter formal legwear has no "none" draw
			require.NotNil(t, outfit.Legwear)
			assert.Contains(t, []string{"stockings", "tights"}, outfit.Legwear.Type)
		}
	}
	assert.True(t, sawDress)
}

func TestGenerateDressRatioTracksFormality(t *testing.T) {
	profile := testProfile(t)
	rng := rand.New(rand.NewSource(3))
	dresses := 0
	const runs = 4000
	for i := 0; i < runs; i++ {
		outfit, err := NewAssembler(rng).Generate(profile, models.EventContext{
			EventType: "wedding",
			Season:    models.SeasonSummer,
		})
		require.NoError(t, err)
		if outfit.Dress != nil {
			dresses++
		}
	}
	ratio := float64(dresses) / float64(runs)
	assert.Greater(t, ratio, 0.5)
	assert.Less(t, ratio, 0.7)
}

func TestGenerateUnknownSeason(t *testing.T) {
	profile := testProfile(t)
	_, err := NewAssembler(rand.New(rand.NewSource(4))).Generate(profile, models.EventContext{
		EventType: "party",
		Season:    models.Season("monsoon"),
	})
	require.Error(t, err)
	var contextErr *MaterialContextError
	require.True(t, errors.As(err, &contextErr))
	assert.Equal(t, "monsoon", contextErr.Season)
}

// scriptedBuilder wraps the real builder with per-component failure budgets
// and build counters.
type scriptedBuilder struct {
	inner    ComponentBuilder
	failures map[string]int
	builds   map[string]int
}

func newScriptedBuilder(rng *rand.Rand, failures map[string]int) *scriptedBuilder {
	return &scriptedBuilder{
		inner:    &selectorBuilder{sel: NewSelector(rng)},
		failures: failures,
		builds:   map[string]int{},
	}
}

func (b *scriptedBuilder) Build(component string, outfit *models.Outfit, profile models.Profile,
	style models.StyleContext, season models.Season, palette []string) error {
	b.builds[component]++
	if b.failures[component] > 0 {
		b.failures[component]--
		return errors.New("component draw failed")
	}
	return b.inner.Build(component, outfit, profile, style, season, palette)
}

func TestGenerateRetriesOnlyMissingComponents(t *testing.T) {
	profile := testProfile(t)
	rng := rand.New(rand.NewSource(5))
	builder := newScriptedBuilder(rng, map[string]int{"shoes": 2})

	outfit, err := NewAssembler(rng).WithBuilder(builder).Generate(profile, models.EventContext{
		EventType: "party",
		Season:    models.SeasonSummer,
	})
	require.NoError(t, err)
	require.NotNil(t, outfit.Shoes)

	assert.Equal(t, 3, builder.builds["shoes"])
	for component, count := range builder.builds {
		if component == "shoes" {
			continue
		}
		assert.Equal(t, 1, count, "component %s regenerated", component)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	profile := testProfile(t)
	rng := rand.New(rand.NewSource(6))
	builder := newScriptedBuilder(rng, map[string]int{"shoes": 100})

	_, err := NewAssembler(rng).WithBuilder(builder).WithMaxRetries(2).
		Generate(profile, models.EventContext{
			EventType: "party",
			Season:    models.SeasonSummer,
		})
	require.Error(t, err)
	var generationErr *GenerationError
	require.True(t, errors.As(err, &generationErr))
	assert.Equal(t, 2, generationErr.Retries)
	assert.Contains(t, generationErr.Missing, "shoes")
}

func TestGenerateDeterministicWithSameSeed(t *testing.T) {
	profile := testProfile(t)
	event := models.EventContext{EventType: "business", Season: models.SeasonFall}

	first, err := NewAssembler(rand.New(rand.NewSource(9))).Generate(profile, event)
	require.NoError(t, err)
	second, err := NewAssembler(rand.New(rand.NewSource(9))).Generate(profile, event)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBlendComfort(t *testing.T) {
	assert.Equal(t, 10, blendComfort(10, 1))
	assert.Equal(t, 1, blendComfort(1, 10))
	comfortable := blendComfort(8, 3)
	restrained := blendComfort(8, 9)
	assert.Greater(t, comfortable, restrained)
}
