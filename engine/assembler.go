package engine

import (
	"math"
	"math/rand"

	"attireapi/models"
)

// DefaultMaxRetries bounds how often the assembler regenerates missing
// components before giving up.
const DefaultMaxRetries = 3

// ComponentBuilder fills one named component of an outfit in place. A nil
// error means the component is settled, even when the draw decided to skip
// it (legwear "none").
type ComponentBuilder interface {
	Build(component string, outfit *models.Outfit, profile models.Profile,
		style models.StyleContext, season models.Season, palette []string) error
}

type selectorBuilder struct {
	sel *Selector
}

func (b *selectorBuilder) Build(component string, outfit *models.Outfit, profile models.Profile,
	style models.StyleContext, season models.Season, palette []string) error {
	switch component {
	case "dress":
		outfit.Dress = b.sel.Dress(style, palette)
	case "top":
		outfit.Top = b.sel.Top(style, palette)
	case "bottom":
		outfit.Bottom = b.sel.Bottom(style, palette)
	case "legwear":
		outfit.Legwear = b.sel.Legwear(season, style)
	case "shoes":
		outfit.Shoes = b.sel.Shoes(style, profile.ComfortLevel, profile.SpecialRequirement)
	case "accessories":
		outfit.Accessories = b.sel.Accessories(style)
	}
	return nil
}

type assemblerState int

const (
	stateDressDecision assemblerState = iota
	stateComponentGeneration
	stateValidate
	stateRetry
	stateDone
)

// Assembler turns a complete profile and an event context into an outfit.
// It is not safe for concurrent use; give each goroutine its own instance
// with its own random source.
type Assembler struct {
	rng        *rand.Rand
	builder    ComponentBuilder
	maxRetries int
}

func NewAssembler(rng *rand.Rand) *Assembler {
	return &Assembler{
		rng:        rng,
		builder:    &selectorBuilder{sel: NewSelector(rng)},
		maxRetries: DefaultMaxRetries,
	}
}

// WithBuilder swaps the component builder, used to exercise retry paths.
func (a *Assembler) WithBuilder(builder ComponentBuilder) *Assembler {
	a.builder = builder
	return a
}

func (a *Assembler) WithMaxRetries(maxRetries int) *Assembler {
	if maxRetries > 0 {
		a.maxRetries = maxRetries
	}
	return a
}

// Generate runs the assembly state machine. The dress decision is drawn
// once; retries regenerate only the components still missing. Exhausting
// the retry budget returns a GenerationError naming them.
func (a *Assembler) Generate(profile models.Profile, event models.EventContext) (*models.Outfit, error) {
	formality := ResolveFormality(event.EventType, event.Formality)
	style := ResolveStyle(formality)
	palette, err := MaterialPalette(event.Season)
	if err != nil {
		return nil, err
	}

	outfit := &models.Outfit{
		Style:     style,
		Season:    event.Season,
		Formality: formality,
	}

	var missing []string
	retries := 0
	state := stateDressDecision

	for {
		switch state {
		case stateDressDecision:
			if a.rng.Float64() < dressProbability(formality) {
				missing = []string{"dress"}
				if WantsLegwear(event.Season, style) {
					missing = append(missing, "legwear")
				}
			} else {
				missing = []string{"top", "bottom"}
			}
			missing = append(missing, "shoes")
			state = stateComponentGeneration

		case stateComponentGeneration:
			var still []string
			for _, component := range missing {
				if err := a.builder.Build(component, outfit, profile, style, event.Season, palette); err != nil {
					still = append(still, component)
				}
			}
			missing = still
			state = stateValidate

		case stateValidate:
			if len(missing) == 0 && consistent(outfit) {
				state = stateDone
			} else {
				state = stateRetry
			}

		case stateRetry:
			if retries >= a.maxRetries {
				return nil, &GenerationError{Missing: missing, Retries: retries}
			}
			retries++
			state = stateComponentGeneration

		case stateDone:
			// accessories are optional garnish, never a retry reason
			_ = a.builder.Build("accessories", outfit, profile, style, event.Season, palette)
			finalize(outfit, profile, event)
			return outfit, nil
		}
	}
}

func dressProbability(formality int) float64 {
	switch {
	case formality >= 7:
		return 0.6
	case formality >= 5:
		return 0.4
	case formality == 4:
		return 0.2
	default:
		return 0.1
	}
}

// consistent holds the structural invariant: exactly one garment variant,
// shoes always present.
func consistent(outfit *models.Outfit) bool {
	if outfit.Shoes == nil {
		return false
	}
	if outfit.Dress != nil {
		return outfit.Top == nil && outfit.Bottom == nil
	}
	return outfit.Top != nil && outfit.Bottom != nil
}

func finalize(outfit *models.Outfit, profile models.Profile, event models.EventContext) {
	outfit.Comfort = blendComfort(profile.ComfortLevel, outfit.Formality)
	outfit.SuitableFor = []string{event.EventType}

	var colors, materials []string
	if outfit.Dress != nil {
		colors = appendUnique(colors, outfit.Dress.Color)
		materials = appendUnique(materials, outfit.Dress.Material)
	}
	if outfit.Top != nil {
		colors = appendUnique(colors, outfit.Top.Color)
		materials = appendUnique(materials, outfit.Top.Material)
	}
	if outfit.Bottom != nil {
		colors = appendUnique(colors, outfit.Bottom.Color)
		materials = appendUnique(materials, outfit.Bottom.Material)
	}
	if outfit.Legwear != nil {
		colors = appendUnique(colors, outfit.Legwear.Color)
	}
	if outfit.Shoes != nil {
		colors = appendUnique(colors, outfit.Shoes.Color)
	}
	for _, accessory := range outfit.Accessories {
		colors = appendUnique(colors, accessory.Color)
	}
	outfit.Colors = colors
	outfit.Materials = materials
}

// blendComfort weighs the requested comfort against how much the occasion
// allows: formal events pull the achievable comfort down.
func blendComfort(requested, formality int) int {
	comfort := int(math.Round(0.6*float64(requested) + 0.4*float64(11-formality)))
	if comfort < 1 {
		comfort = 1
	}
	if comfort > 10 {
		comfort = 10
	}
	return comfort
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
