package engine

import (
	"math/rand"

	"attireapi/models"
)

// Selector draws component attributes from the style and season tables.
// All randomness flows through the injected source.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// EligibleMaterials narrows the seasonal palette to what an item type may
// be made of. Shoes, legwear and accessories have fixed material sets that
// do not vary with season; bottoms never come in silk.
func EligibleMaterials(itemType string, palette []string) []string {
	switch itemType {
	case "shoes":
		return shoeMaterials
	case "legwear":
		return legwearMaterials
	case "accessory":
		return accessoryMaterials
	case "bottom":
		eligible := make([]string, 0, len(palette))
		for _, material := range palette {
			if material != "silk" {
				eligible = append(eligible, material)
			}
		}
		return eligible
	default:
		return palette
	}
}

func (s *Selector) pick(options []string) string {
	return options[s.rng.Intn(len(options))]
}

func (s *Selector) Top(style models.StyleContext, palette []string) *models.Top {
	return &models.Top{
		Type:     s.pick(topTypes[style]),
		Color:    s.pick(colorPalettes[style]),
		Material: s.pick(EligibleMaterials("top", palette)),
		Fit:      s.pick(garmentFits[style]),
	}
}

func (s *Selector) Bottom(style models.StyleContext, palette []string) *models.Bottom {
	return &models.Bottom{
		Type:     s.pick(bottomTypes[style]),
		Color:    s.pick(colorPalettes[style]),
		Material: s.pick(EligibleMaterials("bottom", palette)),
		Fit:      s.pick(garmentFits[style]),
		Length:   s.pick(bottomLengths[style]),
	}
}

func (s *Selector) Dress(style models.StyleContext, palette []string) *models.Dress {
	return &models.Dress{
		Type:       "dress",
		Color:      s.pick(colorPalettes[style]),
		Material:   s.pick(EligibleMaterials("dress", palette)),
		Fit:        s.pick(garmentFits[style]),
		Length:     s.pick(dressLengths[style]),
		Neckline:   s.pick(dressNecklines[style]),
		SleeveType: s.pick(dressSleeves[style]),
	}
}

// Legwear draws from the season and style eligibility table. A "none" draw
// returns nil: the outfit legitimately skips legwear.
func (s *Selector) Legwear(season models.Season, style models.StyleContext) *models.Legwear {
	kind := s.pick(LegwearOptions(season, style))
	if kind == "none" {
		return nil
	}
	return &models.Legwear{
		Type:     kind,
		Color:    s.pick(legwearColors[style]),
		Material: s.pick(EligibleMaterials("legwear", nil)),
	}
}

// Shoes draws a style-appropriate shoe. Pregnancy forces a flat heel no
// matter the style; high comfort biases casual wear towards sneakers.
func (s *Selector) Shoes(style models.StyleContext, comfort int, special models.SpecialRequirement) *models.Shoes {
	specs := shoeSpecs[style]
	spec := specs[s.rng.Intn(len(specs))]

	if style == models.StyleCasual && comfort >= 7 && s.rng.Float64() < 0.7 {
		spec = shoeSpecs[models.StyleCasual][0] // sneakers
	}
	shoes := &models.Shoes{
		Type:       spec.Type,
		Color:      s.pick(colorPalettes[style]),
		Material:   s.pick(EligibleMaterials("shoes", nil)),
		HeelHeight: spec.HeelHeight,
		Closure:    spec.Closure,
		ToeShape:   spec.ToeShape,
	}
	if special == models.SpecialRequirementPregnant {
		shoes.HeelHeight = "flat"
	}
	return shoes
}

// Accessories draws zero to two accessories without repeating a type.
func (s *Selector) Accessories(style models.StyleContext) []models.Accessory {
	count := s.rng.Intn(3)
	specs := shuffledAccessories(s.rng, accessorySpecs[style])
	accessories := make([]models.Accessory, 0, count)
	for i := 0; i < count && i < len(specs); i++ {
		accessories = append(accessories, models.Accessory{
			Type:      specs[i].Type,
			Color:     s.pick(colorPalettes[style]),
			Material:  s.pick(EligibleMaterials("accessory", nil)),
			Placement: specs[i].Placement,
		})
	}
	return accessories
}

func shuffledAccessories(rng *rand.Rand, specs []accessorySpec) []accessorySpec {
	shuffled := make([]accessorySpec, len(specs))
	copy(shuffled, specs)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
