package engine

import (
	"strings"

	"attireapi/models"
)

// ResolveFormality returns the explicit formality when given, the table
// value for a known event type otherwise, and the casual default for
// anything else.
func ResolveFormality(eventType string, explicit int) int {
	if explicit != 0 {
		return explicit
	}
	if formality, ok := eventFormality[strings.ToLower(strings.TrimSpace(eventType))]; ok {
		return formality
	}
	return defaultFormality
}

// ResolveStyle buckets a formality level into a style context.
func ResolveStyle(formality int) models.StyleContext {
	switch {
	case formality >= 6:
		return models.StyleFormal
	case formality >= 4:
		return models.StyleBusiness
	default:
		return models.StyleCasual
	}
}

// MaterialPalette returns the season's garment materials in preference
// order. Unknown seasons are a hard error, not a fallback.
func MaterialPalette(season models.Season) ([]string, error) {
	palette, ok := seasonMaterials[season]
	if !ok {
		return nil, &MaterialContextError{Season: string(season)}
	}
	return palette, nil
}

// LegwearOptions returns the eligible legwear kinds for the season and
// style, including "none" where skipping legwear is a valid draw.
func LegwearOptions(season models.Season, style models.StyleContext) []string {
	byStyle, ok := legwearOptions[season]
	if !ok {
		return []string{"none"}
	}
	options, ok := byStyle[style]
	if !ok {
		return []string{"none"}
	}
	return options
}

// WantsLegwear reports whether a dress outfit should draw legwear at all:
// always in the cold seasons, only for formal wear in the warm ones.
func WantsLegwear(season models.Season, style models.StyleContext) bool {
	switch season {
	case models.SeasonFall, models.SeasonWinter:
		return true
	case models.SeasonSpring, models.SeasonSummer:
		return style == models.StyleFormal
	default:
		return false
	}
}
