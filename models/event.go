package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

func (s *Season) Scan(value interface{}) error {
	*s = Season(value.(string))
	return nil
}

func (s Season) Value() string {
	return string(s)
}

type StyleContext string

const (
	StyleFormal   StyleContext = "formal"
	StyleBusiness StyleContext = "business"
	StyleCasual   StyleContext = "casual"
)

// EventContext describes the occasion an outfit is generated for.
// Formality 0 means the caller left it out and it is resolved from EventType.
type EventContext struct {
	EventType     string `json:"event_type"`
	Formality     int    `json:"formality"`
	Season        Season `json:"season"`
	Location      string `json:"location"`
	Weather       string `json:"weather"`
	ActivityLevel int    `json:"activity_level"`
}

func ValidateSeason(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	matched, _ := regexp.MatchString("^winter|spring|summer|fall$", string(value))
	return matched
}

func ValidateSeasonRaw(value string) bool {
	matched, _ := regexp.MatchString("^winter|spring|summer|fall$", string(value))
	return matched
}
