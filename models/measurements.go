package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

type BodyType string

const (
	BodyTypeHourglass        BodyType = "hourglass"
	BodyTypePear             BodyType = "pear"
	BodyTypeApple            BodyType = "apple"
	BodyTypeRectangle        BodyType = "rectangle"
	BodyTypeInvertedTriangle BodyType = "inverted_triangle"
)

func (b *BodyType) Scan(value interface{}) error {
	*b = BodyType(value.(string))
	return nil
}

func (b BodyType) Value() string {
	return string(b)
}

type SpecialRequirement string

const (
	SpecialRequirementNone         SpecialRequirement = "none"
	SpecialRequirementPregnant     SpecialRequirement = "pregnant"
	SpecialRequirementPostPregnant SpecialRequirement = "post_pregnant"
	SpecialRequirementMedical      SpecialRequirement = "medical_condition"
	SpecialRequirementAthlete      SpecialRequirement = "athlete"
)

// Measurement is a single body measurement. Estimated marks values filled
// by the estimator rather than supplied by the caller.
type Measurement struct {
	Value     float64 `json:"value"`
	Estimated bool    `json:"was_estimated"`
}

// PartialProfile is the caller-supplied measurement set. Nil means the field
// was omitted and should be estimated.
type PartialProfile struct {
	Height             *float64 `json:"height"`
	Weight             *float64 `json:"weight"`
	Bust               *float64 `json:"bust"`
	Underbust          *float64 `json:"underbust"`
	Waist              *float64 `json:"waist"`
	Hips               *float64 `json:"hips"`
	ShoulderWidth      *float64 `json:"shoulder_width"`
	ArmLength          *float64 `json:"arm_length"`
	Age                *float64 `json:"age"`
	CupSize            *string  `json:"cup_size"`
	BodyType           *string  `json:"body_type"`
	SpecialRequirement *string  `json:"special_requirement"`
	ComfortLevel       *int     `json:"comfort_level"`
}

// Profile is a complete measurement profile. Every field carries its
// was_estimated flag; caller-supplied values are never altered.
type Profile struct {
	Height        Measurement `json:"height"`
	Weight        Measurement `json:"weight"`
	Bust          Measurement `json:"bust"`
	Underbust     Measurement `json:"underbust"`
	Waist         Measurement `json:"waist"`
	Hips          Measurement `json:"hips"`
	ShoulderWidth Measurement `json:"shoulder_width"`
	ArmLength     Measurement `json:"arm_length"`
	Age           Measurement `json:"age"`

	CupSize          string `json:"cup_size"`
	CupSizeEstimated bool   `json:"cup_size_was_estimated"`

	BodyType          BodyType `json:"body_type"`
	BodyTypeEstimated bool     `json:"body_type_was_estimated"`

	SpecialRequirement SpecialRequirement `json:"special_requirement"`
	ComfortLevel       int                `json:"comfort_level"`
}

func ValidateBodyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	matched, _ := regexp.MatchString("^hourglass|pear|apple|rectangle|inverted_triangle$", string(value))
	return matched
}

func ValidateSpecialRequirement(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	matched, _ := regexp.MatchString("^none|pregnant|post_pregnant|medical_condition|athlete$", string(value))
	return matched
}
