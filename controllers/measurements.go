package controllers

import (
	"fmt"
	"net/http"

	"attireapi/engine"
	"attireapi/models"

	"github.com/labstack/echo/v4"
)

// Request structs for validation
type MeasurementsIn struct {
	Height             *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight             *float64 `json:"weight" validate:"omitempty,gt=0"`
	Bust               *float64 `json:"bust" validate:"omitempty,gt=0"`
	Underbust          *float64 `json:"underbust" validate:"omitempty,gt=0"`
	Waist              *float64 `json:"waist" validate:"omitempty,gt=0"`
	Hips               *float64 `json:"hips" validate:"omitempty,gt=0"`
	ShoulderWidth      *float64 `json:"shoulder_width" validate:"omitempty,gt=0"`
	ArmLength          *float64 `json:"arm_length" validate:"omitempty,gt=0"`
	Age                *float64 `json:"age" validate:"omitempty,gt=0"`
	CupSize            *string  `json:"cup_size" validate:"omitempty,oneof=A B C D E F G H"`
	BodyType           *string  `json:"body_type" validate:"omitempty,bodytype"`
	SpecialRequirement *string  `json:"special_requirement" validate:"omitempty,specialreq"`
	ComfortLevel       *int     `json:"comfort_level" validate:"omitempty,min=1,max=10"`
}

func (in *MeasurementsIn) toPartial() models.PartialProfile {
	return models.PartialProfile{
		Height:             in.Height,
		Weight:             in.Weight,
		Bust:               in.Bust,
		Underbust:          in.Underbust,
		Waist:              in.Waist,
		Hips:               in.Hips,
		ShoulderWidth:      in.ShoulderWidth,
		ArmLength:          in.ArmLength,
		Age:                in.Age,
		CupSize:            in.CupSize,
		BodyType:           in.BodyType,
		SpecialRequirement: in.SpecialRequirement,
		ComfortLevel:       in.ComfortLevel,
	}
}

// Response structs
type EstimateResponse struct {
	Measurements models.Profile `json:"measurements"`
	BodyType     string         `json:"body_type"`
	Valid        bool           `json:"valid"`
	Violations   []string       `json:"violations"`
}

type ValidateResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

type BodyTypeResponse struct {
	BodyType     string         `json:"body_type"`
	WasEstimated bool           `json:"was_estimated"`
	Measurements models.Profile `json:"measurements"`
}

type GuideResponse struct {
	Ranges   map[string]engine.MeasurementRange `json:"ranges"`
	CupSizes []string                           `json:"cup_sizes"`
}

type MeasurementsController struct {
}

func (controller *MeasurementsController) MeasurementRoutes(g *echo.Group) {
	g.POST("/estimate", controller.EstimateMeasurements)
	g.POST("/validate", controller.ValidateMeasurements)
	g.POST("/body-type", controller.ClassifyBodyType)
	g.GET("/guide", controller.MeasurementGuide)
}

func (controller *MeasurementsController) EstimateMeasurements(c echo.Context) error {
	var req MeasurementsIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	profile, violations, err := engine.EstimateAndValidate(req.toPartial())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, EstimateResponse{
		Measurements: profile,
		BodyType:     string(profile.BodyType),
		Valid:        len(violations) == 0,
		Violations:   violations,
	})
}

func (controller *MeasurementsController) ValidateMeasurements(c echo.Context) error {
	var req MeasurementsIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	violations := engine.ValidatePartial(req.toPartial())
	return c.JSON(http.StatusOK, ValidateResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

func (controller *MeasurementsController) ClassifyBodyType(c echo.Context) error {
	var req MeasurementsIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	profile, err := engine.Estimate(req.toPartial())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, BodyTypeResponse{
		BodyType:     string(profile.BodyType),
		WasEstimated: profile.BodyTypeEstimated,
		Measurements: profile,
	})
}

func (controller *MeasurementsController) MeasurementGuide(c echo.Context) error {
	return c.JSON(http.StatusOK, GuideResponse{
		Ranges:   engine.MeasurementGuide(),
		CupSizes: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
	})
}
