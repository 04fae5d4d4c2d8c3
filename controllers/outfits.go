package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"attireapi/engine"
	"attireapi/models"
	"attireapi/services"
	"attireapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Request structs for validation
type EventContextIn struct {
	EventType     string `json:"event_type" validate:"required,max=50"`
	Formality     *int   `json:"formality" validate:"omitempty,min=1,max=10"`
	Season        string `json:"season" validate:"required"`
	Location      string `json:"location" validate:"omitempty,max=100"`
	Weather       string `json:"weather" validate:"omitempty,max=50"`
	ActivityLevel *int   `json:"activity_level" validate:"omitempty,min=1,max=10"`
}

func (in *EventContextIn) toEvent() models.EventContext {
	event := models.EventContext{
		EventType: in.EventType,
		Season:    models.Season(in.Season),
		Location:  in.Location,
		Weather:   in.Weather,
	}
	if in.Formality != nil {
		event.Formality = *in.Formality
	}
	if in.ActivityLevel != nil {
		event.ActivityLevel = *in.ActivityLevel
	}
	return event
}

type GenerateOutfitIn struct {
	UserProfile  MeasurementsIn `json:"user_profile"`
	EventContext EventContextIn `json:"event_context" validate:"required"`
	MaxRetries   *int           `json:"max_retries" validate:"omitempty,min=1,max=10"`
}

type CreateBatchIn struct {
	EventType   string          `json:"event_type" validate:"required,max=50"`
	Season      string          `json:"season" validate:"required,season"`
	Formality   *int            `json:"formality" validate:"omitempty,min=1,max=10"`
	Count       int             `json:"count" validate:"required,min=1,max=5000"`
	UserProfile *MeasurementsIn `json:"user_profile"`
}

// Response structs
type GenerateOutfitResponse struct {
	RequestID string        `json:"request_id"`
	Outfit    models.Outfit `json:"outfit"`
}

type OutfitLookupResponse struct {
	RequestID string        `json:"request_id"`
	Outfit    models.Outfit `json:"outfit"`
	CreatedAt string        `json:"created_at"`
}

type BatchCreatedResponse struct {
	BatchID uint   `json:"batch_id"`
	Status  string `json:"status"`
}

type OutfitsController struct {
	OutfitCache services.OutfitCacheServiceProvider
}

func (controller *OutfitsController) OutfitRoutes(g *echo.Group) {
	g.POST("/generate", controller.GenerateOutfit)
	g.POST("/batch", controller.CreateBatch)
	g.GET("/batch/:batchId", controller.GetBatch)
	g.GET("/:requestId", controller.GetOutfit)
}

func (controller *OutfitsController) GenerateOutfit(c echo.Context) error {
	var req GenerateOutfitIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	profile, violations, err := engine.EstimateAndValidate(req.UserProfile.toPartial())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if len(violations) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":      "Invalid measurements",
			"violations": violations,
		})
	}

	assembler := engine.NewAssembler(rand.New(rand.NewSource(time.Now().UnixNano())))
	if req.MaxRetries != nil {
		assembler.WithMaxRetries(*req.MaxRetries)
	}
	outfit, err := assembler.Generate(profile, req.EventContext.toEvent())
	if err != nil {
		var contextErr *engine.MaterialContextError
		if errors.As(err, &contextErr) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Material selection error"})
		}
		var generationErr *engine.GenerationError
		if errors.As(err, &generationErr) {
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"error":              "Outfit generation failed",
				"missing_components": generationErr.Missing,
			})
		}
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Outfit generation failed"})
	}

	requestID := uuid.NewString()
	record, err := buildOutfitRecord(requestID, nil, outfit)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store outfit"})
	}
	if err := db.Create(&record).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store outfit"})
	}

	return c.JSON(http.StatusCreated, GenerateOutfitResponse{
		RequestID: requestID,
		Outfit:    *outfit,
	})
}

func (controller *OutfitsController) GetOutfit(c echo.Context) error {
	requestID := c.Param("requestId")

	record, err := controller.OutfitCache.GetOutfit(c.Request().Context(), requestID)
	if err != nil {
		if errors.Is(err, services.ErrOutfitNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Outfit not found"})
		}
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load outfit"})
	}

	var outfit models.Outfit
	if err := json.Unmarshal([]byte(record.Payload), &outfit); err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load outfit"})
	}
	return c.JSON(http.StatusOK, OutfitLookupResponse{
		RequestID: record.RequestID,
		Outfit:    outfit,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	})
}

func (controller *OutfitsController) CreateBatch(c echo.Context) error {
	var req CreateBatchIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}
	asynqClient, ok := c.Get("__asynqclient").(*asynq.Client)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Service is not available, please try again a bit later"})
	}

	profileJSON := "{}"
	if req.UserProfile != nil {
		raw, err := json.Marshal(req.UserProfile.toPartial())
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user profile"})
		}
		profileJSON = string(raw)
	}

	batch := models.OutfitBatch{
		EventType:   req.EventType,
		Season:      models.Season(req.Season),
		Count:       req.Count,
		Status:      models.BatchStatusPending,
		ProfileJSON: profileJSON,
	}
	if req.Formality != nil {
		batch.Formality = *req.Formality
	}
	if err := db.Create(&batch).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create batch"})
	}

	task, err := tasks.NewOutfitBatchTask(batch.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to schedule batch"})
	}
	if _, err := asynqClient.Enqueue(task, asynq.MaxRetry(3), asynq.Queue("generate")); err != nil {
		sentry.CaptureException(err)
		db.Model(&batch).Update("status", models.BatchStatusFailed)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to schedule batch"})
	}
	fmt.Printf("[Queue] Enqueued outfit batch %v (%v outfits)\n", batch.ID, batch.Count)

	return c.JSON(http.StatusCreated, BatchCreatedResponse{
		BatchID: batch.ID,
		Status:  string(batch.Status),
	})
}

func (controller *OutfitsController) GetBatch(c echo.Context) error {
	batchID, err := strconv.ParseUint(c.Param("batchId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid batch id"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var batch models.OutfitBatch
	if err := db.First(&batch, batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Batch not found"})
		}
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load batch"})
	}
	return c.JSON(http.StatusOK, batch)
}

func buildOutfitRecord(requestID string, batchID *uint, outfit *models.Outfit) (models.OutfitRecord, error) {
	payload, err := json.Marshal(outfit)
	if err != nil {
		return models.OutfitRecord{}, err
	}
	return models.OutfitRecord{
		RequestID: requestID,
		BatchID:   batchID,
		EventType: firstOrEmpty(outfit.SuitableFor),
		Season:    outfit.Season,
		Formality: outfit.Formality,
		Style:     string(outfit.Style),
		Comfort:   outfit.Comfort,
		HasDress:  outfit.HasDress(),
		Colors:    outfit.Colors,
		Materials: outfit.Materials,
		Payload:   string(payload),
	}, nil
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
