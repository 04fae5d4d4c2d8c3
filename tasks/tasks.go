package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"attireapi/engine"
	"attireapi/models"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type OutfitBatchPayload struct {
	BatchID uint `json:"batch_id"`
}

// NewOutfitBatchTask enqueues bulk generation for a stored batch.
func NewOutfitBatchTask(batchID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(OutfitBatchPayload{BatchID: batchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask("generate:outfit_batch", payload), nil

}

// NewBatchCleanupTask removes stale finished batches, scheduled nightly.
func NewBatchCleanupTask() *asynq.Task {
	return asynq.NewTask("generate:batch_cleanup", nil)
}

func HandleOutfitBatchTask(ctx context.Context, t *asynq.Task, db *gorm.DB) error {
	var payload OutfitBatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		sentry.CaptureException(err)
		return err
	}

	var batch models.OutfitBatch
	if err := db.First(&batch, payload.BatchID).Error; err != nil {
		sentry.CaptureException(fmt.Errorf("[Batch: %v] failed to load: %v", payload.BatchID, err))
		return err
	}
	fmt.Printf("[Batch: %v] Generating %v outfits for %s/%s\n",
		batch.ID, batch.Count, batch.EventType, batch.Season)

	db.Model(&batch).Updates(map[string]interface{}{
		"status":      models.BatchStatusGenerating,
		"retry_times": gorm.Expr("retry_times + 1"),
	})

	var partial models.PartialProfile
	if err := json.Unmarshal([]byte(batch.ProfileJSON), &partial); err != nil {
		return saveBatchFail(db, batch, fmt.Sprintf("invalid stored profile: %v", err))
	}
	if partial.Height == nil && partial.Weight == nil && partial.Bust == nil &&
		partial.Waist == nil && partial.Hips == nil {
		height := 165.0
		partial.Height = &height
	}
	profile, err := engine.Estimate(partial)
	if err != nil {
		return saveBatchFail(db, batch, err.Error())
	}

	event := models.EventContext{
		EventType: batch.EventType,
		Formality: batch.Formality,
		Season:    batch.Season,
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	assembler := engine.NewAssembler(rng)

	generated, failed := 0, 0
	for i := 0; i < batch.Count; i++ {
		outfit, err := assembler.Generate(profile, event)
		if err != nil {
			var contextErr *engine.MaterialContextError
			if errors.As(err, &contextErr) {
				// no palette for this season, retrying cannot help
				return saveBatchFail(db, batch, contextErr.Error())
			}
			failed++
			continue
		}
		record, err := outfitRecordForBatch(batch.ID, outfit)
		if err != nil {
			failed++
			continue
		}
		if err := db.Create(&record).Error; err != nil {
			sentry.CaptureException(fmt.Errorf("[Batch: %v] failed to store outfit: %v", batch.ID, err))
			failed++
			continue
		}
		generated++
	}

	status := models.BatchStatusCompleted
	if generated == 0 {
		status = models.BatchStatusFailed
	}
	if err := db.Model(&batch).Updates(map[string]interface{}{
		"status":          status,
		"generated_count": generated,
		"failed_count":    failed,
	}).Error; err != nil {
		sentry.CaptureException(err)
		return err
	}
	fmt.Printf("[Batch: %v] Done: %v generated, %v failed\n", batch.ID, generated, failed)
	return nil
}

const batchRetentionDays = 30

func HandleBatchCleanupTask(ctx context.Context, t *asynq.Task, db *gorm.DB) error {
	cutoff := time.Now().AddDate(0, 0, -batchRetentionDays)

	var stale []models.OutfitBatch
	if err := db.Where("status IN ? AND updated_at < ?",
		[]models.BatchStatus{models.BatchStatusCompleted, models.BatchStatusFailed},
		cutoff).Find(&stale).Error; err != nil {
		sentry.CaptureException(err)
		return err
	}
	for _, batch := range stale {
		if err := db.Where("batch_id = ?", batch.ID).Delete(&models.OutfitRecord{}).Error; err != nil {
			sentry.CaptureException(err)
			return err
		}
		if err := db.Delete(&batch).Error; err != nil {
			sentry.CaptureException(err)
			return err
		}
	}
	fmt.Printf("[Queue] Cleaned up %v stale batches\n", len(stale))
	return nil
}

func outfitRecordForBatch(batchID uint, outfit *models.Outfit) (models.OutfitRecord, error) {
	payload, err := json.Marshal(outfit)
	if err != nil {
		return models.OutfitRecord{}, err
	}
	eventType := ""
	if len(outfit.SuitableFor) > 0 {
		eventType = outfit.SuitableFor[0]
	}
	return models.OutfitRecord{
		RequestID: uuid.NewString(),
		BatchID:   &batchID,
		EventType: eventType,
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

// saveBatchFail marks the batch failed and swallows the error so asynq does
// not retry a permanently broken batch.
func saveBatchFail(db *gorm.DB, batch models.OutfitBatch, msg string) error {
	sentry.CaptureException(fmt.Errorf("[Batch: %v] %s", batch.ID, msg))
	if err := db.Model(&batch).Updates(map[string]interface{}{
		"status":        models.BatchStatusFailed,
		"error_message": msg,
	}).Error; err != nil {
		sentry.CaptureException(err)
		return err
	}
	return nil
}
