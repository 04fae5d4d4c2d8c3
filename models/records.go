package models

import (
	"github.com/lib/pq"
)

type BatchStatus string

const (
	BatchStatusPending    BatchStatus = "pending"
	BatchStatusGenerating BatchStatus = "generating"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusFailed     BatchStatus = "failed"
)

// OutfitRecord is a stored generation result, addressable by request id.
type OutfitRecord struct {
	JsonModel
	RequestID string       `gorm:"uniqueIndex;size:64" json:"request_id"`
	BatchID   *uint        `json:"batch_id"`
	Batch     *OutfitBatch `json:"-"`

	EventType string `json:"event_type"`
	Season    Season `json:"season"`
	Formality int    `json:"formality"`
	Style     string `json:"style"`
	Comfort   int    `json:"comfort_level"`
	HasDress  bool   `json:"has_dress"`

	Colors    pq.StringArray `gorm:"type:text[]" json:"colors"`
	Materials pq.StringArray `gorm:"type:text[]" json:"materials"`

	// Payload holds the full outfit JSON as returned to the caller.
	Payload string `gorm:"type:text" json:"payload"`
}

// OutfitBatch tracks a background bulk-generation job.
type OutfitBatch struct {
	JsonModel
	EventType string      `json:"event_type"`
	Season    Season      `json:"season"`
	Formality int         `json:"formality"`
	Count     int         `json:"count"`
	Status    BatchStatus `json:"status"`

	// ProfileJSON is the caller's partial profile, estimated again by the worker.
	ProfileJSON string `gorm:"type:text" json:"-"`

	GeneratedCount int     `json:"generated_count"`
	FailedCount    int     `json:"failed_count"`
	RetryTimes     int     `json:"retry_times"`
	ErrorMessage   *string `json:"error_message"`
}
