package tasks

import (
	"context"
	"testing"
	"time"

	"attireapi/dbhelper"
	"attireapi/models"
	"attireapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleOutfitBatchTask(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()

	batch := test.FakeBatch(db, "party", models.SeasonSummer, 25)

	task, err := NewOutfitBatchTask(batch.ID)
	require.NoError(t, err)
	err = HandleOutfitBatchTask(context.Background(), task, db)
	require.NoError(t, err)

	var updated models.OutfitBatch
	require.NoError(t, db.First(&updated, batch.ID).Error)
	assert.Equal(t, models.BatchStatusCompleted, updated.Status)
	assert.Equal(t, 25, updated.GeneratedCount)
	assert.Equal(t, 0, updated.FailedCount)
	assert.Equal(t, 1, updated.RetryTimes)

	var records []models.OutfitRecord
	require.NoError(t, db.Where("batch_id = ?", batch.ID).Find(&records).Error)
	require.Len(t, records, 25)
	for _, record := range records {
		assert.NotEmpty(t, record.RequestID)
		assert.Equal(t, models.SeasonSummer, record.Season)
		assert.NotEmpty(t, record.Payload)
	}
}

func TestHandleOutfitBatchTaskUnknownSeason(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()

	batch := test.FakeBatch(db, "party", models.Season("monsoon"), 5)

	task, err := NewOutfitBatchTask(batch.ID)
	require.NoError(t, err)
	// permanent failure: handler marks the batch failed instead of retrying
	err = HandleOutfitBatchTask(context.Background(), task, db)
	require.NoError(t, err)

	var updated models.OutfitBatch
	require.NoError(t, db.First(&updated, batch.ID).Error)
	assert.Equal(t, models.BatchStatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "monsoon")
}

func TestHandleOutfitBatchTaskEmptyProfile(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()

	batch := models.OutfitBatch{
		EventType:   "casual",
		Season:      models.SeasonSpring,
		Count:       3,
		Status:      models.BatchStatusPending,
		ProfileJSON: "{}",
	}
	require.NoError(t, db.Create(&batch).Error)

	task, err := NewOutfitBatchTask(batch.ID)
	require.NoError(t, err)
	err = HandleOutfitBatchTask(context.Background(), task, db)
	require.NoError(t, err)

	var updated models.OutfitBatch
	require.NoError(t, db.First(&updated, batch.ID).Error)
	assert.Equal(t, models.BatchStatusCompleted, updated.Status)
	assert.Equal(t, 3, updated.GeneratedCount)
}

func TestHandleBatchCleanupTask(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()

	stale := test.FakeBatch(db, "party", models.SeasonSummer, 1)
	db.Model(&stale).Update("status", models.BatchStatusCompleted)
	db.Model(&stale).UpdateColumn("updated_at", time.Now().AddDate(0, 0, -45))
	staleRecord := test.FakeOutfitRecord(db, "req-stale-1")
	db.Model(&staleRecord).UpdateColumn("batch_id", stale.ID)

	fresh := test.FakeBatch(db, "party", models.SeasonSummer, 1)
	db.Model(&fresh).Update("status", models.BatchStatusCompleted)

	err := HandleBatchCleanupTask(context.Background(), NewBatchCleanupTask(), db)
	require.NoError(t, err)

	var count int64
	db.Model(&models.OutfitBatch{}).Where("id = ?", stale.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.OutfitRecord{}).Where("request_id = ?", "req-stale-1").Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&models.OutfitBatch{}).Where("id = ?", fresh.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
