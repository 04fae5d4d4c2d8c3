package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"attireapi/models"

	"gorm.io/gorm"
)

// OutfitCacheMock reads straight from the database, skipping the in-memory
// layer so tests see writes immediately.
type OutfitCacheMock struct {
	DB *gorm.DB
}

func (m *OutfitCacheMock) GetOutfit(ctx context.Context, requestID string) (models.OutfitRecord, error) {
	var record models.OutfitRecord
	err := m.DB.WithContext(ctx).Where("request_id = ?", requestID).First(&record).Error
	return record, err
}

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func NewJSONRequestRaw(method string, target string, json string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(json))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func Float64Pointer(f float64) *float64 {
	return &f
}

func IntPointer(i int) *int {
	return &i
}

func StrPointer(s string) *string {
	return &s
}

// FakeBatch persists a pending batch with a minimal usable profile.
func FakeBatch(db *gorm.DB, eventType string, season models.Season, count int) models.OutfitBatch {
	batch := models.OutfitBatch{
		EventType:   eventType,
		Season:      season,
		Count:       count,
		Status:      models.BatchStatusPending,
		ProfileJSON: `{"height": 168, "bust": 88, "waist": 68}`,
	}
	db.Create(&batch)
	return batch
}

// FakeOutfitRecord persists a stored outfit for lookup tests.
func FakeOutfitRecord(db *gorm.DB, requestID string) models.OutfitRecord {
	outfit := models.Outfit{
		Dress:     &models.Dress{Type: "dress", Color: "black", Material: "wool", Fit: "fitted", Length: "midi", Neckline: "v-neck", SleeveType: "long"},
		Shoes:     &models.Shoes{Type: "pumps", Color: "black", Material: "leather", HeelHeight: "high", Closure: "slip-on", ToeShape: "pointed"},
		Style:     models.StyleFormal,
		Season:    models.SeasonWinter,
		Formality: 8,
		Comfort:   4,
		Colors:    []string{"black"},
		Materials: []string{"wool"},

		SuitableFor: []string{"formal"},
	}
	record := models.OutfitRecord{
		RequestID: requestID,
		EventType: "formal",
		Season:    models.SeasonWinter,
		Formality: 8,
		Style:     string(models.StyleFormal),
		Comfort:   4,
		HasDress:  true,
		Colors:    []string{"black"},
		Materials: []string{"wool"},
		Payload:   JsonString(outfit),
	}
	db.Create(&record)
	return record
}
