package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"attireapi/models"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"gorm.io/gorm"
)

const outfitCacheExpiration = 10 * time.Minute

var ErrOutfitNotFound = errors.New("outfit not found")

type OutfitCacheServiceProvider interface {
	GetOutfit(ctx context.Context, requestID string) (models.OutfitRecord, error)
}

// OutfitCacheService keeps recently requested outfit records in memory,
// loading from the database on a miss. Records are immutable once written,
// so expiration is purely about memory pressure.
type OutfitCacheService struct {
	cache *cache.LoadableCache[models.OutfitRecord]
}

func NewOutfitCacheService(db *gorm.DB) (*OutfitCacheService, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 26, // 64MB
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	loadFunction := func(ctx context.Context, key any) (models.OutfitRecord, []store.Option, error) {
		requestID, ok := key.(string)
		if !ok {
			return models.OutfitRecord{}, nil, fmt.Errorf("invalid outfit cache key: expected string, got %T", key)
		}

		log.Printf("CACHE MISS for outfit request: %s", requestID)
		var record models.OutfitRecord
		result := db.WithContext(ctx).Where("request_id = ?", requestID).First(&record)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.OutfitRecord{}, nil, ErrOutfitNotFound
		}
		return record, []store.Option{store.WithExpiration(outfitCacheExpiration)}, result.Error
	}

	loadableCache := cache.NewLoadable[models.OutfitRecord](
		loadFunction,
		cache.New[models.OutfitRecord](ristrettoStore),
	)
	fmt.Println("Initialized OutfitCacheService with Ristretto cache!")
	return &OutfitCacheService{cache: loadableCache}, nil
}

func (s *OutfitCacheService) GetOutfit(ctx context.Context, requestID string) (models.OutfitRecord, error) {
	if requestID == "" {
		return models.OutfitRecord{}, ErrOutfitNotFound
	}
	return s.cache.Get(ctx, requestID)
}
