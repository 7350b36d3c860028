package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// MemoryRatingsRepository 内存版评分记录存储（DB 未就绪时的本地联测）
type MemoryRatingsRepository struct {
	mu      sync.RWMutex
	ratings map[string]domain.RatingRecord
}

// NewMemoryRatingsRepository 创建内存版评分记录存储
func NewMemoryRatingsRepository() *MemoryRatingsRepository {
	return &MemoryRatingsRepository{ratings: make(map[string]domain.RatingRecord)}
}

var _ RatingsRepository = (*MemoryRatingsRepository)(nil)

func (r *MemoryRatingsRepository) GetRating(_ context.Context, hospitalID string) (*domain.RatingRecord, error) {
	if hospitalID == "" {
		return nil, fmt.Errorf("hospital_id is required")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.ratings[hospitalID]
	if !ok {
		return nil, fmt.Errorf("rating for %s: %w", hospitalID, ErrNotFound)
	}
	return &rec, nil
}

func (r *MemoryRatingsRepository) ListRatings(_ context.Context) ([]domain.RatingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.RatingRecord, 0, len(r.ratings))
	for _, rec := range r.ratings {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HospitalID < out[j].HospitalID })
	return out, nil
}

func (r *MemoryRatingsRepository) UpsertRating(_ context.Context, rec *domain.RatingRecord) error {
	if rec == nil || rec.HospitalID == "" {
		return fmt.Errorf("hospital_id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratings[rec.HospitalID] = *rec
	return nil
}
