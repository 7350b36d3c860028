package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// MemoryReviewsRepository 内存版患者报告存储（只追加，保留插入顺序）
type MemoryReviewsRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

// NewMemoryReviewsRepository 创建内存版患者报告存储
func NewMemoryReviewsRepository() *MemoryReviewsRepository {
	return &MemoryReviewsRepository{}
}

var _ ReviewsRepository = (*MemoryReviewsRepository)(nil)

func (r *MemoryReviewsRepository) CreateReview(_ context.Context, review *domain.Review) (string, error) {
	if review == nil {
		return "", fmt.Errorf("review is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, *review)
	return review.ReviewID, nil
}

func (r *MemoryReviewsRepository) ListReviewsByHospital(_ context.Context, hospitalID string) ([]domain.Review, error) {
	if hospitalID == "" {
		return nil, fmt.Errorf("hospital_id is required")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.HospitalID == hospitalID {
			out = append(out, rv)
		}
	}
	return out, nil
}
