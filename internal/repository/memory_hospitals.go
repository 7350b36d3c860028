package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// MemoryHospitalsRepository 内存版医院目录（DB 未就绪时的本地联测）
type MemoryHospitalsRepository struct {
	mu        sync.RWMutex
	hospitals map[string]domain.Hospital
}

// NewMemoryHospitalsRepository 创建内存版医院目录
func NewMemoryHospitalsRepository() *MemoryHospitalsRepository {
	return &MemoryHospitalsRepository{hospitals: make(map[string]domain.Hospital)}
}

var _ HospitalsRepository = (*MemoryHospitalsRepository)(nil)

func (r *MemoryHospitalsRepository) GetHospital(_ context.Context, hospitalID string) (*domain.Hospital, error) {
	if hospitalID == "" {
		return nil, fmt.Errorf("hospital_id is required")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hospitals[hospitalID]
	if !ok {
		return nil, fmt.Errorf("hospital %s: %w", hospitalID, ErrNotFound)
	}
	return &h, nil
}

func (r *MemoryHospitalsRepository) ListHospitals(_ context.Context) ([]domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Hospital, 0, len(r.hospitals))
	for _, h := range r.hospitals {
		out = append(out, h)
	}
	// 与 Postgres 实现保持一致的稳定顺序
	sort.Slice(out, func(i, j int) bool { return out[i].HospitalID < out[j].HospitalID })
	return out, nil
}

func (r *MemoryHospitalsRepository) UpsertHospital(_ context.Context, h *domain.Hospital) error {
	if h == nil || h.HospitalID == "" {
		return fmt.Errorf("hospital_id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hospitals[h.HospitalID] = *h
	return nil
}
