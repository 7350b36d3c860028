package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/turisouvenir/Care-Equity/internal/domain"
	"github.com/turisouvenir/Care-Equity/internal/repository"

	"go.uber.org/zap"
)

// HospitalService 医院目录服务接口
type HospitalService interface {
	// ListHospitals 获取目录；location 非空时按 "city, state" 字面值精确过滤
	ListHospitals(ctx context.Context, location string) ([]domain.Hospital, error)

	// GetHospital 获取单家医院；不存在时返回 ErrHospitalNotFound
	GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error)
}

// hospitalService 实现
type hospitalService struct {
	hospitalsRepo repository.HospitalsRepository
	logger        *zap.Logger
}

// NewHospitalService 创建 HospitalService 实例
func NewHospitalService(hospitalsRepo repository.HospitalsRepository, logger *zap.Logger) HospitalService {
	return &hospitalService{hospitalsRepo: hospitalsRepo, logger: logger}
}

func (s *hospitalService) ListHospitals(ctx context.Context, location string) ([]domain.Hospital, error) {
	hospitals, err := s.hospitalsRepo.ListHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	if location == "" {
		return hospitals, nil
	}
	out := make([]domain.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if h.Location() == location {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *hospitalService) GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error) {
	h, err := s.hospitalsRepo.GetHospital(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrHospitalNotFound, hospitalID)
		}
		return nil, err
	}
	return h, nil
}
