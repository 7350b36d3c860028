package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/models"
	"github.com/turisouvenir/Care-Equity/internal/repository"

	"go.uber.org/zap"
)

// SentimentService 情感聚合服务接口
type SentimentService interface {
	// GetHospitalSentiment 计算（或取缓存的）单医院情感聚合结果
	// 零评论医院返回定义好的 neutral 默认结果，不是错误
	GetHospitalSentiment(ctx context.Context, hospitalID string) (*models.SentimentView, error)
}

// sentimentService 实现
type sentimentService struct {
	reviewsRepo   repository.ReviewsRepository
	hospitalsRepo repository.HospitalsRepository
	cache         *aggregator.Cache
	thresholds    aggregator.SentimentThresholds
	logger        *zap.Logger
}

// NewSentimentService 创建 SentimentService 实例
func NewSentimentService(
	reviewsRepo repository.ReviewsRepository,
	hospitalsRepo repository.HospitalsRepository,
	cache *aggregator.Cache,
	thresholds aggregator.SentimentThresholds,
	logger *zap.Logger,
) SentimentService {
	return &sentimentService{
		reviewsRepo:   reviewsRepo,
		hospitalsRepo: hospitalsRepo,
		cache:         cache,
		thresholds:    thresholds,
		logger:        logger,
	}
}

func (s *sentimentService) GetHospitalSentiment(ctx context.Context, hospitalID string) (*models.SentimentView, error) {
	if _, err := s.hospitalsRepo.GetHospital(ctx, hospitalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrHospitalNotFound, hospitalID)
		}
		return nil, fmt.Errorf("failed to verify hospital: %w", err)
	}

	if view, ok := s.cache.GetSentiment(ctx, hospitalID); ok {
		return view, nil
	}

	reviews, err := s.reviewsRepo.ListReviewsByHospital(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	view := aggregator.ComputeSentiment(reviews, s.thresholds)
	s.cache.PutSentiment(ctx, hospitalID, &view)

	return &view, nil
}
