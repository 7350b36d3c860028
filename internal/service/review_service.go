package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/config"
	"github.com/turisouvenir/Care-Equity/internal/domain"
	redisx "github.com/turisouvenir/Care-Equity/internal/redis"
	"github.com/turisouvenir/Care-Equity/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitReviewRequest 评论提交请求（显式 schema，逐字段校验）
type SubmitReviewRequest struct {
	HospitalID     string `json:"hospitalId"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	RaceEthnicity  string `json:"raceEthnicity"`
	ExperienceType string `json:"experienceType"`
}

// ReviewService 患者报告服务接口
type ReviewService interface {
	// SubmitReview 校验并写入一条匿名评论
	SubmitReview(ctx context.Context, req SubmitReviewRequest) (*domain.Review, error)

	// ListReviews 按医院查询全部评论
	ListReviews(ctx context.Context, hospitalID string) ([]domain.Review, error)
}

// reviewService 实现
type reviewService struct {
	reviewsRepo   repository.ReviewsRepository
	hospitalsRepo repository.HospitalsRepository
	redisClient   *redis.Client // 可为 nil：事件发布是尽力而为
	cache         *aggregator.Cache
	logger        *zap.Logger
}

// NewReviewService 创建 ReviewService 实例
func NewReviewService(
	reviewsRepo repository.ReviewsRepository,
	hospitalsRepo repository.HospitalsRepository,
	redisClient *redis.Client,
	cache *aggregator.Cache,
	logger *zap.Logger,
) ReviewService {
	return &reviewService{
		reviewsRepo:   reviewsRepo,
		hospitalsRepo: hospitalsRepo,
		redisClient:   redisClient,
		cache:         cache,
		logger:        logger,
	}
}

// validateSubmitReview 逐字段校验，遇到第一个违规即返回
// 不做任何隐式纠正：越界/枚举外的值一律拒绝
func validateSubmitReview(req SubmitReviewRequest) error {
	if strings.TrimSpace(req.HospitalID) == "" {
		return fmt.Errorf("%w: hospitalId is required", ErrInvalidReview)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("%w: rating must be an integer between 1 and 5", ErrInvalidReview)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return fmt.Errorf("%w: comment is required", ErrInvalidReview)
	}
	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidReview, domain.MaxCommentLength)
	}
	if !domain.IsValidRaceEthnicity(req.RaceEthnicity) {
		return fmt.Errorf("%w: raceEthnicity %q is not a recognized category", ErrInvalidReview, req.RaceEthnicity)
	}
	if !domain.IsValidExperienceType(req.ExperienceType) {
		return fmt.Errorf("%w: experienceType %q is not a recognized category", ErrInvalidReview, req.ExperienceType)
	}
	return nil
}

// SubmitReview 校验并写入一条匿名评论
func (s *reviewService) SubmitReview(ctx context.Context, req SubmitReviewRequest) (*domain.Review, error) {
	if err := validateSubmitReview(req); err != nil {
		return nil, err
	}

	// 外键存在性：目录是权威
	if _, err := s.hospitalsRepo.GetHospital(ctx, req.HospitalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrHospitalNotFound, req.HospitalID)
		}
		return nil, fmt.Errorf("failed to verify hospital: %w", err)
	}

	review := &domain.Review{
		ReviewID:       uuid.NewString(),
		HospitalID:     req.HospitalID,
		Rating:         req.Rating,
		Comment:        strings.TrimSpace(req.Comment),
		RaceEthnicity:  req.RaceEthnicity,
		ExperienceType: req.ExperienceType,
		Anonymous:      true, // 恒为 true：系统不记录提交者
		CreatedAt:      time.Now().UTC(),
	}

	reviewID, err := s.reviewsRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	review.ReviewID = reviewID

	s.logger.Info("review submitted",
		zap.String("review_id", review.ReviewID),
		zap.String("hospital_id", review.HospitalID),
		zap.Int("rating", review.Rating),
	)

	// 新评论改变聚合结果，失效该医院的情感缓存
	s.cache.InvalidateSentiment(ctx, review.HospitalID)

	// 通知批量评分服务有新评论（尽力而为，失败不影响提交）
	s.publishReviewCreated(ctx, review)

	return review, nil
}

// publishReviewCreated 发布 review-created 事件到 Redis Streams
func (s *reviewService) publishReviewCreated(ctx context.Context, review *domain.Review) {
	if s.redisClient == nil {
		return
	}
	_, err := redisx.PublishToStream(ctx, s.redisClient, config.ReviewEventStream, map[string]interface{}{
		"event":       "review-created",
		"review_id":   review.ReviewID,
		"hospital_id": review.HospitalID,
		"rating":      review.Rating,
		"created_at":  review.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		s.logger.Warn("failed to publish review-created event",
			zap.String("review_id", review.ReviewID),
			zap.Error(err),
		)
	}
}

// ListReviews 按医院查询全部评论
func (s *reviewService) ListReviews(ctx context.Context, hospitalID string) ([]domain.Review, error) {
	if strings.TrimSpace(hospitalID) == "" {
		return nil, fmt.Errorf("%w: hospitalId is required", ErrInvalidReview)
	}
	if _, err := s.hospitalsRepo.GetHospital(ctx, hospitalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrHospitalNotFound, hospitalID)
		}
		return nil, fmt.Errorf("failed to verify hospital: %w", err)
	}
	return s.reviewsRepo.ListReviewsByHospital(ctx, hospitalID)
}
