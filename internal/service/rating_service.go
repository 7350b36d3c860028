package service

import (
	"context"
	"fmt"

	"github.com/turisouvenir/Care-Equity/internal/aggregator"
	"github.com/turisouvenir/Care-Equity/internal/config"
	"github.com/turisouvenir/Care-Equity/internal/models"
	"github.com/turisouvenir/Care-Equity/internal/repository"

	"go.uber.org/zap"
)

// 评分列表排序方式
const (
	SortByGrade     = "grade"     // 等级最好在前（稳定）
	SortByDisparity = "disparity" // 显著差异在前（稳定）
)

// ListRatingsRequest 评分列表查询请求
type ListRatingsRequest struct {
	Sort     string // ""/grade/disparity
	Location string // "city, state" 字面值精确过滤（可选）
}

// RatingService 合并评分视图服务接口
type RatingService interface {
	// ListHospitalRatings 目录+评分合并视图（每家医院恰好一条）
	ListHospitalRatings(ctx context.Context, req ListRatingsRequest) ([]models.HospitalRatingView, error)

	// GetHospitalRating 单家医院的合并视图；医院不存在时返回 ErrHospitalNotFound
	GetHospitalRating(ctx context.Context, hospitalID string) (*models.HospitalRatingView, error)
}

// ratingService 实现
type ratingService struct {
	hospitalsRepo repository.HospitalsRepository
	ratingsRepo   repository.RatingsRepository
	cache         *aggregator.Cache
	analytics     config.AnalyticsConfig
	logger        *zap.Logger
}

// NewRatingService 创建 RatingService 实例
func NewRatingService(
	hospitalsRepo repository.HospitalsRepository,
	ratingsRepo repository.RatingsRepository,
	cache *aggregator.Cache,
	analytics config.AnalyticsConfig,
	logger *zap.Logger,
) RatingService {
	return &ratingService{
		hospitalsRepo: hospitalsRepo,
		ratingsRepo:   ratingsRepo,
		cache:         cache,
		analytics:     analytics,
		logger:        logger,
	}
}

// joinedView 构建（或取缓存的）全量合并视图：目录 ⋈ 评分 + 差异标记
// 过滤和排序在副本上进行，缓存里永远是未过滤的全量
func (s *ratingService) joinedView(ctx context.Context) ([]models.HospitalRatingView, error) {
	if views, ok := s.cache.GetRatingsView(ctx); ok {
		return views, nil
	}

	hospitals, err := s.hospitalsRepo.ListHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hospital directory: %w", err)
	}
	ratings, err := s.ratingsRepo.ListRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rating records: %w", err)
	}

	views := aggregator.JoinRatings(hospitals, ratings)
	aggregator.FlagDisparities(views, s.analytics.DisparityGroupA, s.analytics.DisparityGroupB, s.analytics.DisparityGradeGap)

	s.cache.PutRatingsView(ctx, views)
	return views, nil
}

func (s *ratingService) ListHospitalRatings(ctx context.Context, req ListRatingsRequest) ([]models.HospitalRatingView, error) {
	views, err := s.joinedView(ctx)
	if err != nil {
		return nil, err
	}

	// 副本：排序不能污染缓存里的全量视图
	out := make([]models.HospitalRatingView, len(views))
	copy(out, views)

	out = aggregator.FilterByLocation(out, req.Location)

	switch req.Sort {
	case SortByGrade:
		aggregator.SortByGradeBestFirst(out)
	case SortByDisparity:
		aggregator.SortDisparityFirst(out)
	case "":
		// 保持目录顺序
	default:
		return nil, fmt.Errorf("%w: unsupported sort %q", ErrInvalidRequest, req.Sort)
	}

	return out, nil
}

func (s *ratingService) GetHospitalRating(ctx context.Context, hospitalID string) (*models.HospitalRatingView, error) {
	views, err := s.joinedView(ctx)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if views[i].HospitalID == hospitalID {
			v := views[i]
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrHospitalNotFound, hospitalID)
}
