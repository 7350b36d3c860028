package repository

import (
	"context"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// RatingsRepository 评分记录Repository接口
// 记录由外部批量评分服务产出；本服务读取 + 同步任务Upsert
type RatingsRepository interface {
	// GetRating 获取单家医院的评分记录；不存在时返回 ErrNotFound
	GetRating(ctx context.Context, hospitalID string) (*domain.RatingRecord, error)

	// ListRatings 获取全量评分记录（合并视图需要全量，不分页）
	ListRatings(ctx context.Context) ([]domain.RatingRecord, error)

	// UpsertRating 写入/覆盖一家医院的评分记录（仅同步任务使用）
	UpsertRating(ctx context.Context, r *domain.RatingRecord) error
}
