package repository

import (
	"context"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// ReviewsRepository 患者报告Repository接口
// 只追加：没有更新/删除方法，评论创建后不可变
type ReviewsRepository interface {
	// CreateReview 写入一条评论，返回 review_id
	// 外键存在性由 Service 层在写入前校验
	CreateReview(ctx context.Context, r *domain.Review) (string, error)

	// ListReviewsByHospital 按医院查询全部评论（按创建时间升序，供聚合使用）
	ListReviewsByHospital(ctx context.Context, hospitalID string) ([]domain.Review, error)
}
