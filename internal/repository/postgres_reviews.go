package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// PostgresReviewsRepository 患者报告Repository实现（只追加）
type PostgresReviewsRepository struct {
	db *sql.DB
}

// NewPostgresReviewsRepository 创建患者报告Repository
func NewPostgresReviewsRepository(db *sql.DB) *PostgresReviewsRepository {
	return &PostgresReviewsRepository{db: db}
}

// 确保实现了接口
var _ ReviewsRepository = (*PostgresReviewsRepository)(nil)

// CreateReview 写入一条评论，返回 review_id
func (r *PostgresReviewsRepository) CreateReview(ctx context.Context, review *domain.Review) (string, error) {
	if review == nil {
		return "", fmt.Errorf("review is required")
	}

	query := `
		INSERT INTO reviews (
			review_id, hospital_id, rating, comment,
			race_ethnicity, experience_type, anonymous, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING review_id
	`

	var reviewID string
	err := r.db.QueryRowContext(ctx, query,
		review.ReviewID,
		review.HospitalID,
		review.Rating,
		review.Comment,
		review.RaceEthnicity,
		review.ExperienceType,
		review.Anonymous,
		review.CreatedAt,
	).Scan(&reviewID)
	if err != nil {
		return "", fmt.Errorf("failed to create review: %w", err)
	}

	return reviewID, nil
}

// ListReviewsByHospital 按医院查询全部评论（创建时间升序）
func (r *PostgresReviewsRepository) ListReviewsByHospital(ctx context.Context, hospitalID string) ([]domain.Review, error) {
	if hospitalID == "" {
		return nil, fmt.Errorf("hospital_id is required")
	}

	query := `
		SELECT
			review_id,
			hospital_id,
			rating,
			COALESCE(comment, '') as comment,
			COALESCE(race_ethnicity, '') as race_ethnicity,
			COALESCE(experience_type, '') as experience_type,
			anonymous,
			created_at
		FROM reviews
		WHERE hospital_id = $1
		ORDER BY created_at, review_id
	`

	rows, err := r.db.QueryContext(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ReviewID,
			&rv.HospitalID,
			&rv.Rating,
			&rv.Comment,
			&rv.RaceEthnicity,
			&rv.ExperienceType,
			&rv.Anonymous,
			&rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}
