package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// PostgresRatingsRepository 评分记录Repository实现
// group_breakdown 存为 JSONB（族裔分组名 → {score, grade}）
type PostgresRatingsRepository struct {
	db *sql.DB
}

// NewPostgresRatingsRepository 创建评分记录Repository
func NewPostgresRatingsRepository(db *sql.DB) *PostgresRatingsRepository {
	return &PostgresRatingsRepository{db: db}
}

// 确保实现了接口
var _ RatingsRepository = (*PostgresRatingsRepository)(nil)

// GetRating 获取单家医院的评分记录
func (r *PostgresRatingsRepository) GetRating(ctx context.Context, hospitalID string) (*domain.RatingRecord, error) {
	if hospitalID == "" {
		return nil, fmt.Errorf("hospital_id is required")
	}

	query := `
		SELECT
			hospital_id,
			overall_score,
			COALESCE(overall_grade, '') as overall_grade,
			equity_gap_score,
			COALESCE(group_breakdown, '{}'::jsonb) as group_breakdown,
			updated_at
		FROM hospital_ratings
		WHERE hospital_id = $1
	`

	var rec domain.RatingRecord
	var breakdownRaw []byte
	err := r.db.QueryRowContext(ctx, query, hospitalID).Scan(
		&rec.HospitalID,
		&rec.OverallScore,
		&rec.OverallGrade,
		&rec.EquityGapScore,
		&breakdownRaw,
		&rec.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("rating for %s: %w", hospitalID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	if err := json.Unmarshal(breakdownRaw, &rec.GroupBreakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group breakdown: %w", err)
	}

	return &rec, nil
}

// ListRatings 获取全量评分记录（按 hospital_id 升序）
func (r *PostgresRatingsRepository) ListRatings(ctx context.Context) ([]domain.RatingRecord, error) {
	query := `
		SELECT
			hospital_id,
			overall_score,
			COALESCE(overall_grade, '') as overall_grade,
			equity_gap_score,
			COALESCE(group_breakdown, '{}'::jsonb) as group_breakdown,
			updated_at
		FROM hospital_ratings
		ORDER BY hospital_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var records []domain.RatingRecord
	for rows.Next() {
		var rec domain.RatingRecord
		var breakdownRaw []byte
		if err := rows.Scan(
			&rec.HospitalID,
			&rec.OverallScore,
			&rec.OverallGrade,
			&rec.EquityGapScore,
			&breakdownRaw,
			&rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		if err := json.Unmarshal(breakdownRaw, &rec.GroupBreakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal group breakdown: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}

	return records, nil
}

// UpsertRating 写入/覆盖一家医院的评分记录（同步任务）
func (r *PostgresRatingsRepository) UpsertRating(ctx context.Context, rec *domain.RatingRecord) error {
	if rec == nil || rec.HospitalID == "" {
		return fmt.Errorf("hospital_id is required")
	}

	breakdownRaw, err := json.Marshal(rec.GroupBreakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal group breakdown: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO hospital_ratings (
			hospital_id, overall_score, overall_grade,
			equity_gap_score, group_breakdown, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (hospital_id)
		DO UPDATE SET overall_score = EXCLUDED.overall_score,
		              overall_grade = EXCLUDED.overall_grade,
		              equity_gap_score = EXCLUDED.equity_gap_score,
		              group_breakdown = EXCLUDED.group_breakdown,
		              updated_at = EXCLUDED.updated_at`,
		rec.HospitalID,
		rec.OverallScore,
		rec.OverallGrade,
		rec.EquityGapScore,
		breakdownRaw,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}
