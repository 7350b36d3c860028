package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// PostgresHospitalsRepository 医院目录Repository实现
type PostgresHospitalsRepository struct {
	db *sql.DB
}

// NewPostgresHospitalsRepository 创建医院目录Repository
func NewPostgresHospitalsRepository(db *sql.DB) *PostgresHospitalsRepository {
	return &PostgresHospitalsRepository{db: db}
}

// 确保实现了接口
var _ HospitalsRepository = (*PostgresHospitalsRepository)(nil)

// GetHospital 根据hospital_id获取医院
func (r *PostgresHospitalsRepository) GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error) {
	if hospitalID == "" {
		return nil, fmt.Errorf("hospital_id is required")
	}

	query := `
		SELECT
			hospital_id,
			COALESCE(name, '') as name,
			COALESCE(city, '') as city,
			COALESCE(state, '') as state
		FROM hospitals
		WHERE hospital_id = $1
	`

	var h domain.Hospital
	err := r.db.QueryRowContext(ctx, query, hospitalID).Scan(
		&h.HospitalID,
		&h.Name,
		&h.City,
		&h.State,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("hospital %s: %w", hospitalID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}

	return &h, nil
}

// ListHospitals 获取全量目录（按 hospital_id 升序，保证稳定输出顺序）
func (r *PostgresHospitalsRepository) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	query := `
		SELECT
			hospital_id,
			COALESCE(name, '') as name,
			COALESCE(city, '') as city,
			COALESCE(state, '') as state
		FROM hospitals
		ORDER BY hospital_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	defer rows.Close()

	var hospitals []domain.Hospital
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.HospitalID, &h.Name, &h.City, &h.State); err != nil {
			return nil, fmt.Errorf("failed to scan hospital: %w", err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hospitals: %w", err)
	}

	return hospitals, nil
}

// UpsertHospital 写入/更新目录条目（种子导入）
func (r *PostgresHospitalsRepository) UpsertHospital(ctx context.Context, h *domain.Hospital) error {
	if h == nil || h.HospitalID == "" {
		return fmt.Errorf("hospital_id is required")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO hospitals (hospital_id, name, city, state)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (hospital_id)
		 DO UPDATE SET name = EXCLUDED.name,
		               city = EXCLUDED.city,
		               state = EXCLUDED.state`,
		h.HospitalID, h.Name, h.City, h.State,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hospital: %w", err)
	}
	return nil
}
