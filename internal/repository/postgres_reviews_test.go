package repository

import (
	"context"
	"testing"
	"time"

	"github.com/turisouvenir/Care-Equity/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresReviewsRepository_CreateReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresReviewsRepository(db)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	review := &domain.Review{
		ReviewID:       "9e2f1a34-0000-0000-0000-000000000001",
		HospitalID:     "HOSP_001",
		Rating:         4,
		Comment:        "Short wait, attentive staff.",
		RaceEthnicity:  "Black",
		ExperienceType: "Compliment",
		Anonymous:      true,
		CreatedAt:      now,
	}

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(
			review.ReviewID, review.HospitalID, review.Rating, review.Comment,
			review.RaceEthnicity, review.ExperienceType, review.Anonymous, review.CreatedAt,
		).
		WillReturnRows(sqlmock.NewRows([]string{"review_id"}).AddRow(review.ReviewID))

	id, err := repo.CreateReview(context.Background(), review)
	require.NoError(t, err)
	assert.Equal(t, review.ReviewID, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewsRepository_ListReviewsByHospital(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresReviewsRepository(db)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"review_id", "hospital_id", "rating", "comment",
		"race_ethnicity", "experience_type", "anonymous", "created_at",
	}).
		AddRow("r1", "HOSP_001", 5, "Great care.", "White", "Compliment", true, now).
		AddRow("r2", "HOSP_001", 2, "Long wait.", "Black", "Complaint", true, now.Add(time.Hour))

	mock.ExpectQuery(`SELECT\s+review_id`).
		WithArgs("HOSP_001").
		WillReturnRows(rows)

	reviews, err := repo.ListReviewsByHospital(context.Background(), "HOSP_001")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r1", reviews[0].ReviewID)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Complaint", reviews[1].ExperienceType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewsRepository_ListRequiresHospitalID(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresReviewsRepository(db)
	_, err = repo.ListReviewsByHospital(context.Background(), "")
	assert.Error(t, err)
}
