package service

import (
	"context"
	"strings"
	"testing"

	"github.com/turisouvenir/Care-Equity/internal/domain"
	"github.com/turisouvenir/Care-Equity/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupReviewService(t *testing.T) (ReviewService, *repository.MemoryReviewsRepository) {
	t.Helper()
	hospitalsRepo := repository.NewMemoryHospitalsRepository()
	require.NoError(t, hospitalsRepo.UpsertHospital(context.Background(), &domain.Hospital{
		HospitalID: "HOSP_001", Name: "General Hospital", City: "Atlanta", State: "GA",
	}))
	reviewsRepo := repository.NewMemoryReviewsRepository()
	svc := NewReviewService(reviewsRepo, hospitalsRepo, nil, nil, zap.NewNop())
	return svc, reviewsRepo
}

func validSubmitRequest() SubmitReviewRequest {
	return SubmitReviewRequest{
		HospitalID:     "HOSP_001",
		Rating:         4,
		Comment:        "Short wait, attentive staff.",
		RaceEthnicity:  "Black",
		ExperienceType: "Compliment",
	}
}

func TestSubmitReview_Success(t *testing.T) {
	svc, reviewsRepo := setupReviewService(t)

	review, err := svc.SubmitReview(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, review.ReviewID)
	assert.True(t, review.Anonymous, "reviews are always anonymous")
	assert.False(t, review.CreatedAt.IsZero())

	stored, err := reviewsRepo.ListReviewsByHospital(context.Background(), "HOSP_001")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, review.ReviewID, stored[0].ReviewID)
}

func TestSubmitReview_RejectsFirstViolation(t *testing.T) {
	svc, _ := setupReviewService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*SubmitReviewRequest)
	}{
		{"missing hospital id", func(r *SubmitReviewRequest) { r.HospitalID = "" }},
		{"rating too low", func(r *SubmitReviewRequest) { r.Rating = 0 }},
		{"rating too high", func(r *SubmitReviewRequest) { r.Rating = 6 }},
		{"empty comment", func(r *SubmitReviewRequest) { r.Comment = "   " }},
		{"comment too long", func(r *SubmitReviewRequest) { r.Comment = strings.Repeat("x", domain.MaxCommentLength+1) }},
		{"unknown race/ethnicity", func(r *SubmitReviewRequest) { r.RaceEthnicity = "Martian" }},
		{"unknown experience type", func(r *SubmitReviewRequest) { r.ExperienceType = "Rant" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmitRequest()
			tc.mutate(&req)
			_, err := svc.SubmitReview(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidReview)
		})
	}
}

func TestSubmitReview_UnknownHospital(t *testing.T) {
	svc, _ := setupReviewService(t)

	req := validSubmitRequest()
	req.HospitalID = "HOSP_404"

	_, err := svc.SubmitReview(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestListReviews_UnknownHospital(t *testing.T) {
	svc, _ := setupReviewService(t)

	_, err := svc.ListReviews(context.Background(), "HOSP_404")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}
