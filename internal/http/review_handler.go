package httpapi

import (
	"errors"
	"net/http"

	"github.com/turisouvenir/Care-Equity/internal/service"

	"go.uber.org/zap"
)

// 请求体上限：评论正文最长 2000 字符，1MB 足够宽裕
const maxReviewBodyBytes = 1 << 20

// ReviewHandler 患者报告的 HTTP 处理器
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *zap.Logger
}

func NewReviewHandler(reviewService service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, logger: logger}
}

// SubmitReview POST /api/v1/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitReviewRequest
	if err := readBodyJSON(r, maxReviewBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	review, err := h.reviewService.SubmitReview(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReview):
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		case errors.Is(err, service.ErrHospitalNotFound):
			writeJSON(w, http.StatusNotFound, Fail(err.Error()))
		default:
			h.logger.Error("failed to submit review", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Fail("failed to submit review"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, OkMessage(review, "review submitted"))
}

// ListReviews GET /api/v1/reviews?hospital_id=
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.URL.Query().Get("hospital_id")
	if hospitalID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("hospital_id query parameter is required"))
		return
	}

	reviews, err := h.reviewService.ListReviews(r.Context(), hospitalID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReview):
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		case errors.Is(err, service.ErrHospitalNotFound):
			writeJSON(w, http.StatusNotFound, Fail(err.Error()))
		default:
			h.logger.Error("failed to list reviews", zap.String("hospital_id", hospitalID), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Fail("failed to list reviews"))
		}
		return
	}

	writeJSON(w, http.StatusOK, OkCount(reviews, len(reviews)))
}
