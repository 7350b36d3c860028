package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/turisouvenir/Care-Equity/internal/service"

	"go.uber.org/zap"
)

// RatingHandler 合并评分视图的 HTTP 处理器
type RatingHandler struct {
	ratingService service.RatingService
	logger        *zap.Logger
}

func NewRatingHandler(ratingService service.RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{ratingService: ratingService, logger: logger}
}

// ListRatings GET /api/v1/ratings?sort=&location=
func (h *RatingHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	req := service.ListRatingsRequest{
		Sort:     r.URL.Query().Get("sort"),
		Location: r.URL.Query().Get("location"),
	}

	views, err := h.ratingService.ListHospitalRatings(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
			return
		}
		h.logger.Error("failed to list ratings", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to list ratings"))
		return
	}

	writeJSON(w, http.StatusOK, OkCount(views, len(views)))
}

// GetRating GET /api/v1/ratings/{id}
func (h *RatingHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	hospitalID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/ratings/"), "/")
	if hospitalID == "" || strings.Contains(hospitalID, "/") {
		writeJSON(w, http.StatusNotFound, Fail("not found"))
		return
	}

	view, err := h.ratingService.GetHospitalRating(r.Context(), hospitalID)
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			writeJSON(w, http.StatusNotFound, Fail("hospital not found: "+hospitalID))
			return
		}
		h.logger.Error("failed to get rating", zap.String("hospital_id", hospitalID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to get rating"))
		return
	}

	writeJSON(w, http.StatusOK, Ok(view))
}
