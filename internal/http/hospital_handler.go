package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/turisouvenir/Care-Equity/internal/service"

	"go.uber.org/zap"
)

// HospitalHandler 医院目录 + 情感聚合的 HTTP 处理器
type HospitalHandler struct {
	hospitalService  service.HospitalService
	sentimentService service.SentimentService
	logger           *zap.Logger
}

func NewHospitalHandler(
	hospitalService service.HospitalService,
	sentimentService service.SentimentService,
	logger *zap.Logger,
) *HospitalHandler {
	return &HospitalHandler{
		hospitalService:  hospitalService,
		sentimentService: sentimentService,
		logger:           logger,
	}
}

// ListHospitals GET /api/v1/hospitals?location=&page=&size=
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	page := parseInt(r.URL.Query().Get("page"), 1)
	size := parseInt(r.URL.Query().Get("size"), 50)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 500 {
		size = 50
	}

	hospitals, err := h.hospitalService.ListHospitals(r.Context(), location)
	if err != nil {
		h.logger.Error("failed to list hospitals", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to list hospitals"))
		return
	}

	total := len(hospitals)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, OkCount(hospitals[start:end], total))
}

// ServeHospitalSubtree 分发 /api/v1/hospitals/{id} 与 /api/v1/hospitals/{id}/sentiment
func (h *HospitalHandler) ServeHospitalSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/hospitals/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.getHospital(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "sentiment":
		h.getSentiment(w, r, parts[0])
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

func (h *HospitalHandler) getHospital(w http.ResponseWriter, r *http.Request, hospitalID string) {
	hospital, err := h.hospitalService.GetHospital(r.Context(), hospitalID)
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			writeJSON(w, http.StatusNotFound, Fail("hospital not found: "+hospitalID))
			return
		}
		h.logger.Error("failed to get hospital", zap.String("hospital_id", hospitalID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to get hospital"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(hospital))
}

func (h *HospitalHandler) getSentiment(w http.ResponseWriter, r *http.Request, hospitalID string) {
	view, err := h.sentimentService.GetHospitalSentiment(r.Context(), hospitalID)
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			writeJSON(w, http.StatusNotFound, Fail("hospital not found: "+hospitalID))
			return
		}
		h.logger.Error("failed to compute sentiment", zap.String("hospital_id", hospitalID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to compute sentiment"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(view))
}
