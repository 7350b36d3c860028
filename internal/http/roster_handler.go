package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/turisouvenir/Care-Equity/internal/repository"

	"go.uber.org/zap"
)

// RosterHandler 医院名册导入/导出的 HTTP 处理器（管理端）
type RosterHandler struct {
	hospitalsRepo repository.HospitalsRepository
	logger        *zap.Logger
}

func NewRosterHandler(hospitalsRepo repository.HospitalsRepository, logger *zap.Logger) *RosterHandler {
	return &RosterHandler{hospitalsRepo: hospitalsRepo, logger: logger}
}

// ExportRoster GET /admin/api/v1/hospitals/export
func (h *RosterHandler) ExportRoster(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalsRepo.ListHospitals(r.Context())
	if err != nil {
		h.logger.Error("ListHospitals failed for export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to list hospitals"))
		return
	}

	excelData, err := GenerateHospitalRosterExport(hospitals)
	if err != nil {
		h.logger.Error("GenerateHospitalRosterExport failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("failed to generate export: %v", err)))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=hospital-roster.xlsx")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(excelData)
}

// ImportTemplate GET /admin/api/v1/hospitals/import-template
func (h *RosterHandler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	excelData, err := GenerateHospitalRosterTemplate()
	if err != nil {
		h.logger.Error("GenerateHospitalRosterTemplate failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("failed to generate template: %v", err)))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=hospital-roster-template.xlsx")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(excelData)
}

// ImportRoster POST /admin/api/v1/hospitals/import
// multipart 表单，字段名 "file"，上限 10MB
func (h *RosterHandler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("failed to parse form"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("file not found in request"))
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("failed to read file"))
		return
	}

	hospitals, rowErrors, err := ParseHospitalRoster(fileBytes)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	successCount := 0
	for i := range hospitals {
		if err := h.hospitalsRepo.UpsertHospital(ctx, &hospitals[i]); err != nil {
			h.logger.Error("UpsertHospital failed during import",
				zap.String("hospital_id", hospitals[i].HospitalID),
				zap.Error(err),
			)
			rowErrors = append(rowErrors, fmt.Sprintf("%s: %v", hospitals[i].HospitalID, err))
			continue
		}
		successCount++
	}

	if rowErrors == nil {
		rowErrors = []string{}
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"total":         len(hospitals),
		"success_count": successCount,
		"failed_count":  len(hospitals) - successCount,
		"errors":        rowErrors,
	}))
}
