package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterHealthRoute 健康检查
func (r *Router) RegisterHealthRoute() {
	r.Handle("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// RegisterHospitalRoutes 医院目录 + 情感聚合路由
func (r *Router) RegisterHospitalRoutes(h *HospitalHandler) {
	r.Handle("/api/v1/hospitals", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListHospitals(w, req)
	})
	// /api/v1/hospitals/{id} 和 /api/v1/hospitals/{id}/sentiment
	r.Handle("/api/v1/hospitals/", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ServeHospitalSubtree(w, req)
	})
}

// RegisterReviewRoutes 患者报告路由
func (r *Router) RegisterReviewRoutes(h *ReviewHandler) {
	r.Handle("/api/v1/reviews", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			h.ListReviews(w, req)
		case http.MethodPost:
			h.SubmitReview(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// RegisterRatingRoutes 合并评分视图路由
func (r *Router) RegisterRatingRoutes(h *RatingHandler) {
	r.Handle("/api/v1/ratings", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListRatings(w, req)
	})
	r.Handle("/api/v1/ratings/", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.GetRating(w, req)
	})
}

// RegisterAdminRosterRoutes 目录名册导入/导出（Excel）
func (r *Router) RegisterAdminRosterRoutes(h *RosterHandler) {
	r.Handle("/admin/api/v1/hospitals/export", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ExportRoster(w, req)
	})
	r.Handle("/admin/api/v1/hospitals/import-template", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ImportTemplate(w, req)
	})
	r.Handle("/admin/api/v1/hospitals/import", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ImportRoster(w, req)
	})
}
