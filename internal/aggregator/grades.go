package aggregator

import (
	"sort"

	"github.com/turisouvenir/Care-Equity/internal/domain"
	"github.com/turisouvenir/Care-Equity/internal/models"
)

// gradeSortRank 排序权重：A < B < C < D < N/A < 其它
func gradeSortRank(grade string) int {
	switch grade {
	case "A":
		return 0
	case "B":
		return 1
	case "C":
		return 2
	case "D":
		return 3
	case domain.GradeNA:
		return 4
	default:
		return 5
	}
}

// SortByGradeBestFirst 按等级稳定排序（最好在前，同级保持原有相对顺序）
func SortByGradeBestFirst(views []models.HospitalRatingView) {
	sort.SliceStable(views, func(i, j int) bool {
		return gradeSortRank(views[i].OverallGrade) < gradeSortRank(views[j].OverallGrade)
	})
}

// SortDisparityFirst 标记了显著差异的医院排在前面
// 稳定排序：同为显著或同为不显著的医院之间保持原有相对顺序
func SortDisparityFirst(views []models.HospitalRatingView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].SignificantDisparity && !views[j].SignificantDisparity
	})
}

// FilterByLocation 按 "city, state" 字面值精确过滤（大小写敏感，不做模糊匹配）
// location 为空时返回全部
func FilterByLocation(views []models.HospitalRatingView, location string) []models.HospitalRatingView {
	if location == "" {
		return views
	}
	out := make([]models.HospitalRatingView, 0, len(views))
	for _, v := range views {
		if v.Location == location {
			out = append(out, v)
		}
	}
	return out
}
