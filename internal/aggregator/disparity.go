package aggregator

import (
	"github.com/turisouvenir/Care-Equity/internal/domain"
	"github.com/turisouvenir/Care-Equity/internal/models"
)

// DefaultDisparityGradeGap 默认显著差异阈值（等级序数差 >= 2，即至少隔两级）
const DefaultDisparityGradeGap = 2

// gradeOrdinals 等级序数（A 最高）；"N/A" 和未知等级不在表中
var gradeOrdinals = map[string]int{
	"A": 4,
	"B": 3,
	"C": 2,
	"D": 1,
}

// GradeOrdinal 返回等级序数；缺失/"N/A"/未知等级返回 0
func GradeOrdinal(grade string) int {
	return gradeOrdinals[grade]
}

// HasSignificantDisparity 判断两个族裔分组的等级差是否显著
// 任一分组缺失或为 "N/A" 时无法比较，按不显著处理
func HasSignificantDisparity(breakdown map[string]domain.GroupRating, groupA, groupB string, minGap int) bool {
	a := GradeOrdinal(breakdown[groupA].Grade)
	b := GradeOrdinal(breakdown[groupB].Grade)
	if a == 0 || b == 0 {
		return false
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff >= minGap
}

// FlagDisparities 在合并视图上就地标记显著差异
func FlagDisparities(views []models.HospitalRatingView, groupA, groupB string, minGap int) {
	for i := range views {
		views[i].SignificantDisparity = HasSignificantDisparity(views[i].GroupBreakdown, groupA, groupB, minGap)
	}
}
