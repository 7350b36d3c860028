package aggregator

import (
	"github.com/turisouvenir/Care-Equity/internal/domain"
	"github.com/turisouvenir/Care-Equity/internal/models"
)

// JoinRatings 合并医院目录与评分记录，每家医院恰好输出一条
// - 目录是权威：评分记录缺失时填充默认值（grade="N/A"、score=null）而不是丢弃医院
// - 同一医院出现多条评分时取输入顺序中的第一条（确定性）
// - 输出顺序跟随目录输入顺序
// - 纯函数：不修改输入，不保留输入的引用
func JoinRatings(hospitals []domain.Hospital, ratings []domain.RatingRecord) []models.HospitalRatingView {
	byHospital := make(map[string]int, len(ratings))
	for i := range ratings {
		if _, ok := byHospital[ratings[i].HospitalID]; !ok {
			byHospital[ratings[i].HospitalID] = i
		}
	}

	out := make([]models.HospitalRatingView, 0, len(hospitals))
	for _, h := range hospitals {
		view := models.HospitalRatingView{
			HospitalID:     h.HospitalID,
			Name:           h.Name,
			Location:       h.Location(),
			OverallGrade:   domain.GradeNA,
			GroupBreakdown: map[string]domain.GroupRating{},
		}

		if idx, ok := byHospital[h.HospitalID]; ok {
			r := ratings[idx]
			if r.OverallGrade != "" {
				view.OverallGrade = r.OverallGrade
			}
			score := r.OverallScore
			view.OverallScore = &score
			gap := r.EquityGapScore
			view.EquityGapScore = &gap
			for group, gr := range r.GroupBreakdown {
				view.GroupBreakdown[group] = gr
			}
			updated := r.UpdatedAt
			view.LastUpdated = &updated
		}

		out = append(out, view)
	}
	return out
}
