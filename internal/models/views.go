package models

import (
	"time"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// HospitalRatingView 医院+评分合并视图（owlFront 的评分列表页消费）
// 目录是权威：无评分记录的医院也会出现，填充默认值而不是被省略
type HospitalRatingView struct {
	HospitalID string `json:"hospitalId"`
	Name       string `json:"name"`
	Location   string `json:"location"` // "city, state"

	OverallGrade   string   `json:"overallGrade"`   // 无记录时 "N/A"
	OverallScore   *float64 `json:"overallScore"`   // 无记录时 null（0 是合法分数，不能当缺失处理）
	EquityGapScore *float64 `json:"equityGapScore"` // 无记录时 null

	// 永不为 nil：无记录时为空 map，前端可安全遍历 keys
	GroupBreakdown map[string]domain.GroupRating `json:"groupBreakdown"`

	LastUpdated *time.Time `json:"lastUpdated,omitempty"`

	// 两个对比分组的等级差是否显著（用于前端排序/标记，不落库）
	SignificantDisparity bool `json:"significantDisparity"`
}

// SentimentView 单医院情感聚合结果
type SentimentView struct {
	Sentiment          string      `json:"sentiment"` // positive/neutral/negative
	Summary            string      `json:"summary"`
	AverageRating      float64     `json:"averageRating"` // 保留一位小数
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution"` // 1-5 星直方图
}
