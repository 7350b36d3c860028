package domain

import "time"

// GradeNA 无评分记录时的占位等级
const GradeNA = "N/A"

// GroupRating 单个族裔分组的评分
type GroupRating struct {
	Score float64 `json:"score"`
	Grade string  `json:"grade"`
}

// RatingRecord 医院综合评分记录（对应 hospital_ratings 表）
// 由外部批量评分服务基于结果数据+评论计算产出，本服务只同步读取
type RatingRecord struct {
	// 医院（外键，每家医院至多一条）
	HospitalID string `db:"hospital_id"` // VARCHAR(50), PRIMARY KEY, REFERENCES hospitals

	// 综合评分
	OverallScore float64 `db:"overall_score"` // NUMERIC, 0-100
	OverallGrade string  `db:"overall_grade"` // VARCHAR(3), A/B/C/D

	// 公平性差距分数（族裔分组间结果差异的数值度量）
	EquityGapScore float64 `db:"equity_gap_score"` // NUMERIC

	// 分组明细：族裔分组名 → {score, grade}
	GroupBreakdown map[string]GroupRating `db:"group_breakdown"` // JSONB, nullable

	// 最后更新时间
	UpdatedAt time.Time `db:"updated_at"` // TIMESTAMPTZ, NOT NULL
}
