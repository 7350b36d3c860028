package domain

import "time"

// MaxCommentLength 评论正文长度上限
const MaxCommentLength = 2000

// RaceEthnicities 种族/族裔封闭枚举（提交时校验，枚举外的值一律拒绝）
var RaceEthnicities = []string{
	"Black",
	"White",
	"Hispanic",
	"Asian",
	"Native American",
	"Pacific Islander",
	"Other",
}

// ExperienceTypes 体验类型封闭枚举
var ExperienceTypes = []string{
	"Compliment",
	"Complaint",
	"Suggestion",
	"General Feedback",
}

// IsValidRaceEthnicity 校验族裔分组是否属于封闭枚举
func IsValidRaceEthnicity(v string) bool {
	for _, r := range RaceEthnicities {
		if r == v {
			return true
		}
	}
	return false
}

// IsValidExperienceType 校验体验类型是否属于封闭枚举
func IsValidExperienceType(v string) bool {
	for _, e := range ExperienceTypes {
		if e == v {
			return true
		}
	}
	return false
}

// Review 患者报告领域模型（对应 reviews 表）
// 匿名提交，只追加：创建后从不更新或删除
type Review struct {
	// 主键
	ReviewID string `db:"review_id"` // UUID, PRIMARY KEY

	// 医院（外键，写入时校验存在性）
	HospitalID string `db:"hospital_id"` // VARCHAR(50), NOT NULL, REFERENCES hospitals

	// 报告内容
	Rating         int    `db:"rating"`          // INTEGER, NOT NULL, 1-5
	Comment        string `db:"comment"`         // TEXT, NOT NULL（非空，长度受限）
	RaceEthnicity  string `db:"race_ethnicity"`  // VARCHAR(50), NOT NULL（封闭枚举）
	ExperienceType string `db:"experience_type"` // VARCHAR(50), NOT NULL（封闭枚举）

	// 匿名标记（恒为 true）
	Anonymous bool `db:"anonymous"` // BOOLEAN, NOT NULL, DEFAULT TRUE

	// 时间
	CreatedAt time.Time `db:"created_at"` // TIMESTAMPTZ, NOT NULL
}
