package domain

// Hospital 医院目录领域模型（对应 hospitals 表）
// 只读参考数据：由 import-hospitals 种子导入，应用本身从不修改或删除
type Hospital struct {
	// 主键（人工编号，如 "HOSP_001"，所有其它实体的 join key）
	HospitalID string `db:"hospital_id"` // VARCHAR(50), PRIMARY KEY

	// 基本信息
	Name  string `db:"name"`  // VARCHAR(255), NOT NULL
	City  string `db:"city"`  // VARCHAR(100), NOT NULL
	State string `db:"state"` // VARCHAR(50), NOT NULL
}

// Location 组合展示位置（"city, state"）
// 前端按此字面值做精确过滤，大小写敏感
func (h Hospital) Location() string {
	return h.City + ", " + h.State
}
