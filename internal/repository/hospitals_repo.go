package repository

import (
	"context"
	"errors"

	"github.com/turisouvenir/Care-Equity/internal/domain"
)

// ErrNotFound 查询目标不存在
var ErrNotFound = errors.New("not found")

// HospitalsRepository 医院目录Repository接口
// 使用强类型领域模型，不使用map[string]any
// 目录是只读参考数据：应用只查询，写入仅发生在种子导入
type HospitalsRepository interface {
	// GetHospital 根据hospital_id获取医院；不存在时返回 ErrNotFound
	GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error)

	// ListHospitals 获取全量目录（目录规模小，聚合层需要全量，不分页）
	// 返回顺序稳定：按 hospital_id 升序
	ListHospitals(ctx context.Context) ([]domain.Hospital, error)

	// UpsertHospital 写入/更新目录条目（仅 import-hospitals 种子导入使用）
	UpsertHospital(ctx context.Context, h *domain.Hospital) error
}
