package service

import "errors"

// Service 层错误哨兵（handler 据此映射 HTTP 状态码）
var (
	// ErrInvalidRequest 请求参数不合法（→ 400）
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidReview 评论提交未通过边界校验（→ 400）
	ErrInvalidReview = errors.New("invalid review")

	// ErrHospitalNotFound 引用的医院不存在（→ 404）
	ErrHospitalNotFound = errors.New("hospital not found")
)
