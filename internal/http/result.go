package httpapi

// Response 与 owlFront 约定的统一响应信封
// - success: 请求是否成功
// - data: 负载（可选）
// - count: 列表长度（可选，仅列表响应携带）
// - error: 失败原因（仅失败时携带）
// - message: 附加提示（可选）
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func Ok(data any) Response {
	return Response{Success: true, Data: data}
}

func OkCount(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

func OkMessage(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

func Fail(errMsg string) Response {
	return Response{Success: false, Error: errMsg}
}
