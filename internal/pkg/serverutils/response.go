package serverutils

// BaseResponse is the envelope every endpoint returns.
type BaseResponse[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Data    T        `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code, message string, fields ...string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Message: message,
		Code:    code,
		Fields:  fields,
	}
}
