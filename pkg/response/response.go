// Package response defines the envelope every endpoint answers with:
// a message, a business code and an optional payload. Business failures
// travel inside the envelope; the HTTP status stays 200.
package response

type ResponseCode int

// Shared business code for successful calls
const (
	Success = 100
)

type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}
