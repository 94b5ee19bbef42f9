package response

// Business error codes
const (
	// Generic failure
	Fail ResponseCode = 0
	// Request body could not be parsed
	ParseError ResponseCode = 1
	// A parameter failed validation
	InvalidParameter ResponseCode = 2
	// Missing or invalid credentials
	Unauthorized ResponseCode = 3
	// Authenticated but not allowed to perform the action
	Forbidden ResponseCode = 4
	// Referenced entity does not exist
	NotFound ResponseCode = 5
	// The requested state already exists
	Conflict ResponseCode = 6
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}
