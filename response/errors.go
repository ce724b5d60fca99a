package response

import "strings"

type BusinessError struct {
	Code     ResponseCode
	Messages []string
	Err      error
}

func (be *BusinessError) Error() string {
	return strings.Join(be.Messages, "; ")
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Messages = append(be.Messages, msg)
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
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	if len(err.Messages) == 0 {
		err.Messages = []string{"business error"}
	}
	return err
}
