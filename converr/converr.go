package converr

import "fmt"

type ErrorCode uint32

// Codes returned by the checked conversion entry points.
const (
	InvalidBase ErrorCode = iota + 1
	BufferTooSmall
)

type Error interface {
	error
	GetCode() ErrorCode
	GetErr() error
}

type ConvError struct {
	Err error
	ErrorCode
}

func (e *ConvError) Error() string {
	return fmt.Sprintf("CONV[%04d] %s", e.GetCode(), e.Err.Error())
}

func (e *ConvError) GetCode() ErrorCode {
	return e.ErrorCode
}

func (e *ConvError) GetErr() error {
	return e.Err
}

func New(errorCode ErrorCode, errorFormat string, args ...any) Error {
	return &ConvError{ErrorCode: errorCode, Err: fmt.Errorf(errorFormat, args...)}
}
