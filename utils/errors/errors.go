package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// AsCustomError unwraps err looking for a CustomError.
func AsCustomError(err error) (CustomError, bool) {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return CustomError{}, false
}

// Is reports whether err carries the given error type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := AsCustomError(err)
	return ok && ce.errType == errorType
}

// Normalize passes a CustomError found in err through unchanged. Any other
// error is logged under op and replaced by ErrInternal.
func Normalize(op string, err error) error {
	if err == nil {
		return nil
	}
	if ce, ok := AsCustomError(err); ok {
		return ce
	}
	logger.Error(op, zap.String("error", err.Error()))
	return SetCustomError(constant.ErrInternal)
}
