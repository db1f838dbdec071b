package custom_error

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type UniqueViolationError struct {
	message string
	code    string
}

type ForeignKeyViolationError struct {
	message string
	code    string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

// WrapDBError maps a postgres error code onto a typed error handlers can
// branch on.
func WrapDBError(message, code string) error {
	switch code {
	case "23505":
		return &UniqueViolationError{message: message, code: code}
	case "23503":
		return &ForeignKeyViolationError{message: message, code: code}
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}

// TranslatePQError rewraps a lib/pq error through WrapDBError; other
// errors pass through unchanged.
func TranslatePQError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return WrapDBError(pqErr.Message, string(pqErr.Code))
	}
	return err
}
