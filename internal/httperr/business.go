package httperr

import "net/http"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindInternal
)

// AppError é o erro de negócio que sobe das camadas de usecase até o
// middleware de erro, que o serializa com o status HTTP do Kind.
type AppError struct {
	Kind    Kind
	Message string
	Details []string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string, details ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Conflict(message string, details ...string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Details: details}
}

func Internal(message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message}
}
