package myerrors

type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindConflict
	KindInternal
)

// RequestError carries a user-facing message plus the kind the server
// uses to pick the response status.
type RequestError struct {
	Kind    Kind
	Message string
}

func (r *RequestError) Error() string {
	return r.Message
}

func Validation(message string) *RequestError {
	return &RequestError{Kind: KindValidation, Message: message}
}

func Unauthorized(message string) *RequestError {
	return &RequestError{Kind: KindUnauthorized, Message: message}
}

func Conflict(message string) *RequestError {
	return &RequestError{Kind: KindConflict, Message: message}
}

func Internal(message string) *RequestError {
	return &RequestError{Kind: KindInternal, Message: message}
}
