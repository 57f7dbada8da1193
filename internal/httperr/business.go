package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// FieldError carries validation failures scoped to individual request
// fields, so uniqueness conflicts surface as 400s keyed by field rather
// than generic storage errors.
type FieldError struct {
	Fields map[string]string
}

func (e FieldError) Error() string {
	for field, msg := range e.Fields {
		return field + ": " + msg
	}
	return "validation failed"
}

func ErrField(field, message string) error {
	return FieldError{Fields: map[string]string{field: message}}
}

func ErrFields(fields map[string]string) error {
	return FieldError{Fields: fields}
}

func AsFieldError(err error) (FieldError, bool) {
	var fe FieldError
	ok := errors.As(err, &fe)
	return fe, ok
}
