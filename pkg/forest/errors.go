package forest

import "errors"

var (
	// ErrEmptyData is returned when training receives no records.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidParameters wraps every parameter violation.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrNilGenerator is returned when no candidate generator is supplied.
	ErrNilGenerator = errors.New("nil candidate generator")
)
