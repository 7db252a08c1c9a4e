package pagination

import "errors"

// ErrInvalidQueryArgument is matched by every error Validate returns for a malformed,
// negative, or misaligned offset or limit. Its detail is safe to show to the requester.
var ErrInvalidQueryArgument = errors.New("invalid query argument")

// QueryArgumentError describes why pagination arguments were rejected.
type QueryArgumentError struct {
	Detail string
}

// Error returns the detail message.
func (e *QueryArgumentError) Error() string {
	return e.Detail
}

// Is reports whether target is ErrInvalidQueryArgument.
func (e *QueryArgumentError) Is(target error) bool {
	return target == ErrInvalidQueryArgument
}

func newQueryArgumentError(detail string) error {
	return &QueryArgumentError{Detail: detail}
}
