package lightup

import "github.com/ygrebnov/lightup/errors"

// Sentinel errors of shape declaration and casting. Use errors.Is to match.
var (
	ErrIncompatibleShape = errors.ErrIncompatibleShape
	ErrMalformedTypeName = errors.ErrMalformedTypeName
	ErrInvalidMemberName = errors.ErrInvalidMemberName
)
