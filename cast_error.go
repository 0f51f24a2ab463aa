package lightup

import (
	"encoding/json"
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/lightup/errors"
	"github.com/ygrebnov/lightup/internal/core"
)

// CastError is returned when a node is cast to a shape it does not have.
// It unwraps to errors.ErrIncompatibleShape so callers can use errors.Is.
type CastError struct {
	NodeType string // qualified type name of the node
	Shape    string // qualified name of the expected shape
	Err      error
}

func newCastError(node any, shape string) *CastError {
	nodeType := core.TypeName(node)
	return &CastError{
		NodeType: nodeType,
		Shape:    shape,
		Err: errorc.With(
			errors.ErrIncompatibleShape,
			errorc.String(errors.ErrorFieldShapeName, shape),
			errorc.String(errors.ErrorFieldNodeType, nodeType),
		),
	}
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot cast '%s' to '%s'", e.NodeType, e.Shape)
}

func (e *CastError) Unwrap() error { return e.Err }

// MarshalJSON exports CastError as an object with node type, shape, and message fields.
func (e *CastError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		NodeType string `json:"nodeType"`
		Shape    string `json:"shape"`
		Message  string `json:"message"`
	}{
		NodeType: e.NodeType,
		Shape:    e.Shape,
		Message:  msg,
	})
}
