package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/lightup/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	ErrIncompatibleShape  = namespace.NewError("incompatible shape")
	ErrMalformedTypeName  = namespace.NewError("malformed qualified type name")
	ErrInvalidMemberName  = namespace.NewError("invalid member name")
	ErrInvalidHostType    = namespace.NewError("host type must be a named type")
	ErrDuplicateHostType  = namespace.NewError("duplicate host type")
	ErrInvalidManifest    = namespace.NewError("invalid host manifest")
	ErrUnknownHostVersion = namespace.NewError("unknown host version")
	ErrUnknownHostType    = namespace.NewError("unknown host type")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentShape  = "shape"
	keySegmentNode   = "node"
	keySegmentMember = "member"
	keySegmentHost   = "host"
)

// Exported structured error field keys
var (
	ErrorFieldShapeName = newKey("name", keySegmentShape) // lightup.shape.name
	ErrorFieldNodeType  = newKey("type", keySegmentNode)  // lightup.node.type
)

var (
	ErrorFieldMemberName = newKey("name", keySegmentMember) // lightup.member.name
)

var (
	ErrorFieldHostName    = newKey("name", keySegmentHost)    // lightup.host.name
	ErrorFieldHostVersion = newKey("version", keySegmentHost) // lightup.host.version
	ErrorFieldTypeName    = newKey("type", keySegmentHost)    // lightup.host.type
)

var (
	ErrorFieldCause = newKey("cause")
)
