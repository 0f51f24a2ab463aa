package constants

const Namespace = "lightup"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// WithPrefix prefixes the host method that returns a copy of a node with one member replaced.
const WithPrefix = "With"
