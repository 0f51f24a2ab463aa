package lightup

// ShapeInfo is a snapshot of what the current host supports of a shape.
type ShapeInfo struct {
	Name      string       `json:"name" yaml:"name"`
	Host      string       `json:"host" yaml:"host"`
	Supported bool         `json:"supported" yaml:"supported"`
	Members   []MemberInfo `json:"members,omitempty" yaml:"members,omitempty"`
}

// MemberInfo reports the bindings available for one property.
type MemberInfo struct {
	Name        string `json:"name" yaml:"name"`
	Readable    bool   `json:"readable" yaml:"readable"`
	Replaceable bool   `json:"replaceable" yaml:"replaceable"`
}
