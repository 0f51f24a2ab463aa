package lightup

import "github.com/ygrebnov/lightup/host"

// ShapeOption configures a Shape at declaration.
type ShapeOption func(*shapeConfig)

type shapeConfig struct {
	source func() *host.Assembly
}

// WithHostSource makes the shape resolve against the assembly returned by
// source instead of host.Loaded. source is called on every access and must be cheap.
func WithHostSource(source func() *host.Assembly) ShapeOption {
	if source == nil {
		panic("lightup: WithHostSource: source is nil")
	}
	return func(c *shapeConfig) { c.source = source }
}

// WithHost pins the shape to one assembly.
func WithHost(a *host.Assembly) ShapeOption {
	return WithHostSource(func() *host.Assembly { return a })
}
