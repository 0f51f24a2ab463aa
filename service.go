package lightup

import (
	"sync"

	"github.com/ygrebnov/lightup/host"
	"github.com/ygrebnov/lightup/internal/core"
)

// services holds one core.Service per host-assembly load for the process
// lifetime, so bindings built for an assembly stay valid after host.Load
// switches to another one.
var services sync.Map // map[*host.Assembly]*core.Service

// detached serves shapes while no host assembly is loaded; every type is absent.
var detached = core.NewService(nil)

func serviceFor(a *host.Assembly) *core.Service {
	if a == nil {
		return detached
	}
	if v, ok := services.Load(a); ok {
		return v.(*core.Service)
	}
	v, _ := services.LoadOrStore(a, core.NewService(a))
	return v.(*core.Service)
}
