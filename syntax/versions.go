package syntax

import (
	_ "embed"
	"reflect"
	"sync"

	"github.com/ygrebnov/lightup/host"
)

// Latest is the newest syntax version.
const Latest = "3.0"

//go:embed versions.yaml
var manifestData []byte

var nodeTypes = []reflect.Type{
	reflect.TypeOf((*LiteralExpression)(nil)),
	reflect.TypeOf((*IdentifierName)(nil)),
	reflect.TypeOf((*RefExpression)(nil)),
	reflect.TypeOf((*ThrowExpression)(nil)),
	reflect.TypeOf((*RangeExpression)(nil)),
}

type registry struct {
	manifest *host.Manifest
	catalog  *host.Catalog
}

var (
	loadRegistry = sync.OnceValues(func() (*registry, error) {
		m, err := host.ParseManifest(manifestData)
		if err != nil {
			return nil, err
		}
		c, err := host.NewCatalog(nodeTypes...)
		if err != nil {
			return nil, err
		}
		return &registry{manifest: m, catalog: c}, nil
	})

	assemblies sync.Map // version -> *host.Assembly
)

// Versions lists the syntax versions, oldest first.
func Versions() []string {
	r, err := loadRegistry()
	if err != nil {
		panic(err)
	}
	return r.manifest.VersionNames()
}

// Assembly returns the host assembly of version. Every call for the same
// version returns the same *host.Assembly, so bindings built for it are shared.
func Assembly(version string) (*host.Assembly, error) {
	if a, ok := assemblies.Load(version); ok {
		return a.(*host.Assembly), nil
	}
	r, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	a, err := r.catalog.Assembly(r.manifest, version)
	if err != nil {
		return nil, err
	}
	v, _ := assemblies.LoadOrStore(version, a)
	return v.(*host.Assembly), nil
}

// MustAssembly is like Assembly but panics on error.
func MustAssembly(version string) *host.Assembly {
	a, err := Assembly(version)
	if err != nil {
		panic(err)
	}
	return a
}

// Use loads the assembly of version as the process-wide host and returns the previously loaded one.
func Use(version string) (previous *host.Assembly, err error) {
	a, err := Assembly(version)
	if err != nil {
		return nil, err
	}
	return host.Load(a), nil
}
