package host

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"
	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/lightup/errors"
)

// Manifest declares which types of a host package exist in each of its versions.
type Manifest struct {
	// Name is the import path of the host package. Type names in Versions are relative to it.
	Name     string            `yaml:"name"`
	Versions []ManifestVersion `yaml:"versions"`
}

// ManifestVersion lists the types a version adds on top of the version it extends.
type ManifestVersion struct {
	Version string   `yaml:"version"`
	Extends string   `yaml:"extends,omitempty"`
	Types   []string `yaml:"types"`
}

// ParseManifest parses and validates YAML manifest data.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errorc.With(errors.ErrInvalidManifest, errorc.Error(errors.ErrorFieldCause, err))
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	invalid := func(version, reason string) error {
		return errorc.With(
			errors.ErrInvalidManifest,
			errorc.String(errors.ErrorFieldHostName, m.Name),
			errorc.String(errors.ErrorFieldHostVersion, version),
			errorc.String(errors.ErrorFieldCause, reason),
		)
	}

	if !isImportPath(m.Name) {
		return invalid("", "name must be an import path")
	}
	if len(m.Versions) == 0 {
		return invalid("", "no versions declared")
	}

	seen := make(map[string]bool, len(m.Versions))
	for _, v := range m.Versions {
		if v.Version == "" {
			return invalid("", "empty version")
		}
		if seen[v.Version] {
			return invalid(v.Version, "duplicate version")
		}
		seen[v.Version] = true
		for _, typeName := range v.Types {
			if !isIdentifier(typeName) {
				return invalid(v.Version, fmt.Sprintf("type %q is not an identifier", typeName))
			}
		}
	}
	for _, v := range m.Versions {
		if v.Extends != "" && !seen[v.Extends] {
			return invalid(v.Version, fmt.Sprintf("extends unknown version %q", v.Extends))
		}
		if _, err := m.chain(v.Version); err != nil {
			return err
		}
	}
	return nil
}

// VersionNames returns the declared versions in declaration order.
func (m *Manifest) VersionNames() []string {
	versions := make([]string, 0, len(m.Versions))
	for _, v := range m.Versions {
		versions = append(versions, v.Version)
	}
	return versions
}

// TypeNames returns the qualified names of every type present in version,
// including the ones inherited through extends.
func (m *Manifest) TypeNames(version string) ([]string, error) {
	chain, err := m.chain(version)
	if err != nil {
		return nil, err
	}
	var names []string
	seen := make(map[string]bool)
	// oldest first, so inherited types come before the ones a version adds
	for i := len(chain) - 1; i >= 0; i-- {
		for _, typeName := range chain[i].Types {
			qn := m.Name + "." + typeName
			if !seen[qn] {
				seen[qn] = true
				names = append(names, qn)
			}
		}
	}
	return names, nil
}

// chain returns version followed by every version it extends, transitively.
func (m *Manifest) chain(version string) ([]ManifestVersion, error) {
	byVersion := make(map[string]ManifestVersion, len(m.Versions))
	for _, v := range m.Versions {
		byVersion[v.Version] = v
	}

	var chain []ManifestVersion
	visited := make(map[string]bool)
	for cur := version; cur != ""; {
		v, ok := byVersion[cur]
		if !ok {
			return nil, errorc.With(
				errors.ErrUnknownHostVersion,
				errorc.String(errors.ErrorFieldHostName, m.Name),
				errorc.String(errors.ErrorFieldHostVersion, cur),
			)
		}
		if visited[cur] {
			return nil, errorc.With(
				errors.ErrInvalidManifest,
				errorc.String(errors.ErrorFieldHostName, m.Name),
				errorc.String(errors.ErrorFieldHostVersion, version),
				errorc.String(errors.ErrorFieldCause, "extends cycle"),
			)
		}
		visited[cur] = true
		chain = append(chain, v)
		cur = v.Extends
	}
	return chain, nil
}

// Catalog holds every type a host package can offer, across all versions.
type Catalog struct {
	types map[string]reflect.Type
}

// NewCatalog indexes types by their qualified name.
func NewCatalog(types ...reflect.Type) (*Catalog, error) {
	// reuse the assembly checks for unnamed and duplicate types
	a, err := NewAssembly("catalog", "", types...)
	if err != nil {
		return nil, err
	}
	return &Catalog{types: a.types}, nil
}

// Assembly builds the Assembly holding the catalog types present in one manifest version.
func (c *Catalog) Assembly(m *Manifest, version string) (*Assembly, error) {
	names, err := m.TypeNames(version)
	if err != nil {
		return nil, err
	}
	types := make([]reflect.Type, 0, len(names))
	for _, qn := range names {
		t, ok := c.types[qn]
		if !ok {
			return nil, errorc.With(
				errors.ErrUnknownHostType,
				errorc.String(errors.ErrorFieldHostName, m.Name),
				errorc.String(errors.ErrorFieldHostVersion, version),
				errorc.String(errors.ErrorFieldTypeName, qn),
			)
		}
		types = append(types, t)
	}
	return NewAssembly(m.Name, version, types...)
}
