package host

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lightuperrors "github.com/ygrebnov/lightup/errors"
)

type namedInt int

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"nil", nil, ""},
		{"struct", reflect.TypeOf(alphaNode{}), thisPkg + ".alphaNode"},
		{"pointer to struct", reflect.TypeOf(&alphaNode{}), thisPkg + ".alphaNode"},
		{"pointer to pointer", reflect.TypeOf((**alphaNode)(nil)), thisPkg + ".alphaNode"},
		{"named scalar", reflect.TypeOf(namedInt(0)), thisPkg + ".namedInt"},
		{"predeclared", reflect.TypeOf(0), ""},
		{"unnamed struct", reflect.TypeOf(struct{}{}), ""},
		{"slice", reflect.TypeOf([]alphaNode{}), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QualifiedName(tt.typ))
		})
	}
}

func TestParseQualifiedName(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			in       string
			wantPkg  string
			wantType string
		}{
			{"github.com/ygrebnov/lightup/syntax.RefExpression", "github.com/ygrebnov/lightup/syntax", "RefExpression"},
			{"gopkg.in/yaml.v3.Node", "gopkg.in/yaml.v3", "Node"},
			{"main.node", "main", "node"},
			{"example.com/a-b_c/d~e.T_1", "example.com/a-b_c/d~e", "T_1"},
		}
		for _, tt := range tests {
			t.Run(tt.in, func(t *testing.T) {
				pkg, typ, err := ParseQualifiedName(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.wantPkg, pkg)
				assert.Equal(t, tt.wantType, typ)
			})
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, in := range []string{
			"",
			"RefExpression",
			".RefExpression",
			"github.com/x/syntax.",
			"github.com/x/syntax.Ref Expression",
			"github.com/x/syntax.1Ref",
			"github.com/x//syntax.Ref",
			"/github.com/x/syntax.Ref",
			"github.com/x/syn tax.Ref",
			"github.com/x/syn:tax.Ref",
			"github.com/x/../syntax.Ref",
		} {
			t.Run(in, func(t *testing.T) {
				_, _, err := ParseQualifiedName(in)
				assert.ErrorIs(t, err, lightuperrors.ErrMalformedTypeName)
			})
		}
	})
}

func TestValidateMemberName(t *testing.T) {
	tests := []struct {
		name    string
		member  string
		wantErr bool
	}{
		{"exported", "Expression", false},
		{"exported with digits", "Operand2", false},
		{"unexported", "expression", true},
		{"empty", "", true},
		{"leading digit", "2Operand", true},
		{"punctuation", "Ref.Keyword", true},
		{"underscore first", "_Expression", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMemberName(tt.member)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, lightuperrors.ErrInvalidMemberName)
		})
	}
}
