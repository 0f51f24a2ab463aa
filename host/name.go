package host

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/lightup/errors"
)

// QualifiedName returns the name t is registered under in an Assembly:
// "<import path>.<TypeName>". Pointer types are named after their element.
// It returns "" for unnamed and predeclared types.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return ""
	}
	return t.PkgPath() + "." + t.Name()
}

// ParseQualifiedName splits a qualified type name into its import path and
// type name. The import path may itself contain dots; the type name is
// everything after the last one.
func ParseQualifiedName(s string) (pkgPath, typeName string, err error) {
	malformed := func(reason string) error {
		return errorc.With(
			errors.ErrMalformedTypeName,
			errorc.String(errors.ErrorFieldTypeName, s),
			errorc.String(errors.ErrorFieldCause, reason),
		)
	}

	dot := strings.LastIndexByte(s, '.')
	if dot <= 0 || dot == len(s)-1 {
		return "", "", malformed("want <import path>.<TypeName>")
	}
	pkgPath, typeName = s[:dot], s[dot+1:]
	if !isIdentifier(typeName) {
		return "", "", malformed("type name is not an identifier")
	}
	if !isImportPath(pkgPath) {
		return "", "", malformed("invalid import path")
	}
	return pkgPath, typeName, nil
}

// ValidateMemberName reports whether name can address a member through
// reflection: it must be an exported identifier.
func ValidateMemberName(name string) error {
	if !isIdentifier(name) {
		return errorc.With(
			errors.ErrInvalidMemberName,
			errorc.String(errors.ErrorFieldMemberName, name),
			errorc.String(errors.ErrorFieldCause, "not an identifier"),
		)
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return errorc.With(
			errors.ErrInvalidMemberName,
			errorc.String(errors.ErrorFieldMemberName, name),
			errorc.String(errors.ErrorFieldCause, "not exported"),
		)
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

const importPathBadChars = "!\"#$%&'()*,:;<=>?[\\]^`{|}"

func isImportPath(s string) bool {
	if s == "" || strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") {
		return false
	}
	for _, seg := range strings.Split(s, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) || strings.ContainsRune(importPathBadChars, r) {
			return false
		}
	}
	return true
}
