package core

import (
	"reflect"
	"sync/atomic"
)

// test host model

type node interface{ nodeKind() string }

type expr interface {
	node
	exprNode()
}

type token struct{ text string }

type refExpr struct {
	kw    token
	inner expr
}

func (r *refExpr) nodeKind() string { return "ref" }
func (r *refExpr) exprNode()        {}

func (r *refExpr) Keyword() token { return r.kw }
func (r *refExpr) Inner() expr    { return r.inner }

func (r *refExpr) WithKeyword(kw token) *refExpr {
	cp := *r
	cp.kw = kw
	return &cp
}

func (r *refExpr) WithInner(e expr) *refExpr {
	cp := *r
	cp.inner = e
	return &cp
}

// members whose signatures do not fit a reader or replacer
func (r *refExpr) Count() int                  { return 1 }
func (r *refExpr) WithCount(n string) *refExpr { return r }
func (r *refExpr) Lookup(i int) token          { return r.kw }
func (r *refExpr) Spread(xs ...int) token      { return r.kw }
func (r *refExpr) WithSpread(xs ...token) expr { return r }
func (r *refExpr) WithLabel(s string) string   { return s }

type literal struct{ text string }

func (l *literal) nodeKind() string { return "literal" }
func (l *literal) exprNode()        {}

type rangeExpr struct {
	Left   expr
	Op     token
	Right  expr
	hidden int
}

func (r *rangeExpr) nodeKind() string { return "range" }
func (r *rangeExpr) exprNode()        {}

type sharedBase struct{ Shared string }

type embeddedBase struct{ Tag string }

type decorated struct {
	embeddedBase
	*sharedBase
}

func (d *decorated) nodeKind() string { return "decorated" }

// keyworded is an interface-typed shape.
type keyworded interface {
	expr
	Keyword() token
	WithKeyword(kw token) *refExpr
}

// notANode has the right members but is not a node.
type notANode struct{}

func (notANode) Keyword() token { return token{text: "x"} }

var (
	refExprType   = reflect.TypeOf(&refExpr{})
	literalType   = reflect.TypeOf(&literal{})
	rangeExprType = reflect.TypeOf(&rangeExpr{})
	decoratedType = reflect.TypeOf(&decorated{})
	keywordedType = reflect.TypeOf((*keyworded)(nil)).Elem()
	notANodeType  = reflect.TypeOf(notANode{})
)

// mapSource is a TypeSource counting its lookups.
type mapSource struct {
	types   map[string]reflect.Type
	lookups atomic.Int32
}

func newMapSource(types map[string]reflect.Type) *mapSource {
	return &mapSource{types: types}
}

func (s *mapSource) LookupType(qualifiedName string) (reflect.Type, bool) {
	s.lookups.Add(1)
	t, ok := s.types[qualifiedName]
	return t, ok
}

func descriptorOf(t reflect.Type) *TypeDescriptor {
	return &TypeDescriptor{name: t.String(), typ: t}
}
