// Package wrappers holds the value wrappers of syntax node shapes that only
// exist in some syntax versions. A wrapper reads zero values and ignores With
// calls when the loaded syntax version lacks its shape.
package wrappers

import (
	"github.com/ygrebnov/lightup"
	"github.com/ygrebnov/lightup/syntax"
)

const refExpressionTypeName = "github.com/ygrebnov/lightup/syntax.RefExpression"

var (
	refExpressionShape      = lightup.NewShape[syntax.ExpressionNode](refExpressionTypeName)
	refExpressionRefKeyword = lightup.NewProperty[syntax.ExpressionNode, syntax.Token](refExpressionShape, "RefKeyword")
	refExpressionExpression = lightup.NewProperty[syntax.ExpressionNode, syntax.ExpressionNode](refExpressionShape, "Expression")
)

// RefExpression wraps a syntax.RefExpression ("ref <expression>", syntax 2.0 and later).
// The zero RefExpression wraps no node.
type RefExpression struct {
	node syntax.ExpressionNode
}

var _ lightup.Wrapper[syntax.ExpressionNode] = RefExpression{}

// AsRefExpression wraps node. A nil node gives the zero RefExpression.
// Any other node that is not a ref expression of the loaded syntax version
// fails with a *lightup.CastError.
func AsRefExpression(node syntax.Node) (RefExpression, error) {
	n, err := refExpressionShape.Cast(node)
	if err != nil {
		return RefExpression{}, err
	}
	return RefExpression{node: n}, nil
}

// IsRefExpression reports whether node is a ref expression of the loaded syntax version.
func IsRefExpression(node syntax.Node) bool {
	return refExpressionShape.IsInstance(node)
}

// RefExpressionSupported reports whether the loaded syntax version has ref expressions.
func RefExpressionSupported() bool {
	return refExpressionShape.Supported()
}

// DescribeRefExpression reports what the loaded syntax version supports of ref expressions.
func DescribeRefExpression() lightup.ShapeInfo {
	return refExpressionShape.Describe()
}

// Node returns the wrapped node.
func (w RefExpression) Node() syntax.ExpressionNode { return w.node }

// RefKeyword returns the "ref" keyword token.
func (w RefExpression) RefKeyword() syntax.Token {
	return refExpressionRefKeyword.Get(w.node)
}

// Expression returns the referenced expression.
func (w RefExpression) Expression() syntax.ExpressionNode {
	return refExpressionExpression.Get(w.node)
}

// WithRefKeyword returns a wrapper over a copy of the node with refKeyword replaced.
func (w RefExpression) WithRefKeyword(refKeyword syntax.Token) RefExpression {
	return RefExpression{node: refExpressionRefKeyword.With(w.node, refKeyword)}
}

// WithExpression returns a wrapper over a copy of the node with expression replaced.
func (w RefExpression) WithExpression(expression syntax.ExpressionNode) RefExpression {
	return RefExpression{node: refExpressionExpression.With(w.node, expression)}
}
