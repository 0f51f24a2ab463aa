package wrappers

import (
	"github.com/ygrebnov/lightup"
	"github.com/ygrebnov/lightup/syntax"
)

const throwExpressionTypeName = "github.com/ygrebnov/lightup/syntax.ThrowExpression"

var (
	throwExpressionShape        = lightup.NewShape[syntax.ExpressionNode](throwExpressionTypeName)
	throwExpressionThrowKeyword = lightup.NewProperty[syntax.ExpressionNode, syntax.Token](throwExpressionShape, "ThrowKeyword")
	throwExpressionExpression   = lightup.NewProperty[syntax.ExpressionNode, syntax.ExpressionNode](throwExpressionShape, "Expression")
)

// ThrowExpression wraps a syntax.ThrowExpression ("throw <expression>", syntax 2.0 and later).
type ThrowExpression struct {
	node syntax.ExpressionNode
}

var _ lightup.Wrapper[syntax.ExpressionNode] = ThrowExpression{}

// AsThrowExpression wraps node; see AsRefExpression.
func AsThrowExpression(node syntax.Node) (ThrowExpression, error) {
	n, err := throwExpressionShape.Cast(node)
	if err != nil {
		return ThrowExpression{}, err
	}
	return ThrowExpression{node: n}, nil
}

// IsThrowExpression reports whether node is a throw expression of the loaded syntax version.
func IsThrowExpression(node syntax.Node) bool {
	return throwExpressionShape.IsInstance(node)
}

// ThrowExpressionSupported reports whether the loaded syntax version has throw expressions.
func ThrowExpressionSupported() bool {
	return throwExpressionShape.Supported()
}

// DescribeThrowExpression reports what the loaded syntax version supports of throw expressions.
func DescribeThrowExpression() lightup.ShapeInfo {
	return throwExpressionShape.Describe()
}

// Node returns the wrapped node.
func (w ThrowExpression) Node() syntax.ExpressionNode { return w.node }

// ThrowKeyword returns the "throw" keyword token.
func (w ThrowExpression) ThrowKeyword() syntax.Token {
	return throwExpressionThrowKeyword.Get(w.node)
}

// Expression returns the thrown expression.
func (w ThrowExpression) Expression() syntax.ExpressionNode {
	return throwExpressionExpression.Get(w.node)
}

// WithThrowKeyword returns a wrapper over a copy of the node with throwKeyword replaced.
func (w ThrowExpression) WithThrowKeyword(throwKeyword syntax.Token) ThrowExpression {
	return ThrowExpression{node: throwExpressionThrowKeyword.With(w.node, throwKeyword)}
}

// WithExpression returns a wrapper over a copy of the node with expression replaced.
func (w ThrowExpression) WithExpression(expression syntax.ExpressionNode) ThrowExpression {
	return ThrowExpression{node: throwExpressionExpression.With(w.node, expression)}
}
