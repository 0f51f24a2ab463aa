package wrappers

import (
	"github.com/ygrebnov/lightup"
	"github.com/ygrebnov/lightup/syntax"
)

const rangeExpressionTypeName = "github.com/ygrebnov/lightup/syntax.RangeExpression"

// syntax.RangeExpression has no accessor methods: these properties bind to its fields.
var (
	rangeExpressionShape         = lightup.NewShape[syntax.ExpressionNode](rangeExpressionTypeName)
	rangeExpressionLeftOperand   = lightup.NewProperty[syntax.ExpressionNode, syntax.ExpressionNode](rangeExpressionShape, "LeftOperand")
	rangeExpressionOperatorToken = lightup.NewProperty[syntax.ExpressionNode, syntax.Token](rangeExpressionShape, "OperatorToken")
	rangeExpressionRightOperand  = lightup.NewProperty[syntax.ExpressionNode, syntax.ExpressionNode](rangeExpressionShape, "RightOperand")
)

// RangeExpression wraps a syntax.RangeExpression ("<left>..<right>", syntax 3.0 and later).
type RangeExpression struct {
	node syntax.ExpressionNode
}

var _ lightup.Wrapper[syntax.ExpressionNode] = RangeExpression{}

// AsRangeExpression wraps node; see AsRefExpression.
func AsRangeExpression(node syntax.Node) (RangeExpression, error) {
	n, err := rangeExpressionShape.Cast(node)
	if err != nil {
		return RangeExpression{}, err
	}
	return RangeExpression{node: n}, nil
}

// IsRangeExpression reports whether node is a range expression of the loaded syntax version.
func IsRangeExpression(node syntax.Node) bool {
	return rangeExpressionShape.IsInstance(node)
}

// RangeExpressionSupported reports whether the loaded syntax version has range expressions.
func RangeExpressionSupported() bool {
	return rangeExpressionShape.Supported()
}

// DescribeRangeExpression reports what the loaded syntax version supports of range expressions.
func DescribeRangeExpression() lightup.ShapeInfo {
	return rangeExpressionShape.Describe()
}

// Node returns the wrapped node.
func (w RangeExpression) Node() syntax.ExpressionNode { return w.node }

// LeftOperand returns the operand before the operator, nil for an open start.
func (w RangeExpression) LeftOperand() syntax.ExpressionNode {
	return rangeExpressionLeftOperand.Get(w.node)
}

// OperatorToken returns the range operator token.
func (w RangeExpression) OperatorToken() syntax.Token {
	return rangeExpressionOperatorToken.Get(w.node)
}

// RightOperand returns the operand after the operator, nil for an open end.
func (w RangeExpression) RightOperand() syntax.ExpressionNode {
	return rangeExpressionRightOperand.Get(w.node)
}

// WithLeftOperand returns a wrapper over a copy of the node with the left operand replaced.
func (w RangeExpression) WithLeftOperand(left syntax.ExpressionNode) RangeExpression {
	return RangeExpression{node: rangeExpressionLeftOperand.With(w.node, left)}
}

// WithOperatorToken returns a wrapper over a copy of the node with the operator replaced.
func (w RangeExpression) WithOperatorToken(operator syntax.Token) RangeExpression {
	return RangeExpression{node: rangeExpressionOperatorToken.With(w.node, operator)}
}

// WithRightOperand returns a wrapper over a copy of the node with the right operand replaced.
func (w RangeExpression) WithRightOperand(right syntax.ExpressionNode) RangeExpression {
	return RangeExpression{node: rangeExpressionRightOperand.With(w.node, right)}
}
