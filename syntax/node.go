// Package syntax is a small expression syntax model. Which of its node types
// exist depends on the syntax version loaded as the host assembly.
package syntax

// Kind identifies the type of a Node.
type Kind string

const (
	KindLiteral    Kind = "literal"
	KindIdentifier Kind = "identifier"
	KindRef        Kind = "ref"
	KindThrow      Kind = "throw"
	KindRange      Kind = "range"
)

// Node is any syntax node.
type Node interface {
	Kind() Kind
	String() string
}

// ExpressionNode is a node that produces a value.
type ExpressionNode interface {
	Node
	expression()
}

// Token is a lexical token. The zero Token is the missing token.
type Token struct {
	Text string
}

func NewToken(text string) Token { return Token{Text: text} }

// IsZero reports whether t is the missing token.
func (t Token) IsZero() bool { return t.Text == "" }

func (t Token) String() string { return t.Text }

// LiteralExpression is a literal value, present in every version.
type LiteralExpression struct {
	token Token
}

func NewLiteral(text string) *LiteralExpression {
	return &LiteralExpression{token: NewToken(text)}
}

func (e *LiteralExpression) Kind() Kind     { return KindLiteral }
func (e *LiteralExpression) Token() Token   { return e.token }
func (e *LiteralExpression) String() string { return e.token.Text }
func (e *LiteralExpression) expression()    {}

// IdentifierName is a name reference, present in every version.
type IdentifierName struct {
	identifier Token
}

func NewIdentifier(name string) *IdentifierName {
	return &IdentifierName{identifier: NewToken(name)}
}

func (e *IdentifierName) Kind() Kind        { return KindIdentifier }
func (e *IdentifierName) Identifier() Token { return e.identifier }
func (e *IdentifierName) String() string    { return e.identifier.Text }
func (e *IdentifierName) expression()       {}

// RefExpression is "ref <expression>". Added in version 2.0.
type RefExpression struct {
	refKeyword Token
	operand    ExpressionNode
}

// NewRef returns a ref expression with the "ref" keyword.
func NewRef(expression ExpressionNode) *RefExpression {
	return &RefExpression{refKeyword: NewToken("ref"), operand: expression}
}

func (e *RefExpression) Kind() Kind                 { return KindRef }
func (e *RefExpression) RefKeyword() Token          { return e.refKeyword }
func (e *RefExpression) Expression() ExpressionNode { return e.operand }
func (e *RefExpression) String() string             { return join(e.refKeyword, e.operand) }
func (e *RefExpression) expression()                {}

func (e *RefExpression) WithRefKeyword(refKeyword Token) *RefExpression {
	c := *e
	c.refKeyword = refKeyword
	return &c
}

func (e *RefExpression) WithExpression(expression ExpressionNode) *RefExpression {
	c := *e
	c.operand = expression
	return &c
}

// ThrowExpression is "throw <expression>". Added in version 2.0.
type ThrowExpression struct {
	throwKeyword Token
	operand      ExpressionNode
}

// NewThrow returns a throw expression with the "throw" keyword.
func NewThrow(expression ExpressionNode) *ThrowExpression {
	return &ThrowExpression{throwKeyword: NewToken("throw"), operand: expression}
}

func (e *ThrowExpression) Kind() Kind                 { return KindThrow }
func (e *ThrowExpression) ThrowKeyword() Token        { return e.throwKeyword }
func (e *ThrowExpression) Expression() ExpressionNode { return e.operand }
func (e *ThrowExpression) String() string             { return join(e.throwKeyword, e.operand) }
func (e *ThrowExpression) expression()                {}

func (e *ThrowExpression) WithThrowKeyword(throwKeyword Token) *ThrowExpression {
	c := *e
	c.throwKeyword = throwKeyword
	return &c
}

func (e *ThrowExpression) WithExpression(expression ExpressionNode) *ThrowExpression {
	c := *e
	c.operand = expression
	return &c
}

// RangeExpression is "<left>..<right>". Added in version 3.0.
// Both operands are optional. It has no accessor methods; its members are fields.
type RangeExpression struct {
	LeftOperand   ExpressionNode
	OperatorToken Token
	RightOperand  ExpressionNode
}

// NewRange returns a range expression with the ".." operator.
func NewRange(left, right ExpressionNode) *RangeExpression {
	return &RangeExpression{LeftOperand: left, OperatorToken: NewToken(".."), RightOperand: right}
}

func (e *RangeExpression) Kind() Kind { return KindRange }

func (e *RangeExpression) String() string {
	var s string
	if e.LeftOperand != nil {
		s += e.LeftOperand.String()
	}
	s += e.OperatorToken.Text
	if e.RightOperand != nil {
		s += e.RightOperand.String()
	}
	return s
}

func (e *RangeExpression) expression() {}

func join(keyword Token, operand Node) string {
	if operand == nil {
		return keyword.Text
	}
	if keyword.IsZero() {
		return operand.String()
	}
	return keyword.Text + " " + operand.String()
}
