package codescript

type Node interface {
	Pos() Position
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

// LiteralKind tags which token produced a Constant.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNull
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInt:
		return "integer"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	case LiteralNull:
		return "null"
	default:
		return "literal"
	}
}

// Constant keeps the raw token text; it is converted to a Value when evaluated.
type Constant struct {
	Kind     LiteralKind
	Text     string
	position Position
}

func (e *Constant) exprNode()     {}
func (e *Constant) Pos() Position { return e.position }

type CallExpr struct {
	Name     string
	Args     []Expression
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

// AdditiveExpr covers +, & and -.
type AdditiveExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *AdditiveExpr) exprNode()     {}
func (e *AdditiveExpr) Pos() Position { return e.position }

// ComparisonExpr covers ==, !=, <, <=, > and >=.
type ComparisonExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *ComparisonExpr) exprNode()     {}
func (e *ComparisonExpr) Pos() Position { return e.position }

// MultiplicativeExpr covers *, / and %.
type MultiplicativeExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *MultiplicativeExpr) exprNode()     {}
func (e *MultiplicativeExpr) Pos() Position { return e.position }

// BooleanExpr covers and, or and xor.
type BooleanExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *BooleanExpr) exprNode()     {}
func (e *BooleanExpr) Pos() Position { return e.position }

type NotExpr struct {
	Right    Expression
	position Position
}

func (e *NotExpr) exprNode()     {}
func (e *NotExpr) Pos() Position { return e.position }
