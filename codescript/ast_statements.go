package codescript

type AssignStmt struct {
	Name     string
	Value    Expression
	position Position
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Pos() Position { return s.position }

// CallStmt is a function call used as a statement; its result is discarded.
type CallStmt struct {
	Call     *CallExpr
	position Position
}

func (s *CallStmt) stmtNode()     {}
func (s *CallStmt) Pos() Position { return s.position }

type Block struct {
	Statements []Statement
	position   Position
}

func (s *Block) stmtNode()     {}
func (s *Block) Pos() Position { return s.position }

// WhileStmt is the pre-test loop. Keyword is the source spelling ("while" or
// "until"). Else is nil, a *Block or an *IfStmt.
type WhileStmt struct {
	Keyword   string
	Condition Expression
	Body      *Block
	Else      Statement
	position  Position
}

func (s *WhileStmt) stmtNode()     {}
func (s *WhileStmt) Pos() Position { return s.position }

type IfStmt struct {
	Condition  Expression
	Consequent *Block
	Else       Statement
	position   Position
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Pos() Position { return s.position }
