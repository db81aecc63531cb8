package compiler

// Assoc is the grouping direction of equal-precedence operators.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
)

func (a Assoc) String() string {
	if a == AssocRight {
		return "right"
	}
	return "left"
}

type opInfo struct {
	prec  int
	assoc Assoc
}

// operators holds the binding power of every token that takes part in
// precedence resolution. Higher binds tighter.
var operators = map[TokenType]opInfo{
	COMMA: {0, AssocLeft},

	ASSIGN:         {1, AssocRight},
	PLUS_ASSIGN:    {1, AssocRight},
	MINUS_ASSIGN:   {1, AssocRight},
	STAR_ASSIGN:    {1, AssocRight},
	SLASH_ASSIGN:   {1, AssocRight},
	PERCENT_ASSIGN: {1, AssocRight},
	AND_ASSIGN:     {1, AssocRight},
	PIPE_ASSIGN:    {1, AssocRight},
	CARET_ASSIGN:   {1, AssocRight},
	SHL_ASSIGN:     {1, AssocRight},
	SHR_ASSIGN:     {1, AssocRight},

	OR_LOGICAL:  {3, AssocLeft},
	AND_LOGICAL: {4, AssocLeft},
	PIPE:        {5, AssocLeft},
	CARET:       {6, AssocLeft},
	AND:         {7, AssocLeft},

	EQUALS: {8, AssocLeft},
	NOT_EQ: {8, AssocLeft},

	LESS:       {9, AssocLeft},
	LESS_EQ:    {9, AssocLeft},
	GREATER:    {9, AssocLeft},
	GREATER_EQ: {9, AssocLeft},

	SHL_OP: {10, AssocLeft},
	SHR_OP: {10, AssocLeft},

	PLUS:  {11, AssocLeft},
	MINUS: {11, AssocLeft},

	STAR:    {12, AssocLeft},
	SLASH:   {12, AssocLeft},
	PERCENT: {12, AssocLeft},

	NOT:   {13, AssocRight},
	TILDE: {13, AssocRight},
}

// Precedence returns the binding power of tt, or false if tt has none.
func (tt TokenType) Precedence() (int, bool) {
	info, ok := operators[tt]
	return info.prec, ok
}

// Associativity returns how equal-precedence uses of tt group.
func (tt TokenType) Associativity() (Assoc, bool) {
	info, ok := operators[tt]
	return info.assoc, ok
}

// IsOperator reports whether tt is reordered by precedence. The comma has a
// precedence but only separates arguments, so it is not an operator here.
func (tt TokenType) IsOperator() bool {
	_, ok := operators[tt]
	return ok && tt != COMMA
}
