package rewriter

import "go/token"

// arithOpNames maps the arithmetic operator family to the suffix used by
// the runtime call names (MustAdd, WrappingAdd, SaturatingAdd, CheckedAdd).
var arithOpNames = map[token.Token]string{
	token.ADD: "Add",
	token.SUB: "Sub",
	token.MUL: "Mul",
	token.QUO: "Div",
	token.REM: "Rem",
	token.SHL: "Shl",
	token.SHR: "Shr",
}

// compareOpFuncs maps the logical/comparison/bitwise family to the runtime
// operator functions the checked mode combines with ZipMap. The other three
// modes keep these operators verbatim.
var compareOpFuncs = map[token.Token]string{
	token.EQL:     "Eq",
	token.NEQ:     "NotEq",
	token.LSS:     "Less",
	token.LEQ:     "LessEq",
	token.GTR:     "Greater",
	token.GEQ:     "GreaterEq",
	token.LAND:    "And",
	token.LOR:     "Or",
	token.AND:     "BitAnd",
	token.OR:      "BitOr",
	token.XOR:     "BitXor",
	token.AND_NOT: "AndNot",
}

// unaryOpFuncs maps unary operators to the runtime functions the checked
// mode maps over an optional operand. Address-of is not here: &x is the
// reference form and passes through opaquely.
var unaryOpFuncs = map[token.Token]string{
	token.SUB: "Neg",
	token.ADD: "Pos",
	token.NOT: "Not",
	token.XOR: "BitNot",
}

func isArithOp(op token.Token) bool {
	_, ok := arithOpNames[op]
	return ok
}

func isCompareOp(op token.Token) bool {
	_, ok := compareOpFuncs[op]
	return ok
}
