package listop

// Operator is a comparison operator from a filter condition. Which operators
// are valid depends on the element kind being compared; the per-kind
// predicate constructors in filter.go are the authority.
type Operator string

// String operators. OpIn/OpNotIn double as the only operators valid for
// enum-valued file attributes, where the operand is a sequence.
const (
	OpContains    Operator = "contains"
	OpNotContains Operator = "not contains"
	OpStartWith   Operator = "start with"
	OpEndWith     Operator = "end with"
	OpIs          Operator = "is"
	OpIsNot       Operator = "is not"
	OpIn          Operator = "in"
	OpNotIn       Operator = "not in"
	OpEmpty       Operator = "empty"
	OpNotEmpty    Operator = "not empty"
)

// Numeric operators.
const (
	OpEq Operator = "="
	OpNe Operator = "!="
	OpLt Operator = "<"
	OpLe Operator = "<="
	OpGt Operator = ">"
	OpGe Operator = ">="
)

// normalizeOperator canonicalizes the unicode comparison aliases that flow
// authors may use.
func normalizeOperator(raw string) Operator {
	switch raw {
	case "≠":
		return OpNe
	case "≤":
		return OpLe
	case "≥":
		return OpGe
	default:
		return Operator(raw)
	}
}
