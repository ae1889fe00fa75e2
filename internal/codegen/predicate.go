package codegen

import (
	"fmt"

	"github.com/Maumagnaguagno/lrama/internal/automaton"
)

// TableEquals builds the boolean expression testing whether value, read
// from t, equals the symbol encoded as literal. When literal lies outside
// the table's value range the cell can never hold it, so the expression
// collapses to the constant "0" and the target compiler folds the branch
// away (default-reduction short-circuit).
func TableEquals(t *automaton.Table, value string, literal int, symbol string) string {
	if literal < t.Min() || t.Max() < literal {
		return "0"
	}
	return fmt.Sprintf("((%s) == %s)", value, symbol)
}
