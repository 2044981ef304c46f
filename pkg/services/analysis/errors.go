package analysis

import "fmt"

// InvalidColumnError indicates a referenced column is absent from the
// table's column set.
type InvalidColumnError struct {
	Column string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("column %q not found in table", e.Column)
}
