package entity

import "fmt"

// WindowScroll is a viewport scroll offset in device-independent units.
// Values are usually non-negative and may be fractional.
type WindowScroll struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String implements fmt.Stringer.
func (s WindowScroll) String() string {
	return fmt.Sprintf("(%g, %g)", s.X, s.Y)
}
