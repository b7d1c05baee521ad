package generate

import "fmt"

// Order decides which artifact comes first when both are produced.
type Order int

const (
	SystemFirst Order = iota
	ComponentFirst
)

// String returns the flag/config spelling of the order.
func (o Order) String() string {
	if o == ComponentFirst {
		return "component-first"
	}
	return "system-first"
}

// ParseOrder accepts "system-first", "component-first", or an empty string
// (which means the default, SystemFirst).
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "system-first":
		return SystemFirst, nil
	case "component-first":
		return ComponentFirst, nil
	}
	return SystemFirst, fmt.Errorf("unknown order %q: must be 'system-first' or 'component-first'", s)
}
