package beam

import "fmt"

// GeometryError reports a span or load placement that statics cannot
// be computed for. It is returned before any partial result exists.
type GeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s=%g: %s", e.Field, e.Value, e.Reason)
}
