package models

// ValidationError reports an out-of-range or missing configuration value.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + e.Reason
}
