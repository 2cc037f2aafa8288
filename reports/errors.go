package reports

import "fmt"

// ValidationError reports a missing, empty, or unrecognized field on a
// submission or update, including an invalid station/city pairing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown report id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("report %s not found", e.ID)
}

// PayloadTooLargeError reports a photo attachment over the size ceiling.
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("photo is %d bytes, limit is %d", e.Size, e.Limit)
}
