package stylist

import "fmt"

// EmptyClosetError is returned before any network call when the source policy
// requires closet items but the closet is empty
type EmptyClosetError struct {
	Source SourceMode
}

func (e *EmptyClosetError) Error() string {
	return "no items in your closet; add items to your closet or switch source"
}

// TimeoutError is returned when the generation call exceeds its deadline
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return "suggestion request timed out (>60s); please try again"
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ServiceError is returned on a non-success HTTP status from the generation
// endpoint. Body carries the raw response for diagnostics.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("suggestion service returned %d: %s", e.Status, e.Body)
}

// MalformedResponseError is returned when the response body is not valid JSON
// or lacks the expected shape
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid response from suggestion service: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
