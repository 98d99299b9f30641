package weather

import "fmt"

// ProviderError is any failure of the provider except "not found"
type ProviderError struct {
	StatusCode int // 0 when the request didn't reach the provider
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weather provider request failed: %s", e.Err.Error())
	}
	return fmt.Sprintf("weather provider error: status=%d body=%s", e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// MalformedResponseError means the provider answered with success, but a required field
// is missing or has a wrong type
type MalformedResponseError struct {
	Field  string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed weather response: field %q %s", e.Field, e.Reason)
}
