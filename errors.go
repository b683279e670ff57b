package ycs

import "fmt"

// APIError represents an error reported by the simulation service.
// Detail carries the server's "detail" field when the body was parseable
// JSON; otherwise Detail falls back to the HTTP status text.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// NetworkError represents a network-level error
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PayloadError represents a response that arrived but whose body could
// not be read or decoded. Unlike NetworkError, the service did answer.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid response payload: %v", e.Err)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents a missing or invalid client setting
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}
