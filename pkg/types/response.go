package types

// APIError is the machine-readable failure body; Code values come from
// pkg/errors and are stable across releases.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
