package types

// Envelope is the uniform response shape for every JSON endpoint except the
// health probe and metrics export.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
