package bridge

import "fmt"

// SendResult is the outcome of a send accepted by the bridge.
type SendResult struct {
	// Status is the HTTP status code returned by the bridge.
	Status int
	// Body is the raw response text: the reply message in request-reply
	// mode, or the acknowledgment envelope in publish-only mode.
	Body string
	// MessageID is the JMS message id extracted from a publish-only JSON
	// acknowledgment; empty otherwise.
	MessageID string
}

// BridgeError is a non-2xx response from the bridge send endpoint. Message
// carries the bridge's JSON error envelope when one was present, otherwise
// the raw response text.
type BridgeError struct {
	StatusCode int
	Message    string
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("bridge error %d: %s", e.StatusCode, e.Message)
}
