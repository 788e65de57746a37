package payment

import "fmt"

// Error is a payment failure the customer can recover from by retrying.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewProviderError wraps a definitive failure reported by the payment
// provider, carrying the provider's own message.
func NewProviderError(msg string) error {
	return &Error{
		Code:    "providerError",
		Message: msg,
	}
}

// NewIncompleteError wraps a non-terminal confirmation status.
func NewIncompleteError(msg string) error {
	return &Error{
		Code:    "paymentIncomplete",
		Message: msg,
	}
}
