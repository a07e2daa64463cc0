package cloudretry

// Policy classifies failures from one provider's API so the retry wrapper can
// decide whether a call is worth repeating.
//
// Implementations must be stateless and side-effect-free: a single Policy
// value is typically constructed once and shared by every call site without
// synchronization.
type Policy interface {
	// Recognizes reports whether err belongs to the provider error family
	// this policy understands. Errors outside the family are never
	// classified and always propagate immediately.
	Recognizes(err error) bool

	// StatusCode extracts the provider-defined status code carried by err.
	// ok is false when the error carries no code the policy understands.
	// Implementations must not panic, even for nil or foreign errors.
	StatusCode(err error) (code string, ok bool)

	// Found reports whether code is on the policy's retryable list.
	// Implementations must not panic.
	Found(code string) bool
}
