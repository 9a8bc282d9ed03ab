package errs

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Spray request errors
	ErrRequestNotFound   = New("spray request not found")
	ErrInvalidStatus     = New("invalid request status")
	ErrInvalidTransition = New("invalid status transition")
	ErrTerminalStatus    = New("request is in a terminal status")

	// Provider errors
	ErrProviderNotFound = New("provider not found")
	ErrNoKnownLocation  = New("no known location for caller")

	// Coupon errors
	ErrInvalidCoupon = New("invalid coupon code")

	// Auth errors
	ErrChallengeNotFound = New("otp challenge not found")
	ErrChallengeExpired  = New("otp challenge expired")
	ErrCodeMismatch      = New("otp code mismatch")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
