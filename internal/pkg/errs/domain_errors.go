package errs

// Sentinel errors shared by the usecase and handler layers.
var (
	// Request errors
	ErrValidation = New("validation failed")

	// Reference and lookup errors
	ErrNotFound          = New("not found")
	ErrReferenceNotFound = New("referenced record not found")
	ErrInUse             = New("record is referenced by reservations")

	// Booking errors
	ErrPastDateTime      = New("reservation date and time are in the past")
	ErrDuplicateBooking  = New("reservation already exists for the date, time and theme")
	ErrDuplicateTimeSlot = New("time slot already exists")

	// Member errors
	ErrDuplicateEmail      = New("email already registered")
	ErrMemberNotFound      = New("member not found")
	ErrInvalidCredential   = New("invalid email or password")
	ErrUnauthorized        = New("unauthorized")
	ErrForbidden           = New("forbidden")
	ErrTokenGeneration     = New("token generation failed")
	ErrTokenRevocationFail = New("token revocation failed")
)
