package service

import "errors"

// Domain errors carry the user-facing message, the handler layer decides
// the status code.
var (
	ErrInsufficientCredits = errors.New("AI Credits not available")
	ErrGenerationFailed    = errors.New("Failed to generate images")
	ErrInvalidOTP          = errors.New("Invalid Verification Code!")
	ErrOTPCooldown         = errors.New("Please wait before requesting a new code")
	ErrUserNotFound        = errors.New("User not found")
	ErrWorkspaceNotFound   = errors.New("Workspace not found")
	ErrGoogleAuthFailed    = errors.New("Failed to verify Google login")

	errInternal = errors.New("something went wrong")
)
