package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status. The messages are
// the client-visible strings, so changing one changes the API.
var (
	ErrInvalidEmail       = errors.New("Invalid email format")
	ErrUsernameExists     = errors.New("Username already exists")
	ErrEmailExists        = errors.New("Email already exists")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrWrongPassword      = errors.New("Incorrect current password")
	ErrUserNotFound       = errors.New("User not found")
	ErrPostNotFound       = errors.New("Post not found")
	ErrNotPostOwner       = errors.New("Unauthorized")
	ErrSelfFollow         = errors.New("You cannot follow yourself")
	ErrMissingPostFields  = errors.New("Post must have title, content, and category")
	ErrMissingPostImage   = errors.New("Post must have an image")
)
