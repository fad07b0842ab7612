package services

import "errors"

// Business errors surfaced by the service layer. Handlers map these onto
// HTTP status codes; everything else is treated as an internal error.
var (
	// Registration and account moderation
	ErrRegistrationClosed = errors.New("registration is currently closed by the administrator")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountPending     = errors.New("account is awaiting administrator approval")
	ErrAccountBlocked     = errors.New("account is blocked")

	// Chat
	ErrMessageNotFound     = errors.New("message not found")
	ErrAlreadyDeleted      = errors.New("message is already deleted")
	ErrSenderNotApproved   = errors.New("sender is not approved to post messages")
	ErrNotOwner            = errors.New("only own messages can be deleted")
	ErrDeleteWindowExpired = errors.New("the time window for deleting the message has expired")
)
