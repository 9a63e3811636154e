package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidEmail     = errors.New("email is invalid")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrEmptyContent     = errors.New("content is required")
	ErrEmptyComment     = errors.New("comment is required")
	ErrInvalidPostID    = errors.New("postId must be a positive integer")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
