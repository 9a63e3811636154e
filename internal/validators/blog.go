package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog-api/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldComment  = "comment"
	FieldPostID   = "post_id"
	FieldAny      = "any"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	MaxPasswordBytes = 72
	MaxNameLength    = 100
	MaxTitleLength   = 255
)

type BlogValidator struct{}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(*value, fields...)

	case models.CreatePostRequest:
		return v.validateCreatePost(value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreatePost(*value, fields...)

	case models.UpdatePostRequest:
		return v.validateUpdatePost(value, fields...)
	case *models.UpdatePostRequest:
		return v.validateUpdatePost(*value, fields...)

	case models.CreateCommentRequest:
		return v.validateCreateComment(value, fields...)
	case *models.CreateCommentRequest:
		return v.validateCreateComment(*value, fields...)

	case models.UpdateCommentRequest:
		return v.validateUpdateComment(value, fields...)
	case *models.UpdateCommentRequest:
		return v.validateUpdateComment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = checkName(req.Name)
		case FieldEmail:
			err = checkEmail(req.Email)
		case FieldPassword:
			err = checkPassword(req.Password)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			// length rules are a signup concern
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validateUpdateUser(req models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAny, FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldAny:
			if req.Name == nil && req.Email == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if req.Name != nil {
				if err := checkName(*req.Name); err != nil {
					return err
				}
			}
		case FieldEmail:
			if req.Email != nil {
				if err := checkEmail(*req.Email); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validateCreatePost(req models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = checkTitle(req.Title)
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				err = ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BlogValidator) validateUpdatePost(req models.UpdatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAny, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldAny:
			if req.Title == nil && req.Content == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if req.Title != nil {
				if err := checkTitle(*req.Title); err != nil {
					return err
				}
			}
		case FieldContent:
			if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validateCreateComment(req models.CreateCommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID, FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldPostID:
			if req.PostID <= 0 {
				return ErrInvalidPostID
			}
		case FieldComment:
			if strings.TrimSpace(req.Comment) == "" {
				return ErrEmptyComment
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validateUpdateComment(req models.UpdateCommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldComment:
			if req.Comment == nil {
				return ErrNoFieldsToUpdate
			}
			if strings.TrimSpace(*req.Comment) == "" {
				return ErrEmptyComment
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// checkEmail accepts a bare address only: "Ann <ann@x.io>" is rejected.
func checkEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

func checkTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
