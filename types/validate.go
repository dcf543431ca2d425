package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"chordbook/apierrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// fieldMessages maps "<Struct>.<jsonField>.<tag>" to the message text
// carried by the API contract.
var fieldMessages = map[string]string{
	"NoteCreateRequest.name.required":         "Name cannot be null",
	"NoteCreateRequest.name.oneof":            "Invalid note name",
	"NoteCreateRequest.accidental.required":   "Accidental cannot be null",
	"NoteCreateRequest.accidental.oneof":      "Invalid accidental",
	"ChordCreateRequest.name.required":        "Chord name cannot be null",
	"ChordCreateRequest.type.required":        "Chord type cannot be null",
	"ChordCreateRequest.type.oneof":           "Invalid chord type",
	"ChordCreateRequest.notes.required":       "Notes cannot be null",
	"ChordCreateRequest.notes.min":            "A chord must have at least three note",
	"MusicCreateRequest.title.required":       "Title cannot be null",
	"MusicCreateRequest.description.required": "Description cannot be null",
	"MusicCreateRequest.releaseDate.required": "ReleaseDate cannot be null",
	"MusicCreateRequest.lyric.required":       "Lyric cannot be null",
	"CommentCreateRequest.body.required":      "Body cannot be null",
	"CommentCreateRequest.body.max":           "Body must have at most 280 characters",
	"UserCreateRequest.username.required":     "Username cannot be null",
	"UserCreateRequest.username.min":          "Username must be between 3 and 40 characters",
	"UserCreateRequest.username.max":          "Username must be between 3 and 40 characters",
	"UserCreateRequest.email.required":        "Email cannot be null",
	"UserCreateRequest.email.email":           "Email should be valid",
	"UserCreateRequest.email.min":             "Email must be between 5 and 254 characters",
	"UserCreateRequest.email.max":             "Email must be between 5 and 254 characters",
	"UserCreateRequest.password.required":     "Password cannot be null",
	"UserCreateRequest.password.min":          "Password must have 5 characters at least",
}

// Validate checks a request DTO and returns a 422 validation error
// carrying per-field messages, or nil when the DTO is valid.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apierrors.NewValidation(nil)
	}

	fields := make([]apierrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apierrors.FieldError{
			FieldName: fe.Field(),
			Message:   messageFor(fe),
		})
	}
	return apierrors.NewValidation(fields)
}

func messageFor(fe validator.FieldError) string {
	key := fe.Namespace() + "." + fe.Tag()
	if msg, ok := fieldMessages[key]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}
