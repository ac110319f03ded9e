package inquiry

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/luxeestate/luxeestate_site/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError reports the first form field that failed validation, with the
// message shown to the visitor.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

// ValidateForm trims the form in place and checks it against the inquiry rule
// set. Fields are checked in declaration order (name, email, phone, message)
// and only the first failure is reported.
func ValidateForm(form *models.InquiryForm) *FieldError {
	form.Normalize()

	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &FieldError{Field: "form", Message: "Invalid submission"}
	}
	first := verrs[0]
	return &FieldError{Field: fieldName(first.Field()), Message: messageFor(first)}
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "Message":
		return "message"
	}
	return "form"
}

func messageFor(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "max" {
			return "Name must be less than 100 characters"
		}
		return "Name is required"
	case "Email":
		if fe.Tag() == "max" {
			return "Email must be less than 255 characters"
		}
		return "Please enter a valid email"
	case "Phone":
		return "Phone must be less than 20 characters"
	case "Message":
		if fe.Tag() == "max" {
			return "Message must be less than 1000 characters"
		}
		return "Message is required"
	}
	return "Invalid submission"
}
