package models

import "strings"

// InquiryForm carries the fields of both inquiry forms (contact page and
// property detail sidebar). Validation rules live in the tags; fields are
// trimmed by Normalize before they are checked.
type InquiryForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,max=1000"`
}

func (f *InquiryForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
}

// Reset clears every field, the state the form returns to after an accepted
// submission. Rejected submissions keep their values so the visitor can
// correct them.
func (f *InquiryForm) Reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Message = ""
}
