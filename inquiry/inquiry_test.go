package inquiry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/luxeestate/luxeestate_site/models"
)

func validForm() models.InquiryForm {
	return models.InquiryForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "",
		Message: "Interested in a viewing.",
	}
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name      string
		mod       func(f *models.InquiryForm)
		wantField string
		wantMsg   string
	}{
		{"valid", func(f *models.InquiryForm) {}, "", ""},
		{"valid with phone", func(f *models.InquiryForm) { f.Phone = "+1 (555) 000-0000" }, "", ""},
		{"empty name", func(f *models.InquiryForm) { f.Name = "" }, "name", "Name is required"},
		{"whitespace name", func(f *models.InquiryForm) { f.Name = "   " }, "name", "Name is required"},
		{"long name", func(f *models.InquiryForm) { f.Name = strings.Repeat("a", 101) }, "name", "Name must be less than 100 characters"},
		{"empty email", func(f *models.InquiryForm) { f.Email = "" }, "email", "Please enter a valid email"},
		{"malformed email", func(f *models.InquiryForm) { f.Email = "not-an-email" }, "email", "Please enter a valid email"},
		{"long phone", func(f *models.InquiryForm) { f.Phone = strings.Repeat("1", 21) }, "phone", "Phone must be less than 20 characters"},
		{"empty message", func(f *models.InquiryForm) { f.Message = "" }, "message", "Message is required"},
		{"whitespace message", func(f *models.InquiryForm) { f.Message = " \n\t " }, "message", "Message is required"},
		{"long message", func(f *models.InquiryForm) { f.Message = strings.Repeat("m", 1001) }, "message", "Message must be less than 1000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mod(&form)
			ferr := ValidateForm(&form)

			if tt.wantField == "" {
				if ferr != nil {
					t.Fatalf("expected acceptance, got %v on field %s", ferr, ferr.Field)
				}
				return
			}
			if ferr == nil {
				t.Fatal("expected rejection, form accepted")
			}
			if ferr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ferr.Field, tt.wantField)
			}
			if ferr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", ferr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateFormReportsFirstFailure(t *testing.T) {
	// Name, email and message are all bad; only name is reported.
	form := models.InquiryForm{Name: "", Email: "bad", Message: ""}
	ferr := ValidateForm(&form)
	if ferr == nil {
		t.Fatal("expected rejection")
	}
	if ferr.Field != "name" {
		t.Errorf("first failing field = %q, want name", ferr.Field)
	}

	// With name fixed the email failure surfaces next.
	form = models.InquiryForm{Name: "Jane", Email: "bad", Message: ""}
	ferr = ValidateForm(&form)
	if ferr == nil || ferr.Field != "email" {
		t.Errorf("second failing field = %v, want email", ferr)
	}
}

func TestSubmitAcceptsAndResets(t *testing.T) {
	svc := NewService(0)
	form := validForm()

	receipt, err := svc.Submit(context.Background(), &form)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if receipt.Reference == "" {
		t.Error("expected a submission reference")
	}
	if receipt.MessageChars != len("Interested in a viewing.") {
		t.Errorf("messageChars = %d", receipt.MessageChars)
	}

	if form.Name != "" || form.Email != "" || form.Phone != "" || form.Message != "" {
		t.Errorf("form not reset after acceptance: %+v", form)
	}
}

func TestSubmitRejectionPreservesForm(t *testing.T) {
	svc := NewService(0)
	form := models.InquiryForm{Name: "", Email: "a@b.com", Message: "hi"}

	_, err := svc.Submit(context.Background(), &form)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	if ferr.Field != "name" {
		t.Errorf("rejected field = %q, want name", ferr.Field)
	}
	if form.Email != "a@b.com" || form.Message != "hi" {
		t.Errorf("rejected form was cleared: %+v", form)
	}
}

func TestSubmitWaitsSimulatedDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	svc := NewService(delay)
	form := validForm()

	start := time.Now()
	if _, err := svc.Submit(context.Background(), &form); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("Submit returned after %v, want at least %v", elapsed, delay)
	}
}

func TestSubmitDiscardedOnCancel(t *testing.T) {
	svc := NewService(time.Minute)
	form := validForm()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	receipt, err := svc.Submit(ctx, &form)
	if receipt != nil {
		t.Error("expected no receipt after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if form.Name == "" {
		t.Error("cancelled submission must not reset the form")
	}
}
