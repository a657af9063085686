package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"noiratelier/internal/repos"
	"noiratelier/internal/validate"
)

var ErrInvalidContact = errors.New("invalid contact form")

// ContactForm is a visitor message; FieldErrors maps form fields to messages.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("%s: %d field(s)", ErrInvalidContact, len(e))
}

func (e FieldErrors) Unwrap() error { return ErrInvalidContact }

type ContactService struct {
	Repo *repos.ContactRepo
}

func NewContactService(r *repos.ContactRepo) *ContactService { return &ContactService{Repo: r} }

// Validate normalizes the form in place and reports every failing field.
func (f *ContactForm) Validate() FieldErrors {
	errs := FieldErrors{}
	var ok bool
	if f.Name, ok = validate.Required(f.Name, 80); !ok {
		errs["name"] = "Name is required"
	}
	if f.Email, ok = validate.Email(f.Email); !ok {
		if f.Email == "" {
			errs["email"] = "Email is required"
		} else {
			errs["email"] = "Please enter a valid email"
		}
	}
	if f.Subject, ok = validate.Required(f.Subject, 120); !ok {
		errs["subject"] = "Subject is required"
	}
	msg, ok := validate.Required(f.Message, 4000)
	switch {
	case !ok:
		errs["message"] = "Message is required"
	case len([]rune(msg)) < 10:
		errs["message"] = "Message must be at least 10 characters"
	}
	f.Message = msg
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit stores a valid message and returns its id.
func (s *ContactService) Submit(f ContactForm) (string, error) {
	if errs := f.Validate(); errs != nil {
		return "", errs
	}
	id := uuid.NewString()
	err := s.Repo.Create(repos.ContactMessage{ID: id, Name: f.Name, Email: f.Email, Subject: f.Subject, Message: f.Message})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Subscribe adds a newsletter address. created is false for a repeat sign-up.
func (s *ContactService) Subscribe(email string) (created bool, err error) {
	e, ok := validate.Email(email)
	if !ok {
		return false, ErrInvalidContact
	}
	return s.Repo.Subscribe(e)
}
