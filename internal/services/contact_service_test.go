package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiratelier/internal/repos"
)

func newContactService(t *testing.T) *ContactService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewContactService(repos.NewContactRepo(db))
}

func TestContactFormValidate(t *testing.T) {
	cases := []struct {
		name string
		form ContactForm
		want map[string]string
	}{
		{"valid", ContactForm{"Ada", "ada@example.com", "Fit", "How does it fit?"}, nil},
		{"all empty", ContactForm{}, map[string]string{
			"name": "Name is required", "email": "Email is required",
			"subject": "Subject is required", "message": "Message is required",
		}},
		{"bad email", ContactForm{"Ada", "ada@", "Fit", "How does it fit?"}, map[string]string{"email": "Please enter a valid email"}},
		{"short message", ContactForm{"Ada", "ada@example.com", "Fit", " too short "}, map[string]string{"message": "Message must be at least 10 characters"}},
		{"long name", ContactForm{strings.Repeat("a", 81), "ada@example.com", "Fit", "How does it fit?"}, map[string]string{"name": "Name is required"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.form
			errs := f.Validate()
			if tc.want == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, FieldErrors(tc.want), errs)
		})
	}
}

func TestContactValidateTrims(t *testing.T) {
	f := ContactForm{"  Ada ", " ada@example.com ", " Fit ", "  How does it fit?  "}
	require.Nil(t, f.Validate())
	assert.Equal(t, ContactForm{"Ada", "ada@example.com", "Fit", "How does it fit?"}, f)
}

func TestContactSubmit(t *testing.T) {
	svc := newContactService(t)

	id, err := svc.Submit(ContactForm{"Ada", "ada@example.com", "Fit", "How does it fit?"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = svc.Submit(ContactForm{Name: "Ada"})
	assert.ErrorIs(t, err, ErrInvalidContact)
	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "email")
}

func TestSubscribe(t *testing.T) {
	svc := newContactService(t)

	_, err := svc.Subscribe("nope")
	assert.ErrorIs(t, err, ErrInvalidContact)

	created, err := svc.Subscribe(" news@example.com ")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Subscribe("NEWS@example.com")
	require.NoError(t, err)
	assert.False(t, created)
}
