package validation

import (
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	ProductID  uint64      `json:"product_id" validate:"required,gt=0"`
	ClientName string      `json:"client_name" validate:"required,min=2,max=255"`
	Email      string      `json:"email" validate:"required,custom_email,max=255"`
	Phone      null.String `json:"phone" validate:"omitempty,min=10,max=50"`
}

func validForm() sampleForm {
	return sampleForm{
		ProductID:  1,
		ClientName: "Jane Smith",
		Email:      "jane@example.com",
	}
}

func TestValidator_AcceptsValidForm(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validForm()))
}

func TestValidator_EmailRule(t *testing.T) {
	v := New()

	bad := []string{"plainaddress", "missing@tld", "@nouser.com", "spaces in@mail.com", "a@b.c"}
	for _, email := range bad {
		form := validForm()
		form.Email = email
		assert.Error(t, v.Validate(form), "expected %q to be rejected", email)
	}

	good := []string{"simple@example.com", "user.name+tag@sub.domain.org", "x_y%z@host.co"}
	for _, email := range good {
		form := validForm()
		form.Email = email
		assert.NoError(t, v.Validate(form), "expected %q to be accepted", email)
	}
}

func TestValidator_NullStringRules(t *testing.T) {
	v := New()

	form := validForm()
	form.Phone = null.String{}
	assert.NoError(t, v.Validate(form), "absent optional phone passes")

	form.Phone = null.StringFrom("+12345678901")
	assert.NoError(t, v.Validate(form))

	form.Phone = null.StringFrom("12345")
	assert.Error(t, v.Validate(form), "short phone is rejected")
}

func TestFirstViolation_MapsTagsToKinds(t *testing.T) {
	v := New()

	cases := []struct {
		name      string
		mutate    func(*sampleForm)
		wantField string
		wantKind  Kind
	}{
		{"required", func(f *sampleForm) { f.ClientName = "" }, "client_name", KindMissingField},
		{"min", func(f *sampleForm) { f.ClientName = "J" }, "client_name", KindTooShort},
		{"email", func(f *sampleForm) { f.Email = "nope" }, "email", KindInvalidEmail},
		{"phone min", func(f *sampleForm) { f.Phone = null.StringFrom("12") }, "phone", KindTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			err := v.Validate(form)
			require.Error(t, err)

			var fieldErr *FieldError
			require.ErrorAs(t, FirstViolation(err), &fieldErr)
			assert.Equal(t, tc.wantField, fieldErr.Field)
			assert.Equal(t, tc.wantKind, fieldErr.Kind)
			assert.NotEmpty(t, fieldErr.Message)
		})
	}
}

func TestFirstViolation_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, FirstViolation(plain))
}

func TestFirstViolation_ReportsOnlyFirstFailure(t *testing.T) {
	v := New()

	form := sampleForm{} // everything missing
	err := v.Validate(form)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, FirstViolation(err), &fieldErr)
	assert.Equal(t, "product_id", fieldErr.Field, "field order decides which violation is reported")
}
