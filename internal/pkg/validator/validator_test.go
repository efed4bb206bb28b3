package validator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otpInput struct {
	Email string `json:"email" validate:"required,email,max=100"`
	Code  string `json:"otp" validate:"required,otp"`
}

type registerInput struct {
	FullName string `validate:"required,min=3,max=30,alphaspace"`
	Password string `json:"password" validate:"required,password"`
}

func newValidator(t *testing.T) *V10Validator {
	t.Helper()
	v, err := NewV10Validator()
	require.NoError(t, err)
	return v
}

func TestV10Validator_OTP(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "six digits", code: "012345"},
		{name: "five digits", code: "12345", wantErr: true},
		{name: "seven digits", code: "1234567", wantErr: true},
		{name: "letters", code: "12a456", wantErr: true},
		{name: "unicode digits", code: "١٢٣٤٥٦", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(otpInput{Email: "ana@example.com", Code: tt.code})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "otp must be exactly 6 digits", verr.Values()["otp"])
		})
	}
}

func TestV10Validator_FieldNames(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(registerInput{FullName: "A1", Password: "123"})

	var verr V10ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr, "full_name")
	assert.Equal(t, "password must be 6-20 characters", verr["password"])
	assert.NotEmpty(t, verr.Error())
}

func TestV10Validator_Password(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Validate(registerInput{FullName: "Ana Lee", Password: "secret"}))
	assert.NoError(t, v.Validate(registerInput{FullName: "Ana Lee", Password: "abcdefghijklmnopqrst"}))
	assert.Error(t, v.Validate(registerInput{FullName: "Ana Lee", Password: "abcdefghijklmnopqrstu"}))
}

func TestFieldName(t *testing.T) {
	type sample struct {
		FullName string
		UserID   int64  `json:"uid,string"`
		Skipped  string `json:"-"`
	}

	typ := reflect.TypeOf(sample{})
	assert.Equal(t, "full_name", fieldName(typ.Field(0)))
	assert.Equal(t, "uid", fieldName(typ.Field(1)))
	assert.Equal(t, "skipped", fieldName(typ.Field(2)))
}
