package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()

	cases := map[string]bool{
		"secret123":    true,
		"s3cretpass":   true,
		"short1":       false,
		"onlyletters":  false,
		"1234567890":   false,
		"Pässwörd9":    true,
		"        1a  ": true,
	}
	for pw, ok := range cases {
		err := v.ValidatePasswordStrength(pw)
		if ok {
			assert.NoError(t, err, pw)
		} else {
			assert.Error(t, err, pw)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateEmail("student@campus.edu"))
	assert.Error(t, v.ValidateEmail("student-at-campus"))
	assert.Error(t, v.ValidateEmail(""))
}

func TestCustomTags(t *testing.T) {
	v := validator.New()
	_ = v.RegisterValidation("gender", genderFL)
	_ = v.RegisterValidation("signuprole", signupRoleFL)
	_ = v.RegisterValidation("containsletter", containsLetterFL)

	type form struct {
		Gender   string `validate:"gender"`
		Role     string `validate:"signuprole"`
		Password string `validate:"containsletter"`
	}

	assert.NoError(t, v.Struct(form{Gender: "Female", Role: "organizer", Password: "a1"}))
	assert.NoError(t, v.Struct(form{Gender: "", Role: "", Password: "x"}))
	assert.Error(t, v.Struct(form{Gender: "Robot", Role: "student", Password: "x"}))
	assert.Error(t, v.Struct(form{Role: "root", Password: "x"}))
	assert.Error(t, v.Struct(form{Password: "123"}))
}
