package validator

import (
	"fmt"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

const minPasswordLength = 8

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength requires at least eight characters with a letter and a digit.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if !containsLetter(password) {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !containsNumber(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("containsletter", containsLetterFL)
		_ = v.RegisterValidation("containsdigit", containsNumberFL)
		_ = v.RegisterValidation("gender", genderFL)
		_ = v.RegisterValidation("signuprole", signupRoleFL)
	}
}

// containsLetter checks if the string contains at least one letter.
func containsLetter(s string) bool {
	for _, char := range s {
		if unicode.IsLetter(char) {
			return true
		}
	}
	return false
}
func containsLetterFL(fl validator.FieldLevel) bool {
	return containsLetter(fl.Field().String())
}

// containsNumber checks if the string contains at least one number.
func containsNumber(s string) bool {
	for _, char := range s {
		if unicode.IsNumber(char) {
			return true
		}
	}
	return false
}
func containsNumberFL(fl validator.FieldLevel) bool {
	return containsNumber(fl.Field().String())
}

// genderFL accepts an empty value or one of the known genders.
func genderFL(fl validator.FieldLevel) bool {
	g := fl.Field().String()
	return g == "" || entity.IsValidGender(g)
}

// signupRoleFL accepts the roles a user may pick at sign-up. Admin is
// rejected later with a dedicated message, so it passes here.
func signupRoleFL(fl validator.FieldLevel) bool {
	_, ok := entity.ParseRole(fl.Field().String())
	return ok
}
