package session

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/mathquest/app/internal/models"
)

// FormError is a rejected login or registration form. Message is shown to
// the player as is.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Field + ": " + e.Message
}

var validate = validator.New()

const msgRequired = "Preencha todos os campos"

var messages = map[string]string{
	"Email.email":             "Email inválido",
	"Username.min":            "Nome de usuário deve ter no mínimo 3 caracteres",
	"Password.min":            "Senha deve ter no mínimo 6 caracteres",
	"ConfirmPassword.eqfield": "As senhas não coincidem",
}

// ValidateLogin checks the login form before it is sent.
func ValidateLogin(f models.LoginForm) error {
	return formError(validate.Struct(f))
}

// ValidateRegister checks the registration form. Required fields are
// reported before any other rule.
func ValidateRegister(f models.RegisterForm) error {
	return formError(validate.Struct(f))
}

func formError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return &FormError{Field: fe.Field(), Message: msgRequired}
		}
	}
	fe := verrs[0]
	msg, ok := messages[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = "Campo inválido: " + fe.Field()
	}
	return &FormError{Field: fe.Field(), Message: msg}
}
