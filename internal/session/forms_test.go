package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathquest/app/internal/models"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name string
		form models.LoginForm
		want string
	}{
		{"valid", models.LoginForm{Email: "ana@example.com", Password: "x"}, ""},
		{"missing password", models.LoginForm{Email: "ana@example.com"}, msgRequired},
		{"missing email", models.LoginForm{Password: "segredo"}, msgRequired},
		{"bad email", models.LoginForm{Email: "ana", Password: "segredo"}, "Email inválido"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.form)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var fe *FormError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.want, fe.Message)
		})
	}
}

func TestValidateRegister(t *testing.T) {
	valid := models.RegisterForm{Username: "Ana", Email: "ana@example.com", Password: "segredo", ConfirmPassword: "segredo"}

	tests := []struct {
		name   string
		mutate func(*models.RegisterForm)
		field  string
		want   string
	}{
		{"valid", func(*models.RegisterForm) {}, "", ""},
		{"short username", func(f *models.RegisterForm) { f.Username = "An" }, "Username", "Nome de usuário deve ter no mínimo 3 caracteres"},
		{"bad email", func(f *models.RegisterForm) { f.Email = "ana.example.com" }, "Email", "Email inválido"},
		{"short password", func(f *models.RegisterForm) { f.Password, f.ConfirmPassword = "12345", "12345" }, "Password", "Senha deve ter no mínimo 6 caracteres"},
		{"mismatch", func(f *models.RegisterForm) { f.ConfirmPassword = "segredo!" }, "ConfirmPassword", "As senhas não coincidem"},
		{"required wins", func(f *models.RegisterForm) { f.Username, f.ConfirmPassword = "An", "" }, "ConfirmPassword", msgRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := ValidateRegister(f)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var fe *FormError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.want, fe.Message)
		})
	}
}

func TestScreenKindString(t *testing.T) {
	assert.Equal(t, "home", Home{}.Kind().String())
	assert.Equal(t, "publicProfile", PublicProfile{}.Kind().String())
	assert.Equal(t, "unknown", ScreenKind(99).String())
}
