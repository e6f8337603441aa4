package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathquest/app/internal/catalog"
	"github.com/mathquest/app/internal/devbackend"
)

// harness runs CLI commands against an in-process dev backend.
type harness struct {
	t      *testing.T
	config string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := devbackend.NewMemoryStore()
	hash, err := bcrypt.GenerateFromPassword([]byte(devbackend.SeedPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, devbackend.Seed(context.Background(), store, catalog.Default().CommunityUsers(), string(hash)))
	ts := httptest.NewServer(devbackend.NewServer(devbackend.Options{Store: store, Secret: []byte("cli-test"), BcryptCost: bcrypt.MinCost}).Handler())
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf(`
backend:
  url: %s
credentials:
  path: %s
validator:
  mode: accept
log:
  level: error
`, ts.URL, filepath.Join(dir, "credentials.json"))
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return &harness{t: t, config: path}
}

func (h *harness) run(input string, args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out)
	cmd.SetArgs(append(args, "--config", h.config))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) login() {
	h.t.Helper()
	_, err := h.run("", "login", "--email", devbackend.SeedEmail("MathGenius"), "--password", devbackend.SeedPassword)
	require.NoError(h.t, err)
}

func TestLoginProfileLogout(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "login", "--email", devbackend.SeedEmail("MathGenius"), "--password", devbackend.SeedPassword)
	require.NoError(t, err)
	assert.Contains(t, out, "Bem-vindo, MathGenius!")
	assert.Contains(t, out, "Nível 25")

	out, err = h.run("", "profile", "--json")
	require.NoError(t, err)
	var body struct {
		Profile struct {
			Username string `json:"username"`
			TotalXP  int    `json:"total_xp"`
		} `json:"profile"`
		Level struct {
			Level int `json:"level"`
		} `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "MathGenius", body.Profile.Username)
	assert.Equal(t, 4850, body.Profile.TotalXP)
	assert.Equal(t, 25, body.Level.Level)

	_, err = h.run("", "logout")
	require.NoError(t, err)
	_, err = h.run("", "profile")
	assert.ErrorContains(t, err, "nenhuma sessão ativa")
}

func TestLoginErrors(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "login", "--email", "x@y.z")
	assert.EqualError(t, err, "Preencha todos os campos")

	_, err = h.run("", "login", "--email", devbackend.SeedEmail("MathGenius"), "--password", "errada")
	assert.EqualError(t, err, "Email ou senha inválidos")
}

func TestRegister(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "register", "--username", "Nova", "--email", "nova@example.com", "--password", "segredo")
	require.NoError(t, err)
	assert.Contains(t, out, "Conta criada")

	_, err = h.run("", "register", "--username", "No", "--email", "nova@example.com", "--password", "segredo")
	assert.EqualError(t, err, "Nome de usuário deve ter no mínimo 3 caracteres")
}

func TestRanking(t *testing.T) {
	h := newHarness(t)
	h.login()

	out, err := h.run("", "ranking")
	require.NoError(t, err)
	assert.Contains(t, out, "Ranking semanal")
	assert.Contains(t, out, "MathGenius")
	assert.Contains(t, out, "AlgebraKing")
	assert.NotContains(t, out, "offline")
}

func TestCatalog(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Álgebra")
	assert.Contains(t, out, "Equações 2º Grau")
}

func TestPlayAnswersAQuestion(t *testing.T) {
	h := newHarness(t)
	h.login()

	// Álgebra, first question, option A, no manuscript, continue, quit.
	out, err := h.run("2\n1\nA\n\n\ns\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "Raízes Reais")
	assert.Contains(t, out, "+15 XP")
	assert.Contains(t, out, "Até a próxima!")
}

func TestPlayWithManuscript(t *testing.T) {
	h := newHarness(t)
	h.login()

	img := filepath.Join(t.TempDir(), "solucao.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	require.NoError(t, os.WriteFile(img, png, 0o644))

	out, err := h.run("2\n1\nz\nA\n"+img+"\n\ns\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "Escolha uma das alternativas")
	assert.Contains(t, out, "+50 XP")
}

func TestPlayEndOfInputQuits(t *testing.T) {
	h := newHarness(t)
	h.login()

	out, err := h.run("p\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "MathGenius")
	assert.Contains(t, out, "Até a próxima!")
}

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"A", 0},
		{" c ", 2},
		{"e", 4},
		{"", -1},
		{"AB", -1},
	}
	for _, tt := range tests {
		if got := optionIndex(tt.in); got != tt.want {
			t.Errorf("optionIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
