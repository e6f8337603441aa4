package manuscript

import (
	"fmt"
	"strings"

	"github.com/mathquest/app/internal/models"
)

func SystemPrompt() string {
	return `Você é um professor de matemática avaliando a resolução manuscrita de um aluno.

Você recebe a IMAGEM de uma resolução feita à mão e o ENUNCIADO da questão com a RESPOSTA CORRETA.
Avalie apenas a resolução, não a escolha de alternativa.

CRITÉRIOS:
- legible: a escrita pode ser lida sem adivinhação
- steps_shown: há passos intermediários, não apenas o resultado
- reaches_answer: a resolução chega à resposta correta

Responda SOMENTE com JSON válido, sem texto adicional, no formato:
{"legible": true, "steps_shown": true, "reaches_answer": true, "confidence": "high", "feedback": "frase curta em português para o aluno"}

confidence deve ser "high", "medium" ou "low".`
}

// BuildUserPrompt describes the question the manuscript is meant to solve.
func BuildUserPrompt(q models.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "QUESTÃO: %s\n", q.Name)
	fmt.Fprintf(&b, "ENUNCIADO: %s\n", q.Description)
	fmt.Fprintf(&b, "DIFICULDADE: %s\n", q.Difficulty.Label())
	b.WriteString("ALTERNATIVAS:\n")
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %c) %s\n", 'A'+rune(i), opt)
	}
	if q.HasOption(q.CorrectAnswer) {
		fmt.Fprintf(&b, "RESPOSTA CORRETA: %c) %s\n", 'A'+rune(q.CorrectAnswer), q.Options[q.CorrectAnswer])
	}
	b.WriteString("\nAvalie a resolução manuscrita anexada.")
	return b.String()
}
