package manuscript

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mathquest/app/internal/models"
)

// Assessment is the model's verdict on a manuscript.
type Assessment struct {
	Legible       bool   `json:"legible"`
	StepsShown    bool   `json:"steps_shown"`
	ReachesAnswer bool   `json:"reaches_answer"`
	Confidence    string `json:"confidence"`
	Feedback      string `json:"feedback"`
}

var validConfidence = map[string]bool{"high": true, "medium": true, "low": true}

// ParseAssessment decodes the model output, tolerating markdown code fences.
func ParseAssessment(responseBody string) (*Assessment, error) {
	cleaned := stripCodeFences(responseBody)

	var a Assessment
	if err := json.Unmarshal([]byte(cleaned), &a); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	a.Confidence = strings.ToLower(strings.TrimSpace(a.Confidence))
	if !validConfidence[a.Confidence] {
		return nil, fmt.Errorf("invalid confidence %q", a.Confidence)
	}
	return &a, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// AIValidator asks a vision model to grade the manuscript.
type AIValidator struct {
	llm    LLMClient
	model  string
	logger *zap.Logger
}

func NewAIValidator(llm LLMClient, model string, logger *zap.Logger) *AIValidator {
	return &AIValidator{llm: llm, model: model, logger: logger}
}

func (v *AIValidator) ModelName() string {
	return v.model
}

func (v *AIValidator) Validate(ctx context.Context, m models.Manuscript, q models.Question) (models.ValidationOutcome, error) {
	resp, err := v.llm.Assess(ctx, SystemPrompt(), BuildUserPrompt(q), m)
	if err != nil {
		return models.ValidationOutcome{}, fmt.Errorf("assess manuscript: %w", err)
	}

	a, err := ParseAssessment(resp.Content)
	if err != nil {
		return models.ValidationOutcome{}, fmt.Errorf("parse assessment: %w", err)
	}

	score := ComputeManuscriptScore(*a)
	class := ClassifyManuscript(score)
	v.logger.Debug("manuscript assessed",
		zap.String("question_id", q.ID),
		zap.String("model", v.model),
		zap.Float64("score", score),
		zap.String("class", class),
		zap.Int("prompt_tokens", resp.PromptTokens),
		zap.Int("output_tokens", resp.OutputTokens),
	)

	out := verdict(class == ClassValid)
	if a.Feedback != "" {
		out.FeedbackMessage = a.Feedback
	}
	return out, nil
}
