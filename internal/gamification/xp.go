package gamification

import (
	"fmt"

	"github.com/mathquest/app/internal/models"
)

const (
	MsgIncorrect   = "Resposta incorreta. Não há penalidade, tente novamente!"
	MsgCorrectBase = "Resposta correta! Envie sua resolução manuscrita para ganhar 100% do XP."
	MsgValidated   = "Resolução manuscrita validada! Os passos estão claros e organizados."
	MsgUnvalidated = "Cálculo ilegível ou incompleto. Bônus de manuscrito anulado, mas você ganhou os 30% base."
)

// InvalidIndexError is returned when the selected option does not exist.
type InvalidIndexError struct {
	QuestionID string
	Index      int
	Options    int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("question %s: option index %d out of range [0, %d)", e.QuestionID, e.Index, e.Options)
}

// BaseXP is the reward for a correct pick without a validated manuscript:
// floor(xp * 0.3), computed in integers.
func BaseXP(questionXP int) int {
	if questionXP <= 0 {
		return 0
	}
	return questionXP * 3 / 10
}

// ScoreSubmission applies the reward policy. It is pure: the caller runs the
// manuscript validator first and passes its outcome. A justification with a
// nil outcome is scored as unvalidated.
func ScoreSubmission(q models.Question, in models.SubmissionInput, outcome *models.ValidationOutcome) (models.SubmissionResult, error) {
	if !q.HasOption(in.SelectedOptionIndex) {
		return models.SubmissionResult{}, &InvalidIndexError{QuestionID: q.ID, Index: in.SelectedOptionIndex, Options: len(q.Options)}
	}

	res := models.SubmissionResult{
		QuestionID:       q.ID,
		IsCorrect:        in.SelectedOptionIndex == q.CorrectAnswer,
		HasJustification: in.HasJustification,
	}
	if outcome != nil {
		res.ValidatorFeedback = outcome.FeedbackMessage
	}

	switch {
	case !res.IsCorrect:
		res.Branch = models.BranchIncorrect
		res.FeedbackMessage = MsgIncorrect
	case !in.HasJustification:
		res.Branch = models.BranchCorrectBase
		res.XPAwarded = BaseXP(q.XP)
		res.FeedbackMessage = MsgCorrectBase
	case outcome != nil && outcome.IsValid:
		res.Branch = models.BranchCorrectValidated
		res.JustificationValid = true
		res.XPAwarded = q.XP
		res.FeedbackMessage = MsgValidated
	default:
		res.Branch = models.BranchCorrectUnvalidated
		res.XPAwarded = BaseXP(q.XP)
		res.FeedbackMessage = MsgUnvalidated
	}
	return res, nil
}
