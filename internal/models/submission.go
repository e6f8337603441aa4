package models

// Manuscript is the captured handwritten solution, usually a PNG render of
// the drawing canvas.
type Manuscript struct {
	Data      []byte `json:"-"`
	MediaType string `json:"media_type"`
}

// Empty reports whether nothing was captured.
func (m Manuscript) Empty() bool {
	return len(m.Data) == 0
}

type SubmissionInput struct {
	SelectedOptionIndex int        `json:"selected_option_index"`
	HasJustification    bool       `json:"has_justification"`
	Justification       Manuscript `json:"justification"`
}

type ValidationOutcome struct {
	IsValid         bool   `json:"is_valid"`
	FeedbackMessage string `json:"feedback_message"`
}

// RewardBranch identifies which rule of the reward policy produced a result.
type RewardBranch string

const (
	BranchIncorrect          RewardBranch = "incorrect"
	BranchCorrectBase        RewardBranch = "correct_base"
	BranchCorrectValidated   RewardBranch = "correct_validated"
	BranchCorrectUnvalidated RewardBranch = "correct_unvalidated"
)

type SubmissionResult struct {
	QuestionID         string       `json:"question_id"`
	IsCorrect          bool         `json:"is_correct"`
	HasJustification   bool         `json:"has_justification"`
	JustificationValid bool         `json:"justification_valid"`
	XPAwarded          int          `json:"xp_awarded"`
	FeedbackMessage    string       `json:"feedback_message"`
	ValidatorFeedback  string       `json:"validator_feedback,omitempty"`
	Branch             RewardBranch `json:"branch"`
}
