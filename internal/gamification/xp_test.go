package gamification

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mathquest/app/internal/models"
)

func question(xp, correct int) models.Question {
	return models.Question{
		ID:            "q",
		XP:            xp,
		Options:       []string{"a", "b", "c", "d", "e"},
		CorrectAnswer: correct,
		Difficulty:    models.DifficultyMedium,
		CategoryID:    "algebra",
	}
}

func TestBaseXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 0},
		{-10, 0},
		{1, 0},
		{3, 0},
		{4, 1},
		{50, 15},
		{100, 30},
		{150, 45},
		{333, 99},
	}
	for _, tt := range tests {
		got := BaseXP(tt.xp)
		if got != tt.want {
			t.Errorf("BaseXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestScoreSubmission_Scenarios(t *testing.T) {
	valid := &models.ValidationOutcome{IsValid: true, FeedbackMessage: "ok"}
	invalid := &models.ValidationOutcome{IsValid: false, FeedbackMessage: "ilegível"}

	tests := []struct {
		name       string
		q          models.Question
		in         models.SubmissionInput
		outcome    *models.ValidationOutcome
		wantXP     int
		wantOK     bool
		wantBranch models.RewardBranch
		wantMsg    string
	}{
		{"A correct without manuscript", question(100, 0), models.SubmissionInput{SelectedOptionIndex: 0}, nil, 30, true, models.BranchCorrectBase, MsgCorrectBase},
		{"B correct with valid manuscript", question(100, 0), models.SubmissionInput{SelectedOptionIndex: 0, HasJustification: true}, valid, 100, true, models.BranchCorrectValidated, MsgValidated},
		{"C correct with invalid manuscript", question(100, 0), models.SubmissionInput{SelectedOptionIndex: 0, HasJustification: true}, invalid, 30, true, models.BranchCorrectUnvalidated, MsgUnvalidated},
		{"D wrong with valid manuscript", question(150, 0), models.SubmissionInput{SelectedOptionIndex: 2, HasJustification: true}, valid, 0, false, models.BranchIncorrect, MsgIncorrect},
		{"wrong without manuscript", question(150, 0), models.SubmissionInput{SelectedOptionIndex: 4}, nil, 0, false, models.BranchIncorrect, MsgIncorrect},
		{"justification with no outcome", question(50, 1), models.SubmissionInput{SelectedOptionIndex: 1, HasJustification: true}, nil, 15, true, models.BranchCorrectUnvalidated, MsgUnvalidated},
		{"outcome ignored without justification", question(50, 1), models.SubmissionInput{SelectedOptionIndex: 1}, valid, 15, true, models.BranchCorrectBase, MsgCorrectBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ScoreSubmission(tt.q, tt.in, tt.outcome)
			if err != nil {
				t.Fatalf("ScoreSubmission() error = %v", err)
			}
			if res.XPAwarded != tt.wantXP {
				t.Errorf("XPAwarded = %d, want %d", res.XPAwarded, tt.wantXP)
			}
			if res.IsCorrect != tt.wantOK {
				t.Errorf("IsCorrect = %v, want %v", res.IsCorrect, tt.wantOK)
			}
			if res.Branch != tt.wantBranch {
				t.Errorf("Branch = %s, want %s", res.Branch, tt.wantBranch)
			}
			if res.FeedbackMessage != tt.wantMsg {
				t.Errorf("FeedbackMessage = %q, want %q", res.FeedbackMessage, tt.wantMsg)
			}
			if res.XPAwarded < 0 || res.XPAwarded > tt.q.XP {
				t.Errorf("XPAwarded = %d outside [0, %d]", res.XPAwarded, tt.q.XP)
			}
		})
	}
}

func TestScoreSubmission_Properties(t *testing.T) {
	valid := &models.ValidationOutcome{IsValid: true}
	invalid := &models.ValidationOutcome{IsValid: false}

	for xp := 1; xp <= 300; xp++ {
		q := question(xp, 3)
		for idx := range q.Options {
			for _, hasJust := range []bool{false, true} {
				for _, out := range []*models.ValidationOutcome{nil, valid, invalid} {
					in := models.SubmissionInput{SelectedOptionIndex: idx, HasJustification: hasJust}
					res, err := ScoreSubmission(q, in, out)
					if err != nil {
						t.Fatalf("xp=%d idx=%d: %v", xp, idx, err)
					}

					want := 0
					switch {
					case idx != q.CorrectAnswer:
					case hasJust && out != nil && out.IsValid:
						want = xp
					default:
						want = xp * 3 / 10
					}
					if res.XPAwarded != want {
						t.Fatalf("xp=%d idx=%d just=%v outcome=%v: XPAwarded = %d, want %d", xp, idx, hasJust, out, res.XPAwarded, want)
					}
				}
			}
		}
	}
}

func TestScoreSubmission_Idempotent(t *testing.T) {
	q := question(100, 2)
	in := models.SubmissionInput{SelectedOptionIndex: 2, HasJustification: true}
	out := &models.ValidationOutcome{IsValid: true, FeedbackMessage: "passos claros"}

	first, err := ScoreSubmission(q, in, out)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ScoreSubmission(q, in, out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
	if first.ValidatorFeedback != "passos claros" {
		t.Errorf("ValidatorFeedback = %q, want validator message", first.ValidatorFeedback)
	}
}

func TestScoreSubmission_InvalidIndex(t *testing.T) {
	q := question(100, 0)
	for _, idx := range []int{-1, 5, 99} {
		_, err := ScoreSubmission(q, models.SubmissionInput{SelectedOptionIndex: idx}, nil)
		var target *InvalidIndexError
		if !errors.As(err, &target) {
			t.Fatalf("ScoreSubmission(idx=%d) error = %v, want *InvalidIndexError", idx, err)
		}
		if target.Index != idx || target.Options != 5 {
			t.Errorf("InvalidIndexError = %+v", target)
		}
	}
}
