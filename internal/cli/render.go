package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mathquest/app/internal/catalog"
	"github.com/mathquest/app/internal/gamification"
	"github.com/mathquest/app/internal/models"
	"github.com/mathquest/app/internal/session"
	"github.com/mathquest/app/internal/social"
)

var (
	primary = lipgloss.Color("#7C3AED")
	success = lipgloss.Color("#8BC34A")
	danger  = lipgloss.Color("#e53935")
	warning = lipgloss.Color("#FFC107")
	muted   = lipgloss.Color("#6B7280")

	titleStyle   = lipgloss.NewStyle().Foreground(primary).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	okStyle      = lipgloss.NewStyle().Foreground(success).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	xpStyle      = lipgloss.NewStyle().Foreground(warning).Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(primary).Bold(true)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1)
)

func optionLetter(i int) string {
	return string(rune('A' + i))
}

func progressBar(percent float64, width int) string {
	filled := int(percent * float64(width) / 100)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func renderLevel(w io.Writer, s gamification.LevelSummary) {
	fmt.Fprintf(w, "%s  %s %d/%d XP %s\n",
		titleStyle.Render(fmt.Sprintf("Nível %d", s.Level)),
		progressBar(s.Percent, 20), s.XPIntoLevel, gamification.XPPerLevel,
		mutedStyle.Render(fmt.Sprintf("(faltam %d)", s.XPToNext)))
}

func renderProfile(w io.Writer, p models.UserProfile) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(p.Username))
	fmt.Fprintf(&b, "XP total: %s   XP semanal: %d\n", xpStyle.Render(fmt.Sprint(p.TotalXP)), p.WeeklyXP)
	fmt.Fprintf(&b, "Questões: %d   Manuscritos validados: %d   Sequência: %d\n", p.QuestionsCompleted, p.ManuscriptsValidated, p.CorrectStreak)
	fmt.Fprintf(&b, "Tempo de estudo: %dh%02dm   Categoria favorita: %s\n", p.TimeSpentMinutes/60, p.TimeSpentMinutes%60, p.FavoriteCategory)
	fmt.Fprintf(&b, "Membro desde: %s", p.JoinedDate)
	fmt.Fprintln(w, cardStyle.Render(b.String()))
	renderLevel(w, gamification.Summarize(p.TotalXP))

	if len(p.CategoryStats) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Por categoria"))
		for _, cs := range p.CategoryStats {
			fmt.Fprintf(w, "  %-16s %3d questões  %5d XP\n", cs.CategoryName, cs.QuestionsCompleted, cs.XPEarned)
		}
	}
}

func renderRanking(w io.Writer, board social.WeeklyBoard) {
	title := "Ranking semanal"
	if board.Offline {
		title += mutedStyle.Render(" (offline)")
	}
	fmt.Fprintln(w, titleStyle.Render(title))
	for _, e := range board.Entries {
		badge := e.Badge
		if badge == "" {
			badge = fmt.Sprintf("%2d.", e.Rank)
		}
		line := fmt.Sprintf("%s %-16s %5d XP  nível %d", badge, e.Username, e.WeeklyXP, e.Level)
		if e.IsCurrentUser {
			line = currentStyle.Render(line + "  ← você")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Reinicia em %d dia(s)", board.DaysUntilReset)))
}

func renderCatalog(w io.Writer, c *catalog.Catalog) {
	for i, cat := range c.Categories() {
		fmt.Fprintf(w, "%d. %s %s\n", i+1, cat.Icon, titleStyle.Render(cat.Name))
		for _, sub := range cat.Subcategories {
			n := len(c.QuestionsFor(cat.ID, sub.ID))
			fmt.Fprintf(w, "     %-26s %s\n", sub.Name, mutedStyle.Render(fmt.Sprintf("%d disponíveis", n)))
		}
	}
}

func renderQuestion(w io.Writer, q models.Question) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", titleStyle.Render(q.Name), mutedStyle.Render(q.Difficulty.Label()), xpStyle.Render(fmt.Sprintf("+%d XP", q.XP)))
	fmt.Fprintf(&b, "%s\n", q.Description)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "\n  %s) %s", optionLetter(i), opt)
	}
	fmt.Fprintln(w, cardStyle.Render(b.String()))
}

func renderResult(w io.Writer, q models.Question, r session.AnswerResult) {
	if r.IsCorrect {
		fmt.Fprintln(w, okStyle.Render(r.FeedbackMessage))
	} else {
		fmt.Fprintln(w, errStyle.Render(r.FeedbackMessage))
		fmt.Fprintf(w, "Resposta correta: %s) %s\n", optionLetter(q.CorrectAnswer), q.Options[q.CorrectAnswer])
	}
	if r.ValidatorFeedback != "" {
		fmt.Fprintln(w, mutedStyle.Render(r.ValidatorFeedback))
	}
	fmt.Fprintf(w, "%s\n", xpStyle.Render(fmt.Sprintf("+%d XP", r.XPAwarded)))
	if r.LeveledUp {
		fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("Subiu para o nível %d!", r.Level.Level)))
	}
	for _, a := range r.Unlocked {
		fmt.Fprintf(w, "%s %s\n", a.Icon, okStyle.Render("Conquista desbloqueada: "+a.Name))
	}
	renderLevel(w, r.Level)
}

func renderAchievements(w io.Writer, views []gamification.AchievementView) {
	for _, v := range views {
		mark := mutedStyle.Render("🔒")
		if v.Unlocked {
			mark = okStyle.Render("✔")
		}
		fmt.Fprintf(w, "%s %s %-26s %-8s %s  %s\n", mark, v.Icon, v.Name, v.TierName,
			mutedStyle.Render(fmt.Sprintf("%d/%d", v.Progress, v.MaxProgress)), mutedStyle.Render(v.RarityLabel))
	}
}

func renderFriends(w io.Writer, book *social.FriendsBook) {
	fmt.Fprintln(w, titleStyle.Render("Amigos"))
	for _, f := range book.Friends() {
		status := mutedStyle.Render("visto " + f.LastSeen)
		if f.IsOnline {
			status = okStyle.Render("online")
		}
		fmt.Fprintf(w, "  %-16s nível %-3d %5d XP semanal  %s\n", f.Username, f.Level, f.WeeklyXP, status)
	}
	if in := book.Incoming(); len(in) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Pedidos recebidos"))
		for _, r := range in {
			fmt.Fprintf(w, "  [%s] %s\n", r.ID, r.From)
		}
	}
}
