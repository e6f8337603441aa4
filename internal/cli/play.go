package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathquest/app/internal/gamification"
	"github.com/mathquest/app/internal/models"
	"github.com/mathquest/app/internal/session"
	"github.com/mathquest/app/internal/social"
)

func newPlayCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Answer questions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.resume(cmd.Context())
			if err != nil {
				return err
			}
			return newPlayer(c, e.in, e.out).run(cmd.Context())
		},
	}
}

// player drives the controller from line-based terminal input.
type player struct {
	c   *session.Controller
	in  *bufio.Scanner
	out io.Writer
}

var errQuit = errors.New("quit")

func newPlayer(c *session.Controller, in io.Reader, out io.Writer) *player {
	return &player{c: c, in: bufio.NewScanner(in), out: out}
}

func (p *player) prompt(label string) (string, error) {
	fmt.Fprint(p.out, titleStyle.Render(label)+" ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *player) run(ctx context.Context) error {
	for {
		err := p.home(ctx)
		if errors.Is(err, errQuit) {
			fmt.Fprintln(p.out, mutedStyle.Render("Até a próxima!"))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (p *player) home(ctx context.Context) error {
	prof, _ := p.c.Profile()
	fmt.Fprintf(p.out, "\n%s  %s\n", titleStyle.Render("MathQuest"), mutedStyle.Render(prof.Username))
	renderLevel(p.out, gamification.Summarize(prof.TotalXP))
	cats := p.c.Catalog().Categories()
	for i, cat := range cats {
		fmt.Fprintf(p.out, "  %d. %s %s\n", i+1, cat.Icon, cat.Name)
	}
	fmt.Fprintln(p.out, mutedStyle.Render("  [p]erfil  [r]anking  [c]omunidade  c[o]nquistas  [a]migos  [s]air"))

	choice, err := p.prompt(">")
	if err != nil {
		return err
	}
	switch strings.ToLower(choice) {
	case "s", "q":
		return errQuit
	case "p":
		return p.show(session.Profile{}, func() error {
			me, _ := p.c.Profile()
			renderProfile(p.out, me)
			return nil
		})
	case "r":
		return p.show(session.Ranking{}, func() error {
			board, err := p.c.WeeklyRanking(ctx)
			if err != nil {
				return err
			}
			renderRanking(p.out, board)
			return nil
		})
	case "c":
		return p.community()
	case "o":
		return p.show(session.Achievements{}, func() error {
			views, err := p.c.Achievements(gamification.FilterAll, "")
			if err != nil {
				return err
			}
			renderAchievements(p.out, views)
			return nil
		})
	case "a":
		return p.friends()
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(cats) {
		fmt.Fprintln(p.out, errStyle.Render("Opção inválida"))
		return nil
	}
	return p.category(ctx, cats[n-1].ID)
}

// show navigates to a screen, renders it and returns home.
func (p *player) show(to session.Screen, render func() error) error {
	if err := p.c.Navigate(to); err != nil {
		return err
	}
	if err := render(); err != nil {
		fmt.Fprintln(p.out, errStyle.Render(userError(err).Error()))
	}
	return p.c.Back()
}

func (p *player) category(ctx context.Context, categoryID string) error {
	if err := p.c.Navigate(session.Category{CategoryID: categoryID}); err != nil {
		return err
	}
	defer p.c.Back()

	questions := p.c.Catalog().QuestionsFor(categoryID, "")
	if len(questions) == 0 {
		fmt.Fprintln(p.out, mutedStyle.Render("Nenhuma questão disponível ainda."))
		return nil
	}
	for i, q := range questions {
		fmt.Fprintf(p.out, "  %d. %s  %s  %s\n", i+1, q.Name, mutedStyle.Render(q.Difficulty.Label()), xpStyle.Render(fmt.Sprintf("+%d XP", q.XP)))
	}
	choice, err := p.prompt("Questão (Enter para voltar):")
	if err != nil || choice == "" {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(questions) {
		fmt.Fprintln(p.out, errStyle.Render("Opção inválida"))
		return nil
	}
	return p.question(ctx, questions[n-1])
}

func (p *player) question(ctx context.Context, q models.Question) error {
	if err := p.c.Navigate(session.Question{Question: q}); err != nil {
		return err
	}
	renderQuestion(p.out, q)

	var in models.SubmissionInput
	for {
		answer, err := p.prompt(fmt.Sprintf("Sua resposta (A-%s):", optionLetter(len(q.Options)-1)))
		if err != nil {
			return err
		}
		idx := optionIndex(answer)
		if q.HasOption(idx) {
			in.SelectedOptionIndex = idx
			break
		}
		fmt.Fprintln(p.out, errStyle.Render("Escolha uma das alternativas"))
	}

	path, err := p.prompt("Imagem da resolução manuscrita (Enter para pular):")
	if err != nil {
		return err
	}
	if path != "" {
		m, err := loadManuscript(path)
		if err != nil {
			fmt.Fprintln(p.out, errStyle.Render(err.Error()))
		} else {
			in.HasJustification = true
			in.Justification = m
			fmt.Fprintln(p.out, mutedStyle.Render("Validando resolução..."))
		}
	}

	res, err := p.c.SubmitAnswer(ctx, in)
	if err != nil {
		fmt.Fprintln(p.out, errStyle.Render(userError(err).Error()))
		return p.c.Back()
	}
	renderResult(p.out, q, res)

	if _, err := p.prompt("Enter para continuar"); err != nil {
		return err
	}
	return p.c.Continue()
}

func (p *player) community() error {
	if err := p.c.Navigate(session.Community{}); err != nil {
		return err
	}
	defer p.c.Back()

	search, err := p.prompt("Buscar jogador (Enter para todos):")
	if err != nil {
		return err
	}
	users := p.c.Community(search, social.CommunityAll)
	for i, u := range users {
		fmt.Fprintf(p.out, "  %d. %-16s nível %-3d %5d XP\n", i+1, u.Username, gamification.Level(u.TotalXP), u.TotalXP)
	}
	choice, err := p.prompt("Ver perfil (número ou Enter):")
	if err != nil || choice == "" {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(users) {
		return nil
	}
	if err := p.c.OpenPublicProfile(users[n-1].Username); err != nil {
		return err
	}
	prof, _, err := p.c.PublicProfile(users[n-1].Username)
	if err != nil {
		return err
	}
	renderProfile(p.out, prof)
	return p.c.Back()
}

func (p *player) friends() error {
	if err := p.c.Navigate(session.Friends{}); err != nil {
		return err
	}
	defer p.c.Back()

	book, err := p.c.Friends()
	if err != nil {
		return err
	}
	renderFriends(p.out, book)
	fmt.Fprintln(p.out, mutedStyle.Render("  +nome envia pedido  ok:<id> aceita  no:<id> recusa  -nome remove"))

	cmd, err := p.prompt(">")
	if err != nil || cmd == "" {
		return err
	}
	switch {
	case strings.HasPrefix(cmd, "+"):
		_, err = book.SendRequest(cmd[1:])
	case strings.HasPrefix(cmd, "ok:"):
		_, err = book.Accept(cmd[3:])
	case strings.HasPrefix(cmd, "no:"):
		err = book.Reject(cmd[3:])
	case strings.HasPrefix(cmd, "-"):
		err = book.Remove(cmd[1:])
	default:
		for _, f := range book.Search(cmd) {
			fmt.Fprintf(p.out, "  %-16s nível %d\n", f.Username, f.Level)
		}
		return nil
	}
	if err != nil {
		fmt.Fprintln(p.out, errStyle.Render(err.Error()))
		return nil
	}
	fmt.Fprintln(p.out, okStyle.Render("Feito!"))
	return nil
}

func optionIndex(answer string) int {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	if len(answer) != 1 {
		return -1
	}
	return int(answer[0] - 'A')
}

func loadManuscript(path string) (models.Manuscript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Manuscript{}, fmt.Errorf("ler imagem: %w", err)
	}
	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return models.Manuscript{}, fmt.Errorf("arquivo não é uma imagem (%s)", mediaType)
	}
	return models.Manuscript{Data: data, MediaType: mediaType}, nil
}
