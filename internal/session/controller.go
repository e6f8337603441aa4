package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/mathquest/app/internal/backend"
	"github.com/mathquest/app/internal/catalog"
	"github.com/mathquest/app/internal/gamification"
	"github.com/mathquest/app/internal/manuscript"
	"github.com/mathquest/app/internal/models"
	"github.com/mathquest/app/internal/social"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrActionInFlight    = errors.New("action already in progress")
	ErrStaleResult       = errors.New("result discarded after navigation")
	ErrAlreadyAnswered   = errors.New("question already answered")
	ErrNotAnswered       = errors.New("question not answered yet")
	ErrNotOnQuestion     = errors.New("not on a question screen")
	ErrInvalidTransition = errors.New("invalid screen transition")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownQuestion   = errors.New("unknown question")
	ErrUserNotFound      = errors.New("user not found")
)

// Action names a user action that may have at most one request outstanding.
type Action string

const (
	ActionLogin    Action = "login"
	ActionRegister Action = "register"
	ActionSubmit   Action = "submit"
)

// Backend is the part of the external service the controller consumes.
type Backend interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Logout() error
	HasCredential() bool
	StoredUser() (*models.UserData, bool)
	CurrentUser(ctx context.Context) (*models.UserData, error)
	CurrentUserStats(ctx context.Context) (*models.UserStats, error)
	WeeklyRanking(ctx context.Context, limit int) ([]models.RankingEntry, error)
}

type Options struct {
	ValidationTimeout time.Duration
	// FetchTimeout bounds a shared profile or ranking fetch, which outlives
	// any single caller's context.
	FetchTimeout time.Duration
	RankingLimit int
	Now          func() time.Time
}

func (o *Options) defaults() {
	if o.ValidationTimeout <= 0 {
		o.ValidationTimeout = 10 * time.Second
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	if o.RankingLimit <= 0 {
		o.RankingLimit = 10
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// AnswerResult is a scored answer after it was applied to the profile.
type AnswerResult struct {
	models.SubmissionResult
	Unlocked  []models.Achievement
	Level     gamification.LevelSummary
	LeveledUp bool
}

// Controller owns the current screen and the signed-in profile. All methods
// are safe for concurrent use; results of work that outlives a navigation
// are discarded.
type Controller struct {
	catalog   *catalog.Catalog
	backend   Backend
	validator manuscript.Validator
	logger    *zap.Logger
	opts      Options
	sf        singleflight.Group

	mu            sync.Mutex
	screen        Screen
	profile       *models.UserProfile
	friends       *social.FriendsBook
	inflight      map[Action]bool
	epoch         uint64
	generation    uint64
	nextID        uint64
	pending       map[uint64]context.CancelFunc
	questionStart time.Time
	answered      bool
	lastResult    *AnswerResult
}

func New(cat *catalog.Catalog, be Backend, v manuscript.Validator, logger *zap.Logger, opts Options) *Controller {
	opts.defaults()
	return &Controller{
		catalog:   cat,
		backend:   be,
		validator: v,
		logger:    logger.Named("session"),
		opts:      opts,
		screen:    Unauthenticated{},
		inflight:  make(map[Action]bool),
		pending:   make(map[uint64]context.CancelFunc),
	}
}

// ── Bookkeeping ─────────────────────────────────────────

// begin marks an action in flight. Caller holds c.mu.
func (c *Controller) begin(a Action) error {
	if c.inflight[a] {
		return ErrActionInFlight
	}
	c.inflight[a] = true
	return nil
}

func (c *Controller) end(a Action) {
	c.mu.Lock()
	delete(c.inflight, a)
	c.mu.Unlock()
}

// track derives a context that navigation cancels. Caller holds c.mu.
func (c *Controller) track(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	c.nextID++
	id := c.nextID
	c.pending[id] = cancel
	return ctx, func() {
		cancel()
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}
}

// advance moves to a new screen epoch and cancels work tied to the old one.
// Caller holds c.mu.
func (c *Controller) advance() {
	c.epoch++
	for id, cancel := range c.pending {
		cancel()
		delete(c.pending, id)
	}
}

// ── Queries ─────────────────────────────────────────────

func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile != nil
}

// Profile returns a copy of the signed-in profile.
func (c *Controller) Profile() (models.UserProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return models.UserProfile{}, false
	}
	return c.profile.Clone(), true
}

func (c *Controller) LevelSummary() (gamification.LevelSummary, bool) {
	p, ok := c.Profile()
	if !ok {
		return gamification.LevelSummary{}, false
	}
	return gamification.Summarize(p.TotalXP), true
}

// LastResult is the answer shown on the current question screen, if any.
func (c *Controller) LastResult() (AnswerResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastResult == nil {
		return AnswerResult{}, false
	}
	return *c.lastResult, true
}

func (c *Controller) InFlight(a Action) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight[a]
}

func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// ── Authentication ──────────────────────────────────────

func (c *Controller) Login(ctx context.Context, form models.LoginForm) error {
	if err := ValidateLogin(form); err != nil {
		return err
	}
	return c.authenticate(ctx, ActionLogin, models.Credentials{Email: form.Email, Password: form.Password}, c.backend.Login)
}

// Register creates an account. Only email and password go on the wire; the
// username is for local validation.
func (c *Controller) Register(ctx context.Context, form models.RegisterForm) error {
	if err := ValidateRegister(form); err != nil {
		return err
	}
	return c.authenticate(ctx, ActionRegister, models.Credentials{Email: form.Email, Password: form.Password}, c.backend.Register)
}

type authFunc func(context.Context, models.Credentials) (*models.AuthResponse, error)

func (c *Controller) authenticate(ctx context.Context, a Action, creds models.Credentials, call authFunc) error {
	c.mu.Lock()
	if err := c.begin(a); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	defer c.end(a)

	auth, err := call(ctx, creds)
	if err != nil {
		c.logger.Warn("authentication failed", zap.String("action", string(a)), zap.Error(err))
		return fmt.Errorf("%s: %w", a, err)
	}
	c.startSession(ctx, auth.User.Name)
	return nil
}

// Restore resumes a session from a stored, unexpired credential. It reports
// whether a session was resumed.
func (c *Controller) Restore(ctx context.Context) (bool, error) {
	if !c.backend.HasCredential() {
		return false, nil
	}
	name := ""
	if u, ok := c.backend.StoredUser(); ok {
		name = u.Name
	}
	c.startSession(ctx, name)

	c.mu.Lock()
	resumed := c.profile != nil
	c.mu.Unlock()
	return resumed, nil
}

func (c *Controller) startSession(ctx context.Context, username string) {
	if username == "" {
		username = "Jogador"
	}
	now := c.opts.Now

	c.mu.Lock()
	c.advance()
	c.generation++
	p := catalog.DefaultProfile(username)
	c.profile = &p
	friends := c.catalog.Friends()
	c.friends = social.NewFriendsBook(username, friends,
		c.catalog.IncomingRequests(username), c.catalog.OutgoingRequests(username),
		social.NewDirectory(friends, now), now)
	c.screen = Home{}
	c.mu.Unlock()

	c.logger.Info("session started", zap.String("username", username))

	if err := c.RefreshProfile(ctx); err != nil {
		c.logger.Warn("profile refresh failed", zap.Error(err))
		if errors.Is(err, backend.ErrUnauthorized) {
			c.Logout()
		}
	}
}

// Logout clears the credential and returns to the login screen.
func (c *Controller) Logout() {
	if err := c.backend.Logout(); err != nil {
		c.logger.Error("clear credentials", zap.Error(err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.advance()
	c.generation++
	c.profile = nil
	c.friends = nil
	c.answered = false
	c.lastResult = nil
	c.screen = Unauthenticated{}
}

// ── Navigation ──────────────────────────────────────────

// Navigate moves to a screen. Pending validation or fetches tied to the
// previous screen are canceled and their results discarded.
func (c *Controller) Navigate(to Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.profile == nil {
		return ErrNotAuthenticated
	}

	switch s := to.(type) {
	case nil, Unauthenticated:
		return ErrInvalidTransition
	case Category:
		if _, ok := c.catalog.Category(s.CategoryID); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCategory, s.CategoryID)
		}
	case Question:
		if !s.Question.HasOption(s.Question.CorrectAnswer) || len(s.Question.Options) < 2 {
			return fmt.Errorf("%w: %s", ErrUnknownQuestion, s.Question.ID)
		}
	case PublicProfile:
		if s.Username == "" {
			return ErrUserNotFound
		}
		if s.From == nil {
			s.From = Community{}
		}
		to = s
	}

	c.advance()
	c.screen = to
	if _, ok := to.(Question); ok {
		c.questionStart = c.opts.Now()
		c.answered = false
		c.lastResult = nil
	}
	c.logger.Debug("navigate", zap.Stringer("screen", to.Kind()))
	return nil
}

// OpenQuestion navigates to a catalog question by id.
func (c *Controller) OpenQuestion(id string) error {
	q, ok := c.catalog.Question(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return c.Navigate(Question{Question: q})
}

// OpenPublicProfile shows a player, returning to the current screen on Back.
func (c *Controller) OpenPublicProfile(username string) error {
	return c.Navigate(PublicProfile{Username: username, From: c.Screen()})
}

// Back returns from a public profile to where it was opened, and from every
// other screen to home.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.profile == nil {
		return ErrNotAuthenticated
	}
	var to Screen = Home{}
	if pp, ok := c.screen.(PublicProfile); ok && pp.From != nil {
		to = pp.From
	}
	c.advance()
	c.screen = to
	return nil
}

// Continue leaves an answered question.
func (c *Controller) Continue() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.screen.(Question); !ok {
		return ErrNotOnQuestion
	}
	if !c.answered {
		return ErrNotAnswered
	}
	c.advance()
	c.screen = Home{}
	return nil
}

// ── Answer submission ───────────────────────────────────

// SubmitAnswer scores the selected option, running the manuscript validator
// first when a justification is attached. The result is applied to the
// profile only after validation finished, and only if the player is still on
// the same question.
func (c *Controller) SubmitAnswer(ctx context.Context, in models.SubmissionInput) (AnswerResult, error) {
	c.mu.Lock()
	qs, ok := c.screen.(Question)
	switch {
	case c.profile == nil:
		c.mu.Unlock()
		return AnswerResult{}, ErrNotAuthenticated
	case !ok:
		c.mu.Unlock()
		return AnswerResult{}, ErrNotOnQuestion
	case c.answered:
		c.mu.Unlock()
		return AnswerResult{}, ErrAlreadyAnswered
	}
	if err := c.begin(ActionSubmit); err != nil {
		c.mu.Unlock()
		return AnswerResult{}, err
	}
	epoch := c.epoch
	vctx, untrack := c.track(ctx)
	c.mu.Unlock()
	defer c.end(ActionSubmit)
	defer untrack()

	q := qs.Question
	if !q.HasOption(in.SelectedOptionIndex) {
		return AnswerResult{}, &gamification.InvalidIndexError{QuestionID: q.ID, Index: in.SelectedOptionIndex, Options: len(q.Options)}
	}

	var outcome *models.ValidationOutcome
	if in.HasJustification {
		out, err := manuscript.Run(vctx, c.validator, in.Justification, q, c.opts.ValidationTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return AnswerResult{}, ctx.Err()
			}
			if vctx.Err() != nil {
				return AnswerResult{}, ErrStaleResult
			}
			c.logger.Warn("manuscript validation failed, scoring as unvalidated",
				zap.String("question_id", q.ID), zap.Error(err))
		}
		outcome = &out
	}

	res, err := gamification.ScoreSubmission(q, in, outcome)
	if err != nil {
		return AnswerResult{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch || c.profile == nil {
		return AnswerResult{}, ErrStaleResult
	}

	categoryName := q.CategoryID
	if cat, ok := c.catalog.Category(q.CategoryID); ok {
		categoryName = cat.Name
	}
	now := c.opts.Now()
	before := gamification.Level(c.profile.TotalXP)
	unlocked := gamification.ApplySubmission(c.profile, gamification.Submission{
		Question:     q,
		CategoryName: categoryName,
		Result:       res,
		Elapsed:      now.Sub(c.questionStart),
		At:           now,
	}, c.catalog.Achievements())

	summary := gamification.Summarize(c.profile.TotalXP)
	ar := AnswerResult{
		SubmissionResult: res,
		Unlocked:         unlocked,
		Level:            summary,
		LeveledUp:        summary.Level > before,
	}
	c.answered = true
	c.lastResult = &ar

	c.logger.Info("answer applied",
		zap.String("question_id", q.ID),
		zap.String("branch", string(res.Branch)),
		zap.Int("xp", res.XPAwarded),
		zap.Int("total_xp", c.profile.TotalXP),
		zap.Int("unlocked", len(unlocked)),
	)
	return ar, nil
}

// ── Remote data ─────────────────────────────────────────

// shared joins concurrent fetches under key. The fetch runs detached from
// the callers and bounded by FetchTimeout; each caller waits on its own ctx,
// so one caller giving up neither cancels nor fails the others.
func (c *Controller) shared(ctx context.Context, key string, fetch func(context.Context) (interface{}, error)) (interface{}, error) {
	ch := c.sf.DoChan(key, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.FetchTimeout)
		defer cancel()
		return fetch(fctx)
	})
	select {
	case r := <-ch:
		return r.Val, r.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type remoteProfile struct {
	user     *models.UserData
	stats    *models.UserStats
	statsErr error
}

// RefreshProfile pulls the user record and stats concurrently. A failed user
// fetch leaves the profile untouched; a failed stats fetch only resets the
// favorite category to its placeholder.
func (c *Controller) RefreshProfile(ctx context.Context) error {
	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	gen := c.generation
	c.mu.Unlock()

	v, err := c.shared(ctx, "profile", func(ctx context.Context) (interface{}, error) {
		var r remoteProfile
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			u, err := c.backend.CurrentUser(gctx)
			if err != nil {
				return fmt.Errorf("fetch user: %w", err)
			}
			r.user = u
			return nil
		})
		g.Go(func() error {
			r.stats, r.statsErr = c.backend.CurrentUserStats(gctx)
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return r, nil
	})
	if err != nil {
		return err
	}
	r := v.(remoteProfile)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil || c.generation != gen {
		return ErrStaleResult
	}
	gamification.MergeUser(c.profile, *r.user)
	if r.statsErr != nil || r.stats == nil {
		c.logger.Warn("stats unavailable, favorite category reset", zap.Error(r.statsErr))
		c.profile.FavoriteCategory = gamification.NoFavoriteCategory
		return nil
	}
	gamification.MergeStats(c.profile, *r.stats, c.catalog)
	return nil
}

// WeeklyRanking builds the ranking board. When the ranking service fails or
// returns nothing the offline board is used and marked as such.
func (c *Controller) WeeklyRanking(ctx context.Context) (social.WeeklyBoard, error) {
	p, ok := c.Profile()
	if !ok {
		return social.WeeklyBoard{}, ErrNotAuthenticated
	}

	v, err := c.shared(ctx, "ranking", func(ctx context.Context) (interface{}, error) {
		return c.backend.WeeklyRanking(ctx, c.opts.RankingLimit)
	})
	var entries []models.RankingEntry
	if err == nil {
		entries = v.([]models.RankingEntry)
	}

	offline := err != nil || len(entries) == 0
	if offline {
		if err != nil {
			c.logger.Warn("ranking unavailable, using offline board", zap.Error(err))
		}
		entries = c.catalog.OfflineRanking()
	}
	board := social.BuildWeeklyRanking(entries, p, c.opts.Now())
	board.Offline = offline
	return board, nil
}

// ── Community & achievements ────────────────────────────

func (c *Controller) Community(search, filter string) []models.UserProfile {
	return social.FilterCommunity(c.catalog.CommunityUsers(), search, filter)
}

// PublicProfile looks up a player. The signed-in player's own name returns
// their live profile and own=true.
func (c *Controller) PublicProfile(username string) (p models.UserProfile, own bool, err error) {
	if me, ok := c.Profile(); ok && models.SameUsername(me.Username, username) {
		return me, true, nil
	}
	if u, ok := c.catalog.User(username); ok {
		return u, false, nil
	}
	for _, u := range c.catalog.CommunityUsers() {
		if models.SameUsername(u.Username, username) {
			return u, false, nil
		}
	}
	return models.UserProfile{}, false, fmt.Errorf("%w: %s", ErrUserNotFound, username)
}

func (c *Controller) Achievements(filter, category string) ([]gamification.AchievementView, error) {
	p, ok := c.Profile()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return gamification.FilterAchievements(c.catalog.Achievements(), &p, filter, category), nil
}

// ── Friends ─────────────────────────────────────────────

// Friends returns the signed-in player's friends book.
func (c *Controller) Friends() (*social.FriendsBook, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.friends == nil {
		return nil, ErrNotAuthenticated
	}
	return c.friends, nil
}
