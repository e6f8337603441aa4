// Package devbackend is a local stand-in for the MathQuest service. It serves
// the same HTTP contract the client consumes and is meant for development
// and integration tests.
package devbackend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathquest/app/internal/gamification"
	"github.com/mathquest/app/internal/models"
)

const (
	defaultRankingLimit = 10
	maxRankingLimit     = 100
	minPasswordLength   = 6
)

type Options struct {
	Store       Store
	Leaderboard Leaderboard // optional; the store ranks when nil
	Secret      []byte
	Logger      *zap.Logger
	Now         func() time.Time
	BcryptCost  int
}

type Server struct {
	store  Store
	board  Leaderboard
	tokens tokenIssuer
	logger *zap.Logger
	now    func() time.Time
	cost   int
}

func NewServer(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Server{
		store:  opts.Store,
		board:  opts.Leaderboard,
		tokens: tokenIssuer{secret: opts.Secret, now: opts.Now},
		logger: opts.Logger.Named("devbackend"),
		now:    opts.Now,
		cost:   opts.BcryptCost,
	}
}

// Handler returns the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/auth/register", s.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.Login).Methods(http.MethodPost)

	protected := r.PathPrefix("").Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("/users/me", s.CurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/stats", s.CurrentUserStats).Methods(http.MethodGet)
	protected.HandleFunc("/rankings/weekly", s.WeeklyRanking).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

// ── Auth ────────────────────────────────────────────────

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	req.Email = normalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Senha deve ter no mínimo 6 caracteres")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		s.internalError(w, "hash password", err)
		return
	}

	u, err := s.store.CreateUser(r.Context(), User{
		Email:        req.Email,
		Name:         displayName(req.Email),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if errors.Is(err, ErrEmailTaken) {
		writeError(w, http.StatusConflict, "Já existe uma conta com este email")
		return
	}
	if err != nil {
		s.internalError(w, "create user", err)
		return
	}

	if s.board != nil {
		if err := s.board.Record(r.Context(), u.Name, 0); err != nil {
			s.logger.Warn("leaderboard record failed", zap.Error(err))
		}
	}
	s.logger.Info("user registered", zap.Int64("user_id", u.ID))
	s.respondAuth(w, http.StatusCreated, u)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios")
		return
	}

	u, err := s.store.UserByEmail(r.Context(), req.Email)
	if errors.Is(err, ErrUserNotFound) {
		writeError(w, http.StatusUnauthorized, "Email ou senha inválidos")
		return
	}
	if err != nil {
		s.internalError(w, "lookup user", err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Email ou senha inválidos")
		return
	}
	s.respondAuth(w, http.StatusOK, u)
}

func (s *Server) respondAuth(w http.ResponseWriter, status int, u *User) {
	access, refresh, err := s.tokens.pair(u.ID)
	if err != nil {
		s.internalError(w, "issue tokens", err)
		return
	}
	writeJSON(w, status, models.AuthResponse{AccessToken: access, RefreshToken: refresh, User: userData(u)})
}

// ── Profile ─────────────────────────────────────────────

func (s *Server) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, userData(u))
}

func (s *Server) CurrentUserStats(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	accuracy := 0.0
	if u.SubmissionsCount > 0 {
		accuracy = float64(u.CorrectAnswers) / float64(u.SubmissionsCount) * 100
	}
	writeJSON(w, http.StatusOK, models.UserStats{
		UserID:           u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Level:            gamification.Level(u.TotalXP),
		XP:               gamification.XPIntoLevel(u.TotalXP),
		TotalXP:          u.TotalXP,
		TimeSpentMinutes: u.TimeSpentMinutes,
		ManuscriptCount:  u.ManuscriptCount,
		SubmissionsCount: u.SubmissionsCount,
		CorrectAnswers:   u.CorrectAnswers,
		Accuracy:         accuracy,
		CategoriesStats:  u.CategoriesStats,
	})
}

func (s *Server) requestUser(w http.ResponseWriter, r *http.Request) (*User, bool) {
	id, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Não autenticado")
		return nil, false
	}
	u, err := s.store.UserByID(r.Context(), id)
	if errors.Is(err, ErrUserNotFound) {
		writeError(w, http.StatusUnauthorized, "Usuário não encontrado")
		return nil, false
	}
	if err != nil {
		s.internalError(w, "load user", err)
		return nil, false
	}
	return u, true
}

// ── Ranking ─────────────────────────────────────────────

type rankingRow struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	WeeklyXP int    `json:"weekly_xp"`
	Level    int    `json:"level"`
}

type rankingResponse struct {
	Period  string       `json:"period"`
	Entries []rankingRow `json:"entries"`
}

func (s *Server) WeeklyRanking(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r, "limit", defaultRankingLimit)
	if limit < 1 {
		limit = defaultRankingLimit
	}
	if limit > maxRankingLimit {
		limit = maxRankingLimit
	}

	users, err := s.store.WeeklyTop(r.Context(), limit)
	if err != nil {
		s.internalError(w, "weekly ranking", err)
		return
	}
	levels := make(map[string]int, len(users))
	rows := make([]rankingRow, 0, len(users))
	for _, u := range users {
		levels[u.Name] = gamification.Level(u.TotalXP)
		rows = append(rows, rankingRow{Username: u.Name, WeeklyXP: u.WeeklyXP, Level: levels[u.Name]})
	}

	if s.board != nil {
		top, err := s.board.Top(r.Context(), limit)
		if err != nil {
			s.logger.Warn("leaderboard unavailable, ranking from store", zap.Error(err))
		} else {
			rows = rows[:0]
			for _, st := range top {
				rows = append(rows, rankingRow{Username: st.Name, WeeklyXP: st.WeeklyXP, Level: levels[st.Name]})
			}
		}
	}
	for i := range rows {
		rows[i].Rank = i + 1
		if rows[i].Level == 0 {
			rows[i].Level = 1
		}
	}

	writeJSON(w, http.StatusOK, rankingResponse{Period: weekPeriod(s.now()), Entries: rows})
}

// weekPeriod spans the ranking week, Monday through the Sunday reset.
func weekPeriod(now time.Time) string {
	utc := now.UTC()
	start := utc.AddDate(0, 0, -int(utc.Weekday()-time.Monday+7)%7)
	end := start.AddDate(0, 0, 6)
	return start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
}

// ── Helpers ─────────────────────────────────────────────

func userData(u *User) models.UserData {
	return models.UserData{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Level:            gamification.Level(u.TotalXP),
		XP:               gamification.XPIntoLevel(u.TotalXP),
		TotalXP:          u.TotalXP,
		TimeSpentMinutes: u.TimeSpentMinutes,
		ManuscriptCount:  u.ManuscriptCount,
		IsActive:         true,
		CreatedAt:        u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// displayName derives a player name from the email's local part.
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "Jogador"
	}
	return local
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Erro interno do servidor")
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

func intQueryParam(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}
