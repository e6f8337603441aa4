package devbackend

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"

	"github.com/mathquest/app/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connect opens and pings a PostgreSQL database.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return db, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, email, name, password, total_xp, weekly_xp, time_spent_minutes,
	manuscript_count, submissions_count, correct_answers, categories_stats, created_at`

func (s *PostgresStore) CreateUser(ctx context.Context, u User) (*User, error) {
	stats, err := json.Marshal(nonNilStats(u.CategoriesStats))
	if err != nil {
		return nil, fmt.Errorf("encode category stats: %w", err)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO users (email, name, password, total_xp, weekly_xp, time_spent_minutes,
			manuscript_count, submissions_count, correct_answers, categories_stats, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+userColumns,
		normalizeEmail(u.Email), u.Name, u.PasswordHash, u.TotalXP, u.WeeklyXP, u.TimeSpentMinutes,
		u.ManuscriptCount, u.SubmissionsCount, u.CorrectAnswers, stats, u.CreatedAt,
	)
	out, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UserByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, normalizeEmail(email))
	return lookup(row)
}

func (s *PostgresStore) UserByID(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return lookup(row)
}

func (s *PostgresStore) WeeklyTop(ctx context.Context, limit int) ([]User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY weekly_xp DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query weekly ranking: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) ResetWeekly(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE users SET weekly_xp = 0`); err != nil {
		return fmt.Errorf("reset weekly xp: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(sc scanner) (*User, error) {
	var (
		u     User
		stats []byte
	)
	err := sc.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.TotalXP, &u.WeeklyXP, &u.TimeSpentMinutes,
		&u.ManuscriptCount, &u.SubmissionsCount, &u.CorrectAnswers, &stats, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &u.CategoriesStats); err != nil {
			return nil, fmt.Errorf("decode category stats: %w", err)
		}
	}
	u.CategoriesStats = nonNilStats(u.CategoriesStats)
	return &u, nil
}

func lookup(row *sql.Row) (*User, error) {
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func nonNilStats(m map[string]models.CategoryStatsEntry) map[string]models.CategoryStatsEntry {
	if m == nil {
		return map[string]models.CategoryStatsEntry{}
	}
	return m
}

// isUniqueViolation reports a PostgreSQL unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
