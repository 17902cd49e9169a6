package consultation

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema migrations to databaseURL.
func Migrate(databaseURL string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Open connects to PostgreSQL with lib/pq.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to DB: %w", err)
	}
	return db, nil
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

const selectColumns = `id, session_id, user_id, language, intent, safety_level, rule_id,
	conditions, advice, summary, disclaimer, facts, created_at`

func (r *postgresRepo) Save(ctx context.Context, rec *Record) error {
	conditionsJSON, err := json.Marshal(rec.Conditions)
	if err != nil {
		return err
	}
	adviceJSON, err := json.Marshal(rec.Advice)
	if err != nil {
		return err
	}
	factsJSON, err := json.Marshal(rec.Facts)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO consultations (` + selectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			conditions = $8,
			advice = $9,
			summary = $10,
			facts = $12
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.SessionID, rec.UserID, string(rec.Language), rec.Intent, rec.SafetyLevel.String(), rec.RuleID,
		conditionsJSON, adviceJSON, rec.Summary, rec.Disclaimer, factsJSON, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save consultation: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM consultations WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *postgresRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]*Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM consultations WHERE session_id = $1 ORDER BY created_at DESC LIMIT $2`,
		sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var rec Record
	var language, level string
	var conditionsJSON, adviceJSON, factsJSON []byte

	err := s.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.UserID,
		&language,
		&rec.Intent,
		&level,
		&rec.RuleID,
		&conditionsJSON,
		&adviceJSON,
		&rec.Summary,
		&rec.Disclaimer,
		&factsJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Language = models.Language(language)
	if err := rec.SafetyLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(conditionsJSON, &rec.Conditions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conditions: %w", err)
	}
	if err := json.Unmarshal(adviceJSON, &rec.Advice); err != nil {
		return nil, fmt.Errorf("failed to unmarshal advice: %w", err)
	}
	if err := json.Unmarshal(factsJSON, &rec.Facts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facts: %w", err)
	}
	return &rec, nil
}
