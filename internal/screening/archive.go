package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgx the archive needs; satisfied by *pgxpool.Pool and
// by pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Archive persists screening results to PostgreSQL for clinical follow-up.
// Persisting is best-effort from the caller's point of view: a failed insert
// must never block the screening reply.
type Archive struct {
	db DB
}

// NewArchive creates a screening archive. A nil db yields a nil archive,
// which disables persistence (all methods are nil-safe).
func NewArchive(db DB) *Archive {
	if db == nil {
		return nil
	}
	return &Archive{db: db}
}

const insertScreeningSQL = `
INSERT INTO screenings (id, session_id, score, risk, needs_professional_help, answers, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Save records one screening run.
func (a *Archive) Save(ctx context.Context, sessionID string, answers []int, result Result) error {
	if a == nil {
		return nil
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("screening: failed to marshal answers: %w", err)
	}

	_, err = a.db.Exec(ctx, insertScreeningSQL,
		uuid.New(),
		sessionID,
		result.Score,
		string(result.Risk),
		result.NeedsProfessionalHelp,
		answersJSON,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("screening: failed to archive result: %w", err)
	}
	return nil
}
