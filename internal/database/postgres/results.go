package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/repository"
)

// ResultsRepository implements repository.Results for PostgreSQL
type ResultsRepository struct {
	db *pgxpool.Pool
}

var _ repository.Results = (*ResultsRepository)(nil)

// NewResultsRepository creates a new ResultsRepository
func NewResultsRepository(db *pgxpool.Pool) *ResultsRepository {
	return &ResultsRepository{db: db}
}

const (
	upsertSessionSQL = `
		INSERT INTO experiment_sessions (code, mode, round, auction_state, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO UPDATE SET
			mode = EXCLUDED.mode,
			round = EXCLUDED.round,
			auction_state = EXCLUDED.auction_state,
			updated_at = EXCLUDED.updated_at`

	upsertParticipantSQL = `
		INSERT INTO participant_results
			(session_code, participant_id, username, role, budget, assigned_case_ids, payoff)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric)
		ON CONFLICT (session_code, participant_id) DO UPDATE SET
			username = EXCLUDED.username,
			role = EXCLUDED.role,
			budget = EXCLUDED.budget,
			assigned_case_ids = EXCLUDED.assigned_case_ids,
			payoff = EXCLUDED.payoff`

	deleteCasesSQL = `DELETE FROM case_results WHERE session_code = $1`

	insertCaseSQL = `
		INSERT INTO case_results
			(session_code, case_id, position, case_type, region, priority, points,
			 date_filed, description, status, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	selectSessionSQL = `
		SELECT code, mode, round, auction_state, updated_at
		FROM experiment_sessions WHERE code = $1`

	selectParticipantsSQL = `
		SELECT participant_id, username, role, budget, assigned_case_ids, payoff::text
		FROM participant_results WHERE session_code = $1
		ORDER BY participant_id`

	selectCasesSQL = `
		SELECT case_id, case_type, region, priority, points, date_filed, description, status, owner_id
		FROM case_results WHERE session_code = $1
		ORDER BY position`

	listSessionsSQL = `SELECT code FROM experiment_sessions ORDER BY code`
)

// SaveSession writes the whole record in one transaction. Participants are
// upserted; the case table for the session is rewritten since uploads may
// replace it wholesale.
func (r *ResultsRepository) SaveSession(ctx context.Context, record *domain.SessionRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	if _, err := tx.Exec(ctx, upsertSessionSQL,
		record.Code, string(record.Mode), record.Round, string(record.AuctionState), updatedAt,
	); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSession, err)
	}

	batch := &pgx.Batch{}
	for _, p := range record.Participants {
		batch.Queue(upsertParticipantSQL,
			record.Code, p.ID, p.Username, string(p.Role), p.Budget,
			toInt32s(p.AssignedCaseIDs), p.Payoff.String(),
		)
	}
	if err := sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveParticipants, err)
	}

	if _, err := tx.Exec(ctx, deleteCasesSQL, record.Code); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveCases, err)
	}
	batch = &pgx.Batch{}
	for i, c := range record.Cases {
		batch.Queue(insertCaseSQL,
			record.Code, c.ID, i, c.Type, c.Region, c.Priority, c.Points,
			c.DateFiled, c.Description, string(c.Status), c.OwnerID,
		)
	}
	if err := sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveCases, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetSession loads a stored record
func (r *ResultsRepository) GetSession(ctx context.Context, code string) (*domain.SessionRecord, error) {
	var (
		record       domain.SessionRecord
		mode, auctSt string
	)
	err := r.db.QueryRow(ctx, selectSessionSQL, code).
		Scan(&record.Code, &mode, &record.Round, &auctSt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	record.Mode = domain.Mode(mode)
	record.AuctionState = domain.AuctionState(auctSt)

	if record.Participants, err = r.participants(ctx, code); err != nil {
		return nil, err
	}
	if record.Cases, err = r.cases(ctx, code); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListSessions returns every stored session code
func (r *ResultsRepository) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, listSessionsSQL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	return codes, nil
}

func (r *ResultsRepository) participants(ctx context.Context, code string) ([]domain.Participant, error) {
	rows, err := r.db.Query(ctx, selectParticipantsSQL, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipants, err)
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var (
			p      domain.Participant
			role   string
			ids    []int32
			payoff string
		)
		if err := rows.Scan(&p.ID, &p.Username, &role, &p.Budget, &ids, &payoff); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipants, err)
		}
		p.Role = domain.Role(role)
		p.AssignedCaseIDs = fromInt32s(ids)
		if p.Payoff, err = decimal.NewFromString(payoff); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPayoff, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipants, err)
	}
	return out, nil
}

func (r *ResultsRepository) cases(ctx context.Context, code string) ([]domain.Case, error) {
	rows, err := r.db.Query(ctx, selectCasesSQL, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCases, err)
	}
	defer rows.Close()

	var out []domain.Case
	for rows.Next() {
		var (
			c      domain.Case
			status string
		)
		if err := rows.Scan(&c.ID, &c.Type, &c.Region, &c.Priority, &c.Points,
			&c.DateFiled, &c.Description, &status, &c.OwnerID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCases, err)
		}
		c.Status = domain.CaseStatus(status)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCases, err)
	}
	return out, nil
}
