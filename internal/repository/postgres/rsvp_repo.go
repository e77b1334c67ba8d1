package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

// uniqueViolation is the postgres error code for unique constraint failures.
const uniqueViolation = "23505"

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{
		DB: db,
	}
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (event_id, parent_email, child_name, child_birth_month, receive_updates, attending, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		rsvp.EventID, rsvp.ParentEmail, rsvp.ChildName, rsvp.ChildBirthMonth,
		rsvp.ReceiveUpdates, rsvp.Attending, rsvp.CreatedAt,
	).Scan(&rsvp.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateRSVP
		}
		return err
	}
	return nil
}

func (r *rsvpRepository) CountByEventID(ctx context.Context, eventID int) (int, error) {
	query := `SELECT COUNT(*) FROM rsvps WHERE event_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rsvpRepository) ListByEventID(ctx context.Context, eventID int) ([]*domain.RSVP, error) {
	query := `
		SELECT id, event_id, parent_email, child_name, child_birth_month, receive_updates, attending, created_at
		FROM rsvps
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{}
		if err := rows.Scan(
			&rsvp.ID, &rsvp.EventID, &rsvp.ParentEmail, &rsvp.ChildName,
			&rsvp.ChildBirthMonth, &rsvp.ReceiveUpdates, &rsvp.Attending, &rsvp.CreatedAt,
		); err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}
