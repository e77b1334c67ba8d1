package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

const eventColumns = `id, parent_email, child_name, age_turning, event_date, description, interests, admin_token, guest_token, created_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (parent_email, child_name, age_turning, event_date, description, interests, admin_token, guest_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.ParentEmail, e.ChildName, e.AgeTurning, e.EventDate, e.Description,
		pq.Array(e.Interests), e.AdminToken, e.GuestToken, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByGuestToken(ctx context.Context, token string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE guest_token = $1`, eventColumns)
	return r.scanEvent(r.DB.QueryRowContext(ctx, query, token))
}

func (r *eventRepository) GetByAdminToken(ctx context.Context, token string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE admin_token = $1`, eventColumns)
	return r.scanEvent(r.DB.QueryRowContext(ctx, query, token))
}

func (r *eventRepository) Update(ctx context.Context, id int, upd *domain.EventUpdate) (*domain.Event, error) {
	query := fmt.Sprintf(`
		UPDATE events
		SET parent_email = $1, child_name = $2, age_turning = $3, event_date = $4, description = $5, interests = $6
		WHERE id = $7
		RETURNING %s
	`, eventColumns)
	return r.scanEvent(r.DB.QueryRowContext(ctx, query,
		upd.ParentEmail, upd.ChildName, upd.AgeTurning, upd.EventDate, upd.Description,
		pq.Array(upd.Interests), id,
	))
}

// Delete removes the event and all its RSVPs atomically.
func (r *eventRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rsvps WHERE event_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *eventRepository) scanEvent(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.ParentEmail, &e.ChildName, &e.AgeTurning, &e.EventDate,
		&e.Description, pq.Array(&e.Interests), &e.AdminToken, &e.GuestToken, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if e.Interests == nil {
		e.Interests = []string{}
	}
	return e, nil
}
