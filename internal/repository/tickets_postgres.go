package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campbellos/backend/internal/domain"
)

type postgresTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketRepository builds a ticket store over a pgx pool. Used
// when POSTGRES_DSN is configured; history is stored as JSONB.
func NewPostgresTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &postgresTicketRepository{pool: pool}
}

const ticketColumns = `id, title, description, priority, status, office_id, office_name,
               room, type, opened_by, assigned_to, time, history`

func (r *postgresTicketRepository) List(ctx context.Context, officeID string) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE ($1 = '' OR office_id = $1) ORDER BY seq DESC`, ticketColumns)
	rows, err := r.pool.Query(ctx, query, officeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Ticket{}
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *postgresTicketRepository) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE id = $1`, ticketColumns)
	row := r.pool.QueryRow(ctx, query, id)
	ticket, err := scanTicket(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return ticket, err
}

func (r *postgresTicketRepository) Insert(ctx context.Context, ticket *domain.Ticket) error {
	history, err := json.Marshal(ticket.History)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO tickets (seq, id, title, description, priority, status, office_id, office_name,
                             room, type, opened_by, assigned_to, time, history)
        SELECT s.n, 'T-' || s.n, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        FROM (SELECT nextval(pg_get_serial_sequence('tickets', 'seq')) AS n) s
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Priority,
		ticket.Status,
		ticket.OfficeID,
		ticket.OfficeName,
		ticket.Room,
		ticket.Type,
		ticket.OpenedBy,
		ticket.AssignedTo,
		ticket.Time,
		history,
	).Scan(&ticket.ID)
}

// Update runs the read-modify-write in one transaction with the row locked,
// so concurrent mutations of the same ticket serialize instead of clobbering
// each other's history appends.
func (r *postgresTicketRepository) Update(ctx context.Context, id string, mutate func(*domain.Ticket) error) (*domain.Ticket, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE id = $1 FOR UPDATE`, ticketColumns)
	ticket, err := scanTicket(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := mutate(ticket); err != nil {
		return nil, err
	}

	history, err := json.Marshal(ticket.History)
	if err != nil {
		return nil, err
	}
	const update = `
        UPDATE tickets SET title=$1, description=$2, priority=$3, status=$4, office_id=$5,
            office_name=$6, room=$7, type=$8, opened_by=$9, assigned_to=$10, history=$11
        WHERE id=$12`
	if _, err := tx.Exec(ctx, update,
		ticket.Title,
		ticket.Description,
		ticket.Priority,
		ticket.Status,
		ticket.OfficeID,
		ticket.OfficeName,
		ticket.Room,
		ticket.Type,
		ticket.OpenedBy,
		ticket.AssignedTo,
		history,
		ticket.ID,
	); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var history []byte
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Priority,
		&ticket.Status,
		&ticket.OfficeID,
		&ticket.OfficeName,
		&ticket.Room,
		&ticket.Type,
		&ticket.OpenedBy,
		&ticket.AssignedTo,
		&ticket.Time,
		&history,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &ticket.History); err != nil {
		return nil, err
	}
	return &ticket, nil
}
