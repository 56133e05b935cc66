package repository

import (
	"context"

	"github.com/challenge-dashboard-api/internal/database"
	"github.com/challenge-dashboard-api/internal/models"
)

// contactRepo is the concrete implementation of ContactRepository
type contactRepo struct {
	db *database.DB
}

// NewContactRepo creates a new contact repository
func NewContactRepo(db *database.DB) ContactRepository {
	return &contactRepo{db: db}
}

// List retrieves all contacts newest-first. NULL first_name, email and
// phone columns scan as empty strings so the filter layer never sees a
// missing value.
func (r *contactRepo) List(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       status, current_day, consent_whatsapp, consent_email, created_at
		FROM contacts
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		err := rows.Scan(
			&c.ID, &c.FirstName, &c.Email, &c.Phone,
			&c.Status, &c.CurrentDay, &c.ConsentWhatsApp, &c.ConsentEmail,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// UpdateChallenge sets status and current_day for one contact.
// Returns ErrNotFound when no row has the given id.
func (r *contactRepo) UpdateChallenge(ctx context.Context, id int64, status models.ContactStatus, currentDay int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contacts SET status = $1, current_day = $2 WHERE id = $3",
		status, currentDay, id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one contact. Returns ErrNotFound when no row has the
// given id.
func (r *contactRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of contacts
func (r *contactRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&count)
	return count, err
}
