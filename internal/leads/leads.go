// Package leads captures card application enquiries submitted by visitors
// and lets operators export them.
package leads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/credibundl/cardstack/internal/store"
)

// ErrNotFound is returned when a lead does not exist.
var ErrNotFound = errors.New("lead not found")

// Lead is a single application enquiry.
type Lead struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	City              string    `json:"city,omitempty"`
	MonthlyIncome     float64   `json:"monthly_income,omitempty"`
	PreferredCardType string    `json:"preferred_card_type,omitempty"`
	Source            string    `json:"source,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Validate checks the submitter-supplied fields.
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("name is required")
	}
	email := strings.TrimSpace(l.Email)
	if email == "" {
		return errors.New("email is required")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("invalid email %q", email)
	}
	if l.MonthlyIncome < 0 {
		return errors.New("monthly_income must not be negative")
	}
	return nil
}

// Repository provides access to captured leads.
type Repository interface {
	// Create stores a new lead, assigning its ID and timestamp.
	Create(ctx context.Context, lead *Lead) error

	// List returns leads newest-first, up to limit (0 means no limit).
	List(ctx context.Context, limit int) ([]Lead, error)

	// Get returns a single lead by ID.
	Get(ctx context.Context, id string) (*Lead, error)
}

// Compile-time interface guard.
var _ Repository = (*SQLiteRepository)(nil)

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a Repository and runs the leads migrations.
func NewSQLiteRepository(ctx context.Context, st *store.SQLiteStore) (*SQLiteRepository, error) {
	if err := st.Migrate(ctx, "leads", leadsMigrations); err != nil {
		return nil, fmt.Errorf("leads migrations: %w", err)
	}
	return &SQLiteRepository{db: st.DB()}, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, lead *Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	lead.ID = uuid.NewString()
	lead.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (id, name, email, phone, city, monthly_income, preferred_card_type, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.ID, strings.TrimSpace(lead.Name), strings.TrimSpace(lead.Email),
		lead.Phone, lead.City, lead.MonthlyIncome, lead.PreferredCardType,
		lead.Source, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]Lead, error) {
	query := `
		SELECT id, name, email, phone, city, monthly_income, preferred_card_type, source, created_at
		FROM leads ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.City,
			&l.MonthlyIncome, &l.PreferredCardType, &l.Source, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, city, monthly_income, preferred_card_type, source, created_at
		FROM leads WHERE id = ?`, id,
	).Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.City,
		&l.MonthlyIncome, &l.PreferredCardType, &l.Source, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get lead %q: %w", id, err)
	}
	return &l, nil
}

// leadsMigrations defines the database schema for leads.
var leadsMigrations = []store.Migration{
	{
		Version:     1,
		Description: "create leads table",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE leads (
					id                  TEXT PRIMARY KEY,
					name                TEXT NOT NULL,
					email               TEXT NOT NULL,
					phone               TEXT NOT NULL DEFAULT '',
					city                TEXT NOT NULL DEFAULT '',
					monthly_income      REAL NOT NULL DEFAULT 0,
					preferred_card_type TEXT NOT NULL DEFAULT '',
					source              TEXT NOT NULL DEFAULT '',
					created_at          DATETIME NOT NULL
				)`)
			return err
		},
	},
	{
		Version:     2,
		Description: "index leads by created_at",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE INDEX idx_leads_created_at ON leads (created_at)`)
			return err
		},
	},
}
