package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"creatorrate.app/cloud/models"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type SQLiteStorage struct {
	db   *sql.DB
	path string
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStorage{
		db:   db,
		path: path,
	}, nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func (s *SQLiteStorage) FindSubscriptionByEmail(ctx context.Context, email string) (*models.Subscription, error) {
	query := `SELECT email, is_paid, stripe_customer_id, stripe_subscription_id, created_at, updated_at FROM subscriptions WHERE email = ?`

	var sub models.Subscription
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&sub.Email,
		&sub.IsPaid,
		&sub.StripeCustomerID,
		&sub.StripeSubscriptionID,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (s *SQLiteStorage) SaveSubscription(ctx context.Context, sub *models.Subscription) error {
	query := `INSERT OR REPLACE INTO subscriptions (email, is_paid, stripe_customer_id, stripe_subscription_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		sub.Email,
		sub.IsPaid,
		sub.StripeCustomerID,
		sub.StripeSubscriptionID,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) GetDeal(ctx context.Context, id string) (*models.Deal, error) {
	query := `SELECT id, email, brand, platform, deliverable, amount_cents, currency, status, closed_at, created_at, updated_at FROM deals WHERE id = ?`

	deal, err := scanDeal(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return deal, nil
}

func (s *SQLiteStorage) FindDealsByEmail(ctx context.Context, email string) ([]*models.Deal, error) {
	query := `SELECT id, email, brand, platform, deliverable, amount_cents, currency, status, closed_at, created_at, updated_at FROM deals WHERE email = ? ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	var deals []*models.Deal

	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deals: %w", err)
	}

	return deals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(row rowScanner) (*models.Deal, error) {
	var deal models.Deal
	var closedAt sql.NullTime

	err := row.Scan(
		&deal.ID,
		&deal.Email,
		&deal.Brand,
		&deal.Platform,
		&deal.Deliverable,
		&deal.AmountCents,
		&deal.Currency,
		&deal.Status,
		&closedAt,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if closedAt.Valid {
		deal.ClosedAt = closedAt.Time
	}

	return &deal, nil
}

func (s *SQLiteStorage) SaveDeal(ctx context.Context, deal *models.Deal) error {
	query := `INSERT OR REPLACE INTO deals (id, email, brand, platform, deliverable, amount_cents, currency, status, closed_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	closedAt := sql.NullTime{Time: deal.ClosedAt, Valid: !deal.ClosedAt.IsZero()}

	_, err := s.db.ExecContext(ctx, query,
		deal.ID,
		deal.Email,
		deal.Brand,
		deal.Platform,
		deal.Deliverable,
		deal.AmountCents,
		deal.Currency,
		deal.Status,
		closedAt,
		deal.CreatedAt,
		deal.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save deal: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) DeleteDeal(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM deals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) FindLegalProfileByEmail(ctx context.Context, email string) (*models.LegalProfile, error) {
	query := `SELECT email, legal_name, country, business_type, tax_id, vat_registered, vat_id, created_at, updated_at FROM legal_profiles WHERE email = ?`

	var profile models.LegalProfile
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&profile.Email,
		&profile.LegalName,
		&profile.Country,
		&profile.BusinessType,
		&profile.TaxID,
		&profile.VATRegistered,
		&profile.VATID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s *SQLiteStorage) SaveLegalProfile(ctx context.Context, profile *models.LegalProfile) error {
	query := `INSERT OR REPLACE INTO legal_profiles (email, legal_name, country, business_type, tax_id, vat_registered, vat_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		profile.Email,
		profile.LegalName,
		profile.Country,
		profile.BusinessType,
		profile.TaxID,
		profile.VATRegistered,
		profile.VATID,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save legal profile: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
