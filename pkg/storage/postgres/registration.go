package postgres

import (
	"context"
	"fmt"
	"phishsniper/pkg/domain"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	registrationsTable = "domain_registrations"
)

// Registration returns the stored record for name, or nil when absent.
func (p *PgSQL) Registration(ctx context.Context, name string) (*domain.Registration, error) {
	var row PgRegistration
	found, err := p.Builder.From(registrationsTable).
		Where(goqu.I("domain").Eq(strings.ToLower(name))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch registration from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreRegistration upserts reg keyed by its domain.
func (p *PgSQL) StoreRegistration(ctx context.Context, reg domain.Registration) error {
	reg.Domain = strings.ToLower(reg.Domain)
	if reg.FetchedAt.IsZero() {
		reg.FetchedAt = time.Now().UTC()
	}

	var row PgRegistration
	row.FromDomain(reg)

	_, err := p.Builder.Insert(registrationsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain", goqu.Record{
			"registrar":  goqu.L("EXCLUDED.registrar"),
			"created_at": goqu.L("EXCLUDED.created_at"),
			"expires_at": goqu.L("EXCLUDED.expires_at"),
			"fetched_at": goqu.L("EXCLUDED.fetched_at"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store registration into pg: %w", err)
	}

	return nil
}

// DeleteRegistrationsBefore removes records fetched before t.
func (p *PgSQL) DeleteRegistrationsBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := p.Builder.Delete(registrationsTable).
		Where(goqu.I("fetched_at").Lt(t)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete registrations from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted registrations: %w", err)
	}

	return n, nil
}
