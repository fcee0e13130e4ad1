package postgres

import (
	"database/sql"
	"phishsniper/pkg/domain"
	"time"
)

// PgRegistration is the row representation of a domain registration record.
type PgRegistration struct {
	Domain    string         `db:"domain"`
	Registrar sql.NullString `db:"registrar"`
	CreatedAt sql.NullTime   `db:"created_at"`
	ExpiresAt sql.NullTime   `db:"expires_at"`
	FetchedAt time.Time      `db:"fetched_at"`
}

func (p *PgRegistration) ToDomain() *domain.Registration {
	reg := &domain.Registration{
		Domain:    p.Domain,
		Registrar: p.Registrar.String,
		FetchedAt: p.FetchedAt.UTC(),
	}
	if p.CreatedAt.Valid {
		t := p.CreatedAt.Time.UTC()
		reg.CreatedAt = &t
	}
	if p.ExpiresAt.Valid {
		t := p.ExpiresAt.Time.UTC()
		reg.ExpiresAt = &t
	}

	return reg
}

func (p *PgRegistration) FromDomain(reg domain.Registration) {
	*p = PgRegistration{
		Domain: reg.Domain,
		Registrar: sql.NullString{
			String: reg.Registrar,
			Valid:  reg.Registrar != "",
		},
		FetchedAt: reg.FetchedAt,
	}
	if reg.CreatedAt != nil {
		p.CreatedAt = sql.NullTime{Time: *reg.CreatedAt, Valid: true}
	}
	if reg.ExpiresAt != nil {
		p.ExpiresAt = sql.NullTime{Time: *reg.ExpiresAt, Valid: true}
	}
}
