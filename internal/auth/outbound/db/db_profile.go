package db

import (
	"context"

	"github.com/flexkitapp/flexgate/internal/auth/entity"
)

func (s *DB) UpsertClientProfile(ctx context.Context, in entity.ClientProfile) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertClientProfile")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO auth_client_profiles
			(client_id, first_name, last_name, email, phone, last_login_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (client_id) DO UPDATE SET
			first_name    = EXCLUDED.first_name,
			last_name     = EXCLUDED.last_name,
			email         = EXCLUDED.email,
			phone         = EXCLUDED.phone,
			last_login_at = EXCLUDED.last_login_at,
			expires_at    = EXCLUDED.expires_at,
			updated_at    = NOW()`,
		in.ClientID, in.FirstName, in.LastName, in.Email, in.Phone, in.LastLoginAt, in.ExpiresAt,
	)

	err = s.mapError(err)
	return err
}

func (s *DB) GetClientProfile(ctx context.Context, clientID string) (p *entity.ClientProfile, err error) {
	ctx, span := s.startSpan(ctx, "GetClientProfile")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT client_id, first_name, last_name, email, phone, last_login_at, expires_at, created_at, updated_at
		FROM auth_client_profiles
		WHERE client_id = $1`, clientID)

	var out entity.ClientProfile
	err = row.Scan(
		&out.ClientID,
		&out.FirstName,
		&out.LastName,
		&out.Email,
		&out.Phone,
		&out.LastLoginAt,
		&out.ExpiresAt,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}
