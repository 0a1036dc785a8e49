package db

import (
	"context"
	"time"

	"github.com/flexkitapp/flexgate/internal/auth/entity"
)

const challengeColumns = `id, request_id, code_hash, client_id, client_email, client_data, used, created_at, expires_at`

func (s *DB) scanChallenge(row interface{ Scan(dest ...any) error }) (*entity.OtpChallenge, error) {
	var c entity.OtpChallenge
	err := row.Scan(
		&c.ID,
		&c.RequestID,
		&c.CodeHash,
		&c.ClientID,
		&c.ClientEmail,
		&c.ClientData,
		&c.Used,
		&c.CreatedAt,
		&c.ExpiresAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &c, nil
}

func (s *DB) GetChallengeByRequestID(ctx context.Context, requestID string) (c *entity.OtpChallenge, err error) {
	ctx, span := s.startSpan(ctx, "GetChallengeByRequestID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT `+challengeColumns+`
		FROM auth_otp_challenges
		WHERE request_id = $1 AND used = FALSE
		ORDER BY created_at DESC
		LIMIT 1`, requestID)

	c, err = s.scanChallenge(row)
	return c, err
}

func (s *DB) GetLatestChallengeByEmail(ctx context.Context, email string) (c *entity.OtpChallenge, err error) {
	ctx, span := s.startSpan(ctx, "GetLatestChallengeByEmail")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT `+challengeColumns+`
		FROM auth_otp_challenges
		WHERE client_email = $1 AND used = FALSE
		ORDER BY created_at DESC
		LIMIT 1`, email)

	c, err = s.scanChallenge(row)
	return c, err
}

func (s *DB) CreateChallenge(ctx context.Context, in entity.OtpChallenge) (err error) {
	ctx, span := s.startSpan(ctx, "CreateChallenge")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO auth_otp_challenges
			(id, request_id, code_hash, client_id, client_email, client_data, used, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8)`,
		in.ID, in.RequestID, in.CodeHash, in.ClientID, in.ClientEmail, in.ClientData, in.CreatedAt, in.ExpiresAt,
	)

	err = s.mapError(err)
	return err
}

// MarkChallengeUsed consumes a challenge. The conditional update makes
// consumption atomic: exactly one concurrent caller observes true.
func (s *DB) MarkChallengeUsed(ctx context.Context, id int64) (ok bool, err error) {
	ctx, span := s.startSpan(ctx, "MarkChallengeUsed")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE auth_otp_challenges
		SET used = TRUE
		WHERE id = $1 AND used = FALSE`, id)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *DB) DeleteChallenge(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteChallenge")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `DELETE FROM auth_otp_challenges WHERE id = $1`, id)

	err = s.mapError(err)
	return err
}

func (s *DB) DeleteChallengesByEmail(ctx context.Context, email string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteChallengesByEmail")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `DELETE FROM auth_otp_challenges WHERE client_email = $1`, email)

	err = s.mapError(err)
	return err
}

func (s *DB) PurgeChallenges(ctx context.Context, now time.Time) (n int64, err error) {
	ctx, span := s.startSpan(ctx, "PurgeChallenges")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		DELETE FROM auth_otp_challenges
		WHERE used = TRUE OR expires_at < $1`, now)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}
