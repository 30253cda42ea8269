package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
)

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (full_name, email, phone, address, password_hash, role)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	created := *user
	err := r.storage.pool.QueryRow(ctx, query,
		user.FullName, user.Email, user.Phone, user.Address, user.PasswordHash, string(user.Role),
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

const userColumns = `id, full_name, email, phone, address, password_hash, role`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var role string
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.Role = model.Role(role)
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	return scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone=$1`, phone))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &role); err != nil {
			return nil, err
		}
		u.Role = model.Role(role)
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, userID int64, role model.Role) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE users SET role=$1 WHERE id=$2`, string(role), userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) (*model.Session, error) {
	const query = `INSERT INTO sessions (user_id, token, expires_at) VALUES ($1, $2, $3)
                   RETURNING id, created_at`
	s := model.Session{UserID: userID, Token: token, ExpiresAt: expiresAt}
	if err := r.storage.pool.QueryRow(ctx, query, userID, token, expiresAt).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Authenticate renews and resolves the session in one statement, so two
// concurrent calls with the same token cannot observe a half-renewed row.
func (r *sessionRepository) Authenticate(ctx context.Context, token string, window time.Duration) (*model.User, error) {
	const query = `WITH renewed AS (
                       UPDATE sessions SET expires_at = $2
                       WHERE token = $1 AND expires_at > NOW()
                       RETURNING user_id
                   )
                   SELECT u.id, u.full_name, u.email, u.phone, u.address, u.password_hash, u.role
                   FROM users u JOIN renewed r ON r.user_id = u.id`
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, token, time.Now().Add(window)))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM sessions WHERE token=$1`, token)
	return err
}

func (r *sessionRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM sessions WHERE user_id=$1`, userID)
	return err
}

func (r *sessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- PasswordResetRepository implementation ---

func (r *passwordResetRepository) Create(ctx context.Context, userID int64, code string, expiresAt time.Time) error {
	_, err := r.storage.pool.Exec(ctx,
		`INSERT INTO password_reset_requests (user_id, code, expires_at) VALUES ($1, $2, $3)`,
		userID, code, expiresAt)
	return err
}

func (r *passwordResetRepository) GetActive(ctx context.Context, userID int64, code string) (*model.PasswordResetRequest, error) {
	const query = `SELECT id, user_id, code, created_at, expires_at
                   FROM password_reset_requests
                   WHERE user_id=$1 AND code=$2 AND expires_at > NOW()
                   ORDER BY created_at DESC LIMIT 1`
	var req model.PasswordResetRequest
	err := r.storage.pool.QueryRow(ctx, query, userID, code).
		Scan(&req.ID, &req.UserID, &req.Code, &req.CreatedAt, &req.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *passwordResetRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM password_reset_requests WHERE id=$1`, id)
	return err
}

func (r *passwordResetRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM password_reset_requests WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
