package pgdb

import (
	"context"
	"database/sql"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo/repo_errors"
	"delivery-market-api/pkg/postgres"
	"errors"
	"time"

	"github.com/google/uuid"
)

const defaultAvatar = "user.svg"

type AccountRepo struct {
	*postgres.Postgres
}

func NewAccountRepo(pgdb *postgres.Postgres) *AccountRepo {
	return &AccountRepo{pgdb}
}

// CreateUser inserts the user together with its profile row, one never
// exists without the other.
func (r *AccountRepo) CreateUser(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	createUserSql, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var userId uuid.UUID
	err = tx.QueryRow(createUserSql, args...).Scan(&userId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	createProfileSql, args, _ := r.SqlBuilder.
		Insert("user_profiles").
		Columns("user_id", "avatar").
		Values(userId, defaultAvatar).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(createProfileSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return userId, nil
}

func (r *AccountRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select("id", "username", "email", "password_hash", "created_at").
		From("users").
		Where("username = ?", username).
		ToSql()

	var user entity.User
	var createdAt time.Time
	row := r.Database.QueryRow(getUserSql, args...)
	err := row.Scan(&user.Id, &user.Username, &user.Email, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	user.CreatedAt = createdAt.Format(time.RFC3339)

	return &user, nil
}

func (r *AccountRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("id").
		From("users").
		Where("username = ?", username).
		ToSql()

	var id uuid.UUID
	err := r.Database.QueryRow(sqlReq, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *AccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("id").
		From("users").
		Where("email = ?", email).
		ToSql()

	var id uuid.UUID
	err := r.Database.QueryRow(sqlReq, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *AccountRepo) GetProfileByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("id", "user_id", "avatar").
		From("user_profiles").
		Where("user_id = ?", userId).
		ToSql()

	var profile entity.UserProfile
	err := r.Database.QueryRow(sqlReq, args...).Scan(&profile.Id, &profile.UserId, &profile.Avatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &profile, nil
}

func (r *AccountRepo) UpdateAvatarByUserId(ctx context.Context, userId uuid.UUID, avatar string) error {
	sqlReq, args, _ := r.SqlBuilder.
		Update("user_profiles").
		Set("avatar", avatar).
		Where("user_id = ?", userId).
		ToSql()

	if _, err := r.Database.Exec(sqlReq, args...); err != nil {
		return err
	}

	return nil
}
