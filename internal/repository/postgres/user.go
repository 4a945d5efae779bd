package postgres

import (
	"context"
	"errors"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func newUserRepo(db *pgxpool.Pool) User {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO users(id, name, handle, email_id, is_verified, profile_pic, google_id, onboarding_completed, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Name, user.Handle, user.EmailID, user.IsVerified, user.ProfilePic, user.GoogleID, user.OnboardingCompleted, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *userRepo) FindByEmail(ctx context.Context, emailID string) (*model.User, error) {
	return r.findOne(ctx, "email_id = $1", emailID)
}

func (r *userRepo) findOne(ctx context.Context, where string, arg any) (*model.User, error) {
	user := new(model.User)
	err := r.db.QueryRow(
		ctx,
		"SELECT id, name, handle, email_id, is_verified, profile_pic, google_id, onboarding_completed, created_at, updated_at FROM users WHERE "+where,
		arg,
	).Scan(&user.ID, &user.Name, &user.Handle, &user.EmailID, &user.IsVerified, &user.ProfilePic, &user.GoogleID, &user.OnboardingCompleted, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepo) UpdateGoogleInfo(ctx context.Context, id, name, profilePic, googleID string) error {
	_, err := r.db.Exec(
		ctx,
		"UPDATE users SET name = $1, profile_pic = $2, google_id = $3, is_verified = true, updated_at = now() WHERE id = $4",
		name, profilePic, googleID, id,
	)
	return err
}
