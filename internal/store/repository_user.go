package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and returns it with the assigned id.
//
// A unique violation on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	insert := r.db.builder.
		Insert(user.TableName()).
		Columns("name", "email").
		Values(user.Name, user.Email)

	id, err := r.db.insertReturningID(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.classify(err)
	}

	user.ID = id
	return user, nil
}

// GetUser returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsers(r.db.builder).Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Int64("user_id", userID).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns all users ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsers(r.db.builder).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanUser)
}

// UpdateUser overwrites name and email of an existing user.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	update := r.db.builder.
		Update(user.TableName()).
		Set("name", user.Name).
		Set("email", user.Email).
		Where(sq.Eq{"id": user.ID})

	affected, err := r.db.execAffected(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("error updating user")
		return models.User{}, r.classify(err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// DeleteUser removes the user; items, bookings, requests and comments of the
// user go with it through ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	affected, err := r.db.execAffected(ctx, r.db.builder.Delete(models.User{}.TableName()).Where(sq.Eq{"id": userID}))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email string, exceptUserID int64) (bool, error) {
	query := r.db.builder.Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Where(sq.NotEq{"id": exceptUserID})

	taken, err := r.db.exists(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.EmailTaken").Msg("error checking email")
		return false, err
	}

	return taken, nil
}

func (r *userRepository) classify(err error) error {
	if r.db.errorClassificator.Classify(err) == UniqueViolation {
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	return err
}
