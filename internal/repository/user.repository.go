package repository

import (
	"errors"
	"fmt"

	"papertrade/internal/db/models/sqlite/model"
	"papertrade/internal/db/models/sqlite/table"
	"papertrade/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

// UserRepository persists user rows. Methods take a qrm.DB so callers can
// run them against the pool or inside a transaction.
type UserRepository interface {
	Create(db qrm.DB, user model.User) error
	Get(db qrm.DB, username string) (*model.User, error)
	Update(db qrm.DB, user model.User) error
	UpdateBudget(db qrm.DB, username string, budget float64) error
}

type userRepositoryHandler struct{}

func NewUserRepository() UserRepository {
	return userRepositoryHandler{}
}

func (h userRepositoryHandler) Create(db qrm.DB, user model.User) error {
	t := table.Users

	query := t.INSERT(t.MutableColumns).MODEL(user)
	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Username, err)
	}

	return nil
}

func (h userRepositoryHandler) Get(db qrm.DB, username string) (*model.User, error) {
	t := table.Users

	query := t.SELECT(t.AllColumns).
		WHERE(t.Username.EQ(sqlite.String(username))).
		LIMIT(1)

	out := model.User{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", username, domain.ErrUserNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	return &out, nil
}

// Update overwrites every mutable field. Last writer wins; there is no
// optimistic concurrency check.
func (h userRepositoryHandler) Update(db qrm.DB, user model.User) error {
	t := table.Users

	query := t.UPDATE(t.First, t.Last, t.Budget).
		SET(
			sqlite.String(user.First),
			sqlite.String(user.Last),
			sqlite.Float(user.Budget),
		).
		WHERE(t.Username.EQ(sqlite.String(user.Username)))

	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.Username, err)
	}

	return nil
}

func (h userRepositoryHandler) UpdateBudget(db qrm.DB, username string, budget float64) error {
	t := table.Users

	query := t.UPDATE(t.Budget).
		SET(sqlite.Float(budget)).
		WHERE(t.Username.EQ(sqlite.String(username)))

	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to update budget for %s: %w", username, err)
	}

	return nil
}
