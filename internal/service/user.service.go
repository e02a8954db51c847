package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"papertrade/internal/db/models/sqlite/model"
	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/repository"
)

type CreateUserInput struct {
	Username string
	First    string
	Last     string
	Budget   float64
}

// UpdateUserInput is an explicit patch: nil fields keep their stored value.
type UpdateUserInput struct {
	First  *string
	Last   *string
	Budget *float64
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*model.User, error)
	Update(ctx context.Context, username string, patch UpdateUserInput) (*model.User, error)
}

type userServiceHandler struct {
	Db             *sql.DB
	UserRepository repository.UserRepository
}

func NewUserService(db *sql.DB, userRepository repository.UserRepository) UserService {
	return userServiceHandler{
		Db:             db,
		UserRepository: userRepository,
	}
}

func (h userServiceHandler) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	log := logger.FromContext(ctx)

	existing, err := h.UserRepository.Get(h.Db, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", input.Username, domain.ErrDuplicateUser)
	}

	user := model.User{
		Username: input.Username,
		First:    input.First,
		Last:     input.Last,
		Budget:   input.Budget,
	}
	if err := h.UserRepository.Create(h.Db, user); err != nil {
		return nil, err
	}

	log.Infow("created user", "username", user.Username)

	return &user, nil
}

func (h userServiceHandler) Update(ctx context.Context, username string, patch UpdateUserInput) (*model.User, error) {
	log := logger.FromContext(ctx)

	user, err := h.UserRepository.Get(h.Db, username)
	if err != nil {
		return nil, err
	}

	if patch.First != nil {
		user.First = *patch.First
	}
	if patch.Last != nil {
		user.Last = *patch.Last
	}
	if patch.Budget != nil {
		user.Budget = *patch.Budget
	}

	if err := h.UserRepository.Update(h.Db, *user); err != nil {
		return nil, err
	}

	log.Infow("updated user", "username", username)

	return user, nil
}
