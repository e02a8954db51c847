package repository

import (
	"testing"

	"papertrade/internal/db/models/sqlite/model"
	"papertrade/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_userRepository_CreateAndGet(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		dbConn := newTestDb(t)
		h := NewUserRepository()

		user := model.User{
			Username: "sontek",
			First:    "John",
			Last:     "Anderson",
			Budget:   100000,
		}
		require.NoError(t, h.Create(dbConn, user))

		out, err := h.Get(dbConn, "sontek")
		require.NoError(t, err)
		require.Equal(t, user, *out)
	})

	t.Run("missing user", func(t *testing.T) {
		dbConn := newTestDb(t)
		h := NewUserRepository()

		_, err := h.Get(dbConn, "nobody")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("duplicate username rejected by schema", func(t *testing.T) {
		dbConn := newTestDb(t)
		h := NewUserRepository()

		user := model.User{Username: "sontek", First: "John", Last: "Anderson", Budget: 100000}
		require.NoError(t, h.Create(dbConn, user))
		require.Error(t, h.Create(dbConn, user))
	})
}

func Test_userRepository_Update(t *testing.T) {
	t.Run("overwrites all mutable fields", func(t *testing.T) {
		dbConn := newTestDb(t)
		h := NewUserRepository()

		require.NoError(t, h.Create(dbConn, model.User{
			Username: "sontek", First: "John", Last: "Anderson", Budget: 100000,
		}))

		updated := model.User{Username: "sontek", First: "Fred", Last: "Flintstone", Budget: 50}
		require.NoError(t, h.Update(dbConn, updated))

		out, err := h.Get(dbConn, "sontek")
		require.NoError(t, err)
		require.Equal(t, updated, *out)
	})

	t.Run("budget only", func(t *testing.T) {
		dbConn := newTestDb(t)
		h := NewUserRepository()

		require.NoError(t, h.Create(dbConn, model.User{
			Username: "sontek", First: "John", Last: "Anderson", Budget: 100000,
		}))
		require.NoError(t, h.UpdateBudget(dbConn, "sontek", 96674.8))

		out, err := h.Get(dbConn, "sontek")
		require.NoError(t, err)
		require.Equal(t, 96674.8, out.Budget)
		require.Equal(t, "John", out.First)
	})
}
