package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "name", "avatar_url", "created_at"}

func TestUserService_Get(t *testing.T) {
	t.Run("invalid id never reaches the database", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewUserService(repos.Users)

		_, err := svc.Get(context.Background(), "not-a-uuid")
		requireHTTPError(t, err, http.StatusNotFound, "USER_NOT_FOUND")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewUserService(repos.Users)

		mock.ExpectQuery("FROM users WHERE id").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(userCols))

		_, err := svc.Get(context.Background(), userID)
		requireHTTPError(t, err, http.StatusNotFound, "USER_NOT_FOUND")
	})

	t.Run("found", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewUserService(repos.Users)

		mock.ExpectQuery("FROM users WHERE id").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(userID, "asha@example.com", ptr("Asha"), (*string)(nil), createdAt))

		user, err := svc.Get(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", user.Email)
	})
}

func TestUserService_Update_NoFields(t *testing.T) {
	mock, repos := newMockRepos(t)
	svc := NewUserService(repos.Users)

	_, err := svc.Update(context.Background(), userID, model.UpdateUserParams{})
	requireHTTPError(t, err, http.StatusBadRequest, "NO_VALID_FIELDS")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewUserService(repos.Users)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM users").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(userID))
		mock.ExpectCommit()

		assert.NoError(t, svc.Delete(context.Background(), userID))
	})

	t.Run("nothing deleted", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewUserService(repos.Users)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM users").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		requireHTTPError(t, svc.Delete(context.Background(), userID), http.StatusNotFound, "USER_NOT_FOUND")
	})
}
