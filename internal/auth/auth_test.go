package auth_test

import (
	"context"
	"testing"

	"github.com/dperalta/projecthub/internal/auth"
	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/repository"
	"github.com/dperalta/projecthub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (auth.Service, repository.UserRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	return auth.NewService(users), users
}

func TestLogin_Success(t *testing.T) {
	svc, users := newAuth(t)
	ctx := context.Background()
	require.NoError(t, users.Upsert(ctx, &repository.User{
		Email:        "admin@muni.gob.pe",
		PasswordHash: auth.HashPassword("secreto"),
	}))

	require.NoError(t, svc.Login(ctx, "admin@muni.gob.pe", "secreto"))
	require.NotNil(t, svc.CurrentUser())
	assert.Equal(t, "admin@muni.gob.pe", svc.CurrentUser().Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newAuth(t)
	ctx := context.Background()
	require.NoError(t, users.Upsert(ctx, &repository.User{
		Email:        "admin@muni.gob.pe",
		PasswordHash: auth.HashPassword("secreto"),
	}))

	err := svc.Login(ctx, "admin@muni.gob.pe", "otra")
	require.Error(t, err)
	assert.Equal(t, domain.ErrAuth, domain.KindOf(err))
	assert.Nil(t, svc.CurrentUser(), "failed login must leave no session")
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newAuth(t)
	err := svc.Login(context.Background(), "nadie@muni.gob.pe", "x")
	require.Error(t, err)
	assert.Equal(t, domain.ErrAuth, domain.KindOf(err))
}

func TestSubscribe_NotifiedOnLoginAndLogout(t *testing.T) {
	svc, users := newAuth(t)
	ctx := context.Background()
	require.NoError(t, users.Upsert(ctx, &repository.User{
		Email:        "admin@muni.gob.pe",
		PasswordHash: auth.HashPassword("secreto"),
	}))

	var events []*auth.User
	svc.Subscribe(func(u *auth.User) {
		events = append(events, u)
	})

	require.NoError(t, svc.Login(ctx, "admin@muni.gob.pe", "secreto"))
	svc.Logout()
	svc.Logout() // no session, no event

	require.Len(t, events, 2)
	assert.NotNil(t, events[0])
	assert.Nil(t, events[1])
}

func TestSeedAdmin_OnlyWhenEmpty(t *testing.T) {
	_, users := newAuth(t)
	ctx := context.Background()

	require.NoError(t, auth.SeedAdmin(ctx, users, "admin@muni.gob.pe", "secreto"))
	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Second seed is a no-op even with different credentials.
	require.NoError(t, auth.SeedAdmin(ctx, users, "otro@muni.gob.pe", "x"))
	n, err = users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedAdmin_SkipsWithoutConfig(t *testing.T) {
	_, users := newAuth(t)
	ctx := context.Background()
	require.NoError(t, auth.SeedAdmin(ctx, users, "", ""))
	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
