package repository_test

import (
	"context"
	"testing"

	"github.com/dperalta/projecthub/internal/repository"
	"github.com/dperalta/projecthub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRepo_InsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePersonRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPerson("Carlos Mendoza",
		testutil.WithRole("Proyectista II"),
		testutil.WithMonthlyRate(3500),
		testutil.WithProjects("Saneamiento Sector 5"),
	)
	p.Subordinates = []string{"sub-1"}
	p.ActiveMonths = map[string][]string{"Saneamiento Sector 5": {"2025-03"}}
	require.NoError(t, repo.Insert(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Proyectista II", got.Role)
	assert.True(t, got.IsLead())
	assert.Equal(t, 3500.0, got.MonthlyRate)
	assert.Equal(t, []string{"Saneamiento Sector 5"}, got.Projects)
	assert.Equal(t, []string{"sub-1"}, got.Subordinates)
	assert.Equal(t, []string{"2025-03"}, got.ActiveMonths["Saneamiento Sector 5"])
}

func TestPersonRepo_EmptyCollectionsRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePersonRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPerson("Ana Quispe")
	require.NoError(t, repo.Insert(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Projects)
	assert.Empty(t, got.Subordinates)
	assert.NotNil(t, got.ActiveMonths, "activation map must be usable after a read")
}

func TestPersonRepo_UpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePersonRepo(database)
	ctx := context.Background()

	p := testutil.NewTestPerson("Luis Huamán")
	require.NoError(t, repo.Insert(ctx, p))

	p.Name = "Luis Huamán Ríos"
	p.ToggleMonth("P", "2025-05")
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luis Huamán Ríos", got.Name)
	assert.Equal(t, []string{"2025-05"}, got.ActiveMonths["P"])

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.Error(t, err)
}

func TestUserRepo_UpsertAndCount(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(database)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	u := &repository.User{Email: "admin@muni.gob.pe", PasswordHash: "abc123"}
	require.NoError(t, repo.Upsert(ctx, u))

	u.PasswordHash = "def456"
	require.NoError(t, repo.Upsert(ctx, u))

	got, err := repo.GetByEmail(ctx, "admin@muni.gob.pe")
	require.NoError(t, err)
	assert.Equal(t, "def456", got.PasswordHash)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
