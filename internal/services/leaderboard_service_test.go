package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/models/db_models"
	"ecotrack/pkg/utils"
)

type fakeLeaderboardRepo struct {
	accounts []db_models.Account
	calls    int
}

func (f *fakeLeaderboardRepo) TopAccounts(_ context.Context, limit int) ([]db_models.Account, error) {
	f.calls++
	if limit > len(f.accounts) {
		limit = len(f.accounts)
	}
	return f.accounts[:limit], nil
}

func rankedAccount(name string, points int) db_models.Account {
	return db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      name,
		EcoPoints: points,
		Level:     2,
	}
}

func TestStandings(t *testing.T) {
	repo := &fakeLeaderboardRepo{accounts: []db_models.Account{
		rankedAccount("Alice", 900),
		rankedAccount("Bob", 450),
		rankedAccount("Carol", 120),
	}}
	svc := NewLeaderboardService(repo)

	entries, err := svc.Standings(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, 900, entries[0].EcoPoints)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestStandingsLimitValidation(t *testing.T) {
	svc := NewLeaderboardService(&fakeLeaderboardRepo{})

	for _, limit := range []int{0, -1, 101} {
		_, err := svc.Standings(context.Background(), limit)
		assert.ErrorIs(t, err, utils.ErrInvalidLimit, "limit=%d", limit)
	}
}

func TestStandingsCached(t *testing.T) {
	repo := &fakeLeaderboardRepo{accounts: []db_models.Account{
		rankedAccount("Alice", 900),
		rankedAccount("Bob", 450),
	}}
	svc := NewLeaderboardService(repo)

	_, err := svc.Standings(context.Background(), 2)
	require.NoError(t, err)
	_, err = svc.Standings(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	// A different limit is a separate cache key.
	_, err = svc.Standings(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
