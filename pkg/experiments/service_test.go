package experiments

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/enttest"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	require.NoError(t, plans.NewService(client).Ensure(context.Background()))
	return client
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	ctx := context.Background()

	free, err := plans.NewService(client).Free(ctx)
	require.NoError(t, err)

	account, err := client.Account.Create().SetPlanID(free.ID).Save(ctx)
	require.NoError(t, err)

	user, err := client.User.Create().
		SetAccountID(account.ID).
		SetEmail(email).
		SetPasswordHash("hashed").
		Save(ctx)
	require.NoError(t, err)
	return user
}

func TestService_Create(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "create@example.com")
	service := NewService(client, plans.NewService(client))

	t.Run("Success - Active immediately", func(t *testing.T) {
		exp, err := service.Create(ctx, user.ID, "landing-page")
		require.NoError(t, err)
		assert.True(t, exp.Active)
		assert.Equal(t, 0, exp.SubjectsCounterProduction)
		assert.Equal(t, 0, exp.SubjectsCounterStaging)
	})

	t.Run("Failure - Duplicate name for the same user", func(t *testing.T) {
		_, err := service.Create(ctx, user.ID, "landing-page")
		assert.Error(t, err)
		assert.True(t, domain.IsDuplicateName(err))
	})

	t.Run("Success - Same name for another user", func(t *testing.T) {
		other := createTestUser(t, client, "other@example.com")
		_, err := service.Create(ctx, other.ID, "landing-page")
		assert.NoError(t, err)
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		_, err := service.Create(ctx, user.ID+999, "nope")
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestService_Create_EvictsOldestActive(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "evict@example.com")
	service := NewService(client, plans.NewService(client))

	// The free plan allows 3 concurrently active experiments.
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	names := []string{"one", "two", "three"}
	for i, name := range names {
		tick := base.Add(time.Duration(i) * time.Hour)
		service.now = func() time.Time { return tick }
		_, err := service.Create(ctx, user.ID, name)
		require.NoError(t, err)
	}

	service.now = func() time.Time { return base.Add(4 * time.Hour) }
	fourth, err := service.Create(ctx, user.ID, "four")
	require.NoError(t, err)
	assert.True(t, fourth.Active)

	active, err := client.Experiment.Query().
		Where(experiment.UserIDEQ(user.ID), experiment.ActiveEQ(true)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 3, "at most three experiments stay active")

	oldest, err := service.Get(ctx, user.ID, "one")
	require.NoError(t, err)
	assert.False(t, oldest.Active, "the least-recently-activated experiment was evicted")
}

func TestService_ActivateAndDeactivate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "toggle@example.com")
	service := NewService(client, plans.NewService(client))

	exp, err := service.Create(ctx, user.ID, "toggle")
	require.NoError(t, err)

	t.Run("Success - Deactivate", func(t *testing.T) {
		got, err := service.Deactivate(ctx, exp.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})

	t.Run("Success - Activate updates last_activated_at", func(t *testing.T) {
		later := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return later }

		got, err := service.Activate(ctx, exp.ID)
		require.NoError(t, err)
		assert.True(t, got.Active)
		assert.True(t, got.LastActivatedAt.Equal(later))
	})

	t.Run("Success - Activate is a no-op when already active", func(t *testing.T) {
		before, err := client.Experiment.Get(ctx, exp.ID)
		require.NoError(t, err)

		got, err := service.Activate(ctx, exp.ID)
		require.NoError(t, err)
		assert.True(t, got.LastActivatedAt.Equal(before.LastActivatedAt))
	})

	t.Run("Failure - Unknown experiment", func(t *testing.T) {
		_, err := service.Activate(ctx, exp.ID+999)
		assert.True(t, domain.IsNotFound(err))

		_, err = service.Deactivate(ctx, exp.ID+999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestService_Activate_EvictsAtLimit(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "limit@example.com")
	service := NewService(client, plans.NewService(client))

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var exps []*ent.Experiment
	for i, name := range []string{"a", "b", "c", "d"} {
		tick := base.Add(time.Duration(i) * time.Hour)
		service.now = func() time.Time { return tick }
		exp, err := service.Create(ctx, user.ID, name)
		require.NoError(t, err)
		exps = append(exps, exp)
	}

	// Creating d evicted a; reactivating a must evict b, the next
	// least-recently-activated, and nothing else.
	service.now = func() time.Time { return base.Add(10 * time.Hour) }
	_, err := service.Activate(ctx, exps[0].ID)
	require.NoError(t, err)

	for i, wantActive := range []bool{true, false, true, true} {
		got, err := client.Experiment.Get(ctx, exps[i].ID)
		require.NoError(t, err)
		assert.Equal(t, wantActive, got.Active, "experiment %s", got.Name)
	}
}

func TestService_GetAndList(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "list@example.com")
	other := createTestUser(t, client, "listother@example.com")
	service := NewService(client, plans.NewService(client))

	_, err := service.Create(ctx, user.ID, "mine")
	require.NoError(t, err)
	_, err = service.Create(ctx, other.ID, "theirs")
	require.NoError(t, err)

	t.Run("Success - Get own experiment", func(t *testing.T) {
		exp, err := service.Get(ctx, user.ID, "mine")
		require.NoError(t, err)
		assert.Equal(t, "mine", exp.Name)
	})

	t.Run("Failure - Cannot see another user's experiment", func(t *testing.T) {
		_, err := service.Get(ctx, user.ID, "theirs")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Success - List is per user", func(t *testing.T) {
		exps, err := service.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, exps, 1)
		assert.Equal(t, "mine", exps[0].Name)
	})
}

func TestFull(t *testing.T) {
	plan := &ent.Plan{MaxSubjectsPerExperiment: 2}

	exp := &ent.Experiment{SubjectsCounterProduction: 1, SubjectsCounterStaging: 2}
	assert.False(t, Full(exp, domain.ScopeProduction, plan))
	assert.True(t, Full(exp, domain.ScopeStaging, plan))
}
