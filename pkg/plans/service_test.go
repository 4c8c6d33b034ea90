package plans

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/enttest"
)

func setupTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
}

func TestService_Ensure(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	service := NewService(client)
	require.NoError(t, service.Ensure(ctx))

	count, err := client.Plan.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), count)

	// Running again updates in place instead of duplicating.
	require.NoError(t, service.Ensure(ctx))
	count, err = client.Plan.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), count)
}

func TestService_Free(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	service := NewService(client)
	require.NoError(t, service.Ensure(ctx))

	free, err := service.Free(ctx)
	require.NoError(t, err)
	assert.Equal(t, "free", free.Name)
	assert.Equal(t, 0, free.PriceInCents)
	assert.Equal(t, 5000, free.MaxSubjectsPerExperiment)
	assert.Equal(t, 3, free.MaxActiveExperiments)
}

func TestService_ForAccount(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	service := NewService(client)
	require.NoError(t, service.Ensure(ctx))

	free, err := service.Free(ctx)
	require.NoError(t, err)

	account, err := client.Account.Create().SetPlanID(free.ID).Save(ctx)
	require.NoError(t, err)

	t.Run("Success - Resolves the subscribed plan", func(t *testing.T) {
		plan, err := service.ForAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "free", plan.Name)
	})

	t.Run("Failure - Unknown account", func(t *testing.T) {
		_, err := service.ForAccount(ctx, account.ID+999)
		assert.Error(t, err)
	})
}
