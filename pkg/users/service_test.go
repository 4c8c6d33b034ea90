package users

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/enttest"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	plansService := plans.NewService(client)
	require.NoError(t, plansService.Ensure(context.Background()))
	return NewService(client, plansService), client
}

func TestService_Register(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	t.Run("Success - New account on the free plan", func(t *testing.T) {
		user, err := service.Register(ctx, "new@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.NotEqual(t, "password123", user.PasswordHash)

		plan, err := plans.NewService(client).ForAccount(ctx, user.AccountID)
		require.NoError(t, err)
		assert.Equal(t, "free", plan.Name)
	})

	t.Run("Failure - Duplicate email", func(t *testing.T) {
		_, err := service.Register(ctx, "new@example.com", "password123")
		assert.Error(t, err)
		assert.True(t, domain.IsDuplicateName(err))
	})

	t.Run("Failure - Duplicate email leaves no orphan account", func(t *testing.T) {
		accounts, err := client.Account.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, accounts, "the failed registration's account rolled back")
	})
}

func TestService_Login(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	registered, err := service.Register(ctx, "login@example.com", "correct-horse")
	require.NoError(t, err)

	t.Run("Success - Valid credentials", func(t *testing.T) {
		user, err := service.Login(ctx, "login@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("Failure - Wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, "login@example.com", "battery-staple")
		assert.True(t, domain.IsUnauthorized(err))
	})

	t.Run("Failure - Unknown email", func(t *testing.T) {
		_, err := service.Login(ctx, "nobody@example.com", "correct-horse")
		assert.True(t, domain.IsUnauthorized(err))
	})
}

func TestService_Get(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	registered, err := service.Register(ctx, "get@example.com", "password123")
	require.NoError(t, err)

	user, err := service.Get(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "get@example.com", user.Email)

	_, err = service.Get(ctx, registered.ID+999)
	assert.True(t, domain.IsNotFound(err))
}
