package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/enttest"
	"github.com/tjwaterman99/quicksplit-api/pkg/cache"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
	"github.com/tjwaterman99/quicksplit-api/pkg/tracking"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	require.NoError(t, plans.NewService(client).Ensure(context.Background()))
	return client
}

func setupTestCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	return &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, mr
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

func createTestExperiment(t *testing.T, client *ent.Client, userID int, name string) *ent.Experiment {
	exp, err := client.Experiment.Create().
		SetUserID(userID).
		SetName(name).
		SetActive(true).
		SetLastActivatedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return exp
}

func TestService_RecentEvents(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "feed@example.com")
	createTestExperiment(t, client, user.ID, "feed")

	trackingService := tracking.NewService(client, plans.NewService(client))
	for i := 0; i < 12; i++ {
		subject := fmt.Sprintf("visitor-%d", i)
		_, err := trackingService.CreateExposure(ctx, user.ID, "feed", subject, "control", domain.ScopeProduction)
		require.NoError(t, err)
	}
	value := 4.5
	_, err := trackingService.CreateConversion(ctx, user.ID, "feed", "visitor-3", domain.ScopeProduction, &value)
	require.NoError(t, err)

	service := NewService(client, nil, nil)

	events, err := service.RecentEvents(ctx, user.ID, domain.ScopeProduction)
	require.NoError(t, err)
	assert.Len(t, events, 11, "10 most recent exposures plus the conversion")

	sawConversion := false
	for i, event := range events {
		if i > 0 {
			assert.False(t, event.LastSeenAt.After(events[i-1].LastSeenAt), "events are newest first")
		}
		if event.Type == "conversion" {
			sawConversion = true
			assert.Equal(t, "visitor-3", event.Subject)
			require.NotNil(t, event.Value)
			assert.Equal(t, 4.5, *event.Value)
		} else {
			assert.Equal(t, "exposure", event.Type)
			assert.Equal(t, "feed", event.Experiment)
			assert.Equal(t, "control", event.Cohort)
		}
	}
	assert.True(t, sawConversion)
}

func TestService_RecentEvents_ScopeAndUserIsolation(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "mine@example.com")
	other := createTestUser(t, client, "theirs@example.com")
	createTestExperiment(t, client, user.ID, "mine")
	createTestExperiment(t, client, other.ID, "theirs")

	trackingService := tracking.NewService(client, plans.NewService(client))
	_, err := trackingService.CreateExposure(ctx, user.ID, "mine", "visitor-1", "control", domain.ScopeStaging)
	require.NoError(t, err)
	_, err = trackingService.CreateExposure(ctx, other.ID, "theirs", "visitor-2", "control", domain.ScopeProduction)
	require.NoError(t, err)

	service := NewService(client, nil, nil)

	events, err := service.RecentEvents(ctx, user.ID, domain.ScopeProduction)
	require.NoError(t, err)
	assert.Empty(t, events, "staging rows and other users' rows stay out")

	events, err = service.RecentEvents(ctx, user.ID, domain.ScopeStaging)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestService_RecentEvents_Cached(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	cacheClient, mr := setupTestCache(t)
	defer mr.Close()
	defer cacheClient.Close()

	user := createTestUser(t, client, "cached@example.com")
	createTestExperiment(t, client, user.ID, "cached")

	trackingService := tracking.NewService(client, plans.NewService(client))
	_, err := trackingService.CreateExposure(ctx, user.ID, "cached", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)

	service := NewService(client, cacheClient, nil)

	first, err := service.RecentEvents(ctx, user.ID, domain.ScopeProduction)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// New writes are invisible until the cache entry expires.
	_, err = trackingService.CreateExposure(ctx, user.ID, "cached", "visitor-2", "control", domain.ScopeProduction)
	require.NoError(t, err)

	second, err := service.RecentEvents(ctx, user.ID, domain.ScopeProduction)
	require.NoError(t, err)
	assert.Len(t, second, 1)

	mr.FastForward(time.Minute)

	third, err := service.RecentEvents(ctx, user.ID, domain.ScopeProduction)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}
