package results

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/enttest"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
	"github.com/tjwaterman99/quicksplit-api/pkg/tracking"
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

// populate records n exposures per cohort and the first converted of
// each cohort's subjects as conversions, through the real write path.
func populate(t *testing.T, client *ent.Client, userID int, experimentName string, scope domain.Scope, perCohort map[string][2]int) {
	ctx := context.Background()
	trackingService := tracking.NewService(client, plans.NewService(client))

	for cohortName, counts := range perCohort {
		n, converted := counts[0], counts[1]
		for i := 0; i < n; i++ {
			subjectName := fmt.Sprintf("%s-subject-%d", cohortName, i)
			_, err := trackingService.CreateExposure(ctx, userID, experimentName, subjectName, cohortName, scope)
			require.NoError(t, err)

			if i < converted {
				_, err := trackingService.CreateConversion(ctx, userID, experimentName, subjectName, scope, nil)
				require.NoError(t, err)
			}
		}
	}
}

func TestService_Run(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "run@example.com")
	createTestExperiment(t, client, user.ID, "checkout-flow")

	populate(t, client, user.ID, "checkout-flow", domain.ScopeProduction, map[string][2]int{
		"control":   {40, 4},
		"treatment": {40, 20},
	})

	service := NewService(client)
	ranAt := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return ranAt }

	exp, err := client.Experiment.Query().Only(ctx)
	require.NoError(t, err)

	snapshot, err := service.Run(ctx, exp, domain.ScopeProduction)
	require.NoError(t, err)

	assert.Equal(t, "checkout-flow", snapshot.Experiment)
	assert.Equal(t, domain.ScopeProduction, snapshot.Scope)
	assert.Equal(t, 80, snapshot.Subjects)
	assert.Equal(t, SnapshotVersion, snapshot.Version)
	assert.True(t, snapshot.RanAt.Equal(ranAt))

	require.Len(t, snapshot.Table, 2)
	assert.Equal(t, "control", snapshot.Table[0].Cohort)
	assert.InDelta(t, 0.10, snapshot.Table[0].ConversionRate, 1e-9)
	assert.Equal(t, "treatment", snapshot.Table[1].Cohort)
	assert.InDelta(t, 0.50, snapshot.Table[1].ConversionRate, 1e-9)

	require.NotNil(t, snapshot.PValue)
	require.NotNil(t, snapshot.Significant)
	assert.True(t, *snapshot.Significant)
}

func TestService_Run_InsufficientData(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "empty@example.com")
	exp := createTestExperiment(t, client, user.ID, "untouched")

	service := NewService(client)

	_, err := service.Run(ctx, exp, domain.ScopeProduction)
	assert.Error(t, err)
	assert.True(t, domain.IsInsufficientData(err))

	count, err := client.ExperimentResult.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "no snapshot is written for empty experiments")
}

func TestService_Run_ScopeIsolation(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "scoped@example.com")
	createTestExperiment(t, client, user.ID, "beta-feature")

	populate(t, client, user.ID, "beta-feature", domain.ScopeStaging, map[string][2]int{
		"control": {5, 2},
	})

	service := NewService(client)

	exp, err := client.Experiment.Query().Only(ctx)
	require.NoError(t, err)

	t.Run("Failure - Production has no subjects", func(t *testing.T) {
		_, err := service.Run(ctx, exp, domain.ScopeProduction)
		assert.True(t, domain.IsInsufficientData(err))
	})

	t.Run("Success - Staging computes over staging rows only", func(t *testing.T) {
		snapshot, err := service.Run(ctx, exp, domain.ScopeStaging)
		require.NoError(t, err)
		assert.Equal(t, 5, snapshot.Subjects)
	})
}

func TestService_RunOverwritesAndLastReads(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "overwrite@example.com")
	createTestExperiment(t, client, user.ID, "rerun")

	populate(t, client, user.ID, "rerun", domain.ScopeProduction, map[string][2]int{
		"control":   {10, 1},
		"treatment": {10, 2},
	})

	service := NewService(client)

	t1 := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return t1 }

	exp, err := client.Experiment.Query().Only(ctx)
	require.NoError(t, err)

	_, err = service.Run(ctx, exp, domain.ScopeProduction)
	require.NoError(t, err)

	// More data arrives, then a rerun replaces the snapshot in place.
	populate(t, client, user.ID, "rerun", domain.ScopeProduction, map[string][2]int{
		"holdout": {10, 3},
	})
	exp, err = client.Experiment.Query().Only(ctx)
	require.NoError(t, err)

	t2 := t1.Add(24 * time.Hour)
	service.now = func() time.Time { return t2 }

	_, err = service.Run(ctx, exp, domain.ScopeProduction)
	require.NoError(t, err)

	count, err := client.ExperimentResult.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "reruns overwrite the (experiment, scope) snapshot")

	last, err := service.Last(ctx, exp.ID, domain.ScopeProduction)
	require.NoError(t, err)
	assert.Equal(t, 30, last.Subjects)
	assert.True(t, last.RanAt.Equal(t2))
	require.Len(t, last.Table, 3)
}

func TestService_Last_NotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "nolast@example.com")
	exp := createTestExperiment(t, client, user.ID, "never-ran")

	service := NewService(client)

	_, err := service.Last(ctx, exp.ID, domain.ScopeProduction)
	assert.True(t, domain.IsNotFound(err))
}
