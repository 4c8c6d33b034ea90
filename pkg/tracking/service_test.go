package tracking

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/enttest"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	require.NoError(t, plans.NewService(client).Ensure(context.Background()))
	return client
}

// createTestUser creates an account on the named plan with one user.
func createTestUser(t *testing.T, client *ent.Client, email, planName string) *ent.User {
	ctx := context.Background()

	p, err := client.Plan.Query().All(ctx)
	require.NoError(t, err)
	var planID int
	for _, candidate := range p {
		if candidate.Name == planName {
			planID = candidate.ID
		}
	}
	require.NotZero(t, planID, "plan %s should exist", planName)

	account, err := client.Account.Create().SetPlanID(planID).Save(ctx)
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

// tinyPlanUser creates a user whose plan admits a single subject per
// experiment, for exercising the capacity guard.
func tinyPlanUser(t *testing.T, client *ent.Client, email string) *ent.User {
	ctx := context.Background()

	tiny, err := client.Plan.Create().
		SetName("tiny-" + email).
		SetPriceInCents(0).
		SetMaxSubjectsPerExperiment(1).
		SetMaxActiveExperiments(3).
		Save(ctx)
	require.NoError(t, err)

	account, err := client.Account.Create().SetPlanID(tiny.ID).Save(ctx)
	require.NoError(t, err)

	user, err := client.User.Create().
		SetAccountID(account.ID).
		SetEmail(email).
		SetPasswordHash("hashed").
		Save(ctx)
	require.NoError(t, err)
	return user
}

func TestCreateExposure_Idempotent(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "idem@example.com", "free")
	createTestExperiment(t, client, user.ID, "button-color")

	service := NewService(client, plans.NewService(client))

	t0 := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return t0 }

	first, err := service.CreateExposure(ctx, user.ID, "button-color", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)
	assert.True(t, first.CreatedAt.Equal(first.LastSeenAt), "first call inserts the row")

	service.now = func() time.Time { return t0.Add(time.Hour) }
	second, err := service.CreateExposure(ctx, user.ID, "button-color", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "repeat resolves to the same row")
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
	assert.True(t, second.LastSeenAt.After(second.CreatedAt), "repeat advances last_seen_at only")

	count, err := client.Exposure.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exp, err := client.Experiment.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, exp.SubjectsCounterProduction, "counter moves once per subject")
	assert.Equal(t, 0, exp.SubjectsCounterStaging)
}

func TestCreateExposure_RepeatIgnoresCohort(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "cohort@example.com", "free")
	createTestExperiment(t, client, user.ID, "pricing")

	service := NewService(client, plans.NewService(client))

	t0 := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return t0 }
	first, err := service.CreateExposure(ctx, user.ID, "pricing", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)

	service.now = func() time.Time { return t0.Add(time.Minute) }
	second, err := service.CreateExposure(ctx, user.ID, "pricing", "visitor-1", "treatment", domain.ScopeProduction)
	require.NoError(t, err)

	assert.Equal(t, first.CohortID, second.CohortID, "first cohort assignment sticks")

	original, err := client.Cohort.Get(ctx, first.CohortID)
	require.NoError(t, err)
	assert.Equal(t, "control", original.Name)
}

func TestCreateExposure_ScopeIsolation(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "scopes@example.com", "free")
	createTestExperiment(t, client, user.ID, "onboarding")

	service := NewService(client, plans.NewService(client))

	_, err := service.CreateExposure(ctx, user.ID, "onboarding", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)
	_, err = service.CreateExposure(ctx, user.ID, "onboarding", "visitor-1", "control", domain.ScopeStaging)
	require.NoError(t, err)

	count, err := client.Exposure.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "the same subject name in each scope is two exposures")

	subjects, err := client.Subject.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, subjects, "subjects are scoped rows")

	exp, err := client.Experiment.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, exp.SubjectsCounterProduction)
	assert.Equal(t, 1, exp.SubjectsCounterStaging)
}

func TestCreateExposure_InactiveExperiment(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "inactive@example.com", "free")
	exp := createTestExperiment(t, client, user.ID, "paused")

	service := NewService(client, plans.NewService(client))

	t.Run("Failure - New subject rejected", func(t *testing.T) {
		require.NoError(t, client.Experiment.UpdateOneID(exp.ID).SetActive(false).Exec(ctx))

		_, err := service.CreateExposure(ctx, user.ID, "paused", "visitor-1", "control", domain.ScopeProduction)
		assert.Error(t, err)
		assert.True(t, domain.IsInactiveExperiment(err))
	})

	t.Run("Success - Repeat admitted while inactive", func(t *testing.T) {
		require.NoError(t, client.Experiment.UpdateOneID(exp.ID).SetActive(true).Exec(ctx))
		_, err := service.CreateExposure(ctx, user.ID, "paused", "visitor-2", "control", domain.ScopeProduction)
		require.NoError(t, err)

		require.NoError(t, client.Experiment.UpdateOneID(exp.ID).SetActive(false).Exec(ctx))
		_, err = service.CreateExposure(ctx, user.ID, "paused", "visitor-2", "control", domain.ScopeProduction)
		assert.NoError(t, err, "known subjects keep landing after deactivation")
	})
}

func TestCreateExposure_CapacityExceeded(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := tinyPlanUser(t, client, "capacity@example.com")
	createTestExperiment(t, client, user.ID, "limited")

	service := NewService(client, plans.NewService(client))

	_, err := service.CreateExposure(ctx, user.ID, "limited", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)

	t.Run("Failure - New subject over the limit", func(t *testing.T) {
		_, err := service.CreateExposure(ctx, user.ID, "limited", "visitor-2", "control", domain.ScopeProduction)
		assert.Error(t, err)
		assert.True(t, domain.IsCapacityExceeded(err))
	})

	t.Run("Success - Repeat admitted at the limit", func(t *testing.T) {
		_, err := service.CreateExposure(ctx, user.ID, "limited", "visitor-1", "control", domain.ScopeProduction)
		assert.NoError(t, err)
	})

	t.Run("Success - Other scope has its own budget", func(t *testing.T) {
		_, err := service.CreateExposure(ctx, user.ID, "limited", "visitor-2", "control", domain.ScopeStaging)
		assert.NoError(t, err)
	})
}

func TestCreateExposure_NotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "missing@example.com", "free")
	service := NewService(client, plans.NewService(client))

	t.Run("Failure - Unknown experiment", func(t *testing.T) {
		_, err := service.CreateExposure(ctx, user.ID, "nope", "visitor-1", "control", domain.ScopeProduction)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		_, err := service.CreateExposure(ctx, user.ID+999, "nope", "visitor-1", "control", domain.ScopeProduction)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestCreateExposure_BackReferences(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "refs@example.com", "free")
	createTestExperiment(t, client, user.ID, "refs")

	service := NewService(client, plans.NewService(client))

	expo, err := service.CreateExposure(ctx, user.ID, "refs", "visitor-1", "control", domain.ScopeStaging)
	require.NoError(t, err)

	exp, err := client.Experiment.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, exp.LastStagingExposureID)
	assert.Equal(t, expo.ID, *exp.LastStagingExposureID)
	assert.Nil(t, exp.LastProductionExposureID)

	coh, err := client.Cohort.Get(ctx, expo.CohortID)
	require.NoError(t, err)
	require.NotNil(t, coh.LastStagingExposureID)
	assert.Equal(t, expo.ID, *coh.LastStagingExposureID)

	subj, err := client.Subject.Get(ctx, expo.SubjectID)
	require.NoError(t, err)
	require.NotNil(t, subj.LastExposureID)
	assert.Equal(t, expo.ID, *subj.LastExposureID)
}

func TestCreateConversion_RequiresExposure(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "convert@example.com", "free")
	createTestExperiment(t, client, user.ID, "checkout")

	service := NewService(client, plans.NewService(client))

	t.Run("Failure - No exposure at all", func(t *testing.T) {
		_, err := service.CreateConversion(ctx, user.ID, "checkout", "visitor-1", domain.ScopeProduction, nil)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Failure - Exposure in the other scope only", func(t *testing.T) {
		_, err := service.CreateExposure(ctx, user.ID, "checkout", "visitor-1", "control", domain.ScopeStaging)
		require.NoError(t, err)

		_, err = service.CreateConversion(ctx, user.ID, "checkout", "visitor-1", domain.ScopeProduction, nil)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Success - Converts after exposure", func(t *testing.T) {
		_, err := service.CreateExposure(ctx, user.ID, "checkout", "visitor-1", "control", domain.ScopeProduction)
		require.NoError(t, err)

		conv, err := service.CreateConversion(ctx, user.ID, "checkout", "visitor-1", domain.ScopeProduction, nil)
		require.NoError(t, err)
		assert.Nil(t, conv.Value)
	})
}

func TestCreateConversion_Idempotent(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "convidem@example.com", "free")
	createTestExperiment(t, client, user.ID, "purchase")

	service := NewService(client, plans.NewService(client))

	_, err := service.CreateExposure(ctx, user.ID, "purchase", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)

	t0 := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return t0 }

	v1 := 19.99
	first, err := service.CreateConversion(ctx, user.ID, "purchase", "visitor-1", domain.ScopeProduction, &v1)
	require.NoError(t, err)
	require.NotNil(t, first.Value)
	assert.Equal(t, 19.99, *first.Value)

	service.now = func() time.Time { return t0.Add(time.Hour) }
	v2 := 99.99
	second, err := service.CreateConversion(ctx, user.ID, "purchase", "visitor-1", domain.ScopeProduction, &v2)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Value)
	assert.Equal(t, 19.99, *second.Value, "the first recorded value wins")
	assert.True(t, second.LastSeenAt.After(first.LastSeenAt))

	count, err := client.Conversion.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateConversion_InactiveExperimentStillConverts(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "late@example.com", "free")
	exp := createTestExperiment(t, client, user.ID, "finished")

	service := NewService(client, plans.NewService(client))

	_, err := service.CreateExposure(ctx, user.ID, "finished", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)

	require.NoError(t, client.Experiment.UpdateOneID(exp.ID).SetActive(false).Exec(ctx))

	_, err = service.CreateConversion(ctx, user.ID, "finished", "visitor-1", domain.ScopeProduction, nil)
	assert.NoError(t, err, "conversions are never gated on active")
}

func TestCreateConversion_AccountIsolation(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	alice := createTestUser(t, client, "alice@example.com", "free")
	bob := createTestUser(t, client, "bob@example.com", "free")
	createTestExperiment(t, client, alice.ID, "shared-name")
	createTestExperiment(t, client, bob.ID, "shared-name")

	service := NewService(client, plans.NewService(client))

	_, err := service.CreateExposure(ctx, alice.ID, "shared-name", "visitor-1", "control", domain.ScopeProduction)
	require.NoError(t, err)

	// Bob never exposed visitor-1, even though Alice did under the
	// same names.
	_, err = service.CreateConversion(ctx, bob.ID, "shared-name", "visitor-1", domain.ScopeProduction, nil)
	assert.True(t, domain.IsNotFound(err))
}
