package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// populateDay writes exposures and conversions with created_at pinned
// inside the given day.
func populateDay(t *testing.T, client *ent.Client, userID int, experimentName string, day time.Time, exposures, conversions int) {
	ctx := context.Background()

	user, err := client.User.Get(ctx, userID)
	require.NoError(t, err)
	exp, err := client.Experiment.Query().
		Where(experiment.UserIDEQ(userID), experiment.NameEQ(experimentName)).
		Only(ctx)
	require.NoError(t, err)

	coh, err := client.Cohort.Create().
		SetExperimentID(exp.ID).
		SetName("control").
		OnConflictColumns(cohort.FieldExperimentID, cohort.FieldName).
		UpdateNewValues().
		ID(ctx)
	require.NoError(t, err)

	for i := 0; i < exposures; i++ {
		tick := day.Add(time.Duration(i+1) * time.Minute)

		subjectName := fmt.Sprintf("%s-%s-visitor-%d", experimentName, day.Format("0102-15"), i)
		subj, err := client.Subject.Create().
			SetAccountID(user.AccountID).
			SetName(subjectName).
			SetScope(domain.ScopeProduction).
			Save(ctx)
		require.NoError(t, err)

		expo, err := client.Exposure.Create().
			SetSubjectID(subj.ID).
			SetExperimentID(exp.ID).
			SetCohortID(coh).
			SetScope(domain.ScopeProduction).
			SetCreatedAt(tick).
			SetLastSeenAt(tick).
			Save(ctx)
		require.NoError(t, err)

		if i < conversions {
			_, err := client.Conversion.Create().
				SetExposureID(expo.ID).
				SetScope(domain.ScopeProduction).
				SetCreatedAt(tick).
				SetLastSeenAt(tick).
				Save(ctx)
			require.NoError(t, err)
		}
	}
}

func TestService_RollupDay(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "rollup@example.com")
	createTestExperiment(t, client, user.ID, "alpha")
	createTestExperiment(t, client, user.ID, "beta")

	day := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	nextDay := day.Add(24 * time.Hour)

	populateDay(t, client, user.ID, "alpha", day, 5, 2)
	populateDay(t, client, user.ID, "beta", day, 3, 0)
	populateDay(t, client, user.ID, "alpha", nextDay, 7, 1)

	service := NewService(client, nil, nil)

	n, err := service.RollupDay(ctx, day.Add(13*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one row per (experiment, scope) pair")

	rollups, err := service.ExposureSummaries(ctx, user.ID, day, nextDay)
	require.NoError(t, err)
	require.Len(t, rollups, 2)

	byName := map[string]*ent.ExposureRollup{}
	for _, r := range rollups {
		byName[r.ExperimentName] = r
		assert.True(t, r.Day.Equal(day))
		assert.Equal(t, domain.ScopeProduction, r.Scope)
	}
	require.Contains(t, byName, "alpha")
	require.Contains(t, byName, "beta")
	assert.Equal(t, 5, byName["alpha"].Exposures)
	assert.Equal(t, 2, byName["alpha"].Conversions)
	assert.Equal(t, 3, byName["beta"].Exposures)
	assert.Equal(t, 0, byName["beta"].Conversions)
}

func TestService_RollupDay_Rerun(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	user := createTestUser(t, client, "rerun@example.com")
	createTestExperiment(t, client, user.ID, "gamma")

	day := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	populateDay(t, client, user.ID, "gamma", day, 2, 0)

	service := NewService(client, nil, nil)

	_, err := service.RollupDay(ctx, day)
	require.NoError(t, err)

	// Late data lands, the day is rolled up again.
	populateDay(t, client, user.ID, "gamma", day.Add(20*time.Hour), 3, 1)

	_, err = service.RollupDay(ctx, day)
	require.NoError(t, err)

	rollups, err := service.ExposureSummaries(ctx, user.ID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, rollups, 1, "reruns overwrite instead of duplicating")
	assert.Equal(t, 5, rollups[0].Exposures)
	assert.Equal(t, 1, rollups[0].Conversions)
}

func TestService_RollupDay_EmptyDay(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil)

	n, err := service.RollupDay(context.Background(), time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
