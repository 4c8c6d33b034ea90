package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/exposurerollup"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// rollupKey identifies one row of the daily aggregate.
type rollupKey struct {
	experimentID int
	scope        domain.Scope
}

type rollupCounts struct {
	userID         int
	experimentName string
	exposures      int
	conversions    int
}

// RollupDay aggregates exposure and conversion first-seen counts for
// the UTC day containing t into the exposure_rollup table. Re-running
// for the same day overwrites the previous counts, so the nightly job
// and manual backfills can both call it freely.
func (s *Service) RollupDay(ctx context.Context, t time.Time) (int, error) {
	dayStart := t.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	counts := make(map[rollupKey]*rollupCounts)

	exposures, err := s.db.Exposure.
		Query().
		Where(
			exposure.CreatedAtGTE(dayStart),
			exposure.CreatedAtLT(dayEnd),
		).
		WithExperiment().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed loading exposures for rollup: %w", err)
	}
	for _, e := range exposures {
		key := rollupKey{experimentID: e.ExperimentID, scope: e.Scope}
		c := counts[key]
		if c == nil {
			c = &rollupCounts{
				userID:         e.Edges.Experiment.UserID,
				experimentName: e.Edges.Experiment.Name,
			}
			counts[key] = c
		}
		c.exposures++
	}

	conversions, err := s.db.Conversion.
		Query().
		Where(
			conversion.CreatedAtGTE(dayStart),
			conversion.CreatedAtLT(dayEnd),
		).
		WithExposure(func(q *ent.ExposureQuery) {
			q.WithExperiment()
		}).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed loading conversions for rollup: %w", err)
	}
	for _, cv := range conversions {
		expo := cv.Edges.Exposure
		key := rollupKey{experimentID: expo.ExperimentID, scope: cv.Scope}
		c := counts[key]
		if c == nil {
			c = &rollupCounts{
				userID:         expo.Edges.Experiment.UserID,
				experimentName: expo.Edges.Experiment.Name,
			}
			counts[key] = c
		}
		c.conversions++
	}

	for key, c := range counts {
		err := s.db.ExposureRollup.
			Create().
			SetDay(dayStart).
			SetUserID(c.userID).
			SetExperimentID(key.experimentID).
			SetExperimentName(c.experimentName).
			SetScope(key.scope).
			SetExposures(c.exposures).
			SetConversions(c.conversions).
			OnConflictColumns(
				exposurerollup.FieldDay,
				exposurerollup.FieldExperimentID,
				exposurerollup.FieldScope,
			).
			Update(func(u *ent.ExposureRollupUpsert) {
				u.SetExposures(c.exposures)
				u.SetConversions(c.conversions)
				u.SetUpdatedAt(s.now())
			}).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed upserting rollup for experiment %d: %w", key.experimentID, err)
		}
	}
	return len(counts), nil
}

// ExposureSummaries returns the user's daily rollups in [start, end),
// oldest day first.
func (s *Service) ExposureSummaries(ctx context.Context, userID int, start, end time.Time) ([]*ent.ExposureRollup, error) {
	rollups, err := s.db.ExposureRollup.
		Query().
		Where(
			exposurerollup.UserIDEQ(userID),
			exposurerollup.DayGTE(start.UTC().Truncate(24*time.Hour)),
			exposurerollup.DayLT(end.UTC().Truncate(24*time.Hour)),
		).
		Order(ent.Asc(exposurerollup.FieldDay)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed loading exposure summaries: %w", err)
	}
	return rollups, nil
}
