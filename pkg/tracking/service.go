package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/pkg/database"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/experiments"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
)

// Service is the write path of the ledger. Exposures and conversions
// arrive at-least-once from client SDKs, so every write is an upsert
// keyed on the natural uniqueness constraint and the database, not the
// application, is the source of mutual exclusion.
type Service struct {
	db    *ent.Client
	plans *plans.Service
	now   func() time.Time
}

// NewService creates a new tracking service
func NewService(db *ent.Client, plansService *plans.Service) *Service {
	return &Service{db: db, plans: plansService, now: time.Now}
}

// CreateExposure records that a subject entered a cohort of an
// experiment. Repeat calls for the same (subject, experiment, scope)
// resolve to the existing exposure row: only last_seen_at advances, the
// subject counter does not move, and the cohort argument is ignored.
//
// The capacity check reads the counter outside the write transaction.
// Two concurrent first-time exposures near the limit can both pass it;
// the counter may overshoot by a small bounded amount. Capacity is a
// soft billing control, so this is accepted rather than locked around.
func (s *Service) CreateExposure(ctx context.Context, userID int, experimentName, subjectName, cohortName string, scope domain.Scope) (*ent.Exposure, error) {
	owner, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed loading user: %w", err)
	}

	exp, err := s.db.Experiment.
		Query().
		Where(experiment.UserIDEQ(userID), experiment.NameEQ(experimentName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("experiment")
		}
		return nil, fmt.Errorf("failed loading experiment: %w", err)
	}

	// Repeats are always admitted: they do not grow the counter, and
	// conversions for finished experiments depend on them landing.
	repeat, err := s.exposureExists(ctx, owner.AccountID, exp.ID, subjectName, scope)
	if err != nil {
		return nil, err
	}
	if !repeat {
		plan, err := s.plans.ForAccount(ctx, owner.AccountID)
		if err != nil {
			return nil, err
		}
		if experiments.Full(exp, scope, plan) {
			return nil, domain.NewCapacityExceededError(plan.MaxSubjectsPerExperiment)
		}
		if !exp.Active {
			return nil, domain.NewInactiveExperimentError(exp.Name)
		}
	}

	now := s.now()
	var result *ent.Exposure
	err = database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		subjectID, err := tx.Subject.
			Create().
			SetAccountID(owner.AccountID).
			SetName(subjectName).
			SetScope(scope).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			OnConflictColumns(subject.FieldAccountID, subject.FieldName, subject.FieldScope).
			Update(func(u *ent.SubjectUpsert) {
				u.SetUpdatedAt(now)
			}).
			ID(ctx)
		if err != nil {
			return fmt.Errorf("failed upserting subject: %w", err)
		}

		cohortID, err := tx.Cohort.
			Create().
			SetExperimentID(exp.ID).
			SetName(cohortName).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			OnConflictColumns(cohort.FieldExperimentID, cohort.FieldName).
			Update(func(u *ent.CohortUpsert) {
				u.SetUpdatedAt(now)
			}).
			ID(ctx)
		if err != nil {
			return fmt.Errorf("failed upserting cohort: %w", err)
		}

		// created_at and last_seen_at are written from the same now
		// value, so equality after the upsert means this call inserted
		// the row. The conflict clause touches last_seen_at only:
		// created_at and cohort_id never move on repeats.
		exposureID, err := tx.Exposure.
			Create().
			SetSubjectID(subjectID).
			SetExperimentID(exp.ID).
			SetCohortID(cohortID).
			SetScope(scope).
			SetCreatedAt(now).
			SetLastSeenAt(now).
			OnConflictColumns(exposure.FieldSubjectID, exposure.FieldExperimentID, exposure.FieldScope).
			Update(func(u *ent.ExposureUpsert) {
				u.SetLastSeenAt(now)
			}).
			ID(ctx)
		if err != nil {
			return fmt.Errorf("failed upserting exposure: %w", err)
		}

		row, err := tx.Exposure.Get(ctx, exposureID)
		if err != nil {
			return fmt.Errorf("failed reading back exposure: %w", err)
		}
		isNew := row.CreatedAt.Equal(row.LastSeenAt)

		expUpdate := tx.Experiment.UpdateOneID(exp.ID)
		if isNew {
			switch scope {
			case domain.ScopeStaging:
				expUpdate.AddSubjectsCounterStaging(1)
			default:
				expUpdate.AddSubjectsCounterProduction(1)
			}
		}
		if err := setLastExposure(expUpdate, scope, row.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed updating experiment: %w", err)
		}

		cohUpdate := tx.Cohort.UpdateOneID(row.CohortID)
		switch scope {
		case domain.ScopeStaging:
			cohUpdate.SetLastStagingExposureID(row.ID)
		default:
			cohUpdate.SetLastProductionExposureID(row.ID)
		}
		if err := cohUpdate.Exec(ctx); err != nil {
			return fmt.Errorf("failed updating cohort: %w", err)
		}

		if err := tx.Subject.UpdateOneID(subjectID).SetLastExposureID(row.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed updating subject: %w", err)
		}

		result = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateConversion records that an exposed subject completed the goal.
// Conversions require a prior exposure but are never gated on the
// experiment being active: long-finished experiments keep collecting.
// The first recorded value is authoritative; repeats only advance
// last_seen_at.
func (s *Service) CreateConversion(ctx context.Context, userID int, experimentName, subjectName string, scope domain.Scope, value *float64) (*ent.Conversion, error) {
	owner, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed loading user: %w", err)
	}

	exp, err := s.db.Experiment.
		Query().
		Where(experiment.UserIDEQ(userID), experiment.NameEQ(experimentName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("experiment")
		}
		return nil, fmt.Errorf("failed loading experiment: %w", err)
	}

	subj, err := s.db.Subject.
		Query().
		Where(
			subject.AccountIDEQ(owner.AccountID),
			subject.NameEQ(subjectName),
			subject.ScopeEQ(scope),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("subject")
		}
		return nil, fmt.Errorf("failed loading subject: %w", err)
	}

	expo, err := s.db.Exposure.
		Query().
		Where(
			exposure.SubjectIDEQ(subj.ID),
			exposure.ExperimentIDEQ(exp.ID),
			exposure.ScopeEQ(scope),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("exposure")
		}
		return nil, fmt.Errorf("failed loading exposure: %w", err)
	}

	now := s.now()
	var result *ent.Conversion
	err = database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		create := tx.Conversion.
			Create().
			SetExposureID(expo.ID).
			SetScope(scope).
			SetCreatedAt(now).
			SetLastSeenAt(now)
		if value != nil {
			create.SetValue(*value)
		}
		// value is deliberately absent from the conflict clause: the
		// first write wins and repeats cannot overwrite it.
		conversionID, err := create.
			OnConflictColumns(conversion.FieldExposureID, conversion.FieldScope).
			Update(func(u *ent.ConversionUpsert) {
				u.SetLastSeenAt(now)
			}).
			ID(ctx)
		if err != nil {
			return fmt.Errorf("failed upserting conversion: %w", err)
		}

		row, err := tx.Conversion.Get(ctx, conversionID)
		if err != nil {
			return fmt.Errorf("failed reading back conversion: %w", err)
		}

		expUpdate := tx.Experiment.UpdateOneID(exp.ID)
		if err := setLastConversion(expUpdate, scope, row.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed updating experiment: %w", err)
		}

		cohUpdate := tx.Cohort.UpdateOneID(expo.CohortID)
		switch scope {
		case domain.ScopeStaging:
			cohUpdate.SetLastStagingConversionID(row.ID)
		default:
			cohUpdate.SetLastProductionConversionID(row.ID)
		}
		if err := cohUpdate.Exec(ctx); err != nil {
			return fmt.Errorf("failed updating cohort: %w", err)
		}

		if err := tx.Subject.UpdateOneID(subj.ID).SetLastConversionID(row.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed updating subject: %w", err)
		}

		result = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// exposureExists reports whether the (subject, experiment, scope)
// triple already has an exposure row.
func (s *Service) exposureExists(ctx context.Context, accountID, experimentID int, subjectName string, scope domain.Scope) (bool, error) {
	exists, err := s.db.Exposure.
		Query().
		Where(
			exposure.ExperimentIDEQ(experimentID),
			exposure.ScopeEQ(scope),
			exposure.HasSubjectWith(
				subject.AccountIDEQ(accountID),
				subject.NameEQ(subjectName),
				subject.ScopeEQ(scope),
			),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed checking for existing exposure: %w", err)
	}
	return exists, nil
}

func setLastExposure(u *ent.ExperimentUpdateOne, scope domain.Scope, exposureID int) *ent.ExperimentUpdateOne {
	if scope == domain.ScopeStaging {
		return u.SetLastStagingExposureID(exposureID)
	}
	return u.SetLastProductionExposureID(exposureID)
}

func setLastConversion(u *ent.ExperimentUpdateOne, scope domain.Scope, conversionID int) *ent.ExperimentUpdateOne {
	if scope == domain.ScopeStaging {
		return u.SetLastStagingConversionID(conversionID)
	}
	return u.SetLastProductionConversionID(conversionID)
}
