package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/pkg/database"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
)

// Service handles experiment lifecycle: creation, activation, and the
// per-plan cap on concurrently active experiments.
type Service struct {
	db    *ent.Client
	plans *plans.Service
	now   func() time.Time
}

// NewService creates a new experiments service
func NewService(db *ent.Client, plansService *plans.Service) *Service {
	return &Service{db: db, plans: plansService, now: time.Now}
}

// Create creates a new experiment for the user. The experiment is
// active immediately; if the user is already at the plan's active
// limit, the least-recently-activated experiment is deactivated to
// make room.
func (s *Service) Create(ctx context.Context, userID int, name string) (*ent.Experiment, error) {
	owner, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed loading user: %w", err)
	}

	plan, err := s.plans.ForAccount(ctx, owner.AccountID)
	if err != nil {
		return nil, err
	}

	var exp *ent.Experiment
	err = database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		if err := s.evictForActivation(ctx, tx, userID, plan.MaxActiveExperiments); err != nil {
			return err
		}

		exp, err = tx.Experiment.
			Create().
			SetUserID(userID).
			SetName(name).
			SetActive(true).
			SetLastActivatedAt(s.now()).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return domain.NewDuplicateNameError(name)
			}
			return fmt.Errorf("failed creating experiment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// Get returns the user's experiment with the given name.
func (s *Service) Get(ctx context.Context, userID int, name string) (*ent.Experiment, error) {
	exp, err := s.db.Experiment.
		Query().
		Where(experiment.UserIDEQ(userID), experiment.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("experiment")
		}
		return nil, fmt.Errorf("failed loading experiment: %w", err)
	}
	return exp, nil
}

// List returns all of the user's experiments, most recently created first.
func (s *Service) List(ctx context.Context, userID int) ([]*ent.Experiment, error) {
	exps, err := s.db.Experiment.
		Query().
		Where(experiment.UserIDEQ(userID)).
		Order(ent.Desc(experiment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed listing experiments: %w", err)
	}
	return exps, nil
}

// Activate turns an experiment on. No-op when already active. When the
// owner is at the plan's limit, the least-recently-activated active
// experiment is deactivated first; at most one experiment is ever
// evicted per call.
func (s *Service) Activate(ctx context.Context, experimentID int) (*ent.Experiment, error) {
	exp, err := s.db.Experiment.Get(ctx, experimentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("experiment")
		}
		return nil, fmt.Errorf("failed loading experiment: %w", err)
	}
	if exp.Active {
		return exp, nil
	}

	owner, err := s.db.User.Get(ctx, exp.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed loading user: %w", err)
	}
	plan, err := s.plans.ForAccount(ctx, owner.AccountID)
	if err != nil {
		return nil, err
	}

	err = database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		if err := s.evictForActivation(ctx, tx, exp.UserID, plan.MaxActiveExperiments); err != nil {
			return err
		}
		exp, err = tx.Experiment.
			UpdateOneID(experimentID).
			SetActive(true).
			SetLastActivatedAt(s.now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed activating experiment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// Deactivate turns an experiment off. Counters are untouched so results
// and conversions for finished experiments keep working.
func (s *Service) Deactivate(ctx context.Context, experimentID int) (*ent.Experiment, error) {
	exp, err := s.db.Experiment.
		UpdateOneID(experimentID).
		SetActive(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("experiment")
		}
		return nil, fmt.Errorf("failed deactivating experiment: %w", err)
	}
	return exp, nil
}

// Full reports whether the experiment's subject counter for the scope
// has reached the plan limit.
func Full(exp *ent.Experiment, scope domain.Scope, plan *ent.Plan) bool {
	return SubjectsCounter(exp, scope) >= plan.MaxSubjectsPerExperiment
}

// SubjectsCounter returns the scope-specific subject counter.
func SubjectsCounter(exp *ent.Experiment, scope domain.Scope) int {
	if scope == domain.ScopeStaging {
		return exp.SubjectsCounterStaging
	}
	return exp.SubjectsCounterProduction
}

// evictForActivation deactivates the least-recently-activated active
// experiment when the user is at or over the plan limit, making room
// for one more activation.
func (s *Service) evictForActivation(ctx context.Context, tx *ent.Tx, userID int, maxActive int) error {
	active, err := tx.Experiment.
		Query().
		Where(experiment.UserIDEQ(userID), experiment.ActiveEQ(true)).
		Order(ent.Desc(experiment.FieldLastActivatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed listing active experiments: %w", err)
	}
	if len(active) < maxActive {
		return nil
	}

	oldest := active[len(active)-1]
	if err := tx.Experiment.UpdateOneID(oldest.ID).SetActive(false).Exec(ctx); err != nil {
		return fmt.Errorf("failed deactivating experiment %d: %w", oldest.ID, err)
	}
	return nil
}
