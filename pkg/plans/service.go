package plans

import (
	"context"
	"fmt"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/account"
	"github.com/tjwaterman99/quicksplit-api/ent/plan"
)

// PlanSpec describes one entry of the built-in plan catalog.
type PlanSpec struct {
	Name                     string
	PriceInCents             int
	MaxSubjectsPerExperiment int
	MaxActiveExperiments     int
}

// Catalog is the built-in plan catalog. New accounts start on free.
var Catalog = []PlanSpec{
	{Name: "free", PriceInCents: 0, MaxSubjectsPerExperiment: 5000, MaxActiveExperiments: 3},
	{Name: "developer", PriceInCents: 100 * 50, MaxSubjectsPerExperiment: 50000, MaxActiveExperiments: 10},
	{Name: "team", PriceInCents: 100 * 250, MaxSubjectsPerExperiment: 100000, MaxActiveExperiments: 25},
	{Name: "custom", PriceInCents: 100 * 1000, MaxSubjectsPerExperiment: 100000, MaxActiveExperiments: 25},
}

// Service resolves plan limits for accounts
type Service struct {
	db *ent.Client
}

// NewService creates a new plans service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Ensure seeds the plan catalog, updating limits in place when they
// have changed. Safe to run on every boot.
func (s *Service) Ensure(ctx context.Context) error {
	for _, spec := range Catalog {
		err := s.db.Plan.
			Create().
			SetName(spec.Name).
			SetPriceInCents(spec.PriceInCents).
			SetMaxSubjectsPerExperiment(spec.MaxSubjectsPerExperiment).
			SetMaxActiveExperiments(spec.MaxActiveExperiments).
			OnConflictColumns(plan.FieldName).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed seeding plan %q: %w", spec.Name, err)
		}
	}
	return nil
}

// Free returns the free plan.
func (s *Service) Free(ctx context.Context) (*ent.Plan, error) {
	p, err := s.db.Plan.Query().Where(plan.NameEQ("free")).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed loading free plan: %w", err)
	}
	return p, nil
}

// ForAccount returns the plan an account is subscribed to.
func (s *Service) ForAccount(ctx context.Context, accountID int) (*ent.Plan, error) {
	p, err := s.db.Plan.
		Query().
		Where(plan.HasAccountsWith(account.IDEQ(accountID))).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed loading plan for account %d: %w", accountID, err)
	}
	return p, nil
}
