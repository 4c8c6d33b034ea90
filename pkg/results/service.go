package results

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experimentresult"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/experiments"
)

// SnapshotVersion tags the persisted result payload so readers can
// migrate old snapshots if the shape ever changes.
const SnapshotVersion = "v1"

// Snapshot is the persisted, versioned output of one calculator run
// for an (experiment, scope) pair.
type Snapshot struct {
	Experiment  string          `json:"experiment"`
	Scope       domain.Scope    `json:"scope"`
	Subjects    int             `json:"subjects"`
	Table       []CohortSummary `json:"table"`
	PValue      *float64        `json:"p_value"`
	Significant *bool           `json:"significant"`
	Version     string          `json:"version"`
	RanAt       time.Time       `json:"ran_at"`
}

// Service loads experiment data, runs the calculator, and persists the
// snapshot.
type Service struct {
	db  *ent.Client
	now func() time.Time
}

// NewService creates a new results service
func NewService(db *ent.Client) *Service {
	return &Service{db: db, now: time.Now}
}

// Run computes and persists the result snapshot for the experiment in
// the given scope, overwriting any previous snapshot for that pair.
// Experiments with no subjects in the scope are rejected.
func (s *Service) Run(ctx context.Context, exp *ent.Experiment, scope domain.Scope) (*Snapshot, error) {
	if experiments.SubjectsCounter(exp, scope) == 0 {
		return nil, domain.NewInsufficientDataError()
	}

	rows, err := s.loadObservations(ctx, exp.ID, scope)
	if err != nil {
		return nil, err
	}

	analysis := Calculate(rows)
	snapshot := &Snapshot{
		Experiment:  exp.Name,
		Scope:       scope,
		Subjects:    analysis.Subjects,
		Table:       analysis.Table,
		PValue:      analysis.PValue,
		Significant: analysis.Significant,
		Version:     SnapshotVersion,
		RanAt:       s.now(),
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed encoding snapshot: %w", err)
	}

	err = s.db.ExperimentResult.
		Create().
		SetExperimentID(exp.ID).
		SetScope(scope).
		SetVersion(SnapshotVersion).
		SetFields(payload).
		SetRanAt(snapshot.RanAt).
		OnConflictColumns(experimentresult.FieldExperimentID, experimentresult.FieldScope).
		Update(func(u *ent.ExperimentResultUpsert) {
			u.SetVersion(SnapshotVersion)
			u.SetFields(payload)
			u.SetRanAt(snapshot.RanAt)
			u.SetUpdatedAt(snapshot.RanAt)
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed persisting snapshot: %w", err)
	}

	return snapshot, nil
}

// Last returns the most recently persisted snapshot for the experiment
// and scope, if any.
func (s *Service) Last(ctx context.Context, experimentID int, scope domain.Scope) (*Snapshot, error) {
	row, err := s.db.ExperimentResult.
		Query().
		Where(
			experimentresult.ExperimentIDEQ(experimentID),
			experimentresult.ScopeEQ(scope),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("result")
		}
		return nil, fmt.Errorf("failed loading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(row.Fields, &snapshot); err != nil {
		return nil, fmt.Errorf("failed decoding snapshot: %w", err)
	}
	return &snapshot, nil
}

// loadObservations joins exposures to their cohort and (optional)
// conversion for the experiment and scope. An exposure with a
// conversion row counts as converted.
func (s *Service) loadObservations(ctx context.Context, experimentID int, scope domain.Scope) ([]Observation, error) {
	exposures, err := s.db.Exposure.
		Query().
		Where(
			exposure.ExperimentIDEQ(experimentID),
			exposure.ScopeEQ(scope),
		).
		WithCohort().
		WithConversions(func(q *ent.ConversionQuery) {
			q.Where(conversion.ScopeEQ(scope))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed loading exposures: %w", err)
	}

	rows := make([]Observation, 0, len(exposures))
	for _, e := range exposures {
		row := Observation{Cohort: e.Edges.Cohort.Name}
		if len(e.Edges.Conversions) > 0 {
			row.Converted = 1
			row.Value = e.Edges.Conversions[0].Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
