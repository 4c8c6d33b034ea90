// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
)

// CohortUpdate is the builder for updating Cohort entities.
type CohortUpdate struct {
	config
	hooks    []Hook
	mutation *CohortMutation
}

// Where appends a list predicates to the CohortUpdate builder.
func (_u *CohortUpdate) Where(ps ...predicate.Cohort) *CohortUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *CohortUpdate) SetExperimentID(v int) *CohortUpdate {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *CohortUpdate) SetNillableExperimentID(v *int) *CohortUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CohortUpdate) SetName(v string) *CohortUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CohortUpdate) SetNillableName(v *string) *CohortUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (_u *CohortUpdate) SetLastProductionExposureID(v int) *CohortUpdate {
	_u.mutation.ResetLastProductionExposureID()
	_u.mutation.SetLastProductionExposureID(v)
	return _u
}

// SetNillableLastProductionExposureID sets the "last_production_exposure_id" field if the given value is not nil.
func (_u *CohortUpdate) SetNillableLastProductionExposureID(v *int) *CohortUpdate {
	if v != nil {
		_u.SetLastProductionExposureID(*v)
	}
	return _u
}

// AddLastProductionExposureID adds value to the "last_production_exposure_id" field.
func (_u *CohortUpdate) AddLastProductionExposureID(v int) *CohortUpdate {
	_u.mutation.AddLastProductionExposureID(v)
	return _u
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (_u *CohortUpdate) ClearLastProductionExposureID() *CohortUpdate {
	_u.mutation.ClearLastProductionExposureID()
	return _u
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (_u *CohortUpdate) SetLastStagingExposureID(v int) *CohortUpdate {
	_u.mutation.ResetLastStagingExposureID()
	_u.mutation.SetLastStagingExposureID(v)
	return _u
}

// SetNillableLastStagingExposureID sets the "last_staging_exposure_id" field if the given value is not nil.
func (_u *CohortUpdate) SetNillableLastStagingExposureID(v *int) *CohortUpdate {
	if v != nil {
		_u.SetLastStagingExposureID(*v)
	}
	return _u
}

// AddLastStagingExposureID adds value to the "last_staging_exposure_id" field.
func (_u *CohortUpdate) AddLastStagingExposureID(v int) *CohortUpdate {
	_u.mutation.AddLastStagingExposureID(v)
	return _u
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (_u *CohortUpdate) ClearLastStagingExposureID() *CohortUpdate {
	_u.mutation.ClearLastStagingExposureID()
	return _u
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (_u *CohortUpdate) SetLastProductionConversionID(v int) *CohortUpdate {
	_u.mutation.ResetLastProductionConversionID()
	_u.mutation.SetLastProductionConversionID(v)
	return _u
}

// SetNillableLastProductionConversionID sets the "last_production_conversion_id" field if the given value is not nil.
func (_u *CohortUpdate) SetNillableLastProductionConversionID(v *int) *CohortUpdate {
	if v != nil {
		_u.SetLastProductionConversionID(*v)
	}
	return _u
}

// AddLastProductionConversionID adds value to the "last_production_conversion_id" field.
func (_u *CohortUpdate) AddLastProductionConversionID(v int) *CohortUpdate {
	_u.mutation.AddLastProductionConversionID(v)
	return _u
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (_u *CohortUpdate) ClearLastProductionConversionID() *CohortUpdate {
	_u.mutation.ClearLastProductionConversionID()
	return _u
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (_u *CohortUpdate) SetLastStagingConversionID(v int) *CohortUpdate {
	_u.mutation.ResetLastStagingConversionID()
	_u.mutation.SetLastStagingConversionID(v)
	return _u
}

// SetNillableLastStagingConversionID sets the "last_staging_conversion_id" field if the given value is not nil.
func (_u *CohortUpdate) SetNillableLastStagingConversionID(v *int) *CohortUpdate {
	if v != nil {
		_u.SetLastStagingConversionID(*v)
	}
	return _u
}

// AddLastStagingConversionID adds value to the "last_staging_conversion_id" field.
func (_u *CohortUpdate) AddLastStagingConversionID(v int) *CohortUpdate {
	_u.mutation.AddLastStagingConversionID(v)
	return _u
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (_u *CohortUpdate) ClearLastStagingConversionID() *CohortUpdate {
	_u.mutation.ClearLastStagingConversionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CohortUpdate) SetUpdatedAt(v time.Time) *CohortUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *CohortUpdate) SetExperiment(v *Experiment) *CohortUpdate {
	return _u.SetExperimentID(v.ID)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_u *CohortUpdate) AddExposureIDs(ids ...int) *CohortUpdate {
	_u.mutation.AddExposureIDs(ids...)
	return _u
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_u *CohortUpdate) AddExposures(v ...*Exposure) *CohortUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExposureIDs(ids...)
}

// Mutation returns the CohortMutation object of the builder.
func (_u *CohortUpdate) Mutation() *CohortMutation {
	return _u.mutation
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *CohortUpdate) ClearExperiment() *CohortUpdate {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearExposures clears all "exposures" edges to the Exposure entity.
func (_u *CohortUpdate) ClearExposures() *CohortUpdate {
	_u.mutation.ClearExposures()
	return _u
}

// RemoveExposureIDs removes the "exposures" edge to Exposure entities by IDs.
func (_u *CohortUpdate) RemoveExposureIDs(ids ...int) *CohortUpdate {
	_u.mutation.RemoveExposureIDs(ids...)
	return _u
}

// RemoveExposures removes "exposures" edges to Exposure entities.
func (_u *CohortUpdate) RemoveExposures(v ...*Exposure) *CohortUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExposureIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CohortUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CohortUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CohortUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CohortUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CohortUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cohort.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CohortUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := cohort.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Cohort.name": %w`, err)}
		}
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cohort.experiment"`)
	}
	return nil
}

func (_u *CohortUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cohort.Table, cohort.Columns, sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cohort.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastProductionExposureID(); ok {
		_spec.SetField(cohort.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionExposureID(); ok {
		_spec.AddField(cohort.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionExposureIDCleared() {
		_spec.ClearField(cohort.FieldLastProductionExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingExposureID(); ok {
		_spec.SetField(cohort.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingExposureID(); ok {
		_spec.AddField(cohort.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingExposureIDCleared() {
		_spec.ClearField(cohort.FieldLastStagingExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastProductionConversionID(); ok {
		_spec.SetField(cohort.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionConversionID(); ok {
		_spec.AddField(cohort.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionConversionIDCleared() {
		_spec.ClearField(cohort.FieldLastProductionConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingConversionID(); ok {
		_spec.SetField(cohort.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingConversionID(); ok {
		_spec.AddField(cohort.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingConversionIDCleared() {
		_spec.ClearField(cohort.FieldLastStagingConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cohort.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperimentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cohort.ExperimentTable,
			Columns: []string{cohort.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cohort.ExperimentTable,
			Columns: []string{cohort.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExposuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cohort.ExposuresTable,
			Columns: []string{cohort.ExposuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExposuresIDs(); len(nodes) > 0 && !_u.mutation.ExposuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cohort.ExposuresTable,
			Columns: []string{cohort.ExposuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExposuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cohort.ExposuresTable,
			Columns: []string{cohort.ExposuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cohort.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CohortUpdateOne is the builder for updating a single Cohort entity.
type CohortUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CohortMutation
}

// SetExperimentID sets the "experiment_id" field.
func (_u *CohortUpdateOne) SetExperimentID(v int) *CohortUpdateOne {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *CohortUpdateOne) SetNillableExperimentID(v *int) *CohortUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CohortUpdateOne) SetName(v string) *CohortUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CohortUpdateOne) SetNillableName(v *string) *CohortUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (_u *CohortUpdateOne) SetLastProductionExposureID(v int) *CohortUpdateOne {
	_u.mutation.ResetLastProductionExposureID()
	_u.mutation.SetLastProductionExposureID(v)
	return _u
}

// SetNillableLastProductionExposureID sets the "last_production_exposure_id" field if the given value is not nil.
func (_u *CohortUpdateOne) SetNillableLastProductionExposureID(v *int) *CohortUpdateOne {
	if v != nil {
		_u.SetLastProductionExposureID(*v)
	}
	return _u
}

// AddLastProductionExposureID adds value to the "last_production_exposure_id" field.
func (_u *CohortUpdateOne) AddLastProductionExposureID(v int) *CohortUpdateOne {
	_u.mutation.AddLastProductionExposureID(v)
	return _u
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (_u *CohortUpdateOne) ClearLastProductionExposureID() *CohortUpdateOne {
	_u.mutation.ClearLastProductionExposureID()
	return _u
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (_u *CohortUpdateOne) SetLastStagingExposureID(v int) *CohortUpdateOne {
	_u.mutation.ResetLastStagingExposureID()
	_u.mutation.SetLastStagingExposureID(v)
	return _u
}

// SetNillableLastStagingExposureID sets the "last_staging_exposure_id" field if the given value is not nil.
func (_u *CohortUpdateOne) SetNillableLastStagingExposureID(v *int) *CohortUpdateOne {
	if v != nil {
		_u.SetLastStagingExposureID(*v)
	}
	return _u
}

// AddLastStagingExposureID adds value to the "last_staging_exposure_id" field.
func (_u *CohortUpdateOne) AddLastStagingExposureID(v int) *CohortUpdateOne {
	_u.mutation.AddLastStagingExposureID(v)
	return _u
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (_u *CohortUpdateOne) ClearLastStagingExposureID() *CohortUpdateOne {
	_u.mutation.ClearLastStagingExposureID()
	return _u
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (_u *CohortUpdateOne) SetLastProductionConversionID(v int) *CohortUpdateOne {
	_u.mutation.ResetLastProductionConversionID()
	_u.mutation.SetLastProductionConversionID(v)
	return _u
}

// SetNillableLastProductionConversionID sets the "last_production_conversion_id" field if the given value is not nil.
func (_u *CohortUpdateOne) SetNillableLastProductionConversionID(v *int) *CohortUpdateOne {
	if v != nil {
		_u.SetLastProductionConversionID(*v)
	}
	return _u
}

// AddLastProductionConversionID adds value to the "last_production_conversion_id" field.
func (_u *CohortUpdateOne) AddLastProductionConversionID(v int) *CohortUpdateOne {
	_u.mutation.AddLastProductionConversionID(v)
	return _u
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (_u *CohortUpdateOne) ClearLastProductionConversionID() *CohortUpdateOne {
	_u.mutation.ClearLastProductionConversionID()
	return _u
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (_u *CohortUpdateOne) SetLastStagingConversionID(v int) *CohortUpdateOne {
	_u.mutation.ResetLastStagingConversionID()
	_u.mutation.SetLastStagingConversionID(v)
	return _u
}

// SetNillableLastStagingConversionID sets the "last_staging_conversion_id" field if the given value is not nil.
func (_u *CohortUpdateOne) SetNillableLastStagingConversionID(v *int) *CohortUpdateOne {
	if v != nil {
		_u.SetLastStagingConversionID(*v)
	}
	return _u
}

// AddLastStagingConversionID adds value to the "last_staging_conversion_id" field.
func (_u *CohortUpdateOne) AddLastStagingConversionID(v int) *CohortUpdateOne {
	_u.mutation.AddLastStagingConversionID(v)
	return _u
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (_u *CohortUpdateOne) ClearLastStagingConversionID() *CohortUpdateOne {
	_u.mutation.ClearLastStagingConversionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CohortUpdateOne) SetUpdatedAt(v time.Time) *CohortUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *CohortUpdateOne) SetExperiment(v *Experiment) *CohortUpdateOne {
	return _u.SetExperimentID(v.ID)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_u *CohortUpdateOne) AddExposureIDs(ids ...int) *CohortUpdateOne {
	_u.mutation.AddExposureIDs(ids...)
	return _u
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_u *CohortUpdateOne) AddExposures(v ...*Exposure) *CohortUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExposureIDs(ids...)
}

// Mutation returns the CohortMutation object of the builder.
func (_u *CohortUpdateOne) Mutation() *CohortMutation {
	return _u.mutation
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *CohortUpdateOne) ClearExperiment() *CohortUpdateOne {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearExposures clears all "exposures" edges to the Exposure entity.
func (_u *CohortUpdateOne) ClearExposures() *CohortUpdateOne {
	_u.mutation.ClearExposures()
	return _u
}

// RemoveExposureIDs removes the "exposures" edge to Exposure entities by IDs.
func (_u *CohortUpdateOne) RemoveExposureIDs(ids ...int) *CohortUpdateOne {
	_u.mutation.RemoveExposureIDs(ids...)
	return _u
}

// RemoveExposures removes "exposures" edges to Exposure entities.
func (_u *CohortUpdateOne) RemoveExposures(v ...*Exposure) *CohortUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExposureIDs(ids...)
}

// Where appends a list predicates to the CohortUpdate builder.
func (_u *CohortUpdateOne) Where(ps ...predicate.Cohort) *CohortUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CohortUpdateOne) Select(field string, fields ...string) *CohortUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Cohort entity.
func (_u *CohortUpdateOne) Save(ctx context.Context) (*Cohort, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CohortUpdateOne) SaveX(ctx context.Context) *Cohort {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CohortUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CohortUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CohortUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cohort.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CohortUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := cohort.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Cohort.name": %w`, err)}
		}
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cohort.experiment"`)
	}
	return nil
}

func (_u *CohortUpdateOne) sqlSave(ctx context.Context) (_node *Cohort, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cohort.Table, cohort.Columns, sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Cohort.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cohort.FieldID)
		for _, f := range fields {
			if !cohort.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cohort.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cohort.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastProductionExposureID(); ok {
		_spec.SetField(cohort.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionExposureID(); ok {
		_spec.AddField(cohort.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionExposureIDCleared() {
		_spec.ClearField(cohort.FieldLastProductionExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingExposureID(); ok {
		_spec.SetField(cohort.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingExposureID(); ok {
		_spec.AddField(cohort.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingExposureIDCleared() {
		_spec.ClearField(cohort.FieldLastStagingExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastProductionConversionID(); ok {
		_spec.SetField(cohort.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionConversionID(); ok {
		_spec.AddField(cohort.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionConversionIDCleared() {
		_spec.ClearField(cohort.FieldLastProductionConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingConversionID(); ok {
		_spec.SetField(cohort.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingConversionID(); ok {
		_spec.AddField(cohort.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingConversionIDCleared() {
		_spec.ClearField(cohort.FieldLastStagingConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cohort.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperimentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cohort.ExperimentTable,
			Columns: []string{cohort.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cohort.ExperimentTable,
			Columns: []string{cohort.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExposuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cohort.ExposuresTable,
			Columns: []string{cohort.ExposuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExposuresIDs(); len(nodes) > 0 && !_u.mutation.ExposuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cohort.ExposuresTable,
			Columns: []string{cohort.ExposuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExposuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cohort.ExposuresTable,
			Columns: []string{cohort.ExposuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Cohort{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cohort.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
