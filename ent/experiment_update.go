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
	"github.com/tjwaterman99/quicksplit-api/ent/user"
)

// ExperimentUpdate is the builder for updating Experiment entities.
type ExperimentUpdate struct {
	config
	hooks    []Hook
	mutation *ExperimentMutation
}

// Where appends a list predicates to the ExperimentUpdate builder.
func (_u *ExperimentUpdate) Where(ps ...predicate.Experiment) *ExperimentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExperimentUpdate) SetUserID(v int) *ExperimentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableUserID(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExperimentUpdate) SetName(v string) *ExperimentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableName(v *string) *ExperimentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ExperimentUpdate) SetActive(v bool) *ExperimentUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableActive(v *bool) *ExperimentUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastActivatedAt sets the "last_activated_at" field.
func (_u *ExperimentUpdate) SetLastActivatedAt(v time.Time) *ExperimentUpdate {
	_u.mutation.SetLastActivatedAt(v)
	return _u
}

// SetNillableLastActivatedAt sets the "last_activated_at" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableLastActivatedAt(v *time.Time) *ExperimentUpdate {
	if v != nil {
		_u.SetLastActivatedAt(*v)
	}
	return _u
}

// SetSubjectsCounterProduction sets the "subjects_counter_production" field.
func (_u *ExperimentUpdate) SetSubjectsCounterProduction(v int) *ExperimentUpdate {
	_u.mutation.ResetSubjectsCounterProduction()
	_u.mutation.SetSubjectsCounterProduction(v)
	return _u
}

// SetNillableSubjectsCounterProduction sets the "subjects_counter_production" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableSubjectsCounterProduction(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetSubjectsCounterProduction(*v)
	}
	return _u
}

// AddSubjectsCounterProduction adds value to the "subjects_counter_production" field.
func (_u *ExperimentUpdate) AddSubjectsCounterProduction(v int) *ExperimentUpdate {
	_u.mutation.AddSubjectsCounterProduction(v)
	return _u
}

// SetSubjectsCounterStaging sets the "subjects_counter_staging" field.
func (_u *ExperimentUpdate) SetSubjectsCounterStaging(v int) *ExperimentUpdate {
	_u.mutation.ResetSubjectsCounterStaging()
	_u.mutation.SetSubjectsCounterStaging(v)
	return _u
}

// SetNillableSubjectsCounterStaging sets the "subjects_counter_staging" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableSubjectsCounterStaging(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetSubjectsCounterStaging(*v)
	}
	return _u
}

// AddSubjectsCounterStaging adds value to the "subjects_counter_staging" field.
func (_u *ExperimentUpdate) AddSubjectsCounterStaging(v int) *ExperimentUpdate {
	_u.mutation.AddSubjectsCounterStaging(v)
	return _u
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (_u *ExperimentUpdate) SetLastProductionExposureID(v int) *ExperimentUpdate {
	_u.mutation.ResetLastProductionExposureID()
	_u.mutation.SetLastProductionExposureID(v)
	return _u
}

// SetNillableLastProductionExposureID sets the "last_production_exposure_id" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableLastProductionExposureID(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetLastProductionExposureID(*v)
	}
	return _u
}

// AddLastProductionExposureID adds value to the "last_production_exposure_id" field.
func (_u *ExperimentUpdate) AddLastProductionExposureID(v int) *ExperimentUpdate {
	_u.mutation.AddLastProductionExposureID(v)
	return _u
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (_u *ExperimentUpdate) ClearLastProductionExposureID() *ExperimentUpdate {
	_u.mutation.ClearLastProductionExposureID()
	return _u
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (_u *ExperimentUpdate) SetLastStagingExposureID(v int) *ExperimentUpdate {
	_u.mutation.ResetLastStagingExposureID()
	_u.mutation.SetLastStagingExposureID(v)
	return _u
}

// SetNillableLastStagingExposureID sets the "last_staging_exposure_id" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableLastStagingExposureID(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetLastStagingExposureID(*v)
	}
	return _u
}

// AddLastStagingExposureID adds value to the "last_staging_exposure_id" field.
func (_u *ExperimentUpdate) AddLastStagingExposureID(v int) *ExperimentUpdate {
	_u.mutation.AddLastStagingExposureID(v)
	return _u
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (_u *ExperimentUpdate) ClearLastStagingExposureID() *ExperimentUpdate {
	_u.mutation.ClearLastStagingExposureID()
	return _u
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (_u *ExperimentUpdate) SetLastProductionConversionID(v int) *ExperimentUpdate {
	_u.mutation.ResetLastProductionConversionID()
	_u.mutation.SetLastProductionConversionID(v)
	return _u
}

// SetNillableLastProductionConversionID sets the "last_production_conversion_id" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableLastProductionConversionID(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetLastProductionConversionID(*v)
	}
	return _u
}

// AddLastProductionConversionID adds value to the "last_production_conversion_id" field.
func (_u *ExperimentUpdate) AddLastProductionConversionID(v int) *ExperimentUpdate {
	_u.mutation.AddLastProductionConversionID(v)
	return _u
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (_u *ExperimentUpdate) ClearLastProductionConversionID() *ExperimentUpdate {
	_u.mutation.ClearLastProductionConversionID()
	return _u
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (_u *ExperimentUpdate) SetLastStagingConversionID(v int) *ExperimentUpdate {
	_u.mutation.ResetLastStagingConversionID()
	_u.mutation.SetLastStagingConversionID(v)
	return _u
}

// SetNillableLastStagingConversionID sets the "last_staging_conversion_id" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableLastStagingConversionID(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetLastStagingConversionID(*v)
	}
	return _u
}

// AddLastStagingConversionID adds value to the "last_staging_conversion_id" field.
func (_u *ExperimentUpdate) AddLastStagingConversionID(v int) *ExperimentUpdate {
	_u.mutation.AddLastStagingConversionID(v)
	return _u
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (_u *ExperimentUpdate) ClearLastStagingConversionID() *ExperimentUpdate {
	_u.mutation.ClearLastStagingConversionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentUpdate) SetUpdatedAt(v time.Time) *ExperimentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExperimentUpdate) SetUser(v *User) *ExperimentUpdate {
	return _u.SetUserID(v.ID)
}

// AddCohortIDs adds the "cohorts" edge to the Cohort entity by IDs.
func (_u *ExperimentUpdate) AddCohortIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.AddCohortIDs(ids...)
	return _u
}

// AddCohorts adds the "cohorts" edges to the Cohort entity.
func (_u *ExperimentUpdate) AddCohorts(v ...*Cohort) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCohortIDs(ids...)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_u *ExperimentUpdate) AddExposureIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.AddExposureIDs(ids...)
	return _u
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_u *ExperimentUpdate) AddExposures(v ...*Exposure) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExposureIDs(ids...)
}

// Mutation returns the ExperimentMutation object of the builder.
func (_u *ExperimentUpdate) Mutation() *ExperimentMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExperimentUpdate) ClearUser() *ExperimentUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearCohorts clears all "cohorts" edges to the Cohort entity.
func (_u *ExperimentUpdate) ClearCohorts() *ExperimentUpdate {
	_u.mutation.ClearCohorts()
	return _u
}

// RemoveCohortIDs removes the "cohorts" edge to Cohort entities by IDs.
func (_u *ExperimentUpdate) RemoveCohortIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.RemoveCohortIDs(ids...)
	return _u
}

// RemoveCohorts removes "cohorts" edges to Cohort entities.
func (_u *ExperimentUpdate) RemoveCohorts(v ...*Cohort) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCohortIDs(ids...)
}

// ClearExposures clears all "exposures" edges to the Exposure entity.
func (_u *ExperimentUpdate) ClearExposures() *ExperimentUpdate {
	_u.mutation.ClearExposures()
	return _u
}

// RemoveExposureIDs removes the "exposures" edge to Exposure entities by IDs.
func (_u *ExperimentUpdate) RemoveExposureIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.RemoveExposureIDs(ids...)
	return _u
}

// RemoveExposures removes "exposures" edges to Exposure entities.
func (_u *ExperimentUpdate) RemoveExposures(v ...*Exposure) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExposureIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExperimentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExperimentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experiment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := experiment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Experiment.name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Experiment.user"`)
	}
	return nil
}

func (_u *ExperimentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experiment.Table, experiment.Columns, sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(experiment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(experiment.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActivatedAt(); ok {
		_spec.SetField(experiment.FieldLastActivatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SubjectsCounterProduction(); ok {
		_spec.SetField(experiment.FieldSubjectsCounterProduction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectsCounterProduction(); ok {
		_spec.AddField(experiment.FieldSubjectsCounterProduction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubjectsCounterStaging(); ok {
		_spec.SetField(experiment.FieldSubjectsCounterStaging, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectsCounterStaging(); ok {
		_spec.AddField(experiment.FieldSubjectsCounterStaging, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastProductionExposureID(); ok {
		_spec.SetField(experiment.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionExposureID(); ok {
		_spec.AddField(experiment.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionExposureIDCleared() {
		_spec.ClearField(experiment.FieldLastProductionExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingExposureID(); ok {
		_spec.SetField(experiment.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingExposureID(); ok {
		_spec.AddField(experiment.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingExposureIDCleared() {
		_spec.ClearField(experiment.FieldLastStagingExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastProductionConversionID(); ok {
		_spec.SetField(experiment.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionConversionID(); ok {
		_spec.AddField(experiment.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionConversionIDCleared() {
		_spec.ClearField(experiment.FieldLastProductionConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingConversionID(); ok {
		_spec.SetField(experiment.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingConversionID(); ok {
		_spec.AddField(experiment.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingConversionIDCleared() {
		_spec.ClearField(experiment.FieldLastStagingConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experiment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experiment.UserTable,
			Columns: []string{experiment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experiment.UserTable,
			Columns: []string{experiment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CohortsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.CohortsTable,
			Columns: []string{experiment.CohortsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCohortsIDs(); len(nodes) > 0 && !_u.mutation.CohortsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.CohortsTable,
			Columns: []string{experiment.CohortsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CohortsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.CohortsTable,
			Columns: []string{experiment.CohortsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt),
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
			Table:   experiment.ExposuresTable,
			Columns: []string{experiment.ExposuresColumn},
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
			Table:   experiment.ExposuresTable,
			Columns: []string{experiment.ExposuresColumn},
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
			Table:   experiment.ExposuresTable,
			Columns: []string{experiment.ExposuresColumn},
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
			err = &NotFoundError{experiment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExperimentUpdateOne is the builder for updating a single Experiment entity.
type ExperimentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperimentMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExperimentUpdateOne) SetUserID(v int) *ExperimentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableUserID(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExperimentUpdateOne) SetName(v string) *ExperimentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableName(v *string) *ExperimentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ExperimentUpdateOne) SetActive(v bool) *ExperimentUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableActive(v *bool) *ExperimentUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastActivatedAt sets the "last_activated_at" field.
func (_u *ExperimentUpdateOne) SetLastActivatedAt(v time.Time) *ExperimentUpdateOne {
	_u.mutation.SetLastActivatedAt(v)
	return _u
}

// SetNillableLastActivatedAt sets the "last_activated_at" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableLastActivatedAt(v *time.Time) *ExperimentUpdateOne {
	if v != nil {
		_u.SetLastActivatedAt(*v)
	}
	return _u
}

// SetSubjectsCounterProduction sets the "subjects_counter_production" field.
func (_u *ExperimentUpdateOne) SetSubjectsCounterProduction(v int) *ExperimentUpdateOne {
	_u.mutation.ResetSubjectsCounterProduction()
	_u.mutation.SetSubjectsCounterProduction(v)
	return _u
}

// SetNillableSubjectsCounterProduction sets the "subjects_counter_production" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableSubjectsCounterProduction(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetSubjectsCounterProduction(*v)
	}
	return _u
}

// AddSubjectsCounterProduction adds value to the "subjects_counter_production" field.
func (_u *ExperimentUpdateOne) AddSubjectsCounterProduction(v int) *ExperimentUpdateOne {
	_u.mutation.AddSubjectsCounterProduction(v)
	return _u
}

// SetSubjectsCounterStaging sets the "subjects_counter_staging" field.
func (_u *ExperimentUpdateOne) SetSubjectsCounterStaging(v int) *ExperimentUpdateOne {
	_u.mutation.ResetSubjectsCounterStaging()
	_u.mutation.SetSubjectsCounterStaging(v)
	return _u
}

// SetNillableSubjectsCounterStaging sets the "subjects_counter_staging" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableSubjectsCounterStaging(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetSubjectsCounterStaging(*v)
	}
	return _u
}

// AddSubjectsCounterStaging adds value to the "subjects_counter_staging" field.
func (_u *ExperimentUpdateOne) AddSubjectsCounterStaging(v int) *ExperimentUpdateOne {
	_u.mutation.AddSubjectsCounterStaging(v)
	return _u
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (_u *ExperimentUpdateOne) SetLastProductionExposureID(v int) *ExperimentUpdateOne {
	_u.mutation.ResetLastProductionExposureID()
	_u.mutation.SetLastProductionExposureID(v)
	return _u
}

// SetNillableLastProductionExposureID sets the "last_production_exposure_id" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableLastProductionExposureID(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetLastProductionExposureID(*v)
	}
	return _u
}

// AddLastProductionExposureID adds value to the "last_production_exposure_id" field.
func (_u *ExperimentUpdateOne) AddLastProductionExposureID(v int) *ExperimentUpdateOne {
	_u.mutation.AddLastProductionExposureID(v)
	return _u
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (_u *ExperimentUpdateOne) ClearLastProductionExposureID() *ExperimentUpdateOne {
	_u.mutation.ClearLastProductionExposureID()
	return _u
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (_u *ExperimentUpdateOne) SetLastStagingExposureID(v int) *ExperimentUpdateOne {
	_u.mutation.ResetLastStagingExposureID()
	_u.mutation.SetLastStagingExposureID(v)
	return _u
}

// SetNillableLastStagingExposureID sets the "last_staging_exposure_id" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableLastStagingExposureID(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetLastStagingExposureID(*v)
	}
	return _u
}

// AddLastStagingExposureID adds value to the "last_staging_exposure_id" field.
func (_u *ExperimentUpdateOne) AddLastStagingExposureID(v int) *ExperimentUpdateOne {
	_u.mutation.AddLastStagingExposureID(v)
	return _u
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (_u *ExperimentUpdateOne) ClearLastStagingExposureID() *ExperimentUpdateOne {
	_u.mutation.ClearLastStagingExposureID()
	return _u
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (_u *ExperimentUpdateOne) SetLastProductionConversionID(v int) *ExperimentUpdateOne {
	_u.mutation.ResetLastProductionConversionID()
	_u.mutation.SetLastProductionConversionID(v)
	return _u
}

// SetNillableLastProductionConversionID sets the "last_production_conversion_id" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableLastProductionConversionID(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetLastProductionConversionID(*v)
	}
	return _u
}

// AddLastProductionConversionID adds value to the "last_production_conversion_id" field.
func (_u *ExperimentUpdateOne) AddLastProductionConversionID(v int) *ExperimentUpdateOne {
	_u.mutation.AddLastProductionConversionID(v)
	return _u
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (_u *ExperimentUpdateOne) ClearLastProductionConversionID() *ExperimentUpdateOne {
	_u.mutation.ClearLastProductionConversionID()
	return _u
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (_u *ExperimentUpdateOne) SetLastStagingConversionID(v int) *ExperimentUpdateOne {
	_u.mutation.ResetLastStagingConversionID()
	_u.mutation.SetLastStagingConversionID(v)
	return _u
}

// SetNillableLastStagingConversionID sets the "last_staging_conversion_id" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableLastStagingConversionID(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetLastStagingConversionID(*v)
	}
	return _u
}

// AddLastStagingConversionID adds value to the "last_staging_conversion_id" field.
func (_u *ExperimentUpdateOne) AddLastStagingConversionID(v int) *ExperimentUpdateOne {
	_u.mutation.AddLastStagingConversionID(v)
	return _u
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (_u *ExperimentUpdateOne) ClearLastStagingConversionID() *ExperimentUpdateOne {
	_u.mutation.ClearLastStagingConversionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentUpdateOne) SetUpdatedAt(v time.Time) *ExperimentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExperimentUpdateOne) SetUser(v *User) *ExperimentUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddCohortIDs adds the "cohorts" edge to the Cohort entity by IDs.
func (_u *ExperimentUpdateOne) AddCohortIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.AddCohortIDs(ids...)
	return _u
}

// AddCohorts adds the "cohorts" edges to the Cohort entity.
func (_u *ExperimentUpdateOne) AddCohorts(v ...*Cohort) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCohortIDs(ids...)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_u *ExperimentUpdateOne) AddExposureIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.AddExposureIDs(ids...)
	return _u
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_u *ExperimentUpdateOne) AddExposures(v ...*Exposure) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExposureIDs(ids...)
}

// Mutation returns the ExperimentMutation object of the builder.
func (_u *ExperimentUpdateOne) Mutation() *ExperimentMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExperimentUpdateOne) ClearUser() *ExperimentUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearCohorts clears all "cohorts" edges to the Cohort entity.
func (_u *ExperimentUpdateOne) ClearCohorts() *ExperimentUpdateOne {
	_u.mutation.ClearCohorts()
	return _u
}

// RemoveCohortIDs removes the "cohorts" edge to Cohort entities by IDs.
func (_u *ExperimentUpdateOne) RemoveCohortIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.RemoveCohortIDs(ids...)
	return _u
}

// RemoveCohorts removes "cohorts" edges to Cohort entities.
func (_u *ExperimentUpdateOne) RemoveCohorts(v ...*Cohort) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCohortIDs(ids...)
}

// ClearExposures clears all "exposures" edges to the Exposure entity.
func (_u *ExperimentUpdateOne) ClearExposures() *ExperimentUpdateOne {
	_u.mutation.ClearExposures()
	return _u
}

// RemoveExposureIDs removes the "exposures" edge to Exposure entities by IDs.
func (_u *ExperimentUpdateOne) RemoveExposureIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.RemoveExposureIDs(ids...)
	return _u
}

// RemoveExposures removes "exposures" edges to Exposure entities.
func (_u *ExperimentUpdateOne) RemoveExposures(v ...*Exposure) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExposureIDs(ids...)
}

// Where appends a list predicates to the ExperimentUpdate builder.
func (_u *ExperimentUpdateOne) Where(ps ...predicate.Experiment) *ExperimentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExperimentUpdateOne) Select(field string, fields ...string) *ExperimentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Experiment entity.
func (_u *ExperimentUpdateOne) Save(ctx context.Context) (*Experiment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentUpdateOne) SaveX(ctx context.Context) *Experiment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExperimentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experiment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := experiment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Experiment.name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Experiment.user"`)
	}
	return nil
}

func (_u *ExperimentUpdateOne) sqlSave(ctx context.Context) (_node *Experiment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experiment.Table, experiment.Columns, sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Experiment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experiment.FieldID)
		for _, f := range fields {
			if !experiment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experiment.FieldID {
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
		_spec.SetField(experiment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(experiment.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActivatedAt(); ok {
		_spec.SetField(experiment.FieldLastActivatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SubjectsCounterProduction(); ok {
		_spec.SetField(experiment.FieldSubjectsCounterProduction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectsCounterProduction(); ok {
		_spec.AddField(experiment.FieldSubjectsCounterProduction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubjectsCounterStaging(); ok {
		_spec.SetField(experiment.FieldSubjectsCounterStaging, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectsCounterStaging(); ok {
		_spec.AddField(experiment.FieldSubjectsCounterStaging, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastProductionExposureID(); ok {
		_spec.SetField(experiment.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionExposureID(); ok {
		_spec.AddField(experiment.FieldLastProductionExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionExposureIDCleared() {
		_spec.ClearField(experiment.FieldLastProductionExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingExposureID(); ok {
		_spec.SetField(experiment.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingExposureID(); ok {
		_spec.AddField(experiment.FieldLastStagingExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingExposureIDCleared() {
		_spec.ClearField(experiment.FieldLastStagingExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastProductionConversionID(); ok {
		_spec.SetField(experiment.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastProductionConversionID(); ok {
		_spec.AddField(experiment.FieldLastProductionConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastProductionConversionIDCleared() {
		_spec.ClearField(experiment.FieldLastProductionConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastStagingConversionID(); ok {
		_spec.SetField(experiment.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStagingConversionID(); ok {
		_spec.AddField(experiment.FieldLastStagingConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastStagingConversionIDCleared() {
		_spec.ClearField(experiment.FieldLastStagingConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experiment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experiment.UserTable,
			Columns: []string{experiment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experiment.UserTable,
			Columns: []string{experiment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CohortsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.CohortsTable,
			Columns: []string{experiment.CohortsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCohortsIDs(); len(nodes) > 0 && !_u.mutation.CohortsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.CohortsTable,
			Columns: []string{experiment.CohortsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CohortsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.CohortsTable,
			Columns: []string{experiment.CohortsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt),
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
			Table:   experiment.ExposuresTable,
			Columns: []string{experiment.ExposuresColumn},
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
			Table:   experiment.ExposuresTable,
			Columns: []string{experiment.ExposuresColumn},
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
			Table:   experiment.ExposuresTable,
			Columns: []string{experiment.ExposuresColumn},
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
	_node = &Experiment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experiment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
