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
	"github.com/tjwaterman99/quicksplit-api/ent/user"
)

// ExperimentCreate is the builder for creating a Experiment entity.
type ExperimentCreate struct {
	config
	mutation *ExperimentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ExperimentCreate) SetUserID(v int) *ExperimentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExperimentCreate) SetName(v string) *ExperimentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ExperimentCreate) SetActive(v bool) *ExperimentCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableActive(v *bool) *ExperimentCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetLastActivatedAt sets the "last_activated_at" field.
func (_c *ExperimentCreate) SetLastActivatedAt(v time.Time) *ExperimentCreate {
	_c.mutation.SetLastActivatedAt(v)
	return _c
}

// SetNillableLastActivatedAt sets the "last_activated_at" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableLastActivatedAt(v *time.Time) *ExperimentCreate {
	if v != nil {
		_c.SetLastActivatedAt(*v)
	}
	return _c
}

// SetSubjectsCounterProduction sets the "subjects_counter_production" field.
func (_c *ExperimentCreate) SetSubjectsCounterProduction(v int) *ExperimentCreate {
	_c.mutation.SetSubjectsCounterProduction(v)
	return _c
}

// SetNillableSubjectsCounterProduction sets the "subjects_counter_production" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableSubjectsCounterProduction(v *int) *ExperimentCreate {
	if v != nil {
		_c.SetSubjectsCounterProduction(*v)
	}
	return _c
}

// SetSubjectsCounterStaging sets the "subjects_counter_staging" field.
func (_c *ExperimentCreate) SetSubjectsCounterStaging(v int) *ExperimentCreate {
	_c.mutation.SetSubjectsCounterStaging(v)
	return _c
}

// SetNillableSubjectsCounterStaging sets the "subjects_counter_staging" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableSubjectsCounterStaging(v *int) *ExperimentCreate {
	if v != nil {
		_c.SetSubjectsCounterStaging(*v)
	}
	return _c
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (_c *ExperimentCreate) SetLastProductionExposureID(v int) *ExperimentCreate {
	_c.mutation.SetLastProductionExposureID(v)
	return _c
}

// SetNillableLastProductionExposureID sets the "last_production_exposure_id" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableLastProductionExposureID(v *int) *ExperimentCreate {
	if v != nil {
		_c.SetLastProductionExposureID(*v)
	}
	return _c
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (_c *ExperimentCreate) SetLastStagingExposureID(v int) *ExperimentCreate {
	_c.mutation.SetLastStagingExposureID(v)
	return _c
}

// SetNillableLastStagingExposureID sets the "last_staging_exposure_id" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableLastStagingExposureID(v *int) *ExperimentCreate {
	if v != nil {
		_c.SetLastStagingExposureID(*v)
	}
	return _c
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (_c *ExperimentCreate) SetLastProductionConversionID(v int) *ExperimentCreate {
	_c.mutation.SetLastProductionConversionID(v)
	return _c
}

// SetNillableLastProductionConversionID sets the "last_production_conversion_id" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableLastProductionConversionID(v *int) *ExperimentCreate {
	if v != nil {
		_c.SetLastProductionConversionID(*v)
	}
	return _c
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (_c *ExperimentCreate) SetLastStagingConversionID(v int) *ExperimentCreate {
	_c.mutation.SetLastStagingConversionID(v)
	return _c
}

// SetNillableLastStagingConversionID sets the "last_staging_conversion_id" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableLastStagingConversionID(v *int) *ExperimentCreate {
	if v != nil {
		_c.SetLastStagingConversionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExperimentCreate) SetCreatedAt(v time.Time) *ExperimentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableCreatedAt(v *time.Time) *ExperimentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExperimentCreate) SetUpdatedAt(v time.Time) *ExperimentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableUpdatedAt(v *time.Time) *ExperimentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ExperimentCreate) SetUser(v *User) *ExperimentCreate {
	return _c.SetUserID(v.ID)
}

// AddCohortIDs adds the "cohorts" edge to the Cohort entity by IDs.
func (_c *ExperimentCreate) AddCohortIDs(ids ...int) *ExperimentCreate {
	_c.mutation.AddCohortIDs(ids...)
	return _c
}

// AddCohorts adds the "cohorts" edges to the Cohort entity.
func (_c *ExperimentCreate) AddCohorts(v ...*Cohort) *ExperimentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCohortIDs(ids...)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_c *ExperimentCreate) AddExposureIDs(ids ...int) *ExperimentCreate {
	_c.mutation.AddExposureIDs(ids...)
	return _c
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_c *ExperimentCreate) AddExposures(v ...*Exposure) *ExperimentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExposureIDs(ids...)
}

// Mutation returns the ExperimentMutation object of the builder.
func (_c *ExperimentCreate) Mutation() *ExperimentMutation {
	return _c.mutation
}

// Save creates the Experiment in the database.
func (_c *ExperimentCreate) Save(ctx context.Context) (*Experiment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperimentCreate) SaveX(ctx context.Context) *Experiment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperimentCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := experiment.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.LastActivatedAt(); !ok {
		v := experiment.DefaultLastActivatedAt()
		_c.mutation.SetLastActivatedAt(v)
	}
	if _, ok := _c.mutation.SubjectsCounterProduction(); !ok {
		v := experiment.DefaultSubjectsCounterProduction
		_c.mutation.SetSubjectsCounterProduction(v)
	}
	if _, ok := _c.mutation.SubjectsCounterStaging(); !ok {
		v := experiment.DefaultSubjectsCounterStaging
		_c.mutation.SetSubjectsCounterStaging(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := experiment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := experiment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperimentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Experiment.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Experiment.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := experiment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Experiment.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Experiment.active"`)}
	}
	if _, ok := _c.mutation.LastActivatedAt(); !ok {
		return &ValidationError{Name: "last_activated_at", err: errors.New(`ent: missing required field "Experiment.last_activated_at"`)}
	}
	if _, ok := _c.mutation.SubjectsCounterProduction(); !ok {
		return &ValidationError{Name: "subjects_counter_production", err: errors.New(`ent: missing required field "Experiment.subjects_counter_production"`)}
	}
	if _, ok := _c.mutation.SubjectsCounterStaging(); !ok {
		return &ValidationError{Name: "subjects_counter_staging", err: errors.New(`ent: missing required field "Experiment.subjects_counter_staging"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Experiment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Experiment.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Experiment.user"`)}
	}
	return nil
}

func (_c *ExperimentCreate) sqlSave(ctx context.Context) (*Experiment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExperimentCreate) createSpec() (*Experiment, *sqlgraph.CreateSpec) {
	var (
		_node = &Experiment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experiment.Table, sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(experiment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(experiment.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.LastActivatedAt(); ok {
		_spec.SetField(experiment.FieldLastActivatedAt, field.TypeTime, value)
		_node.LastActivatedAt = value
	}
	if value, ok := _c.mutation.SubjectsCounterProduction(); ok {
		_spec.SetField(experiment.FieldSubjectsCounterProduction, field.TypeInt, value)
		_node.SubjectsCounterProduction = value
	}
	if value, ok := _c.mutation.SubjectsCounterStaging(); ok {
		_spec.SetField(experiment.FieldSubjectsCounterStaging, field.TypeInt, value)
		_node.SubjectsCounterStaging = value
	}
	if value, ok := _c.mutation.LastProductionExposureID(); ok {
		_spec.SetField(experiment.FieldLastProductionExposureID, field.TypeInt, value)
		_node.LastProductionExposureID = &value
	}
	if value, ok := _c.mutation.LastStagingExposureID(); ok {
		_spec.SetField(experiment.FieldLastStagingExposureID, field.TypeInt, value)
		_node.LastStagingExposureID = &value
	}
	if value, ok := _c.mutation.LastProductionConversionID(); ok {
		_spec.SetField(experiment.FieldLastProductionConversionID, field.TypeInt, value)
		_node.LastProductionConversionID = &value
	}
	if value, ok := _c.mutation.LastStagingConversionID(); ok {
		_spec.SetField(experiment.FieldLastStagingConversionID, field.TypeInt, value)
		_node.LastStagingConversionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(experiment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(experiment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CohortsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExposuresIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Experiment.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperimentUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExperimentCreate) OnConflict(opts ...sql.ConflictOption) *ExperimentUpsertOne {
	_c.conflict = opts
	return &ExperimentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Experiment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExperimentCreate) OnConflictColumns(columns ...string) *ExperimentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExperimentUpsertOne{
		create: _c,
	}
}

type (
	// ExperimentUpsertOne is the builder for "upsert"-ing
	//  one Experiment node.
	ExperimentUpsertOne struct {
		create *ExperimentCreate
	}

	// ExperimentUpsert is the "OnConflict" setter.
	ExperimentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ExperimentUpsert) SetUserID(v int) *ExperimentUpsert {
	u.Set(experiment.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateUserID() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldUserID)
	return u
}

// SetName sets the "name" field.
func (u *ExperimentUpsert) SetName(v string) *ExperimentUpsert {
	u.Set(experiment.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateName() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldName)
	return u
}

// SetActive sets the "active" field.
func (u *ExperimentUpsert) SetActive(v bool) *ExperimentUpsert {
	u.Set(experiment.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateActive() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldActive)
	return u
}

// SetLastActivatedAt sets the "last_activated_at" field.
func (u *ExperimentUpsert) SetLastActivatedAt(v time.Time) *ExperimentUpsert {
	u.Set(experiment.FieldLastActivatedAt, v)
	return u
}

// UpdateLastActivatedAt sets the "last_activated_at" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateLastActivatedAt() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldLastActivatedAt)
	return u
}

// SetSubjectsCounterProduction sets the "subjects_counter_production" field.
func (u *ExperimentUpsert) SetSubjectsCounterProduction(v int) *ExperimentUpsert {
	u.Set(experiment.FieldSubjectsCounterProduction, v)
	return u
}

// UpdateSubjectsCounterProduction sets the "subjects_counter_production" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateSubjectsCounterProduction() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldSubjectsCounterProduction)
	return u
}

// AddSubjectsCounterProduction adds v to the "subjects_counter_production" field.
func (u *ExperimentUpsert) AddSubjectsCounterProduction(v int) *ExperimentUpsert {
	u.Add(experiment.FieldSubjectsCounterProduction, v)
	return u
}

// SetSubjectsCounterStaging sets the "subjects_counter_staging" field.
func (u *ExperimentUpsert) SetSubjectsCounterStaging(v int) *ExperimentUpsert {
	u.Set(experiment.FieldSubjectsCounterStaging, v)
	return u
}

// UpdateSubjectsCounterStaging sets the "subjects_counter_staging" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateSubjectsCounterStaging() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldSubjectsCounterStaging)
	return u
}

// AddSubjectsCounterStaging adds v to the "subjects_counter_staging" field.
func (u *ExperimentUpsert) AddSubjectsCounterStaging(v int) *ExperimentUpsert {
	u.Add(experiment.FieldSubjectsCounterStaging, v)
	return u
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (u *ExperimentUpsert) SetLastProductionExposureID(v int) *ExperimentUpsert {
	u.Set(experiment.FieldLastProductionExposureID, v)
	return u
}

// UpdateLastProductionExposureID sets the "last_production_exposure_id" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateLastProductionExposureID() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldLastProductionExposureID)
	return u
}

// AddLastProductionExposureID adds v to the "last_production_exposure_id" field.
func (u *ExperimentUpsert) AddLastProductionExposureID(v int) *ExperimentUpsert {
	u.Add(experiment.FieldLastProductionExposureID, v)
	return u
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (u *ExperimentUpsert) ClearLastProductionExposureID() *ExperimentUpsert {
	u.SetNull(experiment.FieldLastProductionExposureID)
	return u
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (u *ExperimentUpsert) SetLastStagingExposureID(v int) *ExperimentUpsert {
	u.Set(experiment.FieldLastStagingExposureID, v)
	return u
}

// UpdateLastStagingExposureID sets the "last_staging_exposure_id" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateLastStagingExposureID() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldLastStagingExposureID)
	return u
}

// AddLastStagingExposureID adds v to the "last_staging_exposure_id" field.
func (u *ExperimentUpsert) AddLastStagingExposureID(v int) *ExperimentUpsert {
	u.Add(experiment.FieldLastStagingExposureID, v)
	return u
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (u *ExperimentUpsert) ClearLastStagingExposureID() *ExperimentUpsert {
	u.SetNull(experiment.FieldLastStagingExposureID)
	return u
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (u *ExperimentUpsert) SetLastProductionConversionID(v int) *ExperimentUpsert {
	u.Set(experiment.FieldLastProductionConversionID, v)
	return u
}

// UpdateLastProductionConversionID sets the "last_production_conversion_id" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateLastProductionConversionID() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldLastProductionConversionID)
	return u
}

// AddLastProductionConversionID adds v to the "last_production_conversion_id" field.
func (u *ExperimentUpsert) AddLastProductionConversionID(v int) *ExperimentUpsert {
	u.Add(experiment.FieldLastProductionConversionID, v)
	return u
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (u *ExperimentUpsert) ClearLastProductionConversionID() *ExperimentUpsert {
	u.SetNull(experiment.FieldLastProductionConversionID)
	return u
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (u *ExperimentUpsert) SetLastStagingConversionID(v int) *ExperimentUpsert {
	u.Set(experiment.FieldLastStagingConversionID, v)
	return u
}

// UpdateLastStagingConversionID sets the "last_staging_conversion_id" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateLastStagingConversionID() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldLastStagingConversionID)
	return u
}

// AddLastStagingConversionID adds v to the "last_staging_conversion_id" field.
func (u *ExperimentUpsert) AddLastStagingConversionID(v int) *ExperimentUpsert {
	u.Add(experiment.FieldLastStagingConversionID, v)
	return u
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (u *ExperimentUpsert) ClearLastStagingConversionID() *ExperimentUpsert {
	u.SetNull(experiment.FieldLastStagingConversionID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperimentUpsert) SetUpdatedAt(v time.Time) *ExperimentUpsert {
	u.Set(experiment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperimentUpsert) UpdateUpdatedAt() *ExperimentUpsert {
	u.SetExcluded(experiment.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Experiment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExperimentUpsertOne) UpdateNewValues() *ExperimentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(experiment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Experiment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExperimentUpsertOne) Ignore() *ExperimentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperimentUpsertOne) DoNothing() *ExperimentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperimentCreate.OnConflict
// documentation for more info.
func (u *ExperimentUpsertOne) Update(set func(*ExperimentUpsert)) *ExperimentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperimentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExperimentUpsertOne) SetUserID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateUserID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *ExperimentUpsertOne) SetName(v string) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateName() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateName()
	})
}

// SetActive sets the "active" field.
func (u *ExperimentUpsertOne) SetActive(v bool) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateActive() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateActive()
	})
}

// SetLastActivatedAt sets the "last_activated_at" field.
func (u *ExperimentUpsertOne) SetLastActivatedAt(v time.Time) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastActivatedAt(v)
	})
}

// UpdateLastActivatedAt sets the "last_activated_at" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateLastActivatedAt() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastActivatedAt()
	})
}

// SetSubjectsCounterProduction sets the "subjects_counter_production" field.
func (u *ExperimentUpsertOne) SetSubjectsCounterProduction(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetSubjectsCounterProduction(v)
	})
}

// AddSubjectsCounterProduction adds v to the "subjects_counter_production" field.
func (u *ExperimentUpsertOne) AddSubjectsCounterProduction(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddSubjectsCounterProduction(v)
	})
}

// UpdateSubjectsCounterProduction sets the "subjects_counter_production" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateSubjectsCounterProduction() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateSubjectsCounterProduction()
	})
}

// SetSubjectsCounterStaging sets the "subjects_counter_staging" field.
func (u *ExperimentUpsertOne) SetSubjectsCounterStaging(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetSubjectsCounterStaging(v)
	})
}

// AddSubjectsCounterStaging adds v to the "subjects_counter_staging" field.
func (u *ExperimentUpsertOne) AddSubjectsCounterStaging(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddSubjectsCounterStaging(v)
	})
}

// UpdateSubjectsCounterStaging sets the "subjects_counter_staging" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateSubjectsCounterStaging() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateSubjectsCounterStaging()
	})
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (u *ExperimentUpsertOne) SetLastProductionExposureID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastProductionExposureID(v)
	})
}

// AddLastProductionExposureID adds v to the "last_production_exposure_id" field.
func (u *ExperimentUpsertOne) AddLastProductionExposureID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastProductionExposureID(v)
	})
}

// UpdateLastProductionExposureID sets the "last_production_exposure_id" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateLastProductionExposureID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastProductionExposureID()
	})
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (u *ExperimentUpsertOne) ClearLastProductionExposureID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastProductionExposureID()
	})
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (u *ExperimentUpsertOne) SetLastStagingExposureID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastStagingExposureID(v)
	})
}

// AddLastStagingExposureID adds v to the "last_staging_exposure_id" field.
func (u *ExperimentUpsertOne) AddLastStagingExposureID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastStagingExposureID(v)
	})
}

// UpdateLastStagingExposureID sets the "last_staging_exposure_id" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateLastStagingExposureID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastStagingExposureID()
	})
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (u *ExperimentUpsertOne) ClearLastStagingExposureID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastStagingExposureID()
	})
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (u *ExperimentUpsertOne) SetLastProductionConversionID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastProductionConversionID(v)
	})
}

// AddLastProductionConversionID adds v to the "last_production_conversion_id" field.
func (u *ExperimentUpsertOne) AddLastProductionConversionID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastProductionConversionID(v)
	})
}

// UpdateLastProductionConversionID sets the "last_production_conversion_id" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateLastProductionConversionID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastProductionConversionID()
	})
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (u *ExperimentUpsertOne) ClearLastProductionConversionID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastProductionConversionID()
	})
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (u *ExperimentUpsertOne) SetLastStagingConversionID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastStagingConversionID(v)
	})
}

// AddLastStagingConversionID adds v to the "last_staging_conversion_id" field.
func (u *ExperimentUpsertOne) AddLastStagingConversionID(v int) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastStagingConversionID(v)
	})
}

// UpdateLastStagingConversionID sets the "last_staging_conversion_id" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateLastStagingConversionID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastStagingConversionID()
	})
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (u *ExperimentUpsertOne) ClearLastStagingConversionID() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastStagingConversionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperimentUpsertOne) SetUpdatedAt(v time.Time) *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperimentUpsertOne) UpdateUpdatedAt() *ExperimentUpsertOne {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExperimentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperimentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperimentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExperimentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExperimentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExperimentCreateBulk is the builder for creating many Experiment entities in bulk.
type ExperimentCreateBulk struct {
	config
	err      error
	builders []*ExperimentCreate
	conflict []sql.ConflictOption
}

// Save creates the Experiment entities in the database.
func (_c *ExperimentCreateBulk) Save(ctx context.Context) ([]*Experiment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Experiment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperimentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExperimentCreateBulk) SaveX(ctx context.Context) []*Experiment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Experiment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperimentUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExperimentCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExperimentUpsertBulk {
	_c.conflict = opts
	return &ExperimentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Experiment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExperimentCreateBulk) OnConflictColumns(columns ...string) *ExperimentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExperimentUpsertBulk{
		create: _c,
	}
}

// ExperimentUpsertBulk is the builder for "upsert"-ing
// a bulk of Experiment nodes.
type ExperimentUpsertBulk struct {
	create *ExperimentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Experiment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExperimentUpsertBulk) UpdateNewValues() *ExperimentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(experiment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Experiment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExperimentUpsertBulk) Ignore() *ExperimentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperimentUpsertBulk) DoNothing() *ExperimentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperimentCreateBulk.OnConflict
// documentation for more info.
func (u *ExperimentUpsertBulk) Update(set func(*ExperimentUpsert)) *ExperimentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperimentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExperimentUpsertBulk) SetUserID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateUserID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *ExperimentUpsertBulk) SetName(v string) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateName() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateName()
	})
}

// SetActive sets the "active" field.
func (u *ExperimentUpsertBulk) SetActive(v bool) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateActive() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateActive()
	})
}

// SetLastActivatedAt sets the "last_activated_at" field.
func (u *ExperimentUpsertBulk) SetLastActivatedAt(v time.Time) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastActivatedAt(v)
	})
}

// UpdateLastActivatedAt sets the "last_activated_at" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateLastActivatedAt() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastActivatedAt()
	})
}

// SetSubjectsCounterProduction sets the "subjects_counter_production" field.
func (u *ExperimentUpsertBulk) SetSubjectsCounterProduction(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetSubjectsCounterProduction(v)
	})
}

// AddSubjectsCounterProduction adds v to the "subjects_counter_production" field.
func (u *ExperimentUpsertBulk) AddSubjectsCounterProduction(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddSubjectsCounterProduction(v)
	})
}

// UpdateSubjectsCounterProduction sets the "subjects_counter_production" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateSubjectsCounterProduction() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateSubjectsCounterProduction()
	})
}

// SetSubjectsCounterStaging sets the "subjects_counter_staging" field.
func (u *ExperimentUpsertBulk) SetSubjectsCounterStaging(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetSubjectsCounterStaging(v)
	})
}

// AddSubjectsCounterStaging adds v to the "subjects_counter_staging" field.
func (u *ExperimentUpsertBulk) AddSubjectsCounterStaging(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddSubjectsCounterStaging(v)
	})
}

// UpdateSubjectsCounterStaging sets the "subjects_counter_staging" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateSubjectsCounterStaging() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateSubjectsCounterStaging()
	})
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (u *ExperimentUpsertBulk) SetLastProductionExposureID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastProductionExposureID(v)
	})
}

// AddLastProductionExposureID adds v to the "last_production_exposure_id" field.
func (u *ExperimentUpsertBulk) AddLastProductionExposureID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastProductionExposureID(v)
	})
}

// UpdateLastProductionExposureID sets the "last_production_exposure_id" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateLastProductionExposureID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastProductionExposureID()
	})
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (u *ExperimentUpsertBulk) ClearLastProductionExposureID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastProductionExposureID()
	})
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (u *ExperimentUpsertBulk) SetLastStagingExposureID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastStagingExposureID(v)
	})
}

// AddLastStagingExposureID adds v to the "last_staging_exposure_id" field.
func (u *ExperimentUpsertBulk) AddLastStagingExposureID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastStagingExposureID(v)
	})
}

// UpdateLastStagingExposureID sets the "last_staging_exposure_id" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateLastStagingExposureID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastStagingExposureID()
	})
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (u *ExperimentUpsertBulk) ClearLastStagingExposureID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastStagingExposureID()
	})
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (u *ExperimentUpsertBulk) SetLastProductionConversionID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastProductionConversionID(v)
	})
}

// AddLastProductionConversionID adds v to the "last_production_conversion_id" field.
func (u *ExperimentUpsertBulk) AddLastProductionConversionID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastProductionConversionID(v)
	})
}

// UpdateLastProductionConversionID sets the "last_production_conversion_id" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateLastProductionConversionID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastProductionConversionID()
	})
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (u *ExperimentUpsertBulk) ClearLastProductionConversionID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastProductionConversionID()
	})
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (u *ExperimentUpsertBulk) SetLastStagingConversionID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetLastStagingConversionID(v)
	})
}

// AddLastStagingConversionID adds v to the "last_staging_conversion_id" field.
func (u *ExperimentUpsertBulk) AddLastStagingConversionID(v int) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.AddLastStagingConversionID(v)
	})
}

// UpdateLastStagingConversionID sets the "last_staging_conversion_id" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateLastStagingConversionID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateLastStagingConversionID()
	})
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (u *ExperimentUpsertBulk) ClearLastStagingConversionID() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.ClearLastStagingConversionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperimentUpsertBulk) SetUpdatedAt(v time.Time) *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperimentUpsertBulk) UpdateUpdatedAt() *ExperimentUpsertBulk {
	return u.Update(func(s *ExperimentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExperimentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExperimentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperimentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperimentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
