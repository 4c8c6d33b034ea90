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
)

// CohortCreate is the builder for creating a Cohort entity.
type CohortCreate struct {
	config
	mutation *CohortMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExperimentID sets the "experiment_id" field.
func (_c *CohortCreate) SetExperimentID(v int) *CohortCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CohortCreate) SetName(v string) *CohortCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (_c *CohortCreate) SetLastProductionExposureID(v int) *CohortCreate {
	_c.mutation.SetLastProductionExposureID(v)
	return _c
}

// SetNillableLastProductionExposureID sets the "last_production_exposure_id" field if the given value is not nil.
func (_c *CohortCreate) SetNillableLastProductionExposureID(v *int) *CohortCreate {
	if v != nil {
		_c.SetLastProductionExposureID(*v)
	}
	return _c
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (_c *CohortCreate) SetLastStagingExposureID(v int) *CohortCreate {
	_c.mutation.SetLastStagingExposureID(v)
	return _c
}

// SetNillableLastStagingExposureID sets the "last_staging_exposure_id" field if the given value is not nil.
func (_c *CohortCreate) SetNillableLastStagingExposureID(v *int) *CohortCreate {
	if v != nil {
		_c.SetLastStagingExposureID(*v)
	}
	return _c
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (_c *CohortCreate) SetLastProductionConversionID(v int) *CohortCreate {
	_c.mutation.SetLastProductionConversionID(v)
	return _c
}

// SetNillableLastProductionConversionID sets the "last_production_conversion_id" field if the given value is not nil.
func (_c *CohortCreate) SetNillableLastProductionConversionID(v *int) *CohortCreate {
	if v != nil {
		_c.SetLastProductionConversionID(*v)
	}
	return _c
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (_c *CohortCreate) SetLastStagingConversionID(v int) *CohortCreate {
	_c.mutation.SetLastStagingConversionID(v)
	return _c
}

// SetNillableLastStagingConversionID sets the "last_staging_conversion_id" field if the given value is not nil.
func (_c *CohortCreate) SetNillableLastStagingConversionID(v *int) *CohortCreate {
	if v != nil {
		_c.SetLastStagingConversionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CohortCreate) SetCreatedAt(v time.Time) *CohortCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CohortCreate) SetNillableCreatedAt(v *time.Time) *CohortCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CohortCreate) SetUpdatedAt(v time.Time) *CohortCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CohortCreate) SetNillableUpdatedAt(v *time.Time) *CohortCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_c *CohortCreate) SetExperiment(v *Experiment) *CohortCreate {
	return _c.SetExperimentID(v.ID)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_c *CohortCreate) AddExposureIDs(ids ...int) *CohortCreate {
	_c.mutation.AddExposureIDs(ids...)
	return _c
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_c *CohortCreate) AddExposures(v ...*Exposure) *CohortCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExposureIDs(ids...)
}

// Mutation returns the CohortMutation object of the builder.
func (_c *CohortCreate) Mutation() *CohortMutation {
	return _c.mutation
}

// Save creates the Cohort in the database.
func (_c *CohortCreate) Save(ctx context.Context) (*Cohort, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CohortCreate) SaveX(ctx context.Context) *Cohort {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CohortCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CohortCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CohortCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cohort.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cohort.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CohortCreate) check() error {
	if _, ok := _c.mutation.ExperimentID(); !ok {
		return &ValidationError{Name: "experiment_id", err: errors.New(`ent: missing required field "Cohort.experiment_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Cohort.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := cohort.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Cohort.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Cohort.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Cohort.updated_at"`)}
	}
	if len(_c.mutation.ExperimentIDs()) == 0 {
		return &ValidationError{Name: "experiment", err: errors.New(`ent: missing required edge "Cohort.experiment"`)}
	}
	return nil
}

func (_c *CohortCreate) sqlSave(ctx context.Context) (*Cohort, error) {
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

func (_c *CohortCreate) createSpec() (*Cohort, *sqlgraph.CreateSpec) {
	var (
		_node = &Cohort{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cohort.Table, sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(cohort.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.LastProductionExposureID(); ok {
		_spec.SetField(cohort.FieldLastProductionExposureID, field.TypeInt, value)
		_node.LastProductionExposureID = &value
	}
	if value, ok := _c.mutation.LastStagingExposureID(); ok {
		_spec.SetField(cohort.FieldLastStagingExposureID, field.TypeInt, value)
		_node.LastStagingExposureID = &value
	}
	if value, ok := _c.mutation.LastProductionConversionID(); ok {
		_spec.SetField(cohort.FieldLastProductionConversionID, field.TypeInt, value)
		_node.LastProductionConversionID = &value
	}
	if value, ok := _c.mutation.LastStagingConversionID(); ok {
		_spec.SetField(cohort.FieldLastStagingConversionID, field.TypeInt, value)
		_node.LastStagingConversionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cohort.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cohort.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExperimentIDs(); len(nodes) > 0 {
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
		_node.ExperimentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExposuresIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Cohort.Create().
//		SetExperimentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CohortUpsert) {
//			SetExperimentID(v+v).
//		}).
//		Exec(ctx)
func (_c *CohortCreate) OnConflict(opts ...sql.ConflictOption) *CohortUpsertOne {
	_c.conflict = opts
	return &CohortUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Cohort.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CohortCreate) OnConflictColumns(columns ...string) *CohortUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CohortUpsertOne{
		create: _c,
	}
}

type (
	// CohortUpsertOne is the builder for "upsert"-ing
	//  one Cohort node.
	CohortUpsertOne struct {
		create *CohortCreate
	}

	// CohortUpsert is the "OnConflict" setter.
	CohortUpsert struct {
		*sql.UpdateSet
	}
)

// SetExperimentID sets the "experiment_id" field.
func (u *CohortUpsert) SetExperimentID(v int) *CohortUpsert {
	u.Set(cohort.FieldExperimentID, v)
	return u
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *CohortUpsert) UpdateExperimentID() *CohortUpsert {
	u.SetExcluded(cohort.FieldExperimentID)
	return u
}

// SetName sets the "name" field.
func (u *CohortUpsert) SetName(v string) *CohortUpsert {
	u.Set(cohort.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CohortUpsert) UpdateName() *CohortUpsert {
	u.SetExcluded(cohort.FieldName)
	return u
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (u *CohortUpsert) SetLastProductionExposureID(v int) *CohortUpsert {
	u.Set(cohort.FieldLastProductionExposureID, v)
	return u
}

// UpdateLastProductionExposureID sets the "last_production_exposure_id" field to the value that was provided on create.
func (u *CohortUpsert) UpdateLastProductionExposureID() *CohortUpsert {
	u.SetExcluded(cohort.FieldLastProductionExposureID)
	return u
}

// AddLastProductionExposureID adds v to the "last_production_exposure_id" field.
func (u *CohortUpsert) AddLastProductionExposureID(v int) *CohortUpsert {
	u.Add(cohort.FieldLastProductionExposureID, v)
	return u
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (u *CohortUpsert) ClearLastProductionExposureID() *CohortUpsert {
	u.SetNull(cohort.FieldLastProductionExposureID)
	return u
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (u *CohortUpsert) SetLastStagingExposureID(v int) *CohortUpsert {
	u.Set(cohort.FieldLastStagingExposureID, v)
	return u
}

// UpdateLastStagingExposureID sets the "last_staging_exposure_id" field to the value that was provided on create.
func (u *CohortUpsert) UpdateLastStagingExposureID() *CohortUpsert {
	u.SetExcluded(cohort.FieldLastStagingExposureID)
	return u
}

// AddLastStagingExposureID adds v to the "last_staging_exposure_id" field.
func (u *CohortUpsert) AddLastStagingExposureID(v int) *CohortUpsert {
	u.Add(cohort.FieldLastStagingExposureID, v)
	return u
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (u *CohortUpsert) ClearLastStagingExposureID() *CohortUpsert {
	u.SetNull(cohort.FieldLastStagingExposureID)
	return u
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (u *CohortUpsert) SetLastProductionConversionID(v int) *CohortUpsert {
	u.Set(cohort.FieldLastProductionConversionID, v)
	return u
}

// UpdateLastProductionConversionID sets the "last_production_conversion_id" field to the value that was provided on create.
func (u *CohortUpsert) UpdateLastProductionConversionID() *CohortUpsert {
	u.SetExcluded(cohort.FieldLastProductionConversionID)
	return u
}

// AddLastProductionConversionID adds v to the "last_production_conversion_id" field.
func (u *CohortUpsert) AddLastProductionConversionID(v int) *CohortUpsert {
	u.Add(cohort.FieldLastProductionConversionID, v)
	return u
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (u *CohortUpsert) ClearLastProductionConversionID() *CohortUpsert {
	u.SetNull(cohort.FieldLastProductionConversionID)
	return u
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (u *CohortUpsert) SetLastStagingConversionID(v int) *CohortUpsert {
	u.Set(cohort.FieldLastStagingConversionID, v)
	return u
}

// UpdateLastStagingConversionID sets the "last_staging_conversion_id" field to the value that was provided on create.
func (u *CohortUpsert) UpdateLastStagingConversionID() *CohortUpsert {
	u.SetExcluded(cohort.FieldLastStagingConversionID)
	return u
}

// AddLastStagingConversionID adds v to the "last_staging_conversion_id" field.
func (u *CohortUpsert) AddLastStagingConversionID(v int) *CohortUpsert {
	u.Add(cohort.FieldLastStagingConversionID, v)
	return u
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (u *CohortUpsert) ClearLastStagingConversionID() *CohortUpsert {
	u.SetNull(cohort.FieldLastStagingConversionID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CohortUpsert) SetUpdatedAt(v time.Time) *CohortUpsert {
	u.Set(cohort.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CohortUpsert) UpdateUpdatedAt() *CohortUpsert {
	u.SetExcluded(cohort.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Cohort.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CohortUpsertOne) UpdateNewValues() *CohortUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(cohort.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Cohort.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CohortUpsertOne) Ignore() *CohortUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CohortUpsertOne) DoNothing() *CohortUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CohortCreate.OnConflict
// documentation for more info.
func (u *CohortUpsertOne) Update(set func(*CohortUpsert)) *CohortUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CohortUpsert{UpdateSet: update})
	}))
	return u
}

// SetExperimentID sets the "experiment_id" field.
func (u *CohortUpsertOne) SetExperimentID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.SetExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *CohortUpsertOne) UpdateExperimentID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateExperimentID()
	})
}

// SetName sets the "name" field.
func (u *CohortUpsertOne) SetName(v string) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CohortUpsertOne) UpdateName() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateName()
	})
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (u *CohortUpsertOne) SetLastProductionExposureID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastProductionExposureID(v)
	})
}

// AddLastProductionExposureID adds v to the "last_production_exposure_id" field.
func (u *CohortUpsertOne) AddLastProductionExposureID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastProductionExposureID(v)
	})
}

// UpdateLastProductionExposureID sets the "last_production_exposure_id" field to the value that was provided on create.
func (u *CohortUpsertOne) UpdateLastProductionExposureID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastProductionExposureID()
	})
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (u *CohortUpsertOne) ClearLastProductionExposureID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastProductionExposureID()
	})
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (u *CohortUpsertOne) SetLastStagingExposureID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastStagingExposureID(v)
	})
}

// AddLastStagingExposureID adds v to the "last_staging_exposure_id" field.
func (u *CohortUpsertOne) AddLastStagingExposureID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastStagingExposureID(v)
	})
}

// UpdateLastStagingExposureID sets the "last_staging_exposure_id" field to the value that was provided on create.
func (u *CohortUpsertOne) UpdateLastStagingExposureID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastStagingExposureID()
	})
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (u *CohortUpsertOne) ClearLastStagingExposureID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastStagingExposureID()
	})
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (u *CohortUpsertOne) SetLastProductionConversionID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastProductionConversionID(v)
	})
}

// AddLastProductionConversionID adds v to the "last_production_conversion_id" field.
func (u *CohortUpsertOne) AddLastProductionConversionID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastProductionConversionID(v)
	})
}

// UpdateLastProductionConversionID sets the "last_production_conversion_id" field to the value that was provided on create.
func (u *CohortUpsertOne) UpdateLastProductionConversionID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastProductionConversionID()
	})
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (u *CohortUpsertOne) ClearLastProductionConversionID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastProductionConversionID()
	})
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (u *CohortUpsertOne) SetLastStagingConversionID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastStagingConversionID(v)
	})
}

// AddLastStagingConversionID adds v to the "last_staging_conversion_id" field.
func (u *CohortUpsertOne) AddLastStagingConversionID(v int) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastStagingConversionID(v)
	})
}

// UpdateLastStagingConversionID sets the "last_staging_conversion_id" field to the value that was provided on create.
func (u *CohortUpsertOne) UpdateLastStagingConversionID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastStagingConversionID()
	})
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (u *CohortUpsertOne) ClearLastStagingConversionID() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastStagingConversionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CohortUpsertOne) SetUpdatedAt(v time.Time) *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CohortUpsertOne) UpdateUpdatedAt() *CohortUpsertOne {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CohortUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CohortCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CohortUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CohortUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CohortUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CohortCreateBulk is the builder for creating many Cohort entities in bulk.
type CohortCreateBulk struct {
	config
	err      error
	builders []*CohortCreate
	conflict []sql.ConflictOption
}

// Save creates the Cohort entities in the database.
func (_c *CohortCreateBulk) Save(ctx context.Context) ([]*Cohort, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Cohort, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CohortMutation)
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
func (_c *CohortCreateBulk) SaveX(ctx context.Context) []*Cohort {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CohortCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CohortCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Cohort.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CohortUpsert) {
//			SetExperimentID(v+v).
//		}).
//		Exec(ctx)
func (_c *CohortCreateBulk) OnConflict(opts ...sql.ConflictOption) *CohortUpsertBulk {
	_c.conflict = opts
	return &CohortUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Cohort.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CohortCreateBulk) OnConflictColumns(columns ...string) *CohortUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CohortUpsertBulk{
		create: _c,
	}
}

// CohortUpsertBulk is the builder for "upsert"-ing
// a bulk of Cohort nodes.
type CohortUpsertBulk struct {
	create *CohortCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Cohort.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CohortUpsertBulk) UpdateNewValues() *CohortUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(cohort.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Cohort.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CohortUpsertBulk) Ignore() *CohortUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CohortUpsertBulk) DoNothing() *CohortUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CohortCreateBulk.OnConflict
// documentation for more info.
func (u *CohortUpsertBulk) Update(set func(*CohortUpsert)) *CohortUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CohortUpsert{UpdateSet: update})
	}))
	return u
}

// SetExperimentID sets the "experiment_id" field.
func (u *CohortUpsertBulk) SetExperimentID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.SetExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *CohortUpsertBulk) UpdateExperimentID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateExperimentID()
	})
}

// SetName sets the "name" field.
func (u *CohortUpsertBulk) SetName(v string) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CohortUpsertBulk) UpdateName() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateName()
	})
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (u *CohortUpsertBulk) SetLastProductionExposureID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastProductionExposureID(v)
	})
}

// AddLastProductionExposureID adds v to the "last_production_exposure_id" field.
func (u *CohortUpsertBulk) AddLastProductionExposureID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastProductionExposureID(v)
	})
}

// UpdateLastProductionExposureID sets the "last_production_exposure_id" field to the value that was provided on create.
func (u *CohortUpsertBulk) UpdateLastProductionExposureID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastProductionExposureID()
	})
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (u *CohortUpsertBulk) ClearLastProductionExposureID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastProductionExposureID()
	})
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (u *CohortUpsertBulk) SetLastStagingExposureID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastStagingExposureID(v)
	})
}

// AddLastStagingExposureID adds v to the "last_staging_exposure_id" field.
func (u *CohortUpsertBulk) AddLastStagingExposureID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastStagingExposureID(v)
	})
}

// UpdateLastStagingExposureID sets the "last_staging_exposure_id" field to the value that was provided on create.
func (u *CohortUpsertBulk) UpdateLastStagingExposureID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastStagingExposureID()
	})
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (u *CohortUpsertBulk) ClearLastStagingExposureID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastStagingExposureID()
	})
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (u *CohortUpsertBulk) SetLastProductionConversionID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastProductionConversionID(v)
	})
}

// AddLastProductionConversionID adds v to the "last_production_conversion_id" field.
func (u *CohortUpsertBulk) AddLastProductionConversionID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastProductionConversionID(v)
	})
}

// UpdateLastProductionConversionID sets the "last_production_conversion_id" field to the value that was provided on create.
func (u *CohortUpsertBulk) UpdateLastProductionConversionID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastProductionConversionID()
	})
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (u *CohortUpsertBulk) ClearLastProductionConversionID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastProductionConversionID()
	})
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (u *CohortUpsertBulk) SetLastStagingConversionID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.SetLastStagingConversionID(v)
	})
}

// AddLastStagingConversionID adds v to the "last_staging_conversion_id" field.
func (u *CohortUpsertBulk) AddLastStagingConversionID(v int) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.AddLastStagingConversionID(v)
	})
}

// UpdateLastStagingConversionID sets the "last_staging_conversion_id" field to the value that was provided on create.
func (u *CohortUpsertBulk) UpdateLastStagingConversionID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateLastStagingConversionID()
	})
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (u *CohortUpsertBulk) ClearLastStagingConversionID() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.ClearLastStagingConversionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CohortUpsertBulk) SetUpdatedAt(v time.Time) *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CohortUpsertBulk) UpdateUpdatedAt() *CohortUpsertBulk {
	return u.Update(func(s *CohortUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CohortUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CohortCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CohortCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CohortUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
