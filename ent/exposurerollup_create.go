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
	"github.com/tjwaterman99/quicksplit-api/ent/exposurerollup"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExposureRollupCreate is the builder for creating a ExposureRollup entity.
type ExposureRollupCreate struct {
	config
	mutation *ExposureRollupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDay sets the "day" field.
func (_c *ExposureRollupCreate) SetDay(v time.Time) *ExposureRollupCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExposureRollupCreate) SetUserID(v int) *ExposureRollupCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExperimentID sets the "experiment_id" field.
func (_c *ExposureRollupCreate) SetExperimentID(v int) *ExposureRollupCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetExperimentName sets the "experiment_name" field.
func (_c *ExposureRollupCreate) SetExperimentName(v string) *ExposureRollupCreate {
	_c.mutation.SetExperimentName(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *ExposureRollupCreate) SetScope(v domain.Scope) *ExposureRollupCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetExposures sets the "exposures" field.
func (_c *ExposureRollupCreate) SetExposures(v int) *ExposureRollupCreate {
	_c.mutation.SetExposures(v)
	return _c
}

// SetConversions sets the "conversions" field.
func (_c *ExposureRollupCreate) SetConversions(v int) *ExposureRollupCreate {
	_c.mutation.SetConversions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExposureRollupCreate) SetCreatedAt(v time.Time) *ExposureRollupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExposureRollupCreate) SetNillableCreatedAt(v *time.Time) *ExposureRollupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExposureRollupCreate) SetUpdatedAt(v time.Time) *ExposureRollupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExposureRollupCreate) SetNillableUpdatedAt(v *time.Time) *ExposureRollupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ExposureRollupMutation object of the builder.
func (_c *ExposureRollupCreate) Mutation() *ExposureRollupMutation {
	return _c.mutation
}

// Save creates the ExposureRollup in the database.
func (_c *ExposureRollupCreate) Save(ctx context.Context) (*ExposureRollup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExposureRollupCreate) SaveX(ctx context.Context) *ExposureRollup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureRollupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureRollupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExposureRollupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exposurerollup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := exposurerollup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExposureRollupCreate) check() error {
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "ExposureRollup.day"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExposureRollup.user_id"`)}
	}
	if _, ok := _c.mutation.ExperimentID(); !ok {
		return &ValidationError{Name: "experiment_id", err: errors.New(`ent: missing required field "ExposureRollup.experiment_id"`)}
	}
	if _, ok := _c.mutation.ExperimentName(); !ok {
		return &ValidationError{Name: "experiment_name", err: errors.New(`ent: missing required field "ExposureRollup.experiment_name"`)}
	}
	if v, ok := _c.mutation.ExperimentName(); ok {
		if err := exposurerollup.ExperimentNameValidator(v); err != nil {
			return &ValidationError{Name: "experiment_name", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.experiment_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "ExposureRollup.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := exposurerollup.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Exposures(); !ok {
		return &ValidationError{Name: "exposures", err: errors.New(`ent: missing required field "ExposureRollup.exposures"`)}
	}
	if v, ok := _c.mutation.Exposures(); ok {
		if err := exposurerollup.ExposuresValidator(v); err != nil {
			return &ValidationError{Name: "exposures", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.exposures": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Conversions(); !ok {
		return &ValidationError{Name: "conversions", err: errors.New(`ent: missing required field "ExposureRollup.conversions"`)}
	}
	if v, ok := _c.mutation.Conversions(); ok {
		if err := exposurerollup.ConversionsValidator(v); err != nil {
			return &ValidationError{Name: "conversions", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.conversions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExposureRollup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExposureRollup.updated_at"`)}
	}
	return nil
}

func (_c *ExposureRollupCreate) sqlSave(ctx context.Context) (*ExposureRollup, error) {
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

func (_c *ExposureRollupCreate) createSpec() (*ExposureRollup, *sqlgraph.CreateSpec) {
	var (
		_node = &ExposureRollup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exposurerollup.Table, sqlgraph.NewFieldSpec(exposurerollup.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(exposurerollup.FieldDay, field.TypeTime, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(exposurerollup.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExperimentID(); ok {
		_spec.SetField(exposurerollup.FieldExperimentID, field.TypeInt, value)
		_node.ExperimentID = value
	}
	if value, ok := _c.mutation.ExperimentName(); ok {
		_spec.SetField(exposurerollup.FieldExperimentName, field.TypeString, value)
		_node.ExperimentName = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(exposurerollup.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Exposures(); ok {
		_spec.SetField(exposurerollup.FieldExposures, field.TypeInt, value)
		_node.Exposures = value
	}
	if value, ok := _c.mutation.Conversions(); ok {
		_spec.SetField(exposurerollup.FieldConversions, field.TypeInt, value)
		_node.Conversions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exposurerollup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(exposurerollup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureRollup.Create().
//		SetDay(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureRollupUpsert) {
//			SetDay(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureRollupCreate) OnConflict(opts ...sql.ConflictOption) *ExposureRollupUpsertOne {
	_c.conflict = opts
	return &ExposureRollupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureRollup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureRollupCreate) OnConflictColumns(columns ...string) *ExposureRollupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureRollupUpsertOne{
		create: _c,
	}
}

type (
	// ExposureRollupUpsertOne is the builder for "upsert"-ing
	//  one ExposureRollup node.
	ExposureRollupUpsertOne struct {
		create *ExposureRollupCreate
	}

	// ExposureRollupUpsert is the "OnConflict" setter.
	ExposureRollupUpsert struct {
		*sql.UpdateSet
	}
)

// SetDay sets the "day" field.
func (u *ExposureRollupUpsert) SetDay(v time.Time) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateDay() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldDay)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExposureRollupUpsert) SetUserID(v int) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateUserID() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *ExposureRollupUpsert) AddUserID(v int) *ExposureRollupUpsert {
	u.Add(exposurerollup.FieldUserID, v)
	return u
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExposureRollupUpsert) SetExperimentID(v int) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldExperimentID, v)
	return u
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateExperimentID() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldExperimentID)
	return u
}

// AddExperimentID adds v to the "experiment_id" field.
func (u *ExposureRollupUpsert) AddExperimentID(v int) *ExposureRollupUpsert {
	u.Add(exposurerollup.FieldExperimentID, v)
	return u
}

// SetExperimentName sets the "experiment_name" field.
func (u *ExposureRollupUpsert) SetExperimentName(v string) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldExperimentName, v)
	return u
}

// UpdateExperimentName sets the "experiment_name" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateExperimentName() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldExperimentName)
	return u
}

// SetScope sets the "scope" field.
func (u *ExposureRollupUpsert) SetScope(v domain.Scope) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateScope() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldScope)
	return u
}

// SetExposures sets the "exposures" field.
func (u *ExposureRollupUpsert) SetExposures(v int) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldExposures, v)
	return u
}

// UpdateExposures sets the "exposures" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateExposures() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldExposures)
	return u
}

// AddExposures adds v to the "exposures" field.
func (u *ExposureRollupUpsert) AddExposures(v int) *ExposureRollupUpsert {
	u.Add(exposurerollup.FieldExposures, v)
	return u
}

// SetConversions sets the "conversions" field.
func (u *ExposureRollupUpsert) SetConversions(v int) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldConversions, v)
	return u
}

// UpdateConversions sets the "conversions" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateConversions() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldConversions)
	return u
}

// AddConversions adds v to the "conversions" field.
func (u *ExposureRollupUpsert) AddConversions(v int) *ExposureRollupUpsert {
	u.Add(exposurerollup.FieldConversions, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExposureRollupUpsert) SetUpdatedAt(v time.Time) *ExposureRollupUpsert {
	u.Set(exposurerollup.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExposureRollupUpsert) UpdateUpdatedAt() *ExposureRollupUpsert {
	u.SetExcluded(exposurerollup.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExposureRollup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureRollupUpsertOne) UpdateNewValues() *ExposureRollupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(exposurerollup.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureRollup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExposureRollupUpsertOne) Ignore() *ExposureRollupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureRollupUpsertOne) DoNothing() *ExposureRollupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureRollupCreate.OnConflict
// documentation for more info.
func (u *ExposureRollupUpsertOne) Update(set func(*ExposureRollupUpsert)) *ExposureRollupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureRollupUpsert{UpdateSet: update})
	}))
	return u
}

// SetDay sets the "day" field.
func (u *ExposureRollupUpsertOne) SetDay(v time.Time) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateDay() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateDay()
	})
}

// SetUserID sets the "user_id" field.
func (u *ExposureRollupUpsertOne) SetUserID(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ExposureRollupUpsertOne) AddUserID(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateUserID() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateUserID()
	})
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExposureRollupUpsertOne) SetExperimentID(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetExperimentID(v)
	})
}

// AddExperimentID adds v to the "experiment_id" field.
func (u *ExposureRollupUpsertOne) AddExperimentID(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateExperimentID() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateExperimentID()
	})
}

// SetExperimentName sets the "experiment_name" field.
func (u *ExposureRollupUpsertOne) SetExperimentName(v string) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetExperimentName(v)
	})
}

// UpdateExperimentName sets the "experiment_name" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateExperimentName() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateExperimentName()
	})
}

// SetScope sets the "scope" field.
func (u *ExposureRollupUpsertOne) SetScope(v domain.Scope) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateScope() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateScope()
	})
}

// SetExposures sets the "exposures" field.
func (u *ExposureRollupUpsertOne) SetExposures(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetExposures(v)
	})
}

// AddExposures adds v to the "exposures" field.
func (u *ExposureRollupUpsertOne) AddExposures(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddExposures(v)
	})
}

// UpdateExposures sets the "exposures" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateExposures() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateExposures()
	})
}

// SetConversions sets the "conversions" field.
func (u *ExposureRollupUpsertOne) SetConversions(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetConversions(v)
	})
}

// AddConversions adds v to the "conversions" field.
func (u *ExposureRollupUpsertOne) AddConversions(v int) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddConversions(v)
	})
}

// UpdateConversions sets the "conversions" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateConversions() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateConversions()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExposureRollupUpsertOne) SetUpdatedAt(v time.Time) *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExposureRollupUpsertOne) UpdateUpdatedAt() *ExposureRollupUpsertOne {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExposureRollupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureRollupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureRollupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExposureRollupUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExposureRollupUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExposureRollupCreateBulk is the builder for creating many ExposureRollup entities in bulk.
type ExposureRollupCreateBulk struct {
	config
	err      error
	builders []*ExposureRollupCreate
	conflict []sql.ConflictOption
}

// Save creates the ExposureRollup entities in the database.
func (_c *ExposureRollupCreateBulk) Save(ctx context.Context) ([]*ExposureRollup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExposureRollup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExposureRollupMutation)
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
func (_c *ExposureRollupCreateBulk) SaveX(ctx context.Context) []*ExposureRollup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureRollupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureRollupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureRollup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureRollupUpsert) {
//			SetDay(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureRollupCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExposureRollupUpsertBulk {
	_c.conflict = opts
	return &ExposureRollupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureRollup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureRollupCreateBulk) OnConflictColumns(columns ...string) *ExposureRollupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureRollupUpsertBulk{
		create: _c,
	}
}

// ExposureRollupUpsertBulk is the builder for "upsert"-ing
// a bulk of ExposureRollup nodes.
type ExposureRollupUpsertBulk struct {
	create *ExposureRollupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExposureRollup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureRollupUpsertBulk) UpdateNewValues() *ExposureRollupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(exposurerollup.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureRollup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExposureRollupUpsertBulk) Ignore() *ExposureRollupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureRollupUpsertBulk) DoNothing() *ExposureRollupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureRollupCreateBulk.OnConflict
// documentation for more info.
func (u *ExposureRollupUpsertBulk) Update(set func(*ExposureRollupUpsert)) *ExposureRollupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureRollupUpsert{UpdateSet: update})
	}))
	return u
}

// SetDay sets the "day" field.
func (u *ExposureRollupUpsertBulk) SetDay(v time.Time) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateDay() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateDay()
	})
}

// SetUserID sets the "user_id" field.
func (u *ExposureRollupUpsertBulk) SetUserID(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ExposureRollupUpsertBulk) AddUserID(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateUserID() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateUserID()
	})
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExposureRollupUpsertBulk) SetExperimentID(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetExperimentID(v)
	})
}

// AddExperimentID adds v to the "experiment_id" field.
func (u *ExposureRollupUpsertBulk) AddExperimentID(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateExperimentID() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateExperimentID()
	})
}

// SetExperimentName sets the "experiment_name" field.
func (u *ExposureRollupUpsertBulk) SetExperimentName(v string) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetExperimentName(v)
	})
}

// UpdateExperimentName sets the "experiment_name" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateExperimentName() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateExperimentName()
	})
}

// SetScope sets the "scope" field.
func (u *ExposureRollupUpsertBulk) SetScope(v domain.Scope) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateScope() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateScope()
	})
}

// SetExposures sets the "exposures" field.
func (u *ExposureRollupUpsertBulk) SetExposures(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetExposures(v)
	})
}

// AddExposures adds v to the "exposures" field.
func (u *ExposureRollupUpsertBulk) AddExposures(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddExposures(v)
	})
}

// UpdateExposures sets the "exposures" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateExposures() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateExposures()
	})
}

// SetConversions sets the "conversions" field.
func (u *ExposureRollupUpsertBulk) SetConversions(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetConversions(v)
	})
}

// AddConversions adds v to the "conversions" field.
func (u *ExposureRollupUpsertBulk) AddConversions(v int) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.AddConversions(v)
	})
}

// UpdateConversions sets the "conversions" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateConversions() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateConversions()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExposureRollupUpsertBulk) SetUpdatedAt(v time.Time) *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExposureRollupUpsertBulk) UpdateUpdatedAt() *ExposureRollupUpsertBulk {
	return u.Update(func(s *ExposureRollupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExposureRollupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExposureRollupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureRollupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureRollupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
