// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tjwaterman99/quicksplit-api/ent/experimentresult"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExperimentResultCreate is the builder for creating a ExperimentResult entity.
type ExperimentResultCreate struct {
	config
	mutation *ExperimentResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExperimentID sets the "experiment_id" field.
func (_c *ExperimentResultCreate) SetExperimentID(v int) *ExperimentResultCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *ExperimentResultCreate) SetScope(v domain.Scope) *ExperimentResultCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ExperimentResultCreate) SetVersion(v string) *ExperimentResultCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *ExperimentResultCreate) SetFields(v json.RawMessage) *ExperimentResultCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetRanAt sets the "ran_at" field.
func (_c *ExperimentResultCreate) SetRanAt(v time.Time) *ExperimentResultCreate {
	_c.mutation.SetRanAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExperimentResultCreate) SetCreatedAt(v time.Time) *ExperimentResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExperimentResultCreate) SetNillableCreatedAt(v *time.Time) *ExperimentResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExperimentResultCreate) SetUpdatedAt(v time.Time) *ExperimentResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExperimentResultCreate) SetNillableUpdatedAt(v *time.Time) *ExperimentResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ExperimentResultMutation object of the builder.
func (_c *ExperimentResultCreate) Mutation() *ExperimentResultMutation {
	return _c.mutation
}

// Save creates the ExperimentResult in the database.
func (_c *ExperimentResultCreate) Save(ctx context.Context) (*ExperimentResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperimentResultCreate) SaveX(ctx context.Context) *ExperimentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperimentResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := experimentresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := experimentresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperimentResultCreate) check() error {
	if _, ok := _c.mutation.ExperimentID(); !ok {
		return &ValidationError{Name: "experiment_id", err: errors.New(`ent: missing required field "ExperimentResult.experiment_id"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "ExperimentResult.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := experimentresult.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ExperimentResult.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := experimentresult.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetFields(); !ok {
		return &ValidationError{Name: "fields", err: errors.New(`ent: missing required field "ExperimentResult.fields"`)}
	}
	if _, ok := _c.mutation.RanAt(); !ok {
		return &ValidationError{Name: "ran_at", err: errors.New(`ent: missing required field "ExperimentResult.ran_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExperimentResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExperimentResult.updated_at"`)}
	}
	return nil
}

func (_c *ExperimentResultCreate) sqlSave(ctx context.Context) (*ExperimentResult, error) {
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

func (_c *ExperimentResultCreate) createSpec() (*ExperimentResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExperimentResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experimentresult.Table, sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ExperimentID(); ok {
		_spec.SetField(experimentresult.FieldExperimentID, field.TypeInt, value)
		_node.ExperimentID = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(experimentresult.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(experimentresult.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(experimentresult.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.RanAt(); ok {
		_spec.SetField(experimentresult.FieldRanAt, field.TypeTime, value)
		_node.RanAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(experimentresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExperimentResult.Create().
//		SetExperimentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperimentResultUpsert) {
//			SetExperimentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExperimentResultCreate) OnConflict(opts ...sql.ConflictOption) *ExperimentResultUpsertOne {
	_c.conflict = opts
	return &ExperimentResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExperimentResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExperimentResultCreate) OnConflictColumns(columns ...string) *ExperimentResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExperimentResultUpsertOne{
		create: _c,
	}
}

type (
	// ExperimentResultUpsertOne is the builder for "upsert"-ing
	//  one ExperimentResult node.
	ExperimentResultUpsertOne struct {
		create *ExperimentResultCreate
	}

	// ExperimentResultUpsert is the "OnConflict" setter.
	ExperimentResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetExperimentID sets the "experiment_id" field.
func (u *ExperimentResultUpsert) SetExperimentID(v int) *ExperimentResultUpsert {
	u.Set(experimentresult.FieldExperimentID, v)
	return u
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExperimentResultUpsert) UpdateExperimentID() *ExperimentResultUpsert {
	u.SetExcluded(experimentresult.FieldExperimentID)
	return u
}

// AddExperimentID adds v to the "experiment_id" field.
func (u *ExperimentResultUpsert) AddExperimentID(v int) *ExperimentResultUpsert {
	u.Add(experimentresult.FieldExperimentID, v)
	return u
}

// SetScope sets the "scope" field.
func (u *ExperimentResultUpsert) SetScope(v domain.Scope) *ExperimentResultUpsert {
	u.Set(experimentresult.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExperimentResultUpsert) UpdateScope() *ExperimentResultUpsert {
	u.SetExcluded(experimentresult.FieldScope)
	return u
}

// SetVersion sets the "version" field.
func (u *ExperimentResultUpsert) SetVersion(v string) *ExperimentResultUpsert {
	u.Set(experimentresult.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ExperimentResultUpsert) UpdateVersion() *ExperimentResultUpsert {
	u.SetExcluded(experimentresult.FieldVersion)
	return u
}

// SetFields sets the "fields" field.
func (u *ExperimentResultUpsert) SetFields(v json.RawMessage) *ExperimentResultUpsert {
	u.Set(experimentresult.FieldFields, v)
	return u
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ExperimentResultUpsert) UpdateFields() *ExperimentResultUpsert {
	u.SetExcluded(experimentresult.FieldFields)
	return u
}

// SetRanAt sets the "ran_at" field.
func (u *ExperimentResultUpsert) SetRanAt(v time.Time) *ExperimentResultUpsert {
	u.Set(experimentresult.FieldRanAt, v)
	return u
}

// UpdateRanAt sets the "ran_at" field to the value that was provided on create.
func (u *ExperimentResultUpsert) UpdateRanAt() *ExperimentResultUpsert {
	u.SetExcluded(experimentresult.FieldRanAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperimentResultUpsert) SetUpdatedAt(v time.Time) *ExperimentResultUpsert {
	u.Set(experimentresult.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperimentResultUpsert) UpdateUpdatedAt() *ExperimentResultUpsert {
	u.SetExcluded(experimentresult.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExperimentResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExperimentResultUpsertOne) UpdateNewValues() *ExperimentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(experimentresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExperimentResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExperimentResultUpsertOne) Ignore() *ExperimentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperimentResultUpsertOne) DoNothing() *ExperimentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperimentResultCreate.OnConflict
// documentation for more info.
func (u *ExperimentResultUpsertOne) Update(set func(*ExperimentResultUpsert)) *ExperimentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperimentResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExperimentResultUpsertOne) SetExperimentID(v int) *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetExperimentID(v)
	})
}

// AddExperimentID adds v to the "experiment_id" field.
func (u *ExperimentResultUpsertOne) AddExperimentID(v int) *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.AddExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExperimentResultUpsertOne) UpdateExperimentID() *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateExperimentID()
	})
}

// SetScope sets the "scope" field.
func (u *ExperimentResultUpsertOne) SetScope(v domain.Scope) *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExperimentResultUpsertOne) UpdateScope() *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateScope()
	})
}

// SetVersion sets the "version" field.
func (u *ExperimentResultUpsertOne) SetVersion(v string) *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ExperimentResultUpsertOne) UpdateVersion() *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateVersion()
	})
}

// SetFields sets the "fields" field.
func (u *ExperimentResultUpsertOne) SetFields(v json.RawMessage) *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ExperimentResultUpsertOne) UpdateFields() *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateFields()
	})
}

// SetRanAt sets the "ran_at" field.
func (u *ExperimentResultUpsertOne) SetRanAt(v time.Time) *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetRanAt(v)
	})
}

// UpdateRanAt sets the "ran_at" field to the value that was provided on create.
func (u *ExperimentResultUpsertOne) UpdateRanAt() *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateRanAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperimentResultUpsertOne) SetUpdatedAt(v time.Time) *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperimentResultUpsertOne) UpdateUpdatedAt() *ExperimentResultUpsertOne {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExperimentResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperimentResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperimentResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExperimentResultUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExperimentResultUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExperimentResultCreateBulk is the builder for creating many ExperimentResult entities in bulk.
type ExperimentResultCreateBulk struct {
	config
	err      error
	builders []*ExperimentResultCreate
	conflict []sql.ConflictOption
}

// Save creates the ExperimentResult entities in the database.
func (_c *ExperimentResultCreateBulk) Save(ctx context.Context) ([]*ExperimentResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExperimentResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperimentResultMutation)
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
func (_c *ExperimentResultCreateBulk) SaveX(ctx context.Context) []*ExperimentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExperimentResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperimentResultUpsert) {
//			SetExperimentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExperimentResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExperimentResultUpsertBulk {
	_c.conflict = opts
	return &ExperimentResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExperimentResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExperimentResultCreateBulk) OnConflictColumns(columns ...string) *ExperimentResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExperimentResultUpsertBulk{
		create: _c,
	}
}

// ExperimentResultUpsertBulk is the builder for "upsert"-ing
// a bulk of ExperimentResult nodes.
type ExperimentResultUpsertBulk struct {
	create *ExperimentResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExperimentResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExperimentResultUpsertBulk) UpdateNewValues() *ExperimentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(experimentresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExperimentResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExperimentResultUpsertBulk) Ignore() *ExperimentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperimentResultUpsertBulk) DoNothing() *ExperimentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperimentResultCreateBulk.OnConflict
// documentation for more info.
func (u *ExperimentResultUpsertBulk) Update(set func(*ExperimentResultUpsert)) *ExperimentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperimentResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExperimentResultUpsertBulk) SetExperimentID(v int) *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetExperimentID(v)
	})
}

// AddExperimentID adds v to the "experiment_id" field.
func (u *ExperimentResultUpsertBulk) AddExperimentID(v int) *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.AddExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExperimentResultUpsertBulk) UpdateExperimentID() *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateExperimentID()
	})
}

// SetScope sets the "scope" field.
func (u *ExperimentResultUpsertBulk) SetScope(v domain.Scope) *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExperimentResultUpsertBulk) UpdateScope() *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateScope()
	})
}

// SetVersion sets the "version" field.
func (u *ExperimentResultUpsertBulk) SetVersion(v string) *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ExperimentResultUpsertBulk) UpdateVersion() *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateVersion()
	})
}

// SetFields sets the "fields" field.
func (u *ExperimentResultUpsertBulk) SetFields(v json.RawMessage) *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ExperimentResultUpsertBulk) UpdateFields() *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateFields()
	})
}

// SetRanAt sets the "ran_at" field.
func (u *ExperimentResultUpsertBulk) SetRanAt(v time.Time) *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetRanAt(v)
	})
}

// UpdateRanAt sets the "ran_at" field to the value that was provided on create.
func (u *ExperimentResultUpsertBulk) UpdateRanAt() *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateRanAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperimentResultUpsertBulk) SetUpdatedAt(v time.Time) *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperimentResultUpsertBulk) UpdateUpdatedAt() *ExperimentResultUpsertBulk {
	return u.Update(func(s *ExperimentResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExperimentResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExperimentResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperimentResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperimentResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
