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
	"github.com/tjwaterman99/quicksplit-api/ent/account"
	"github.com/tjwaterman99/quicksplit-api/ent/plan"
)

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PlanCreate) SetName(v string) *PlanCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPriceInCents sets the "price_in_cents" field.
func (_c *PlanCreate) SetPriceInCents(v int) *PlanCreate {
	_c.mutation.SetPriceInCents(v)
	return _c
}

// SetMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field.
func (_c *PlanCreate) SetMaxSubjectsPerExperiment(v int) *PlanCreate {
	_c.mutation.SetMaxSubjectsPerExperiment(v)
	return _c
}

// SetMaxActiveExperiments sets the "max_active_experiments" field.
func (_c *PlanCreate) SetMaxActiveExperiments(v int) *PlanCreate {
	_c.mutation.SetMaxActiveExperiments(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanCreate) SetCreatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCreatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlanCreate) SetUpdatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableUpdatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddAccountIDs adds the "accounts" edge to the Account entity by IDs.
func (_c *PlanCreate) AddAccountIDs(ids ...int) *PlanCreate {
	_c.mutation.AddAccountIDs(ids...)
	return _c
}

// AddAccounts adds the "accounts" edges to the Account entity.
func (_c *PlanCreate) AddAccounts(v ...*Account) *PlanCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAccountIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_c *PlanCreate) Mutation() *PlanMutation {
	return _c.mutation
}

// Save creates the Plan in the database.
func (_c *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Plan.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceInCents(); !ok {
		return &ValidationError{Name: "price_in_cents", err: errors.New(`ent: missing required field "Plan.price_in_cents"`)}
	}
	if v, ok := _c.mutation.PriceInCents(); ok {
		if err := plan.PriceInCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_in_cents", err: fmt.Errorf(`ent: validator failed for field "Plan.price_in_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxSubjectsPerExperiment(); !ok {
		return &ValidationError{Name: "max_subjects_per_experiment", err: errors.New(`ent: missing required field "Plan.max_subjects_per_experiment"`)}
	}
	if v, ok := _c.mutation.MaxSubjectsPerExperiment(); ok {
		if err := plan.MaxSubjectsPerExperimentValidator(v); err != nil {
			return &ValidationError{Name: "max_subjects_per_experiment", err: fmt.Errorf(`ent: validator failed for field "Plan.max_subjects_per_experiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxActiveExperiments(); !ok {
		return &ValidationError{Name: "max_active_experiments", err: errors.New(`ent: missing required field "Plan.max_active_experiments"`)}
	}
	if v, ok := _c.mutation.MaxActiveExperiments(); ok {
		if err := plan.MaxActiveExperimentsValidator(v); err != nil {
			return &ValidationError{Name: "max_active_experiments", err: fmt.Errorf(`ent: validator failed for field "Plan.max_active_experiments": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Plan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Plan.updated_at"`)}
	}
	return nil
}

func (_c *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
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

func (_c *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PriceInCents(); ok {
		_spec.SetField(plan.FieldPriceInCents, field.TypeInt, value)
		_node.PriceInCents = value
	}
	if value, ok := _c.mutation.MaxSubjectsPerExperiment(); ok {
		_spec.SetField(plan.FieldMaxSubjectsPerExperiment, field.TypeInt, value)
		_node.MaxSubjectsPerExperiment = value
	}
	if value, ok := _c.mutation.MaxActiveExperiments(); ok {
		_spec.SetField(plan.FieldMaxActiveExperiments, field.TypeInt, value)
		_node.MaxActiveExperiments = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AccountsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.AccountsTable,
			Columns: []string{plan.AccountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
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
//	client.Plan.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanCreate) OnConflict(opts ...sql.ConflictOption) *PlanUpsertOne {
	_c.conflict = opts
	return &PlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanCreate) OnConflictColumns(columns ...string) *PlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertOne{
		create: _c,
	}
}

type (
	// PlanUpsertOne is the builder for "upsert"-ing
	//  one Plan node.
	PlanUpsertOne struct {
		create *PlanCreate
	}

	// PlanUpsert is the "OnConflict" setter.
	PlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PlanUpsert) SetName(v string) *PlanUpsert {
	u.Set(plan.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsert) UpdateName() *PlanUpsert {
	u.SetExcluded(plan.FieldName)
	return u
}

// SetPriceInCents sets the "price_in_cents" field.
func (u *PlanUpsert) SetPriceInCents(v int) *PlanUpsert {
	u.Set(plan.FieldPriceInCents, v)
	return u
}

// UpdatePriceInCents sets the "price_in_cents" field to the value that was provided on create.
func (u *PlanUpsert) UpdatePriceInCents() *PlanUpsert {
	u.SetExcluded(plan.FieldPriceInCents)
	return u
}

// AddPriceInCents adds v to the "price_in_cents" field.
func (u *PlanUpsert) AddPriceInCents(v int) *PlanUpsert {
	u.Add(plan.FieldPriceInCents, v)
	return u
}

// SetMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field.
func (u *PlanUpsert) SetMaxSubjectsPerExperiment(v int) *PlanUpsert {
	u.Set(plan.FieldMaxSubjectsPerExperiment, v)
	return u
}

// UpdateMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field to the value that was provided on create.
func (u *PlanUpsert) UpdateMaxSubjectsPerExperiment() *PlanUpsert {
	u.SetExcluded(plan.FieldMaxSubjectsPerExperiment)
	return u
}

// AddMaxSubjectsPerExperiment adds v to the "max_subjects_per_experiment" field.
func (u *PlanUpsert) AddMaxSubjectsPerExperiment(v int) *PlanUpsert {
	u.Add(plan.FieldMaxSubjectsPerExperiment, v)
	return u
}

// SetMaxActiveExperiments sets the "max_active_experiments" field.
func (u *PlanUpsert) SetMaxActiveExperiments(v int) *PlanUpsert {
	u.Set(plan.FieldMaxActiveExperiments, v)
	return u
}

// UpdateMaxActiveExperiments sets the "max_active_experiments" field to the value that was provided on create.
func (u *PlanUpsert) UpdateMaxActiveExperiments() *PlanUpsert {
	u.SetExcluded(plan.FieldMaxActiveExperiments)
	return u
}

// AddMaxActiveExperiments adds v to the "max_active_experiments" field.
func (u *PlanUpsert) AddMaxActiveExperiments(v int) *PlanUpsert {
	u.Add(plan.FieldMaxActiveExperiments, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsert) SetUpdatedAt(v time.Time) *PlanUpsert {
	u.Set(plan.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsert) UpdateUpdatedAt() *PlanUpsert {
	u.SetExcluded(plan.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlanUpsertOne) UpdateNewValues() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(plan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlanUpsertOne) Ignore() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertOne) DoNothing() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreate.OnConflict
// documentation for more info.
func (u *PlanUpsertOne) Update(set func(*PlanUpsert)) *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PlanUpsertOne) SetName(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateName() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateName()
	})
}

// SetPriceInCents sets the "price_in_cents" field.
func (u *PlanUpsertOne) SetPriceInCents(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetPriceInCents(v)
	})
}

// AddPriceInCents adds v to the "price_in_cents" field.
func (u *PlanUpsertOne) AddPriceInCents(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddPriceInCents(v)
	})
}

// UpdatePriceInCents sets the "price_in_cents" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdatePriceInCents() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePriceInCents()
	})
}

// SetMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field.
func (u *PlanUpsertOne) SetMaxSubjectsPerExperiment(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxSubjectsPerExperiment(v)
	})
}

// AddMaxSubjectsPerExperiment adds v to the "max_subjects_per_experiment" field.
func (u *PlanUpsertOne) AddMaxSubjectsPerExperiment(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxSubjectsPerExperiment(v)
	})
}

// UpdateMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateMaxSubjectsPerExperiment() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxSubjectsPerExperiment()
	})
}

// SetMaxActiveExperiments sets the "max_active_experiments" field.
func (u *PlanUpsertOne) SetMaxActiveExperiments(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxActiveExperiments(v)
	})
}

// AddMaxActiveExperiments adds v to the "max_active_experiments" field.
func (u *PlanUpsertOne) AddMaxActiveExperiments(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxActiveExperiments(v)
	})
}

// UpdateMaxActiveExperiments sets the "max_active_experiments" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateMaxActiveExperiments() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxActiveExperiments()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsertOne) SetUpdatedAt(v time.Time) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateUpdatedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlanUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlanUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
	conflict []sql.ConflictOption
}

// Save creates the Plan entities in the database.
func (_c *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
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
func (_c *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Plan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlanUpsertBulk {
	_c.conflict = opts
	return &PlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanCreateBulk) OnConflictColumns(columns ...string) *PlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertBulk{
		create: _c,
	}
}

// PlanUpsertBulk is the builder for "upsert"-ing
// a bulk of Plan nodes.
type PlanUpsertBulk struct {
	create *PlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlanUpsertBulk) UpdateNewValues() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(plan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlanUpsertBulk) Ignore() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertBulk) DoNothing() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreateBulk.OnConflict
// documentation for more info.
func (u *PlanUpsertBulk) Update(set func(*PlanUpsert)) *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PlanUpsertBulk) SetName(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateName() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateName()
	})
}

// SetPriceInCents sets the "price_in_cents" field.
func (u *PlanUpsertBulk) SetPriceInCents(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetPriceInCents(v)
	})
}

// AddPriceInCents adds v to the "price_in_cents" field.
func (u *PlanUpsertBulk) AddPriceInCents(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddPriceInCents(v)
	})
}

// UpdatePriceInCents sets the "price_in_cents" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdatePriceInCents() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePriceInCents()
	})
}

// SetMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field.
func (u *PlanUpsertBulk) SetMaxSubjectsPerExperiment(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxSubjectsPerExperiment(v)
	})
}

// AddMaxSubjectsPerExperiment adds v to the "max_subjects_per_experiment" field.
func (u *PlanUpsertBulk) AddMaxSubjectsPerExperiment(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxSubjectsPerExperiment(v)
	})
}

// UpdateMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateMaxSubjectsPerExperiment() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxSubjectsPerExperiment()
	})
}

// SetMaxActiveExperiments sets the "max_active_experiments" field.
func (u *PlanUpsertBulk) SetMaxActiveExperiments(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxActiveExperiments(v)
	})
}

// AddMaxActiveExperiments adds v to the "max_active_experiments" field.
func (u *PlanUpsertBulk) AddMaxActiveExperiments(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxActiveExperiments(v)
	})
}

// UpdateMaxActiveExperiments sets the "max_active_experiments" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateMaxActiveExperiments() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxActiveExperiments()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsertBulk) SetUpdatedAt(v time.Time) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateUpdatedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
