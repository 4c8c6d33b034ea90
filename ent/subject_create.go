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
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// SubjectCreate is the builder for creating a Subject entity.
type SubjectCreate struct {
	config
	mutation *SubjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *SubjectCreate) SetAccountID(v int) *SubjectCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SubjectCreate) SetName(v string) *SubjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *SubjectCreate) SetScope(v domain.Scope) *SubjectCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetLastExposureID sets the "last_exposure_id" field.
func (_c *SubjectCreate) SetLastExposureID(v int) *SubjectCreate {
	_c.mutation.SetLastExposureID(v)
	return _c
}

// SetNillableLastExposureID sets the "last_exposure_id" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableLastExposureID(v *int) *SubjectCreate {
	if v != nil {
		_c.SetLastExposureID(*v)
	}
	return _c
}

// SetLastConversionID sets the "last_conversion_id" field.
func (_c *SubjectCreate) SetLastConversionID(v int) *SubjectCreate {
	_c.mutation.SetLastConversionID(v)
	return _c
}

// SetNillableLastConversionID sets the "last_conversion_id" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableLastConversionID(v *int) *SubjectCreate {
	if v != nil {
		_c.SetLastConversionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubjectCreate) SetCreatedAt(v time.Time) *SubjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableCreatedAt(v *time.Time) *SubjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubjectCreate) SetUpdatedAt(v time.Time) *SubjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableUpdatedAt(v *time.Time) *SubjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *SubjectCreate) SetAccount(v *Account) *SubjectCreate {
	return _c.SetAccountID(v.ID)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_c *SubjectCreate) AddExposureIDs(ids ...int) *SubjectCreate {
	_c.mutation.AddExposureIDs(ids...)
	return _c
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_c *SubjectCreate) AddExposures(v ...*Exposure) *SubjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExposureIDs(ids...)
}

// Mutation returns the SubjectMutation object of the builder.
func (_c *SubjectCreate) Mutation() *SubjectMutation {
	return _c.mutation
}

// Save creates the Subject in the database.
func (_c *SubjectCreate) Save(ctx context.Context) (*Subject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectCreate) SaveX(ctx context.Context) *Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subject.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subject.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Subject.account_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Subject.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "Subject.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := subject.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Subject.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subject.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subject.updated_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Subject.account"`)}
	}
	return nil
}

func (_c *SubjectCreate) sqlSave(ctx context.Context) (*Subject, error) {
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

func (_c *SubjectCreate) createSpec() (*Subject, *sqlgraph.CreateSpec) {
	var (
		_node = &Subject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subject.Table, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(subject.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.LastExposureID(); ok {
		_spec.SetField(subject.FieldLastExposureID, field.TypeInt, value)
		_node.LastExposureID = &value
	}
	if value, ok := _c.mutation.LastConversionID(); ok {
		_spec.SetField(subject.FieldLastConversionID, field.TypeInt, value)
		_node.LastConversionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subject.AccountTable,
			Columns: []string{subject.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExposuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subject.ExposuresTable,
			Columns: []string{subject.ExposuresColumn},
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
//	client.Subject.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubjectUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubjectCreate) OnConflict(opts ...sql.ConflictOption) *SubjectUpsertOne {
	_c.conflict = opts
	return &SubjectUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubjectCreate) OnConflictColumns(columns ...string) *SubjectUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubjectUpsertOne{
		create: _c,
	}
}

type (
	// SubjectUpsertOne is the builder for "upsert"-ing
	//  one Subject node.
	SubjectUpsertOne struct {
		create *SubjectCreate
	}

	// SubjectUpsert is the "OnConflict" setter.
	SubjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *SubjectUpsert) SetAccountID(v int) *SubjectUpsert {
	u.Set(subject.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *SubjectUpsert) UpdateAccountID() *SubjectUpsert {
	u.SetExcluded(subject.FieldAccountID)
	return u
}

// SetName sets the "name" field.
func (u *SubjectUpsert) SetName(v string) *SubjectUpsert {
	u.Set(subject.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SubjectUpsert) UpdateName() *SubjectUpsert {
	u.SetExcluded(subject.FieldName)
	return u
}

// SetScope sets the "scope" field.
func (u *SubjectUpsert) SetScope(v domain.Scope) *SubjectUpsert {
	u.Set(subject.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *SubjectUpsert) UpdateScope() *SubjectUpsert {
	u.SetExcluded(subject.FieldScope)
	return u
}

// SetLastExposureID sets the "last_exposure_id" field.
func (u *SubjectUpsert) SetLastExposureID(v int) *SubjectUpsert {
	u.Set(subject.FieldLastExposureID, v)
	return u
}

// UpdateLastExposureID sets the "last_exposure_id" field to the value that was provided on create.
func (u *SubjectUpsert) UpdateLastExposureID() *SubjectUpsert {
	u.SetExcluded(subject.FieldLastExposureID)
	return u
}

// AddLastExposureID adds v to the "last_exposure_id" field.
func (u *SubjectUpsert) AddLastExposureID(v int) *SubjectUpsert {
	u.Add(subject.FieldLastExposureID, v)
	return u
}

// ClearLastExposureID clears the value of the "last_exposure_id" field.
func (u *SubjectUpsert) ClearLastExposureID() *SubjectUpsert {
	u.SetNull(subject.FieldLastExposureID)
	return u
}

// SetLastConversionID sets the "last_conversion_id" field.
func (u *SubjectUpsert) SetLastConversionID(v int) *SubjectUpsert {
	u.Set(subject.FieldLastConversionID, v)
	return u
}

// UpdateLastConversionID sets the "last_conversion_id" field to the value that was provided on create.
func (u *SubjectUpsert) UpdateLastConversionID() *SubjectUpsert {
	u.SetExcluded(subject.FieldLastConversionID)
	return u
}

// AddLastConversionID adds v to the "last_conversion_id" field.
func (u *SubjectUpsert) AddLastConversionID(v int) *SubjectUpsert {
	u.Add(subject.FieldLastConversionID, v)
	return u
}

// ClearLastConversionID clears the value of the "last_conversion_id" field.
func (u *SubjectUpsert) ClearLastConversionID() *SubjectUpsert {
	u.SetNull(subject.FieldLastConversionID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubjectUpsert) SetUpdatedAt(v time.Time) *SubjectUpsert {
	u.Set(subject.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubjectUpsert) UpdateUpdatedAt() *SubjectUpsert {
	u.SetExcluded(subject.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Subject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubjectUpsertOne) UpdateNewValues() *SubjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(subject.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subject.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubjectUpsertOne) Ignore() *SubjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubjectUpsertOne) DoNothing() *SubjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubjectCreate.OnConflict
// documentation for more info.
func (u *SubjectUpsertOne) Update(set func(*SubjectUpsert)) *SubjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *SubjectUpsertOne) SetAccountID(v int) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *SubjectUpsertOne) UpdateAccountID() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateAccountID()
	})
}

// SetName sets the "name" field.
func (u *SubjectUpsertOne) SetName(v string) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SubjectUpsertOne) UpdateName() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateName()
	})
}

// SetScope sets the "scope" field.
func (u *SubjectUpsertOne) SetScope(v domain.Scope) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *SubjectUpsertOne) UpdateScope() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateScope()
	})
}

// SetLastExposureID sets the "last_exposure_id" field.
func (u *SubjectUpsertOne) SetLastExposureID(v int) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.SetLastExposureID(v)
	})
}

// AddLastExposureID adds v to the "last_exposure_id" field.
func (u *SubjectUpsertOne) AddLastExposureID(v int) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.AddLastExposureID(v)
	})
}

// UpdateLastExposureID sets the "last_exposure_id" field to the value that was provided on create.
func (u *SubjectUpsertOne) UpdateLastExposureID() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateLastExposureID()
	})
}

// ClearLastExposureID clears the value of the "last_exposure_id" field.
func (u *SubjectUpsertOne) ClearLastExposureID() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.ClearLastExposureID()
	})
}

// SetLastConversionID sets the "last_conversion_id" field.
func (u *SubjectUpsertOne) SetLastConversionID(v int) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.SetLastConversionID(v)
	})
}

// AddLastConversionID adds v to the "last_conversion_id" field.
func (u *SubjectUpsertOne) AddLastConversionID(v int) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.AddLastConversionID(v)
	})
}

// UpdateLastConversionID sets the "last_conversion_id" field to the value that was provided on create.
func (u *SubjectUpsertOne) UpdateLastConversionID() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateLastConversionID()
	})
}

// ClearLastConversionID clears the value of the "last_conversion_id" field.
func (u *SubjectUpsertOne) ClearLastConversionID() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.ClearLastConversionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubjectUpsertOne) SetUpdatedAt(v time.Time) *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubjectUpsertOne) UpdateUpdatedAt() *SubjectUpsertOne {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubjectUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubjectUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubjectCreateBulk is the builder for creating many Subject entities in bulk.
type SubjectCreateBulk struct {
	config
	err      error
	builders []*SubjectCreate
	conflict []sql.ConflictOption
}

// Save creates the Subject entities in the database.
func (_c *SubjectCreateBulk) Save(ctx context.Context) ([]*Subject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectMutation)
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
func (_c *SubjectCreateBulk) SaveX(ctx context.Context) []*Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subject.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubjectUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubjectUpsertBulk {
	_c.conflict = opts
	return &SubjectUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubjectCreateBulk) OnConflictColumns(columns ...string) *SubjectUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubjectUpsertBulk{
		create: _c,
	}
}

// SubjectUpsertBulk is the builder for "upsert"-ing
// a bulk of Subject nodes.
type SubjectUpsertBulk struct {
	create *SubjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Subject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubjectUpsertBulk) UpdateNewValues() *SubjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(subject.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subject.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubjectUpsertBulk) Ignore() *SubjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubjectUpsertBulk) DoNothing() *SubjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubjectCreateBulk.OnConflict
// documentation for more info.
func (u *SubjectUpsertBulk) Update(set func(*SubjectUpsert)) *SubjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *SubjectUpsertBulk) SetAccountID(v int) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *SubjectUpsertBulk) UpdateAccountID() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateAccountID()
	})
}

// SetName sets the "name" field.
func (u *SubjectUpsertBulk) SetName(v string) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SubjectUpsertBulk) UpdateName() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateName()
	})
}

// SetScope sets the "scope" field.
func (u *SubjectUpsertBulk) SetScope(v domain.Scope) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *SubjectUpsertBulk) UpdateScope() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateScope()
	})
}

// SetLastExposureID sets the "last_exposure_id" field.
func (u *SubjectUpsertBulk) SetLastExposureID(v int) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.SetLastExposureID(v)
	})
}

// AddLastExposureID adds v to the "last_exposure_id" field.
func (u *SubjectUpsertBulk) AddLastExposureID(v int) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.AddLastExposureID(v)
	})
}

// UpdateLastExposureID sets the "last_exposure_id" field to the value that was provided on create.
func (u *SubjectUpsertBulk) UpdateLastExposureID() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateLastExposureID()
	})
}

// ClearLastExposureID clears the value of the "last_exposure_id" field.
func (u *SubjectUpsertBulk) ClearLastExposureID() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.ClearLastExposureID()
	})
}

// SetLastConversionID sets the "last_conversion_id" field.
func (u *SubjectUpsertBulk) SetLastConversionID(v int) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.SetLastConversionID(v)
	})
}

// AddLastConversionID adds v to the "last_conversion_id" field.
func (u *SubjectUpsertBulk) AddLastConversionID(v int) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.AddLastConversionID(v)
	})
}

// UpdateLastConversionID sets the "last_conversion_id" field to the value that was provided on create.
func (u *SubjectUpsertBulk) UpdateLastConversionID() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateLastConversionID()
	})
}

// ClearLastConversionID clears the value of the "last_conversion_id" field.
func (u *SubjectUpsertBulk) ClearLastConversionID() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.ClearLastConversionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubjectUpsertBulk) SetUpdatedAt(v time.Time) *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubjectUpsertBulk) UpdateUpdatedAt() *SubjectUpsertBulk {
	return u.Update(func(s *SubjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubjectUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
