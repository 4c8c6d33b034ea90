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
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ConversionCreate is the builder for creating a Conversion entity.
type ConversionCreate struct {
	config
	mutation *ConversionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExposureID sets the "exposure_id" field.
func (_c *ConversionCreate) SetExposureID(v int) *ConversionCreate {
	_c.mutation.SetExposureID(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *ConversionCreate) SetScope(v domain.Scope) *ConversionCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ConversionCreate) SetValue(v float64) *ConversionCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableValue(v *float64) *ConversionCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversionCreate) SetCreatedAt(v time.Time) *ConversionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableCreatedAt(v *time.Time) *ConversionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *ConversionCreate) SetLastSeenAt(v time.Time) *ConversionCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableLastSeenAt(v *time.Time) *ConversionCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetExposure sets the "exposure" edge to the Exposure entity.
func (_c *ConversionCreate) SetExposure(v *Exposure) *ConversionCreate {
	return _c.SetExposureID(v.ID)
}

// Mutation returns the ConversionMutation object of the builder.
func (_c *ConversionCreate) Mutation() *ConversionMutation {
	return _c.mutation
}

// Save creates the Conversion in the database.
func (_c *ConversionCreate) Save(ctx context.Context) (*Conversion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversionCreate) SaveX(ctx context.Context) *Conversion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := conversion.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversionCreate) check() error {
	if _, ok := _c.mutation.ExposureID(); !ok {
		return &ValidationError{Name: "exposure_id", err: errors.New(`ent: missing required field "Conversion.exposure_id"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "Conversion.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := conversion.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Conversion.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversion.created_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Conversion.last_seen_at"`)}
	}
	if len(_c.mutation.ExposureIDs()) == 0 {
		return &ValidationError{Name: "exposure", err: errors.New(`ent: missing required edge "Conversion.exposure"`)}
	}
	return nil
}

func (_c *ConversionCreate) sqlSave(ctx context.Context) (*Conversion, error) {
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

func (_c *ConversionCreate) createSpec() (*Conversion, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversion.Table, sqlgraph.NewFieldSpec(conversion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(conversion.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(conversion.FieldValue, field.TypeFloat64, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(conversion.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if nodes := _c.mutation.ExposureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversion.ExposureTable,
			Columns: []string{conversion.ExposureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExposureID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversion.Create().
//		SetExposureID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversionUpsert) {
//			SetExposureID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversionCreate) OnConflict(opts ...sql.ConflictOption) *ConversionUpsertOne {
	_c.conflict = opts
	return &ConversionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversionCreate) OnConflictColumns(columns ...string) *ConversionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversionUpsertOne{
		create: _c,
	}
}

type (
	// ConversionUpsertOne is the builder for "upsert"-ing
	//  one Conversion node.
	ConversionUpsertOne struct {
		create *ConversionCreate
	}

	// ConversionUpsert is the "OnConflict" setter.
	ConversionUpsert struct {
		*sql.UpdateSet
	}
)

// SetExposureID sets the "exposure_id" field.
func (u *ConversionUpsert) SetExposureID(v int) *ConversionUpsert {
	u.Set(conversion.FieldExposureID, v)
	return u
}

// UpdateExposureID sets the "exposure_id" field to the value that was provided on create.
func (u *ConversionUpsert) UpdateExposureID() *ConversionUpsert {
	u.SetExcluded(conversion.FieldExposureID)
	return u
}

// SetScope sets the "scope" field.
func (u *ConversionUpsert) SetScope(v domain.Scope) *ConversionUpsert {
	u.Set(conversion.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ConversionUpsert) UpdateScope() *ConversionUpsert {
	u.SetExcluded(conversion.FieldScope)
	return u
}

// SetValue sets the "value" field.
func (u *ConversionUpsert) SetValue(v float64) *ConversionUpsert {
	u.Set(conversion.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ConversionUpsert) UpdateValue() *ConversionUpsert {
	u.SetExcluded(conversion.FieldValue)
	return u
}

// AddValue adds v to the "value" field.
func (u *ConversionUpsert) AddValue(v float64) *ConversionUpsert {
	u.Add(conversion.FieldValue, v)
	return u
}

// ClearValue clears the value of the "value" field.
func (u *ConversionUpsert) ClearValue() *ConversionUpsert {
	u.SetNull(conversion.FieldValue)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ConversionUpsert) SetLastSeenAt(v time.Time) *ConversionUpsert {
	u.Set(conversion.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ConversionUpsert) UpdateLastSeenAt() *ConversionUpsert {
	u.SetExcluded(conversion.FieldLastSeenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Conversion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConversionUpsertOne) UpdateNewValues() *ConversionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversionUpsertOne) Ignore() *ConversionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversionUpsertOne) DoNothing() *ConversionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversionCreate.OnConflict
// documentation for more info.
func (u *ConversionUpsertOne) Update(set func(*ConversionUpsert)) *ConversionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversionUpsert{UpdateSet: update})
	}))
	return u
}

// SetExposureID sets the "exposure_id" field.
func (u *ConversionUpsertOne) SetExposureID(v int) *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.SetExposureID(v)
	})
}

// UpdateExposureID sets the "exposure_id" field to the value that was provided on create.
func (u *ConversionUpsertOne) UpdateExposureID() *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateExposureID()
	})
}

// SetScope sets the "scope" field.
func (u *ConversionUpsertOne) SetScope(v domain.Scope) *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ConversionUpsertOne) UpdateScope() *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateScope()
	})
}

// SetValue sets the "value" field.
func (u *ConversionUpsertOne) SetValue(v float64) *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *ConversionUpsertOne) AddValue(v float64) *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ConversionUpsertOne) UpdateValue() *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *ConversionUpsertOne) ClearValue() *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.ClearValue()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ConversionUpsertOne) SetLastSeenAt(v time.Time) *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ConversionUpsertOne) UpdateLastSeenAt() *ConversionUpsertOne {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *ConversionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversionCreateBulk is the builder for creating many Conversion entities in bulk.
type ConversionCreateBulk struct {
	config
	err      error
	builders []*ConversionCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversion entities in the database.
func (_c *ConversionCreateBulk) Save(ctx context.Context) ([]*Conversion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversionMutation)
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
func (_c *ConversionCreateBulk) SaveX(ctx context.Context) []*Conversion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversionUpsert) {
//			SetExposureID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversionUpsertBulk {
	_c.conflict = opts
	return &ConversionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversionCreateBulk) OnConflictColumns(columns ...string) *ConversionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversionUpsertBulk{
		create: _c,
	}
}

// ConversionUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversion nodes.
type ConversionUpsertBulk struct {
	create *ConversionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConversionUpsertBulk) UpdateNewValues() *ConversionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversionUpsertBulk) Ignore() *ConversionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversionUpsertBulk) DoNothing() *ConversionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversionCreateBulk.OnConflict
// documentation for more info.
func (u *ConversionUpsertBulk) Update(set func(*ConversionUpsert)) *ConversionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversionUpsert{UpdateSet: update})
	}))
	return u
}

// SetExposureID sets the "exposure_id" field.
func (u *ConversionUpsertBulk) SetExposureID(v int) *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.SetExposureID(v)
	})
}

// UpdateExposureID sets the "exposure_id" field to the value that was provided on create.
func (u *ConversionUpsertBulk) UpdateExposureID() *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateExposureID()
	})
}

// SetScope sets the "scope" field.
func (u *ConversionUpsertBulk) SetScope(v domain.Scope) *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ConversionUpsertBulk) UpdateScope() *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateScope()
	})
}

// SetValue sets the "value" field.
func (u *ConversionUpsertBulk) SetValue(v float64) *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *ConversionUpsertBulk) AddValue(v float64) *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ConversionUpsertBulk) UpdateValue() *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *ConversionUpsertBulk) ClearValue() *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.ClearValue()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ConversionUpsertBulk) SetLastSeenAt(v time.Time) *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ConversionUpsertBulk) UpdateLastSeenAt() *ConversionUpsertBulk {
	return u.Update(func(s *ConversionUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *ConversionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConversionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
