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
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExposureCreate is the builder for creating a Exposure entity.
type ExposureCreate struct {
	config
	mutation *ExposureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSubjectID sets the "subject_id" field.
func (_c *ExposureCreate) SetSubjectID(v int) *ExposureCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetExperimentID sets the "experiment_id" field.
func (_c *ExposureCreate) SetExperimentID(v int) *ExposureCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetCohortID sets the "cohort_id" field.
func (_c *ExposureCreate) SetCohortID(v int) *ExposureCreate {
	_c.mutation.SetCohortID(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *ExposureCreate) SetScope(v domain.Scope) *ExposureCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExposureCreate) SetCreatedAt(v time.Time) *ExposureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExposureCreate) SetNillableCreatedAt(v *time.Time) *ExposureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *ExposureCreate) SetLastSeenAt(v time.Time) *ExposureCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *ExposureCreate) SetNillableLastSeenAt(v *time.Time) *ExposureCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *ExposureCreate) SetSubject(v *Subject) *ExposureCreate {
	return _c.SetSubjectID(v.ID)
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_c *ExposureCreate) SetExperiment(v *Experiment) *ExposureCreate {
	return _c.SetExperimentID(v.ID)
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_c *ExposureCreate) SetCohort(v *Cohort) *ExposureCreate {
	return _c.SetCohortID(v.ID)
}

// AddConversionIDs adds the "conversions" edge to the Conversion entity by IDs.
func (_c *ExposureCreate) AddConversionIDs(ids ...int) *ExposureCreate {
	_c.mutation.AddConversionIDs(ids...)
	return _c
}

// AddConversions adds the "conversions" edges to the Conversion entity.
func (_c *ExposureCreate) AddConversions(v ...*Conversion) *ExposureCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversionIDs(ids...)
}

// Mutation returns the ExposureMutation object of the builder.
func (_c *ExposureCreate) Mutation() *ExposureMutation {
	return _c.mutation
}

// Save creates the Exposure in the database.
func (_c *ExposureCreate) Save(ctx context.Context) (*Exposure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExposureCreate) SaveX(ctx context.Context) *Exposure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExposureCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exposure.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := exposure.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExposureCreate) check() error {
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Exposure.subject_id"`)}
	}
	if _, ok := _c.mutation.ExperimentID(); !ok {
		return &ValidationError{Name: "experiment_id", err: errors.New(`ent: missing required field "Exposure.experiment_id"`)}
	}
	if _, ok := _c.mutation.CohortID(); !ok {
		return &ValidationError{Name: "cohort_id", err: errors.New(`ent: missing required field "Exposure.cohort_id"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "Exposure.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := exposure.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Exposure.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Exposure.created_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Exposure.last_seen_at"`)}
	}
	if len(_c.mutation.SubjectIDs()) == 0 {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required edge "Exposure.subject"`)}
	}
	if len(_c.mutation.ExperimentIDs()) == 0 {
		return &ValidationError{Name: "experiment", err: errors.New(`ent: missing required edge "Exposure.experiment"`)}
	}
	if len(_c.mutation.CohortIDs()) == 0 {
		return &ValidationError{Name: "cohort", err: errors.New(`ent: missing required edge "Exposure.cohort"`)}
	}
	return nil
}

func (_c *ExposureCreate) sqlSave(ctx context.Context) (*Exposure, error) {
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

func (_c *ExposureCreate) createSpec() (*Exposure, *sqlgraph.CreateSpec) {
	var (
		_node = &Exposure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exposure.Table, sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(exposure.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exposure.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(exposure.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exposure.SubjectTable,
			Columns: []string{exposure.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExperimentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exposure.ExperimentTable,
			Columns: []string{exposure.ExperimentColumn},
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
	if nodes := _c.mutation.CohortIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exposure.CohortTable,
			Columns: []string{exposure.CohortColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CohortID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exposure.ConversionsTable,
			Columns: []string{exposure.ConversionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversion.FieldID, field.TypeInt),
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
//	client.Exposure.Create().
//		SetSubjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureUpsert) {
//			SetSubjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureCreate) OnConflict(opts ...sql.ConflictOption) *ExposureUpsertOne {
	_c.conflict = opts
	return &ExposureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exposure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureCreate) OnConflictColumns(columns ...string) *ExposureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureUpsertOne{
		create: _c,
	}
}

type (
	// ExposureUpsertOne is the builder for "upsert"-ing
	//  one Exposure node.
	ExposureUpsertOne struct {
		create *ExposureCreate
	}

	// ExposureUpsert is the "OnConflict" setter.
	ExposureUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubjectID sets the "subject_id" field.
func (u *ExposureUpsert) SetSubjectID(v int) *ExposureUpsert {
	u.Set(exposure.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *ExposureUpsert) UpdateSubjectID() *ExposureUpsert {
	u.SetExcluded(exposure.FieldSubjectID)
	return u
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExposureUpsert) SetExperimentID(v int) *ExposureUpsert {
	u.Set(exposure.FieldExperimentID, v)
	return u
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExposureUpsert) UpdateExperimentID() *ExposureUpsert {
	u.SetExcluded(exposure.FieldExperimentID)
	return u
}

// SetCohortID sets the "cohort_id" field.
func (u *ExposureUpsert) SetCohortID(v int) *ExposureUpsert {
	u.Set(exposure.FieldCohortID, v)
	return u
}

// UpdateCohortID sets the "cohort_id" field to the value that was provided on create.
func (u *ExposureUpsert) UpdateCohortID() *ExposureUpsert {
	u.SetExcluded(exposure.FieldCohortID)
	return u
}

// SetScope sets the "scope" field.
func (u *ExposureUpsert) SetScope(v domain.Scope) *ExposureUpsert {
	u.Set(exposure.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExposureUpsert) UpdateScope() *ExposureUpsert {
	u.SetExcluded(exposure.FieldScope)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ExposureUpsert) SetLastSeenAt(v time.Time) *ExposureUpsert {
	u.Set(exposure.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ExposureUpsert) UpdateLastSeenAt() *ExposureUpsert {
	u.SetExcluded(exposure.FieldLastSeenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Exposure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureUpsertOne) UpdateNewValues() *ExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(exposure.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exposure.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExposureUpsertOne) Ignore() *ExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureUpsertOne) DoNothing() *ExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureCreate.OnConflict
// documentation for more info.
func (u *ExposureUpsertOne) Update(set func(*ExposureUpsert)) *ExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *ExposureUpsertOne) SetSubjectID(v int) *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *ExposureUpsertOne) UpdateSubjectID() *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateSubjectID()
	})
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExposureUpsertOne) SetExperimentID(v int) *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.SetExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExposureUpsertOne) UpdateExperimentID() *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateExperimentID()
	})
}

// SetCohortID sets the "cohort_id" field.
func (u *ExposureUpsertOne) SetCohortID(v int) *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.SetCohortID(v)
	})
}

// UpdateCohortID sets the "cohort_id" field to the value that was provided on create.
func (u *ExposureUpsertOne) UpdateCohortID() *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateCohortID()
	})
}

// SetScope sets the "scope" field.
func (u *ExposureUpsertOne) SetScope(v domain.Scope) *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExposureUpsertOne) UpdateScope() *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateScope()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ExposureUpsertOne) SetLastSeenAt(v time.Time) *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ExposureUpsertOne) UpdateLastSeenAt() *ExposureUpsertOne {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *ExposureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExposureUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExposureUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExposureCreateBulk is the builder for creating many Exposure entities in bulk.
type ExposureCreateBulk struct {
	config
	err      error
	builders []*ExposureCreate
	conflict []sql.ConflictOption
}

// Save creates the Exposure entities in the database.
func (_c *ExposureCreateBulk) Save(ctx context.Context) ([]*Exposure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exposure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExposureMutation)
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
func (_c *ExposureCreateBulk) SaveX(ctx context.Context) []*Exposure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Exposure.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureUpsert) {
//			SetSubjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExposureUpsertBulk {
	_c.conflict = opts
	return &ExposureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exposure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureCreateBulk) OnConflictColumns(columns ...string) *ExposureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureUpsertBulk{
		create: _c,
	}
}

// ExposureUpsertBulk is the builder for "upsert"-ing
// a bulk of Exposure nodes.
type ExposureUpsertBulk struct {
	create *ExposureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Exposure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureUpsertBulk) UpdateNewValues() *ExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(exposure.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exposure.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExposureUpsertBulk) Ignore() *ExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureUpsertBulk) DoNothing() *ExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureCreateBulk.OnConflict
// documentation for more info.
func (u *ExposureUpsertBulk) Update(set func(*ExposureUpsert)) *ExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *ExposureUpsertBulk) SetSubjectID(v int) *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *ExposureUpsertBulk) UpdateSubjectID() *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateSubjectID()
	})
}

// SetExperimentID sets the "experiment_id" field.
func (u *ExposureUpsertBulk) SetExperimentID(v int) *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.SetExperimentID(v)
	})
}

// UpdateExperimentID sets the "experiment_id" field to the value that was provided on create.
func (u *ExposureUpsertBulk) UpdateExperimentID() *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateExperimentID()
	})
}

// SetCohortID sets the "cohort_id" field.
func (u *ExposureUpsertBulk) SetCohortID(v int) *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.SetCohortID(v)
	})
}

// UpdateCohortID sets the "cohort_id" field to the value that was provided on create.
func (u *ExposureUpsertBulk) UpdateCohortID() *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateCohortID()
	})
}

// SetScope sets the "scope" field.
func (u *ExposureUpsertBulk) SetScope(v domain.Scope) *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ExposureUpsertBulk) UpdateScope() *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateScope()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ExposureUpsertBulk) SetLastSeenAt(v time.Time) *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ExposureUpsertBulk) UpdateLastSeenAt() *ExposureUpsertBulk {
	return u.Update(func(s *ExposureUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *ExposureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExposureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
