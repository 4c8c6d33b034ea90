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
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdate) SetName(v string) *PlanUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableName(v *string) *PlanUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriceInCents sets the "price_in_cents" field.
func (_u *PlanUpdate) SetPriceInCents(v int) *PlanUpdate {
	_u.mutation.ResetPriceInCents()
	_u.mutation.SetPriceInCents(v)
	return _u
}

// SetNillablePriceInCents sets the "price_in_cents" field if the given value is not nil.
func (_u *PlanUpdate) SetNillablePriceInCents(v *int) *PlanUpdate {
	if v != nil {
		_u.SetPriceInCents(*v)
	}
	return _u
}

// AddPriceInCents adds value to the "price_in_cents" field.
func (_u *PlanUpdate) AddPriceInCents(v int) *PlanUpdate {
	_u.mutation.AddPriceInCents(v)
	return _u
}

// SetMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field.
func (_u *PlanUpdate) SetMaxSubjectsPerExperiment(v int) *PlanUpdate {
	_u.mutation.ResetMaxSubjectsPerExperiment()
	_u.mutation.SetMaxSubjectsPerExperiment(v)
	return _u
}

// SetNillableMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableMaxSubjectsPerExperiment(v *int) *PlanUpdate {
	if v != nil {
		_u.SetMaxSubjectsPerExperiment(*v)
	}
	return _u
}

// AddMaxSubjectsPerExperiment adds value to the "max_subjects_per_experiment" field.
func (_u *PlanUpdate) AddMaxSubjectsPerExperiment(v int) *PlanUpdate {
	_u.mutation.AddMaxSubjectsPerExperiment(v)
	return _u
}

// SetMaxActiveExperiments sets the "max_active_experiments" field.
func (_u *PlanUpdate) SetMaxActiveExperiments(v int) *PlanUpdate {
	_u.mutation.ResetMaxActiveExperiments()
	_u.mutation.SetMaxActiveExperiments(v)
	return _u
}

// SetNillableMaxActiveExperiments sets the "max_active_experiments" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableMaxActiveExperiments(v *int) *PlanUpdate {
	if v != nil {
		_u.SetMaxActiveExperiments(*v)
	}
	return _u
}

// AddMaxActiveExperiments adds value to the "max_active_experiments" field.
func (_u *PlanUpdate) AddMaxActiveExperiments(v int) *PlanUpdate {
	_u.mutation.AddMaxActiveExperiments(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdate) SetUpdatedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAccountIDs adds the "accounts" edge to the Account entity by IDs.
func (_u *PlanUpdate) AddAccountIDs(ids ...int) *PlanUpdate {
	_u.mutation.AddAccountIDs(ids...)
	return _u
}

// AddAccounts adds the "accounts" edges to the Account entity.
func (_u *PlanUpdate) AddAccounts(v ...*Account) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccountIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearAccounts clears all "accounts" edges to the Account entity.
func (_u *PlanUpdate) ClearAccounts() *PlanUpdate {
	_u.mutation.ClearAccounts()
	return _u
}

// RemoveAccountIDs removes the "accounts" edge to Account entities by IDs.
func (_u *PlanUpdate) RemoveAccountIDs(ids ...int) *PlanUpdate {
	_u.mutation.RemoveAccountIDs(ids...)
	return _u
}

// RemoveAccounts removes "accounts" edges to Account entities.
func (_u *PlanUpdate) RemoveAccounts(v ...*Account) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccountIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceInCents(); ok {
		if err := plan.PriceInCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_in_cents", err: fmt.Errorf(`ent: validator failed for field "Plan.price_in_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxSubjectsPerExperiment(); ok {
		if err := plan.MaxSubjectsPerExperimentValidator(v); err != nil {
			return &ValidationError{Name: "max_subjects_per_experiment", err: fmt.Errorf(`ent: validator failed for field "Plan.max_subjects_per_experiment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxActiveExperiments(); ok {
		if err := plan.MaxActiveExperimentsValidator(v); err != nil {
			return &ValidationError{Name: "max_active_experiments", err: fmt.Errorf(`ent: validator failed for field "Plan.max_active_experiments": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceInCents(); ok {
		_spec.SetField(plan.FieldPriceInCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceInCents(); ok {
		_spec.AddField(plan.FieldPriceInCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSubjectsPerExperiment(); ok {
		_spec.SetField(plan.FieldMaxSubjectsPerExperiment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSubjectsPerExperiment(); ok {
		_spec.AddField(plan.FieldMaxSubjectsPerExperiment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxActiveExperiments(); ok {
		_spec.SetField(plan.FieldMaxActiveExperiments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxActiveExperiments(); ok {
		_spec.AddField(plan.FieldMaxActiveExperiments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccountsIDs(); len(nodes) > 0 && !_u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetName sets the "name" field.
func (_u *PlanUpdateOne) SetName(v string) *PlanUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableName(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriceInCents sets the "price_in_cents" field.
func (_u *PlanUpdateOne) SetPriceInCents(v int) *PlanUpdateOne {
	_u.mutation.ResetPriceInCents()
	_u.mutation.SetPriceInCents(v)
	return _u
}

// SetNillablePriceInCents sets the "price_in_cents" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillablePriceInCents(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetPriceInCents(*v)
	}
	return _u
}

// AddPriceInCents adds value to the "price_in_cents" field.
func (_u *PlanUpdateOne) AddPriceInCents(v int) *PlanUpdateOne {
	_u.mutation.AddPriceInCents(v)
	return _u
}

// SetMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field.
func (_u *PlanUpdateOne) SetMaxSubjectsPerExperiment(v int) *PlanUpdateOne {
	_u.mutation.ResetMaxSubjectsPerExperiment()
	_u.mutation.SetMaxSubjectsPerExperiment(v)
	return _u
}

// SetNillableMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableMaxSubjectsPerExperiment(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetMaxSubjectsPerExperiment(*v)
	}
	return _u
}

// AddMaxSubjectsPerExperiment adds value to the "max_subjects_per_experiment" field.
func (_u *PlanUpdateOne) AddMaxSubjectsPerExperiment(v int) *PlanUpdateOne {
	_u.mutation.AddMaxSubjectsPerExperiment(v)
	return _u
}

// SetMaxActiveExperiments sets the "max_active_experiments" field.
func (_u *PlanUpdateOne) SetMaxActiveExperiments(v int) *PlanUpdateOne {
	_u.mutation.ResetMaxActiveExperiments()
	_u.mutation.SetMaxActiveExperiments(v)
	return _u
}

// SetNillableMaxActiveExperiments sets the "max_active_experiments" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableMaxActiveExperiments(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetMaxActiveExperiments(*v)
	}
	return _u
}

// AddMaxActiveExperiments adds value to the "max_active_experiments" field.
func (_u *PlanUpdateOne) AddMaxActiveExperiments(v int) *PlanUpdateOne {
	_u.mutation.AddMaxActiveExperiments(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdateOne) SetUpdatedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAccountIDs adds the "accounts" edge to the Account entity by IDs.
func (_u *PlanUpdateOne) AddAccountIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.AddAccountIDs(ids...)
	return _u
}

// AddAccounts adds the "accounts" edges to the Account entity.
func (_u *PlanUpdateOne) AddAccounts(v ...*Account) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccountIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearAccounts clears all "accounts" edges to the Account entity.
func (_u *PlanUpdateOne) ClearAccounts() *PlanUpdateOne {
	_u.mutation.ClearAccounts()
	return _u
}

// RemoveAccountIDs removes the "accounts" edge to Account entities by IDs.
func (_u *PlanUpdateOne) RemoveAccountIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.RemoveAccountIDs(ids...)
	return _u
}

// RemoveAccounts removes "accounts" edges to Account entities.
func (_u *PlanUpdateOne) RemoveAccounts(v ...*Account) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccountIDs(ids...)
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceInCents(); ok {
		if err := plan.PriceInCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_in_cents", err: fmt.Errorf(`ent: validator failed for field "Plan.price_in_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxSubjectsPerExperiment(); ok {
		if err := plan.MaxSubjectsPerExperimentValidator(v); err != nil {
			return &ValidationError{Name: "max_subjects_per_experiment", err: fmt.Errorf(`ent: validator failed for field "Plan.max_subjects_per_experiment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxActiveExperiments(); ok {
		if err := plan.MaxActiveExperimentsValidator(v); err != nil {
			return &ValidationError{Name: "max_active_experiments", err: fmt.Errorf(`ent: validator failed for field "Plan.max_active_experiments": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceInCents(); ok {
		_spec.SetField(plan.FieldPriceInCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceInCents(); ok {
		_spec.AddField(plan.FieldPriceInCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSubjectsPerExperiment(); ok {
		_spec.SetField(plan.FieldMaxSubjectsPerExperiment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSubjectsPerExperiment(); ok {
		_spec.AddField(plan.FieldMaxSubjectsPerExperiment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxActiveExperiments(); ok {
		_spec.SetField(plan.FieldMaxActiveExperiments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxActiveExperiments(); ok {
		_spec.AddField(plan.FieldMaxActiveExperiments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccountsIDs(); len(nodes) > 0 && !_u.mutation.AccountsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
