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
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// SubjectUpdate is the builder for updating Subject entities.
type SubjectUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectMutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdate) Where(ps ...predicate.Subject) *SubjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *SubjectUpdate) SetAccountID(v int) *SubjectUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableAccountID(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubjectUpdate) SetName(v string) *SubjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableName(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *SubjectUpdate) SetScope(v domain.Scope) *SubjectUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableScope(v *domain.Scope) *SubjectUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetLastExposureID sets the "last_exposure_id" field.
func (_u *SubjectUpdate) SetLastExposureID(v int) *SubjectUpdate {
	_u.mutation.ResetLastExposureID()
	_u.mutation.SetLastExposureID(v)
	return _u
}

// SetNillableLastExposureID sets the "last_exposure_id" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableLastExposureID(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetLastExposureID(*v)
	}
	return _u
}

// AddLastExposureID adds value to the "last_exposure_id" field.
func (_u *SubjectUpdate) AddLastExposureID(v int) *SubjectUpdate {
	_u.mutation.AddLastExposureID(v)
	return _u
}

// ClearLastExposureID clears the value of the "last_exposure_id" field.
func (_u *SubjectUpdate) ClearLastExposureID() *SubjectUpdate {
	_u.mutation.ClearLastExposureID()
	return _u
}

// SetLastConversionID sets the "last_conversion_id" field.
func (_u *SubjectUpdate) SetLastConversionID(v int) *SubjectUpdate {
	_u.mutation.ResetLastConversionID()
	_u.mutation.SetLastConversionID(v)
	return _u
}

// SetNillableLastConversionID sets the "last_conversion_id" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableLastConversionID(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetLastConversionID(*v)
	}
	return _u
}

// AddLastConversionID adds value to the "last_conversion_id" field.
func (_u *SubjectUpdate) AddLastConversionID(v int) *SubjectUpdate {
	_u.mutation.AddLastConversionID(v)
	return _u
}

// ClearLastConversionID clears the value of the "last_conversion_id" field.
func (_u *SubjectUpdate) ClearLastConversionID() *SubjectUpdate {
	_u.mutation.ClearLastConversionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectUpdate) SetUpdatedAt(v time.Time) *SubjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *SubjectUpdate) SetAccount(v *Account) *SubjectUpdate {
	return _u.SetAccountID(v.ID)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_u *SubjectUpdate) AddExposureIDs(ids ...int) *SubjectUpdate {
	_u.mutation.AddExposureIDs(ids...)
	return _u
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_u *SubjectUpdate) AddExposures(v ...*Exposure) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExposureIDs(ids...)
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdate) Mutation() *SubjectMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *SubjectUpdate) ClearAccount() *SubjectUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// ClearExposures clears all "exposures" edges to the Exposure entity.
func (_u *SubjectUpdate) ClearExposures() *SubjectUpdate {
	_u.mutation.ClearExposures()
	return _u
}

// RemoveExposureIDs removes the "exposures" edge to Exposure entities by IDs.
func (_u *SubjectUpdate) RemoveExposureIDs(ids ...int) *SubjectUpdate {
	_u.mutation.RemoveExposureIDs(ids...)
	return _u
}

// RemoveExposures removes "exposures" edges to Exposure entities.
func (_u *SubjectUpdate) RemoveExposures(v ...*Exposure) *SubjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExposureIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := subject.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Subject.scope": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subject.account"`)
	}
	return nil
}

func (_u *SubjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(subject.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastExposureID(); ok {
		_spec.SetField(subject.FieldLastExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastExposureID(); ok {
		_spec.AddField(subject.FieldLastExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastExposureIDCleared() {
		_spec.ClearField(subject.FieldLastExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastConversionID(); ok {
		_spec.SetField(subject.FieldLastConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastConversionID(); ok {
		_spec.AddField(subject.FieldLastConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastConversionIDCleared() {
		_spec.ClearField(subject.FieldLastConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExposuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExposuresIDs(); len(nodes) > 0 && !_u.mutation.ExposuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExposuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectUpdateOne is the builder for updating a single Subject entity.
type SubjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectMutation
}

// SetAccountID sets the "account_id" field.
func (_u *SubjectUpdateOne) SetAccountID(v int) *SubjectUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableAccountID(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubjectUpdateOne) SetName(v string) *SubjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableName(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *SubjectUpdateOne) SetScope(v domain.Scope) *SubjectUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableScope(v *domain.Scope) *SubjectUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetLastExposureID sets the "last_exposure_id" field.
func (_u *SubjectUpdateOne) SetLastExposureID(v int) *SubjectUpdateOne {
	_u.mutation.ResetLastExposureID()
	_u.mutation.SetLastExposureID(v)
	return _u
}

// SetNillableLastExposureID sets the "last_exposure_id" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableLastExposureID(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetLastExposureID(*v)
	}
	return _u
}

// AddLastExposureID adds value to the "last_exposure_id" field.
func (_u *SubjectUpdateOne) AddLastExposureID(v int) *SubjectUpdateOne {
	_u.mutation.AddLastExposureID(v)
	return _u
}

// ClearLastExposureID clears the value of the "last_exposure_id" field.
func (_u *SubjectUpdateOne) ClearLastExposureID() *SubjectUpdateOne {
	_u.mutation.ClearLastExposureID()
	return _u
}

// SetLastConversionID sets the "last_conversion_id" field.
func (_u *SubjectUpdateOne) SetLastConversionID(v int) *SubjectUpdateOne {
	_u.mutation.ResetLastConversionID()
	_u.mutation.SetLastConversionID(v)
	return _u
}

// SetNillableLastConversionID sets the "last_conversion_id" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableLastConversionID(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetLastConversionID(*v)
	}
	return _u
}

// AddLastConversionID adds value to the "last_conversion_id" field.
func (_u *SubjectUpdateOne) AddLastConversionID(v int) *SubjectUpdateOne {
	_u.mutation.AddLastConversionID(v)
	return _u
}

// ClearLastConversionID clears the value of the "last_conversion_id" field.
func (_u *SubjectUpdateOne) ClearLastConversionID() *SubjectUpdateOne {
	_u.mutation.ClearLastConversionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectUpdateOne) SetUpdatedAt(v time.Time) *SubjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *SubjectUpdateOne) SetAccount(v *Account) *SubjectUpdateOne {
	return _u.SetAccountID(v.ID)
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by IDs.
func (_u *SubjectUpdateOne) AddExposureIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.AddExposureIDs(ids...)
	return _u
}

// AddExposures adds the "exposures" edges to the Exposure entity.
func (_u *SubjectUpdateOne) AddExposures(v ...*Exposure) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExposureIDs(ids...)
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdateOne) Mutation() *SubjectMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *SubjectUpdateOne) ClearAccount() *SubjectUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// ClearExposures clears all "exposures" edges to the Exposure entity.
func (_u *SubjectUpdateOne) ClearExposures() *SubjectUpdateOne {
	_u.mutation.ClearExposures()
	return _u
}

// RemoveExposureIDs removes the "exposures" edge to Exposure entities by IDs.
func (_u *SubjectUpdateOne) RemoveExposureIDs(ids ...int) *SubjectUpdateOne {
	_u.mutation.RemoveExposureIDs(ids...)
	return _u
}

// RemoveExposures removes "exposures" edges to Exposure entities.
func (_u *SubjectUpdateOne) RemoveExposures(v ...*Exposure) *SubjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExposureIDs(ids...)
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdateOne) Where(ps ...predicate.Subject) *SubjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectUpdateOne) Select(field string, fields ...string) *SubjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subject entity.
func (_u *SubjectUpdateOne) Save(ctx context.Context) (*Subject, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdateOne) SaveX(ctx context.Context) *Subject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := subject.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Subject.scope": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subject.account"`)
	}
	return nil
}

func (_u *SubjectUpdateOne) sqlSave(ctx context.Context) (_node *Subject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subject.FieldID)
		for _, f := range fields {
			if !subject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subject.FieldID {
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
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(subject.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastExposureID(); ok {
		_spec.SetField(subject.FieldLastExposureID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastExposureID(); ok {
		_spec.AddField(subject.FieldLastExposureID, field.TypeInt, value)
	}
	if _u.mutation.LastExposureIDCleared() {
		_spec.ClearField(subject.FieldLastExposureID, field.TypeInt)
	}
	if value, ok := _u.mutation.LastConversionID(); ok {
		_spec.SetField(subject.FieldLastConversionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastConversionID(); ok {
		_spec.AddField(subject.FieldLastConversionID, field.TypeInt, value)
	}
	if _u.mutation.LastConversionIDCleared() {
		_spec.ClearField(subject.FieldLastConversionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExposuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExposuresIDs(); len(nodes) > 0 && !_u.mutation.ExposuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExposuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Subject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
