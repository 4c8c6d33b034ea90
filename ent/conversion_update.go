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
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ConversionUpdate is the builder for updating Conversion entities.
type ConversionUpdate struct {
	config
	hooks    []Hook
	mutation *ConversionMutation
}

// Where appends a list predicates to the ConversionUpdate builder.
func (_u *ConversionUpdate) Where(ps ...predicate.Conversion) *ConversionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExposureID sets the "exposure_id" field.
func (_u *ConversionUpdate) SetExposureID(v int) *ConversionUpdate {
	_u.mutation.SetExposureID(v)
	return _u
}

// SetNillableExposureID sets the "exposure_id" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableExposureID(v *int) *ConversionUpdate {
	if v != nil {
		_u.SetExposureID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ConversionUpdate) SetScope(v domain.Scope) *ConversionUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableScope(v *domain.Scope) *ConversionUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ConversionUpdate) SetValue(v float64) *ConversionUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableValue(v *float64) *ConversionUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *ConversionUpdate) AddValue(v float64) *ConversionUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ConversionUpdate) ClearValue() *ConversionUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ConversionUpdate) SetLastSeenAt(v time.Time) *ConversionUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableLastSeenAt(v *time.Time) *ConversionUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetExposure sets the "exposure" edge to the Exposure entity.
func (_u *ConversionUpdate) SetExposure(v *Exposure) *ConversionUpdate {
	return _u.SetExposureID(v.ID)
}

// Mutation returns the ConversionMutation object of the builder.
func (_u *ConversionUpdate) Mutation() *ConversionMutation {
	return _u.mutation
}

// ClearExposure clears the "exposure" edge to the Exposure entity.
func (_u *ConversionUpdate) ClearExposure() *ConversionUpdate {
	_u.mutation.ClearExposure()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversionUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := conversion.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Conversion.scope": %w`, err)}
		}
	}
	if _u.mutation.ExposureCleared() && len(_u.mutation.ExposureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversion.exposure"`)
	}
	return nil
}

func (_u *ConversionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversion.Table, conversion.Columns, sqlgraph.NewFieldSpec(conversion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(conversion.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(conversion.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(conversion.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(conversion.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(conversion.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.ExposureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExposureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversionUpdateOne is the builder for updating a single Conversion entity.
type ConversionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversionMutation
}

// SetExposureID sets the "exposure_id" field.
func (_u *ConversionUpdateOne) SetExposureID(v int) *ConversionUpdateOne {
	_u.mutation.SetExposureID(v)
	return _u
}

// SetNillableExposureID sets the "exposure_id" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableExposureID(v *int) *ConversionUpdateOne {
	if v != nil {
		_u.SetExposureID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ConversionUpdateOne) SetScope(v domain.Scope) *ConversionUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableScope(v *domain.Scope) *ConversionUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ConversionUpdateOne) SetValue(v float64) *ConversionUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableValue(v *float64) *ConversionUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *ConversionUpdateOne) AddValue(v float64) *ConversionUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ConversionUpdateOne) ClearValue() *ConversionUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ConversionUpdateOne) SetLastSeenAt(v time.Time) *ConversionUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableLastSeenAt(v *time.Time) *ConversionUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetExposure sets the "exposure" edge to the Exposure entity.
func (_u *ConversionUpdateOne) SetExposure(v *Exposure) *ConversionUpdateOne {
	return _u.SetExposureID(v.ID)
}

// Mutation returns the ConversionMutation object of the builder.
func (_u *ConversionUpdateOne) Mutation() *ConversionMutation {
	return _u.mutation
}

// ClearExposure clears the "exposure" edge to the Exposure entity.
func (_u *ConversionUpdateOne) ClearExposure() *ConversionUpdateOne {
	_u.mutation.ClearExposure()
	return _u
}

// Where appends a list predicates to the ConversionUpdate builder.
func (_u *ConversionUpdateOne) Where(ps ...predicate.Conversion) *ConversionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversionUpdateOne) Select(field string, fields ...string) *ConversionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversion entity.
func (_u *ConversionUpdateOne) Save(ctx context.Context) (*Conversion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionUpdateOne) SaveX(ctx context.Context) *Conversion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversionUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := conversion.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Conversion.scope": %w`, err)}
		}
	}
	if _u.mutation.ExposureCleared() && len(_u.mutation.ExposureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversion.exposure"`)
	}
	return nil
}

func (_u *ConversionUpdateOne) sqlSave(ctx context.Context) (_node *Conversion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversion.Table, conversion.Columns, sqlgraph.NewFieldSpec(conversion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversion.FieldID)
		for _, f := range fields {
			if !conversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversion.FieldID {
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
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(conversion.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(conversion.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(conversion.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(conversion.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(conversion.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.ExposureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExposureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
