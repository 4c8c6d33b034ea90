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
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tjwaterman99/quicksplit-api/ent/experimentresult"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExperimentResultUpdate is the builder for updating ExperimentResult entities.
type ExperimentResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExperimentResultMutation
}

// Where appends a list predicates to the ExperimentResultUpdate builder.
func (_u *ExperimentResultUpdate) Where(ps ...predicate.ExperimentResult) *ExperimentResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExperimentResultUpdate) SetExperimentID(v int) *ExperimentResultUpdate {
	_u.mutation.ResetExperimentID()
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableExperimentID(v *int) *ExperimentResultUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// AddExperimentID adds value to the "experiment_id" field.
func (_u *ExperimentResultUpdate) AddExperimentID(v int) *ExperimentResultUpdate {
	_u.mutation.AddExperimentID(v)
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExperimentResultUpdate) SetScope(v domain.Scope) *ExperimentResultUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableScope(v *domain.Scope) *ExperimentResultUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExperimentResultUpdate) SetVersion(v string) *ExperimentResultUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableVersion(v *string) *ExperimentResultUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExperimentResultUpdate) SetFields(v json.RawMessage) *ExperimentResultUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExperimentResultUpdate) AppendFields(v json.RawMessage) *ExperimentResultUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// SetRanAt sets the "ran_at" field.
func (_u *ExperimentResultUpdate) SetRanAt(v time.Time) *ExperimentResultUpdate {
	_u.mutation.SetRanAt(v)
	return _u
}

// SetNillableRanAt sets the "ran_at" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableRanAt(v *time.Time) *ExperimentResultUpdate {
	if v != nil {
		_u.SetRanAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentResultUpdate) SetUpdatedAt(v time.Time) *ExperimentResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExperimentResultMutation object of the builder.
func (_u *ExperimentResultUpdate) Mutation() *ExperimentResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExperimentResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExperimentResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experimentresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentResultUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := experimentresult.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := experimentresult.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ExperimentResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentresult.Table, experimentresult.Columns, sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(experimentresult.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperimentID(); ok {
		_spec.AddField(experimentresult.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(experimentresult.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(experimentresult.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(experimentresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, experimentresult.FieldFields, value)
		})
	}
	if value, ok := _u.mutation.RanAt(); ok {
		_spec.SetField(experimentresult.FieldRanAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExperimentResultUpdateOne is the builder for updating a single ExperimentResult entity.
type ExperimentResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperimentResultMutation
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExperimentResultUpdateOne) SetExperimentID(v int) *ExperimentResultUpdateOne {
	_u.mutation.ResetExperimentID()
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableExperimentID(v *int) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// AddExperimentID adds value to the "experiment_id" field.
func (_u *ExperimentResultUpdateOne) AddExperimentID(v int) *ExperimentResultUpdateOne {
	_u.mutation.AddExperimentID(v)
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExperimentResultUpdateOne) SetScope(v domain.Scope) *ExperimentResultUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableScope(v *domain.Scope) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExperimentResultUpdateOne) SetVersion(v string) *ExperimentResultUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableVersion(v *string) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExperimentResultUpdateOne) SetFields(v json.RawMessage) *ExperimentResultUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExperimentResultUpdateOne) AppendFields(v json.RawMessage) *ExperimentResultUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// SetRanAt sets the "ran_at" field.
func (_u *ExperimentResultUpdateOne) SetRanAt(v time.Time) *ExperimentResultUpdateOne {
	_u.mutation.SetRanAt(v)
	return _u
}

// SetNillableRanAt sets the "ran_at" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableRanAt(v *time.Time) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetRanAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentResultUpdateOne) SetUpdatedAt(v time.Time) *ExperimentResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExperimentResultMutation object of the builder.
func (_u *ExperimentResultUpdateOne) Mutation() *ExperimentResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExperimentResultUpdate builder.
func (_u *ExperimentResultUpdateOne) Where(ps ...predicate.ExperimentResult) *ExperimentResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExperimentResultUpdateOne) Select(field string, fields ...string) *ExperimentResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExperimentResult entity.
func (_u *ExperimentResultUpdateOne) Save(ctx context.Context) (*ExperimentResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentResultUpdateOne) SaveX(ctx context.Context) *ExperimentResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExperimentResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experimentresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentResultUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := experimentresult.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := experimentresult.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ExperimentResultUpdateOne) sqlSave(ctx context.Context) (_node *ExperimentResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentresult.Table, experimentresult.Columns, sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExperimentResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experimentresult.FieldID)
		for _, f := range fields {
			if !experimentresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experimentresult.FieldID {
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
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(experimentresult.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperimentID(); ok {
		_spec.AddField(experimentresult.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(experimentresult.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(experimentresult.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(experimentresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, experimentresult.FieldFields, value)
		})
	}
	if value, ok := _u.mutation.RanAt(); ok {
		_spec.SetField(experimentresult.FieldRanAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentresult.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ExperimentResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
