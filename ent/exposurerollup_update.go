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
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExposureRollupUpdate is the builder for updating ExposureRollup entities.
type ExposureRollupUpdate struct {
	config
	hooks    []Hook
	mutation *ExposureRollupMutation
}

// Where appends a list predicates to the ExposureRollupUpdate builder.
func (_u *ExposureRollupUpdate) Where(ps ...predicate.ExposureRollup) *ExposureRollupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDay sets the "day" field.
func (_u *ExposureRollupUpdate) SetDay(v time.Time) *ExposureRollupUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ExposureRollupUpdate) SetNillableDay(v *time.Time) *ExposureRollupUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExposureRollupUpdate) SetUserID(v int) *ExposureRollupUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExposureRollupUpdate) SetNillableUserID(v *int) *ExposureRollupUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ExposureRollupUpdate) AddUserID(v int) *ExposureRollupUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExposureRollupUpdate) SetExperimentID(v int) *ExposureRollupUpdate {
	_u.mutation.ResetExperimentID()
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExposureRollupUpdate) SetNillableExperimentID(v *int) *ExposureRollupUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// AddExperimentID adds value to the "experiment_id" field.
func (_u *ExposureRollupUpdate) AddExperimentID(v int) *ExposureRollupUpdate {
	_u.mutation.AddExperimentID(v)
	return _u
}

// SetExperimentName sets the "experiment_name" field.
func (_u *ExposureRollupUpdate) SetExperimentName(v string) *ExposureRollupUpdate {
	_u.mutation.SetExperimentName(v)
	return _u
}

// SetNillableExperimentName sets the "experiment_name" field if the given value is not nil.
func (_u *ExposureRollupUpdate) SetNillableExperimentName(v *string) *ExposureRollupUpdate {
	if v != nil {
		_u.SetExperimentName(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExposureRollupUpdate) SetScope(v domain.Scope) *ExposureRollupUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExposureRollupUpdate) SetNillableScope(v *domain.Scope) *ExposureRollupUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetExposures sets the "exposures" field.
func (_u *ExposureRollupUpdate) SetExposures(v int) *ExposureRollupUpdate {
	_u.mutation.ResetExposures()
	_u.mutation.SetExposures(v)
	return _u
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_u *ExposureRollupUpdate) SetNillableExposures(v *int) *ExposureRollupUpdate {
	if v != nil {
		_u.SetExposures(*v)
	}
	return _u
}

// AddExposures adds value to the "exposures" field.
func (_u *ExposureRollupUpdate) AddExposures(v int) *ExposureRollupUpdate {
	_u.mutation.AddExposures(v)
	return _u
}

// SetConversions sets the "conversions" field.
func (_u *ExposureRollupUpdate) SetConversions(v int) *ExposureRollupUpdate {
	_u.mutation.ResetConversions()
	_u.mutation.SetConversions(v)
	return _u
}

// SetNillableConversions sets the "conversions" field if the given value is not nil.
func (_u *ExposureRollupUpdate) SetNillableConversions(v *int) *ExposureRollupUpdate {
	if v != nil {
		_u.SetConversions(*v)
	}
	return _u
}

// AddConversions adds value to the "conversions" field.
func (_u *ExposureRollupUpdate) AddConversions(v int) *ExposureRollupUpdate {
	_u.mutation.AddConversions(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExposureRollupUpdate) SetUpdatedAt(v time.Time) *ExposureRollupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExposureRollupMutation object of the builder.
func (_u *ExposureRollupUpdate) Mutation() *ExposureRollupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExposureRollupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureRollupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExposureRollupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureRollupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExposureRollupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exposurerollup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureRollupUpdate) check() error {
	if v, ok := _u.mutation.ExperimentName(); ok {
		if err := exposurerollup.ExperimentNameValidator(v); err != nil {
			return &ValidationError{Name: "experiment_name", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.experiment_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := exposurerollup.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exposures(); ok {
		if err := exposurerollup.ExposuresValidator(v); err != nil {
			return &ValidationError{Name: "exposures", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.exposures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Conversions(); ok {
		if err := exposurerollup.ConversionsValidator(v); err != nil {
			return &ValidationError{Name: "conversions", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.conversions": %w`, err)}
		}
	}
	return nil
}

func (_u *ExposureRollupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposurerollup.Table, exposurerollup.Columns, sqlgraph.NewFieldSpec(exposurerollup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(exposurerollup.FieldDay, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exposurerollup.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(exposurerollup.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(exposurerollup.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperimentID(); ok {
		_spec.AddField(exposurerollup.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExperimentName(); ok {
		_spec.SetField(exposurerollup.FieldExperimentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(exposurerollup.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Exposures(); ok {
		_spec.SetField(exposurerollup.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposures(); ok {
		_spec.AddField(exposurerollup.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Conversions(); ok {
		_spec.SetField(exposurerollup.FieldConversions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversions(); ok {
		_spec.AddField(exposurerollup.FieldConversions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exposurerollup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposurerollup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExposureRollupUpdateOne is the builder for updating a single ExposureRollup entity.
type ExposureRollupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExposureRollupMutation
}

// SetDay sets the "day" field.
func (_u *ExposureRollupUpdateOne) SetDay(v time.Time) *ExposureRollupUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ExposureRollupUpdateOne) SetNillableDay(v *time.Time) *ExposureRollupUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExposureRollupUpdateOne) SetUserID(v int) *ExposureRollupUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExposureRollupUpdateOne) SetNillableUserID(v *int) *ExposureRollupUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ExposureRollupUpdateOne) AddUserID(v int) *ExposureRollupUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExposureRollupUpdateOne) SetExperimentID(v int) *ExposureRollupUpdateOne {
	_u.mutation.ResetExperimentID()
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExposureRollupUpdateOne) SetNillableExperimentID(v *int) *ExposureRollupUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// AddExperimentID adds value to the "experiment_id" field.
func (_u *ExposureRollupUpdateOne) AddExperimentID(v int) *ExposureRollupUpdateOne {
	_u.mutation.AddExperimentID(v)
	return _u
}

// SetExperimentName sets the "experiment_name" field.
func (_u *ExposureRollupUpdateOne) SetExperimentName(v string) *ExposureRollupUpdateOne {
	_u.mutation.SetExperimentName(v)
	return _u
}

// SetNillableExperimentName sets the "experiment_name" field if the given value is not nil.
func (_u *ExposureRollupUpdateOne) SetNillableExperimentName(v *string) *ExposureRollupUpdateOne {
	if v != nil {
		_u.SetExperimentName(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExposureRollupUpdateOne) SetScope(v domain.Scope) *ExposureRollupUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExposureRollupUpdateOne) SetNillableScope(v *domain.Scope) *ExposureRollupUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetExposures sets the "exposures" field.
func (_u *ExposureRollupUpdateOne) SetExposures(v int) *ExposureRollupUpdateOne {
	_u.mutation.ResetExposures()
	_u.mutation.SetExposures(v)
	return _u
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_u *ExposureRollupUpdateOne) SetNillableExposures(v *int) *ExposureRollupUpdateOne {
	if v != nil {
		_u.SetExposures(*v)
	}
	return _u
}

// AddExposures adds value to the "exposures" field.
func (_u *ExposureRollupUpdateOne) AddExposures(v int) *ExposureRollupUpdateOne {
	_u.mutation.AddExposures(v)
	return _u
}

// SetConversions sets the "conversions" field.
func (_u *ExposureRollupUpdateOne) SetConversions(v int) *ExposureRollupUpdateOne {
	_u.mutation.ResetConversions()
	_u.mutation.SetConversions(v)
	return _u
}

// SetNillableConversions sets the "conversions" field if the given value is not nil.
func (_u *ExposureRollupUpdateOne) SetNillableConversions(v *int) *ExposureRollupUpdateOne {
	if v != nil {
		_u.SetConversions(*v)
	}
	return _u
}

// AddConversions adds value to the "conversions" field.
func (_u *ExposureRollupUpdateOne) AddConversions(v int) *ExposureRollupUpdateOne {
	_u.mutation.AddConversions(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExposureRollupUpdateOne) SetUpdatedAt(v time.Time) *ExposureRollupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExposureRollupMutation object of the builder.
func (_u *ExposureRollupUpdateOne) Mutation() *ExposureRollupMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExposureRollupUpdate builder.
func (_u *ExposureRollupUpdateOne) Where(ps ...predicate.ExposureRollup) *ExposureRollupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExposureRollupUpdateOne) Select(field string, fields ...string) *ExposureRollupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExposureRollup entity.
func (_u *ExposureRollupUpdateOne) Save(ctx context.Context) (*ExposureRollup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureRollupUpdateOne) SaveX(ctx context.Context) *ExposureRollup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExposureRollupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureRollupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExposureRollupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exposurerollup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureRollupUpdateOne) check() error {
	if v, ok := _u.mutation.ExperimentName(); ok {
		if err := exposurerollup.ExperimentNameValidator(v); err != nil {
			return &ValidationError{Name: "experiment_name", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.experiment_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := exposurerollup.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exposures(); ok {
		if err := exposurerollup.ExposuresValidator(v); err != nil {
			return &ValidationError{Name: "exposures", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.exposures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Conversions(); ok {
		if err := exposurerollup.ConversionsValidator(v); err != nil {
			return &ValidationError{Name: "conversions", err: fmt.Errorf(`ent: validator failed for field "ExposureRollup.conversions": %w`, err)}
		}
	}
	return nil
}

func (_u *ExposureRollupUpdateOne) sqlSave(ctx context.Context) (_node *ExposureRollup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposurerollup.Table, exposurerollup.Columns, sqlgraph.NewFieldSpec(exposurerollup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExposureRollup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exposurerollup.FieldID)
		for _, f := range fields {
			if !exposurerollup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exposurerollup.FieldID {
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
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(exposurerollup.FieldDay, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exposurerollup.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(exposurerollup.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(exposurerollup.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperimentID(); ok {
		_spec.AddField(exposurerollup.FieldExperimentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExperimentName(); ok {
		_spec.SetField(exposurerollup.FieldExperimentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(exposurerollup.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Exposures(); ok {
		_spec.SetField(exposurerollup.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposures(); ok {
		_spec.AddField(exposurerollup.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Conversions(); ok {
		_spec.SetField(exposurerollup.FieldConversions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversions(); ok {
		_spec.AddField(exposurerollup.FieldConversions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exposurerollup.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ExposureRollup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposurerollup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
