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
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExposureUpdate is the builder for updating Exposure entities.
type ExposureUpdate struct {
	config
	hooks    []Hook
	mutation *ExposureMutation
}

// Where appends a list predicates to the ExposureUpdate builder.
func (_u *ExposureUpdate) Where(ps ...predicate.Exposure) *ExposureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ExposureUpdate) SetSubjectID(v int) *ExposureUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ExposureUpdate) SetNillableSubjectID(v *int) *ExposureUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExposureUpdate) SetExperimentID(v int) *ExposureUpdate {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExposureUpdate) SetNillableExperimentID(v *int) *ExposureUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetCohortID sets the "cohort_id" field.
func (_u *ExposureUpdate) SetCohortID(v int) *ExposureUpdate {
	_u.mutation.SetCohortID(v)
	return _u
}

// SetNillableCohortID sets the "cohort_id" field if the given value is not nil.
func (_u *ExposureUpdate) SetNillableCohortID(v *int) *ExposureUpdate {
	if v != nil {
		_u.SetCohortID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExposureUpdate) SetScope(v domain.Scope) *ExposureUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExposureUpdate) SetNillableScope(v *domain.Scope) *ExposureUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ExposureUpdate) SetLastSeenAt(v time.Time) *ExposureUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ExposureUpdate) SetNillableLastSeenAt(v *time.Time) *ExposureUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *ExposureUpdate) SetSubject(v *Subject) *ExposureUpdate {
	return _u.SetSubjectID(v.ID)
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *ExposureUpdate) SetExperiment(v *Experiment) *ExposureUpdate {
	return _u.SetExperimentID(v.ID)
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_u *ExposureUpdate) SetCohort(v *Cohort) *ExposureUpdate {
	return _u.SetCohortID(v.ID)
}

// AddConversionIDs adds the "conversions" edge to the Conversion entity by IDs.
func (_u *ExposureUpdate) AddConversionIDs(ids ...int) *ExposureUpdate {
	_u.mutation.AddConversionIDs(ids...)
	return _u
}

// AddConversions adds the "conversions" edges to the Conversion entity.
func (_u *ExposureUpdate) AddConversions(v ...*Conversion) *ExposureUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversionIDs(ids...)
}

// Mutation returns the ExposureMutation object of the builder.
func (_u *ExposureUpdate) Mutation() *ExposureMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *ExposureUpdate) ClearSubject() *ExposureUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *ExposureUpdate) ClearExperiment() *ExposureUpdate {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (_u *ExposureUpdate) ClearCohort() *ExposureUpdate {
	_u.mutation.ClearCohort()
	return _u
}

// ClearConversions clears all "conversions" edges to the Conversion entity.
func (_u *ExposureUpdate) ClearConversions() *ExposureUpdate {
	_u.mutation.ClearConversions()
	return _u
}

// RemoveConversionIDs removes the "conversions" edge to Conversion entities by IDs.
func (_u *ExposureUpdate) RemoveConversionIDs(ids ...int) *ExposureUpdate {
	_u.mutation.RemoveConversionIDs(ids...)
	return _u
}

// RemoveConversions removes "conversions" edges to Conversion entities.
func (_u *ExposureUpdate) RemoveConversions(v ...*Conversion) *ExposureUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExposureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExposureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := exposure.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Exposure.scope": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Exposure.subject"`)
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Exposure.experiment"`)
	}
	if _u.mutation.CohortCleared() && len(_u.mutation.CohortIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Exposure.cohort"`)
	}
	return nil
}

func (_u *ExposureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposure.Table, exposure.Columns, sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(exposure.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(exposure.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExperimentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CohortCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CohortIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversionsIDs(); len(nodes) > 0 && !_u.mutation.ConversionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExposureUpdateOne is the builder for updating a single Exposure entity.
type ExposureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExposureMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *ExposureUpdateOne) SetSubjectID(v int) *ExposureUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ExposureUpdateOne) SetNillableSubjectID(v *int) *ExposureUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExposureUpdateOne) SetExperimentID(v int) *ExposureUpdateOne {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExposureUpdateOne) SetNillableExperimentID(v *int) *ExposureUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetCohortID sets the "cohort_id" field.
func (_u *ExposureUpdateOne) SetCohortID(v int) *ExposureUpdateOne {
	_u.mutation.SetCohortID(v)
	return _u
}

// SetNillableCohortID sets the "cohort_id" field if the given value is not nil.
func (_u *ExposureUpdateOne) SetNillableCohortID(v *int) *ExposureUpdateOne {
	if v != nil {
		_u.SetCohortID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExposureUpdateOne) SetScope(v domain.Scope) *ExposureUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExposureUpdateOne) SetNillableScope(v *domain.Scope) *ExposureUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ExposureUpdateOne) SetLastSeenAt(v time.Time) *ExposureUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ExposureUpdateOne) SetNillableLastSeenAt(v *time.Time) *ExposureUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *ExposureUpdateOne) SetSubject(v *Subject) *ExposureUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *ExposureUpdateOne) SetExperiment(v *Experiment) *ExposureUpdateOne {
	return _u.SetExperimentID(v.ID)
}

// SetCohort sets the "cohort" edge to the Cohort entity.
func (_u *ExposureUpdateOne) SetCohort(v *Cohort) *ExposureUpdateOne {
	return _u.SetCohortID(v.ID)
}

// AddConversionIDs adds the "conversions" edge to the Conversion entity by IDs.
func (_u *ExposureUpdateOne) AddConversionIDs(ids ...int) *ExposureUpdateOne {
	_u.mutation.AddConversionIDs(ids...)
	return _u
}

// AddConversions adds the "conversions" edges to the Conversion entity.
func (_u *ExposureUpdateOne) AddConversions(v ...*Conversion) *ExposureUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversionIDs(ids...)
}

// Mutation returns the ExposureMutation object of the builder.
func (_u *ExposureUpdateOne) Mutation() *ExposureMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *ExposureUpdateOne) ClearSubject() *ExposureUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *ExposureUpdateOne) ClearExperiment() *ExposureUpdateOne {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (_u *ExposureUpdateOne) ClearCohort() *ExposureUpdateOne {
	_u.mutation.ClearCohort()
	return _u
}

// ClearConversions clears all "conversions" edges to the Conversion entity.
func (_u *ExposureUpdateOne) ClearConversions() *ExposureUpdateOne {
	_u.mutation.ClearConversions()
	return _u
}

// RemoveConversionIDs removes the "conversions" edge to Conversion entities by IDs.
func (_u *ExposureUpdateOne) RemoveConversionIDs(ids ...int) *ExposureUpdateOne {
	_u.mutation.RemoveConversionIDs(ids...)
	return _u
}

// RemoveConversions removes "conversions" edges to Conversion entities.
func (_u *ExposureUpdateOne) RemoveConversions(v ...*Conversion) *ExposureUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversionIDs(ids...)
}

// Where appends a list predicates to the ExposureUpdate builder.
func (_u *ExposureUpdateOne) Where(ps ...predicate.Exposure) *ExposureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExposureUpdateOne) Select(field string, fields ...string) *ExposureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exposure entity.
func (_u *ExposureUpdateOne) Save(ctx context.Context) (*Exposure, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureUpdateOne) SaveX(ctx context.Context) *Exposure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExposureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := exposure.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Exposure.scope": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Exposure.subject"`)
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Exposure.experiment"`)
	}
	if _u.mutation.CohortCleared() && len(_u.mutation.CohortIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Exposure.cohort"`)
	}
	return nil
}

func (_u *ExposureUpdateOne) sqlSave(ctx context.Context) (_node *Exposure, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposure.Table, exposure.Columns, sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exposure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exposure.FieldID)
		for _, f := range fields {
			if !exposure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exposure.FieldID {
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
		_spec.SetField(exposure.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(exposure.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExperimentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CohortCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CohortIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversionsIDs(); len(nodes) > 0 && !_u.mutation.ConversionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Exposure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
