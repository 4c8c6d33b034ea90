// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
)

// ExposureQuery is the builder for querying Exposure entities.
type ExposureQuery struct {
	config
	ctx             *QueryContext
	order           []exposure.OrderOption
	inters          []Interceptor
	predicates      []predicate.Exposure
	withSubject     *SubjectQuery
	withExperiment  *ExperimentQuery
	withCohort      *CohortQuery
	withConversions *ConversionQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExposureQuery builder.
func (_q *ExposureQuery) Where(ps ...predicate.Exposure) *ExposureQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExposureQuery) Limit(limit int) *ExposureQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExposureQuery) Offset(offset int) *ExposureQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExposureQuery) Unique(unique bool) *ExposureQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExposureQuery) Order(o ...exposure.OrderOption) *ExposureQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySubject chains the current query on the "subject" edge.
func (_q *ExposureQuery) QuerySubject() *SubjectQuery {
	query := (&SubjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, selector),
			sqlgraph.To(subject.Table, subject.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exposure.SubjectTable, exposure.SubjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExperiment chains the current query on the "experiment" edge.
func (_q *ExposureQuery) QueryExperiment() *ExperimentQuery {
	query := (&ExperimentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, selector),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exposure.ExperimentTable, exposure.ExperimentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCohort chains the current query on the "cohort" edge.
func (_q *ExposureQuery) QueryCohort() *CohortQuery {
	query := (&CohortClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, selector),
			sqlgraph.To(cohort.Table, cohort.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exposure.CohortTable, exposure.CohortColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryConversions chains the current query on the "conversions" edge.
func (_q *ExposureQuery) QueryConversions() *ConversionQuery {
	query := (&ConversionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, selector),
			sqlgraph.To(conversion.Table, conversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, exposure.ConversionsTable, exposure.ConversionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Exposure entity from the query.
// Returns a *NotFoundError when no Exposure was found.
func (_q *ExposureQuery) First(ctx context.Context) (*Exposure, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{exposure.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExposureQuery) FirstX(ctx context.Context) *Exposure {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Exposure ID from the query.
// Returns a *NotFoundError when no Exposure ID was found.
func (_q *ExposureQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{exposure.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExposureQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Exposure entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Exposure entity is found.
// Returns a *NotFoundError when no Exposure entities are found.
func (_q *ExposureQuery) Only(ctx context.Context) (*Exposure, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{exposure.Label}
	default:
		return nil, &NotSingularError{exposure.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExposureQuery) OnlyX(ctx context.Context) *Exposure {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Exposure ID in the query.
// Returns a *NotSingularError when more than one Exposure ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExposureQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{exposure.Label}
	default:
		err = &NotSingularError{exposure.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExposureQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Exposures.
func (_q *ExposureQuery) All(ctx context.Context) ([]*Exposure, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Exposure, *ExposureQuery]()
	return withInterceptors[[]*Exposure](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExposureQuery) AllX(ctx context.Context) []*Exposure {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Exposure IDs.
func (_q *ExposureQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(exposure.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExposureQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExposureQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExposureQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExposureQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExposureQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ExposureQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExposureQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExposureQuery) Clone() *ExposureQuery {
	if _q == nil {
		return nil
	}
	return &ExposureQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]exposure.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Exposure{}, _q.predicates...),
		withSubject:     _q.withSubject.Clone(),
		withExperiment:  _q.withExperiment.Clone(),
		withCohort:      _q.withCohort.Clone(),
		withConversions: _q.withConversions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSubject tells the query-builder to eager-load the nodes that are connected to
// the "subject" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExposureQuery) WithSubject(opts ...func(*SubjectQuery)) *ExposureQuery {
	query := (&SubjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubject = query
	return _q
}

// WithExperiment tells the query-builder to eager-load the nodes that are connected to
// the "experiment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExposureQuery) WithExperiment(opts ...func(*ExperimentQuery)) *ExposureQuery {
	query := (&ExperimentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExperiment = query
	return _q
}

// WithCohort tells the query-builder to eager-load the nodes that are connected to
// the "cohort" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExposureQuery) WithCohort(opts ...func(*CohortQuery)) *ExposureQuery {
	query := (&CohortClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCohort = query
	return _q
}

// WithConversions tells the query-builder to eager-load the nodes that are connected to
// the "conversions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExposureQuery) WithConversions(opts ...func(*ConversionQuery)) *ExposureQuery {
	query := (&ConversionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConversions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SubjectID int `json:"subject_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Exposure.Query().
//		GroupBy(exposure.FieldSubjectID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExposureQuery) GroupBy(field string, fields ...string) *ExposureGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExposureGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = exposure.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SubjectID int `json:"subject_id,omitempty"`
//	}
//
//	client.Exposure.Query().
//		Select(exposure.FieldSubjectID).
//		Scan(ctx, &v)
func (_q *ExposureQuery) Select(fields ...string) *ExposureSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExposureSelect{ExposureQuery: _q}
	sbuild.label = exposure.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExposureSelect configured with the given aggregations.
func (_q *ExposureQuery) Aggregate(fns ...AggregateFunc) *ExposureSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExposureQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !exposure.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ExposureQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Exposure, error) {
	var (
		nodes       = []*Exposure{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withSubject != nil,
			_q.withExperiment != nil,
			_q.withCohort != nil,
			_q.withConversions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Exposure).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Exposure{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSubject; query != nil {
		if err := _q.loadSubject(ctx, query, nodes, nil,
			func(n *Exposure, e *Subject) { n.Edges.Subject = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExperiment; query != nil {
		if err := _q.loadExperiment(ctx, query, nodes, nil,
			func(n *Exposure, e *Experiment) { n.Edges.Experiment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCohort; query != nil {
		if err := _q.loadCohort(ctx, query, nodes, nil,
			func(n *Exposure, e *Cohort) { n.Edges.Cohort = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withConversions; query != nil {
		if err := _q.loadConversions(ctx, query, nodes,
			func(n *Exposure) { n.Edges.Conversions = []*Conversion{} },
			func(n *Exposure, e *Conversion) { n.Edges.Conversions = append(n.Edges.Conversions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExposureQuery) loadSubject(ctx context.Context, query *SubjectQuery, nodes []*Exposure, init func(*Exposure), assign func(*Exposure, *Subject)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Exposure)
	for i := range nodes {
		fk := nodes[i].SubjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(subject.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "subject_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExposureQuery) loadExperiment(ctx context.Context, query *ExperimentQuery, nodes []*Exposure, init func(*Exposure), assign func(*Exposure, *Experiment)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Exposure)
	for i := range nodes {
		fk := nodes[i].ExperimentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(experiment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "experiment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExposureQuery) loadCohort(ctx context.Context, query *CohortQuery, nodes []*Exposure, init func(*Exposure), assign func(*Exposure, *Cohort)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Exposure)
	for i := range nodes {
		fk := nodes[i].CohortID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(cohort.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "cohort_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExposureQuery) loadConversions(ctx context.Context, query *ConversionQuery, nodes []*Exposure, init func(*Exposure), assign func(*Exposure, *Conversion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Exposure)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(conversion.FieldExposureID)
	}
	query.Where(predicate.Conversion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(exposure.ConversionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExposureID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "exposure_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExposureQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExposureQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(exposure.Table, exposure.Columns, sqlgraph.NewFieldSpec(exposure.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exposure.FieldID)
		for i := range fields {
			if fields[i] != exposure.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSubject != nil {
			_spec.Node.AddColumnOnce(exposure.FieldSubjectID)
		}
		if _q.withExperiment != nil {
			_spec.Node.AddColumnOnce(exposure.FieldExperimentID)
		}
		if _q.withCohort != nil {
			_spec.Node.AddColumnOnce(exposure.FieldCohortID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ExposureQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(exposure.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = exposure.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ExposureQuery) ForUpdate(opts ...sql.LockOption) *ExposureQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ExposureQuery) ForShare(opts ...sql.LockOption) *ExposureQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ExposureGroupBy is the group-by builder for Exposure entities.
type ExposureGroupBy struct {
	selector
	build *ExposureQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExposureGroupBy) Aggregate(fns ...AggregateFunc) *ExposureGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExposureGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExposureQuery, *ExposureGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExposureGroupBy) sqlScan(ctx context.Context, root *ExposureQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ExposureSelect is the builder for selecting fields of Exposure entities.
type ExposureSelect struct {
	*ExposureQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExposureSelect) Aggregate(fns ...AggregateFunc) *ExposureSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExposureSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExposureQuery, *ExposureSelect](ctx, _s.ExposureQuery, _s, _s.inters, v)
}

func (_s *ExposureSelect) sqlScan(ctx context.Context, root *ExposureQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
