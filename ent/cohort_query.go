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
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
)

// CohortQuery is the builder for querying Cohort entities.
type CohortQuery struct {
	config
	ctx            *QueryContext
	order          []cohort.OrderOption
	inters         []Interceptor
	predicates     []predicate.Cohort
	withExperiment *ExperimentQuery
	withExposures  *ExposureQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CohortQuery builder.
func (_q *CohortQuery) Where(ps ...predicate.Cohort) *CohortQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CohortQuery) Limit(limit int) *CohortQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CohortQuery) Offset(offset int) *CohortQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CohortQuery) Unique(unique bool) *CohortQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CohortQuery) Order(o ...cohort.OrderOption) *CohortQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExperiment chains the current query on the "experiment" edge.
func (_q *CohortQuery) QueryExperiment() *ExperimentQuery {
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
			sqlgraph.From(cohort.Table, cohort.FieldID, selector),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cohort.ExperimentTable, cohort.ExperimentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExposures chains the current query on the "exposures" edge.
func (_q *CohortQuery) QueryExposures() *ExposureQuery {
	query := (&ExposureClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cohort.Table, cohort.FieldID, selector),
			sqlgraph.To(exposure.Table, exposure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cohort.ExposuresTable, cohort.ExposuresColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Cohort entity from the query.
// Returns a *NotFoundError when no Cohort was found.
func (_q *CohortQuery) First(ctx context.Context) (*Cohort, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cohort.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CohortQuery) FirstX(ctx context.Context) *Cohort {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Cohort ID from the query.
// Returns a *NotFoundError when no Cohort ID was found.
func (_q *CohortQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cohort.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CohortQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Cohort entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Cohort entity is found.
// Returns a *NotFoundError when no Cohort entities are found.
func (_q *CohortQuery) Only(ctx context.Context) (*Cohort, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cohort.Label}
	default:
		return nil, &NotSingularError{cohort.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CohortQuery) OnlyX(ctx context.Context) *Cohort {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Cohort ID in the query.
// Returns a *NotSingularError when more than one Cohort ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CohortQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cohort.Label}
	default:
		err = &NotSingularError{cohort.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CohortQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Cohorts.
func (_q *CohortQuery) All(ctx context.Context) ([]*Cohort, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Cohort, *CohortQuery]()
	return withInterceptors[[]*Cohort](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CohortQuery) AllX(ctx context.Context) []*Cohort {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Cohort IDs.
func (_q *CohortQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(cohort.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CohortQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CohortQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CohortQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CohortQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CohortQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CohortQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CohortQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CohortQuery) Clone() *CohortQuery {
	if _q == nil {
		return nil
	}
	return &CohortQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]cohort.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Cohort{}, _q.predicates...),
		withExperiment: _q.withExperiment.Clone(),
		withExposures:  _q.withExposures.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExperiment tells the query-builder to eager-load the nodes that are connected to
// the "experiment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CohortQuery) WithExperiment(opts ...func(*ExperimentQuery)) *CohortQuery {
	query := (&ExperimentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExperiment = query
	return _q
}

// WithExposures tells the query-builder to eager-load the nodes that are connected to
// the "exposures" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CohortQuery) WithExposures(opts ...func(*ExposureQuery)) *CohortQuery {
	query := (&ExposureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExposures = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ExperimentID int `json:"experiment_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Cohort.Query().
//		GroupBy(cohort.FieldExperimentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CohortQuery) GroupBy(field string, fields ...string) *CohortGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CohortGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = cohort.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ExperimentID int `json:"experiment_id,omitempty"`
//	}
//
//	client.Cohort.Query().
//		Select(cohort.FieldExperimentID).
//		Scan(ctx, &v)
func (_q *CohortQuery) Select(fields ...string) *CohortSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CohortSelect{CohortQuery: _q}
	sbuild.label = cohort.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CohortSelect configured with the given aggregations.
func (_q *CohortQuery) Aggregate(fns ...AggregateFunc) *CohortSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CohortQuery) prepareQuery(ctx context.Context) error {
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
		if !cohort.ValidColumn(f) {
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

func (_q *CohortQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Cohort, error) {
	var (
		nodes       = []*Cohort{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExperiment != nil,
			_q.withExposures != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Cohort).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Cohort{config: _q.config}
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
	if query := _q.withExperiment; query != nil {
		if err := _q.loadExperiment(ctx, query, nodes, nil,
			func(n *Cohort, e *Experiment) { n.Edges.Experiment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExposures; query != nil {
		if err := _q.loadExposures(ctx, query, nodes,
			func(n *Cohort) { n.Edges.Exposures = []*Exposure{} },
			func(n *Cohort, e *Exposure) { n.Edges.Exposures = append(n.Edges.Exposures, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CohortQuery) loadExperiment(ctx context.Context, query *ExperimentQuery, nodes []*Cohort, init func(*Cohort), assign func(*Cohort, *Experiment)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Cohort)
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
func (_q *CohortQuery) loadExposures(ctx context.Context, query *ExposureQuery, nodes []*Cohort, init func(*Cohort), assign func(*Cohort, *Exposure)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Cohort)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(exposure.FieldCohortID)
	}
	query.Where(predicate.Exposure(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cohort.ExposuresColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CohortID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "cohort_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CohortQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *CohortQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cohort.Table, cohort.Columns, sqlgraph.NewFieldSpec(cohort.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cohort.FieldID)
		for i := range fields {
			if fields[i] != cohort.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExperiment != nil {
			_spec.Node.AddColumnOnce(cohort.FieldExperimentID)
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

func (_q *CohortQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(cohort.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = cohort.Columns
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
func (_q *CohortQuery) ForUpdate(opts ...sql.LockOption) *CohortQuery {
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
func (_q *CohortQuery) ForShare(opts ...sql.LockOption) *CohortQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CohortGroupBy is the group-by builder for Cohort entities.
type CohortGroupBy struct {
	selector
	build *CohortQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CohortGroupBy) Aggregate(fns ...AggregateFunc) *CohortGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CohortGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CohortQuery, *CohortGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CohortGroupBy) sqlScan(ctx context.Context, root *CohortQuery, v any) error {
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

// CohortSelect is the builder for selecting fields of Cohort entities.
type CohortSelect struct {
	*CohortQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CohortSelect) Aggregate(fns ...AggregateFunc) *CohortSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CohortSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CohortQuery, *CohortSelect](ctx, _s.CohortQuery, _s, _s.inters, v)
}

func (_s *CohortSelect) sqlScan(ctx context.Context, root *CohortQuery, v any) error {
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
