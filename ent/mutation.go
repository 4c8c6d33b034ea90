// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/account"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/experimentresult"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/exposurerollup"
	"github.com/tjwaterman99/quicksplit-api/ent/plan"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/ent/user"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount          = "Account"
	TypeCohort           = "Cohort"
	TypeConversion       = "Conversion"
	TypeExperiment       = "Experiment"
	TypeExperimentResult = "ExperimentResult"
	TypeExposure         = "Exposure"
	TypeExposureRollup   = "ExposureRollup"
	TypePlan             = "Plan"
	TypeSubject          = "Subject"
	TypeUser             = "User"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	plan            *int
	clearedplan     bool
	users           map[int]struct{}
	removedusers    map[int]struct{}
	clearedusers    bool
	subjects        map[int]struct{}
	removedsubjects map[int]struct{}
	clearedsubjects bool
	done            bool
	oldValue        func(context.Context) (*Account, error)
	predicates      []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id int) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *AccountMutation) SetPlanID(i int) {
	m.plan = &i
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *AccountMutation) PlanID() (r int, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPlanID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *AccountMutation) ResetPlanID() {
	m.plan = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (m *AccountMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[account.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the Plan entity was cleared.
func (m *AccountMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *AccountMutation) PlanIDs() (ids []int) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *AccountMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *AccountMutation) AddUserIDs(ids ...int) {
	if m.users == nil {
		m.users = make(map[int]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *AccountMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *AccountMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *AccountMutation) RemoveUserIDs(ids ...int) {
	if m.removedusers == nil {
		m.removedusers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *AccountMutation) RemovedUsersIDs() (ids []int) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *AccountMutation) UsersIDs() (ids []int) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *AccountMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddSubjectIDs adds the "subjects" edge to the Subject entity by ids.
func (m *AccountMutation) AddSubjectIDs(ids ...int) {
	if m.subjects == nil {
		m.subjects = make(map[int]struct{})
	}
	for i := range ids {
		m.subjects[ids[i]] = struct{}{}
	}
}

// ClearSubjects clears the "subjects" edge to the Subject entity.
func (m *AccountMutation) ClearSubjects() {
	m.clearedsubjects = true
}

// SubjectsCleared reports if the "subjects" edge to the Subject entity was cleared.
func (m *AccountMutation) SubjectsCleared() bool {
	return m.clearedsubjects
}

// RemoveSubjectIDs removes the "subjects" edge to the Subject entity by IDs.
func (m *AccountMutation) RemoveSubjectIDs(ids ...int) {
	if m.removedsubjects == nil {
		m.removedsubjects = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subjects, ids[i])
		m.removedsubjects[ids[i]] = struct{}{}
	}
}

// RemovedSubjects returns the removed IDs of the "subjects" edge to the Subject entity.
func (m *AccountMutation) RemovedSubjectsIDs() (ids []int) {
	for id := range m.removedsubjects {
		ids = append(ids, id)
	}
	return
}

// SubjectsIDs returns the "subjects" edge IDs in the mutation.
func (m *AccountMutation) SubjectsIDs() (ids []int) {
	for id := range m.subjects {
		ids = append(ids, id)
	}
	return
}

// ResetSubjects resets all changes to the "subjects" edge.
func (m *AccountMutation) ResetSubjects() {
	m.subjects = nil
	m.clearedsubjects = false
	m.removedsubjects = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.plan != nil {
		fields = append(fields, account.FieldPlanID)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldPlanID:
		return m.PlanID()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldPlanID:
		return m.OldPlanID(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldPlanID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldPlanID:
		m.ResetPlanID()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.plan != nil {
		edges = append(edges, account.EdgePlan)
	}
	if m.users != nil {
		edges = append(edges, account.EdgeUsers)
	}
	if m.subjects != nil {
		edges = append(edges, account.EdgeSubjects)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	case account.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.subjects))
		for id := range m.subjects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedusers != nil {
		edges = append(edges, account.EdgeUsers)
	}
	if m.removedsubjects != nil {
		edges = append(edges, account.EdgeSubjects)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.removedsubjects))
		for id := range m.removedsubjects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedplan {
		edges = append(edges, account.EdgePlan)
	}
	if m.clearedusers {
		edges = append(edges, account.EdgeUsers)
	}
	if m.clearedsubjects {
		edges = append(edges, account.EdgeSubjects)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgePlan:
		return m.clearedplan
	case account.EdgeUsers:
		return m.clearedusers
	case account.EdgeSubjects:
		return m.clearedsubjects
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	case account.EdgePlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgePlan:
		m.ResetPlan()
		return nil
	case account.EdgeUsers:
		m.ResetUsers()
		return nil
	case account.EdgeSubjects:
		m.ResetSubjects()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// CohortMutation represents an operation that mutates the Cohort nodes in the graph.
type CohortMutation struct {
	config
	op                               Op
	typ                              string
	id                               *int
	name                             *string
	last_production_exposure_id      *int
	addlast_production_exposure_id   *int
	last_staging_exposure_id         *int
	addlast_staging_exposure_id      *int
	last_production_conversion_id    *int
	addlast_production_conversion_id *int
	last_staging_conversion_id       *int
	addlast_staging_conversion_id    *int
	created_at                       *time.Time
	updated_at                       *time.Time
	clearedFields                    map[string]struct{}
	experiment                       *int
	clearedexperiment                bool
	exposures                        map[int]struct{}
	removedexposures                 map[int]struct{}
	clearedexposures                 bool
	done                             bool
	oldValue                         func(context.Context) (*Cohort, error)
	predicates                       []predicate.Cohort
}

var _ ent.Mutation = (*CohortMutation)(nil)

// cohortOption allows management of the mutation configuration using functional options.
type cohortOption func(*CohortMutation)

// newCohortMutation creates new mutation for the Cohort entity.
func newCohortMutation(c config, op Op, opts ...cohortOption) *CohortMutation {
	m := &CohortMutation{
		config:        c,
		op:            op,
		typ:           TypeCohort,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCohortID sets the ID field of the mutation.
func withCohortID(id int) cohortOption {
	return func(m *CohortMutation) {
		var (
			err   error
			once  sync.Once
			value *Cohort
		)
		m.oldValue = func(ctx context.Context) (*Cohort, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cohort.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCohort sets the old Cohort of the mutation.
func withCohort(node *Cohort) cohortOption {
	return func(m *CohortMutation) {
		m.oldValue = func(context.Context) (*Cohort, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CohortMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CohortMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CohortMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CohortMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cohort.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExperimentID sets the "experiment_id" field.
func (m *CohortMutation) SetExperimentID(i int) {
	m.experiment = &i
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *CohortMutation) ExperimentID() (r int, exists bool) {
	v := m.experiment
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldExperimentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *CohortMutation) ResetExperimentID() {
	m.experiment = nil
}

// SetName sets the "name" field.
func (m *CohortMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CohortMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CohortMutation) ResetName() {
	m.name = nil
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (m *CohortMutation) SetLastProductionExposureID(i int) {
	m.last_production_exposure_id = &i
	m.addlast_production_exposure_id = nil
}

// LastProductionExposureID returns the value of the "last_production_exposure_id" field in the mutation.
func (m *CohortMutation) LastProductionExposureID() (r int, exists bool) {
	v := m.last_production_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProductionExposureID returns the old "last_production_exposure_id" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldLastProductionExposureID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProductionExposureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProductionExposureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProductionExposureID: %w", err)
	}
	return oldValue.LastProductionExposureID, nil
}

// AddLastProductionExposureID adds i to the "last_production_exposure_id" field.
func (m *CohortMutation) AddLastProductionExposureID(i int) {
	if m.addlast_production_exposure_id != nil {
		*m.addlast_production_exposure_id += i
	} else {
		m.addlast_production_exposure_id = &i
	}
}

// AddedLastProductionExposureID returns the value that was added to the "last_production_exposure_id" field in this mutation.
func (m *CohortMutation) AddedLastProductionExposureID() (r int, exists bool) {
	v := m.addlast_production_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (m *CohortMutation) ClearLastProductionExposureID() {
	m.last_production_exposure_id = nil
	m.addlast_production_exposure_id = nil
	m.clearedFields[cohort.FieldLastProductionExposureID] = struct{}{}
}

// LastProductionExposureIDCleared returns if the "last_production_exposure_id" field was cleared in this mutation.
func (m *CohortMutation) LastProductionExposureIDCleared() bool {
	_, ok := m.clearedFields[cohort.FieldLastProductionExposureID]
	return ok
}

// ResetLastProductionExposureID resets all changes to the "last_production_exposure_id" field.
func (m *CohortMutation) ResetLastProductionExposureID() {
	m.last_production_exposure_id = nil
	m.addlast_production_exposure_id = nil
	delete(m.clearedFields, cohort.FieldLastProductionExposureID)
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (m *CohortMutation) SetLastStagingExposureID(i int) {
	m.last_staging_exposure_id = &i
	m.addlast_staging_exposure_id = nil
}

// LastStagingExposureID returns the value of the "last_staging_exposure_id" field in the mutation.
func (m *CohortMutation) LastStagingExposureID() (r int, exists bool) {
	v := m.last_staging_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStagingExposureID returns the old "last_staging_exposure_id" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldLastStagingExposureID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStagingExposureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStagingExposureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStagingExposureID: %w", err)
	}
	return oldValue.LastStagingExposureID, nil
}

// AddLastStagingExposureID adds i to the "last_staging_exposure_id" field.
func (m *CohortMutation) AddLastStagingExposureID(i int) {
	if m.addlast_staging_exposure_id != nil {
		*m.addlast_staging_exposure_id += i
	} else {
		m.addlast_staging_exposure_id = &i
	}
}

// AddedLastStagingExposureID returns the value that was added to the "last_staging_exposure_id" field in this mutation.
func (m *CohortMutation) AddedLastStagingExposureID() (r int, exists bool) {
	v := m.addlast_staging_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (m *CohortMutation) ClearLastStagingExposureID() {
	m.last_staging_exposure_id = nil
	m.addlast_staging_exposure_id = nil
	m.clearedFields[cohort.FieldLastStagingExposureID] = struct{}{}
}

// LastStagingExposureIDCleared returns if the "last_staging_exposure_id" field was cleared in this mutation.
func (m *CohortMutation) LastStagingExposureIDCleared() bool {
	_, ok := m.clearedFields[cohort.FieldLastStagingExposureID]
	return ok
}

// ResetLastStagingExposureID resets all changes to the "last_staging_exposure_id" field.
func (m *CohortMutation) ResetLastStagingExposureID() {
	m.last_staging_exposure_id = nil
	m.addlast_staging_exposure_id = nil
	delete(m.clearedFields, cohort.FieldLastStagingExposureID)
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (m *CohortMutation) SetLastProductionConversionID(i int) {
	m.last_production_conversion_id = &i
	m.addlast_production_conversion_id = nil
}

// LastProductionConversionID returns the value of the "last_production_conversion_id" field in the mutation.
func (m *CohortMutation) LastProductionConversionID() (r int, exists bool) {
	v := m.last_production_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProductionConversionID returns the old "last_production_conversion_id" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldLastProductionConversionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProductionConversionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProductionConversionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProductionConversionID: %w", err)
	}
	return oldValue.LastProductionConversionID, nil
}

// AddLastProductionConversionID adds i to the "last_production_conversion_id" field.
func (m *CohortMutation) AddLastProductionConversionID(i int) {
	if m.addlast_production_conversion_id != nil {
		*m.addlast_production_conversion_id += i
	} else {
		m.addlast_production_conversion_id = &i
	}
}

// AddedLastProductionConversionID returns the value that was added to the "last_production_conversion_id" field in this mutation.
func (m *CohortMutation) AddedLastProductionConversionID() (r int, exists bool) {
	v := m.addlast_production_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (m *CohortMutation) ClearLastProductionConversionID() {
	m.last_production_conversion_id = nil
	m.addlast_production_conversion_id = nil
	m.clearedFields[cohort.FieldLastProductionConversionID] = struct{}{}
}

// LastProductionConversionIDCleared returns if the "last_production_conversion_id" field was cleared in this mutation.
func (m *CohortMutation) LastProductionConversionIDCleared() bool {
	_, ok := m.clearedFields[cohort.FieldLastProductionConversionID]
	return ok
}

// ResetLastProductionConversionID resets all changes to the "last_production_conversion_id" field.
func (m *CohortMutation) ResetLastProductionConversionID() {
	m.last_production_conversion_id = nil
	m.addlast_production_conversion_id = nil
	delete(m.clearedFields, cohort.FieldLastProductionConversionID)
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (m *CohortMutation) SetLastStagingConversionID(i int) {
	m.last_staging_conversion_id = &i
	m.addlast_staging_conversion_id = nil
}

// LastStagingConversionID returns the value of the "last_staging_conversion_id" field in the mutation.
func (m *CohortMutation) LastStagingConversionID() (r int, exists bool) {
	v := m.last_staging_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStagingConversionID returns the old "last_staging_conversion_id" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldLastStagingConversionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStagingConversionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStagingConversionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStagingConversionID: %w", err)
	}
	return oldValue.LastStagingConversionID, nil
}

// AddLastStagingConversionID adds i to the "last_staging_conversion_id" field.
func (m *CohortMutation) AddLastStagingConversionID(i int) {
	if m.addlast_staging_conversion_id != nil {
		*m.addlast_staging_conversion_id += i
	} else {
		m.addlast_staging_conversion_id = &i
	}
}

// AddedLastStagingConversionID returns the value that was added to the "last_staging_conversion_id" field in this mutation.
func (m *CohortMutation) AddedLastStagingConversionID() (r int, exists bool) {
	v := m.addlast_staging_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (m *CohortMutation) ClearLastStagingConversionID() {
	m.last_staging_conversion_id = nil
	m.addlast_staging_conversion_id = nil
	m.clearedFields[cohort.FieldLastStagingConversionID] = struct{}{}
}

// LastStagingConversionIDCleared returns if the "last_staging_conversion_id" field was cleared in this mutation.
func (m *CohortMutation) LastStagingConversionIDCleared() bool {
	_, ok := m.clearedFields[cohort.FieldLastStagingConversionID]
	return ok
}

// ResetLastStagingConversionID resets all changes to the "last_staging_conversion_id" field.
func (m *CohortMutation) ResetLastStagingConversionID() {
	m.last_staging_conversion_id = nil
	m.addlast_staging_conversion_id = nil
	delete(m.clearedFields, cohort.FieldLastStagingConversionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CohortMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CohortMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CohortMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CohortMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CohortMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CohortMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (m *CohortMutation) ClearExperiment() {
	m.clearedexperiment = true
	m.clearedFields[cohort.FieldExperimentID] = struct{}{}
}

// ExperimentCleared reports if the "experiment" edge to the Experiment entity was cleared.
func (m *CohortMutation) ExperimentCleared() bool {
	return m.clearedexperiment
}

// ExperimentIDs returns the "experiment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExperimentID instead. It exists only for internal usage by the builders.
func (m *CohortMutation) ExperimentIDs() (ids []int) {
	if id := m.experiment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExperiment resets all changes to the "experiment" edge.
func (m *CohortMutation) ResetExperiment() {
	m.experiment = nil
	m.clearedexperiment = false
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by ids.
func (m *CohortMutation) AddExposureIDs(ids ...int) {
	if m.exposures == nil {
		m.exposures = make(map[int]struct{})
	}
	for i := range ids {
		m.exposures[ids[i]] = struct{}{}
	}
}

// ClearExposures clears the "exposures" edge to the Exposure entity.
func (m *CohortMutation) ClearExposures() {
	m.clearedexposures = true
}

// ExposuresCleared reports if the "exposures" edge to the Exposure entity was cleared.
func (m *CohortMutation) ExposuresCleared() bool {
	return m.clearedexposures
}

// RemoveExposureIDs removes the "exposures" edge to the Exposure entity by IDs.
func (m *CohortMutation) RemoveExposureIDs(ids ...int) {
	if m.removedexposures == nil {
		m.removedexposures = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.exposures, ids[i])
		m.removedexposures[ids[i]] = struct{}{}
	}
}

// RemovedExposures returns the removed IDs of the "exposures" edge to the Exposure entity.
func (m *CohortMutation) RemovedExposuresIDs() (ids []int) {
	for id := range m.removedexposures {
		ids = append(ids, id)
	}
	return
}

// ExposuresIDs returns the "exposures" edge IDs in the mutation.
func (m *CohortMutation) ExposuresIDs() (ids []int) {
	for id := range m.exposures {
		ids = append(ids, id)
	}
	return
}

// ResetExposures resets all changes to the "exposures" edge.
func (m *CohortMutation) ResetExposures() {
	m.exposures = nil
	m.clearedexposures = false
	m.removedexposures = nil
}

// Where appends a list predicates to the CohortMutation builder.
func (m *CohortMutation) Where(ps ...predicate.Cohort) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CohortMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CohortMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cohort, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CohortMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CohortMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cohort).
func (m *CohortMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CohortMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.experiment != nil {
		fields = append(fields, cohort.FieldExperimentID)
	}
	if m.name != nil {
		fields = append(fields, cohort.FieldName)
	}
	if m.last_production_exposure_id != nil {
		fields = append(fields, cohort.FieldLastProductionExposureID)
	}
	if m.last_staging_exposure_id != nil {
		fields = append(fields, cohort.FieldLastStagingExposureID)
	}
	if m.last_production_conversion_id != nil {
		fields = append(fields, cohort.FieldLastProductionConversionID)
	}
	if m.last_staging_conversion_id != nil {
		fields = append(fields, cohort.FieldLastStagingConversionID)
	}
	if m.created_at != nil {
		fields = append(fields, cohort.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cohort.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CohortMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cohort.FieldExperimentID:
		return m.ExperimentID()
	case cohort.FieldName:
		return m.Name()
	case cohort.FieldLastProductionExposureID:
		return m.LastProductionExposureID()
	case cohort.FieldLastStagingExposureID:
		return m.LastStagingExposureID()
	case cohort.FieldLastProductionConversionID:
		return m.LastProductionConversionID()
	case cohort.FieldLastStagingConversionID:
		return m.LastStagingConversionID()
	case cohort.FieldCreatedAt:
		return m.CreatedAt()
	case cohort.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CohortMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cohort.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case cohort.FieldName:
		return m.OldName(ctx)
	case cohort.FieldLastProductionExposureID:
		return m.OldLastProductionExposureID(ctx)
	case cohort.FieldLastStagingExposureID:
		return m.OldLastStagingExposureID(ctx)
	case cohort.FieldLastProductionConversionID:
		return m.OldLastProductionConversionID(ctx)
	case cohort.FieldLastStagingConversionID:
		return m.OldLastStagingConversionID(ctx)
	case cohort.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cohort.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cohort field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CohortMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cohort.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case cohort.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case cohort.FieldLastProductionExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProductionExposureID(v)
		return nil
	case cohort.FieldLastStagingExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStagingExposureID(v)
		return nil
	case cohort.FieldLastProductionConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProductionConversionID(v)
		return nil
	case cohort.FieldLastStagingConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStagingConversionID(v)
		return nil
	case cohort.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cohort.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cohort field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CohortMutation) AddedFields() []string {
	var fields []string
	if m.addlast_production_exposure_id != nil {
		fields = append(fields, cohort.FieldLastProductionExposureID)
	}
	if m.addlast_staging_exposure_id != nil {
		fields = append(fields, cohort.FieldLastStagingExposureID)
	}
	if m.addlast_production_conversion_id != nil {
		fields = append(fields, cohort.FieldLastProductionConversionID)
	}
	if m.addlast_staging_conversion_id != nil {
		fields = append(fields, cohort.FieldLastStagingConversionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CohortMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cohort.FieldLastProductionExposureID:
		return m.AddedLastProductionExposureID()
	case cohort.FieldLastStagingExposureID:
		return m.AddedLastStagingExposureID()
	case cohort.FieldLastProductionConversionID:
		return m.AddedLastProductionConversionID()
	case cohort.FieldLastStagingConversionID:
		return m.AddedLastStagingConversionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CohortMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cohort.FieldLastProductionExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProductionExposureID(v)
		return nil
	case cohort.FieldLastStagingExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStagingExposureID(v)
		return nil
	case cohort.FieldLastProductionConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProductionConversionID(v)
		return nil
	case cohort.FieldLastStagingConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStagingConversionID(v)
		return nil
	}
	return fmt.Errorf("unknown Cohort numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CohortMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cohort.FieldLastProductionExposureID) {
		fields = append(fields, cohort.FieldLastProductionExposureID)
	}
	if m.FieldCleared(cohort.FieldLastStagingExposureID) {
		fields = append(fields, cohort.FieldLastStagingExposureID)
	}
	if m.FieldCleared(cohort.FieldLastProductionConversionID) {
		fields = append(fields, cohort.FieldLastProductionConversionID)
	}
	if m.FieldCleared(cohort.FieldLastStagingConversionID) {
		fields = append(fields, cohort.FieldLastStagingConversionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CohortMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CohortMutation) ClearField(name string) error {
	switch name {
	case cohort.FieldLastProductionExposureID:
		m.ClearLastProductionExposureID()
		return nil
	case cohort.FieldLastStagingExposureID:
		m.ClearLastStagingExposureID()
		return nil
	case cohort.FieldLastProductionConversionID:
		m.ClearLastProductionConversionID()
		return nil
	case cohort.FieldLastStagingConversionID:
		m.ClearLastStagingConversionID()
		return nil
	}
	return fmt.Errorf("unknown Cohort nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CohortMutation) ResetField(name string) error {
	switch name {
	case cohort.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case cohort.FieldName:
		m.ResetName()
		return nil
	case cohort.FieldLastProductionExposureID:
		m.ResetLastProductionExposureID()
		return nil
	case cohort.FieldLastStagingExposureID:
		m.ResetLastStagingExposureID()
		return nil
	case cohort.FieldLastProductionConversionID:
		m.ResetLastProductionConversionID()
		return nil
	case cohort.FieldLastStagingConversionID:
		m.ResetLastStagingConversionID()
		return nil
	case cohort.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cohort.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cohort field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CohortMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.experiment != nil {
		edges = append(edges, cohort.EdgeExperiment)
	}
	if m.exposures != nil {
		edges = append(edges, cohort.EdgeExposures)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CohortMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cohort.EdgeExperiment:
		if id := m.experiment; id != nil {
			return []ent.Value{*id}
		}
	case cohort.EdgeExposures:
		ids := make([]ent.Value, 0, len(m.exposures))
		for id := range m.exposures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CohortMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexposures != nil {
		edges = append(edges, cohort.EdgeExposures)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CohortMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cohort.EdgeExposures:
		ids := make([]ent.Value, 0, len(m.removedexposures))
		for id := range m.removedexposures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CohortMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexperiment {
		edges = append(edges, cohort.EdgeExperiment)
	}
	if m.clearedexposures {
		edges = append(edges, cohort.EdgeExposures)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CohortMutation) EdgeCleared(name string) bool {
	switch name {
	case cohort.EdgeExperiment:
		return m.clearedexperiment
	case cohort.EdgeExposures:
		return m.clearedexposures
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CohortMutation) ClearEdge(name string) error {
	switch name {
	case cohort.EdgeExperiment:
		m.ClearExperiment()
		return nil
	}
	return fmt.Errorf("unknown Cohort unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CohortMutation) ResetEdge(name string) error {
	switch name {
	case cohort.EdgeExperiment:
		m.ResetExperiment()
		return nil
	case cohort.EdgeExposures:
		m.ResetExposures()
		return nil
	}
	return fmt.Errorf("unknown Cohort edge %s", name)
}

// ConversionMutation represents an operation that mutates the Conversion nodes in the graph.
type ConversionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	scope           *domain.Scope
	value           *float64
	addvalue        *float64
	created_at      *time.Time
	last_seen_at    *time.Time
	clearedFields   map[string]struct{}
	exposure        *int
	clearedexposure bool
	done            bool
	oldValue        func(context.Context) (*Conversion, error)
	predicates      []predicate.Conversion
}

var _ ent.Mutation = (*ConversionMutation)(nil)

// conversionOption allows management of the mutation configuration using functional options.
type conversionOption func(*ConversionMutation)

// newConversionMutation creates new mutation for the Conversion entity.
func newConversionMutation(c config, op Op, opts ...conversionOption) *ConversionMutation {
	m := &ConversionMutation{
		config:        c,
		op:            op,
		typ:           TypeConversion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversionID sets the ID field of the mutation.
func withConversionID(id int) conversionOption {
	return func(m *ConversionMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversion
		)
		m.oldValue = func(ctx context.Context) (*Conversion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversion sets the old Conversion of the mutation.
func withConversion(node *Conversion) conversionOption {
	return func(m *ConversionMutation) {
		m.oldValue = func(context.Context) (*Conversion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExposureID sets the "exposure_id" field.
func (m *ConversionMutation) SetExposureID(i int) {
	m.exposure = &i
}

// ExposureID returns the value of the "exposure_id" field in the mutation.
func (m *ConversionMutation) ExposureID() (r int, exists bool) {
	v := m.exposure
	if v == nil {
		return
	}
	return *v, true
}

// OldExposureID returns the old "exposure_id" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldExposureID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExposureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExposureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExposureID: %w", err)
	}
	return oldValue.ExposureID, nil
}

// ResetExposureID resets all changes to the "exposure_id" field.
func (m *ConversionMutation) ResetExposureID() {
	m.exposure = nil
}

// SetScope sets the "scope" field.
func (m *ConversionMutation) SetScope(d domain.Scope) {
	m.scope = &d
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ConversionMutation) Scope() (r domain.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldScope(ctx context.Context) (v domain.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ConversionMutation) ResetScope() {
	m.scope = nil
}

// SetValue sets the "value" field.
func (m *ConversionMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ConversionMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *ConversionMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *ConversionMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *ConversionMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[conversion.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *ConversionMutation) ValueCleared() bool {
	_, ok := m.clearedFields[conversion.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *ConversionMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, conversion.FieldValue)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *ConversionMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *ConversionMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *ConversionMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// ClearExposure clears the "exposure" edge to the Exposure entity.
func (m *ConversionMutation) ClearExposure() {
	m.clearedexposure = true
	m.clearedFields[conversion.FieldExposureID] = struct{}{}
}

// ExposureCleared reports if the "exposure" edge to the Exposure entity was cleared.
func (m *ConversionMutation) ExposureCleared() bool {
	return m.clearedexposure
}

// ExposureIDs returns the "exposure" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExposureID instead. It exists only for internal usage by the builders.
func (m *ConversionMutation) ExposureIDs() (ids []int) {
	if id := m.exposure; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExposure resets all changes to the "exposure" edge.
func (m *ConversionMutation) ResetExposure() {
	m.exposure = nil
	m.clearedexposure = false
}

// Where appends a list predicates to the ConversionMutation builder.
func (m *ConversionMutation) Where(ps ...predicate.Conversion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversion).
func (m *ConversionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.exposure != nil {
		fields = append(fields, conversion.FieldExposureID)
	}
	if m.scope != nil {
		fields = append(fields, conversion.FieldScope)
	}
	if m.value != nil {
		fields = append(fields, conversion.FieldValue)
	}
	if m.created_at != nil {
		fields = append(fields, conversion.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, conversion.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversion.FieldExposureID:
		return m.ExposureID()
	case conversion.FieldScope:
		return m.Scope()
	case conversion.FieldValue:
		return m.Value()
	case conversion.FieldCreatedAt:
		return m.CreatedAt()
	case conversion.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversion.FieldExposureID:
		return m.OldExposureID(ctx)
	case conversion.FieldScope:
		return m.OldScope(ctx)
	case conversion.FieldValue:
		return m.OldValue(ctx)
	case conversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversion.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversion.FieldExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExposureID(v)
		return nil
	case conversion.FieldScope:
		v, ok := value.(domain.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case conversion.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case conversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversion.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversionMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, conversion.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversion.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversion.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Conversion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversion.FieldValue) {
		fields = append(fields, conversion.FieldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversionMutation) ClearField(name string) error {
	switch name {
	case conversion.FieldValue:
		m.ClearValue()
		return nil
	}
	return fmt.Errorf("unknown Conversion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversionMutation) ResetField(name string) error {
	switch name {
	case conversion.FieldExposureID:
		m.ResetExposureID()
		return nil
	case conversion.FieldScope:
		m.ResetScope()
		return nil
	case conversion.FieldValue:
		m.ResetValue()
		return nil
	case conversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversion.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Conversion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.exposure != nil {
		edges = append(edges, conversion.EdgeExposure)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversion.EdgeExposure:
		if id := m.exposure; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexposure {
		edges = append(edges, conversion.EdgeExposure)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversionMutation) EdgeCleared(name string) bool {
	switch name {
	case conversion.EdgeExposure:
		return m.clearedexposure
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversionMutation) ClearEdge(name string) error {
	switch name {
	case conversion.EdgeExposure:
		m.ClearExposure()
		return nil
	}
	return fmt.Errorf("unknown Conversion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversionMutation) ResetEdge(name string) error {
	switch name {
	case conversion.EdgeExposure:
		m.ResetExposure()
		return nil
	}
	return fmt.Errorf("unknown Conversion edge %s", name)
}

// ExperimentMutation represents an operation that mutates the Experiment nodes in the graph.
type ExperimentMutation struct {
	config
	op                               Op
	typ                              string
	id                               *int
	name                             *string
	active                           *bool
	last_activated_at                *time.Time
	subjects_counter_production      *int
	addsubjects_counter_production   *int
	subjects_counter_staging         *int
	addsubjects_counter_staging      *int
	last_production_exposure_id      *int
	addlast_production_exposure_id   *int
	last_staging_exposure_id         *int
	addlast_staging_exposure_id      *int
	last_production_conversion_id    *int
	addlast_production_conversion_id *int
	last_staging_conversion_id       *int
	addlast_staging_conversion_id    *int
	created_at                       *time.Time
	updated_at                       *time.Time
	clearedFields                    map[string]struct{}
	user                             *int
	cleareduser                      bool
	cohorts                          map[int]struct{}
	removedcohorts                   map[int]struct{}
	clearedcohorts                   bool
	exposures                        map[int]struct{}
	removedexposures                 map[int]struct{}
	clearedexposures                 bool
	done                             bool
	oldValue                         func(context.Context) (*Experiment, error)
	predicates                       []predicate.Experiment
}

var _ ent.Mutation = (*ExperimentMutation)(nil)

// experimentOption allows management of the mutation configuration using functional options.
type experimentOption func(*ExperimentMutation)

// newExperimentMutation creates new mutation for the Experiment entity.
func newExperimentMutation(c config, op Op, opts ...experimentOption) *ExperimentMutation {
	m := &ExperimentMutation{
		config:        c,
		op:            op,
		typ:           TypeExperiment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExperimentID sets the ID field of the mutation.
func withExperimentID(id int) experimentOption {
	return func(m *ExperimentMutation) {
		var (
			err   error
			once  sync.Once
			value *Experiment
		)
		m.oldValue = func(ctx context.Context) (*Experiment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Experiment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExperiment sets the old Experiment of the mutation.
func withExperiment(node *Experiment) experimentOption {
	return func(m *ExperimentMutation) {
		m.oldValue = func(context.Context) (*Experiment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExperimentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExperimentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExperimentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExperimentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Experiment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ExperimentMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExperimentMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExperimentMutation) ResetUserID() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *ExperimentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExperimentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExperimentMutation) ResetName() {
	m.name = nil
}

// SetActive sets the "active" field.
func (m *ExperimentMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ExperimentMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ExperimentMutation) ResetActive() {
	m.active = nil
}

// SetLastActivatedAt sets the "last_activated_at" field.
func (m *ExperimentMutation) SetLastActivatedAt(t time.Time) {
	m.last_activated_at = &t
}

// LastActivatedAt returns the value of the "last_activated_at" field in the mutation.
func (m *ExperimentMutation) LastActivatedAt() (r time.Time, exists bool) {
	v := m.last_activated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivatedAt returns the old "last_activated_at" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldLastActivatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivatedAt: %w", err)
	}
	return oldValue.LastActivatedAt, nil
}

// ResetLastActivatedAt resets all changes to the "last_activated_at" field.
func (m *ExperimentMutation) ResetLastActivatedAt() {
	m.last_activated_at = nil
}

// SetSubjectsCounterProduction sets the "subjects_counter_production" field.
func (m *ExperimentMutation) SetSubjectsCounterProduction(i int) {
	m.subjects_counter_production = &i
	m.addsubjects_counter_production = nil
}

// SubjectsCounterProduction returns the value of the "subjects_counter_production" field in the mutation.
func (m *ExperimentMutation) SubjectsCounterProduction() (r int, exists bool) {
	v := m.subjects_counter_production
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectsCounterProduction returns the old "subjects_counter_production" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldSubjectsCounterProduction(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectsCounterProduction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectsCounterProduction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectsCounterProduction: %w", err)
	}
	return oldValue.SubjectsCounterProduction, nil
}

// AddSubjectsCounterProduction adds i to the "subjects_counter_production" field.
func (m *ExperimentMutation) AddSubjectsCounterProduction(i int) {
	if m.addsubjects_counter_production != nil {
		*m.addsubjects_counter_production += i
	} else {
		m.addsubjects_counter_production = &i
	}
}

// AddedSubjectsCounterProduction returns the value that was added to the "subjects_counter_production" field in this mutation.
func (m *ExperimentMutation) AddedSubjectsCounterProduction() (r int, exists bool) {
	v := m.addsubjects_counter_production
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubjectsCounterProduction resets all changes to the "subjects_counter_production" field.
func (m *ExperimentMutation) ResetSubjectsCounterProduction() {
	m.subjects_counter_production = nil
	m.addsubjects_counter_production = nil
}

// SetSubjectsCounterStaging sets the "subjects_counter_staging" field.
func (m *ExperimentMutation) SetSubjectsCounterStaging(i int) {
	m.subjects_counter_staging = &i
	m.addsubjects_counter_staging = nil
}

// SubjectsCounterStaging returns the value of the "subjects_counter_staging" field in the mutation.
func (m *ExperimentMutation) SubjectsCounterStaging() (r int, exists bool) {
	v := m.subjects_counter_staging
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectsCounterStaging returns the old "subjects_counter_staging" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldSubjectsCounterStaging(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectsCounterStaging is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectsCounterStaging requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectsCounterStaging: %w", err)
	}
	return oldValue.SubjectsCounterStaging, nil
}

// AddSubjectsCounterStaging adds i to the "subjects_counter_staging" field.
func (m *ExperimentMutation) AddSubjectsCounterStaging(i int) {
	if m.addsubjects_counter_staging != nil {
		*m.addsubjects_counter_staging += i
	} else {
		m.addsubjects_counter_staging = &i
	}
}

// AddedSubjectsCounterStaging returns the value that was added to the "subjects_counter_staging" field in this mutation.
func (m *ExperimentMutation) AddedSubjectsCounterStaging() (r int, exists bool) {
	v := m.addsubjects_counter_staging
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubjectsCounterStaging resets all changes to the "subjects_counter_staging" field.
func (m *ExperimentMutation) ResetSubjectsCounterStaging() {
	m.subjects_counter_staging = nil
	m.addsubjects_counter_staging = nil
}

// SetLastProductionExposureID sets the "last_production_exposure_id" field.
func (m *ExperimentMutation) SetLastProductionExposureID(i int) {
	m.last_production_exposure_id = &i
	m.addlast_production_exposure_id = nil
}

// LastProductionExposureID returns the value of the "last_production_exposure_id" field in the mutation.
func (m *ExperimentMutation) LastProductionExposureID() (r int, exists bool) {
	v := m.last_production_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProductionExposureID returns the old "last_production_exposure_id" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldLastProductionExposureID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProductionExposureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProductionExposureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProductionExposureID: %w", err)
	}
	return oldValue.LastProductionExposureID, nil
}

// AddLastProductionExposureID adds i to the "last_production_exposure_id" field.
func (m *ExperimentMutation) AddLastProductionExposureID(i int) {
	if m.addlast_production_exposure_id != nil {
		*m.addlast_production_exposure_id += i
	} else {
		m.addlast_production_exposure_id = &i
	}
}

// AddedLastProductionExposureID returns the value that was added to the "last_production_exposure_id" field in this mutation.
func (m *ExperimentMutation) AddedLastProductionExposureID() (r int, exists bool) {
	v := m.addlast_production_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastProductionExposureID clears the value of the "last_production_exposure_id" field.
func (m *ExperimentMutation) ClearLastProductionExposureID() {
	m.last_production_exposure_id = nil
	m.addlast_production_exposure_id = nil
	m.clearedFields[experiment.FieldLastProductionExposureID] = struct{}{}
}

// LastProductionExposureIDCleared returns if the "last_production_exposure_id" field was cleared in this mutation.
func (m *ExperimentMutation) LastProductionExposureIDCleared() bool {
	_, ok := m.clearedFields[experiment.FieldLastProductionExposureID]
	return ok
}

// ResetLastProductionExposureID resets all changes to the "last_production_exposure_id" field.
func (m *ExperimentMutation) ResetLastProductionExposureID() {
	m.last_production_exposure_id = nil
	m.addlast_production_exposure_id = nil
	delete(m.clearedFields, experiment.FieldLastProductionExposureID)
}

// SetLastStagingExposureID sets the "last_staging_exposure_id" field.
func (m *ExperimentMutation) SetLastStagingExposureID(i int) {
	m.last_staging_exposure_id = &i
	m.addlast_staging_exposure_id = nil
}

// LastStagingExposureID returns the value of the "last_staging_exposure_id" field in the mutation.
func (m *ExperimentMutation) LastStagingExposureID() (r int, exists bool) {
	v := m.last_staging_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStagingExposureID returns the old "last_staging_exposure_id" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldLastStagingExposureID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStagingExposureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStagingExposureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStagingExposureID: %w", err)
	}
	return oldValue.LastStagingExposureID, nil
}

// AddLastStagingExposureID adds i to the "last_staging_exposure_id" field.
func (m *ExperimentMutation) AddLastStagingExposureID(i int) {
	if m.addlast_staging_exposure_id != nil {
		*m.addlast_staging_exposure_id += i
	} else {
		m.addlast_staging_exposure_id = &i
	}
}

// AddedLastStagingExposureID returns the value that was added to the "last_staging_exposure_id" field in this mutation.
func (m *ExperimentMutation) AddedLastStagingExposureID() (r int, exists bool) {
	v := m.addlast_staging_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastStagingExposureID clears the value of the "last_staging_exposure_id" field.
func (m *ExperimentMutation) ClearLastStagingExposureID() {
	m.last_staging_exposure_id = nil
	m.addlast_staging_exposure_id = nil
	m.clearedFields[experiment.FieldLastStagingExposureID] = struct{}{}
}

// LastStagingExposureIDCleared returns if the "last_staging_exposure_id" field was cleared in this mutation.
func (m *ExperimentMutation) LastStagingExposureIDCleared() bool {
	_, ok := m.clearedFields[experiment.FieldLastStagingExposureID]
	return ok
}

// ResetLastStagingExposureID resets all changes to the "last_staging_exposure_id" field.
func (m *ExperimentMutation) ResetLastStagingExposureID() {
	m.last_staging_exposure_id = nil
	m.addlast_staging_exposure_id = nil
	delete(m.clearedFields, experiment.FieldLastStagingExposureID)
}

// SetLastProductionConversionID sets the "last_production_conversion_id" field.
func (m *ExperimentMutation) SetLastProductionConversionID(i int) {
	m.last_production_conversion_id = &i
	m.addlast_production_conversion_id = nil
}

// LastProductionConversionID returns the value of the "last_production_conversion_id" field in the mutation.
func (m *ExperimentMutation) LastProductionConversionID() (r int, exists bool) {
	v := m.last_production_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProductionConversionID returns the old "last_production_conversion_id" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldLastProductionConversionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProductionConversionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProductionConversionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProductionConversionID: %w", err)
	}
	return oldValue.LastProductionConversionID, nil
}

// AddLastProductionConversionID adds i to the "last_production_conversion_id" field.
func (m *ExperimentMutation) AddLastProductionConversionID(i int) {
	if m.addlast_production_conversion_id != nil {
		*m.addlast_production_conversion_id += i
	} else {
		m.addlast_production_conversion_id = &i
	}
}

// AddedLastProductionConversionID returns the value that was added to the "last_production_conversion_id" field in this mutation.
func (m *ExperimentMutation) AddedLastProductionConversionID() (r int, exists bool) {
	v := m.addlast_production_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastProductionConversionID clears the value of the "last_production_conversion_id" field.
func (m *ExperimentMutation) ClearLastProductionConversionID() {
	m.last_production_conversion_id = nil
	m.addlast_production_conversion_id = nil
	m.clearedFields[experiment.FieldLastProductionConversionID] = struct{}{}
}

// LastProductionConversionIDCleared returns if the "last_production_conversion_id" field was cleared in this mutation.
func (m *ExperimentMutation) LastProductionConversionIDCleared() bool {
	_, ok := m.clearedFields[experiment.FieldLastProductionConversionID]
	return ok
}

// ResetLastProductionConversionID resets all changes to the "last_production_conversion_id" field.
func (m *ExperimentMutation) ResetLastProductionConversionID() {
	m.last_production_conversion_id = nil
	m.addlast_production_conversion_id = nil
	delete(m.clearedFields, experiment.FieldLastProductionConversionID)
}

// SetLastStagingConversionID sets the "last_staging_conversion_id" field.
func (m *ExperimentMutation) SetLastStagingConversionID(i int) {
	m.last_staging_conversion_id = &i
	m.addlast_staging_conversion_id = nil
}

// LastStagingConversionID returns the value of the "last_staging_conversion_id" field in the mutation.
func (m *ExperimentMutation) LastStagingConversionID() (r int, exists bool) {
	v := m.last_staging_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStagingConversionID returns the old "last_staging_conversion_id" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldLastStagingConversionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStagingConversionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStagingConversionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStagingConversionID: %w", err)
	}
	return oldValue.LastStagingConversionID, nil
}

// AddLastStagingConversionID adds i to the "last_staging_conversion_id" field.
func (m *ExperimentMutation) AddLastStagingConversionID(i int) {
	if m.addlast_staging_conversion_id != nil {
		*m.addlast_staging_conversion_id += i
	} else {
		m.addlast_staging_conversion_id = &i
	}
}

// AddedLastStagingConversionID returns the value that was added to the "last_staging_conversion_id" field in this mutation.
func (m *ExperimentMutation) AddedLastStagingConversionID() (r int, exists bool) {
	v := m.addlast_staging_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastStagingConversionID clears the value of the "last_staging_conversion_id" field.
func (m *ExperimentMutation) ClearLastStagingConversionID() {
	m.last_staging_conversion_id = nil
	m.addlast_staging_conversion_id = nil
	m.clearedFields[experiment.FieldLastStagingConversionID] = struct{}{}
}

// LastStagingConversionIDCleared returns if the "last_staging_conversion_id" field was cleared in this mutation.
func (m *ExperimentMutation) LastStagingConversionIDCleared() bool {
	_, ok := m.clearedFields[experiment.FieldLastStagingConversionID]
	return ok
}

// ResetLastStagingConversionID resets all changes to the "last_staging_conversion_id" field.
func (m *ExperimentMutation) ResetLastStagingConversionID() {
	m.last_staging_conversion_id = nil
	m.addlast_staging_conversion_id = nil
	delete(m.clearedFields, experiment.FieldLastStagingConversionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExperimentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExperimentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExperimentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExperimentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExperimentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExperimentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ExperimentMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[experiment.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ExperimentMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ExperimentMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ExperimentMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddCohortIDs adds the "cohorts" edge to the Cohort entity by ids.
func (m *ExperimentMutation) AddCohortIDs(ids ...int) {
	if m.cohorts == nil {
		m.cohorts = make(map[int]struct{})
	}
	for i := range ids {
		m.cohorts[ids[i]] = struct{}{}
	}
}

// ClearCohorts clears the "cohorts" edge to the Cohort entity.
func (m *ExperimentMutation) ClearCohorts() {
	m.clearedcohorts = true
}

// CohortsCleared reports if the "cohorts" edge to the Cohort entity was cleared.
func (m *ExperimentMutation) CohortsCleared() bool {
	return m.clearedcohorts
}

// RemoveCohortIDs removes the "cohorts" edge to the Cohort entity by IDs.
func (m *ExperimentMutation) RemoveCohortIDs(ids ...int) {
	if m.removedcohorts == nil {
		m.removedcohorts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.cohorts, ids[i])
		m.removedcohorts[ids[i]] = struct{}{}
	}
}

// RemovedCohorts returns the removed IDs of the "cohorts" edge to the Cohort entity.
func (m *ExperimentMutation) RemovedCohortsIDs() (ids []int) {
	for id := range m.removedcohorts {
		ids = append(ids, id)
	}
	return
}

// CohortsIDs returns the "cohorts" edge IDs in the mutation.
func (m *ExperimentMutation) CohortsIDs() (ids []int) {
	for id := range m.cohorts {
		ids = append(ids, id)
	}
	return
}

// ResetCohorts resets all changes to the "cohorts" edge.
func (m *ExperimentMutation) ResetCohorts() {
	m.cohorts = nil
	m.clearedcohorts = false
	m.removedcohorts = nil
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by ids.
func (m *ExperimentMutation) AddExposureIDs(ids ...int) {
	if m.exposures == nil {
		m.exposures = make(map[int]struct{})
	}
	for i := range ids {
		m.exposures[ids[i]] = struct{}{}
	}
}

// ClearExposures clears the "exposures" edge to the Exposure entity.
func (m *ExperimentMutation) ClearExposures() {
	m.clearedexposures = true
}

// ExposuresCleared reports if the "exposures" edge to the Exposure entity was cleared.
func (m *ExperimentMutation) ExposuresCleared() bool {
	return m.clearedexposures
}

// RemoveExposureIDs removes the "exposures" edge to the Exposure entity by IDs.
func (m *ExperimentMutation) RemoveExposureIDs(ids ...int) {
	if m.removedexposures == nil {
		m.removedexposures = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.exposures, ids[i])
		m.removedexposures[ids[i]] = struct{}{}
	}
}

// RemovedExposures returns the removed IDs of the "exposures" edge to the Exposure entity.
func (m *ExperimentMutation) RemovedExposuresIDs() (ids []int) {
	for id := range m.removedexposures {
		ids = append(ids, id)
	}
	return
}

// ExposuresIDs returns the "exposures" edge IDs in the mutation.
func (m *ExperimentMutation) ExposuresIDs() (ids []int) {
	for id := range m.exposures {
		ids = append(ids, id)
	}
	return
}

// ResetExposures resets all changes to the "exposures" edge.
func (m *ExperimentMutation) ResetExposures() {
	m.exposures = nil
	m.clearedexposures = false
	m.removedexposures = nil
}

// Where appends a list predicates to the ExperimentMutation builder.
func (m *ExperimentMutation) Where(ps ...predicate.Experiment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExperimentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExperimentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Experiment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExperimentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExperimentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Experiment).
func (m *ExperimentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExperimentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user != nil {
		fields = append(fields, experiment.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, experiment.FieldName)
	}
	if m.active != nil {
		fields = append(fields, experiment.FieldActive)
	}
	if m.last_activated_at != nil {
		fields = append(fields, experiment.FieldLastActivatedAt)
	}
	if m.subjects_counter_production != nil {
		fields = append(fields, experiment.FieldSubjectsCounterProduction)
	}
	if m.subjects_counter_staging != nil {
		fields = append(fields, experiment.FieldSubjectsCounterStaging)
	}
	if m.last_production_exposure_id != nil {
		fields = append(fields, experiment.FieldLastProductionExposureID)
	}
	if m.last_staging_exposure_id != nil {
		fields = append(fields, experiment.FieldLastStagingExposureID)
	}
	if m.last_production_conversion_id != nil {
		fields = append(fields, experiment.FieldLastProductionConversionID)
	}
	if m.last_staging_conversion_id != nil {
		fields = append(fields, experiment.FieldLastStagingConversionID)
	}
	if m.created_at != nil {
		fields = append(fields, experiment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, experiment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExperimentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case experiment.FieldUserID:
		return m.UserID()
	case experiment.FieldName:
		return m.Name()
	case experiment.FieldActive:
		return m.Active()
	case experiment.FieldLastActivatedAt:
		return m.LastActivatedAt()
	case experiment.FieldSubjectsCounterProduction:
		return m.SubjectsCounterProduction()
	case experiment.FieldSubjectsCounterStaging:
		return m.SubjectsCounterStaging()
	case experiment.FieldLastProductionExposureID:
		return m.LastProductionExposureID()
	case experiment.FieldLastStagingExposureID:
		return m.LastStagingExposureID()
	case experiment.FieldLastProductionConversionID:
		return m.LastProductionConversionID()
	case experiment.FieldLastStagingConversionID:
		return m.LastStagingConversionID()
	case experiment.FieldCreatedAt:
		return m.CreatedAt()
	case experiment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExperimentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case experiment.FieldUserID:
		return m.OldUserID(ctx)
	case experiment.FieldName:
		return m.OldName(ctx)
	case experiment.FieldActive:
		return m.OldActive(ctx)
	case experiment.FieldLastActivatedAt:
		return m.OldLastActivatedAt(ctx)
	case experiment.FieldSubjectsCounterProduction:
		return m.OldSubjectsCounterProduction(ctx)
	case experiment.FieldSubjectsCounterStaging:
		return m.OldSubjectsCounterStaging(ctx)
	case experiment.FieldLastProductionExposureID:
		return m.OldLastProductionExposureID(ctx)
	case experiment.FieldLastStagingExposureID:
		return m.OldLastStagingExposureID(ctx)
	case experiment.FieldLastProductionConversionID:
		return m.OldLastProductionConversionID(ctx)
	case experiment.FieldLastStagingConversionID:
		return m.OldLastStagingConversionID(ctx)
	case experiment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case experiment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Experiment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case experiment.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case experiment.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case experiment.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case experiment.FieldLastActivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivatedAt(v)
		return nil
	case experiment.FieldSubjectsCounterProduction:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectsCounterProduction(v)
		return nil
	case experiment.FieldSubjectsCounterStaging:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectsCounterStaging(v)
		return nil
	case experiment.FieldLastProductionExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProductionExposureID(v)
		return nil
	case experiment.FieldLastStagingExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStagingExposureID(v)
		return nil
	case experiment.FieldLastProductionConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProductionConversionID(v)
		return nil
	case experiment.FieldLastStagingConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStagingConversionID(v)
		return nil
	case experiment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case experiment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Experiment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExperimentMutation) AddedFields() []string {
	var fields []string
	if m.addsubjects_counter_production != nil {
		fields = append(fields, experiment.FieldSubjectsCounterProduction)
	}
	if m.addsubjects_counter_staging != nil {
		fields = append(fields, experiment.FieldSubjectsCounterStaging)
	}
	if m.addlast_production_exposure_id != nil {
		fields = append(fields, experiment.FieldLastProductionExposureID)
	}
	if m.addlast_staging_exposure_id != nil {
		fields = append(fields, experiment.FieldLastStagingExposureID)
	}
	if m.addlast_production_conversion_id != nil {
		fields = append(fields, experiment.FieldLastProductionConversionID)
	}
	if m.addlast_staging_conversion_id != nil {
		fields = append(fields, experiment.FieldLastStagingConversionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExperimentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case experiment.FieldSubjectsCounterProduction:
		return m.AddedSubjectsCounterProduction()
	case experiment.FieldSubjectsCounterStaging:
		return m.AddedSubjectsCounterStaging()
	case experiment.FieldLastProductionExposureID:
		return m.AddedLastProductionExposureID()
	case experiment.FieldLastStagingExposureID:
		return m.AddedLastStagingExposureID()
	case experiment.FieldLastProductionConversionID:
		return m.AddedLastProductionConversionID()
	case experiment.FieldLastStagingConversionID:
		return m.AddedLastStagingConversionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case experiment.FieldSubjectsCounterProduction:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubjectsCounterProduction(v)
		return nil
	case experiment.FieldSubjectsCounterStaging:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubjectsCounterStaging(v)
		return nil
	case experiment.FieldLastProductionExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProductionExposureID(v)
		return nil
	case experiment.FieldLastStagingExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStagingExposureID(v)
		return nil
	case experiment.FieldLastProductionConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProductionConversionID(v)
		return nil
	case experiment.FieldLastStagingConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStagingConversionID(v)
		return nil
	}
	return fmt.Errorf("unknown Experiment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExperimentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(experiment.FieldLastProductionExposureID) {
		fields = append(fields, experiment.FieldLastProductionExposureID)
	}
	if m.FieldCleared(experiment.FieldLastStagingExposureID) {
		fields = append(fields, experiment.FieldLastStagingExposureID)
	}
	if m.FieldCleared(experiment.FieldLastProductionConversionID) {
		fields = append(fields, experiment.FieldLastProductionConversionID)
	}
	if m.FieldCleared(experiment.FieldLastStagingConversionID) {
		fields = append(fields, experiment.FieldLastStagingConversionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExperimentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExperimentMutation) ClearField(name string) error {
	switch name {
	case experiment.FieldLastProductionExposureID:
		m.ClearLastProductionExposureID()
		return nil
	case experiment.FieldLastStagingExposureID:
		m.ClearLastStagingExposureID()
		return nil
	case experiment.FieldLastProductionConversionID:
		m.ClearLastProductionConversionID()
		return nil
	case experiment.FieldLastStagingConversionID:
		m.ClearLastStagingConversionID()
		return nil
	}
	return fmt.Errorf("unknown Experiment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExperimentMutation) ResetField(name string) error {
	switch name {
	case experiment.FieldUserID:
		m.ResetUserID()
		return nil
	case experiment.FieldName:
		m.ResetName()
		return nil
	case experiment.FieldActive:
		m.ResetActive()
		return nil
	case experiment.FieldLastActivatedAt:
		m.ResetLastActivatedAt()
		return nil
	case experiment.FieldSubjectsCounterProduction:
		m.ResetSubjectsCounterProduction()
		return nil
	case experiment.FieldSubjectsCounterStaging:
		m.ResetSubjectsCounterStaging()
		return nil
	case experiment.FieldLastProductionExposureID:
		m.ResetLastProductionExposureID()
		return nil
	case experiment.FieldLastStagingExposureID:
		m.ResetLastStagingExposureID()
		return nil
	case experiment.FieldLastProductionConversionID:
		m.ResetLastProductionConversionID()
		return nil
	case experiment.FieldLastStagingConversionID:
		m.ResetLastStagingConversionID()
		return nil
	case experiment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case experiment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Experiment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExperimentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, experiment.EdgeUser)
	}
	if m.cohorts != nil {
		edges = append(edges, experiment.EdgeCohorts)
	}
	if m.exposures != nil {
		edges = append(edges, experiment.EdgeExposures)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExperimentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case experiment.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case experiment.EdgeCohorts:
		ids := make([]ent.Value, 0, len(m.cohorts))
		for id := range m.cohorts {
			ids = append(ids, id)
		}
		return ids
	case experiment.EdgeExposures:
		ids := make([]ent.Value, 0, len(m.exposures))
		for id := range m.exposures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExperimentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcohorts != nil {
		edges = append(edges, experiment.EdgeCohorts)
	}
	if m.removedexposures != nil {
		edges = append(edges, experiment.EdgeExposures)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExperimentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case experiment.EdgeCohorts:
		ids := make([]ent.Value, 0, len(m.removedcohorts))
		for id := range m.removedcohorts {
			ids = append(ids, id)
		}
		return ids
	case experiment.EdgeExposures:
		ids := make([]ent.Value, 0, len(m.removedexposures))
		for id := range m.removedexposures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExperimentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, experiment.EdgeUser)
	}
	if m.clearedcohorts {
		edges = append(edges, experiment.EdgeCohorts)
	}
	if m.clearedexposures {
		edges = append(edges, experiment.EdgeExposures)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExperimentMutation) EdgeCleared(name string) bool {
	switch name {
	case experiment.EdgeUser:
		return m.cleareduser
	case experiment.EdgeCohorts:
		return m.clearedcohorts
	case experiment.EdgeExposures:
		return m.clearedexposures
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExperimentMutation) ClearEdge(name string) error {
	switch name {
	case experiment.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Experiment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExperimentMutation) ResetEdge(name string) error {
	switch name {
	case experiment.EdgeUser:
		m.ResetUser()
		return nil
	case experiment.EdgeCohorts:
		m.ResetCohorts()
		return nil
	case experiment.EdgeExposures:
		m.ResetExposures()
		return nil
	}
	return fmt.Errorf("unknown Experiment edge %s", name)
}

// ExperimentResultMutation represents an operation that mutates the ExperimentResult nodes in the graph.
type ExperimentResultMutation struct {
	config
	op               Op
	typ              string
	id               *int
	experiment_id    *int
	addexperiment_id *int
	scope            *domain.Scope
	version          *string
	fields           *json.RawMessage
	appendfields     json.RawMessage
	ran_at           *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ExperimentResult, error)
	predicates       []predicate.ExperimentResult
}

var _ ent.Mutation = (*ExperimentResultMutation)(nil)

// experimentresultOption allows management of the mutation configuration using functional options.
type experimentresultOption func(*ExperimentResultMutation)

// newExperimentResultMutation creates new mutation for the ExperimentResult entity.
func newExperimentResultMutation(c config, op Op, opts ...experimentresultOption) *ExperimentResultMutation {
	m := &ExperimentResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExperimentResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExperimentResultID sets the ID field of the mutation.
func withExperimentResultID(id int) experimentresultOption {
	return func(m *ExperimentResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExperimentResult
		)
		m.oldValue = func(ctx context.Context) (*ExperimentResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExperimentResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExperimentResult sets the old ExperimentResult of the mutation.
func withExperimentResult(node *ExperimentResult) experimentresultOption {
	return func(m *ExperimentResultMutation) {
		m.oldValue = func(context.Context) (*ExperimentResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExperimentResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExperimentResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExperimentResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExperimentResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExperimentResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExperimentID sets the "experiment_id" field.
func (m *ExperimentResultMutation) SetExperimentID(i int) {
	m.experiment_id = &i
	m.addexperiment_id = nil
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *ExperimentResultMutation) ExperimentID() (r int, exists bool) {
	v := m.experiment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldExperimentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// AddExperimentID adds i to the "experiment_id" field.
func (m *ExperimentResultMutation) AddExperimentID(i int) {
	if m.addexperiment_id != nil {
		*m.addexperiment_id += i
	} else {
		m.addexperiment_id = &i
	}
}

// AddedExperimentID returns the value that was added to the "experiment_id" field in this mutation.
func (m *ExperimentResultMutation) AddedExperimentID() (r int, exists bool) {
	v := m.addexperiment_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *ExperimentResultMutation) ResetExperimentID() {
	m.experiment_id = nil
	m.addexperiment_id = nil
}

// SetScope sets the "scope" field.
func (m *ExperimentResultMutation) SetScope(d domain.Scope) {
	m.scope = &d
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ExperimentResultMutation) Scope() (r domain.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldScope(ctx context.Context) (v domain.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ExperimentResultMutation) ResetScope() {
	m.scope = nil
}

// SetVersion sets the "version" field.
func (m *ExperimentResultMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *ExperimentResultMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *ExperimentResultMutation) ResetVersion() {
	m.version = nil
}

// SetFields sets the "fields" field.
func (m *ExperimentResultMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ExperimentResultMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *ExperimentResultMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *ExperimentResultMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ResetFields resets all changes to the "fields" field.
func (m *ExperimentResultMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
}

// SetRanAt sets the "ran_at" field.
func (m *ExperimentResultMutation) SetRanAt(t time.Time) {
	m.ran_at = &t
}

// RanAt returns the value of the "ran_at" field in the mutation.
func (m *ExperimentResultMutation) RanAt() (r time.Time, exists bool) {
	v := m.ran_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRanAt returns the old "ran_at" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldRanAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRanAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRanAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRanAt: %w", err)
	}
	return oldValue.RanAt, nil
}

// ResetRanAt resets all changes to the "ran_at" field.
func (m *ExperimentResultMutation) ResetRanAt() {
	m.ran_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExperimentResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExperimentResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExperimentResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExperimentResultMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExperimentResultMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExperimentResultMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ExperimentResultMutation builder.
func (m *ExperimentResultMutation) Where(ps ...predicate.ExperimentResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExperimentResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExperimentResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExperimentResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExperimentResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExperimentResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExperimentResult).
func (m *ExperimentResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExperimentResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.experiment_id != nil {
		fields = append(fields, experimentresult.FieldExperimentID)
	}
	if m.scope != nil {
		fields = append(fields, experimentresult.FieldScope)
	}
	if m.version != nil {
		fields = append(fields, experimentresult.FieldVersion)
	}
	if m.fields != nil {
		fields = append(fields, experimentresult.FieldFields)
	}
	if m.ran_at != nil {
		fields = append(fields, experimentresult.FieldRanAt)
	}
	if m.created_at != nil {
		fields = append(fields, experimentresult.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, experimentresult.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExperimentResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case experimentresult.FieldExperimentID:
		return m.ExperimentID()
	case experimentresult.FieldScope:
		return m.Scope()
	case experimentresult.FieldVersion:
		return m.Version()
	case experimentresult.FieldFields:
		return m.GetFields()
	case experimentresult.FieldRanAt:
		return m.RanAt()
	case experimentresult.FieldCreatedAt:
		return m.CreatedAt()
	case experimentresult.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExperimentResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case experimentresult.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case experimentresult.FieldScope:
		return m.OldScope(ctx)
	case experimentresult.FieldVersion:
		return m.OldVersion(ctx)
	case experimentresult.FieldFields:
		return m.OldFields(ctx)
	case experimentresult.FieldRanAt:
		return m.OldRanAt(ctx)
	case experimentresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case experimentresult.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExperimentResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case experimentresult.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case experimentresult.FieldScope:
		v, ok := value.(domain.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case experimentresult.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case experimentresult.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case experimentresult.FieldRanAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRanAt(v)
		return nil
	case experimentresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case experimentresult.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExperimentResultMutation) AddedFields() []string {
	var fields []string
	if m.addexperiment_id != nil {
		fields = append(fields, experimentresult.FieldExperimentID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExperimentResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case experimentresult.FieldExperimentID:
		return m.AddedExperimentID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case experimentresult.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperimentID(v)
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExperimentResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExperimentResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExperimentResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExperimentResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExperimentResultMutation) ResetField(name string) error {
	switch name {
	case experimentresult.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case experimentresult.FieldScope:
		m.ResetScope()
		return nil
	case experimentresult.FieldVersion:
		m.ResetVersion()
		return nil
	case experimentresult.FieldFields:
		m.ResetFields()
		return nil
	case experimentresult.FieldRanAt:
		m.ResetRanAt()
		return nil
	case experimentresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case experimentresult.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExperimentResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExperimentResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExperimentResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExperimentResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExperimentResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExperimentResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExperimentResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExperimentResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExperimentResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExperimentResult edge %s", name)
}

// ExposureMutation represents an operation that mutates the Exposure nodes in the graph.
type ExposureMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	scope              *domain.Scope
	created_at         *time.Time
	last_seen_at       *time.Time
	clearedFields      map[string]struct{}
	subject            *int
	clearedsubject     bool
	experiment         *int
	clearedexperiment  bool
	cohort             *int
	clearedcohort      bool
	conversions        map[int]struct{}
	removedconversions map[int]struct{}
	clearedconversions bool
	done               bool
	oldValue           func(context.Context) (*Exposure, error)
	predicates         []predicate.Exposure
}

var _ ent.Mutation = (*ExposureMutation)(nil)

// exposureOption allows management of the mutation configuration using functional options.
type exposureOption func(*ExposureMutation)

// newExposureMutation creates new mutation for the Exposure entity.
func newExposureMutation(c config, op Op, opts ...exposureOption) *ExposureMutation {
	m := &ExposureMutation{
		config:        c,
		op:            op,
		typ:           TypeExposure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExposureID sets the ID field of the mutation.
func withExposureID(id int) exposureOption {
	return func(m *ExposureMutation) {
		var (
			err   error
			once  sync.Once
			value *Exposure
		)
		m.oldValue = func(ctx context.Context) (*Exposure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Exposure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExposure sets the old Exposure of the mutation.
func withExposure(node *Exposure) exposureOption {
	return func(m *ExposureMutation) {
		m.oldValue = func(context.Context) (*Exposure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExposureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExposureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExposureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExposureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Exposure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubjectID sets the "subject_id" field.
func (m *ExposureMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *ExposureMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Exposure entity.
// If the Exposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureMutation) OldSubjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *ExposureMutation) ResetSubjectID() {
	m.subject = nil
}

// SetExperimentID sets the "experiment_id" field.
func (m *ExposureMutation) SetExperimentID(i int) {
	m.experiment = &i
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *ExposureMutation) ExperimentID() (r int, exists bool) {
	v := m.experiment
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the Exposure entity.
// If the Exposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureMutation) OldExperimentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *ExposureMutation) ResetExperimentID() {
	m.experiment = nil
}

// SetCohortID sets the "cohort_id" field.
func (m *ExposureMutation) SetCohortID(i int) {
	m.cohort = &i
}

// CohortID returns the value of the "cohort_id" field in the mutation.
func (m *ExposureMutation) CohortID() (r int, exists bool) {
	v := m.cohort
	if v == nil {
		return
	}
	return *v, true
}

// OldCohortID returns the old "cohort_id" field's value of the Exposure entity.
// If the Exposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureMutation) OldCohortID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCohortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCohortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCohortID: %w", err)
	}
	return oldValue.CohortID, nil
}

// ResetCohortID resets all changes to the "cohort_id" field.
func (m *ExposureMutation) ResetCohortID() {
	m.cohort = nil
}

// SetScope sets the "scope" field.
func (m *ExposureMutation) SetScope(d domain.Scope) {
	m.scope = &d
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ExposureMutation) Scope() (r domain.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Exposure entity.
// If the Exposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureMutation) OldScope(ctx context.Context) (v domain.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ExposureMutation) ResetScope() {
	m.scope = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExposureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExposureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Exposure entity.
// If the Exposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExposureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *ExposureMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *ExposureMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Exposure entity.
// If the Exposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *ExposureMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *ExposureMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[exposure.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *ExposureMutation) SubjectCleared() bool {
	return m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *ExposureMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *ExposureMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (m *ExposureMutation) ClearExperiment() {
	m.clearedexperiment = true
	m.clearedFields[exposure.FieldExperimentID] = struct{}{}
}

// ExperimentCleared reports if the "experiment" edge to the Experiment entity was cleared.
func (m *ExposureMutation) ExperimentCleared() bool {
	return m.clearedexperiment
}

// ExperimentIDs returns the "experiment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExperimentID instead. It exists only for internal usage by the builders.
func (m *ExposureMutation) ExperimentIDs() (ids []int) {
	if id := m.experiment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExperiment resets all changes to the "experiment" edge.
func (m *ExposureMutation) ResetExperiment() {
	m.experiment = nil
	m.clearedexperiment = false
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (m *ExposureMutation) ClearCohort() {
	m.clearedcohort = true
	m.clearedFields[exposure.FieldCohortID] = struct{}{}
}

// CohortCleared reports if the "cohort" edge to the Cohort entity was cleared.
func (m *ExposureMutation) CohortCleared() bool {
	return m.clearedcohort
}

// CohortIDs returns the "cohort" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CohortID instead. It exists only for internal usage by the builders.
func (m *ExposureMutation) CohortIDs() (ids []int) {
	if id := m.cohort; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCohort resets all changes to the "cohort" edge.
func (m *ExposureMutation) ResetCohort() {
	m.cohort = nil
	m.clearedcohort = false
}

// AddConversionIDs adds the "conversions" edge to the Conversion entity by ids.
func (m *ExposureMutation) AddConversionIDs(ids ...int) {
	if m.conversions == nil {
		m.conversions = make(map[int]struct{})
	}
	for i := range ids {
		m.conversions[ids[i]] = struct{}{}
	}
}

// ClearConversions clears the "conversions" edge to the Conversion entity.
func (m *ExposureMutation) ClearConversions() {
	m.clearedconversions = true
}

// ConversionsCleared reports if the "conversions" edge to the Conversion entity was cleared.
func (m *ExposureMutation) ConversionsCleared() bool {
	return m.clearedconversions
}

// RemoveConversionIDs removes the "conversions" edge to the Conversion entity by IDs.
func (m *ExposureMutation) RemoveConversionIDs(ids ...int) {
	if m.removedconversions == nil {
		m.removedconversions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.conversions, ids[i])
		m.removedconversions[ids[i]] = struct{}{}
	}
}

// RemovedConversions returns the removed IDs of the "conversions" edge to the Conversion entity.
func (m *ExposureMutation) RemovedConversionsIDs() (ids []int) {
	for id := range m.removedconversions {
		ids = append(ids, id)
	}
	return
}

// ConversionsIDs returns the "conversions" edge IDs in the mutation.
func (m *ExposureMutation) ConversionsIDs() (ids []int) {
	for id := range m.conversions {
		ids = append(ids, id)
	}
	return
}

// ResetConversions resets all changes to the "conversions" edge.
func (m *ExposureMutation) ResetConversions() {
	m.conversions = nil
	m.clearedconversions = false
	m.removedconversions = nil
}

// Where appends a list predicates to the ExposureMutation builder.
func (m *ExposureMutation) Where(ps ...predicate.Exposure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExposureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExposureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Exposure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExposureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExposureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Exposure).
func (m *ExposureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExposureMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.subject != nil {
		fields = append(fields, exposure.FieldSubjectID)
	}
	if m.experiment != nil {
		fields = append(fields, exposure.FieldExperimentID)
	}
	if m.cohort != nil {
		fields = append(fields, exposure.FieldCohortID)
	}
	if m.scope != nil {
		fields = append(fields, exposure.FieldScope)
	}
	if m.created_at != nil {
		fields = append(fields, exposure.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, exposure.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExposureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exposure.FieldSubjectID:
		return m.SubjectID()
	case exposure.FieldExperimentID:
		return m.ExperimentID()
	case exposure.FieldCohortID:
		return m.CohortID()
	case exposure.FieldScope:
		return m.Scope()
	case exposure.FieldCreatedAt:
		return m.CreatedAt()
	case exposure.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExposureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exposure.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case exposure.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case exposure.FieldCohortID:
		return m.OldCohortID(ctx)
	case exposure.FieldScope:
		return m.OldScope(ctx)
	case exposure.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exposure.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Exposure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExposureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exposure.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case exposure.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case exposure.FieldCohortID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCohortID(v)
		return nil
	case exposure.FieldScope:
		v, ok := value.(domain.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case exposure.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exposure.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Exposure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExposureMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExposureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExposureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Exposure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExposureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExposureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExposureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Exposure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExposureMutation) ResetField(name string) error {
	switch name {
	case exposure.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case exposure.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case exposure.FieldCohortID:
		m.ResetCohortID()
		return nil
	case exposure.FieldScope:
		m.ResetScope()
		return nil
	case exposure.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exposure.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Exposure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExposureMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.subject != nil {
		edges = append(edges, exposure.EdgeSubject)
	}
	if m.experiment != nil {
		edges = append(edges, exposure.EdgeExperiment)
	}
	if m.cohort != nil {
		edges = append(edges, exposure.EdgeCohort)
	}
	if m.conversions != nil {
		edges = append(edges, exposure.EdgeConversions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExposureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case exposure.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case exposure.EdgeExperiment:
		if id := m.experiment; id != nil {
			return []ent.Value{*id}
		}
	case exposure.EdgeCohort:
		if id := m.cohort; id != nil {
			return []ent.Value{*id}
		}
	case exposure.EdgeConversions:
		ids := make([]ent.Value, 0, len(m.conversions))
		for id := range m.conversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExposureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedconversions != nil {
		edges = append(edges, exposure.EdgeConversions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExposureMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case exposure.EdgeConversions:
		ids := make([]ent.Value, 0, len(m.removedconversions))
		for id := range m.removedconversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExposureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsubject {
		edges = append(edges, exposure.EdgeSubject)
	}
	if m.clearedexperiment {
		edges = append(edges, exposure.EdgeExperiment)
	}
	if m.clearedcohort {
		edges = append(edges, exposure.EdgeCohort)
	}
	if m.clearedconversions {
		edges = append(edges, exposure.EdgeConversions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExposureMutation) EdgeCleared(name string) bool {
	switch name {
	case exposure.EdgeSubject:
		return m.clearedsubject
	case exposure.EdgeExperiment:
		return m.clearedexperiment
	case exposure.EdgeCohort:
		return m.clearedcohort
	case exposure.EdgeConversions:
		return m.clearedconversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExposureMutation) ClearEdge(name string) error {
	switch name {
	case exposure.EdgeSubject:
		m.ClearSubject()
		return nil
	case exposure.EdgeExperiment:
		m.ClearExperiment()
		return nil
	case exposure.EdgeCohort:
		m.ClearCohort()
		return nil
	}
	return fmt.Errorf("unknown Exposure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExposureMutation) ResetEdge(name string) error {
	switch name {
	case exposure.EdgeSubject:
		m.ResetSubject()
		return nil
	case exposure.EdgeExperiment:
		m.ResetExperiment()
		return nil
	case exposure.EdgeCohort:
		m.ResetCohort()
		return nil
	case exposure.EdgeConversions:
		m.ResetConversions()
		return nil
	}
	return fmt.Errorf("unknown Exposure edge %s", name)
}

// ExposureRollupMutation represents an operation that mutates the ExposureRollup nodes in the graph.
type ExposureRollupMutation struct {
	config
	op               Op
	typ              string
	id               *int
	day              *time.Time
	user_id          *int
	adduser_id       *int
	experiment_id    *int
	addexperiment_id *int
	experiment_name  *string
	scope            *domain.Scope
	exposures        *int
	addexposures     *int
	conversions      *int
	addconversions   *int
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ExposureRollup, error)
	predicates       []predicate.ExposureRollup
}

var _ ent.Mutation = (*ExposureRollupMutation)(nil)

// exposurerollupOption allows management of the mutation configuration using functional options.
type exposurerollupOption func(*ExposureRollupMutation)

// newExposureRollupMutation creates new mutation for the ExposureRollup entity.
func newExposureRollupMutation(c config, op Op, opts ...exposurerollupOption) *ExposureRollupMutation {
	m := &ExposureRollupMutation{
		config:        c,
		op:            op,
		typ:           TypeExposureRollup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExposureRollupID sets the ID field of the mutation.
func withExposureRollupID(id int) exposurerollupOption {
	return func(m *ExposureRollupMutation) {
		var (
			err   error
			once  sync.Once
			value *ExposureRollup
		)
		m.oldValue = func(ctx context.Context) (*ExposureRollup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExposureRollup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExposureRollup sets the old ExposureRollup of the mutation.
func withExposureRollup(node *ExposureRollup) exposurerollupOption {
	return func(m *ExposureRollupMutation) {
		m.oldValue = func(context.Context) (*ExposureRollup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExposureRollupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExposureRollupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExposureRollupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExposureRollupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExposureRollup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDay sets the "day" field.
func (m *ExposureRollupMutation) SetDay(t time.Time) {
	m.day = &t
}

// Day returns the value of the "day" field in the mutation.
func (m *ExposureRollupMutation) Day() (r time.Time, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldDay(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *ExposureRollupMutation) ResetDay() {
	m.day = nil
}

// SetUserID sets the "user_id" field.
func (m *ExposureRollupMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExposureRollupMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ExposureRollupMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ExposureRollupMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExposureRollupMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetExperimentID sets the "experiment_id" field.
func (m *ExposureRollupMutation) SetExperimentID(i int) {
	m.experiment_id = &i
	m.addexperiment_id = nil
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *ExposureRollupMutation) ExperimentID() (r int, exists bool) {
	v := m.experiment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldExperimentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// AddExperimentID adds i to the "experiment_id" field.
func (m *ExposureRollupMutation) AddExperimentID(i int) {
	if m.addexperiment_id != nil {
		*m.addexperiment_id += i
	} else {
		m.addexperiment_id = &i
	}
}

// AddedExperimentID returns the value that was added to the "experiment_id" field in this mutation.
func (m *ExposureRollupMutation) AddedExperimentID() (r int, exists bool) {
	v := m.addexperiment_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *ExposureRollupMutation) ResetExperimentID() {
	m.experiment_id = nil
	m.addexperiment_id = nil
}

// SetExperimentName sets the "experiment_name" field.
func (m *ExposureRollupMutation) SetExperimentName(s string) {
	m.experiment_name = &s
}

// ExperimentName returns the value of the "experiment_name" field in the mutation.
func (m *ExposureRollupMutation) ExperimentName() (r string, exists bool) {
	v := m.experiment_name
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentName returns the old "experiment_name" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldExperimentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentName: %w", err)
	}
	return oldValue.ExperimentName, nil
}

// ResetExperimentName resets all changes to the "experiment_name" field.
func (m *ExposureRollupMutation) ResetExperimentName() {
	m.experiment_name = nil
}

// SetScope sets the "scope" field.
func (m *ExposureRollupMutation) SetScope(d domain.Scope) {
	m.scope = &d
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ExposureRollupMutation) Scope() (r domain.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldScope(ctx context.Context) (v domain.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ExposureRollupMutation) ResetScope() {
	m.scope = nil
}

// SetExposures sets the "exposures" field.
func (m *ExposureRollupMutation) SetExposures(i int) {
	m.exposures = &i
	m.addexposures = nil
}

// Exposures returns the value of the "exposures" field in the mutation.
func (m *ExposureRollupMutation) Exposures() (r int, exists bool) {
	v := m.exposures
	if v == nil {
		return
	}
	return *v, true
}

// OldExposures returns the old "exposures" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldExposures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExposures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExposures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExposures: %w", err)
	}
	return oldValue.Exposures, nil
}

// AddExposures adds i to the "exposures" field.
func (m *ExposureRollupMutation) AddExposures(i int) {
	if m.addexposures != nil {
		*m.addexposures += i
	} else {
		m.addexposures = &i
	}
}

// AddedExposures returns the value that was added to the "exposures" field in this mutation.
func (m *ExposureRollupMutation) AddedExposures() (r int, exists bool) {
	v := m.addexposures
	if v == nil {
		return
	}
	return *v, true
}

// ResetExposures resets all changes to the "exposures" field.
func (m *ExposureRollupMutation) ResetExposures() {
	m.exposures = nil
	m.addexposures = nil
}

// SetConversions sets the "conversions" field.
func (m *ExposureRollupMutation) SetConversions(i int) {
	m.conversions = &i
	m.addconversions = nil
}

// Conversions returns the value of the "conversions" field in the mutation.
func (m *ExposureRollupMutation) Conversions() (r int, exists bool) {
	v := m.conversions
	if v == nil {
		return
	}
	return *v, true
}

// OldConversions returns the old "conversions" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldConversions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversions: %w", err)
	}
	return oldValue.Conversions, nil
}

// AddConversions adds i to the "conversions" field.
func (m *ExposureRollupMutation) AddConversions(i int) {
	if m.addconversions != nil {
		*m.addconversions += i
	} else {
		m.addconversions = &i
	}
}

// AddedConversions returns the value that was added to the "conversions" field in this mutation.
func (m *ExposureRollupMutation) AddedConversions() (r int, exists bool) {
	v := m.addconversions
	if v == nil {
		return
	}
	return *v, true
}

// ResetConversions resets all changes to the "conversions" field.
func (m *ExposureRollupMutation) ResetConversions() {
	m.conversions = nil
	m.addconversions = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExposureRollupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExposureRollupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExposureRollupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExposureRollupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExposureRollupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExposureRollup entity.
// If the ExposureRollup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureRollupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExposureRollupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ExposureRollupMutation builder.
func (m *ExposureRollupMutation) Where(ps ...predicate.ExposureRollup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExposureRollupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExposureRollupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExposureRollup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExposureRollupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExposureRollupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExposureRollup).
func (m *ExposureRollupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExposureRollupMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.day != nil {
		fields = append(fields, exposurerollup.FieldDay)
	}
	if m.user_id != nil {
		fields = append(fields, exposurerollup.FieldUserID)
	}
	if m.experiment_id != nil {
		fields = append(fields, exposurerollup.FieldExperimentID)
	}
	if m.experiment_name != nil {
		fields = append(fields, exposurerollup.FieldExperimentName)
	}
	if m.scope != nil {
		fields = append(fields, exposurerollup.FieldScope)
	}
	if m.exposures != nil {
		fields = append(fields, exposurerollup.FieldExposures)
	}
	if m.conversions != nil {
		fields = append(fields, exposurerollup.FieldConversions)
	}
	if m.created_at != nil {
		fields = append(fields, exposurerollup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, exposurerollup.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExposureRollupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exposurerollup.FieldDay:
		return m.Day()
	case exposurerollup.FieldUserID:
		return m.UserID()
	case exposurerollup.FieldExperimentID:
		return m.ExperimentID()
	case exposurerollup.FieldExperimentName:
		return m.ExperimentName()
	case exposurerollup.FieldScope:
		return m.Scope()
	case exposurerollup.FieldExposures:
		return m.Exposures()
	case exposurerollup.FieldConversions:
		return m.Conversions()
	case exposurerollup.FieldCreatedAt:
		return m.CreatedAt()
	case exposurerollup.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExposureRollupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exposurerollup.FieldDay:
		return m.OldDay(ctx)
	case exposurerollup.FieldUserID:
		return m.OldUserID(ctx)
	case exposurerollup.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case exposurerollup.FieldExperimentName:
		return m.OldExperimentName(ctx)
	case exposurerollup.FieldScope:
		return m.OldScope(ctx)
	case exposurerollup.FieldExposures:
		return m.OldExposures(ctx)
	case exposurerollup.FieldConversions:
		return m.OldConversions(ctx)
	case exposurerollup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exposurerollup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExposureRollup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExposureRollupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exposurerollup.FieldDay:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case exposurerollup.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case exposurerollup.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case exposurerollup.FieldExperimentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentName(v)
		return nil
	case exposurerollup.FieldScope:
		v, ok := value.(domain.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case exposurerollup.FieldExposures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExposures(v)
		return nil
	case exposurerollup.FieldConversions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversions(v)
		return nil
	case exposurerollup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exposurerollup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExposureRollup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExposureRollupMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, exposurerollup.FieldUserID)
	}
	if m.addexperiment_id != nil {
		fields = append(fields, exposurerollup.FieldExperimentID)
	}
	if m.addexposures != nil {
		fields = append(fields, exposurerollup.FieldExposures)
	}
	if m.addconversions != nil {
		fields = append(fields, exposurerollup.FieldConversions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExposureRollupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exposurerollup.FieldUserID:
		return m.AddedUserID()
	case exposurerollup.FieldExperimentID:
		return m.AddedExperimentID()
	case exposurerollup.FieldExposures:
		return m.AddedExposures()
	case exposurerollup.FieldConversions:
		return m.AddedConversions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExposureRollupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exposurerollup.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case exposurerollup.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperimentID(v)
		return nil
	case exposurerollup.FieldExposures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExposures(v)
		return nil
	case exposurerollup.FieldConversions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConversions(v)
		return nil
	}
	return fmt.Errorf("unknown ExposureRollup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExposureRollupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExposureRollupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExposureRollupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExposureRollup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExposureRollupMutation) ResetField(name string) error {
	switch name {
	case exposurerollup.FieldDay:
		m.ResetDay()
		return nil
	case exposurerollup.FieldUserID:
		m.ResetUserID()
		return nil
	case exposurerollup.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case exposurerollup.FieldExperimentName:
		m.ResetExperimentName()
		return nil
	case exposurerollup.FieldScope:
		m.ResetScope()
		return nil
	case exposurerollup.FieldExposures:
		m.ResetExposures()
		return nil
	case exposurerollup.FieldConversions:
		m.ResetConversions()
		return nil
	case exposurerollup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exposurerollup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExposureRollup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExposureRollupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExposureRollupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExposureRollupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExposureRollupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExposureRollupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExposureRollupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExposureRollupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExposureRollup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExposureRollupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExposureRollup edge %s", name)
}

// PlanMutation represents an operation that mutates the Plan nodes in the graph.
type PlanMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	name                           *string
	price_in_cents                 *int
	addprice_in_cents              *int
	max_subjects_per_experiment    *int
	addmax_subjects_per_experiment *int
	max_active_experiments         *int
	addmax_active_experiments      *int
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	accounts                       map[int]struct{}
	removedaccounts                map[int]struct{}
	clearedaccounts                bool
	done                           bool
	oldValue                       func(context.Context) (*Plan, error)
	predicates                     []predicate.Plan
}

var _ ent.Mutation = (*PlanMutation)(nil)

// planOption allows management of the mutation configuration using functional options.
type planOption func(*PlanMutation)

// newPlanMutation creates new mutation for the Plan entity.
func newPlanMutation(c config, op Op, opts ...planOption) *PlanMutation {
	m := &PlanMutation{
		config:        c,
		op:            op,
		typ:           TypePlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanID sets the ID field of the mutation.
func withPlanID(id int) planOption {
	return func(m *PlanMutation) {
		var (
			err   error
			once  sync.Once
			value *Plan
		)
		m.oldValue = func(ctx context.Context) (*Plan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Plan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlan sets the old Plan of the mutation.
func withPlan(node *Plan) planOption {
	return func(m *PlanMutation) {
		m.oldValue = func(context.Context) (*Plan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Plan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PlanMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PlanMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PlanMutation) ResetName() {
	m.name = nil
}

// SetPriceInCents sets the "price_in_cents" field.
func (m *PlanMutation) SetPriceInCents(i int) {
	m.price_in_cents = &i
	m.addprice_in_cents = nil
}

// PriceInCents returns the value of the "price_in_cents" field in the mutation.
func (m *PlanMutation) PriceInCents() (r int, exists bool) {
	v := m.price_in_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceInCents returns the old "price_in_cents" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldPriceInCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceInCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceInCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceInCents: %w", err)
	}
	return oldValue.PriceInCents, nil
}

// AddPriceInCents adds i to the "price_in_cents" field.
func (m *PlanMutation) AddPriceInCents(i int) {
	if m.addprice_in_cents != nil {
		*m.addprice_in_cents += i
	} else {
		m.addprice_in_cents = &i
	}
}

// AddedPriceInCents returns the value that was added to the "price_in_cents" field in this mutation.
func (m *PlanMutation) AddedPriceInCents() (r int, exists bool) {
	v := m.addprice_in_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriceInCents resets all changes to the "price_in_cents" field.
func (m *PlanMutation) ResetPriceInCents() {
	m.price_in_cents = nil
	m.addprice_in_cents = nil
}

// SetMaxSubjectsPerExperiment sets the "max_subjects_per_experiment" field.
func (m *PlanMutation) SetMaxSubjectsPerExperiment(i int) {
	m.max_subjects_per_experiment = &i
	m.addmax_subjects_per_experiment = nil
}

// MaxSubjectsPerExperiment returns the value of the "max_subjects_per_experiment" field in the mutation.
func (m *PlanMutation) MaxSubjectsPerExperiment() (r int, exists bool) {
	v := m.max_subjects_per_experiment
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxSubjectsPerExperiment returns the old "max_subjects_per_experiment" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldMaxSubjectsPerExperiment(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxSubjectsPerExperiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxSubjectsPerExperiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxSubjectsPerExperiment: %w", err)
	}
	return oldValue.MaxSubjectsPerExperiment, nil
}

// AddMaxSubjectsPerExperiment adds i to the "max_subjects_per_experiment" field.
func (m *PlanMutation) AddMaxSubjectsPerExperiment(i int) {
	if m.addmax_subjects_per_experiment != nil {
		*m.addmax_subjects_per_experiment += i
	} else {
		m.addmax_subjects_per_experiment = &i
	}
}

// AddedMaxSubjectsPerExperiment returns the value that was added to the "max_subjects_per_experiment" field in this mutation.
func (m *PlanMutation) AddedMaxSubjectsPerExperiment() (r int, exists bool) {
	v := m.addmax_subjects_per_experiment
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxSubjectsPerExperiment resets all changes to the "max_subjects_per_experiment" field.
func (m *PlanMutation) ResetMaxSubjectsPerExperiment() {
	m.max_subjects_per_experiment = nil
	m.addmax_subjects_per_experiment = nil
}

// SetMaxActiveExperiments sets the "max_active_experiments" field.
func (m *PlanMutation) SetMaxActiveExperiments(i int) {
	m.max_active_experiments = &i
	m.addmax_active_experiments = nil
}

// MaxActiveExperiments returns the value of the "max_active_experiments" field in the mutation.
func (m *PlanMutation) MaxActiveExperiments() (r int, exists bool) {
	v := m.max_active_experiments
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxActiveExperiments returns the old "max_active_experiments" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldMaxActiveExperiments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxActiveExperiments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxActiveExperiments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxActiveExperiments: %w", err)
	}
	return oldValue.MaxActiveExperiments, nil
}

// AddMaxActiveExperiments adds i to the "max_active_experiments" field.
func (m *PlanMutation) AddMaxActiveExperiments(i int) {
	if m.addmax_active_experiments != nil {
		*m.addmax_active_experiments += i
	} else {
		m.addmax_active_experiments = &i
	}
}

// AddedMaxActiveExperiments returns the value that was added to the "max_active_experiments" field in this mutation.
func (m *PlanMutation) AddedMaxActiveExperiments() (r int, exists bool) {
	v := m.addmax_active_experiments
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxActiveExperiments resets all changes to the "max_active_experiments" field.
func (m *PlanMutation) ResetMaxActiveExperiments() {
	m.max_active_experiments = nil
	m.addmax_active_experiments = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAccountIDs adds the "accounts" edge to the Account entity by ids.
func (m *PlanMutation) AddAccountIDs(ids ...int) {
	if m.accounts == nil {
		m.accounts = make(map[int]struct{})
	}
	for i := range ids {
		m.accounts[ids[i]] = struct{}{}
	}
}

// ClearAccounts clears the "accounts" edge to the Account entity.
func (m *PlanMutation) ClearAccounts() {
	m.clearedaccounts = true
}

// AccountsCleared reports if the "accounts" edge to the Account entity was cleared.
func (m *PlanMutation) AccountsCleared() bool {
	return m.clearedaccounts
}

// RemoveAccountIDs removes the "accounts" edge to the Account entity by IDs.
func (m *PlanMutation) RemoveAccountIDs(ids ...int) {
	if m.removedaccounts == nil {
		m.removedaccounts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.accounts, ids[i])
		m.removedaccounts[ids[i]] = struct{}{}
	}
}

// RemovedAccounts returns the removed IDs of the "accounts" edge to the Account entity.
func (m *PlanMutation) RemovedAccountsIDs() (ids []int) {
	for id := range m.removedaccounts {
		ids = append(ids, id)
	}
	return
}

// AccountsIDs returns the "accounts" edge IDs in the mutation.
func (m *PlanMutation) AccountsIDs() (ids []int) {
	for id := range m.accounts {
		ids = append(ids, id)
	}
	return
}

// ResetAccounts resets all changes to the "accounts" edge.
func (m *PlanMutation) ResetAccounts() {
	m.accounts = nil
	m.clearedaccounts = false
	m.removedaccounts = nil
}

// Where appends a list predicates to the PlanMutation builder.
func (m *PlanMutation) Where(ps ...predicate.Plan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Plan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Plan).
func (m *PlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, plan.FieldName)
	}
	if m.price_in_cents != nil {
		fields = append(fields, plan.FieldPriceInCents)
	}
	if m.max_subjects_per_experiment != nil {
		fields = append(fields, plan.FieldMaxSubjectsPerExperiment)
	}
	if m.max_active_experiments != nil {
		fields = append(fields, plan.FieldMaxActiveExperiments)
	}
	if m.created_at != nil {
		fields = append(fields, plan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldName:
		return m.Name()
	case plan.FieldPriceInCents:
		return m.PriceInCents()
	case plan.FieldMaxSubjectsPerExperiment:
		return m.MaxSubjectsPerExperiment()
	case plan.FieldMaxActiveExperiments:
		return m.MaxActiveExperiments()
	case plan.FieldCreatedAt:
		return m.CreatedAt()
	case plan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plan.FieldName:
		return m.OldName(ctx)
	case plan.FieldPriceInCents:
		return m.OldPriceInCents(ctx)
	case plan.FieldMaxSubjectsPerExperiment:
		return m.OldMaxSubjectsPerExperiment(ctx)
	case plan.FieldMaxActiveExperiments:
		return m.OldMaxActiveExperiments(ctx)
	case plan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Plan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plan.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case plan.FieldPriceInCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceInCents(v)
		return nil
	case plan.FieldMaxSubjectsPerExperiment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxSubjectsPerExperiment(v)
		return nil
	case plan.FieldMaxActiveExperiments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxActiveExperiments(v)
		return nil
	case plan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanMutation) AddedFields() []string {
	var fields []string
	if m.addprice_in_cents != nil {
		fields = append(fields, plan.FieldPriceInCents)
	}
	if m.addmax_subjects_per_experiment != nil {
		fields = append(fields, plan.FieldMaxSubjectsPerExperiment)
	}
	if m.addmax_active_experiments != nil {
		fields = append(fields, plan.FieldMaxActiveExperiments)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldPriceInCents:
		return m.AddedPriceInCents()
	case plan.FieldMaxSubjectsPerExperiment:
		return m.AddedMaxSubjectsPerExperiment()
	case plan.FieldMaxActiveExperiments:
		return m.AddedMaxActiveExperiments()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plan.FieldPriceInCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceInCents(v)
		return nil
	case plan.FieldMaxSubjectsPerExperiment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxSubjectsPerExperiment(v)
		return nil
	case plan.FieldMaxActiveExperiments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxActiveExperiments(v)
		return nil
	}
	return fmt.Errorf("unknown Plan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Plan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanMutation) ResetField(name string) error {
	switch name {
	case plan.FieldName:
		m.ResetName()
		return nil
	case plan.FieldPriceInCents:
		m.ResetPriceInCents()
		return nil
	case plan.FieldMaxSubjectsPerExperiment:
		m.ResetMaxSubjectsPerExperiment()
		return nil
	case plan.FieldMaxActiveExperiments:
		m.ResetMaxActiveExperiments()
		return nil
	case plan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.accounts != nil {
		edges = append(edges, plan.EdgeAccounts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgeAccounts:
		ids := make([]ent.Value, 0, len(m.accounts))
		for id := range m.accounts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedaccounts != nil {
		edges = append(edges, plan.EdgeAccounts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgeAccounts:
		ids := make([]ent.Value, 0, len(m.removedaccounts))
		for id := range m.removedaccounts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccounts {
		edges = append(edges, plan.EdgeAccounts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanMutation) EdgeCleared(name string) bool {
	switch name {
	case plan.EdgeAccounts:
		return m.clearedaccounts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Plan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanMutation) ResetEdge(name string) error {
	switch name {
	case plan.EdgeAccounts:
		m.ResetAccounts()
		return nil
	}
	return fmt.Errorf("unknown Plan edge %s", name)
}

// SubjectMutation represents an operation that mutates the Subject nodes in the graph.
type SubjectMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	name                  *string
	scope                 *domain.Scope
	last_exposure_id      *int
	addlast_exposure_id   *int
	last_conversion_id    *int
	addlast_conversion_id *int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	account               *int
	clearedaccount        bool
	exposures             map[int]struct{}
	removedexposures      map[int]struct{}
	clearedexposures      bool
	done                  bool
	oldValue              func(context.Context) (*Subject, error)
	predicates            []predicate.Subject
}

var _ ent.Mutation = (*SubjectMutation)(nil)

// subjectOption allows management of the mutation configuration using functional options.
type subjectOption func(*SubjectMutation)

// newSubjectMutation creates new mutation for the Subject entity.
func newSubjectMutation(c config, op Op, opts ...subjectOption) *SubjectMutation {
	m := &SubjectMutation{
		config:        c,
		op:            op,
		typ:           TypeSubject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectID sets the ID field of the mutation.
func withSubjectID(id int) subjectOption {
	return func(m *SubjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Subject
		)
		m.oldValue = func(ctx context.Context) (*Subject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubject sets the old Subject of the mutation.
func withSubject(node *Subject) subjectOption {
	return func(m *SubjectMutation) {
		m.oldValue = func(context.Context) (*Subject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *SubjectMutation) SetAccountID(i int) {
	m.account = &i
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *SubjectMutation) AccountID() (r int, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldAccountID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *SubjectMutation) ResetAccountID() {
	m.account = nil
}

// SetName sets the "name" field.
func (m *SubjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubjectMutation) ResetName() {
	m.name = nil
}

// SetScope sets the "scope" field.
func (m *SubjectMutation) SetScope(d domain.Scope) {
	m.scope = &d
}

// Scope returns the value of the "scope" field in the mutation.
func (m *SubjectMutation) Scope() (r domain.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldScope(ctx context.Context) (v domain.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *SubjectMutation) ResetScope() {
	m.scope = nil
}

// SetLastExposureID sets the "last_exposure_id" field.
func (m *SubjectMutation) SetLastExposureID(i int) {
	m.last_exposure_id = &i
	m.addlast_exposure_id = nil
}

// LastExposureID returns the value of the "last_exposure_id" field in the mutation.
func (m *SubjectMutation) LastExposureID() (r int, exists bool) {
	v := m.last_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExposureID returns the old "last_exposure_id" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldLastExposureID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExposureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExposureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExposureID: %w", err)
	}
	return oldValue.LastExposureID, nil
}

// AddLastExposureID adds i to the "last_exposure_id" field.
func (m *SubjectMutation) AddLastExposureID(i int) {
	if m.addlast_exposure_id != nil {
		*m.addlast_exposure_id += i
	} else {
		m.addlast_exposure_id = &i
	}
}

// AddedLastExposureID returns the value that was added to the "last_exposure_id" field in this mutation.
func (m *SubjectMutation) AddedLastExposureID() (r int, exists bool) {
	v := m.addlast_exposure_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastExposureID clears the value of the "last_exposure_id" field.
func (m *SubjectMutation) ClearLastExposureID() {
	m.last_exposure_id = nil
	m.addlast_exposure_id = nil
	m.clearedFields[subject.FieldLastExposureID] = struct{}{}
}

// LastExposureIDCleared returns if the "last_exposure_id" field was cleared in this mutation.
func (m *SubjectMutation) LastExposureIDCleared() bool {
	_, ok := m.clearedFields[subject.FieldLastExposureID]
	return ok
}

// ResetLastExposureID resets all changes to the "last_exposure_id" field.
func (m *SubjectMutation) ResetLastExposureID() {
	m.last_exposure_id = nil
	m.addlast_exposure_id = nil
	delete(m.clearedFields, subject.FieldLastExposureID)
}

// SetLastConversionID sets the "last_conversion_id" field.
func (m *SubjectMutation) SetLastConversionID(i int) {
	m.last_conversion_id = &i
	m.addlast_conversion_id = nil
}

// LastConversionID returns the value of the "last_conversion_id" field in the mutation.
func (m *SubjectMutation) LastConversionID() (r int, exists bool) {
	v := m.last_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastConversionID returns the old "last_conversion_id" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldLastConversionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastConversionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastConversionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastConversionID: %w", err)
	}
	return oldValue.LastConversionID, nil
}

// AddLastConversionID adds i to the "last_conversion_id" field.
func (m *SubjectMutation) AddLastConversionID(i int) {
	if m.addlast_conversion_id != nil {
		*m.addlast_conversion_id += i
	} else {
		m.addlast_conversion_id = &i
	}
}

// AddedLastConversionID returns the value that was added to the "last_conversion_id" field in this mutation.
func (m *SubjectMutation) AddedLastConversionID() (r int, exists bool) {
	v := m.addlast_conversion_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastConversionID clears the value of the "last_conversion_id" field.
func (m *SubjectMutation) ClearLastConversionID() {
	m.last_conversion_id = nil
	m.addlast_conversion_id = nil
	m.clearedFields[subject.FieldLastConversionID] = struct{}{}
}

// LastConversionIDCleared returns if the "last_conversion_id" field was cleared in this mutation.
func (m *SubjectMutation) LastConversionIDCleared() bool {
	_, ok := m.clearedFields[subject.FieldLastConversionID]
	return ok
}

// ResetLastConversionID resets all changes to the "last_conversion_id" field.
func (m *SubjectMutation) ResetLastConversionID() {
	m.last_conversion_id = nil
	m.addlast_conversion_id = nil
	delete(m.clearedFields, subject.FieldLastConversionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *SubjectMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[subject.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *SubjectMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *SubjectMutation) AccountIDs() (ids []int) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *SubjectMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// AddExposureIDs adds the "exposures" edge to the Exposure entity by ids.
func (m *SubjectMutation) AddExposureIDs(ids ...int) {
	if m.exposures == nil {
		m.exposures = make(map[int]struct{})
	}
	for i := range ids {
		m.exposures[ids[i]] = struct{}{}
	}
}

// ClearExposures clears the "exposures" edge to the Exposure entity.
func (m *SubjectMutation) ClearExposures() {
	m.clearedexposures = true
}

// ExposuresCleared reports if the "exposures" edge to the Exposure entity was cleared.
func (m *SubjectMutation) ExposuresCleared() bool {
	return m.clearedexposures
}

// RemoveExposureIDs removes the "exposures" edge to the Exposure entity by IDs.
func (m *SubjectMutation) RemoveExposureIDs(ids ...int) {
	if m.removedexposures == nil {
		m.removedexposures = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.exposures, ids[i])
		m.removedexposures[ids[i]] = struct{}{}
	}
}

// RemovedExposures returns the removed IDs of the "exposures" edge to the Exposure entity.
func (m *SubjectMutation) RemovedExposuresIDs() (ids []int) {
	for id := range m.removedexposures {
		ids = append(ids, id)
	}
	return
}

// ExposuresIDs returns the "exposures" edge IDs in the mutation.
func (m *SubjectMutation) ExposuresIDs() (ids []int) {
	for id := range m.exposures {
		ids = append(ids, id)
	}
	return
}

// ResetExposures resets all changes to the "exposures" edge.
func (m *SubjectMutation) ResetExposures() {
	m.exposures = nil
	m.clearedexposures = false
	m.removedexposures = nil
}

// Where appends a list predicates to the SubjectMutation builder.
func (m *SubjectMutation) Where(ps ...predicate.Subject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subject).
func (m *SubjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.account != nil {
		fields = append(fields, subject.FieldAccountID)
	}
	if m.name != nil {
		fields = append(fields, subject.FieldName)
	}
	if m.scope != nil {
		fields = append(fields, subject.FieldScope)
	}
	if m.last_exposure_id != nil {
		fields = append(fields, subject.FieldLastExposureID)
	}
	if m.last_conversion_id != nil {
		fields = append(fields, subject.FieldLastConversionID)
	}
	if m.created_at != nil {
		fields = append(fields, subject.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subject.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldAccountID:
		return m.AccountID()
	case subject.FieldName:
		return m.Name()
	case subject.FieldScope:
		return m.Scope()
	case subject.FieldLastExposureID:
		return m.LastExposureID()
	case subject.FieldLastConversionID:
		return m.LastConversionID()
	case subject.FieldCreatedAt:
		return m.CreatedAt()
	case subject.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subject.FieldAccountID:
		return m.OldAccountID(ctx)
	case subject.FieldName:
		return m.OldName(ctx)
	case subject.FieldScope:
		return m.OldScope(ctx)
	case subject.FieldLastExposureID:
		return m.OldLastExposureID(ctx)
	case subject.FieldLastConversionID:
		return m.OldLastConversionID(ctx)
	case subject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subject.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subject.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case subject.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subject.FieldScope:
		v, ok := value.(domain.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case subject.FieldLastExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExposureID(v)
		return nil
	case subject.FieldLastConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastConversionID(v)
		return nil
	case subject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subject.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectMutation) AddedFields() []string {
	var fields []string
	if m.addlast_exposure_id != nil {
		fields = append(fields, subject.FieldLastExposureID)
	}
	if m.addlast_conversion_id != nil {
		fields = append(fields, subject.FieldLastConversionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldLastExposureID:
		return m.AddedLastExposureID()
	case subject.FieldLastConversionID:
		return m.AddedLastConversionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subject.FieldLastExposureID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastExposureID(v)
		return nil
	case subject.FieldLastConversionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastConversionID(v)
		return nil
	}
	return fmt.Errorf("unknown Subject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subject.FieldLastExposureID) {
		fields = append(fields, subject.FieldLastExposureID)
	}
	if m.FieldCleared(subject.FieldLastConversionID) {
		fields = append(fields, subject.FieldLastConversionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectMutation) ClearField(name string) error {
	switch name {
	case subject.FieldLastExposureID:
		m.ClearLastExposureID()
		return nil
	case subject.FieldLastConversionID:
		m.ClearLastConversionID()
		return nil
	}
	return fmt.Errorf("unknown Subject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectMutation) ResetField(name string) error {
	switch name {
	case subject.FieldAccountID:
		m.ResetAccountID()
		return nil
	case subject.FieldName:
		m.ResetName()
		return nil
	case subject.FieldScope:
		m.ResetScope()
		return nil
	case subject.FieldLastExposureID:
		m.ResetLastExposureID()
		return nil
	case subject.FieldLastConversionID:
		m.ResetLastConversionID()
		return nil
	case subject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subject.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.account != nil {
		edges = append(edges, subject.EdgeAccount)
	}
	if m.exposures != nil {
		edges = append(edges, subject.EdgeExposures)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case subject.EdgeExposures:
		ids := make([]ent.Value, 0, len(m.exposures))
		for id := range m.exposures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexposures != nil {
		edges = append(edges, subject.EdgeExposures)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeExposures:
		ids := make([]ent.Value, 0, len(m.removedexposures))
		for id := range m.removedexposures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaccount {
		edges = append(edges, subject.EdgeAccount)
	}
	if m.clearedexposures {
		edges = append(edges, subject.EdgeExposures)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectMutation) EdgeCleared(name string) bool {
	switch name {
	case subject.EdgeAccount:
		return m.clearedaccount
	case subject.EdgeExposures:
		return m.clearedexposures
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectMutation) ClearEdge(name string) error {
	switch name {
	case subject.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown Subject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectMutation) ResetEdge(name string) error {
	switch name {
	case subject.EdgeAccount:
		m.ResetAccount()
		return nil
	case subject.EdgeExposures:
		m.ResetExposures()
		return nil
	}
	return fmt.Errorf("unknown Subject edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	email              *string
	password_hash      *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	account            *int
	clearedaccount     bool
	experiments        map[int]struct{}
	removedexperiments map[int]struct{}
	clearedexperiments bool
	done               bool
	oldValue           func(context.Context) (*User, error)
	predicates         []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *UserMutation) SetAccountID(i int) {
	m.account = &i
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *UserMutation) AccountID() (r int, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAccountID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *UserMutation) ResetAccountID() {
	m.account = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *UserMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[user.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *UserMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *UserMutation) AccountIDs() (ids []int) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *UserMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// AddExperimentIDs adds the "experiments" edge to the Experiment entity by ids.
func (m *UserMutation) AddExperimentIDs(ids ...int) {
	if m.experiments == nil {
		m.experiments = make(map[int]struct{})
	}
	for i := range ids {
		m.experiments[ids[i]] = struct{}{}
	}
}

// ClearExperiments clears the "experiments" edge to the Experiment entity.
func (m *UserMutation) ClearExperiments() {
	m.clearedexperiments = true
}

// ExperimentsCleared reports if the "experiments" edge to the Experiment entity was cleared.
func (m *UserMutation) ExperimentsCleared() bool {
	return m.clearedexperiments
}

// RemoveExperimentIDs removes the "experiments" edge to the Experiment entity by IDs.
func (m *UserMutation) RemoveExperimentIDs(ids ...int) {
	if m.removedexperiments == nil {
		m.removedexperiments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.experiments, ids[i])
		m.removedexperiments[ids[i]] = struct{}{}
	}
}

// RemovedExperiments returns the removed IDs of the "experiments" edge to the Experiment entity.
func (m *UserMutation) RemovedExperimentsIDs() (ids []int) {
	for id := range m.removedexperiments {
		ids = append(ids, id)
	}
	return
}

// ExperimentsIDs returns the "experiments" edge IDs in the mutation.
func (m *UserMutation) ExperimentsIDs() (ids []int) {
	for id := range m.experiments {
		ids = append(ids, id)
	}
	return
}

// ResetExperiments resets all changes to the "experiments" edge.
func (m *UserMutation) ResetExperiments() {
	m.experiments = nil
	m.clearedexperiments = false
	m.removedexperiments = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.account != nil {
		fields = append(fields, user.FieldAccountID)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldAccountID:
		return m.AccountID()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldAccountID:
		return m.OldAccountID(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldAccountID:
		m.ResetAccountID()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.account != nil {
		edges = append(edges, user.EdgeAccount)
	}
	if m.experiments != nil {
		edges = append(edges, user.EdgeExperiments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeExperiments:
		ids := make([]ent.Value, 0, len(m.experiments))
		for id := range m.experiments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexperiments != nil {
		edges = append(edges, user.EdgeExperiments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeExperiments:
		ids := make([]ent.Value, 0, len(m.removedexperiments))
		for id := range m.removedexperiments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaccount {
		edges = append(edges, user.EdgeAccount)
	}
	if m.clearedexperiments {
		edges = append(edges, user.EdgeExperiments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAccount:
		return m.clearedaccount
	case user.EdgeExperiments:
		return m.clearedexperiments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAccount:
		m.ResetAccount()
		return nil
	case user.EdgeExperiments:
		m.ResetExperiments()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
