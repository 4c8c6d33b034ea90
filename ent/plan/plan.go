// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plan type in the database.
	Label = "plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPriceInCents holds the string denoting the price_in_cents field in the database.
	FieldPriceInCents = "price_in_cents"
	// FieldMaxSubjectsPerExperiment holds the string denoting the max_subjects_per_experiment field in the database.
	FieldMaxSubjectsPerExperiment = "max_subjects_per_experiment"
	// FieldMaxActiveExperiments holds the string denoting the max_active_experiments field in the database.
	FieldMaxActiveExperiments = "max_active_experiments"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAccounts holds the string denoting the accounts edge name in mutations.
	EdgeAccounts = "accounts"
	// Table holds the table name of the plan in the database.
	Table = "plans"
	// AccountsTable is the table that holds the accounts relation/edge.
	AccountsTable = "accounts"
	// AccountsInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountsInverseTable = "accounts"
	// AccountsColumn is the table column denoting the accounts relation/edge.
	AccountsColumn = "plan_id"
)

// Columns holds all SQL columns for plan fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPriceInCents,
	FieldMaxSubjectsPerExperiment,
	FieldMaxActiveExperiments,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PriceInCentsValidator is a validator for the "price_in_cents" field. It is called by the builders before save.
	PriceInCentsValidator func(int) error
	// MaxSubjectsPerExperimentValidator is a validator for the "max_subjects_per_experiment" field. It is called by the builders before save.
	MaxSubjectsPerExperimentValidator func(int) error
	// MaxActiveExperimentsValidator is a validator for the "max_active_experiments" field. It is called by the builders before save.
	MaxActiveExperimentsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Plan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPriceInCents orders the results by the price_in_cents field.
func ByPriceInCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceInCents, opts...).ToFunc()
}

// ByMaxSubjectsPerExperiment orders the results by the max_subjects_per_experiment field.
func ByMaxSubjectsPerExperiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSubjectsPerExperiment, opts...).ToFunc()
}

// ByMaxActiveExperiments orders the results by the max_active_experiments field.
func ByMaxActiveExperiments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxActiveExperiments, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAccountsCount orders the results by accounts count.
func ByAccountsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAccountsStep(), opts...)
	}
}

// ByAccounts orders the results by accounts terms.
func ByAccounts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAccountsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AccountsTable, AccountsColumn),
	)
}
