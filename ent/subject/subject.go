// Code generated by ent, DO NOT EDIT.

package subject

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

const (
	// Label holds the string label denoting the subject type in the database.
	Label = "subject"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldLastExposureID holds the string denoting the last_exposure_id field in the database.
	FieldLastExposureID = "last_exposure_id"
	// FieldLastConversionID holds the string denoting the last_conversion_id field in the database.
	FieldLastConversionID = "last_conversion_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// EdgeExposures holds the string denoting the exposures edge name in mutations.
	EdgeExposures = "exposures"
	// Table holds the table name of the subject in the database.
	Table = "subjects"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "subjects"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
	// ExposuresTable is the table that holds the exposures relation/edge.
	ExposuresTable = "exposures"
	// ExposuresInverseTable is the table name for the Exposure entity.
	// It exists in this package in order to avoid circular dependency with the "exposure" package.
	ExposuresInverseTable = "exposures"
	// ExposuresColumn is the table column denoting the exposures relation/edge.
	ExposuresColumn = "subject_id"
)

// Columns holds all SQL columns for subject fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldName,
	FieldScope,
	FieldLastExposureID,
	FieldLastConversionID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s domain.Scope) error {
	switch s.String() {
	case "production", "staging":
		return nil
	default:
		return fmt.Errorf("subject: invalid enum value for scope field: %q", s)
	}
}

// OrderOption defines the ordering options for the Subject queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByLastExposureID orders the results by the last_exposure_id field.
func ByLastExposureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExposureID, opts...).ToFunc()
}

// ByLastConversionID orders the results by the last_conversion_id field.
func ByLastConversionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastConversionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}

// ByExposuresCount orders the results by exposures count.
func ByExposuresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExposuresStep(), opts...)
	}
}

// ByExposures orders the results by exposures terms.
func ByExposures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExposuresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
func newExposuresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExposuresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExposuresTable, ExposuresColumn),
	)
}
