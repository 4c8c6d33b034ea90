// Code generated by ent, DO NOT EDIT.

package conversion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

const (
	// Label holds the string label denoting the conversion type in the database.
	Label = "conversion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExposureID holds the string denoting the exposure_id field in the database.
	FieldExposureID = "exposure_id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// EdgeExposure holds the string denoting the exposure edge name in mutations.
	EdgeExposure = "exposure"
	// Table holds the table name of the conversion in the database.
	Table = "conversions"
	// ExposureTable is the table that holds the exposure relation/edge.
	ExposureTable = "conversions"
	// ExposureInverseTable is the table name for the Exposure entity.
	// It exists in this package in order to avoid circular dependency with the "exposure" package.
	ExposureInverseTable = "exposures"
	// ExposureColumn is the table column denoting the exposure relation/edge.
	ExposureColumn = "exposure_id"
)

// Columns holds all SQL columns for conversion fields.
var Columns = []string{
	FieldID,
	FieldExposureID,
	FieldScope,
	FieldValue,
	FieldCreatedAt,
	FieldLastSeenAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
)

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s domain.Scope) error {
	switch s.String() {
	case "production", "staging":
		return nil
	default:
		return fmt.Errorf("conversion: invalid enum value for scope field: %q", s)
	}
}

// OrderOption defines the ordering options for the Conversion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExposureID orders the results by the exposure_id field.
func ByExposureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExposureID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByExposureField orders the results by exposure field.
func ByExposureField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExposureStep(), sql.OrderByField(field, opts...))
	}
}
func newExposureStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExposureInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExposureTable, ExposureColumn),
	)
}
