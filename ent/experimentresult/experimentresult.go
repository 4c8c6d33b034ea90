// Code generated by ent, DO NOT EDIT.

package experimentresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

const (
	// Label holds the string label denoting the experimentresult type in the database.
	Label = "experiment_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldRanAt holds the string denoting the ran_at field in the database.
	FieldRanAt = "ran_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the experimentresult in the database.
	Table = "experiment_results"
)

// Columns holds all SQL columns for experimentresult fields.
var Columns = []string{
	FieldID,
	FieldExperimentID,
	FieldScope,
	FieldVersion,
	FieldFields,
	FieldRanAt,
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
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(string) error
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
		return fmt.Errorf("experimentresult: invalid enum value for scope field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExperimentResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByRanAt orders the results by the ran_at field.
func ByRanAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRanAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
