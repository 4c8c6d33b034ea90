// Code generated by ent, DO NOT EDIT.

package exposurerollup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

const (
	// Label holds the string label denoting the exposurerollup type in the database.
	Label = "exposure_rollup"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldExperimentName holds the string denoting the experiment_name field in the database.
	FieldExperimentName = "experiment_name"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldExposures holds the string denoting the exposures field in the database.
	FieldExposures = "exposures"
	// FieldConversions holds the string denoting the conversions field in the database.
	FieldConversions = "conversions"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the exposurerollup in the database.
	Table = "exposure_rollups"
)

// Columns holds all SQL columns for exposurerollup fields.
var Columns = []string{
	FieldID,
	FieldDay,
	FieldUserID,
	FieldExperimentID,
	FieldExperimentName,
	FieldScope,
	FieldExposures,
	FieldConversions,
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
	// ExperimentNameValidator is a validator for the "experiment_name" field. It is called by the builders before save.
	ExperimentNameValidator func(string) error
	// ExposuresValidator is a validator for the "exposures" field. It is called by the builders before save.
	ExposuresValidator func(int) error
	// ConversionsValidator is a validator for the "conversions" field. It is called by the builders before save.
	ConversionsValidator func(int) error
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
		return fmt.Errorf("exposurerollup: invalid enum value for scope field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExposureRollup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByExperimentName orders the results by the experiment_name field.
func ByExperimentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentName, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByExposures orders the results by the exposures field.
func ByExposures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExposures, opts...).ToFunc()
}

// ByConversions orders the results by the conversions field.
func ByConversions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversions, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
