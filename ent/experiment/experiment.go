// Code generated by ent, DO NOT EDIT.

package experiment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the experiment type in the database.
	Label = "experiment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldLastActivatedAt holds the string denoting the last_activated_at field in the database.
	FieldLastActivatedAt = "last_activated_at"
	// FieldSubjectsCounterProduction holds the string denoting the subjects_counter_production field in the database.
	FieldSubjectsCounterProduction = "subjects_counter_production"
	// FieldSubjectsCounterStaging holds the string denoting the subjects_counter_staging field in the database.
	FieldSubjectsCounterStaging = "subjects_counter_staging"
	// FieldLastProductionExposureID holds the string denoting the last_production_exposure_id field in the database.
	FieldLastProductionExposureID = "last_production_exposure_id"
	// FieldLastStagingExposureID holds the string denoting the last_staging_exposure_id field in the database.
	FieldLastStagingExposureID = "last_staging_exposure_id"
	// FieldLastProductionConversionID holds the string denoting the last_production_conversion_id field in the database.
	FieldLastProductionConversionID = "last_production_conversion_id"
	// FieldLastStagingConversionID holds the string denoting the last_staging_conversion_id field in the database.
	FieldLastStagingConversionID = "last_staging_conversion_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeCohorts holds the string denoting the cohorts edge name in mutations.
	EdgeCohorts = "cohorts"
	// EdgeExposures holds the string denoting the exposures edge name in mutations.
	EdgeExposures = "exposures"
	// Table holds the table name of the experiment in the database.
	Table = "experiments"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "experiments"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// CohortsTable is the table that holds the cohorts relation/edge.
	CohortsTable = "cohorts"
	// CohortsInverseTable is the table name for the Cohort entity.
	// It exists in this package in order to avoid circular dependency with the "cohort" package.
	CohortsInverseTable = "cohorts"
	// CohortsColumn is the table column denoting the cohorts relation/edge.
	CohortsColumn = "experiment_id"
	// ExposuresTable is the table that holds the exposures relation/edge.
	ExposuresTable = "exposures"
	// ExposuresInverseTable is the table name for the Exposure entity.
	// It exists in this package in order to avoid circular dependency with the "exposure" package.
	ExposuresInverseTable = "exposures"
	// ExposuresColumn is the table column denoting the exposures relation/edge.
	ExposuresColumn = "experiment_id"
)

// Columns holds all SQL columns for experiment fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldActive,
	FieldLastActivatedAt,
	FieldSubjectsCounterProduction,
	FieldSubjectsCounterStaging,
	FieldLastProductionExposureID,
	FieldLastStagingExposureID,
	FieldLastProductionConversionID,
	FieldLastStagingConversionID,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultLastActivatedAt holds the default value on creation for the "last_activated_at" field.
	DefaultLastActivatedAt func() time.Time
	// DefaultSubjectsCounterProduction holds the default value on creation for the "subjects_counter_production" field.
	DefaultSubjectsCounterProduction int
	// DefaultSubjectsCounterStaging holds the default value on creation for the "subjects_counter_staging" field.
	DefaultSubjectsCounterStaging int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Experiment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByLastActivatedAt orders the results by the last_activated_at field.
func ByLastActivatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivatedAt, opts...).ToFunc()
}

// BySubjectsCounterProduction orders the results by the subjects_counter_production field.
func BySubjectsCounterProduction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectsCounterProduction, opts...).ToFunc()
}

// BySubjectsCounterStaging orders the results by the subjects_counter_staging field.
func BySubjectsCounterStaging(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectsCounterStaging, opts...).ToFunc()
}

// ByLastProductionExposureID orders the results by the last_production_exposure_id field.
func ByLastProductionExposureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProductionExposureID, opts...).ToFunc()
}

// ByLastStagingExposureID orders the results by the last_staging_exposure_id field.
func ByLastStagingExposureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStagingExposureID, opts...).ToFunc()
}

// ByLastProductionConversionID orders the results by the last_production_conversion_id field.
func ByLastProductionConversionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProductionConversionID, opts...).ToFunc()
}

// ByLastStagingConversionID orders the results by the last_staging_conversion_id field.
func ByLastStagingConversionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStagingConversionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByCohortsCount orders the results by cohorts count.
func ByCohortsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCohortsStep(), opts...)
	}
}

// ByCohorts orders the results by cohorts terms.
func ByCohorts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCohortsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newCohortsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CohortsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CohortsTable, CohortsColumn),
	)
}
func newExposuresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExposuresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExposuresTable, ExposuresColumn),
	)
}
