// Code generated by ent, DO NOT EDIT.

package cohort

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cohort type in the database.
	Label = "cohort"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
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
	// EdgeExperiment holds the string denoting the experiment edge name in mutations.
	EdgeExperiment = "experiment"
	// EdgeExposures holds the string denoting the exposures edge name in mutations.
	EdgeExposures = "exposures"
	// Table holds the table name of the cohort in the database.
	Table = "cohorts"
	// ExperimentTable is the table that holds the experiment relation/edge.
	ExperimentTable = "cohorts"
	// ExperimentInverseTable is the table name for the Experiment entity.
	// It exists in this package in order to avoid circular dependency with the "experiment" package.
	ExperimentInverseTable = "experiments"
	// ExperimentColumn is the table column denoting the experiment relation/edge.
	ExperimentColumn = "experiment_id"
	// ExposuresTable is the table that holds the exposures relation/edge.
	ExposuresTable = "exposures"
	// ExposuresInverseTable is the table name for the Exposure entity.
	// It exists in this package in order to avoid circular dependency with the "exposure" package.
	ExposuresInverseTable = "exposures"
	// ExposuresColumn is the table column denoting the exposures relation/edge.
	ExposuresColumn = "cohort_id"
)

// Columns holds all SQL columns for cohort fields.
var Columns = []string{
	FieldID,
	FieldExperimentID,
	FieldName,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Cohort queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
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

// ByExperimentField orders the results by experiment field.
func ByExperimentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExperimentStep(), sql.OrderByField(field, opts...))
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
func newExperimentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExperimentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExperimentTable, ExperimentColumn),
	)
}
func newExposuresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExposuresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExposuresTable, ExposuresColumn),
	)
}
