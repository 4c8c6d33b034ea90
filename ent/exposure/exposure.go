// Code generated by ent, DO NOT EDIT.

package exposure

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

const (
	// Label holds the string label denoting the exposure type in the database.
	Label = "exposure"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldCohortID holds the string denoting the cohort_id field in the database.
	FieldCohortID = "cohort_id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// EdgeExperiment holds the string denoting the experiment edge name in mutations.
	EdgeExperiment = "experiment"
	// EdgeCohort holds the string denoting the cohort edge name in mutations.
	EdgeCohort = "cohort"
	// EdgeConversions holds the string denoting the conversions edge name in mutations.
	EdgeConversions = "conversions"
	// Table holds the table name of the exposure in the database.
	Table = "exposures"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "exposures"
	// SubjectInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectInverseTable = "subjects"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "subject_id"
	// ExperimentTable is the table that holds the experiment relation/edge.
	ExperimentTable = "exposures"
	// ExperimentInverseTable is the table name for the Experiment entity.
	// It exists in this package in order to avoid circular dependency with the "experiment" package.
	ExperimentInverseTable = "experiments"
	// ExperimentColumn is the table column denoting the experiment relation/edge.
	ExperimentColumn = "experiment_id"
	// CohortTable is the table that holds the cohort relation/edge.
	CohortTable = "exposures"
	// CohortInverseTable is the table name for the Cohort entity.
	// It exists in this package in order to avoid circular dependency with the "cohort" package.
	CohortInverseTable = "cohorts"
	// CohortColumn is the table column denoting the cohort relation/edge.
	CohortColumn = "cohort_id"
	// ConversionsTable is the table that holds the conversions relation/edge.
	ConversionsTable = "conversions"
	// ConversionsInverseTable is the table name for the Conversion entity.
	// It exists in this package in order to avoid circular dependency with the "conversion" package.
	ConversionsInverseTable = "conversions"
	// ConversionsColumn is the table column denoting the conversions relation/edge.
	ConversionsColumn = "exposure_id"
)

// Columns holds all SQL columns for exposure fields.
var Columns = []string{
	FieldID,
	FieldSubjectID,
	FieldExperimentID,
	FieldCohortID,
	FieldScope,
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
		return fmt.Errorf("exposure: invalid enum value for scope field: %q", s)
	}
}

// OrderOption defines the ordering options for the Exposure queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByCohortID orders the results by the cohort_id field.
func ByCohortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCohortID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// BySubjectField orders the results by subject field.
func BySubjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByExperimentField orders the results by experiment field.
func ByExperimentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExperimentStep(), sql.OrderByField(field, opts...))
	}
}

// ByCohortField orders the results by cohort field.
func ByCohortField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCohortStep(), sql.OrderByField(field, opts...))
	}
}

// ByConversionsCount orders the results by conversions count.
func ByConversionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversionsStep(), opts...)
	}
}

// ByConversions orders the results by conversions terms.
func ByConversions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
	)
}
func newExperimentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExperimentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExperimentTable, ExperimentColumn),
	)
}
func newCohortStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CohortInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CohortTable, CohortColumn),
	)
}
func newConversionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversionsTable, ConversionsColumn),
	)
}
