// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// Exposure is the model entity for the Exposure schema.
type Exposure struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Exposed subject
	SubjectID int `json:"subject_id,omitempty"`
	// Experiment entered
	ExperimentID int `json:"experiment_id,omitempty"`
	// Cohort assigned on first observation; repeats never move it
	CohortID int `json:"cohort_id,omitempty"`
	// Isolation partition
	Scope domain.Scope `json:"scope,omitempty"`
	// First time the subject was seen in this experiment
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Advanced on every repeat observation
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExposureQuery when eager-loading is set.
	Edges        ExposureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExposureEdges holds the relations/edges for other nodes in the graph.
type ExposureEdges struct {
	// Exposed subject
	Subject *Subject `json:"subject,omitempty"`
	// Experiment entered
	Experiment *Experiment `json:"experiment,omitempty"`
	// Assigned cohort
	Cohort *Cohort `json:"cohort,omitempty"`
	// Conversion recorded against this exposure, if any
	Conversions []*Conversion `json:"conversions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExposureEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// ExperimentOrErr returns the Experiment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExposureEdges) ExperimentOrErr() (*Experiment, error) {
	if e.Experiment != nil {
		return e.Experiment, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: experiment.Label}
	}
	return nil, &NotLoadedError{edge: "experiment"}
}

// CohortOrErr returns the Cohort value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExposureEdges) CohortOrErr() (*Cohort, error) {
	if e.Cohort != nil {
		return e.Cohort, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: cohort.Label}
	}
	return nil, &NotLoadedError{edge: "cohort"}
}

// ConversionsOrErr returns the Conversions value or an error if the edge
// was not loaded in eager-loading.
func (e ExposureEdges) ConversionsOrErr() ([]*Conversion, error) {
	if e.loadedTypes[3] {
		return e.Conversions, nil
	}
	return nil, &NotLoadedError{edge: "conversions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Exposure) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exposure.FieldID, exposure.FieldSubjectID, exposure.FieldExperimentID, exposure.FieldCohortID:
			values[i] = new(sql.NullInt64)
		case exposure.FieldScope:
			values[i] = new(sql.NullString)
		case exposure.FieldCreatedAt, exposure.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Exposure fields.
func (_m *Exposure) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exposure.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exposure.FieldSubjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = int(value.Int64)
			}
		case exposure.FieldExperimentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = int(value.Int64)
			}
		case exposure.FieldCohortID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cohort_id", values[i])
			} else if value.Valid {
				_m.CohortID = int(value.Int64)
			}
		case exposure.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = domain.Scope(value.String)
			}
		case exposure.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case exposure.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Exposure.
// This includes values selected through modifiers, order, etc.
func (_m *Exposure) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the Exposure entity.
func (_m *Exposure) QuerySubject() *SubjectQuery {
	return NewExposureClient(_m.config).QuerySubject(_m)
}

// QueryExperiment queries the "experiment" edge of the Exposure entity.
func (_m *Exposure) QueryExperiment() *ExperimentQuery {
	return NewExposureClient(_m.config).QueryExperiment(_m)
}

// QueryCohort queries the "cohort" edge of the Exposure entity.
func (_m *Exposure) QueryCohort() *CohortQuery {
	return NewExposureClient(_m.config).QueryCohort(_m)
}

// QueryConversions queries the "conversions" edge of the Exposure entity.
func (_m *Exposure) QueryConversions() *ConversionQuery {
	return NewExposureClient(_m.config).QueryConversions(_m)
}

// Update returns a builder for updating this Exposure.
// Note that you need to call Exposure.Unwrap() before calling this method if this Exposure
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Exposure) Update() *ExposureUpdateOne {
	return NewExposureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Exposure entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Exposure) Unwrap() *Exposure {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Exposure is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Exposure) String() string {
	var builder strings.Builder
	builder.WriteString("Exposure(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteString(", ")
	builder.WriteString("experiment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperimentID))
	builder.WriteString(", ")
	builder.WriteString("cohort_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CohortID))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Exposures is a parsable slice of Exposure.
type Exposures []*Exposure
