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
)

// Cohort is the model entity for the Cohort schema.
type Cohort struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Experiment this cohort belongs to
	ExperimentID int `json:"experiment_id,omitempty"`
	// Cohort name, unique per experiment (e.g., control, experimental)
	Name string `json:"name,omitempty"`
	// Most recent production exposure
	LastProductionExposureID *int `json:"last_production_exposure_id,omitempty"`
	// Most recent staging exposure
	LastStagingExposureID *int `json:"last_staging_exposure_id,omitempty"`
	// Most recent production conversion
	LastProductionConversionID *int `json:"last_production_conversion_id,omitempty"`
	// Most recent staging conversion
	LastStagingConversionID *int `json:"last_staging_conversion_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CohortQuery when eager-loading is set.
	Edges        CohortEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CohortEdges holds the relations/edges for other nodes in the graph.
type CohortEdges struct {
	// Owning experiment
	Experiment *Experiment `json:"experiment,omitempty"`
	// Exposures assigned to this cohort
	Exposures []*Exposure `json:"exposures,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExperimentOrErr returns the Experiment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CohortEdges) ExperimentOrErr() (*Experiment, error) {
	if e.Experiment != nil {
		return e.Experiment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: experiment.Label}
	}
	return nil, &NotLoadedError{edge: "experiment"}
}

// ExposuresOrErr returns the Exposures value or an error if the edge
// was not loaded in eager-loading.
func (e CohortEdges) ExposuresOrErr() ([]*Exposure, error) {
	if e.loadedTypes[1] {
		return e.Exposures, nil
	}
	return nil, &NotLoadedError{edge: "exposures"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cohort) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cohort.FieldID, cohort.FieldExperimentID, cohort.FieldLastProductionExposureID, cohort.FieldLastStagingExposureID, cohort.FieldLastProductionConversionID, cohort.FieldLastStagingConversionID:
			values[i] = new(sql.NullInt64)
		case cohort.FieldName:
			values[i] = new(sql.NullString)
		case cohort.FieldCreatedAt, cohort.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cohort fields.
func (_m *Cohort) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cohort.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cohort.FieldExperimentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = int(value.Int64)
			}
		case cohort.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case cohort.FieldLastProductionExposureID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_production_exposure_id", values[i])
			} else if value.Valid {
				_m.LastProductionExposureID = new(int)
				*_m.LastProductionExposureID = int(value.Int64)
			}
		case cohort.FieldLastStagingExposureID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_staging_exposure_id", values[i])
			} else if value.Valid {
				_m.LastStagingExposureID = new(int)
				*_m.LastStagingExposureID = int(value.Int64)
			}
		case cohort.FieldLastProductionConversionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_production_conversion_id", values[i])
			} else if value.Valid {
				_m.LastProductionConversionID = new(int)
				*_m.LastProductionConversionID = int(value.Int64)
			}
		case cohort.FieldLastStagingConversionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_staging_conversion_id", values[i])
			} else if value.Valid {
				_m.LastStagingConversionID = new(int)
				*_m.LastStagingConversionID = int(value.Int64)
			}
		case cohort.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cohort.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Cohort.
// This includes values selected through modifiers, order, etc.
func (_m *Cohort) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExperiment queries the "experiment" edge of the Cohort entity.
func (_m *Cohort) QueryExperiment() *ExperimentQuery {
	return NewCohortClient(_m.config).QueryExperiment(_m)
}

// QueryExposures queries the "exposures" edge of the Cohort entity.
func (_m *Cohort) QueryExposures() *ExposureQuery {
	return NewCohortClient(_m.config).QueryExposures(_m)
}

// Update returns a builder for updating this Cohort.
// Note that you need to call Cohort.Unwrap() before calling this method if this Cohort
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Cohort) Update() *CohortUpdateOne {
	return NewCohortClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Cohort entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Cohort) Unwrap() *Cohort {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Cohort is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Cohort) String() string {
	var builder strings.Builder
	builder.WriteString("Cohort(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("experiment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperimentID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.LastProductionExposureID; v != nil {
		builder.WriteString("last_production_exposure_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastStagingExposureID; v != nil {
		builder.WriteString("last_staging_exposure_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastProductionConversionID; v != nil {
		builder.WriteString("last_production_conversion_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastStagingConversionID; v != nil {
		builder.WriteString("last_staging_conversion_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cohorts is a parsable slice of Cohort.
type Cohorts []*Cohort
