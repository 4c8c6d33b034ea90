// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/user"
)

// Experiment is the model entity for the Experiment schema.
type Experiment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user (tenant)
	UserID int `json:"user_id,omitempty"`
	// Experiment name, unique per user
	Name string `json:"name,omitempty"`
	// Whether new exposures are admitted
	Active bool `json:"active,omitempty"`
	// When the experiment was last activated; drives eviction order
	LastActivatedAt time.Time `json:"last_activated_at,omitempty"`
	// Distinct subjects exposed in production
	SubjectsCounterProduction int `json:"subjects_counter_production,omitempty"`
	// Distinct subjects exposed in staging
	SubjectsCounterStaging int `json:"subjects_counter_staging,omitempty"`
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
	// The values are being populated by the ExperimentQuery when eager-loading is set.
	Edges        ExperimentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExperimentEdges holds the relations/edges for other nodes in the graph.
type ExperimentEdges struct {
	// Experiment owner
	User *User `json:"user,omitempty"`
	// Treatment arms
	Cohorts []*Cohort `json:"cohorts,omitempty"`
	// Exposure events
	Exposures []*Exposure `json:"exposures,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExperimentEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// CohortsOrErr returns the Cohorts value or an error if the edge
// was not loaded in eager-loading.
func (e ExperimentEdges) CohortsOrErr() ([]*Cohort, error) {
	if e.loadedTypes[1] {
		return e.Cohorts, nil
	}
	return nil, &NotLoadedError{edge: "cohorts"}
}

// ExposuresOrErr returns the Exposures value or an error if the edge
// was not loaded in eager-loading.
func (e ExperimentEdges) ExposuresOrErr() ([]*Exposure, error) {
	if e.loadedTypes[2] {
		return e.Exposures, nil
	}
	return nil, &NotLoadedError{edge: "exposures"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Experiment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case experiment.FieldActive:
			values[i] = new(sql.NullBool)
		case experiment.FieldID, experiment.FieldUserID, experiment.FieldSubjectsCounterProduction, experiment.FieldSubjectsCounterStaging, experiment.FieldLastProductionExposureID, experiment.FieldLastStagingExposureID, experiment.FieldLastProductionConversionID, experiment.FieldLastStagingConversionID:
			values[i] = new(sql.NullInt64)
		case experiment.FieldName:
			values[i] = new(sql.NullString)
		case experiment.FieldLastActivatedAt, experiment.FieldCreatedAt, experiment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Experiment fields.
func (_m *Experiment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case experiment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case experiment.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case experiment.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case experiment.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case experiment.FieldLastActivatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activated_at", values[i])
			} else if value.Valid {
				_m.LastActivatedAt = value.Time
			}
		case experiment.FieldSubjectsCounterProduction:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subjects_counter_production", values[i])
			} else if value.Valid {
				_m.SubjectsCounterProduction = int(value.Int64)
			}
		case experiment.FieldSubjectsCounterStaging:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subjects_counter_staging", values[i])
			} else if value.Valid {
				_m.SubjectsCounterStaging = int(value.Int64)
			}
		case experiment.FieldLastProductionExposureID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_production_exposure_id", values[i])
			} else if value.Valid {
				_m.LastProductionExposureID = new(int)
				*_m.LastProductionExposureID = int(value.Int64)
			}
		case experiment.FieldLastStagingExposureID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_staging_exposure_id", values[i])
			} else if value.Valid {
				_m.LastStagingExposureID = new(int)
				*_m.LastStagingExposureID = int(value.Int64)
			}
		case experiment.FieldLastProductionConversionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_production_conversion_id", values[i])
			} else if value.Valid {
				_m.LastProductionConversionID = new(int)
				*_m.LastProductionConversionID = int(value.Int64)
			}
		case experiment.FieldLastStagingConversionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_staging_conversion_id", values[i])
			} else if value.Valid {
				_m.LastStagingConversionID = new(int)
				*_m.LastStagingConversionID = int(value.Int64)
			}
		case experiment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case experiment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Experiment.
// This includes values selected through modifiers, order, etc.
func (_m *Experiment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Experiment entity.
func (_m *Experiment) QueryUser() *UserQuery {
	return NewExperimentClient(_m.config).QueryUser(_m)
}

// QueryCohorts queries the "cohorts" edge of the Experiment entity.
func (_m *Experiment) QueryCohorts() *CohortQuery {
	return NewExperimentClient(_m.config).QueryCohorts(_m)
}

// QueryExposures queries the "exposures" edge of the Experiment entity.
func (_m *Experiment) QueryExposures() *ExposureQuery {
	return NewExperimentClient(_m.config).QueryExposures(_m)
}

// Update returns a builder for updating this Experiment.
// Note that you need to call Experiment.Unwrap() before calling this method if this Experiment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Experiment) Update() *ExperimentUpdateOne {
	return NewExperimentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Experiment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Experiment) Unwrap() *Experiment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Experiment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Experiment) String() string {
	var builder strings.Builder
	builder.WriteString("Experiment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("last_activated_at=")
	builder.WriteString(_m.LastActivatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subjects_counter_production=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectsCounterProduction))
	builder.WriteString(", ")
	builder.WriteString("subjects_counter_staging=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectsCounterStaging))
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

// Experiments is a parsable slice of Experiment.
type Experiments []*Experiment
