// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/exposurerollup"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExposureRollup is the model entity for the ExposureRollup schema.
type ExposureRollup struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC day the counts cover
	Day time.Time `json:"day,omitempty"`
	// Experiment owner
	UserID int `json:"user_id,omitempty"`
	// Experiment the counts cover
	ExperimentID int `json:"experiment_id,omitempty"`
	// Denormalized experiment name
	ExperimentName string `json:"experiment_name,omitempty"`
	// Isolation partition
	Scope domain.Scope `json:"scope,omitempty"`
	// Exposures first seen on this day
	Exposures int `json:"exposures,omitempty"`
	// Conversions first seen on this day
	Conversions int `json:"conversions,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExposureRollup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exposurerollup.FieldID, exposurerollup.FieldUserID, exposurerollup.FieldExperimentID, exposurerollup.FieldExposures, exposurerollup.FieldConversions:
			values[i] = new(sql.NullInt64)
		case exposurerollup.FieldExperimentName, exposurerollup.FieldScope:
			values[i] = new(sql.NullString)
		case exposurerollup.FieldDay, exposurerollup.FieldCreatedAt, exposurerollup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExposureRollup fields.
func (_m *ExposureRollup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exposurerollup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exposurerollup.FieldDay:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.Time
			}
		case exposurerollup.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case exposurerollup.FieldExperimentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = int(value.Int64)
			}
		case exposurerollup.FieldExperimentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_name", values[i])
			} else if value.Valid {
				_m.ExperimentName = value.String
			}
		case exposurerollup.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = domain.Scope(value.String)
			}
		case exposurerollup.FieldExposures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exposures", values[i])
			} else if value.Valid {
				_m.Exposures = int(value.Int64)
			}
		case exposurerollup.FieldConversions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conversions", values[i])
			} else if value.Valid {
				_m.Conversions = int(value.Int64)
			}
		case exposurerollup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case exposurerollup.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExposureRollup.
// This includes values selected through modifiers, order, etc.
func (_m *ExposureRollup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExposureRollup.
// Note that you need to call ExposureRollup.Unwrap() before calling this method if this ExposureRollup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExposureRollup) Update() *ExposureRollupUpdateOne {
	return NewExposureRollupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExposureRollup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExposureRollup) Unwrap() *ExposureRollup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExposureRollup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExposureRollup) String() string {
	var builder strings.Builder
	builder.WriteString("ExposureRollup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("day=")
	builder.WriteString(_m.Day.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("experiment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperimentID))
	builder.WriteString(", ")
	builder.WriteString("experiment_name=")
	builder.WriteString(_m.ExperimentName)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("exposures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exposures))
	builder.WriteString(", ")
	builder.WriteString("conversions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conversions))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExposureRollups is a parsable slice of ExposureRollup.
type ExposureRollups []*ExposureRollup
