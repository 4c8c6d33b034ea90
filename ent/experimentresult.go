// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/experimentresult"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExperimentResult is the model entity for the ExperimentResult schema.
type ExperimentResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Experiment the snapshot belongs to
	ExperimentID int `json:"experiment_id,omitempty"`
	// Isolation partition
	Scope domain.Scope `json:"scope,omitempty"`
	// Snapshot schema version tag
	Version string `json:"version,omitempty"`
	// Rendered result payload
	Fields json.RawMessage `json:"fields,omitempty"`
	// When the calculator produced this snapshot
	RanAt time.Time `json:"ran_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExperimentResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case experimentresult.FieldFields:
			values[i] = new([]byte)
		case experimentresult.FieldID, experimentresult.FieldExperimentID:
			values[i] = new(sql.NullInt64)
		case experimentresult.FieldScope, experimentresult.FieldVersion:
			values[i] = new(sql.NullString)
		case experimentresult.FieldRanAt, experimentresult.FieldCreatedAt, experimentresult.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExperimentResult fields.
func (_m *ExperimentResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case experimentresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case experimentresult.FieldExperimentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = int(value.Int64)
			}
		case experimentresult.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = domain.Scope(value.String)
			}
		case experimentresult.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case experimentresult.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case experimentresult.FieldRanAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ran_at", values[i])
			} else if value.Valid {
				_m.RanAt = value.Time
			}
		case experimentresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case experimentresult.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExperimentResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExperimentResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExperimentResult.
// Note that you need to call ExperimentResult.Unwrap() before calling this method if this ExperimentResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExperimentResult) Update() *ExperimentResultUpdateOne {
	return NewExperimentResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExperimentResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExperimentResult) Unwrap() *ExperimentResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExperimentResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExperimentResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExperimentResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("experiment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperimentID))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("ran_at=")
	builder.WriteString(_m.RanAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExperimentResults is a parsable slice of ExperimentResult.
type ExperimentResults []*ExperimentResult
