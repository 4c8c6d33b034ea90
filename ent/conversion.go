// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// Conversion is the model entity for the Conversion schema.
type Conversion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Exposure this conversion completes
	ExposureID int `json:"exposure_id,omitempty"`
	// Isolation partition
	Scope domain.Scope `json:"scope,omitempty"`
	// Optional goal value; first write wins
	Value *float64 `json:"value,omitempty"`
	// First time the conversion was recorded
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Advanced on every repeat call
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversionQuery when eager-loading is set.
	Edges        ConversionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversionEdges holds the relations/edges for other nodes in the graph.
type ConversionEdges struct {
	// Converted exposure
	Exposure *Exposure `json:"exposure,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExposureOrErr returns the Exposure value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversionEdges) ExposureOrErr() (*Exposure, error) {
	if e.Exposure != nil {
		return e.Exposure, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: exposure.Label}
	}
	return nil, &NotLoadedError{edge: "exposure"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversion.FieldValue:
			values[i] = new(sql.NullFloat64)
		case conversion.FieldID, conversion.FieldExposureID:
			values[i] = new(sql.NullInt64)
		case conversion.FieldScope:
			values[i] = new(sql.NullString)
		case conversion.FieldCreatedAt, conversion.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversion fields.
func (_m *Conversion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conversion.FieldExposureID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exposure_id", values[i])
			} else if value.Valid {
				_m.ExposureID = int(value.Int64)
			}
		case conversion.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = domain.Scope(value.String)
			}
		case conversion.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = new(float64)
				*_m.Value = value.Float64
			}
		case conversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversion.FieldLastSeenAt:
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

// GetValue returns the ent.Value that was dynamically selected and assigned to the Conversion.
// This includes values selected through modifiers, order, etc.
func (_m *Conversion) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExposure queries the "exposure" edge of the Conversion entity.
func (_m *Conversion) QueryExposure() *ExposureQuery {
	return NewConversionClient(_m.config).QueryExposure(_m)
}

// Update returns a builder for updating this Conversion.
// Note that you need to call Conversion.Unwrap() before calling this method if this Conversion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversion) Update() *ConversionUpdateOne {
	return NewConversionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversion) Unwrap() *Conversion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conversion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversion) String() string {
	var builder strings.Builder
	builder.WriteString("Conversion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exposure_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExposureID))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	if v := _m.Value; v != nil {
		builder.WriteString("value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Conversions is a parsable slice of Conversion.
type Conversions []*Conversion
