// Code generated by ent, DO NOT EDIT.

package conversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldID, id))
}

// ExposureID applies equality check predicate on the "exposure_id" field. It's identical to ExposureIDEQ.
func ExposureID(v int) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldExposureID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldCreatedAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldLastSeenAt, v))
}

// ExposureIDEQ applies the EQ predicate on the "exposure_id" field.
func ExposureIDEQ(v int) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldExposureID, v))
}

// ExposureIDNEQ applies the NEQ predicate on the "exposure_id" field.
func ExposureIDNEQ(v int) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldExposureID, v))
}

// ExposureIDIn applies the In predicate on the "exposure_id" field.
func ExposureIDIn(vs ...int) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldExposureID, vs...))
}

// ExposureIDNotIn applies the NotIn predicate on the "exposure_id" field.
func ExposureIDNotIn(vs ...int) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldExposureID, vs...))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v domain.Scope) predicate.Conversion {
	vc := v
	return predicate.Conversion(sql.FieldEQ(FieldScope, vc))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v domain.Scope) predicate.Conversion {
	vc := v
	return predicate.Conversion(sql.FieldNEQ(FieldScope, vc))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...domain.Scope) predicate.Conversion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Conversion(sql.FieldIn(FieldScope, v...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...domain.Scope) predicate.Conversion {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Conversion(sql.FieldNotIn(FieldScope, v...))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldValue))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldCreatedAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldLastSeenAt, v))
}

// HasExposure applies the HasEdge predicate on the "exposure" edge.
func HasExposure() predicate.Conversion {
	return predicate.Conversion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExposureTable, ExposureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExposureWith applies the HasEdge predicate on the "exposure" edge with a given conditions (other predicates).
func HasExposureWith(preds ...predicate.Exposure) predicate.Conversion {
	return predicate.Conversion(func(s *sql.Selector) {
		step := newExposureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversion) predicate.Conversion {
	return predicate.Conversion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversion) predicate.Conversion {
	return predicate.Conversion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversion) predicate.Conversion {
	return predicate.Conversion(sql.NotPredicates(p))
}
