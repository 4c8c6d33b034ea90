// Code generated by ent, DO NOT EDIT.

package subject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldAccountID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// LastExposureID applies equality check predicate on the "last_exposure_id" field. It's identical to LastExposureIDEQ.
func LastExposureID(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLastExposureID, v))
}

// LastConversionID applies equality check predicate on the "last_conversion_id" field. It's identical to LastConversionIDEQ.
func LastConversionID(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLastConversionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldAccountID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldName, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v domain.Scope) predicate.Subject {
	vc := v
	return predicate.Subject(sql.FieldEQ(FieldScope, vc))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v domain.Scope) predicate.Subject {
	vc := v
	return predicate.Subject(sql.FieldNEQ(FieldScope, vc))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...domain.Scope) predicate.Subject {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Subject(sql.FieldIn(FieldScope, v...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...domain.Scope) predicate.Subject {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Subject(sql.FieldNotIn(FieldScope, v...))
}

// LastExposureIDEQ applies the EQ predicate on the "last_exposure_id" field.
func LastExposureIDEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLastExposureID, v))
}

// LastExposureIDNEQ applies the NEQ predicate on the "last_exposure_id" field.
func LastExposureIDNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldLastExposureID, v))
}

// LastExposureIDIn applies the In predicate on the "last_exposure_id" field.
func LastExposureIDIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldLastExposureID, vs...))
}

// LastExposureIDNotIn applies the NotIn predicate on the "last_exposure_id" field.
func LastExposureIDNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldLastExposureID, vs...))
}

// LastExposureIDGT applies the GT predicate on the "last_exposure_id" field.
func LastExposureIDGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldLastExposureID, v))
}

// LastExposureIDGTE applies the GTE predicate on the "last_exposure_id" field.
func LastExposureIDGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldLastExposureID, v))
}

// LastExposureIDLT applies the LT predicate on the "last_exposure_id" field.
func LastExposureIDLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldLastExposureID, v))
}

// LastExposureIDLTE applies the LTE predicate on the "last_exposure_id" field.
func LastExposureIDLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldLastExposureID, v))
}

// LastExposureIDIsNil applies the IsNil predicate on the "last_exposure_id" field.
func LastExposureIDIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldLastExposureID))
}

// LastExposureIDNotNil applies the NotNil predicate on the "last_exposure_id" field.
func LastExposureIDNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldLastExposureID))
}

// LastConversionIDEQ applies the EQ predicate on the "last_conversion_id" field.
func LastConversionIDEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLastConversionID, v))
}

// LastConversionIDNEQ applies the NEQ predicate on the "last_conversion_id" field.
func LastConversionIDNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldLastConversionID, v))
}

// LastConversionIDIn applies the In predicate on the "last_conversion_id" field.
func LastConversionIDIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldLastConversionID, vs...))
}

// LastConversionIDNotIn applies the NotIn predicate on the "last_conversion_id" field.
func LastConversionIDNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldLastConversionID, vs...))
}

// LastConversionIDGT applies the GT predicate on the "last_conversion_id" field.
func LastConversionIDGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldLastConversionID, v))
}

// LastConversionIDGTE applies the GTE predicate on the "last_conversion_id" field.
func LastConversionIDGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldLastConversionID, v))
}

// LastConversionIDLT applies the LT predicate on the "last_conversion_id" field.
func LastConversionIDLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldLastConversionID, v))
}

// LastConversionIDLTE applies the LTE predicate on the "last_conversion_id" field.
func LastConversionIDLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldLastConversionID, v))
}

// LastConversionIDIsNil applies the IsNil predicate on the "last_conversion_id" field.
func LastConversionIDIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldLastConversionID))
}

// LastConversionIDNotNil applies the NotNil predicate on the "last_conversion_id" field.
func LastConversionIDNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldLastConversionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExposures applies the HasEdge predicate on the "exposures" edge.
func HasExposures() predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExposuresTable, ExposuresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExposuresWith applies the HasEdge predicate on the "exposures" edge with a given conditions (other predicates).
func HasExposuresWith(preds ...predicate.Exposure) predicate.Subject {
	return predicate.Subject(func(s *sql.Selector) {
		step := newExposuresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.NotPredicates(p))
}
