// Code generated by ent, DO NOT EDIT.

package experimentresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldID, id))
}

// ExperimentID applies equality check predicate on the "experiment_id" field. It's identical to ExperimentIDEQ.
func ExperimentID(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldExperimentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldVersion, v))
}

// RanAt applies equality check predicate on the "ran_at" field. It's identical to RanAtEQ.
func RanAt(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldRanAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExperimentIDEQ applies the EQ predicate on the "experiment_id" field.
func ExperimentIDEQ(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentIDNEQ applies the NEQ predicate on the "experiment_id" field.
func ExperimentIDNEQ(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldExperimentID, v))
}

// ExperimentIDIn applies the In predicate on the "experiment_id" field.
func ExperimentIDIn(vs ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldExperimentID, vs...))
}

// ExperimentIDNotIn applies the NotIn predicate on the "experiment_id" field.
func ExperimentIDNotIn(vs ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldExperimentID, vs...))
}

// ExperimentIDGT applies the GT predicate on the "experiment_id" field.
func ExperimentIDGT(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldExperimentID, v))
}

// ExperimentIDGTE applies the GTE predicate on the "experiment_id" field.
func ExperimentIDGTE(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldExperimentID, v))
}

// ExperimentIDLT applies the LT predicate on the "experiment_id" field.
func ExperimentIDLT(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldExperimentID, v))
}

// ExperimentIDLTE applies the LTE predicate on the "experiment_id" field.
func ExperimentIDLTE(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldExperimentID, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v domain.Scope) predicate.ExperimentResult {
	vc := v
	return predicate.ExperimentResult(sql.FieldEQ(FieldScope, vc))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v domain.Scope) predicate.ExperimentResult {
	vc := v
	return predicate.ExperimentResult(sql.FieldNEQ(FieldScope, vc))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...domain.Scope) predicate.ExperimentResult {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ExperimentResult(sql.FieldIn(FieldScope, v...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...domain.Scope) predicate.ExperimentResult {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ExperimentResult(sql.FieldNotIn(FieldScope, v...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContainsFold(FieldVersion, v))
}

// RanAtEQ applies the EQ predicate on the "ran_at" field.
func RanAtEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldRanAt, v))
}

// RanAtNEQ applies the NEQ predicate on the "ran_at" field.
func RanAtNEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldRanAt, v))
}

// RanAtIn applies the In predicate on the "ran_at" field.
func RanAtIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldRanAt, vs...))
}

// RanAtNotIn applies the NotIn predicate on the "ran_at" field.
func RanAtNotIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldRanAt, vs...))
}

// RanAtGT applies the GT predicate on the "ran_at" field.
func RanAtGT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldRanAt, v))
}

// RanAtGTE applies the GTE predicate on the "ran_at" field.
func RanAtGTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldRanAt, v))
}

// RanAtLT applies the LT predicate on the "ran_at" field.
func RanAtLT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldRanAt, v))
}

// RanAtLTE applies the LTE predicate on the "ran_at" field.
func RanAtLTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldRanAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExperimentResult) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExperimentResult) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExperimentResult) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.NotPredicates(p))
}
