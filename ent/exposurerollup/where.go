// Code generated by ent, DO NOT EDIT.

package exposurerollup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldID, id))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldDay, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldUserID, v))
}

// ExperimentID applies equality check predicate on the "experiment_id" field. It's identical to ExperimentIDEQ.
func ExperimentID(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentName applies equality check predicate on the "experiment_name" field. It's identical to ExperimentNameEQ.
func ExperimentName(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldExperimentName, v))
}

// Exposures applies equality check predicate on the "exposures" field. It's identical to ExposuresEQ.
func Exposures(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldExposures, v))
}

// Conversions applies equality check predicate on the "conversions" field. It's identical to ConversionsEQ.
func Conversions(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldConversions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldUpdatedAt, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldDay, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldUserID, v))
}

// ExperimentIDEQ applies the EQ predicate on the "experiment_id" field.
func ExperimentIDEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentIDNEQ applies the NEQ predicate on the "experiment_id" field.
func ExperimentIDNEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldExperimentID, v))
}

// ExperimentIDIn applies the In predicate on the "experiment_id" field.
func ExperimentIDIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldExperimentID, vs...))
}

// ExperimentIDNotIn applies the NotIn predicate on the "experiment_id" field.
func ExperimentIDNotIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldExperimentID, vs...))
}

// ExperimentIDGT applies the GT predicate on the "experiment_id" field.
func ExperimentIDGT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldExperimentID, v))
}

// ExperimentIDGTE applies the GTE predicate on the "experiment_id" field.
func ExperimentIDGTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldExperimentID, v))
}

// ExperimentIDLT applies the LT predicate on the "experiment_id" field.
func ExperimentIDLT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldExperimentID, v))
}

// ExperimentIDLTE applies the LTE predicate on the "experiment_id" field.
func ExperimentIDLTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldExperimentID, v))
}

// ExperimentNameEQ applies the EQ predicate on the "experiment_name" field.
func ExperimentNameEQ(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldExperimentName, v))
}

// ExperimentNameNEQ applies the NEQ predicate on the "experiment_name" field.
func ExperimentNameNEQ(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldExperimentName, v))
}

// ExperimentNameIn applies the In predicate on the "experiment_name" field.
func ExperimentNameIn(vs ...string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldExperimentName, vs...))
}

// ExperimentNameNotIn applies the NotIn predicate on the "experiment_name" field.
func ExperimentNameNotIn(vs ...string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldExperimentName, vs...))
}

// ExperimentNameGT applies the GT predicate on the "experiment_name" field.
func ExperimentNameGT(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldExperimentName, v))
}

// ExperimentNameGTE applies the GTE predicate on the "experiment_name" field.
func ExperimentNameGTE(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldExperimentName, v))
}

// ExperimentNameLT applies the LT predicate on the "experiment_name" field.
func ExperimentNameLT(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldExperimentName, v))
}

// ExperimentNameLTE applies the LTE predicate on the "experiment_name" field.
func ExperimentNameLTE(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldExperimentName, v))
}

// ExperimentNameContains applies the Contains predicate on the "experiment_name" field.
func ExperimentNameContains(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldContains(FieldExperimentName, v))
}

// ExperimentNameHasPrefix applies the HasPrefix predicate on the "experiment_name" field.
func ExperimentNameHasPrefix(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldHasPrefix(FieldExperimentName, v))
}

// ExperimentNameHasSuffix applies the HasSuffix predicate on the "experiment_name" field.
func ExperimentNameHasSuffix(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldHasSuffix(FieldExperimentName, v))
}

// ExperimentNameEqualFold applies the EqualFold predicate on the "experiment_name" field.
func ExperimentNameEqualFold(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEqualFold(FieldExperimentName, v))
}

// ExperimentNameContainsFold applies the ContainsFold predicate on the "experiment_name" field.
func ExperimentNameContainsFold(v string) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldContainsFold(FieldExperimentName, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v domain.Scope) predicate.ExposureRollup {
	vc := v
	return predicate.ExposureRollup(sql.FieldEQ(FieldScope, vc))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v domain.Scope) predicate.ExposureRollup {
	vc := v
	return predicate.ExposureRollup(sql.FieldNEQ(FieldScope, vc))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...domain.Scope) predicate.ExposureRollup {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ExposureRollup(sql.FieldIn(FieldScope, v...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...domain.Scope) predicate.ExposureRollup {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ExposureRollup(sql.FieldNotIn(FieldScope, v...))
}

// ExposuresEQ applies the EQ predicate on the "exposures" field.
func ExposuresEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldExposures, v))
}

// ExposuresNEQ applies the NEQ predicate on the "exposures" field.
func ExposuresNEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldExposures, v))
}

// ExposuresIn applies the In predicate on the "exposures" field.
func ExposuresIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldExposures, vs...))
}

// ExposuresNotIn applies the NotIn predicate on the "exposures" field.
func ExposuresNotIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldExposures, vs...))
}

// ExposuresGT applies the GT predicate on the "exposures" field.
func ExposuresGT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldExposures, v))
}

// ExposuresGTE applies the GTE predicate on the "exposures" field.
func ExposuresGTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldExposures, v))
}

// ExposuresLT applies the LT predicate on the "exposures" field.
func ExposuresLT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldExposures, v))
}

// ExposuresLTE applies the LTE predicate on the "exposures" field.
func ExposuresLTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldExposures, v))
}

// ConversionsEQ applies the EQ predicate on the "conversions" field.
func ConversionsEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldConversions, v))
}

// ConversionsNEQ applies the NEQ predicate on the "conversions" field.
func ConversionsNEQ(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldConversions, v))
}

// ConversionsIn applies the In predicate on the "conversions" field.
func ConversionsIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldConversions, vs...))
}

// ConversionsNotIn applies the NotIn predicate on the "conversions" field.
func ConversionsNotIn(vs ...int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldConversions, vs...))
}

// ConversionsGT applies the GT predicate on the "conversions" field.
func ConversionsGT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldConversions, v))
}

// ConversionsGTE applies the GTE predicate on the "conversions" field.
func ConversionsGTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldConversions, v))
}

// ConversionsLT applies the LT predicate on the "conversions" field.
func ConversionsLT(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldConversions, v))
}

// ConversionsLTE applies the LTE predicate on the "conversions" field.
func ConversionsLTE(v int) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldConversions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExposureRollup) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExposureRollup) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExposureRollup) predicate.ExposureRollup {
	return predicate.ExposureRollup(sql.NotPredicates(p))
}
