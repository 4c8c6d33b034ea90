// Code generated by ent, DO NOT EDIT.

package experiment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldName, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldActive, v))
}

// LastActivatedAt applies equality check predicate on the "last_activated_at" field. It's identical to LastActivatedAtEQ.
func LastActivatedAt(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastActivatedAt, v))
}

// SubjectsCounterProduction applies equality check predicate on the "subjects_counter_production" field. It's identical to SubjectsCounterProductionEQ.
func SubjectsCounterProduction(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldSubjectsCounterProduction, v))
}

// SubjectsCounterStaging applies equality check predicate on the "subjects_counter_staging" field. It's identical to SubjectsCounterStagingEQ.
func SubjectsCounterStaging(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldSubjectsCounterStaging, v))
}

// LastProductionExposureID applies equality check predicate on the "last_production_exposure_id" field. It's identical to LastProductionExposureIDEQ.
func LastProductionExposureID(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastProductionExposureID, v))
}

// LastStagingExposureID applies equality check predicate on the "last_staging_exposure_id" field. It's identical to LastStagingExposureIDEQ.
func LastStagingExposureID(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastStagingExposureID, v))
}

// LastProductionConversionID applies equality check predicate on the "last_production_conversion_id" field. It's identical to LastProductionConversionIDEQ.
func LastProductionConversionID(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastProductionConversionID, v))
}

// LastStagingConversionID applies equality check predicate on the "last_staging_conversion_id" field. It's identical to LastStagingConversionIDEQ.
func LastStagingConversionID(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastStagingConversionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldUserID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContainsFold(FieldName, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldActive, v))
}

// LastActivatedAtEQ applies the EQ predicate on the "last_activated_at" field.
func LastActivatedAtEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastActivatedAt, v))
}

// LastActivatedAtNEQ applies the NEQ predicate on the "last_activated_at" field.
func LastActivatedAtNEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldLastActivatedAt, v))
}

// LastActivatedAtIn applies the In predicate on the "last_activated_at" field.
func LastActivatedAtIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldLastActivatedAt, vs...))
}

// LastActivatedAtNotIn applies the NotIn predicate on the "last_activated_at" field.
func LastActivatedAtNotIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldLastActivatedAt, vs...))
}

// LastActivatedAtGT applies the GT predicate on the "last_activated_at" field.
func LastActivatedAtGT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldLastActivatedAt, v))
}

// LastActivatedAtGTE applies the GTE predicate on the "last_activated_at" field.
func LastActivatedAtGTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldLastActivatedAt, v))
}

// LastActivatedAtLT applies the LT predicate on the "last_activated_at" field.
func LastActivatedAtLT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldLastActivatedAt, v))
}

// LastActivatedAtLTE applies the LTE predicate on the "last_activated_at" field.
func LastActivatedAtLTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldLastActivatedAt, v))
}

// SubjectsCounterProductionEQ applies the EQ predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldSubjectsCounterProduction, v))
}

// SubjectsCounterProductionNEQ applies the NEQ predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldSubjectsCounterProduction, v))
}

// SubjectsCounterProductionIn applies the In predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldSubjectsCounterProduction, vs...))
}

// SubjectsCounterProductionNotIn applies the NotIn predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldSubjectsCounterProduction, vs...))
}

// SubjectsCounterProductionGT applies the GT predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionGT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldSubjectsCounterProduction, v))
}

// SubjectsCounterProductionGTE applies the GTE predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionGTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldSubjectsCounterProduction, v))
}

// SubjectsCounterProductionLT applies the LT predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionLT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldSubjectsCounterProduction, v))
}

// SubjectsCounterProductionLTE applies the LTE predicate on the "subjects_counter_production" field.
func SubjectsCounterProductionLTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldSubjectsCounterProduction, v))
}

// SubjectsCounterStagingEQ applies the EQ predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldSubjectsCounterStaging, v))
}

// SubjectsCounterStagingNEQ applies the NEQ predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldSubjectsCounterStaging, v))
}

// SubjectsCounterStagingIn applies the In predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldSubjectsCounterStaging, vs...))
}

// SubjectsCounterStagingNotIn applies the NotIn predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldSubjectsCounterStaging, vs...))
}

// SubjectsCounterStagingGT applies the GT predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingGT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldSubjectsCounterStaging, v))
}

// SubjectsCounterStagingGTE applies the GTE predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingGTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldSubjectsCounterStaging, v))
}

// SubjectsCounterStagingLT applies the LT predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingLT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldSubjectsCounterStaging, v))
}

// SubjectsCounterStagingLTE applies the LTE predicate on the "subjects_counter_staging" field.
func SubjectsCounterStagingLTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldSubjectsCounterStaging, v))
}

// LastProductionExposureIDEQ applies the EQ predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDNEQ applies the NEQ predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDIn applies the In predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldLastProductionExposureID, vs...))
}

// LastProductionExposureIDNotIn applies the NotIn predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldLastProductionExposureID, vs...))
}

// LastProductionExposureIDGT applies the GT predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDGT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDGTE applies the GTE predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDGTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDLT applies the LT predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDLT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDLTE applies the LTE predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDLTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDIsNil applies the IsNil predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldLastProductionExposureID))
}

// LastProductionExposureIDNotNil applies the NotNil predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldLastProductionExposureID))
}

// LastStagingExposureIDEQ applies the EQ predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDNEQ applies the NEQ predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDIn applies the In predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldLastStagingExposureID, vs...))
}

// LastStagingExposureIDNotIn applies the NotIn predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldLastStagingExposureID, vs...))
}

// LastStagingExposureIDGT applies the GT predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDGT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDGTE applies the GTE predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDGTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDLT applies the LT predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDLT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDLTE applies the LTE predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDLTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDIsNil applies the IsNil predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldLastStagingExposureID))
}

// LastStagingExposureIDNotNil applies the NotNil predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldLastStagingExposureID))
}

// LastProductionConversionIDEQ applies the EQ predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDNEQ applies the NEQ predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDIn applies the In predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldLastProductionConversionID, vs...))
}

// LastProductionConversionIDNotIn applies the NotIn predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldLastProductionConversionID, vs...))
}

// LastProductionConversionIDGT applies the GT predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDGT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDGTE applies the GTE predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDGTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDLT applies the LT predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDLT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDLTE applies the LTE predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDLTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDIsNil applies the IsNil predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldLastProductionConversionID))
}

// LastProductionConversionIDNotNil applies the NotNil predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldLastProductionConversionID))
}

// LastStagingConversionIDEQ applies the EQ predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDNEQ applies the NEQ predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDIn applies the In predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldLastStagingConversionID, vs...))
}

// LastStagingConversionIDNotIn applies the NotIn predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldLastStagingConversionID, vs...))
}

// LastStagingConversionIDGT applies the GT predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDGT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDGTE applies the GTE predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDGTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDLT applies the LT predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDLT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDLTE applies the LTE predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDLTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDIsNil applies the IsNil predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldLastStagingConversionID))
}

// LastStagingConversionIDNotNil applies the NotNil predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldLastStagingConversionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCohorts applies the HasEdge predicate on the "cohorts" edge.
func HasCohorts() predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CohortsTable, CohortsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCohortsWith applies the HasEdge predicate on the "cohorts" edge with a given conditions (other predicates).
func HasCohortsWith(preds ...predicate.Cohort) predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := newCohortsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExposures applies the HasEdge predicate on the "exposures" edge.
func HasExposures() predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExposuresTable, ExposuresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExposuresWith applies the HasEdge predicate on the "exposures" edge with a given conditions (other predicates).
func HasExposuresWith(preds ...predicate.Exposure) predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := newExposuresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Experiment) predicate.Experiment {
	return predicate.Experiment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Experiment) predicate.Experiment {
	return predicate.Experiment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Experiment) predicate.Experiment {
	return predicate.Experiment(sql.NotPredicates(p))
}
