// Code generated by ent, DO NOT EDIT.

package cohort

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldID, id))
}

// ExperimentID applies equality check predicate on the "experiment_id" field. It's identical to ExperimentIDEQ.
func ExperimentID(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldExperimentID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldName, v))
}

// LastProductionExposureID applies equality check predicate on the "last_production_exposure_id" field. It's identical to LastProductionExposureIDEQ.
func LastProductionExposureID(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastProductionExposureID, v))
}

// LastStagingExposureID applies equality check predicate on the "last_staging_exposure_id" field. It's identical to LastStagingExposureIDEQ.
func LastStagingExposureID(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastStagingExposureID, v))
}

// LastProductionConversionID applies equality check predicate on the "last_production_conversion_id" field. It's identical to LastProductionConversionIDEQ.
func LastProductionConversionID(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastProductionConversionID, v))
}

// LastStagingConversionID applies equality check predicate on the "last_staging_conversion_id" field. It's identical to LastStagingConversionIDEQ.
func LastStagingConversionID(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastStagingConversionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExperimentIDEQ applies the EQ predicate on the "experiment_id" field.
func ExperimentIDEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentIDNEQ applies the NEQ predicate on the "experiment_id" field.
func ExperimentIDNEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldExperimentID, v))
}

// ExperimentIDIn applies the In predicate on the "experiment_id" field.
func ExperimentIDIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldExperimentID, vs...))
}

// ExperimentIDNotIn applies the NotIn predicate on the "experiment_id" field.
func ExperimentIDNotIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldExperimentID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Cohort {
	return predicate.Cohort(sql.FieldContainsFold(FieldName, v))
}

// LastProductionExposureIDEQ applies the EQ predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDNEQ applies the NEQ predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDNEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDIn applies the In predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldLastProductionExposureID, vs...))
}

// LastProductionExposureIDNotIn applies the NotIn predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDNotIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldLastProductionExposureID, vs...))
}

// LastProductionExposureIDGT applies the GT predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDGT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDGTE applies the GTE predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDGTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDLT applies the LT predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDLT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDLTE applies the LTE predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDLTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldLastProductionExposureID, v))
}

// LastProductionExposureIDIsNil applies the IsNil predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDIsNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldIsNull(FieldLastProductionExposureID))
}

// LastProductionExposureIDNotNil applies the NotNil predicate on the "last_production_exposure_id" field.
func LastProductionExposureIDNotNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldNotNull(FieldLastProductionExposureID))
}

// LastStagingExposureIDEQ applies the EQ predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDNEQ applies the NEQ predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDNEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDIn applies the In predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldLastStagingExposureID, vs...))
}

// LastStagingExposureIDNotIn applies the NotIn predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDNotIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldLastStagingExposureID, vs...))
}

// LastStagingExposureIDGT applies the GT predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDGT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDGTE applies the GTE predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDGTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDLT applies the LT predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDLT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDLTE applies the LTE predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDLTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldLastStagingExposureID, v))
}

// LastStagingExposureIDIsNil applies the IsNil predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDIsNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldIsNull(FieldLastStagingExposureID))
}

// LastStagingExposureIDNotNil applies the NotNil predicate on the "last_staging_exposure_id" field.
func LastStagingExposureIDNotNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldNotNull(FieldLastStagingExposureID))
}

// LastProductionConversionIDEQ applies the EQ predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDNEQ applies the NEQ predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDNEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDIn applies the In predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldLastProductionConversionID, vs...))
}

// LastProductionConversionIDNotIn applies the NotIn predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDNotIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldLastProductionConversionID, vs...))
}

// LastProductionConversionIDGT applies the GT predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDGT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDGTE applies the GTE predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDGTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDLT applies the LT predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDLT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDLTE applies the LTE predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDLTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldLastProductionConversionID, v))
}

// LastProductionConversionIDIsNil applies the IsNil predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDIsNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldIsNull(FieldLastProductionConversionID))
}

// LastProductionConversionIDNotNil applies the NotNil predicate on the "last_production_conversion_id" field.
func LastProductionConversionIDNotNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldNotNull(FieldLastProductionConversionID))
}

// LastStagingConversionIDEQ applies the EQ predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDNEQ applies the NEQ predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDNEQ(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDIn applies the In predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldLastStagingConversionID, vs...))
}

// LastStagingConversionIDNotIn applies the NotIn predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDNotIn(vs ...int) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldLastStagingConversionID, vs...))
}

// LastStagingConversionIDGT applies the GT predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDGT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDGTE applies the GTE predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDGTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDLT applies the LT predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDLT(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDLTE applies the LTE predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDLTE(v int) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldLastStagingConversionID, v))
}

// LastStagingConversionIDIsNil applies the IsNil predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDIsNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldIsNull(FieldLastStagingConversionID))
}

// LastStagingConversionIDNotNil applies the NotNil predicate on the "last_staging_conversion_id" field.
func LastStagingConversionIDNotNil() predicate.Cohort {
	return predicate.Cohort(sql.FieldNotNull(FieldLastStagingConversionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Cohort {
	return predicate.Cohort(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExperiment applies the HasEdge predicate on the "experiment" edge.
func HasExperiment() predicate.Cohort {
	return predicate.Cohort(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExperimentTable, ExperimentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExperimentWith applies the HasEdge predicate on the "experiment" edge with a given conditions (other predicates).
func HasExperimentWith(preds ...predicate.Experiment) predicate.Cohort {
	return predicate.Cohort(func(s *sql.Selector) {
		step := newExperimentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExposures applies the HasEdge predicate on the "exposures" edge.
func HasExposures() predicate.Cohort {
	return predicate.Cohort(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExposuresTable, ExposuresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExposuresWith applies the HasEdge predicate on the "exposures" edge with a given conditions (other predicates).
func HasExposuresWith(preds ...predicate.Exposure) predicate.Cohort {
	return predicate.Cohort(func(s *sql.Selector) {
		step := newExposuresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cohort) predicate.Cohort {
	return predicate.Cohort(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cohort) predicate.Cohort {
	return predicate.Cohort(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cohort) predicate.Cohort {
	return predicate.Cohort(sql.NotPredicates(p))
}
