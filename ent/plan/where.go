// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldName, v))
}

// PriceInCents applies equality check predicate on the "price_in_cents" field. It's identical to PriceInCentsEQ.
func PriceInCents(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPriceInCents, v))
}

// MaxSubjectsPerExperiment applies equality check predicate on the "max_subjects_per_experiment" field. It's identical to MaxSubjectsPerExperimentEQ.
func MaxSubjectsPerExperiment(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxSubjectsPerExperiment, v))
}

// MaxActiveExperiments applies equality check predicate on the "max_active_experiments" field. It's identical to MaxActiveExperimentsEQ.
func MaxActiveExperiments(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxActiveExperiments, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldName, v))
}

// PriceInCentsEQ applies the EQ predicate on the "price_in_cents" field.
func PriceInCentsEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPriceInCents, v))
}

// PriceInCentsNEQ applies the NEQ predicate on the "price_in_cents" field.
func PriceInCentsNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldPriceInCents, v))
}

// PriceInCentsIn applies the In predicate on the "price_in_cents" field.
func PriceInCentsIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldPriceInCents, vs...))
}

// PriceInCentsNotIn applies the NotIn predicate on the "price_in_cents" field.
func PriceInCentsNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldPriceInCents, vs...))
}

// PriceInCentsGT applies the GT predicate on the "price_in_cents" field.
func PriceInCentsGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldPriceInCents, v))
}

// PriceInCentsGTE applies the GTE predicate on the "price_in_cents" field.
func PriceInCentsGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldPriceInCents, v))
}

// PriceInCentsLT applies the LT predicate on the "price_in_cents" field.
func PriceInCentsLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldPriceInCents, v))
}

// PriceInCentsLTE applies the LTE predicate on the "price_in_cents" field.
func PriceInCentsLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldPriceInCents, v))
}

// MaxSubjectsPerExperimentEQ applies the EQ predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxSubjectsPerExperiment, v))
}

// MaxSubjectsPerExperimentNEQ applies the NEQ predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldMaxSubjectsPerExperiment, v))
}

// MaxSubjectsPerExperimentIn applies the In predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldMaxSubjectsPerExperiment, vs...))
}

// MaxSubjectsPerExperimentNotIn applies the NotIn predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldMaxSubjectsPerExperiment, vs...))
}

// MaxSubjectsPerExperimentGT applies the GT predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldMaxSubjectsPerExperiment, v))
}

// MaxSubjectsPerExperimentGTE applies the GTE predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldMaxSubjectsPerExperiment, v))
}

// MaxSubjectsPerExperimentLT applies the LT predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldMaxSubjectsPerExperiment, v))
}

// MaxSubjectsPerExperimentLTE applies the LTE predicate on the "max_subjects_per_experiment" field.
func MaxSubjectsPerExperimentLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldMaxSubjectsPerExperiment, v))
}

// MaxActiveExperimentsEQ applies the EQ predicate on the "max_active_experiments" field.
func MaxActiveExperimentsEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxActiveExperiments, v))
}

// MaxActiveExperimentsNEQ applies the NEQ predicate on the "max_active_experiments" field.
func MaxActiveExperimentsNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldMaxActiveExperiments, v))
}

// MaxActiveExperimentsIn applies the In predicate on the "max_active_experiments" field.
func MaxActiveExperimentsIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldMaxActiveExperiments, vs...))
}

// MaxActiveExperimentsNotIn applies the NotIn predicate on the "max_active_experiments" field.
func MaxActiveExperimentsNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldMaxActiveExperiments, vs...))
}

// MaxActiveExperimentsGT applies the GT predicate on the "max_active_experiments" field.
func MaxActiveExperimentsGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldMaxActiveExperiments, v))
}

// MaxActiveExperimentsGTE applies the GTE predicate on the "max_active_experiments" field.
func MaxActiveExperimentsGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldMaxActiveExperiments, v))
}

// MaxActiveExperimentsLT applies the LT predicate on the "max_active_experiments" field.
func MaxActiveExperimentsLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldMaxActiveExperiments, v))
}

// MaxActiveExperimentsLTE applies the LTE predicate on the "max_active_experiments" field.
func MaxActiveExperimentsLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldMaxActiveExperiments, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAccounts applies the HasEdge predicate on the "accounts" edge.
func HasAccounts() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AccountsTable, AccountsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountsWith applies the HasEdge predicate on the "accounts" edge with a given conditions (other predicates).
func HasAccountsWith(preds ...predicate.Account) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newAccountsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.NotPredicates(p))
}
