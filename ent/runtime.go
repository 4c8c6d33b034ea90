// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tjwaterman99/quicksplit-api/ent/account"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/experimentresult"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/exposurerollup"
	"github.com/tjwaterman99/quicksplit-api/ent/plan"
	"github.com/tjwaterman99/quicksplit-api/ent/schema"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[1].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[2].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	cohortFields := schema.Cohort{}.Fields()
	_ = cohortFields
	// cohortDescName is the schema descriptor for name field.
	cohortDescName := cohortFields[1].Descriptor()
	// cohort.NameValidator is a validator for the "name" field. It is called by the builders before save.
	cohort.NameValidator = func() func(string) error {
		validators := cohortDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cohortDescCreatedAt is the schema descriptor for created_at field.
	cohortDescCreatedAt := cohortFields[6].Descriptor()
	// cohort.DefaultCreatedAt holds the default value on creation for the created_at field.
	cohort.DefaultCreatedAt = cohortDescCreatedAt.Default.(func() time.Time)
	// cohortDescUpdatedAt is the schema descriptor for updated_at field.
	cohortDescUpdatedAt := cohortFields[7].Descriptor()
	// cohort.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cohort.DefaultUpdatedAt = cohortDescUpdatedAt.Default.(func() time.Time)
	// cohort.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cohort.UpdateDefaultUpdatedAt = cohortDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversionFields := schema.Conversion{}.Fields()
	_ = conversionFields
	// conversionDescCreatedAt is the schema descriptor for created_at field.
	conversionDescCreatedAt := conversionFields[3].Descriptor()
	// conversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversion.DefaultCreatedAt = conversionDescCreatedAt.Default.(func() time.Time)
	// conversionDescLastSeenAt is the schema descriptor for last_seen_at field.
	conversionDescLastSeenAt := conversionFields[4].Descriptor()
	// conversion.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	conversion.DefaultLastSeenAt = conversionDescLastSeenAt.Default.(func() time.Time)
	experimentFields := schema.Experiment{}.Fields()
	_ = experimentFields
	// experimentDescName is the schema descriptor for name field.
	experimentDescName := experimentFields[1].Descriptor()
	// experiment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	experiment.NameValidator = func() func(string) error {
		validators := experimentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// experimentDescActive is the schema descriptor for active field.
	experimentDescActive := experimentFields[2].Descriptor()
	// experiment.DefaultActive holds the default value on creation for the active field.
	experiment.DefaultActive = experimentDescActive.Default.(bool)
	// experimentDescLastActivatedAt is the schema descriptor for last_activated_at field.
	experimentDescLastActivatedAt := experimentFields[3].Descriptor()
	// experiment.DefaultLastActivatedAt holds the default value on creation for the last_activated_at field.
	experiment.DefaultLastActivatedAt = experimentDescLastActivatedAt.Default.(func() time.Time)
	// experimentDescSubjectsCounterProduction is the schema descriptor for subjects_counter_production field.
	experimentDescSubjectsCounterProduction := experimentFields[4].Descriptor()
	// experiment.DefaultSubjectsCounterProduction holds the default value on creation for the subjects_counter_production field.
	experiment.DefaultSubjectsCounterProduction = experimentDescSubjectsCounterProduction.Default.(int)
	// experimentDescSubjectsCounterStaging is the schema descriptor for subjects_counter_staging field.
	experimentDescSubjectsCounterStaging := experimentFields[5].Descriptor()
	// experiment.DefaultSubjectsCounterStaging holds the default value on creation for the subjects_counter_staging field.
	experiment.DefaultSubjectsCounterStaging = experimentDescSubjectsCounterStaging.Default.(int)
	// experimentDescCreatedAt is the schema descriptor for created_at field.
	experimentDescCreatedAt := experimentFields[10].Descriptor()
	// experiment.DefaultCreatedAt holds the default value on creation for the created_at field.
	experiment.DefaultCreatedAt = experimentDescCreatedAt.Default.(func() time.Time)
	// experimentDescUpdatedAt is the schema descriptor for updated_at field.
	experimentDescUpdatedAt := experimentFields[11].Descriptor()
	// experiment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	experiment.DefaultUpdatedAt = experimentDescUpdatedAt.Default.(func() time.Time)
	// experiment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	experiment.UpdateDefaultUpdatedAt = experimentDescUpdatedAt.UpdateDefault.(func() time.Time)
	experimentresultFields := schema.ExperimentResult{}.Fields()
	_ = experimentresultFields
	// experimentresultDescVersion is the schema descriptor for version field.
	experimentresultDescVersion := experimentresultFields[2].Descriptor()
	// experimentresult.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	experimentresult.VersionValidator = experimentresultDescVersion.Validators[0].(func(string) error)
	// experimentresultDescCreatedAt is the schema descriptor for created_at field.
	experimentresultDescCreatedAt := experimentresultFields[5].Descriptor()
	// experimentresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	experimentresult.DefaultCreatedAt = experimentresultDescCreatedAt.Default.(func() time.Time)
	// experimentresultDescUpdatedAt is the schema descriptor for updated_at field.
	experimentresultDescUpdatedAt := experimentresultFields[6].Descriptor()
	// experimentresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	experimentresult.DefaultUpdatedAt = experimentresultDescUpdatedAt.Default.(func() time.Time)
	// experimentresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	experimentresult.UpdateDefaultUpdatedAt = experimentresultDescUpdatedAt.UpdateDefault.(func() time.Time)
	exposureFields := schema.Exposure{}.Fields()
	_ = exposureFields
	// exposureDescCreatedAt is the schema descriptor for created_at field.
	exposureDescCreatedAt := exposureFields[4].Descriptor()
	// exposure.DefaultCreatedAt holds the default value on creation for the created_at field.
	exposure.DefaultCreatedAt = exposureDescCreatedAt.Default.(func() time.Time)
	// exposureDescLastSeenAt is the schema descriptor for last_seen_at field.
	exposureDescLastSeenAt := exposureFields[5].Descriptor()
	// exposure.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	exposure.DefaultLastSeenAt = exposureDescLastSeenAt.Default.(func() time.Time)
	exposurerollupFields := schema.ExposureRollup{}.Fields()
	_ = exposurerollupFields
	// exposurerollupDescExperimentName is the schema descriptor for experiment_name field.
	exposurerollupDescExperimentName := exposurerollupFields[3].Descriptor()
	// exposurerollup.ExperimentNameValidator is a validator for the "experiment_name" field. It is called by the builders before save.
	exposurerollup.ExperimentNameValidator = exposurerollupDescExperimentName.Validators[0].(func(string) error)
	// exposurerollupDescExposures is the schema descriptor for exposures field.
	exposurerollupDescExposures := exposurerollupFields[5].Descriptor()
	// exposurerollup.ExposuresValidator is a validator for the "exposures" field. It is called by the builders before save.
	exposurerollup.ExposuresValidator = exposurerollupDescExposures.Validators[0].(func(int) error)
	// exposurerollupDescConversions is the schema descriptor for conversions field.
	exposurerollupDescConversions := exposurerollupFields[6].Descriptor()
	// exposurerollup.ConversionsValidator is a validator for the "conversions" field. It is called by the builders before save.
	exposurerollup.ConversionsValidator = exposurerollupDescConversions.Validators[0].(func(int) error)
	// exposurerollupDescCreatedAt is the schema descriptor for created_at field.
	exposurerollupDescCreatedAt := exposurerollupFields[7].Descriptor()
	// exposurerollup.DefaultCreatedAt holds the default value on creation for the created_at field.
	exposurerollup.DefaultCreatedAt = exposurerollupDescCreatedAt.Default.(func() time.Time)
	// exposurerollupDescUpdatedAt is the schema descriptor for updated_at field.
	exposurerollupDescUpdatedAt := exposurerollupFields[8].Descriptor()
	// exposurerollup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	exposurerollup.DefaultUpdatedAt = exposurerollupDescUpdatedAt.Default.(func() time.Time)
	// exposurerollup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	exposurerollup.UpdateDefaultUpdatedAt = exposurerollupDescUpdatedAt.UpdateDefault.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescName is the schema descriptor for name field.
	planDescName := planFields[0].Descriptor()
	// plan.NameValidator is a validator for the "name" field. It is called by the builders before save.
	plan.NameValidator = func() func(string) error {
		validators := planDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// planDescPriceInCents is the schema descriptor for price_in_cents field.
	planDescPriceInCents := planFields[1].Descriptor()
	// plan.PriceInCentsValidator is a validator for the "price_in_cents" field. It is called by the builders before save.
	plan.PriceInCentsValidator = planDescPriceInCents.Validators[0].(func(int) error)
	// planDescMaxSubjectsPerExperiment is the schema descriptor for max_subjects_per_experiment field.
	planDescMaxSubjectsPerExperiment := planFields[2].Descriptor()
	// plan.MaxSubjectsPerExperimentValidator is a validator for the "max_subjects_per_experiment" field. It is called by the builders before save.
	plan.MaxSubjectsPerExperimentValidator = planDescMaxSubjectsPerExperiment.Validators[0].(func(int) error)
	// planDescMaxActiveExperiments is the schema descriptor for max_active_experiments field.
	planDescMaxActiveExperiments := planFields[3].Descriptor()
	// plan.MaxActiveExperimentsValidator is a validator for the "max_active_experiments" field. It is called by the builders before save.
	plan.MaxActiveExperimentsValidator = planDescMaxActiveExperiments.Validators[0].(func(int) error)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[4].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	// planDescUpdatedAt is the schema descriptor for updated_at field.
	planDescUpdatedAt := planFields[5].Descriptor()
	// plan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plan.DefaultUpdatedAt = planDescUpdatedAt.Default.(func() time.Time)
	// plan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plan.UpdateDefaultUpdatedAt = planDescUpdatedAt.UpdateDefault.(func() time.Time)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[1].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = func() func(string) error {
		validators := subjectDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectFields[5].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	// subjectDescUpdatedAt is the schema descriptor for updated_at field.
	subjectDescUpdatedAt := subjectFields[6].Descriptor()
	// subject.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subject.DefaultUpdatedAt = subjectDescUpdatedAt.Default.(func() time.Time)
	// subject.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subject.UpdateDefaultUpdatedAt = subjectDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[4].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
