// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Cohort is the predicate function for cohort builders.
type Cohort func(*sql.Selector)

// Conversion is the predicate function for conversion builders.
type Conversion func(*sql.Selector)

// Experiment is the predicate function for experiment builders.
type Experiment func(*sql.Selector)

// ExperimentResult is the predicate function for experimentresult builders.
type ExperimentResult func(*sql.Selector)

// Exposure is the predicate function for exposure builders.
type Exposure func(*sql.Selector)

// ExposureRollup is the predicate function for exposurerollup builders.
type ExposureRollup func(*sql.Selector)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
