// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeInt},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "accounts_plans_accounts",
				Columns:    []*schema.Column{AccountsColumns[3]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CohortsColumns holds the columns for the "cohorts" table.
	CohortsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "last_production_exposure_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_staging_exposure_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_production_conversion_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_staging_conversion_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "experiment_id", Type: field.TypeInt},
	}
	// CohortsTable holds the schema information for the "cohorts" table.
	CohortsTable = &schema.Table{
		Name:       "cohorts",
		Columns:    CohortsColumns,
		PrimaryKey: []*schema.Column{CohortsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cohorts_experiments_cohorts",
				Columns:    []*schema.Column{CohortsColumns[8]},
				RefColumns: []*schema.Column{ExperimentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cohort_experiment_id_name",
				Unique:  true,
				Columns: []*schema.Column{CohortsColumns[8], CohortsColumns[1]},
			},
		},
	}
	// ConversionsColumns holds the columns for the "conversions" table.
	ConversionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"production", "staging"}},
		{Name: "value", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "exposure_id", Type: field.TypeInt},
	}
	// ConversionsTable holds the schema information for the "conversions" table.
	ConversionsTable = &schema.Table{
		Name:       "conversions",
		Columns:    ConversionsColumns,
		PrimaryKey: []*schema.Column{ConversionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversions_exposures_conversions",
				Columns:    []*schema.Column{ConversionsColumns[5]},
				RefColumns: []*schema.Column{ExposuresColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversion_exposure_id_scope",
				Unique:  true,
				Columns: []*schema.Column{ConversionsColumns[5], ConversionsColumns[1]},
			},
			{
				Name:    "conversion_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{ConversionsColumns[4]},
			},
		},
	}
	// ExperimentsColumns holds the columns for the "experiments" table.
	ExperimentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "last_activated_at", Type: field.TypeTime},
		{Name: "subjects_counter_production", Type: field.TypeInt, Default: 0},
		{Name: "subjects_counter_staging", Type: field.TypeInt, Default: 0},
		{Name: "last_production_exposure_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_staging_exposure_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_production_conversion_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_staging_conversion_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ExperimentsTable holds the schema information for the "experiments" table.
	ExperimentsTable = &schema.Table{
		Name:       "experiments",
		Columns:    ExperimentsColumns,
		PrimaryKey: []*schema.Column{ExperimentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "experiments_users_experiments",
				Columns:    []*schema.Column{ExperimentsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "experiment_user_id_name",
				Unique:  true,
				Columns: []*schema.Column{ExperimentsColumns[12], ExperimentsColumns[1]},
			},
			{
				Name:    "experiment_active",
				Unique:  false,
				Columns: []*schema.Column{ExperimentsColumns[2]},
			},
			{
				Name:    "experiment_last_activated_at",
				Unique:  false,
				Columns: []*schema.Column{ExperimentsColumns[3]},
			},
		},
	}
	// ExperimentResultsColumns holds the columns for the "experiment_results" table.
	ExperimentResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "experiment_id", Type: field.TypeInt},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"production", "staging"}},
		{Name: "version", Type: field.TypeString, Size: 10},
		{Name: "fields", Type: field.TypeJSON},
		{Name: "ran_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExperimentResultsTable holds the schema information for the "experiment_results" table.
	ExperimentResultsTable = &schema.Table{
		Name:       "experiment_results",
		Columns:    ExperimentResultsColumns,
		PrimaryKey: []*schema.Column{ExperimentResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "experimentresult_experiment_id_scope",
				Unique:  true,
				Columns: []*schema.Column{ExperimentResultsColumns[1], ExperimentResultsColumns[2]},
			},
			{
				Name:    "experimentresult_ran_at",
				Unique:  false,
				Columns: []*schema.Column{ExperimentResultsColumns[5]},
			},
		},
	}
	// ExposuresColumns holds the columns for the "exposures" table.
	ExposuresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"production", "staging"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "cohort_id", Type: field.TypeInt},
		{Name: "experiment_id", Type: field.TypeInt},
		{Name: "subject_id", Type: field.TypeInt},
	}
	// ExposuresTable holds the schema information for the "exposures" table.
	ExposuresTable = &schema.Table{
		Name:       "exposures",
		Columns:    ExposuresColumns,
		PrimaryKey: []*schema.Column{ExposuresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "exposures_cohorts_exposures",
				Columns:    []*schema.Column{ExposuresColumns[4]},
				RefColumns: []*schema.Column{CohortsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "exposures_experiments_exposures",
				Columns:    []*schema.Column{ExposuresColumns[5]},
				RefColumns: []*schema.Column{ExperimentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "exposures_subjects_exposures",
				Columns:    []*schema.Column{ExposuresColumns[6]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "exposure_subject_id_experiment_id_scope",
				Unique:  true,
				Columns: []*schema.Column{ExposuresColumns[6], ExposuresColumns[5], ExposuresColumns[1]},
			},
			{
				Name:    "exposure_experiment_id_scope",
				Unique:  false,
				Columns: []*schema.Column{ExposuresColumns[5], ExposuresColumns[1]},
			},
			{
				Name:    "exposure_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{ExposuresColumns[3]},
			},
		},
	}
	// ExposureRollupsColumns holds the columns for the "exposure_rollups" table.
	ExposureRollupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "day", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "experiment_id", Type: field.TypeInt},
		{Name: "experiment_name", Type: field.TypeString},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"production", "staging"}},
		{Name: "exposures", Type: field.TypeInt},
		{Name: "conversions", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExposureRollupsTable holds the schema information for the "exposure_rollups" table.
	ExposureRollupsTable = &schema.Table{
		Name:       "exposure_rollups",
		Columns:    ExposureRollupsColumns,
		PrimaryKey: []*schema.Column{ExposureRollupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exposurerollup_day_experiment_id_scope",
				Unique:  true,
				Columns: []*schema.Column{ExposureRollupsColumns[1], ExposureRollupsColumns[3], ExposureRollupsColumns[5]},
			},
			{
				Name:    "exposurerollup_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExposureRollupsColumns[2]},
			},
			{
				Name:    "exposurerollup_day",
				Unique:  false,
				Columns: []*schema.Column{ExposureRollupsColumns[1]},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 64},
		{Name: "price_in_cents", Type: field.TypeInt},
		{Name: "max_subjects_per_experiment", Type: field.TypeInt},
		{Name: "max_active_experiments", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plan_name",
				Unique:  true,
				Columns: []*schema.Column{PlansColumns[1]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"production", "staging"}},
		{Name: "last_exposure_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_conversion_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subjects_accounts_subjects",
				Columns:    []*schema.Column{SubjectsColumns[7]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subject_account_id_name_scope",
				Unique:  true,
				Columns: []*schema.Column{SubjectsColumns[7], SubjectsColumns[1], SubjectsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Size: 128},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_accounts_users",
				Columns:    []*schema.Column{UsersColumns[5]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_account_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		CohortsTable,
		ConversionsTable,
		ExperimentsTable,
		ExperimentResultsTable,
		ExposuresTable,
		ExposureRollupsTable,
		PlansTable,
		SubjectsTable,
		UsersTable,
	}
)

func init() {
	AccountsTable.ForeignKeys[0].RefTable = PlansTable
	CohortsTable.ForeignKeys[0].RefTable = ExperimentsTable
	ConversionsTable.ForeignKeys[0].RefTable = ExposuresTable
	ExperimentsTable.ForeignKeys[0].RefTable = UsersTable
	ExposuresTable.ForeignKeys[0].RefTable = CohortsTable
	ExposuresTable.ForeignKeys[1].RefTable = ExperimentsTable
	ExposuresTable.ForeignKeys[2].RefTable = SubjectsTable
	SubjectsTable.ForeignKeys[0].RefTable = AccountsTable
	UsersTable.ForeignKeys[0].RefTable = AccountsTable
}
