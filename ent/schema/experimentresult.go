package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExperimentResult holds the schema definition for the ExperimentResult
// entity: the persisted snapshot of the last calculator run for one
// (experiment, scope) pair. Re-running overwrites it.
type ExperimentResult struct {
	ent.Schema
}

// Fields of the ExperimentResult.
func (ExperimentResult) Fields() []ent.Field {
	return []ent.Field{
		field.Int("experiment_id").
			Comment("Experiment the snapshot belongs to"),
		field.Enum("scope").
			GoType(domain.Scope("")).
			Comment("Isolation partition"),
		field.String("version").
			MaxLen(10).
			Comment("Snapshot schema version tag"),
		field.JSON("fields", json.RawMessage{}).
			Comment("Rendered result payload"),
		field.Time("ran_at").
			Comment("When the calculator produced this snapshot"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Indexes of the ExperimentResult.
func (ExperimentResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("experiment_id", "scope").Unique(),
		index.Fields("ran_at"),
	}
}
