package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Account holds the schema definition for the Account entity.
// An account is the billing unit: it owns the plan, the users, and the
// subject pool shared by those users' experiments.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.Int("plan_id").
			Comment("Plan this account is subscribed to"),
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

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("accounts").
			Field("plan_id").
			Unique().
			Required().
			Comment("Subscribed plan"),
		edge.To("users", User.Type).
			Comment("Users belonging to this account"),
		edge.To("subjects", Subject.Type).
			Comment("Subjects are account-wide so one person can appear across experiments"),
	}
}
