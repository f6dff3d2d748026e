package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records one markLevelComplete call that passed validation.
// Replayed duplicates are filtered by the engine before they reach the log.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("challenge_id").NotEmpty(),
		field.Int("level").
			Min(1).Max(5).
			Comment("Challenge level 1-5"),
		field.Int("score").
			Min(0).Max(100),
		field.Int("time_spent_minutes").Default(0),
		field.Int("hints_used").Default(0),
		field.Bool("solution_viewed").Default(false),
		field.Int("xp_earned").Default(0),
		field.Bool("passed").
			Comment("score >= 60"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("challenge_id"),
		index.Fields("passed"),
	}
}
