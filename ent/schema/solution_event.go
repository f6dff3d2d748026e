package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SolutionEvent records that the learner viewed a challenge's reference solution.
// Viewing is sticky: at most one event per challenge matters downstream.
type SolutionEvent struct {
	ent.Schema
}

func (SolutionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SolutionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("challenge_id").NotEmpty(),
	}
}

func (SolutionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("challenge_id"),
	}
}
