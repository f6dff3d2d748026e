package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AssessmentEvent records completion of the initial skill assessment.
// The flow runs at most once per profile.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_level").
			NotEmpty().
			Comment("beginner, intermediate, or advanced"),
		field.Int("score").Default(0),
	}
}
