// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/charlieanna/idlecampus/ent/achievementevent"
	"github.com/charlieanna/idlecampus/ent/assessmentevent"
	"github.com/charlieanna/idlecampus/ent/completionevent"
	"github.com/charlieanna/idlecampus/ent/hintevent"
	"github.com/charlieanna/idlecampus/ent/schema"
	"github.com/charlieanna/idlecampus/ent/snapshot"
	"github.com/charlieanna/idlecampus/ent/solutionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescRarity is the schema descriptor for rarity field.
	achievementeventDescRarity := achievementeventFields[1].Descriptor()
	// achievementevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	achievementevent.RarityValidator = achievementeventDescRarity.Validators[0].(func(string) error)
	// achievementeventDescCategory is the schema descriptor for category field.
	achievementeventDescCategory := achievementeventFields[2].Descriptor()
	// achievementevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	achievementevent.CategoryValidator = achievementeventDescCategory.Validators[0].(func(string) error)
	// achievementeventDescXpReward is the schema descriptor for xp_reward field.
	achievementeventDescXpReward := achievementeventFields[3].Descriptor()
	// achievementevent.DefaultXpReward holds the default value on creation for the xp_reward field.
	achievementevent.DefaultXpReward = achievementeventDescXpReward.Default.(int)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSkillLevel is the schema descriptor for skill_level field.
	assessmenteventDescSkillLevel := assessmenteventFields[0].Descriptor()
	// assessmentevent.SkillLevelValidator is a validator for the "skill_level" field. It is called by the builders before save.
	assessmentevent.SkillLevelValidator = assessmenteventDescSkillLevel.Validators[0].(func(string) error)
	// assessmenteventDescScore is the schema descriptor for score field.
	assessmenteventDescScore := assessmenteventFields[1].Descriptor()
	// assessmentevent.DefaultScore holds the default value on creation for the score field.
	assessmentevent.DefaultScore = assessmenteventDescScore.Default.(int)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescChallengeID is the schema descriptor for challenge_id field.
	completioneventDescChallengeID := completioneventFields[0].Descriptor()
	// completionevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	completionevent.ChallengeIDValidator = completioneventDescChallengeID.Validators[0].(func(string) error)
	// completioneventDescLevel is the schema descriptor for level field.
	completioneventDescLevel := completioneventFields[1].Descriptor()
	// completionevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	completionevent.LevelValidator = func() func(int) error {
		validators := completioneventDescLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(level int) error {
			for _, fn := range fns {
				if err := fn(level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// completioneventDescScore is the schema descriptor for score field.
	completioneventDescScore := completioneventFields[2].Descriptor()
	// completionevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	completionevent.ScoreValidator = func() func(int) error {
		validators := completioneventDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// completioneventDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	completioneventDescTimeSpentMinutes := completioneventFields[3].Descriptor()
	// completionevent.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	completionevent.DefaultTimeSpentMinutes = completioneventDescTimeSpentMinutes.Default.(int)
	// completioneventDescHintsUsed is the schema descriptor for hints_used field.
	completioneventDescHintsUsed := completioneventFields[4].Descriptor()
	// completionevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	completionevent.DefaultHintsUsed = completioneventDescHintsUsed.Default.(int)
	// completioneventDescSolutionViewed is the schema descriptor for solution_viewed field.
	completioneventDescSolutionViewed := completioneventFields[5].Descriptor()
	// completionevent.DefaultSolutionViewed holds the default value on creation for the solution_viewed field.
	completionevent.DefaultSolutionViewed = completioneventDescSolutionViewed.Default.(bool)
	// completioneventDescXpEarned is the schema descriptor for xp_earned field.
	completioneventDescXpEarned := completioneventFields[6].Descriptor()
	// completionevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	completionevent.DefaultXpEarned = completioneventDescXpEarned.Default.(int)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescChallengeID is the schema descriptor for challenge_id field.
	hinteventDescChallengeID := hinteventFields[0].Descriptor()
	// hintevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	hintevent.ChallengeIDValidator = hinteventDescChallengeID.Validators[0].(func(string) error)
	// hinteventDescHintsTotal is the schema descriptor for hints_total field.
	hinteventDescHintsTotal := hinteventFields[1].Descriptor()
	// hintevent.DefaultHintsTotal holds the default value on creation for the hints_total field.
	hintevent.DefaultHintsTotal = hinteventDescHintsTotal.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	solutioneventMixin := schema.SolutionEvent{}.Mixin()
	solutioneventMixinFields0 := solutioneventMixin[0].Fields()
	_ = solutioneventMixinFields0
	solutioneventFields := schema.SolutionEvent{}.Fields()
	_ = solutioneventFields
	// solutioneventDescTimestamp is the schema descriptor for timestamp field.
	solutioneventDescTimestamp := solutioneventMixinFields0[1].Descriptor()
	// solutionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	solutionevent.DefaultTimestamp = solutioneventDescTimestamp.Default.(func() time.Time)
	// solutioneventDescChallengeID is the schema descriptor for challenge_id field.
	solutioneventDescChallengeID := solutioneventFields[0].Descriptor()
	// solutionevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	solutionevent.ChallengeIDValidator = solutioneventDescChallengeID.Validators[0].(func(string) error)
}
