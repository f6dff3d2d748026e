// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/charlieanna/idlecampus/ent/predicate"
	"github.com/charlieanna/idlecampus/ent/solutionevent"
)

// SolutionEventUpdate is the builder for updating SolutionEvent entities.
type SolutionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SolutionEventMutation
}

// Where appends a list predicates to the SolutionEventUpdate builder.
func (_u *SolutionEventUpdate) Where(ps ...predicate.SolutionEvent) *SolutionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *SolutionEventUpdate) SetChallengeID(v string) *SolutionEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *SolutionEventUpdate) SetNillableChallengeID(v *string) *SolutionEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// Mutation returns the SolutionEventMutation object of the builder.
func (_u *SolutionEventUpdate) Mutation() *SolutionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolutionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolutionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionEventUpdate) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := solutionevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "SolutionEvent.challenge_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SolutionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solutionevent.Table, solutionevent.Columns, sqlgraph.NewFieldSpec(solutionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(solutionevent.FieldChallengeID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solutionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolutionEventUpdateOne is the builder for updating a single SolutionEvent entity.
type SolutionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolutionEventMutation
}

// SetChallengeID sets the "challenge_id" field.
func (_u *SolutionEventUpdateOne) SetChallengeID(v string) *SolutionEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *SolutionEventUpdateOne) SetNillableChallengeID(v *string) *SolutionEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// Mutation returns the SolutionEventMutation object of the builder.
func (_u *SolutionEventUpdateOne) Mutation() *SolutionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SolutionEventUpdate builder.
func (_u *SolutionEventUpdateOne) Where(ps ...predicate.SolutionEvent) *SolutionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolutionEventUpdateOne) Select(field string, fields ...string) *SolutionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolutionEvent entity.
func (_u *SolutionEventUpdateOne) Save(ctx context.Context) (*SolutionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionEventUpdateOne) SaveX(ctx context.Context) *SolutionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolutionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionEventUpdateOne) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := solutionevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "SolutionEvent.challenge_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SolutionEventUpdateOne) sqlSave(ctx context.Context) (_node *SolutionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solutionevent.Table, solutionevent.Columns, sqlgraph.NewFieldSpec(solutionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolutionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solutionevent.FieldID)
		for _, f := range fields {
			if !solutionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solutionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(solutionevent.FieldChallengeID, field.TypeString, value)
	}
	_node = &SolutionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solutionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
