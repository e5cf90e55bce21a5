// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/predicate"
	"github.com/abhisek/fika/ent/topicscore"
)

// TopicScoreUpdate is the builder for updating TopicScore entities.
type TopicScoreUpdate struct {
	config
	hooks    []Hook
	mutation *TopicScoreMutation
}

// Where appends a list predicates to the TopicScoreUpdate builder.
func (_u *TopicScoreUpdate) Where(ps ...predicate.TopicScore) *TopicScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicScoreUpdate) SetUpdatedAt(v time.Time) *TopicScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TopicScoreUpdate) SetScore(v int) *TopicScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TopicScoreUpdate) SetNillableScore(v *int) *TopicScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TopicScoreUpdate) AddScore(v int) *TopicScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *TopicScoreUpdate) SetBestScore(v int) *TopicScoreUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *TopicScoreUpdate) SetNillableBestScore(v *int) *TopicScoreUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *TopicScoreUpdate) AddBestScore(v int) *TopicScoreUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicScoreUpdate) SetAttempts(v int) *TopicScoreUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicScoreUpdate) SetNillableAttempts(v *int) *TopicScoreUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicScoreUpdate) AddAttempts(v int) *TopicScoreUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *TopicScoreUpdate) SetXpEarned(v int) *TopicScoreUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *TopicScoreUpdate) SetNillableXpEarned(v *int) *TopicScoreUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *TopicScoreUpdate) AddXpEarned(v int) *TopicScoreUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetLastAttempted sets the "last_attempted" field.
func (_u *TopicScoreUpdate) SetLastAttempted(v time.Time) *TopicScoreUpdate {
	_u.mutation.SetLastAttempted(v)
	return _u
}

// SetNillableLastAttempted sets the "last_attempted" field if the given value is not nil.
func (_u *TopicScoreUpdate) SetNillableLastAttempted(v *time.Time) *TopicScoreUpdate {
	if v != nil {
		_u.SetLastAttempted(*v)
	}
	return _u
}

// ClearLastAttempted clears the value of the "last_attempted" field.
func (_u *TopicScoreUpdate) ClearLastAttempted() *TopicScoreUpdate {
	_u.mutation.ClearLastAttempted()
	return _u
}

// Mutation returns the TopicScoreMutation object of the builder.
func (_u *TopicScoreUpdate) Mutation() *TopicScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicScoreUpdate) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := topicscore.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "TopicScore.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BestScore(); ok {
		if err := topicscore.BestScoreValidator(v); err != nil {
			return &ValidationError{Name: "best_score", err: fmt.Errorf(`ent: validator failed for field "TopicScore.best_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := topicscore.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "TopicScore.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := topicscore.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "TopicScore.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicscore.Table, topicscore.Columns, sqlgraph.NewFieldSpec(topicscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(topicscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(topicscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(topicscore.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(topicscore.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicscore.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicscore.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(topicscore.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(topicscore.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempted(); ok {
		_spec.SetField(topicscore.FieldLastAttempted, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedCleared() {
		_spec.ClearField(topicscore.FieldLastAttempted, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicScoreUpdateOne is the builder for updating a single TopicScore entity.
type TopicScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicScoreMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicScoreUpdateOne) SetUpdatedAt(v time.Time) *TopicScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TopicScoreUpdateOne) SetScore(v int) *TopicScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TopicScoreUpdateOne) SetNillableScore(v *int) *TopicScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TopicScoreUpdateOne) AddScore(v int) *TopicScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *TopicScoreUpdateOne) SetBestScore(v int) *TopicScoreUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *TopicScoreUpdateOne) SetNillableBestScore(v *int) *TopicScoreUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *TopicScoreUpdateOne) AddBestScore(v int) *TopicScoreUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicScoreUpdateOne) SetAttempts(v int) *TopicScoreUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicScoreUpdateOne) SetNillableAttempts(v *int) *TopicScoreUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicScoreUpdateOne) AddAttempts(v int) *TopicScoreUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *TopicScoreUpdateOne) SetXpEarned(v int) *TopicScoreUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *TopicScoreUpdateOne) SetNillableXpEarned(v *int) *TopicScoreUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *TopicScoreUpdateOne) AddXpEarned(v int) *TopicScoreUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetLastAttempted sets the "last_attempted" field.
func (_u *TopicScoreUpdateOne) SetLastAttempted(v time.Time) *TopicScoreUpdateOne {
	_u.mutation.SetLastAttempted(v)
	return _u
}

// SetNillableLastAttempted sets the "last_attempted" field if the given value is not nil.
func (_u *TopicScoreUpdateOne) SetNillableLastAttempted(v *time.Time) *TopicScoreUpdateOne {
	if v != nil {
		_u.SetLastAttempted(*v)
	}
	return _u
}

// ClearLastAttempted clears the value of the "last_attempted" field.
func (_u *TopicScoreUpdateOne) ClearLastAttempted() *TopicScoreUpdateOne {
	_u.mutation.ClearLastAttempted()
	return _u
}

// Mutation returns the TopicScoreMutation object of the builder.
func (_u *TopicScoreUpdateOne) Mutation() *TopicScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicScoreUpdate builder.
func (_u *TopicScoreUpdateOne) Where(ps ...predicate.TopicScore) *TopicScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicScoreUpdateOne) Select(field string, fields ...string) *TopicScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicScore entity.
func (_u *TopicScoreUpdateOne) Save(ctx context.Context) (*TopicScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicScoreUpdateOne) SaveX(ctx context.Context) *TopicScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := topicscore.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "TopicScore.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BestScore(); ok {
		if err := topicscore.BestScoreValidator(v); err != nil {
			return &ValidationError{Name: "best_score", err: fmt.Errorf(`ent: validator failed for field "TopicScore.best_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := topicscore.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "TopicScore.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := topicscore.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "TopicScore.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicScoreUpdateOne) sqlSave(ctx context.Context) (_node *TopicScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicscore.Table, topicscore.Columns, sqlgraph.NewFieldSpec(topicscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicscore.FieldID)
		for _, f := range fields {
			if !topicscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicscore.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(topicscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(topicscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(topicscore.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(topicscore.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicscore.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicscore.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(topicscore.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(topicscore.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempted(); ok {
		_spec.SetField(topicscore.FieldLastAttempted, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedCleared() {
		_spec.ClearField(topicscore.FieldLastAttempted, field.TypeTime)
	}
	_node = &TopicScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
