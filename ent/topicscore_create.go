// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/topicscore"
)

// TopicScoreCreate is the builder for creating a TopicScore entity.
type TopicScoreCreate struct {
	config
	mutation *TopicScoreMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicScoreCreate) SetCreatedAt(v time.Time) *TopicScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicScoreCreate) SetNillableCreatedAt(v *time.Time) *TopicScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicScoreCreate) SetUpdatedAt(v time.Time) *TopicScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TopicScoreCreate) SetNillableUpdatedAt(v *time.Time) *TopicScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TopicScoreCreate) SetUserID(v string) *TopicScoreCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *TopicScoreCreate) SetTopicID(v string) *TopicScoreCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *TopicScoreCreate) SetScore(v int) *TopicScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *TopicScoreCreate) SetBestScore(v int) *TopicScoreCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TopicScoreCreate) SetAttempts(v int) *TopicScoreCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *TopicScoreCreate) SetXpEarned(v int) *TopicScoreCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *TopicScoreCreate) SetNillableXpEarned(v *int) *TopicScoreCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetLastAttempted sets the "last_attempted" field.
func (_c *TopicScoreCreate) SetLastAttempted(v time.Time) *TopicScoreCreate {
	_c.mutation.SetLastAttempted(v)
	return _c
}

// SetNillableLastAttempted sets the "last_attempted" field if the given value is not nil.
func (_c *TopicScoreCreate) SetNillableLastAttempted(v *time.Time) *TopicScoreCreate {
	if v != nil {
		_c.SetLastAttempted(*v)
	}
	return _c
}

// Mutation returns the TopicScoreMutation object of the builder.
func (_c *TopicScoreCreate) Mutation() *TopicScoreMutation {
	return _c.mutation
}

// Save creates the TopicScore in the database.
func (_c *TopicScoreCreate) Save(ctx context.Context) (*TopicScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicScoreCreate) SaveX(ctx context.Context) *TopicScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicScoreCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topicscore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := topicscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := topicscore.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicScoreCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicScore.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TopicScore.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicScore.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := topicscore.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicScore.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicScore.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := topicscore.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicScore.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TopicScore.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := topicscore.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "TopicScore.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "TopicScore.best_score"`)}
	}
	if v, ok := _c.mutation.BestScore(); ok {
		if err := topicscore.BestScoreValidator(v); err != nil {
			return &ValidationError{Name: "best_score", err: fmt.Errorf(`ent: validator failed for field "TopicScore.best_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TopicScore.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := topicscore.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "TopicScore.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "TopicScore.xp_earned"`)}
	}
	if v, ok := _c.mutation.XpEarned(); ok {
		if err := topicscore.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "TopicScore.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_c *TopicScoreCreate) sqlSave(ctx context.Context) (*TopicScore, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicScoreCreate) createSpec() (*TopicScore, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicscore.Table, sqlgraph.NewFieldSpec(topicscore.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topicscore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topicscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicscore.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(topicscore.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(topicscore.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(topicscore.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(topicscore.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(topicscore.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.LastAttempted(); ok {
		_spec.SetField(topicscore.FieldLastAttempted, field.TypeTime, value)
		_node.LastAttempted = &value
	}
	return _node, _spec
}

// TopicScoreCreateBulk is the builder for creating many TopicScore entities in bulk.
type TopicScoreCreateBulk struct {
	config
	err      error
	builders []*TopicScoreCreate
}

// Save creates the TopicScore entities in the database.
func (_c *TopicScoreCreateBulk) Save(ctx context.Context) ([]*TopicScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicScoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TopicScoreCreateBulk) SaveX(ctx context.Context) []*TopicScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
