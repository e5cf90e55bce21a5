// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// WeeklyGoalCreate is the builder for creating a WeeklyGoal entity.
type WeeklyGoalCreate struct {
	config
	mutation *WeeklyGoalMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeeklyGoalCreate) SetCreatedAt(v time.Time) *WeeklyGoalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WeeklyGoalCreate) SetNillableCreatedAt(v *time.Time) *WeeklyGoalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WeeklyGoalCreate) SetUpdatedAt(v time.Time) *WeeklyGoalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WeeklyGoalCreate) SetNillableUpdatedAt(v *time.Time) *WeeklyGoalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WeeklyGoalCreate) SetUserID(v string) *WeeklyGoalCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWeekStart sets the "week_start" field.
func (_c *WeeklyGoalCreate) SetWeekStart(v time.Time) *WeeklyGoalCreate {
	_c.mutation.SetWeekStart(v)
	return _c
}

// SetTargetXp sets the "target_xp" field.
func (_c *WeeklyGoalCreate) SetTargetXp(v int) *WeeklyGoalCreate {
	_c.mutation.SetTargetXp(v)
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *WeeklyGoalCreate) SetXpEarned(v int) *WeeklyGoalCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *WeeklyGoalCreate) SetNillableXpEarned(v *int) *WeeklyGoalCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetTopicsCompleted sets the "topics_completed" field.
func (_c *WeeklyGoalCreate) SetTopicsCompleted(v int) *WeeklyGoalCreate {
	_c.mutation.SetTopicsCompleted(v)
	return _c
}

// SetNillableTopicsCompleted sets the "topics_completed" field if the given value is not nil.
func (_c *WeeklyGoalCreate) SetNillableTopicsCompleted(v *int) *WeeklyGoalCreate {
	if v != nil {
		_c.SetTopicsCompleted(*v)
	}
	return _c
}

// Mutation returns the WeeklyGoalMutation object of the builder.
func (_c *WeeklyGoalCreate) Mutation() *WeeklyGoalMutation {
	return _c.mutation
}

// Save creates the WeeklyGoal in the database.
func (_c *WeeklyGoalCreate) Save(ctx context.Context) (*WeeklyGoal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeeklyGoalCreate) SaveX(ctx context.Context) *WeeklyGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyGoalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyGoalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeeklyGoalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := weeklygoal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := weeklygoal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := weeklygoal.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
	if _, ok := _c.mutation.TopicsCompleted(); !ok {
		v := weeklygoal.DefaultTopicsCompleted
		_c.mutation.SetTopicsCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeeklyGoalCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WeeklyGoal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WeeklyGoal.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WeeklyGoal.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := weeklygoal.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeekStart(); !ok {
		return &ValidationError{Name: "week_start", err: errors.New(`ent: missing required field "WeeklyGoal.week_start"`)}
	}
	if _, ok := _c.mutation.TargetXp(); !ok {
		return &ValidationError{Name: "target_xp", err: errors.New(`ent: missing required field "WeeklyGoal.target_xp"`)}
	}
	if v, ok := _c.mutation.TargetXp(); ok {
		if err := weeklygoal.TargetXpValidator(v); err != nil {
			return &ValidationError{Name: "target_xp", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.target_xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "WeeklyGoal.xp_earned"`)}
	}
	if v, ok := _c.mutation.XpEarned(); ok {
		if err := weeklygoal.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.xp_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicsCompleted(); !ok {
		return &ValidationError{Name: "topics_completed", err: errors.New(`ent: missing required field "WeeklyGoal.topics_completed"`)}
	}
	if v, ok := _c.mutation.TopicsCompleted(); ok {
		if err := weeklygoal.TopicsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "topics_completed", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.topics_completed": %w`, err)}
		}
	}
	return nil
}

func (_c *WeeklyGoalCreate) sqlSave(ctx context.Context) (*WeeklyGoal, error) {
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

func (_c *WeeklyGoalCreate) createSpec() (*WeeklyGoal, *sqlgraph.CreateSpec) {
	var (
		_node = &WeeklyGoal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weeklygoal.Table, sqlgraph.NewFieldSpec(weeklygoal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weeklygoal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklygoal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(weeklygoal.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WeekStart(); ok {
		_spec.SetField(weeklygoal.FieldWeekStart, field.TypeTime, value)
		_node.WeekStart = value
	}
	if value, ok := _c.mutation.TargetXp(); ok {
		_spec.SetField(weeklygoal.FieldTargetXp, field.TypeInt, value)
		_node.TargetXp = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(weeklygoal.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.TopicsCompleted(); ok {
		_spec.SetField(weeklygoal.FieldTopicsCompleted, field.TypeInt, value)
		_node.TopicsCompleted = value
	}
	return _node, _spec
}

// WeeklyGoalCreateBulk is the builder for creating many WeeklyGoal entities in bulk.
type WeeklyGoalCreateBulk struct {
	config
	err      error
	builders []*WeeklyGoalCreate
}

// Save creates the WeeklyGoal entities in the database.
func (_c *WeeklyGoalCreateBulk) Save(ctx context.Context) ([]*WeeklyGoal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeeklyGoal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeeklyGoalMutation)
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
func (_c *WeeklyGoalCreateBulk) SaveX(ctx context.Context) []*WeeklyGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyGoalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyGoalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
