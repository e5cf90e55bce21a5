// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// WeeklyGoal is the model entity for the WeeklyGoal schema.
type WeeklyGoal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// When the row was first written
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the row was last written
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Local midnight of the week's Monday
	WeekStart time.Time `json:"week_start,omitempty"`
	// TargetXp holds the value of the "target_xp" field.
	TargetXp int `json:"target_xp,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// TopicsCompleted holds the value of the "topics_completed" field.
	TopicsCompleted int `json:"topics_completed,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeeklyGoal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weeklygoal.FieldID, weeklygoal.FieldTargetXp, weeklygoal.FieldXpEarned, weeklygoal.FieldTopicsCompleted:
			values[i] = new(sql.NullInt64)
		case weeklygoal.FieldUserID:
			values[i] = new(sql.NullString)
		case weeklygoal.FieldCreatedAt, weeklygoal.FieldUpdatedAt, weeklygoal.FieldWeekStart:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeeklyGoal fields.
func (_m *WeeklyGoal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weeklygoal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case weeklygoal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case weeklygoal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case weeklygoal.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case weeklygoal.FieldWeekStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field week_start", values[i])
			} else if value.Valid {
				_m.WeekStart = value.Time
			}
		case weeklygoal.FieldTargetXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_xp", values[i])
			} else if value.Valid {
				_m.TargetXp = int(value.Int64)
			}
		case weeklygoal.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		case weeklygoal.FieldTopicsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topics_completed", values[i])
			} else if value.Valid {
				_m.TopicsCompleted = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeeklyGoal.
// This includes values selected through modifiers, order, etc.
func (_m *WeeklyGoal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeeklyGoal.
// Note that you need to call WeeklyGoal.Unwrap() before calling this method if this WeeklyGoal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeeklyGoal) Update() *WeeklyGoalUpdateOne {
	return NewWeeklyGoalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeeklyGoal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeeklyGoal) Unwrap() *WeeklyGoal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeeklyGoal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeeklyGoal) String() string {
	var builder strings.Builder
	builder.WriteString("WeeklyGoal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("week_start=")
	builder.WriteString(_m.WeekStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("target_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetXp))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("topics_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicsCompleted))
	builder.WriteByte(')')
	return builder.String()
}

// WeeklyGoals is a parsable slice of WeeklyGoal.
type WeeklyGoals []*WeeklyGoal
