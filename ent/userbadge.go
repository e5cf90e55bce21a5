// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fika/ent/userbadge"
)

// UserBadge is the model entity for the UserBadge schema.
type UserBadge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BadgeID holds the value of the "badge_id" field.
	BadgeID string `json:"badge_id,omitempty"`
	// UnlockedAt holds the value of the "unlocked_at" field.
	UnlockedAt   time.Time `json:"unlocked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserBadge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldID:
			values[i] = new(sql.NullInt64)
		case userbadge.FieldUserID, userbadge.FieldBadgeID:
			values[i] = new(sql.NullString)
		case userbadge.FieldUnlockedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserBadge fields.
func (_m *UserBadge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userbadge.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userbadge.FieldBadgeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_id", values[i])
			} else if value.Valid {
				_m.BadgeID = value.String
			}
		case userbadge.FieldUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_at", values[i])
			} else if value.Valid {
				_m.UnlockedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserBadge.
// This includes values selected through modifiers, order, etc.
func (_m *UserBadge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserBadge.
// Note that you need to call UserBadge.Unwrap() before calling this method if this UserBadge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserBadge) Update() *UserBadgeUpdateOne {
	return NewUserBadgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserBadge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserBadge) Unwrap() *UserBadge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserBadge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserBadge) String() string {
	var builder strings.Builder
	builder.WriteString("UserBadge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("badge_id=")
	builder.WriteString(_m.BadgeID)
	builder.WriteString(", ")
	builder.WriteString("unlocked_at=")
	builder.WriteString(_m.UnlockedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserBadges is a parsable slice of UserBadge.
type UserBadges []*UserBadge
