// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Badge is the predicate function for badge builders.
type Badge func(*sql.Selector)

// DeviceRecord is the predicate function for devicerecord builders.
type DeviceRecord func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicScore is the predicate function for topicscore builders.
type TopicScore func(*sql.Selector)

// UserBadge is the predicate function for userbadge builders.
type UserBadge func(*sql.Selector)

// WeeklyGoal is the predicate function for weeklygoal builders.
type WeeklyGoal func(*sql.Selector)
