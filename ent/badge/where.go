// Code generated by ent, DO NOT EDIT.

package badge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fika/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldID, id))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldBadgeID, v))
}

// Icon applies equality check predicate on the "icon" field. It's identical to IconEQ.
func Icon(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldIcon, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldDescription, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldSortOrder, v))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldBadgeID, vs...))
}

// BadgeIDGT applies the GT predicate on the "badge_id" field.
func BadgeIDGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldBadgeID, v))
}

// BadgeIDGTE applies the GTE predicate on the "badge_id" field.
func BadgeIDGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldBadgeID, v))
}

// BadgeIDLT applies the LT predicate on the "badge_id" field.
func BadgeIDLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldBadgeID, v))
}

// BadgeIDLTE applies the LTE predicate on the "badge_id" field.
func BadgeIDLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldBadgeID, v))
}

// BadgeIDContains applies the Contains predicate on the "badge_id" field.
func BadgeIDContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldBadgeID, v))
}

// BadgeIDHasPrefix applies the HasPrefix predicate on the "badge_id" field.
func BadgeIDHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldBadgeID, v))
}

// BadgeIDHasSuffix applies the HasSuffix predicate on the "badge_id" field.
func BadgeIDHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldBadgeID, v))
}

// BadgeIDEqualFold applies the EqualFold predicate on the "badge_id" field.
func BadgeIDEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldBadgeID, v))
}

// BadgeIDContainsFold applies the ContainsFold predicate on the "badge_id" field.
func BadgeIDContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldBadgeID, v))
}

// IconEQ applies the EQ predicate on the "icon" field.
func IconEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldIcon, v))
}

// IconNEQ applies the NEQ predicate on the "icon" field.
func IconNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldIcon, v))
}

// IconIn applies the In predicate on the "icon" field.
func IconIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldIcon, vs...))
}

// IconNotIn applies the NotIn predicate on the "icon" field.
func IconNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldIcon, vs...))
}

// IconGT applies the GT predicate on the "icon" field.
func IconGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldIcon, v))
}

// IconGTE applies the GTE predicate on the "icon" field.
func IconGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldIcon, v))
}

// IconLT applies the LT predicate on the "icon" field.
func IconLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldIcon, v))
}

// IconLTE applies the LTE predicate on the "icon" field.
func IconLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldIcon, v))
}

// IconContains applies the Contains predicate on the "icon" field.
func IconContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldIcon, v))
}

// IconHasPrefix applies the HasPrefix predicate on the "icon" field.
func IconHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldIcon, v))
}

// IconHasSuffix applies the HasSuffix predicate on the "icon" field.
func IconHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldIcon, v))
}

// IconEqualFold applies the EqualFold predicate on the "icon" field.
func IconEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldIcon, v))
}

// IconContainsFold applies the ContainsFold predicate on the "icon" field.
func IconContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldIcon, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldCategory, vs...))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldSortOrder, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.NotPredicates(p))
}
