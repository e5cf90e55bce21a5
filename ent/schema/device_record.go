package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DeviceRecord is the on-device key/value slot holding the serialized
// progress state. There is one row per storage key.
type DeviceRecord struct {
	ent.Schema
}

func (DeviceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Fixed storage key"),
		field.Bytes("payload").
			Comment("Serialized progress state"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
