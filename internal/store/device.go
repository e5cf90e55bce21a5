package store

import (
	"context"
	"fmt"

	"github.com/abhisek/fika/ent"
	"github.com/abhisek/fika/ent/devicerecord"
)

// deviceRepo implements DeviceRepo using the ent client.
type deviceRepo struct {
	client *ent.Client
}

func (r *deviceRepo) Load(ctx context.Context, key string) ([]byte, error) {
	rec, err := r.client.DeviceRecord.Query().
		Where(devicerecord.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query device record %q: %w", key, err)
	}
	return rec.Payload, nil
}

func (r *deviceRepo) Save(ctx context.Context, key string, payload []byte) error {
	n, err := r.client.DeviceRecord.Update().
		Where(devicerecord.Key(key)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update device record %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.DeviceRecord.Create().
		SetKey(key).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create device record %q: %w", key, err)
	}
	return nil
}

func (r *deviceRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeviceRecord.Delete().
		Where(devicerecord.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete device record %q: %w", key, err)
	}
	return nil
}
