package storage

import (
	"context"

	"github.com/valkey-io/valkey-go"
)

// ValkeyBackend keeps a settings record as a hash with the "temp_unit" field
type ValkeyBackend struct {
	client valkey.Client
	prefix string
}

// NewValkeyBackend prefix is optional, it lets several bots share one server
func NewValkeyBackend(client valkey.Client, prefix string) *ValkeyBackend {
	return &ValkeyBackend{client: client, prefix: prefix}
}

// DialValkey connects to a single Valkey (or Redis) server
func DialValkey(addr, prefix string) (*ValkeyBackend, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, err
	}
	return NewValkeyBackend(client, prefix), nil
}

func (b *ValkeyBackend) GetTempUnit(ctx context.Context, owner int64) (string, bool, error) {
	cmd := b.client.B().Hget().Key(b.recordKey(owner)).Field(fieldTempUnit).Build()
	code, err := b.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return code, true, nil
}

func (b *ValkeyBackend) PutTempUnit(ctx context.Context, owner int64, code string) error {
	cmd := b.client.B().Hset().Key(b.recordKey(owner)).FieldValue().FieldValue(fieldTempUnit, code).Build()
	return b.client.Do(ctx, cmd).Error()
}

func (b *ValkeyBackend) Close() error {
	b.client.Close()
	return nil
}

func (b *ValkeyBackend) recordKey(owner int64) string {
	return b.prefix + PartitionKey(owner) + ":" + SortKey
}

var _ Backend = (*ValkeyBackend)(nil)
