package storage

import (
	"context"

	"github.com/asdine/storm"
	"github.com/asdine/storm/codec/msgpack"
	"github.com/pkg/errors"
)

type settingsRecord struct {
	TempUnit string `msgpack:"temp_unit" json:"temp_unit"`
}

// BoltBackend keeps every user in its own bucket named by the partition key,
// the record itself is saved under the SortKey
type BoltBackend struct {
	db *storm.DB
}

// OpenBolt opens (or creates) the database file
func OpenBolt(path string) (*BoltBackend, error) {
	db, err := storm.Open(path, storm.Codec(msgpack.Codec))
	if err != nil {
		return nil, errors.Wrapf(err, "can't open the database %s", path)
	}
	return NewBoltBackend(db), nil
}

func NewBoltBackend(db *storm.DB) *BoltBackend {
	return &BoltBackend{db: db}
}

func (b *BoltBackend) GetTempUnit(_ context.Context, owner int64) (string, bool, error) {
	var rec settingsRecord
	if err := b.db.Get(PartitionKey(owner), SortKey, &rec); err != nil {
		if err == storm.ErrNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.TempUnit, true, nil
}

func (b *BoltBackend) PutTempUnit(_ context.Context, owner int64, code string) error {
	return b.db.Set(PartitionKey(owner), SortKey, &settingsRecord{TempUnit: code})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}

var _ Backend = (*BoltBackend)(nil)
