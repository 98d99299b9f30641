package storage

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/w32blaster/bot-current-weather/structs"
)

const (
	// SortKey is the second half of the composite key of a settings record
	SortKey = "settings"

	fieldTempUnit = "temp_unit"
)

// Backend keeps raw "temp_unit" codes under the composite key (PartitionKey(owner), SortKey).
// It knows nothing about their meaning.
type Backend interface {
	// GetTempUnit returns found=false when there is no record for the owner
	GetTempUnit(ctx context.Context, owner int64) (code string, found bool, err error)
	PutTempUnit(ctx context.Context, owner int64, code string) error
	Close() error
}

// SettingsStore reads and writes user settings. There is no version check,
// concurrent updates for one user are last-write-wins.
type SettingsStore struct {
	backend Backend
}

func NewSettingsStore(backend Backend) *SettingsStore {
	return &SettingsStore{backend: backend}
}

// PartitionKey is "u" followed by the user ID
func PartitionKey(owner int64) string {
	return "u" + strconv.FormatInt(owner, 10)
}

// Fetch returns nil settings if the user never saved anything
func (s *SettingsStore) Fetch(ctx context.Context, owner int64) (*structs.UserSettings, error) {
	code, found, err := s.backend.GetTempUnit(ctx, owner)
	if err != nil {
		return nil, &StorageError{Op: "fetch " + PartitionKey(owner), Err: err}
	}
	if !found {
		return nil, nil
	}

	unit, err := structs.ParseTempUnitCode(code)
	if err != nil {
		return nil, &DataCorruptionError{Owner: owner, Code: code}
	}

	return &structs.UserSettings{
		Owner:    owner,
		TempUnit: unit,
	}, nil
}

// FetchOrDefault is the only place where the default settings are created.
// They are never written back, the user has to toggle the unit for that.
func (s *SettingsStore) FetchOrDefault(ctx context.Context, owner int64) (structs.UserSettings, error) {
	settings, err := s.Fetch(ctx, owner)
	if err != nil {
		return structs.UserSettings{}, err
	}
	if settings == nil {
		return structs.DefaultSettings(owner), nil
	}
	return *settings, nil
}

// Update is an upsert, calling it twice with the same value is harmless
func (s *SettingsStore) Update(ctx context.Context, settings structs.UserSettings) error {
	if settings.TempUnit != structs.Celsius && settings.TempUnit != structs.Fahrenheit {
		return errors.Errorf("refusing to save unknown temp unit %d for user %d", settings.TempUnit, settings.Owner)
	}
	if err := s.backend.PutTempUnit(ctx, settings.Owner, settings.TempUnit.Code()); err != nil {
		return &StorageError{Op: "update " + PartitionKey(settings.Owner), Err: err}
	}
	return nil
}

func (s *SettingsStore) Close() error {
	return s.backend.Close()
}
