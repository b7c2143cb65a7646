package passwords

import (
	"context"
	"fmt"

	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/samber/lo"
)

const collectionKey = "generated_passwords"

// Repository reads and writes the generated_passwords collection as a whole.
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		store: store,
	}
}

// Load returns the full collection, empty if it does not exist yet.
func (r *Repository) Load(ctx context.Context) ([]Record, error) {
	models, err := storage.GetJSON(ctx, r.store, collectionKey, []recordModel{})
	if err != nil {
		return nil, fmt.Errorf("failed to load password records: %w", err)
	}

	return lo.Map(models, func(m recordModel, _ int) Record { return m.toDomain() }), nil
}

// Save replaces the stored collection with records.
func (r *Repository) Save(ctx context.Context, records []Record) error {
	models := lo.Map(records, func(r Record, _ int) recordModel { return newRecordModel(r) })

	if err := storage.SetJSON(ctx, r.store, collectionKey, models); err != nil {
		return fmt.Errorf("failed to save password records: %w", err)
	}

	return nil
}
