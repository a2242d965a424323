package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity is implemented by every catalog model keyed by a string primary id.
type Entity interface {
	GetID() string
	SetID(id string)
}

// Repository provides get / getAll / save over a single table.
// Save is an upsert: a new row is inserted, an existing one (same primary
// key) is updated in place, so the seed import can be re-run safely.
type Repository[T any, P interface {
	*T
	Entity
}] struct {
	db *gorm.DB
}

func NewRepository[T any, P interface {
	*T
	Entity
}](db *gorm.DB) *Repository[T, P] {
	return &Repository[T, P]{db: db}
}

// Get returns the entity with the given id, or nil when no row matches.
func (r *Repository[T, P]) Get(id string) (P, error) {
	var e T
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return P(&e), nil
}

func (r *Repository[T, P]) GetAll() ([]T, error) {
	var out []T
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save upserts the entity, generating a UUID primary key when none was
// supplied by the caller.
func (r *Repository[T, P]) Save(e P) error {
	if e.GetID() == "" {
		e.SetID(uuid.NewString())
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(e).Error
}
