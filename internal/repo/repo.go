package repo

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by ByID for an unknown id.
var ErrNotFound = gorm.ErrRecordNotFound

// Entity is any record keyed by a string id.
type Entity interface {
	GetID() string
	SetID(string)
}

// Repo implements the shared store contract over one gorm-mapped table:
// list all, upsert by id, delete by id. Each entity store is one
// instantiation of this type instead of its own near-identical wrapper.
type Repo[T any, PT interface {
	*T
	Entity
}] struct {
	db *gorm.DB
}

func New[T any, PT interface {
	*T
	Entity
}](db *gorm.DB) *Repo[T, PT] {
	return &Repo[T, PT]{db: db}
}

func (r *Repo[T, PT]) All(order string) ([]T, error) {
	out := []T{}
	q := r.db
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo[T, PT]) ByID(id string) (*T, error) {
	var rec T
	err := r.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save upserts by id: replace when the id already exists, append otherwise.
// A record arriving without an id gets a fresh one.
func (r *Repo[T, PT]) Save(rec *T) error {
	p := PT(rec)
	if p.GetID() == "" {
		p.SetID(uuid.NewString())
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error
}

// Delete removes the record if present. Deleting an unknown id is a no-op,
// not an error.
func (r *Repo[T, PT]) Delete(id string) error {
	var rec T
	return r.db.Delete(&rec, "id = ?", id).Error
}

func (r *Repo[T, PT]) Count() (int64, error) {
	var rec T
	var n int64
	err := r.db.Model(&rec).Count(&n).Error
	return n, err
}
