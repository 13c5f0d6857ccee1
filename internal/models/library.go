package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// Reference libraries. Quotations copy these by name string; renaming an
// entry does not propagate to existing quotations.

type AluminumSystem struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (s *AluminumSystem) GetID() string   { return s.ID }
func (s *AluminumSystem) SetID(id string) { s.ID = id }
func (s *AluminumSystem) Validate() error {
	return requireName(s, "Tên hệ nhôm không được để trống.")
}

type GlassType struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (g *GlassType) GetID() string   { return g.ID }
func (g *GlassType) SetID(id string) { g.ID = id }
func (g *GlassType) Validate() error {
	return requireName(g, "Tên loại kính không được để trống.")
}

// AccessorySet is a named hardware bundle. Selecting one for a quotation item
// copies the Description text, not the name.
type AccessorySet struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (a *AccessorySet) GetID() string   { return a.ID }
func (a *AccessorySet) SetID(id string) { a.ID = id }
func (a *AccessorySet) Validate() error {
	return requireName(a, "Tên bộ phụ kiện không được để trống.")
}

var validate = validator.New()

func requireName(rec any, msg string) error {
	if err := validate.Struct(rec); err != nil {
		return errors.New(msg)
	}
	return nil
}
