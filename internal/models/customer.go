package models

import "time"

// Customer is a flat denormalized record. Code is generated once at creation
// (KH-xxxxx) and copied by value into quotations, never referenced by key.
type Customer struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"index" json:"code"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (c *Customer) GetID() string   { return c.ID }
func (c *Customer) SetID(id string) { c.ID = id }
func (c *Customer) Validate() error {
	return requireName(c, "Tên khách hàng không được để trống.")
}
