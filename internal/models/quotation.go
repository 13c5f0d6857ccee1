package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Wire values stay the original Vietnamese strings so exports and share
// payloads produced by the old client keep their meaning.

type RequesterType string

const (
	RequesterNVKD  RequesterType = "NVKD"
	RequesterOther RequesterType = "Khác"
)

type DoorType string

const (
	DoorTypeDoor      DoorType = "Cửa đi"
	DoorTypeWindow    DoorType = "Cửa sổ"
	DoorTypePartition DoorType = "Vách"
)

type OpenDirection string

const (
	OpenInward  OpenDirection = "Mở trong"
	OpenOutward OpenDirection = "Mở ngoài"
)

type Status string

const (
	StatusDraft Status = "Nháp"
	StatusFinal Status = "Hoàn tất"
)

// Item is one line entry of a quotation. Items have no identity outside
// their parent; they are persisted by value on the QuotationRequest row.
type Item struct {
	ID          string         `json:"id"`
	DoorName    string         `json:"doorName"`
	System      string         `json:"system"`
	Glass       string         `json:"glass"`
	Quantity    int            `json:"quantity" validate:"gte=1"`
	DoorType    *DoorType      `json:"doorType" validate:"required"`
	OpenDir     *OpenDirection `json:"openDir"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Accessories string         `json:"accessories,omitempty"`
}

// Label is the item name used in validation messages.
func (it Item) Label() string {
	if it.DoorName == "" {
		return "Chưa có tên"
	}
	return it.DoorName
}

// Validate checks the item rules in the order the form reports them:
// type, open direction, then quantity. Partitions carry no open direction.
func (it Item) Validate() error {
	failed := map[string]bool{}
	if err := validate.Struct(it); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			failed[fe.Field()] = true
		}
	}
	// an empty string in the doorType field is as unset as a null
	if failed["DoorType"] || *it.DoorType == "" {
		return fmt.Errorf("Hạng mục \"%s\" phải chọn Loại.", it.Label())
	}
	if *it.DoorType != DoorTypePartition && it.OpenDir == nil {
		return fmt.Errorf("Hạng mục \"%s\" phải chọn Hướng mở.", it.Label())
	}
	if failed["Quantity"] {
		return fmt.Errorf("Số lượng của hạng mục \"%s\" phải là số nguyên dương.", it.Label())
	}
	return nil
}

// QuotationRequest owns its items by value: the whole ordered list is stored
// as one JSON column, so a share payload round-trips deep-equal.
type QuotationRequest struct {
	ID                 string        `gorm:"primaryKey" json:"id"`
	Code               string        `gorm:"index" json:"code"`
	Date               string        `json:"date"`
	RequesterType      RequesterType `json:"requesterType"`
	System             string        `json:"system"`
	Color              string        `json:"color"`
	Glass              string        `json:"glass"`
	Paint              string        `json:"paint"`
	Shipping           string        `json:"shipping"`
	CustomerCode       string        `json:"customerCode"`
	CustomerName       string        `json:"customerName"`
	CustomerAddress    string        `json:"customerAddress"`
	Status             Status        `json:"status"`
	Items              []Item        `gorm:"serializer:json" json:"items"`
	DiscountPercentage float64       `json:"discountPercentage,omitempty"`
	CreatedAt          time.Time     `json:"-"`
	UpdatedAt          time.Time     `json:"-"`
}

func (q *QuotationRequest) GetID() string   { return q.ID }
func (q *QuotationRequest) SetID(id string) { q.ID = id }

// Normalize forces the invariant the form enforces interactively: a partition
// never has an open direction.
func (q *QuotationRequest) Normalize() {
	for i := range q.Items {
		if q.Items[i].DoorType != nil && *q.Items[i].DoorType == DoorTypePartition {
			q.Items[i].OpenDir = nil
		}
	}
}

// Validate applies the save-time rules of the form. The first violation
// aborts; nothing is partially saved.
func (q *QuotationRequest) Validate() error {
	q.Normalize()
	if q.Date == "" || q.CustomerName == "" {
		return errors.New("Vui lòng điền Ngày lập và Tên Khách Hàng.")
	}
	if len(q.Items) == 0 {
		return errors.New("Phải có ít nhất một hạng mục trong phiếu.")
	}
	for _, it := range q.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}
