package models

import (
	"strings"
	"testing"
)

func ptrDoor(v DoorType) *DoorType { return &v }

func ptrOpen(v OpenDirection) *OpenDirection { return &v }

func validQuotation() QuotationRequest {
	return QuotationRequest{
		Date:         "2024-07-21",
		CustomerName: "Anh B",
		Items: []Item{
			{ID: "i1", DoorName: "Cửa chính", Quantity: 1, DoorType: ptrDoor(DoorTypeDoor), OpenDir: ptrOpen(OpenOutward)},
		},
	}
}

func TestQuotationValidateOK(t *testing.T) {
	q := validQuotation()
	if err := q.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestQuotationValidateHeaderFields(t *testing.T) {
	q := validQuotation()
	q.Date = ""
	if err := q.Validate(); err == nil || !strings.Contains(err.Error(), "Ngày lập") {
		t.Fatalf("expected date/customer error, got %v", err)
	}
	q = validQuotation()
	q.CustomerName = ""
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for missing customer name")
	}
}

func TestQuotationValidateNoItems(t *testing.T) {
	q := validQuotation()
	q.Items = nil
	if err := q.Validate(); err == nil || !strings.Contains(err.Error(), "ít nhất một hạng mục") {
		t.Fatalf("expected empty-items error, got %v", err)
	}
}

func TestItemValidateDoorTypeRequired(t *testing.T) {
	it := Item{ID: "i1", DoorName: "Cửa sổ bếp", Quantity: 1}
	if err := it.Validate(); err == nil || !strings.Contains(err.Error(), "phải chọn Loại") {
		t.Fatalf("expected door type error, got %v", err)
	}
}

func TestItemValidateEmptyDoorTypeCountsAsUnset(t *testing.T) {
	empty := DoorType("")
	it := Item{ID: "i1", DoorName: "Cửa chính", Quantity: 1, DoorType: &empty}
	if err := it.Validate(); err == nil || !strings.Contains(err.Error(), "phải chọn Loại") {
		t.Fatalf("expected door type error for empty string, got %v", err)
	}
}

func TestItemValidateOpenDirRequiredForDoors(t *testing.T) {
	it := Item{ID: "i1", DoorName: "Cửa chính", Quantity: 1, DoorType: ptrDoor(DoorTypeDoor)}
	if err := it.Validate(); err == nil || !strings.Contains(err.Error(), "Hướng mở") {
		t.Fatalf("expected open direction error, got %v", err)
	}
}

func TestItemValidatePartitionNeedsNoOpenDir(t *testing.T) {
	it := Item{ID: "i1", DoorName: "Vách kính", Quantity: 2, DoorType: ptrDoor(DoorTypePartition)}
	if err := it.Validate(); err != nil {
		t.Fatalf("partition without open direction should pass, got %v", err)
	}
}

func TestItemValidateQuantity(t *testing.T) {
	it := Item{ID: "i1", DoorName: "Cửa chính", Quantity: 0, DoorType: ptrDoor(DoorTypeDoor), OpenDir: ptrOpen(OpenInward)}
	if err := it.Validate(); err == nil || !strings.Contains(err.Error(), "số nguyên dương") {
		t.Fatalf("expected quantity error, got %v", err)
	}
	it.Quantity = 1
	if err := it.Validate(); err != nil {
		t.Fatalf("quantity 1 should pass, got %v", err)
	}
}

func TestItemValidateUsesLabelFallback(t *testing.T) {
	it := Item{ID: "i1", Quantity: 1}
	err := it.Validate()
	if err == nil || !strings.Contains(err.Error(), "Chưa có tên") {
		t.Fatalf("expected fallback label in message, got %v", err)
	}
}

func TestNormalizeClearsPartitionOpenDir(t *testing.T) {
	q := validQuotation()
	q.Items = append(q.Items, Item{ID: "i2", DoorName: "Vách", Quantity: 1, DoorType: ptrDoor(DoorTypePartition), OpenDir: ptrOpen(OpenInward)})
	q.Normalize()
	if q.Items[1].OpenDir != nil {
		t.Fatal("partition open direction should be cleared")
	}
	if q.Items[0].OpenDir == nil {
		t.Fatal("door open direction must survive normalization")
	}
}

func TestLibraryNameRequired(t *testing.T) {
	cases := []struct {
		rec interface{ Validate() error }
		msg string
	}{
		{&Customer{}, "Tên khách hàng"},
		{&AluminumSystem{}, "Tên hệ nhôm"},
		{&GlassType{}, "Tên loại kính"},
		{&AccessorySet{}, "Tên bộ phụ kiện"},
	}
	for _, c := range cases {
		err := c.rec.Validate()
		if err == nil || !strings.Contains(err.Error(), c.msg) {
			t.Fatalf("expected %q error, got %v", c.msg, err)
		}
	}
	if err := (&Customer{Name: "Anh B"}).Validate(); err != nil {
		t.Fatalf("named customer should validate, got %v", err)
	}
}
