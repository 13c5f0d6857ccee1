package repo

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bactien/YCBG/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.QuotationRequest{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSaveAndByIDRoundTrip(t *testing.T) {
	r := New[models.Customer, *models.Customer](setupTestDB(t))
	c := models.Customer{ID: "cust-1", Code: "KH-00001", Name: "Anh B", Address: "Quận 3"}
	if err := r.Save(&c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := r.ByID("cust-1")
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if got.Name != c.Name || got.Code != c.Code || got.Address != c.Address {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveAssignsID(t *testing.T) {
	r := New[models.Customer, *models.Customer](setupTestDB(t))
	c := models.Customer{Name: "Anh B"}
	if err := r.Save(&c); err != nil {
		t.Fatalf("save: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestSaveUpsertsByID(t *testing.T) {
	r := New[models.Customer, *models.Customer](setupTestDB(t))
	c := models.Customer{ID: "cust-1", Code: "KH-00001", Name: "Anh B"}
	if err := r.Save(&c); err != nil {
		t.Fatalf("save: %v", err)
	}
	c.Name = "Anh B (sửa)"
	if err := r.Save(&c); err != nil {
		t.Fatalf("resave: %v", err)
	}
	n, err := r.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 record after upsert, got %d", n)
	}
	got, err := r.ByID("cust-1")
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if got.Name != "Anh B (sửa)" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
}

func TestByIDNotFound(t *testing.T) {
	r := New[models.Customer, *models.Customer](setupTestDB(t))
	if _, err := r.ByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	r := New[models.Customer, *models.Customer](setupTestDB(t))
	if err := r.Delete("missing"); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
}

func TestQuotationItemsPersistByValue(t *testing.T) {
	r := New[models.QuotationRequest, *models.QuotationRequest](setupTestDB(t))
	dt := models.DoorTypeDoor
	od := models.OpenOutward
	q := models.QuotationRequest{
		ID:           "q1",
		Code:         "YCBG-202407-0001",
		Date:         "2024-07-21",
		CustomerName: "Anh B",
		Status:       models.StatusDraft,
		Items: []models.Item{
			{ID: "i1", DoorName: "Cửa chính", Quantity: 1, DoorType: &dt, OpenDir: &od, Accessories: "Khóa đa điểm"},
		},
	}
	if err := r.Save(&q); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := r.ByID("q1")
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got.Items))
	}
	it := got.Items[0]
	if it.DoorName != "Cửa chính" || *it.DoorType != models.DoorTypeDoor || *it.OpenDir != models.OpenOutward {
		t.Fatalf("item did not round trip: %+v", it)
	}
}
