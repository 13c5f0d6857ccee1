package db

import (
	"github.com/bactien/YCBG/internal/models"
	"gorm.io/gorm"
)

func ptrDoor(v models.DoorType) *models.DoorType { return &v }

func ptrOpen(v models.OpenDirection) *models.OpenDirection { return &v }

// Seed inserts the example rows each collection starts with. A collection is
// only seeded while it is empty, so user data is never mixed with examples.
func Seed(db *gorm.DB) error {
	if empty(db, &models.Customer{}) {
		customers := []models.Customer{
			{ID: "cust-1", Code: "KH-00001", Name: "Công ty TNHH Xây Dựng ABC", Address: "123 Đường Nguyễn Trãi, Phường Bến Thành, Quận 1, TP.HCM"},
			{ID: "cust-2", Code: "KH-00002", Name: "Anh Nguyễn Văn B", Address: "456 Đường Lê Lợi, Quận 3, TP.HCM"},
			{ID: "cust-3", Code: "KH-00003", Name: "Chị Trần Thị C - Biệt thự Thủ Đức", Address: "789 Đường Võ Văn Ngân, TP. Thủ Đức, TP.HCM"},
		}
		if err := db.Create(&customers).Error; err != nil {
			return err
		}
	}
	if empty(db, &models.AluminumSystem{}) {
		systems := []models.AluminumSystem{
			{ID: "sys-1", Name: "Xingfa Class A"},
			{ID: "sys-2", Name: "Aluman-DW50"},
			{ID: "sys-3", Name: "Aluman-WD60"},
			{ID: "sys-4", Name: "Aluman-FIX50"},
			{ID: "sys-5", Name: "Topal Prima"},
		}
		if err := db.Create(&systems).Error; err != nil {
			return err
		}
	}
	if empty(db, &models.GlassType{}) {
		glasses := []models.GlassType{
			{ID: "glass-1", Name: "10mm cường lực"},
			{ID: "glass-2", Name: "8.38mm dán an toàn"},
			{ID: "glass-3", Name: "Kính hộp 5-9-5"},
			{ID: "glass-4", Name: "Kính Low-E"},
			{ID: "glass-5", Name: "Kính phản quang"},
		}
		if err := db.Create(&glasses).Error; err != nil {
			return err
		}
	}
	if empty(db, &models.AccessorySet{}) {
		accessories := []models.AccessorySet{
			{ID: "acc-1", Name: "Kinlong cửa đi", Description: "Bản lề 3D, Khóa đa điểm, Tay nắm"},
			{ID: "acc-2", Name: "Kinlong cửa sổ", Description: "Bản lề ma sát, Tay nắm gạt, Thanh hạn vị"},
			{ID: "acc-3", Name: "Cmech cửa lùa", Description: "Bánh xe đôi, Khóa sập, Chống rung"},
			{ID: "acc-4", Name: "Huy Hoàng cửa đi", Description: "Khóa vân tay, Mắt thần, Chặn cửa"},
		}
		if err := db.Create(&accessories).Error; err != nil {
			return err
		}
	}
	if empty(db, &models.QuotationRequest{}) {
		quotations := []models.QuotationRequest{
			{
				ID:                 "c7a4f5b2-3e1d-4c8a-9b6f-0a1b2c3d4e5f",
				Code:               "YCBG-202407-0001",
				Date:               "2024-07-21",
				RequesterType:      models.RequesterNVKD,
				System:             "Aluman-DW50",
				Color:              "Anode Silver",
				Glass:              "8.38mm Laminated",
				Paint:              "Powder Coat",
				Shipping:           "Giao tại công trình",
				CustomerCode:       "KH-00123",
				CustomerName:       "Công ty TNHH Xây Dựng ABC",
				CustomerAddress:    "123 Đường Nguyễn Trãi, Phường Bến Thành, Quận 1, TP.HCM",
				Status:             models.StatusFinal,
				DiscountPercentage: 5,
				Items: []models.Item{
					{ID: "item-1", DoorName: "SG-DW01.1", System: "Aluman-DW50", Glass: "Clear Tempered 10mm", Quantity: 1, DoorType: ptrDoor(models.DoorTypeDoor), OpenDir: ptrOpen(models.OpenOutward), ImageURL: "https://picsum.photos/seed/SG-DW01.1/200/200", Accessories: "Bản lề 3D, Khóa đa điểm, Tay nắm"},
					{ID: "item-2", DoorName: "SG-DW02.1", System: "Aluman-DW50", Glass: "Low-E", Quantity: 2, DoorType: ptrDoor(models.DoorTypeWindow), OpenDir: ptrOpen(models.OpenInward), ImageURL: "https://picsum.photos/seed/SG-DW02.1/200/200", Accessories: "Thanh hạn vị, tay nắm gạt"},
					{ID: "item-3", DoorName: "SG-WD01.1", System: "Aluman-WD60", Glass: "Double Glazing", Quantity: 5, DoorType: ptrDoor(models.DoorTypeWindow), OpenDir: ptrOpen(models.OpenInward), Accessories: "Tay nắm, thanh hạn vị"},
					{ID: "item-4", DoorName: "Vách cố định", System: "Aluman-FIX50", Glass: "10mm cường lực", Quantity: 4, DoorType: ptrDoor(models.DoorTypePartition), Accessories: "Nẹp sập, keo silicone"},
				},
			},
			{
				ID:              "d8b5f6c3-4f2e-5d9b-0c7a-1b2c3d4e5f6a",
				Code:            "YCBG-202407-0002",
				Date:            "2024-07-22",
				RequesterType:   models.RequesterOther,
				System:          "Xingfa Class A",
				Color:           "Xám Ghi",
				Glass:           "10mm cường lực",
				Paint:           "Sơn tĩnh điện",
				Shipping:        "Tự vận chuyển",
				CustomerCode:    "KH-00124",
				CustomerName:    "Anh Nguyễn Văn B",
				CustomerAddress: "456 Đường Lê Lợi, Quận 3, TP.HCM",
				Status:          models.StatusDraft,
				Items: []models.Item{
					{ID: "item-5", DoorName: "Cửa chính", System: "Xingfa Class A", Glass: "10mm cường lực", Quantity: 1, DoorType: ptrDoor(models.DoorTypeDoor), OpenDir: ptrOpen(models.OpenOutward), Accessories: "Khóa vân tay, mắt thần"},
				},
			},
		}
		if err := db.Create(&quotations).Error; err != nil {
			return err
		}
	}
	return nil
}

func empty(db *gorm.DB, model any) bool {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}
