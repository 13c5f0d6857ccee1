package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/bactien/YCBG/internal/models"
	"github.com/xuri/excelize/v2"
)

// ErrNothingToExport is returned when the filtered list is empty.
var ErrNothingToExport = errors.New("Không có dữ liệu để xuất.")

var exportHeaders = []string{
	"Số Phiếu", "Ngày Lập", "Tên Khách Hàng", "Mã số KH", "Địa chỉ KH",
	"Trạng Thái", "Hệ", "Màu", "Kính", "Sơn", "Vận Chuyển", "Chiết khấu (%)", "Số Lượng Hạng Mục",
}

func exportRow(q models.QuotationRequest) []string {
	return []string{
		q.Code,
		FormatDateVN(q.Date),
		q.CustomerName,
		q.CustomerCode,
		q.CustomerAddress,
		string(q.Status),
		q.System,
		q.Color,
		q.Glass,
		q.Paint,
		q.Shipping,
		fmt.Sprintf("%g", q.DiscountPercentage),
		fmt.Sprintf("%d", len(q.Items)),
	}
}

// FormatDateVN renders an ISO date the way the list screen shows it
// (d/m/yyyy, no leading zeros). Unparseable values pass through untouched.
func FormatDateVN(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// CSVExport renders the filtered quotations as UTF-8 CSV prefixed with a
// byte-order mark so spreadsheet tools pick up the accented text correctly.
func CSVExport(quotations []models.QuotationRequest) ([]byte, error) {
	if len(quotations) == 0 {
		return nil, ErrNothingToExport
	}
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, q := range quotations {
		if err := w.Write(exportRow(q)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSXExport renders the same column set as a spreadsheet.
func XLSXExport(quotations []models.QuotationRequest) ([]byte, error) {
	if len(quotations) == 0 {
		return nil, ErrNothingToExport
	}
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"
	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for r, q := range quotations {
		for c, v := range exportRow(q) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename stamps the download name with the current date.
func ExportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("YCBG_Export_%s.%s", now.Format("2006-01-02"), ext)
}
