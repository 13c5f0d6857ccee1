package view

import (
	"html/template"
	"io"

	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/services"
)

// ItemsPerPage fixes the A4 pagination of the print layout.
const ItemsPerPage = 6

// PrintData feeds the print template. Logo is resolved at render time from
// the current settings, never stored with the quotation.
type PrintData struct {
	Quotation *models.QuotationRequest
	Logo      string
	Pages     [][]models.Item
}

// Paginate splits the item list into fixed-size print pages.
func Paginate(items []models.Item) [][]models.Item {
	var pages [][]models.Item
	for i := 0; i < len(items); i += ItemsPerPage {
		end := i + ItemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}

var printTmpl = template.Must(template.New("print").Funcs(template.FuncMap{
	"fmtDate": services.FormatDateVN,
	// logos and sketches are data URLs, which the default url filter rejects
	"url": func(s string) template.URL { return template.URL(s) },
	"isType": func(it models.Item, t string) bool {
		return it.DoorType != nil && string(*it.DoorType) == t
	},
	"isDir": func(it models.Item, d string) bool {
		return it.OpenDir != nil && string(*it.OpenDir) == d
	},
}).Parse(printHTML))

// RenderPrint writes the paginated A4 print layout for a quotation.
func RenderPrint(w io.Writer, q *models.QuotationRequest, logo string) error {
	data := PrintData{Quotation: q, Logo: logo, Pages: Paginate(q.Items)}
	return printTmpl.Execute(w, data)
}

const printHTML = `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>YCBG_{{.Quotation.Code}}</title>
<style>
  body { margin: 0; font-family: 'Times New Roman', serif; color: #000; }
  .a4-page { width: 210mm; min-height: 297mm; padding: 14mm; box-sizing: border-box; margin: 0 auto; background: #fff; }
  .page-header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 12px; }
  .page-header .logo { width: 25%; }
  .page-header .logo img { max-height: 72px; max-width: 100%; object-fit: contain; }
  .page-header h1 { width: 50%; text-align: center; font-size: 16pt; margin: 4px 0; }
  .page-header .spacer { width: 25%; }
  .info { border: 2px solid #000; padding: 6px; }
  .info-grid { display: grid; grid-template-columns: auto 1fr auto 1fr; column-gap: 10px; font-size: 10pt; }
  .info-grid .label { font-weight: bold; }
  .info-grid .wide { grid-column: span 3; }
  .items { display: grid; grid-template-columns: 1fr 1fr; gap: 6px; margin-top: 6px; }
  .item { border: 2px solid #000; }
  .item-head { display: grid; grid-template-columns: repeat(4, 1fr); border-bottom: 2px solid #000; font-size: 9pt; }
  .item-head div { padding: 3px; border-right: 2px solid #000; }
  .item-head div:last-child { border-right: none; }
  .item-acc { padding: 3px; border-bottom: 2px solid #000; font-size: 9pt; }
  .item-body { display: grid; grid-template-columns: 1fr 1fr; height: 42mm; }
  .item-img { display: flex; align-items: center; justify-content: center; border-right: 2px solid #000; padding: 3px; }
  .item-img img { max-height: 100%; max-width: 100%; object-fit: contain; }
  .item-img .none { color: #999; font-size: 9pt; }
  .item-checks { display: flex; flex-direction: column; justify-content: center; gap: 12px; padding: 6px; }
  .check-row { display: flex; gap: 14px; }
  .cb-group { display: flex; align-items: center; gap: 4px; font-size: 9pt; }
  .cb { width: 9px; height: 9px; border: 1px solid #000; display: inline-flex; align-items: center; justify-content: center; }
  .cb-fill { width: 6px; height: 6px; background: #000; }
  @media print {
    body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
    .a4-page { height: 297mm; page-break-after: always; box-shadow: none; }
  }
  @page { size: A4; margin: 0; }
</style>
</head>
<body onload="window.print()">
{{$q := .Quotation}}{{$logo := .Logo}}
{{range .Pages}}
<div class="a4-page">
  <div class="page-header">
    <div class="logo">{{if $logo}}<img src="{{url $logo}}" alt="Company Logo">{{end}}</div>
    <h1>MẪU 1 – PHIẾU YÊU CẦU BÁO GIÁ</h1>
    <div class="spacer"></div>
  </div>
  <div class="info">
    <div class="info-grid">
      <div class="label">Số:</div><div>{{$q.Code}}</div>
      <div class="label">Ngày:</div><div>{{fmtDate $q.Date}}</div>
      <div class="label">Người yêu cầu:</div><div class="wide">{{$q.RequesterType}}</div>
      <div class="label">Hệ:</div><div>{{$q.System}}</div>
      <div class="label">Màu:</div><div>{{$q.Color}}</div>
      <div class="label">Mã số KH:</div><div>{{$q.CustomerCode}}</div>
      <div class="label">Tên KH:</div><div>{{$q.CustomerName}}</div>
      <div class="label">Kính:</div><div>{{$q.Glass}}</div>
      <div class="label">Vận chuyển:</div><div>{{$q.Shipping}}</div>
      <div class="label">Sơn:</div><div>{{$q.Paint}}</div>
      {{if gt $q.DiscountPercentage 0.0}}<div class="label">Chiết khấu (%):</div><div>{{$q.DiscountPercentage}}</div>{{end}}
      <div class="label">Địa chỉ KH:</div><div class="wide">{{$q.CustomerAddress}}</div>
    </div>
  </div>
  <div class="items">
  {{range .}}
    <div class="item">
      <div class="item-head">
        <div><b>Tên cửa:</b> {{.DoorName}}</div>
        <div><b>Hệ:</b> {{.System}}</div>
        <div><b>Kính:</b> {{.Glass}}</div>
        <div><b>Số lượng:</b> {{.Quantity}}</div>
      </div>
      {{if .Accessories}}<div class="item-acc"><b>Phụ kiện:</b> {{.Accessories}}</div>{{end}}
      <div class="item-body">
        <div class="item-img">{{if .ImageURL}}<img src="{{url .ImageURL}}" alt="Sketch">{{else}}<span class="none">No Image</span>{{end}}</div>
        <div class="item-checks">
          <div class="check-row">
            <span class="cb-group"><span class="cb">{{if isType . "Cửa đi"}}<span class="cb-fill"></span>{{end}}</span>Cửa đi</span>
            <span class="cb-group"><span class="cb">{{if isType . "Cửa sổ"}}<span class="cb-fill"></span>{{end}}</span>Cửa sổ</span>
            <span class="cb-group"><span class="cb">{{if isType . "Vách"}}<span class="cb-fill"></span>{{end}}</span>Vách</span>
          </div>
          <div class="check-row">
            <span class="cb-group"><span class="cb">{{if isDir . "Mở trong"}}<span class="cb-fill"></span>{{end}}</span>Mở trong</span>
            <span class="cb-group"><span class="cb">{{if isDir . "Mở ngoài"}}<span class="cb-fill"></span>{{end}}</span>Mở ngoài</span>
          </div>
        </div>
      </div>
    </div>
  {{end}}
  </div>
</div>
{{end}}
</body>
</html>
`
