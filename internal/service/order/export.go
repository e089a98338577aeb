package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/thronelight/platform/internal/domain"
)

const exportSheet = "Orders"

// maxExportRows bounds a single export.
const maxExportRows = 50000

var exportHeader = []string{
	"Order ID", "Created", "Email", "Country", "Books", "Amount", "Currency",
	"Status", "Partner ID", "Sub-link", "Commission", "Commission Status", "Matures",
}

var exportWidths = []float64{38, 20, 30, 8, 30, 10, 8, 12, 38, 18, 12, 16, 12}

// ExportOrders renders every order matching input as an XLSX workbook.
// Paging fields of input are ignored.
func (s *Service) ExportOrders(ctx context.Context, input ListInput) ([]byte, error) {
	f, err := input.Filter()
	if err != nil {
		return nil, err
	}

	var all []domain.Order
	f.Limit = domain.MaxPageSize
	f.Offset = 0
	for {
		page, total, err := s.orders.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("order.ExportOrders: %w", err)
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total || len(all) >= maxExportRows {
			break
		}
		f.Offset += len(page)
	}

	data, err := writeOrdersXLSX(all)
	if err != nil {
		return nil, fmt.Errorf("order.ExportOrders: %w", err)
	}
	return data, nil
}

func writeOrdersXLSX(orders []domain.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F3E9D2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(exportSheet, name, name, exportWidths[col]); err != nil {
			return nil, fmt.Errorf("set width %s: %w", name, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("set header style: %w", err)
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &[]any{
			o.ID.String(),
			o.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			o.Email,
			deref(o.Country),
			strings.Join(o.BookIDs, ", "),
			float64(o.AmountCents) / 100,
			strings.ToUpper(o.Currency),
			string(o.Status),
			partnerString(o),
			deref(o.SubLinkCode),
			float64(o.CommissionCents) / 100,
			string(o.CommissionStatus),
			maturesString(o),
		}); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func partnerString(o domain.Order) string {
	if o.PartnerID == nil {
		return ""
	}
	return o.PartnerID.String()
}

func maturesString(o domain.Order) string {
	if o.MaturesAt == nil {
		return ""
	}
	return o.MaturesAt.UTC().Format("2006-01-02")
}
