// Package report builds the Excel workbook behind "Export to Excel".
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ibeloyar/printbee/internal/analytics"
	"github.com/ibeloyar/printbee/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	OrdersSheet  = "Orders"
	SummarySheet = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// FileName is the download name of an export made at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("printbee-orders-%s.xlsx", t.Format("20060102"))
}

var orderHeaders = []string{
	"Order ID", "Timestamp", "Name", "Email", "Phone", "Pickup Time",
	"Description", "Payment Method", "Price", "Status", "Files",
}

var summaryHeaders = []string{"Month", "Orders", "Revenue"}

// Orders renders the list in the given order on one sheet and the monthly
// totals on another.
func Orders(orders []model.Order) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", OrdersSheet); err != nil {
		return nil, err
	}

	if err := writeHeader(f, OrdersSheet, orderHeaders); err != nil {
		return nil, err
	}
	for i, o := range orders {
		row := i + 2
		values := []any{
			o.OrderID,
			o.Timestamp,
			o.Name,
			o.Email,
			o.Phone,
			o.PickupTime,
			o.Description,
			string(o.PaymentMethod),
			priceCell(o.Price),
			string(o.JobStatus),
			strings.Join(o.Files, "\n"),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(OrdersSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write order %s: %w", o.OrderID, err)
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	if err := writeHeader(f, SummarySheet, summaryHeaders); err != nil {
		return nil, err
	}
	summary := analytics.Aggregate(orders)
	for i, bucket := range summary.OrdersByMonth {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{bucket.Key, bucket.Count, summary.RevenueByMonth[i].Revenue.InexactFloat64()}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write summary %s: %w", bucket.Key, err)
		}
	}

	return f, nil
}

// OrdersXLSX is Orders serialised to bytes.
func OrdersXLSX(orders []model.Order) ([]byte, error) {
	f, err := Orders(orders)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func priceCell(p model.Price) any {
	if !p.IsSet() {
		return ""
	}
	return p.Amount().InexactFloat64()
}
