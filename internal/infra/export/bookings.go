package export

import (
	"bytes"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	bookingsSheet   = "Bookings"
	timestampLayout = "2006-01-02 15:04"
)

var bookingHeaders = []string{
	"Booking ID", "Guest", "Email", "Check-in", "Check-out", "Nights",
	"Guests", "Total", "Status", "Payment Method", "Paid At", "Created At",
}

// XLSXBookingExporter renders a host's bookings as a single-sheet workbook.
type XLSXBookingExporter struct{}

func NewXLSXBookingExporter() *XLSXBookingExporter {
	return &XLSXBookingExporter{}
}

func (e *XLSXBookingExporter) ContentType() string { return xlsxContentType }

func (e *XLSXBookingExporter) Extension() string { return "xlsx" }

func (e *XLSXBookingExporter) Export(title string, rows []*queries.HostBookingRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return nil, errs.Wrap(err, "rename sheet")
	}

	if err := f.SetCellValue(bookingsSheet, "A1", title); err != nil {
		return nil, errs.Wrap(err, "write title")
	}
	for i, header := range bookingHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, errs.Wrap(err, "header cell")
		}
		if err := f.SetCellValue(bookingsSheet, cell, header); err != nil {
			return nil, errs.Wrap(err, "write header")
		}
	}

	for i, row := range rows {
		values := []any{
			row.ID.String(),
			row.GuestName,
			row.GuestEmail,
			row.CheckIn.Format(booking.DateLayout),
			row.CheckOut.Format(booking.DateLayout),
			nights(row),
			row.Guests,
			row.TotalPrice,
			row.Status,
			deref(row.PaymentMethod),
			"",
			row.CreatedAt.Format(timestampLayout),
		}
		if row.PaymentCompletedAt != nil {
			values[10] = row.PaymentCompletedAt.Format(timestampLayout)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return nil, errs.Wrap(err, "row cell")
		}
		if err := f.SetSheetRow(bookingsSheet, cell, &values); err != nil {
			return nil, errs.Wrap(err, "write booking row")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errs.Wrap(err, "encode workbook")
	}
	return buf.Bytes(), nil
}

func nights(row *queries.HostBookingRow) int {
	return int(row.CheckOut.Sub(row.CheckIn).Hours() / 24)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
