package docs

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/naimkchao/barbershop-backend/internal/models"
)

// BuildDaySchedulePDF renders a barber's appointments for one day as a
// printable sheet for the front desk.
func BuildDaySchedulePDF(
	date string,
	barber *models.Barber,
	bookings []models.Booking,
	loc *time.Location,
) ([]byte, error) {

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Naim Kchao Barbershop", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	title := fmt.Sprintf("Schedule for %s - %s", date, barber.Name)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(25, 8, "Start", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "End", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, "Customer", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, "Service", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, b := range bookings {
		pdf.CellFormat(25, 8, b.StartTime.In(loc).Format("15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, b.EndTime.In(loc).Format("15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 8, b.CustomerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, b.Service.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, b.Status, "1", 1, "C", false, 0, "")
	}

	if len(bookings) == 0 {
		pdf.Ln(4)
		pdf.CellFormat(0, 8, "No appointments for this day.", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render schedule pdf: %w", err)
	}
	return buf.Bytes(), nil
}
