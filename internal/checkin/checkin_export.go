package checkin

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	checkinerrors "go-geoattend/internal/checkin/errors"
	"go-geoattend/internal/employee"
	"go-geoattend/internal/shared/apperror"
	"go-geoattend/internal/shared/contextutil"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	ExportXLSX = "xlsx"
	ExportPDF  = "pdf"

	exportMaxRows = 5000
	exportSheet   = "Checkins"
)

type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

var exportHeaders = []string{
	"Number", "Employee", "Type", "Time (UTC)", "Latitude", "Longitude",
	"Distance (m)", "Shift", "Device", "Location Photo", "Biometric Photo",
}

// pdf column widths in mm, landscape A4
var exportWidths = []float64{24, 38, 12, 34, 20, 20, 20, 26, 24, 30, 30}

// Export renders the same listing as ListEvents, without paging, as a
// spreadsheet or a PDF table.
func (s *service) Export(ctx context.Context, req ListEventsRequest, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportXLSX
	}
	if format != ExportXLSX && format != ExportPDF {
		return nil, checkinerrors.ErrInvalidExportFormat
	}

	emp, err := s.resolveEmployee(ctx, employee.Ref{CompanyID: req.CompanyID, EmployeeID: req.EmployeeID, UserID: req.UserID})
	if err != nil {
		return nil, apperror.AtStep(StepResolveEmployee, err)
	}

	filter, err := buildListFilter(emp.ID, req)
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = exportMaxRows, 0

	records, total, err := s.list(ctx, filter)
	if err != nil {
		return nil, apperror.AtStep(StepListEvents, err)
	}
	if total > int64(len(records)) {
		s.logger.Warn("export truncated",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", emp.ID.String()),
			zap.Int64("total", total),
			zap.Int("exported", len(records)),
		)
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = exportRow(r)
	}

	name := fmt.Sprintf("checkins_%s_%s.%s", emp.Code(), s.now().UTC().Format("20060102"), format)
	title := fmt.Sprintf("Attendance events: %s", emp.DisplayName())

	var (
		data        []byte
		contentType string
	)
	if format == ExportPDF {
		data, err = renderPDF(title, rows)
		contentType = "application/pdf"
	} else {
		data, err = renderXLSX(rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		s.logger.Error("render export failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("format", format),
			zap.Error(err),
		)
		return nil, err
	}

	return &ExportFile{Name: name, ContentType: contentType, Data: data}, nil
}

func exportRow(r EventRecord) []string {
	return []string{
		r.Number,
		r.EmployeeName,
		r.LogType,
		strings.Replace(r.Time, "T", " ", 1),
		floatCell(r.Latitude, 6),
		floatCell(r.Longitude, 6),
		floatCell(r.DistanceMeters, 2),
		stringCell(r.Shift),
		stringCell(r.DeviceID),
		stringCell(r.LocationPhotoURL),
		stringCell(r.ClientBiometricPhotoURL),
	}
}

func floatCell(v *float64, prec int) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func renderXLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	headers := exportHeaders
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := row
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(title string, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetMargins(8, 10, 8)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range exportHeaders {
			pdf.CellFormat(exportWidths[i], 6, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 7)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range rows {
		if pdf.GetY()+6 > pageHeight-bottom-10 {
			pdf.AddPage()
			header()
		}
		for i, v := range row {
			pdf.CellFormat(exportWidths[i], 5, tr(fitText(pdf, v, exportWidths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitText shortens v until it fits in a cell of width w.
func fitText(pdf *gofpdf.Fpdf, v string, w float64) string {
	const pad = 2
	if pdf.GetStringWidth(v) <= w-pad {
		return v
	}
	r := []rune(v)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w-pad {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
