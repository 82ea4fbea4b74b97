package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/serializer"
	"restaurant-pos/internal/store"
	"restaurant-pos/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var dayBookHeaders = []string{"Bill No", "Name", "Purpose", "Amount", "Pay Option", "Bill Date"}

// ExportHandler downloads the day book as CSV or XLSX.
type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{Store: s}
}

func (h *ExportHandler) loadDayBooks(c *gin.Context) ([]models.DayBook, bool) {
	entries, _, err := h.Store.ListDayBooks(c.Request.Context(), store.Page{})
	if err != nil {
		storeError(c, err)
		return nil, false
	}
	return entries, true
}

func dayBookRow(e *models.DayBook) []string {
	return []string{
		strconv.FormatInt(e.BillNo, 10),
		e.Name,
		e.Purpose,
		serializer.Money(e.Amount),
		e.PayOption,
		serializer.FormatBillDate(e.BillDate),
	}
}

func attachment(c *gin.Context, contentType, ext string) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"day_books_%s.%s\"",
		time.Now().Format("20060102"), ext))
}

// ExportCSV streams the day book, newest first.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	entries, ok := h.loadDayBooks(c)
	if !ok {
		return
	}

	attachment(c, "text/csv; charset=utf-8", "csv")
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write(dayBookHeaders)
	for i := range entries {
		_ = writer.Write(dayBookRow(&entries[i]))
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = c.Error(err)
	}
}

// ExportXLSX writes the day book into a single worksheet.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	entries, ok := h.loadDayBooks(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Day Book"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		_ = c.Error(err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create worksheet failed")
		return
	}

	for i, title := range dayBookHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, title)
	}
	for idx := range entries {
		row := dayBookRow(&entries[idx])
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, idx+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 10)
	_ = f.SetColWidth(sheetName, "B", "B", 24)
	_ = f.SetColWidth(sheetName, "C", "C", 40)
	_ = f.SetColWidth(sheetName, "D", "E", 12)
	_ = f.SetColWidth(sheetName, "F", "F", 26)

	attachment(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
