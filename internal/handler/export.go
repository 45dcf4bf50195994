package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Scarred95/CloudCookbook/internal/pantry"
	"github.com/Scarred95/CloudCookbook/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler downloads a user's pantry as CSV or XLSX.
type ExportHandler struct {
	Ledger *pantry.Ledger
}

func NewExportHandler(ledger *pantry.Ledger) *ExportHandler {
	return &ExportHandler{Ledger: ledger}
}

// ExportCSV streams the pantry as a CSV file.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	entries, err := h.Ledger.List(userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"pantry_%d_%s.csv\"",
		userID, time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Ingredient", "Amount"})
	for _, e := range entries {
		writer.Write([]string{e.Name, strconv.FormatInt(e.Amount, 10)})
	}
}

// ExportXLSX sends the pantry as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	entries, err := h.Ledger.List(userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	f := excelize.NewFile()
	sheetName := "Pantry"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", "Ingredient")
	f.SetCellValue(sheetName, "B1", "Amount")
	for i, e := range entries {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Amount)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"pantry_%d_%s.xlsx\"",
		userID, time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
