package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"todo-vault/internal/repository"
	"todo-vault/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler dumps the caller's lists as CSV or XLSX.
type ExportHandler struct {
	Repo *repository.TodoListRepository
}

func NewExportHandler(repo *repository.TodoListRepository) *ExportHandler {
	return &ExportHandler{Repo: repo}
}

// ExportCSV handles GET /api/todolists/export/csv.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	lists, err := h.Repo.ListAll(id.UserID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todolists_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"list", "todo", "completed"})
	for _, list := range lists {
		for _, item := range list.Items {
			completed := "no"
			if item.IsCompleted {
				completed = "yes"
			}
			writer.Write([]string{list.Title, item.Text, completed})
		}
	}
}

// ExportXLSX handles GET /api/todolists/export/xlsx. One sheet per
// list, one row per item.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	lists, err := h.Repo.ListAll(id.UserID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "TodoLists"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "list")
	f.SetCellValue(sheet, "B1", "todo")
	f.SetCellValue(sheet, "C1", "completed")

	row := 2
	for _, list := range lists {
		for _, item := range list.Items {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), list.Title)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Text)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.IsCompleted)
			row++
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todolists_%s.xlsx\"",
		time.Now().Format("20060102")))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// headers already sent, nothing sensible left to report
		return
	}
}
