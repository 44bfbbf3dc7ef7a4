package tablecontroller

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// ExportTable streams a whole collection as an .xlsx workbook, one column per field.
func ExportTable(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		coll, err := collection(c)
		if err != nil {
			respond.Error(c, log, err)
			return
		}

		records, err := s.ReadAll(c.Request.Context(), coll)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("read "+coll, err))
			return
		}

		file, err := Workbook(coll, records)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("build workbook", err))
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", coll))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Errorw("write workbook", "collection", coll, "error", err)
		}
	}
}

// Workbook lays records out on one sheet named after the collection.
func Workbook(coll string, records []models.Record) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(coll)
	if err != nil {
		return nil, err
	}

	headers := Columns(records)
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, rec := range records {
		row := sheet.AddRow()
		for _, h := range headers {
			setCell(row.AddCell(), rec[h])
		}
	}
	return file, nil
}

// Columns is the union of all field names, id first and the rest sorted.
func Columns(records []models.Record) []string {
	seen := map[string]bool{}
	var rest []string
	for _, rec := range records {
		for k := range rec {
			if k == models.IDField || seen[k] {
				continue
			}
			seen[k] = true
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append([]string{models.IDField}, rest...)
}

func setCell(cell *xlsx.Cell, v any) {
	switch x := v.(type) {
	case nil:
		cell.SetString("")
	case string:
		cell.SetString(x)
	case float64:
		cell.SetFloat(x)
	case bool:
		cell.SetBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			cell.SetString(fmt.Sprint(x))
			return
		}
		cell.SetString(string(b))
	}
}
