package tablecontroller

import (
	"errors"
	"io"
	"net/http"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/query"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func collection(c *gin.Context) (string, error) {
	name, ok := models.LookupTable(c.Param("tableId"))
	if !ok {
		return "", apperr.NotFound("Unknown table")
	}
	return name, nil
}

// PageTable handles POST /table/page/:tableId. An empty body pages with the defaults.
func PageTable(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		coll, err := collection(c)
		if err != nil {
			respond.Error(c, log, err)
			return
		}

		var req query.Request
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respond.Error(c, log, apperr.Validation("Invalid query"))
			return
		}
		for _, f := range req.Filters {
			if !query.KnownOp(f.Op) {
				log.Warnw("⚠️ unknown filter operator matches every record", "table", coll, "field", f.Name, "op", f.Op)
			}
		}

		res, err := query.Page(c.Request.Context(), s, coll, req)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("page "+coll, err))
			return
		}
		respond.Data(c, http.StatusOK, res)
	}
}

// CreateRecord handles POST /table/create/:tableId. The body is stored as-is apart from the id.
func CreateRecord(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		coll, err := collection(c)
		if err != nil {
			respond.Error(c, log, err)
			return
		}

		var rec models.Record
		if err := c.ShouldBindJSON(&rec); err != nil || rec == nil {
			respond.Error(c, log, apperr.Validation("Request body must be a JSON object"))
			return
		}

		saved, err := s.Insert(c.Request.Context(), coll, rec)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("insert into "+coll, err))
			return
		}
		respond.Data(c, http.StatusCreated, saved)
	}
}

// GetRecord handles GET /table/get/:tableId/:id.
func GetRecord(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		coll, err := collection(c)
		if err != nil {
			respond.Error(c, log, err)
			return
		}

		rec, err := s.FindOne(c.Request.Context(), coll, store.ByID(c.Param("id")))
		if err != nil {
			respond.Error(c, log, apperr.Wrap("find in "+coll, err))
			return
		}
		if rec == nil {
			respond.Error(c, log, apperr.NotFound("Record not found"))
			return
		}
		respond.Data(c, http.StatusOK, rec)
	}
}
