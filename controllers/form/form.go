// Package form turns submitted form fields into a record.
package form

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/gin-gonic/gin"
)

// Fields copies every non-file field of a multipart or urlencoded form into a
// record. Repeated fields become lists; fields named in numeric are stored as
// numbers when they parse as one.
func Fields(c *gin.Context, numeric []string) (models.Record, error) {
	values, err := values(c)
	if err != nil {
		return nil, err
	}

	isNumeric := make(map[string]bool, len(numeric))
	for _, n := range numeric {
		isNumeric[n] = true
	}

	rec := models.Record{}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if len(vals) > 1 {
			list := make([]any, len(vals))
			for i, v := range vals {
				list[i] = coerce(v, isNumeric[key])
			}
			rec[key] = list
			continue
		}
		rec[key] = coerce(vals[0], isNumeric[key])
	}
	return rec, nil
}

func values(c *gin.Context) (map[string][]string, error) {
	mf, err := c.MultipartForm()
	if err == nil {
		return mf.Value, nil
	}
	if !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return c.Request.PostForm, nil
}

func coerce(v string, numeric bool) any {
	if !numeric {
		return v
	}
	// JSON has no NaN or Inf
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return v
}
