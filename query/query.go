// Package query filters, sorts and pages a collection in memory.
package query

import (
	"context"
	"math"
	"sort"

	"github.com/biharidelicacies/marketplace-api/models"
)

// Defaults applied when the request leaves a field out.
const (
	DefaultPageNo       = 1
	DefaultPageSize     = 20
	DefaultOrderByField = models.IDField
)

// Request is the body of POST /table/page/:tableId.
type Request struct {
	PageNo       *int     `json:"PageNo"`
	PageSize     *int     `json:"PageSize"`
	OrderByField *string  `json:"OrderByField"`
	IsAsc        *bool    `json:"IsAsc"`
	Filters      []Filter `json:"Filters"`
}

type Result struct {
	List         []models.Record `json:"List"`
	VirtualCount int             `json:"VirtualCount"`
}

// Reader is the part of the record store the engine needs.
type Reader interface {
	ReadAll(ctx context.Context, collection string) ([]models.Record, error)
}

// Page loads the whole collection and applies req to it.
func Page(ctx context.Context, r Reader, collection string, req Request) (Result, error) {
	records, err := r.ReadAll(ctx, collection)
	if err != nil {
		return Result{}, err
	}
	return Apply(records, req), nil
}

// Apply filters (AND), sorts (stable) and slices records. The input slice is not modified.
func Apply(records []models.Record, req Request) Result {
	pageNo, pageSize := DefaultPageNo, DefaultPageSize
	if req.PageNo != nil {
		pageNo = *req.PageNo
	}
	if req.PageSize != nil {
		pageSize = *req.PageSize
	}
	orderBy := DefaultOrderByField
	if req.OrderByField != nil {
		orderBy = *req.OrderByField
	}
	asc := true
	if req.IsAsc != nil {
		asc = *req.IsAsc
	}

	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if matchesAll(rec, req.Filters) {
			filtered = append(filtered, rec)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, aok := filtered[i][orderBy]
		b, bok := filtered[j][orderBy]
		c := compareValues(a, aok, b, bok)
		if asc {
			return c < 0
		}
		return c > 0
	})

	size := float64(pageSize)
	lo, hi := sliceBounds(len(filtered), (float64(pageNo)-1)*size, float64(pageNo)*size)
	list := make([]models.Record, hi-lo)
	copy(list, filtered[lo:hi])

	return Result{List: list, VirtualCount: len(filtered)}
}

func matchesAll(rec models.Record, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(rec) {
			return false
		}
	}
	return true
}

// sliceBounds follows Array.prototype.slice: negative indexes count from the end,
// everything is clamped to [0, n], and end before start yields nothing.
// Bounds are float64 so huge page numbers saturate instead of wrapping.
func sliceBounds(n int, start, end float64) (int, int) {
	clamp := func(f float64) int {
		f = math.Trunc(f)
		if f < 0 {
			f += float64(n)
			if f < 0 {
				return 0
			}
		}
		if f > float64(n) {
			return n
		}
		return int(f)
	}
	lo, hi := clamp(start), clamp(end)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
