package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/biharidelicacies/marketplace-api/models"
)

// Operators understood by Filter.Match.
const (
	OpEqual              = "Equal"
	OpGreaterThanOrEqual = "GreaterThanOrEqual"
	OpLessThanOrEqual    = "LessThanOrEqual"
	OpGreaterThan        = "GreaterThan"
	OpStringContains     = "StringContains"
)

type Filter struct {
	Name  string `json:"name"`
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// KnownOp reports whether op is one Match evaluates. Unknown operators match everything.
func KnownOp(op string) bool {
	switch op {
	case OpEqual, OpGreaterThanOrEqual, OpLessThanOrEqual, OpGreaterThan, OpStringContains:
		return true
	}
	return false
}

// Match evaluates the filter against one record. A missing field never equals
// anything and coerces to NaN in numeric comparisons.
func (f Filter) Match(rec models.Record) bool {
	v, present := rec[f.Name]
	switch f.Op {
	case OpEqual:
		return present && strictEqual(v, f.Value)
	case OpGreaterThanOrEqual:
		return toNumber(v, present) >= toNumber(f.Value, true)
	case OpLessThanOrEqual:
		return toNumber(v, present) <= toNumber(f.Value, true)
	case OpGreaterThan:
		return toNumber(v, present) > toNumber(f.Value, true)
	case OpStringContains:
		needle := "null"
		if f.Value != nil {
			needle = toString(f.Value, true)
		}
		return strings.Contains(strings.ToLower(toString(v, present)), strings.ToLower(needle))
	default:
		return true
	}
}

// strictEqual compares like ===: numbers by value, strings and booleans by value,
// null only to null, objects and arrays never (no shared identity across JSON decodes).
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := asFloat(a); ok {
		y, ok := asFloat(b)
		return ok && x == y
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toNumber applies JavaScript Number() coercion. present=false stands for undefined.
func toNumber(v any, present bool) float64 {
	if !present {
		return math.NaN()
	}
	if f, ok := asFloat(v); ok {
		return f
	}
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumber(x)
	case []any:
		return parseNumber(toString(x, true))
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	// Go also accepts "inf", "nan" and underscores; JavaScript does not.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") || strings.ContainsAny(lower, "px") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// toString applies String() coercion to a field value, except that undefined and
// null become "".
func toString(v any, present bool) string {
	if !present || v == nil {
		return ""
	}
	if f, ok := asFloat(v); ok {
		return formatNumber(f)
	}
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = toString(e, true)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	}
	return ""
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
