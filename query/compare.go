package query

import "strings"

const (
	rankNumber = iota
	rankString
	rankBool
	rankOther
	rankMissing
)

func rank(v any, present bool) int {
	if !present || v == nil {
		return rankMissing
	}
	if _, ok := asFloat(v); ok {
		return rankNumber
	}
	switch v.(type) {
	case string:
		return rankString
	case bool:
		return rankBool
	}
	return rankOther
}

// compareValues orders sort keys: numbers, then strings, then booleans, then
// objects/arrays, then null or missing. Values of one kind compare naturally;
// objects and arrays are all equal to each other.
func compareValues(a any, aok bool, b any, bok bool) int {
	ra, rb := rank(a, aok), rank(b, bok)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch ra {
	case rankNumber:
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	case rankString:
		return strings.Compare(a.(string), b.(string))
	case rankBool:
		x, y := a.(bool), b.(bool)
		switch {
		case !x && y:
			return -1
		case x && !y:
			return 1
		}
	}
	return 0
}
