package models

import "strconv"

// Collection names.
const (
	CollectionUsers      = "users"
	CollectionSellers    = "sellers"
	CollectionProducts   = "products"
	CollectionRecipes    = "recipes"
	CollectionOrders     = "orders"
	CollectionCategories = "categories"
)

// tableIDs maps the opaque table ids used by the generic /table endpoints to collections.
// users is not listed: credentials never leave through the generic endpoints.
var tableIDs = map[int]string{
	39101: CollectionSellers,
	39102: CollectionProducts,
	39103: CollectionRecipes,
	39104: CollectionOrders,
	39105: CollectionCategories,
}

// LookupTable resolves a table id path parameter to its collection.
func LookupTable(raw string) (string, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return "", false
	}
	name, ok := tableIDs[id]
	return name, ok
}
