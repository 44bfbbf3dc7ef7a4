package models

// Product fields the server reads or writes.
const (
	ProductSellerIDField       = "sellerId"
	ProductLegacySellerIDField = "seller_id"
	ProductMainImageField      = "main_image"
	ProductExtraImagesField    = "additional_images"
)

// NumericProductFields are coerced to numbers when a form submits them.
var NumericProductFields = []string{"price", "originalPrice", "stock", "weight"}

type Product struct {
	ID            any      `json:"id,omitempty"`
	SellerID      any      `json:"sellerId"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Stock         int      `json:"stock"`
	Weight        float64  `json:"weight,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	MainImage     string   `json:"main_image,omitempty"`
	ExtraImages   []string `json:"additional_images,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

type Recipe struct {
	ID          any      `json:"id,omitempty"`
	Title       string   `json:"title"`
	Region      string   `json:"region,omitempty"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	PrepMinutes int      `json:"prepMinutes,omitempty"`
	Image       string   `json:"image,omitempty"`
}

type Category struct {
	ID   any    `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SoldBy matches products of a seller under either seller id field.
func SoldBy(sellerID string) func(Record) bool {
	return func(r Record) bool {
		if sellerID == "" {
			return false
		}
		return IDString(r[ProductSellerIDField]) == sellerID || IDString(r[ProductLegacySellerIDField]) == sellerID
	}
}
