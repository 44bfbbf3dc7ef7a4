package models

// Seller fields the server itself reads or writes; everything else the form sends is kept as-is.
const (
	SellerUserIDField       = "userId"
	SellerProfileImageField = "profile_image"
	SellerBannerImageField  = "banner_image"
)

type Seller struct {
	ID           any     `json:"id,omitempty"`
	UserID       any     `json:"userId"`
	BusinessName string  `json:"businessName"`
	OwnerName    string  `json:"ownerName,omitempty"`
	Description  string  `json:"description,omitempty"`
	Location     string  `json:"location,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Specialty    string  `json:"specialty,omitempty"`
	ProfileImage string  `json:"profile_image,omitempty"`
	BannerImage  string  `json:"banner_image,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// OwnedBy matches the seller profile of a user.
func OwnedBy(userID string) func(Record) bool {
	return func(r Record) bool {
		return userID != "" && IDString(r[SellerUserIDField]) == userID
	}
}
