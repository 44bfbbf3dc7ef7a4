package sellercontroller

import (
	"net/http"
	"strings"
	"time"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/form"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/biharidelicacies/marketplace-api/upload"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var imageFields = []string{models.SellerProfileImageField, models.SellerBannerImageField}

// CreateSeller opens the seller profile of the logged-in user. One profile per user.
func CreateSeller(s store.RecordStore, sink *upload.Sink, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			respond.Error(c, log, apperr.Authentication("Not authenticated"))
			return
		}
		ctx := c.Request.Context()

		existing, err := s.FindOne(ctx, models.CollectionSellers, models.OwnedBy(user.IDString()))
		if err != nil {
			respond.Error(c, log, apperr.Wrap("look up seller", err))
			return
		}
		if existing != nil {
			respond.Error(c, log, apperr.Conflict("Seller already exists for this user"))
			return
		}

		rec, err := form.Fields(c, nil)
		if err != nil {
			respond.Error(c, log, apperr.Validation("Invalid form data"))
			return
		}
		if strings.TrimSpace(rec.Str("businessName")) == "" {
			respond.Error(c, log, apperr.Validation("businessName is required"))
			return
		}

		var stored []string
		for _, field := range imageFields {
			fh, err := c.FormFile(field)
			if err != nil {
				continue
			}
			url, err := sink.Store(fh)
			if err != nil {
				_ = sink.Remove(stored...)
				respond.Error(c, log, apperr.Wrap("store "+field, err))
				return
			}
			stored = append(stored, url)
			rec[field] = url
		}

		rec[models.SellerUserIDField] = user.ID
		rec["createdAt"] = time.Now().UTC().Format(time.RFC3339)

		saved, err := s.Insert(ctx, models.CollectionSellers, rec)
		if err != nil {
			_ = sink.Remove(stored...)
			respond.Error(c, log, apperr.Wrap("save seller", err))
			return
		}

		log.Infow("🏪 seller created", "sellerId", saved.IDString(), "userId", user.IDString())
		respond.Data(c, http.StatusCreated, saved)
	}
}

// GetMySeller returns the seller profile of the logged-in user.
func GetMySeller(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, err := FindForUser(c, s)
		if err != nil {
			respond.Error(c, log, err)
			return
		}
		respond.Data(c, http.StatusOK, seller)
	}
}

// FindForUser loads the seller profile of the request's user: 401 without a
// user, 404 when the user has no profile.
func FindForUser(c *gin.Context, s store.RecordStore) (models.Record, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, apperr.Authentication("Not authenticated")
	}
	seller, err := s.FindOne(c.Request.Context(), models.CollectionSellers, models.OwnedBy(user.IDString()))
	if err != nil {
		return nil, apperr.Wrap("look up seller", err)
	}
	if seller == nil {
		return nil, apperr.NotFound("Seller not found")
	}
	return seller, nil
}
