package productcontroller

import (
	"net/http"
	"strings"
	"time"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/form"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	sellercontroller "github.com/biharidelicacies/marketplace-api/controllers/seller"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/biharidelicacies/marketplace-api/upload"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateProduct lists a product under the caller's seller profile, with an
// optional main image and any number of additional images.
func CreateProduct(s store.RecordStore, sink *upload.Sink, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, err := sellercontroller.FindForUser(c, s)
		if err != nil {
			respond.Error(c, log, err)
			return
		}

		rec, err := form.Fields(c, models.NumericProductFields)
		if err != nil {
			respond.Error(c, log, apperr.Validation("Invalid form data"))
			return
		}
		if strings.TrimSpace(rec.Str("name")) == "" {
			respond.Error(c, log, apperr.Validation("name is required"))
			return
		}

		// Image upload
		var stored []string
		if fh, err := c.FormFile(models.ProductMainImageField); err == nil {
			url, err := sink.Store(fh)
			if err != nil {
				respond.Error(c, log, apperr.Wrap("store main image", err))
				return
			}
			stored = append(stored, url)
			rec[models.ProductMainImageField] = url
		}
		if mf, err := c.MultipartForm(); err == nil && len(mf.File[models.ProductExtraImagesField]) > 0 {
			urls, err := sink.StoreAll(mf.File[models.ProductExtraImagesField])
			if err != nil {
				_ = sink.Remove(stored...)
				respond.Error(c, log, apperr.Wrap("store additional images", err))
				return
			}
			stored = append(stored, urls...)
			rec[models.ProductExtraImagesField] = urls
		}

		delete(rec, models.ProductLegacySellerIDField)
		rec[models.ProductSellerIDField] = seller.ID()
		rec["createdAt"] = time.Now().UTC().Format(time.RFC3339)

		saved, err := s.Insert(c.Request.Context(), models.CollectionProducts, rec)
		if err != nil {
			_ = sink.Remove(stored...)
			respond.Error(c, log, apperr.Wrap("save product", err))
			return
		}

		log.Infow("📦 product created", "productId", saved.IDString(), "sellerId", seller.IDString())
		respond.Data(c, http.StatusCreated, saved)
	}
}
