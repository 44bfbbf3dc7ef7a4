package productcontroller

import (
	"net/http"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	sellercontroller "github.com/biharidelicacies/marketplace-api/controllers/seller"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetMyProducts lists the products of the caller's seller profile.
func GetMyProducts(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, err := sellercontroller.FindForUser(c, s)
		if err != nil {
			respond.Error(c, log, err)
			return
		}

		all, err := s.ReadAll(c.Request.Context(), models.CollectionProducts)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("read products", err))
			return
		}

		mine := make([]models.Record, 0)
		match := models.SoldBy(seller.IDString())
		for _, p := range all {
			if match(p) {
				mine = append(mine, p)
			}
		}
		respond.Data(c, http.StatusOK, mine)
	}
}
