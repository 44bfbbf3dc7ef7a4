package healthcontroller

import (
	"net/http"

	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/gin-gonic/gin"
)

// GET /health
func Health(c *gin.Context) {
	respond.Data(c, http.StatusOK, gin.H{"ok": true})
}
