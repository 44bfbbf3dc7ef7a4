// Package respond writes the {"data": ...} / {"error": "..."} envelope every endpoint uses.
package respond

import (
	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// Error answers with the status of err's kind. Internal errors are logged with
// their cause and reach the client as a generic message.
func Error(c *gin.Context, log *zap.SugaredLogger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		log.Errorw("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.AbortWithStatusJSON(kind.Status(), gin.H{"error": apperr.PublicMessage(err)})
}
