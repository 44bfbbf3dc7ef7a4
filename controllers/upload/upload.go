package uploadcontroller

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/upload"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileField is the multipart field POST /upload reads.
const FileField = "image"

// HandleUpload stores one file and returns its public URL.
func HandleUpload(sink *upload.Sink, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile(FileField)
		if err != nil {
			respond.Error(c, log, apperr.Validation("No file uploaded"))
			return
		}

		url, err := sink.Store(file)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("store upload", err))
			return
		}

		log.Infow("📁 file uploaded", "name", file.Filename, "url", url)
		respond.Data(c, http.StatusOK, gin.H{"url": url})
	}
}

// DeleteUpload (admin) removes a stored file by its name.
func DeleteUpload(sink *upload.Sink, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := filepath.Base(c.Param("name"))
		if name == "." || name == "/" || name != upload.Sanitize(name) {
			respond.Error(c, log, apperr.Validation("Invalid file name"))
			return
		}
		if _, err := os.Stat(filepath.Join(sink.Dir, name)); os.IsNotExist(err) {
			respond.Error(c, log, apperr.NotFound("File not found"))
			return
		}

		if err := sink.Remove(sink.URL(name)); err != nil {
			respond.Error(c, log, apperr.Wrap("delete upload", err))
			return
		}
		log.Infow("🗑️ upload deleted", "name", name)
		respond.Data(c, http.StatusOK, true)
	}
}
