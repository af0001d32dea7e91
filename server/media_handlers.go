package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Luismorlan/tribe/file_store"
	"github.com/Luismorlan/tribe/server/metrics"
	"github.com/Luismorlan/tribe/server/middlewares"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Room for multipart boundaries and part headers on top of the file itself.
const multipartOverhead = 8 << 10

func isBodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return true
	}
	// multipart may flatten the reader error into its own message
	return strings.Contains(err.Error(), "request body too large")
}

// UploadMedia stores the multipart "file" in the file store and records it as
// unattached media. The returned media_id is later passed in
// tweet_media_ids.
func (s *Server) UploadMedia(c *gin.Context) {
	tooLargeMessage := fmt.Sprintf("File is larger than %d bytes", s.Setting.MAX_UPLOAD_BYTES)
	limit := s.Setting.MAX_UPLOAD_BYTES + multipartOverhead
	if c.Request.ContentLength > limit {
		middlewares.AbortWithError(c, http.StatusRequestEntityTooLarge, tooLargeMessage)
		return
	}
	// bodies without a declared length are cut off while parsing
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	header, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			middlewares.AbortWithError(c, http.StatusRequestEntityTooLarge, tooLargeMessage)
			return
		}
		middlewares.AbortWithErrorType(c, http.StatusUnprocessableEntity, middlewares.ErrorTypeValidation, "file is required")
		return
	}

	ext := filepath.Ext(header.Filename)
	if !s.Setting.IsAllowedExtension(ext) {
		middlewares.AbortWithError(c, http.StatusBadRequest, fmt.Sprintf(
			"File type not allowed. Allowed types: %s", strings.Join(s.Setting.ALLOWED_EXTENSIONS, ", ")))
		return
	}
	if header.Size > s.Setting.MAX_UPLOAD_BYTES {
		middlewares.AbortWithError(c, http.StatusRequestEntityTooLarge, tooLargeMessage)
		return
	}

	file, err := header.Open()
	if err != nil {
		middlewares.AbortWithError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	me := middlewares.CurrentUser(c)
	key := file_store.UploadKey(s.Setting.UPLOAD_ROOT, me.Id, ext)
	if err := s.Files.Store(c.Request.Context(), key, file); err != nil {
		Logger.Log.WithError(err).WithField("key", key).Error("fail to store uploaded file")
		middlewares.AbortWithErrorType(c, http.StatusInternalServerError, middlewares.ErrorTypeInternal, "Could not store file")
		return
	}

	media := s.Store.SaveMedia(c.Request.Context(), key, nil)
	if media == nil {
		// nothing references the file, drop it
		if err := s.Files.Delete(c.Request.Context(), key); err != nil {
			Logger.Log.WithError(err).WithField("key", key).Warn("fail to delete orphan file")
		}
		middlewares.AbortWithErrorType(c, http.StatusInternalServerError, middlewares.ErrorTypeDatabase, "Could not save media")
		return
	}
	s.Metrics.Observe(metrics.EventMediaUploaded)

	c.JSON(http.StatusCreated, gin.H{
		"result":   true,
		"media_id": media.Id,
	})
}
