package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"campus-market/services/market/helpers"
	"campus-market/utils"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// UploadImageHandler handles POST /uploads. The stored path is what callers
// put in listing image arrays and message image fields.
func (h *UploadHandler) UploadImageHandler(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		helpers.HandleBindError(c, "UploadImageHandler", err)
		return
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dest := filepath.Join(h.dir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, fmt.Errorf("failed to store upload: %w", err), "failed to store upload")
		utils.Error("UploadImageHandler: failed to store upload", map[string]any{
			"filename": file.Filename,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"path": dest}, "image uploaded successfully")
	helpers.LogSuccess("UploadImageHandler", "image uploaded successfully", map[string]any{
		"path": dest,
		"size": file.Size,
	})
}
