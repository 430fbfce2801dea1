// internal/handlers/snapshot.go
package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phixforge/phixforge-backend/internal/services"
	"github.com/phixforge/phixforge-backend/internal/utils"
)

// maxSnapshotSize caps import payloads; whole-store snapshots of this tool
// are far below this even with years of data.
const maxSnapshotSize = 32 << 20

type SnapshotHandler struct {
	snapshotService *services.SnapshotService
}

func NewSnapshotHandler(snapshotService *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// GET /export
func (h *SnapshotHandler) Export(c *gin.Context) {
	data, err := h.snapshotService.Export()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	fileName := fmt.Sprintf("phixforge_export_%s.json", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(200, "application/json", data)
}

// POST /import
func (h *SnapshotHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSnapshotSize))
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read payload", nil)
		return
	}

	summary, err := h.snapshotService.Import(data)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"imported": summary})
}
