package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	backupUC "fundcircle-backend/internal/usecase/backup"
)

type BackupHandler struct{ uc *backupUC.Usecase }

func NewBackupHandler(uc *backupUC.Usecase) *BackupHandler { return &BackupHandler{uc: uc} }

// Export streams the full entity set as one JSON document.
func (h *BackupHandler) Export(c echo.Context) error {
	snap, err := h.uc.Export(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "backup failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="fundcircle_backup.json"`)
	return c.JSON(http.StatusOK, snap)
}

// Restore replaces all collections with the posted snapshot.
func (h *BackupHandler) Restore(c echo.Context) error {
	var snap backupUC.Snapshot
	if err := c.Bind(&snap); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid snapshot"})
	}
	if err := h.uc.Import(c.Request().Context(), &snap); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "restore failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
