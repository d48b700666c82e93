package handlers

import (
	"fmt"
	"net/http"
	"time"

	"seguros_xpto/internal/adapter/http/middleware"
	"seguros_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	usecase usecase.IExportUseCase
	now     func() time.Time
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc, now: time.Now}
}

// ExportPolicies godoc
// @Summary      Export policies
// @Description  Administrators only. Spreadsheet with one row per policy.
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     Bearer
// @Success      200
// @Failure      403  {object}  pkg.HTTPError
// @Router       /admin/policies/export [get]
func (h *ExportHandler) ExportPolicies(c *gin.Context) {
	body, err := h.usecase.ExportPolicies(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}

	filename := fmt.Sprintf("apolices-%s.xlsx", h.now().UTC().Format("20060102-1504"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, body)
}
