package handlers

import (
	"net/http"
	"strings"

	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/adapter/http/middleware"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the PDF slots of simulations and policies. The
// entity kind is fixed per route group; the slot comes from the path.
type DocumentHandler struct {
	usecase usecase.IAttachmentUseCase
}

func NewDocumentHandler(uc usecase.IAttachmentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func documentTarget(c *gin.Context, kind entities.EntityKind) (entities.EntityRef, entities.DocumentSlot) {
	slot := entities.DocumentSlot(strings.TrimSpace(c.Param("slot")))
	if kind == entities.EntityKindSimulation {
		slot = entities.SlotQuote
	}
	return entities.EntityRef{Kind: kind, ID: c.Param("id")}, slot
}

// UploadPolicyDocument godoc
// @Summary      Attach a policy PDF
// @Description  Administrators only. policy.pdf puts the policy in force; green-card.pdf is only accepted for auto policies.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        id    path      string  true  "Policy id"
// @Param        slot  path      string  true  "policy.pdf, receipt.pdf, conditions.pdf or green-card.pdf"
// @Param        file  formData  file    true  "PDF (max 2 MiB)"
// @Success      200   {object}  response.UploadResponse
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Failure      415   {object}  pkg.HTTPError
// @Router       /policies/{id}/documents/{slot} [put]
func (h *DocumentHandler) UploadPolicyDocument(c *gin.Context) {
	if !requireUploader(c) {
		return
	}
	doc, ok := readUpload(c)
	if !ok {
		writeError(c, errMissingFile)
		return
	}

	ref, slot := documentTarget(c, entities.EntityKindPolicy)
	res, err := h.usecase.Upload(c.Request.Context(), middleware.Principal(c), ref, slot, doc)
	if err != nil {
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUploadResult(res))
}

// DeletePolicyDocument godoc
// @Summary      Remove a policy PDF
// @Description  Administrators only. The policy status is left unchanged.
// @Tags         documents
// @Security     Bearer
// @Param        id    path  string  true  "Policy id"
// @Param        slot  path  string  true  "Document slot"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Router       /policies/{id}/documents/{slot} [delete]
func (h *DocumentHandler) DeletePolicyDocument(c *gin.Context) {
	h.delete(c, entities.EntityKindPolicy)
}

// DeleteQuoteDocument godoc
// @Summary      Remove the quote PDF
// @Description  Administrators only. The simulation stays quoted.
// @Tags         documents
// @Security     Bearer
// @Param        id  path  string  true  "Simulation id"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Router       /simulations/{id}/documents/quote.pdf [delete]
func (h *DocumentHandler) DeleteQuoteDocument(c *gin.Context) {
	h.delete(c, entities.EntityKindSimulation)
}

func (h *DocumentHandler) delete(c *gin.Context, kind entities.EntityKind) {
	ref, slot := documentTarget(c, kind)
	if err := h.usecase.Delete(c.Request.Context(), middleware.Principal(c), ref, slot); err != nil {
		writeError(c, mapDocumentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadPolicyDocument godoc
// @Summary      Download a policy PDF
// @Description  Redirects to a short-lived link. With format=json the link is returned in the body.
// @Tags         documents
// @Produce      json
// @Security     Bearer
// @Param        id      path   string  true   "Policy id"
// @Param        slot    path   string  true   "Document slot"
// @Param        format  query  string  false  "json"
// @Success      200  {object}  map[string]string
// @Success      307
// @Failure      404  {object}  pkg.HTTPError
// @Router       /policies/{id}/documents/{slot} [get]
func (h *DocumentHandler) DownloadPolicyDocument(c *gin.Context) {
	h.download(c, entities.EntityKindPolicy)
}

// DownloadQuoteDocument godoc
// @Summary      Download the quote PDF
// @Tags         documents
// @Produce      json
// @Security     Bearer
// @Param        id      path   string  true   "Simulation id"
// @Param        format  query  string  false  "json"
// @Success      200  {object}  map[string]string
// @Success      307
// @Failure      404  {object}  pkg.HTTPError
// @Router       /simulations/{id}/documents/quote.pdf [get]
func (h *DocumentHandler) DownloadQuoteDocument(c *gin.Context) {
	h.download(c, entities.EntityKindSimulation)
}

func (h *DocumentHandler) download(c *gin.Context, kind entities.EntityKind) {
	ref, slot := documentTarget(c, kind)
	url, err := h.usecase.Locate(c.Request.Context(), middleware.Principal(c), ref, slot)
	if err != nil {
		writeError(c, mapDocumentError(err))
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}
