package handlers

import (
	"io"

	"seguros_xpto/internal/adapter/http/middleware"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const uploadField = "file"

// requireUploader rejects callers that may not attach documents before the
// request body is read. Only administrators upload.
func requireUploader(c *gin.Context) bool {
	p := middleware.Principal(c)
	switch {
	case !p.IsAuthenticated():
		writeError(c, mapCommonError(usecase.ErrUnauthenticated))
		return false
	case !p.IsAdmin():
		writeError(c, mapCommonError(usecase.ErrForbidden))
		return false
	}
	return true
}

// readUpload reads the multipart "file" field. At most one byte past the
// largest slot ceiling is read so oversized uploads still fail the size check.
func readUpload(c *gin.Context) (entities.Document, bool) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return entities.Document{}, false
	}
	f, err := fh.Open()
	if err != nil {
		return entities.Document{}, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, entities.MaxPolicyDocumentLen+1))
	if err != nil {
		return entities.Document{}, false
	}
	return entities.Document{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, true
}
