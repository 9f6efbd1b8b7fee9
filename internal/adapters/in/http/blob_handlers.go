package http

import (
	"io"
	"net/http"

	"pharmacy/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// maxBlobSize caps uploads at 8 MiB, plenty for packaging photos.
const maxBlobSize = 8 << 20

// BlobReference points at a stored blob.
type BlobReference struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// UploadBlob handles POST /api/v1/blobs. The request body is stored verbatim
// under a fresh id; the Content-Type header is kept for serving.
func (s *Server) UploadBlob(ctx echo.Context) error {
	data, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxBlobSize+1))
	if err != nil {
		return badRequest(ctx, "Failed to read request body")
	}
	if len(data) == 0 {
		return badRequest(ctx, "Empty request body")
	}
	if len(data) > maxBlobSize {
		return ctx.JSON(http.StatusRequestEntityTooLarge, Error{
			Code:    http.StatusRequestEntityTooLarge,
			Message: "Blob exceeds the size limit",
		})
	}

	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	id, err := s.deps.BlobStore.Put(ctx.Request().Context(), data, contentType)
	if err != nil {
		return respondError(ctx, err)
	}

	url, err := s.deps.BlobStore.GetURL(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BlobReference{
		ID:  id.String(),
		URL: url,
	})
}

// GetBlob handles GET /api/v1/blobs/:id.
func (s *Server) GetBlob(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid blob id")
	}

	data, contentType, err := s.deps.BlobStore.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, contentType, data)
}
