package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// allowed image extensions for uploads
var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadImage receives a multipart "file" field, stores it under a
// generated name and returns the public URL.
func (h *ContentHandler) UploadImage(c echo.Context) error {
	if h.Uploads == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "uploads not configured"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file field required"})
	}
	name := fh.Filename
	dot := strings.LastIndex(name, ".")
	if dot < 0 || !allowedImageExt[strings.ToLower(name[dot:])] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported file type"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read file"})
	}
	defer src.Close()

	url, err := h.Uploads.Save(name, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store file failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
