package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio-api/internal/api/metrics"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
)

// UploadHandler accepts image files and hands them to the configured file
// store. The pipeline only ever sees the returned reference paths.
type UploadHandler struct {
	store ports.FileStore
}

func NewUploadHandler(store ports.FileStore) *UploadHandler {
	return &UploadHandler{store: store}
}

type uploadResponse struct {
	Msg     string `json:"msg"`
	FileURL string `json:"file_url"`
}

type uploadBatchResponse struct {
	Msg      string   `json:"msg"`
	FileURLs []string `json:"file_urls"`
}

// UploadOne handles POST /uploads with a single "file" form part.
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File to store"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) UploadOne(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	url, err := h.save(c, fh)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadResponse{Msg: "file uploaded", FileURL: url})
}

// UploadMany handles POST /uploads/batch with repeated "files" form parts.
//
// @Summary      Upload multiple files
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files  formData  file  true  "Files to store"
// @Success      201    {object}  uploadBatchResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /uploads/batch [post]
func (h *UploadHandler) UploadMany(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "files are required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "files are required")
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.save(c, fh)
		if err != nil {
			return err
		}
		urls = append(urls, url)
	}

	return c.JSON(http.StatusCreated, uploadBatchResponse{Msg: "files uploaded", FileURLs: urls})
}

func (h *UploadHandler) save(c echo.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	url, err := h.store.Save(c.Request().Context(), fh.Filename, src, fh.Size)
	if err != nil {
		return "", err
	}

	metrics.UploadsTotal.WithLabelValues(h.store.Name()).Inc()
	return url, nil
}
