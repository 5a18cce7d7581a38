package handler

import (
	"net/http"

	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/deppfellow/schoolsite/internal/storage"
	"github.com/deppfellow/schoolsite/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type GalleryHandler struct {
	Handler
}

// UploadGalleryRequest holds the form fields sent next to the "image" file part.
type UploadGalleryRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category" validate:"omitempty,oneof=events facilities sports academic general"`
}

func (r *UploadGalleryRequest) Validate() error {
	r.Title = validation.SanitizeString(r.Title)
	r.Description = validation.SanitizeString(r.Description)
	r.Category = validation.SanitizeString(r.Category)
	return validation.Struct(r)
}

func (h *GalleryHandler) List(c echo.Context, _ *EmptyRequest) ([]*model.GalleryImage, error) {
	return h.services.Gallery.List(c.Request().Context())
}

// Upload stores the "image" file part. A part sent with an empty filename
// arrives as a plain form value, which is how an unselected file input is
// told apart from a missing one.
func (h *GalleryHandler) Upload(c echo.Context, req *UploadGalleryRequest) (*model.GalleryImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if form := c.Request().MultipartForm; form != nil {
			if _, sent := form.Value["image"]; sent {
				return nil, errs.NewBadRequestError("No file selected", nil, nil)
			}
		}
		return nil, errs.NewBadRequestError("No image file provided", nil, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	return h.services.Gallery.Upload(c.Request().Context(), service.GalleryUpload{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.GalleryCategory(req.Category),
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		Body:        file,
	})
}

// ServeUpload streams a stored upload. Unknown and malformed keys are both 404.
func (h *GalleryHandler) ServeUpload(c echo.Context) error {
	obj, err := h.services.Gallery.Open(c.Request().Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return errs.NewNotFoundError("File not found", nil)
		}
		return err
	}
	defer obj.Body.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Stream(http.StatusOK, obj.ContentType, obj.Body)
}
