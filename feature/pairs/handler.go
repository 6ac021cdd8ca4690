package pairs

import (
	"errors"
	"strconv"

	"pair-compare/core/compare"
	"pair-compare/core/logger"
	"pair-compare/core/storage"
	"pair-compare/core/table"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for pair generation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the pairs routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/pairs")
	group.Post("/generate", h.HandleGenerate)
}

// HandleGenerate generates every pair of the uploaded ids.
// @Summary Generate Pairs
// @Description Reads an id list (CSV or XLSX) and returns a workbook with every unordered pair of distinct ids.
// @Tags pairs
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "Id list"
// @Param column formData string false "Id column, guessed when empty"
// @Param store query boolean false "Archive the workbook in storage"
// @Success 200 {file} file "pairs_table.xlsx"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /pairs/generate [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	ids, err := table.ReadUpload(fh)
	if err != nil {
		l.Warn("Unreadable id list, treating as empty", zap.String("file", fh.Filename), zap.Error(err))
		ids = table.Empty(fh.Filename)
	}

	out, err := h.service.Generate(c.Context(), ids, c.FormValue("column"), c.Query("store") == "true")
	if err != nil {
		if errors.Is(err, compare.ErrColumnNotFound) || errors.Is(err, storage.ErrDisabled) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Pair generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("X-Pair-Count", strconv.Itoa(out.Count))
	if out.Object != "" {
		c.Set("X-Object-Name", out.Object)
	}
	c.Attachment(FileName)
	c.Set(fiber.HeaderContentType, storage.XLSXContentType)
	return c.Send(out.Workbook)
}
