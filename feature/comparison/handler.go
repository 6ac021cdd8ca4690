package comparison

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"pair-compare/core/compare"
	"pair-compare/core/database"
	"pair-compare/core/logger"
	"pair-compare/core/storage"
	"pair-compare/core/table"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errBadRequest marks malformed form input.
var errBadRequest = errors.New("bad request")

var clientErrors = []error{
	errBadRequest,
	compare.ErrMissingRole,
	compare.ErrColumnNotFound,
	compare.ErrDuplicateLookupID,
	compare.ErrInvalidPolicy,
	compare.ErrRowOutOfRange,
	storage.ErrDisabled,
	database.ErrDisabled,
	database.ErrTableNotFound,
}

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/comparison")
	group.Post("/columns", h.HandleColumns)
	group.Post("/build", h.HandleBuild)
	group.Post("/detail", h.HandleDetail)
	group.Post("/export", h.HandleExport)
}

// HandleColumns lists the columns of the uploaded tables with suggested roles.
// @Summary List Columns
// @Description Reads the pairs and lookup tables and returns their typed columns, suggested roles and display options.
// @Tags comparison
// @Accept multipart/form-data
// @Produce json
// @Param pairs formData file false "Pairs table"
// @Param lookup formData file false "Lookup table"
// @Param pairs_object formData string false "Pairs table object in storage"
// @Param lookup_object formData string false "Lookup table object in storage"
// @Param lookup_table formData string false "Lookup table in the database"
// @Success 200 {object} ColumnsReport
// @Failure 400 {object} map[string]string "Bad Request"
// @Security ApiKeyAuth
// @Router /comparison/columns [post]
func (h *Handler) HandleColumns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	pairs, lookup, err := h.service.Tables(c.Context(), l, sources(c))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(h.service.Columns(pairs, lookup))
}

// HandleBuild builds the merged comparison table.
// @Summary Build Comparison
// @Description Joins the pairs against the lookup table and computes shared and unique attribute values.
// @Tags comparison
// @Accept multipart/form-data
// @Produce json
// @Param pairs formData file false "Pairs table"
// @Param lookup formData file false "Lookup table"
// @Param lookup_table formData string false "Lookup table in the database"
// @Param request formData string true "Build request (JSON)"
// @Success 200 {object} compare.Result
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /comparison/build [post]
func (h *Handler) HandleBuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.build(c, l)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandleDetail returns the drill-down of one merged row.
// @Summary Row Detail
// @Description Builds the comparison and returns the names, usage values and token lists of one row. A posted "values" object is parsed directly instead.
// @Tags comparison
// @Accept multipart/form-data
// @Produce json
// @Param pairs formData file false "Pairs table"
// @Param lookup formData file false "Lookup table"
// @Param request formData string true "Build request (JSON)"
// @Param row formData int false "Row index"
// @Param values formData string false "Row values (JSON object)"
// @Param columns formData string false "Column order of values (JSON array)"
// @Success 200 {object} compare.Detail
// @Failure 400 {object} map[string]string "Bad Request"
// @Security ApiKeyAuth
// @Router /comparison/detail [post]
func (h *Handler) HandleDetail(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if raw := c.FormValue("values"); raw != "" {
		detail, err := detailFromForm(c, raw)
		if err != nil {
			return h.fail(c, l, err)
		}
		return c.JSON(detail)
	}

	idx, err := strconv.Atoi(c.FormValue("row", "0"))
	if err != nil {
		return h.fail(c, l, fmt.Errorf("%w: row must be an integer", errBadRequest))
	}
	result, err := h.build(c, l)
	if err != nil {
		return h.fail(c, l, err)
	}
	detail, err := compare.DetailAt(result, idx)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(detail)
}

// HandleExport returns the merged comparison as a styled workbook.
// @Summary Export Comparison
// @Description Builds the comparison and returns it as merged_comparison.xlsx with colored shared and unique columns.
// @Tags comparison
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param pairs formData file false "Pairs table"
// @Param lookup formData file false "Lookup table"
// @Param request formData string true "Build request (JSON)"
// @Param store query boolean false "Archive the workbook in storage"
// @Success 200 {file} file "merged_comparison.xlsx"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /comparison/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.build(c, l)
	if err != nil {
		return h.fail(c, l, err)
	}
	out, err := h.service.Export(c.Context(), l, result, c.Query("store") == "true")
	if err != nil {
		return h.fail(c, l, err)
	}

	if out.Object != "" {
		c.Set("X-Object-Name", out.Object)
	}
	c.Attachment(FileName)
	c.Set(fiber.HeaderContentType, storage.XLSXContentType)
	return c.Send(out.Workbook)
}

func (h *Handler) build(c *fiber.Ctx, l *zap.Logger) (*compare.Result, error) {
	req, err := buildRequest(c)
	if err != nil {
		return nil, err
	}
	pairs, lookup, err := h.service.Tables(c.Context(), l, sources(c))
	if err != nil {
		return nil, err
	}
	return h.service.Build(l, pairs, lookup, req)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			l.Warn("Rejected comparison request", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	l.Error("Comparison request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func sources(c *fiber.Ctx) Sources {
	src := Sources{
		PairsObject:  c.FormValue("pairs_object"),
		LookupObject: c.FormValue("lookup_object"),
		LookupTable:  c.FormValue("lookup_table"),
	}
	if fh, err := c.FormFile("pairs"); err == nil {
		src.Pairs = fh
	}
	if fh, err := c.FormFile("lookup"); err == nil {
		src.Lookup = fh
	}
	return src
}

func buildRequest(c *fiber.Ctx) (compare.Request, error) {
	var req compare.Request
	raw := c.FormValue("request")
	if raw == "" {
		return req, fmt.Errorf("%w: request is required", errBadRequest)
	}
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return req, fmt.Errorf("%w: invalid request: %v", errBadRequest, err)
	}
	return req, nil
}

func detailFromForm(c *fiber.Ctx, raw string) (compare.Detail, error) {
	var values table.Row
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return compare.Detail{}, fmt.Errorf("%w: invalid values: %v", errBadRequest, err)
	}

	var columns []string
	if rawCols := c.FormValue("columns"); rawCols != "" {
		if err := json.Unmarshal([]byte(rawCols), &columns); err != nil {
			return compare.Detail{}, fmt.Errorf("%w: invalid columns: %v", errBadRequest, err)
		}
	} else {
		for col := range values {
			columns = append(columns, col)
		}
		sort.Strings(columns)
	}

	var specs []compare.ColumnSpec
	if c.FormValue("request") != "" {
		req, err := buildRequest(c)
		if err != nil {
			return compare.Detail{}, err
		}
		specs = req.Compare
		if specs == nil && req.Roles.Meta != "" {
			specs = []compare.ColumnSpec{{Source: req.Roles.Meta}}
		}
	}
	return compare.DetailFromValues(values, columns, specs), nil
}
