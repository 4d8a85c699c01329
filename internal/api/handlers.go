package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/zeebo/xxh3"

	"skyline/internal/engine"
	"skyline/internal/input"
	"skyline/internal/models"
	"skyline/internal/skyline"
)

const (
	endpointSkyline = "skyline"
	endpointBatch   = "batch"
)

type batchRequest struct {
	Sets []json.RawMessage `json:"sets"`
}

type Handler struct {
	metrics      *Metrics
	workers      int
	maxBuildings int
}

func NewHandler(metrics *Metrics, workers, maxBuildings int) *Handler {
	return &Handler{metrics: metrics, workers: workers, maxBuildings: maxBuildings}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/skyline", h.PostSkyline)
	api.POST("/skyline/batch", h.PostBatch)
	api.GET("/health", h.GetHealth)

	e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
}

// --- HANDLERS ---

// PostSkyline computes the skyline for a body of [[left, right, height], ...].
// Identical bodies produce identical results, so the body hash is the ETag.
func (h *Handler) PostSkyline(c echo.Context) error {
	start := time.Now()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	buildings, err := input.ParseJSON(body)
	if err != nil {
		h.metrics.observe(endpointSkyline, outcomeInvalid, time.Since(start))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	if err := h.checkSize(len(buildings)); err != nil {
		h.metrics.observe(endpointSkyline, outcomeInvalid, time.Since(start))
		return err
	}

	etag := strconv.Quote(fmt.Sprintf("%016x", xxh3.Hash(body)))
	if c.Request().Header.Get("If-None-Match") == etag {
		h.metrics.observe(endpointSkyline, outcomeNotModified, time.Since(start))
		return c.NoContent(http.StatusNotModified)
	}

	res, err := engine.Result(buildings)
	if err != nil {
		h.metrics.observe(endpointSkyline, outcomeFor(err), time.Since(start))
		return toHTTPError(err)
	}

	h.metrics.observeSet(res.Buildings, len(res.Skyline))
	h.metrics.observe(endpointSkyline, outcomeOK, time.Since(start))

	c.Response().Header().Set("ETag", etag)
	return c.JSON(http.StatusOK, res)
}

// PostBatch computes every set of {"sets": [...]} concurrently.
func (h *Handler) PostBatch(c echo.Context) error {
	start := time.Now()

	var req batchRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.observe(endpointBatch, outcomeInvalid, time.Since(start))
		return err
	}

	sets := make([][]skyline.Building, len(req.Sets))
	total := 0
	for i, raw := range req.Sets {
		buildings, err := input.ParseJSON(raw)
		if err != nil {
			h.metrics.observe(endpointBatch, outcomeInvalid, time.Since(start))
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("set %d: %v", i, err)).SetInternal(err)
		}
		sets[i] = buildings
		// An empty set still costs a task.
		total += max(len(buildings), 1)
	}
	if err := h.checkSize(total); err != nil {
		h.metrics.observe(endpointBatch, outcomeInvalid, time.Since(start))
		return err
	}

	results, err := engine.ComputeBatch(c.Request().Context(), sets, h.workers)
	if err != nil {
		h.metrics.observe(endpointBatch, outcomeFor(err), time.Since(start))
		return toHTTPError(err)
	}

	for _, res := range results {
		h.metrics.observeSet(res.Buildings, len(res.Skyline))
	}
	h.metrics.observe(endpointBatch, outcomeOK, time.Since(start))

	return c.JSON(http.StatusOK, models.BatchResponse{Results: results})
}

func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Health{Status: "ok"})
}

func (h *Handler) checkSize(n int) error {
	if n > h.maxBuildings {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("too many buildings: %d > %d", n, h.maxBuildings))
	}
	return nil
}

func outcomeFor(err error) string {
	var be *skyline.BuildingError
	if errors.As(err, &be) {
		return outcomeInvalid
	}
	return outcomeError
}

func toHTTPError(err error) error {
	var be *skyline.BuildingError
	if errors.As(err, &be) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return err
}
