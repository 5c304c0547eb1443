package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/campus_cleanliness_system/internal/config"
	"github.com/shenikar/campus_cleanliness_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	detectionService service.DetectionService
	reportService    service.ReportService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
	storeAvailable   bool
}

func NewHandler(
	detectionService service.DetectionService,
	reportService service.ReportService,
	logger *logrus.Logger,
	cfg *config.Config,
	storeAvailable bool,
) *Handler {
	return &Handler{
		detectionService: detectionService,
		reportService:    reportService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
		storeAvailable:   storeAvailable,
	}
}

// @Summary Service health string
// @Description Get a plain text health string including store connectivity status
// @Tags System
// @Produce plain
// @Success 200 {string} string "Health string"
// @Router / [get]
func (h *Handler) home(c *gin.Context) {
	storeStatus := "connected"
	if !h.storeAvailable {
		storeStatus = "unavailable"
	}
	c.String(http.StatusOK, fmt.Sprintf(
		"Campus Cleanliness Monitoring API is running (DB: %s, store: %s).",
		h.cfg.MongoDBName, storeStatus,
	))
}

// @Summary Upload evidence and run detection
// @Description Accepts a multipart image upload, runs simulated detection and logs the incident. Store failures never fail the request.
// @Tags Detection
// @Accept mpfd
// @Produce json
// @Param image formData file true "Evidence image"
// @Param location_id formData string false "Location identifier" default(Unknown Zone)
// @Success 201 {object} DetectResponse
// @Failure 400 {object} ErrorResponse "No image file provided"
// @Failure 500 {object} ErrorResponse "Inference failed"
// @Router /api/detect_and_report [post]
func (h *Handler) detectAndReport(c *gin.Context) {
	log := h.logger.WithField("method", "detectAndReport")

	var input DetectRequest
	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "invalid request form"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.WithError(err).Warn("Upload without image file")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "No image file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "failed to read uploaded image"})
		return
	}
	defer file.Close()

	outcome, err := h.detectionService.DetectAndReport(c.Request.Context(), file, input.LocationID)
	if err != nil {
		log.WithError(err).Error("Failed to process upload in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "AI model inference failed"})
		return
	}

	c.JSON(http.StatusCreated, OutcomeToDetectResponse(outcome))
}

// @Summary Get aggregated dashboard report
// @Description Get summary metrics, detection type histogram, hourly histogram and per-location cleanliness scores. Returns static defaults when the store is unavailable.
// @Tags Analytics
// @Produce json
// @Success 200 {object} ReportResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/get_reports [get]
func (h *Handler) getReports(c *gin.Context) {
	log := h.logger.WithField("method", "getReports")

	report, err := h.reportService.BuildReport(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build report in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ReportToResponse(report))
}
