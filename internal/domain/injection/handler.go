package injection

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the injection endpoints on the cases group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/injection/:case_id", h.GetRecord)
	g.POST("/injection/:case_id", h.CreateRecord)
	g.PATCH("/injection/:case_id", h.UpdateRecord)
	g.GET("/injection/dose/preview", h.DosePreview)
}

type request struct {
	Bolus          *float64 `json:"bolus"`
	Drip           *float64 `json:"drip"`
	BolusTimestamp *string  `json:"bolus_timestamp"`
	DripTimestamp  *string  `json:"drip_timestamp"`
	Doctor         *string  `json:"doctor"`
}

func (h *Handler) CreateRecord(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		return apperr.Validation("invalid case_id")
	}
	var req request
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	rec := &Record{
		CaseID: caseID,
		Bolus:  req.Bolus,
		Drip:   req.Drip,
		Doctor: req.Doctor,
	}
	if req.BolusTimestamp != nil {
		ts, err := parseTimestamp(*req.BolusTimestamp)
		if err != nil {
			return apperr.Validation("invalid bolus_timestamp: %s", *req.BolusTimestamp)
		}
		rec.BolusTimestamp = &ts
	}
	if req.DripTimestamp != nil {
		ts, err := parseTimestamp(*req.DripTimestamp)
		if err != nil {
			return apperr.Validation("invalid drip_timestamp: %s", *req.DripTimestamp)
		}
		rec.DripTimestamp = &ts
	}

	if err := h.svc.CreateRecord(c.Request().Context(), rec); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) GetRecord(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		return apperr.Validation("invalid case_id")
	}
	rec, err := h.svc.GetRecord(c.Request().Context(), caseID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) UpdateRecord(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		return apperr.Validation("invalid case_id")
	}
	var req request
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	fields := UpdateFields{
		Bolus:  req.Bolus,
		Drip:   req.Drip,
		Doctor: req.Doctor,
	}
	if req.BolusTimestamp != nil {
		ts, err := parseTimestamp(*req.BolusTimestamp)
		if err != nil {
			return apperr.Validation("invalid bolus_timestamp: %s", *req.BolusTimestamp)
		}
		fields.BolusTimestamp = &ts
	}
	if req.DripTimestamp != nil {
		ts, err := parseTimestamp(*req.DripTimestamp)
		if err != nil {
			return apperr.Validation("invalid drip_timestamp: %s", *req.DripTimestamp)
		}
		fields.DripTimestamp = &ts
	}

	rec, err := h.svc.UpdateRecord(c.Request().Context(), caseID, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// DosePreview computes the weight-based dose split without persisting
// anything. Weight arrives in the `weight` query parameter, kilograms.
func (h *Handler) DosePreview(c echo.Context) error {
	raw := c.QueryParam("weight")
	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return apperr.Validation("invalid weight: %s", raw)
	}
	dose, err := h.svc.DoseForPatientWeight(weight)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dose)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
