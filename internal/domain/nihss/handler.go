package nihss

import (
	"net/http"
	"strconv"

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

// RegisterRoutes mounts the NIHSS endpoints on the cases group. The
// round travels in the body for writes and in the optional `round`
// query parameter for reads.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/nihss/:case_id", h.GetEntries)
	g.POST("/nihss/:case_id", h.CreateEntry)
	g.PATCH("/nihss/:case_id", h.UpdateEntry)
}

type request struct {
	Round     *int      `json:"round"`
	Checklist Checklist `json:"checklist"`
}

func (h *Handler) CreateEntry(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		return apperr.Validation("invalid case_id")
	}
	var req request
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if req.Round == nil {
		return apperr.Validation("round is required")
	}

	e, err := h.svc.CreateEntry(c.Request().Context(), caseID, *req.Round, req.Checklist)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) GetEntries(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		return apperr.Validation("invalid case_id")
	}

	if raw := c.QueryParam("round"); raw != "" {
		round, err := strconv.Atoi(raw)
		if err != nil {
			return apperr.Validation("invalid round: %s", raw)
		}
		e, err := h.svc.GetEntry(c.Request().Context(), caseID, round)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, e)
	}

	list, err := h.svc.ListEntries(c.Request().Context(), caseID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UpdateEntry(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		return apperr.Validation("invalid case_id")
	}
	var req request
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if req.Round == nil {
		return apperr.Validation("round is required")
	}

	e, err := h.svc.UpdateEntry(c.Request().Context(), caseID, *req.Round, req.Checklist)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}
