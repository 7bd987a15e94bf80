package ctresult

import (
	"net/http"

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

// RegisterRoutes mounts the CT result endpoints on the cases group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/ct_result/:case_id", h.GetRecord)
	g.POST("/ct_result/:case_id", h.CreateRecord)
	g.PATCH("/ct_result/:case_id", h.UpdateRecord)
}

type request struct {
	Result string `json:"result"`
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
	rec, err := h.svc.CreateRecord(c.Request().Context(), caseID, req.Result)
	if err != nil {
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
	rec, err := h.svc.UpdateRecord(c.Request().Context(), caseID, req.Result)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}
