package befast

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

// RegisterRoutes mounts the BEFAST endpoints on the cases group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/befast/:case_id", h.GetRecord)
	g.POST("/add-befast/:case_id", h.CreateRecord)
	g.PATCH("/update-befast/:case_id", h.UpdateRecord)
}

type createRequest struct {
	Balance string `json:"b"`
	Eyes    string `json:"e"`
	Face    string `json:"f"`
	Arms    string `json:"a"`
	Speech  string `json:"s"`
	Time    string `json:"t"`
}

type updateRequest struct {
	Balance *string `json:"b"`
	Eyes    *string `json:"e"`
	Face    *string `json:"f"`
	Arms    *string `json:"a"`
	Speech  *string `json:"s"`
	Time    *string `json:"t"`
}

func (h *Handler) CreateRecord(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("case_id"))
	if err != nil {
		return apperr.Validation("invalid case_id")
	}
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	rec := &Record{
		CaseID:  caseID,
		Balance: req.Balance,
		Eyes:    req.Eyes,
		Face:    req.Face,
		Arms:    req.Arms,
		Speech:  req.Speech,
		Time:    req.Time,
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
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	rec, err := h.svc.UpdateRecord(c.Request().Context(), caseID, UpdateFields{
		Balance: req.Balance,
		Eyes:    req.Eyes,
		Face:    req.Face,
		Arms:    req.Arms,
		Speech:  req.Speech,
		Time:    req.Time,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}
