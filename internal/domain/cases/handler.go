package cases

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stroketeam/fasttrack/internal/domain/patient"
	"github.com/stroketeam/fasttrack/internal/platform/apperr"
	"github.com/stroketeam/fasttrack/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/create", h.CreateCase)
	g.GET("", h.ListCases)
	g.GET("/active/only", h.ListActive)
	g.GET("/admit/only", h.ListAdmit)
	g.GET("/patient/:id", h.GetByPatient)
	g.GET("/:id", h.GetCase)
	g.PATCH("/update/:id", h.UpdateCase)
	g.PATCH("/finish/:id", h.FinishCase)
	g.DELETE("/delete/:id", h.DeleteCase)
}

type createRequest struct {
	Name    string   `json:"name"`
	Gender  string   `json:"gender"`
	DOB     string   `json:"dob"`
	Weight  *float64 `json:"weight"`
	Height  *float64 `json:"height"`
	Address string   `json:"address"`
	Onset   string   `json:"onset"`
}

type updateRequest struct {
	Status *string `json:"status"`
	Onset  *string `json:"onset"`
}

type createResponse struct {
	Patient *patient.Patient `json:"patient"`
	Case    *Case            `json:"case"`
}

func (h *Handler) CreateCase(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	in := CreateInput{
		Name:    req.Name,
		Gender:  req.Gender,
		Weight:  req.Weight,
		Height:  req.Height,
		Address: req.Address,
	}
	if req.DOB != "" {
		dob, err := parseDate(req.DOB)
		if err != nil {
			return apperr.Validation("invalid dob: %s", req.DOB)
		}
		in.DOB = &dob
	}
	if req.Onset != "" {
		onset, err := parseDate(req.Onset)
		if err != nil {
			return apperr.Validation("invalid onset: %s", req.Onset)
		}
		in.Onset = &onset
	}

	p, cs, err := h.svc.CreateCase(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createResponse{Patient: p, Case: cs})
}

func (h *Handler) ListCases(c echo.Context) error {
	pg := pagination.FromContext(c)
	list, total, err := h.svc.ListCases(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(list, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListActive(c echo.Context) error {
	return h.listByStatus(c, StatusActive)
}

func (h *Handler) ListAdmit(c echo.Context) error {
	return h.listByStatus(c, StatusAdmit)
}

func (h *Handler) listByStatus(c echo.Context, status string) error {
	list, err := h.svc.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetCase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	cs, err := h.svc.GetCase(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *Handler) GetByPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	pc, err := h.svc.GetByPatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pc)
}

func (h *Handler) UpdateCase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	fields := UpdateFields{Status: req.Status}
	if req.Onset != nil {
		onset, err := parseDate(*req.Onset)
		if err != nil {
			return apperr.Validation("invalid onset: %s", *req.Onset)
		}
		fields.Onset = &onset
	}

	cs, err := h.svc.UpdateCase(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *Handler) FinishCase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	cs, err := h.svc.FinishCase(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *Handler) DeleteCase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	if err := h.svc.DeleteCase(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Case with ID " + id.String() + " has been deleted",
	})
}

// parseDate accepts the date-only form the intake UI sends and full RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
