package patient

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

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
	g.POST("/create", h.CreatePatient)
	g.GET("", h.ListPatients)
	g.GET("/:id", h.GetPatient)
	g.PATCH("/update/:id", h.UpdatePatient)
	g.DELETE("/delete/:id", h.DeletePatient)
}

type createRequest struct {
	Name     string   `json:"name"`
	Gender   string   `json:"gender"`
	DOB      string   `json:"dob"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Address  string   `json:"address"`
	Symptoms string   `json:"symptoms"`
}

type updateRequest struct {
	Name     *string  `json:"name"`
	Gender   *string  `json:"gender"`
	DOB      *string  `json:"dob"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Address  *string  `json:"address"`
	Symptoms *string  `json:"symptoms"`
	RegID    *string  `json:"reg_id"`
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	p := &Patient{
		Name:     req.Name,
		Gender:   req.Gender,
		Weight:   req.Weight,
		Height:   req.Height,
		Address:  req.Address,
		Symptoms: req.Symptoms,
	}
	if req.DOB != "" {
		dob, err := parseDate(req.DOB)
		if err != nil {
			return apperr.Validation("invalid dob: %s", req.DOB)
		}
		p.DOB = &dob
	}

	if err := h.svc.CreatePatient(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	patients, total, err := h.svc.ListPatients(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(patients, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	fields := UpdateFields{
		Name:     req.Name,
		Gender:   req.Gender,
		Weight:   req.Weight,
		Height:   req.Height,
		Address:  req.Address,
		Symptoms: req.Symptoms,
		RegID:    req.RegID,
	}
	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			return apperr.Validation("invalid dob: %s", *req.DOB)
		}
		fields.DOB = &dob
	}

	p, err := h.svc.UpdatePatient(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid id")
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Patient with ID " + id.String() + " has been deleted",
	})
}

// parseDate accepts the date-only form the intake UI sends and full RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
