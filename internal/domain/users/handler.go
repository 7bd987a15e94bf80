package users

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
	"github.com/stroketeam/fasttrack/internal/platform/auth"
)

type Handler struct {
	svc      *Service
	sessions *auth.Manager
}

func NewHandler(svc *Service, sessions *auth.Manager) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/create", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me, auth.RequireAuth())

	admin := []echo.MiddlewareFunc{auth.RequireAuth(), auth.RequireRole(RoleAdmin)}
	g.GET("", h.List, admin...)
	g.GET("/:username", h.GetByUsername, admin...)
	g.PATCH("/update/:username", h.Update, admin...)
	g.PATCH("/setStatus", h.SetStatus, admin...)
	g.POST("/reset-password", h.ResetPassword, admin...)
	g.DELETE("/delete", h.Delete, admin...)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	u, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	u, err := h.svc.Login(c.Request().Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		return err
	}

	sess := &auth.Session{
		UserID:   u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
	}
	token, expires, err := h.sessions.Issue(sess)
	if err != nil {
		return apperr.Store(err)
	}
	c.SetCookie(h.sessions.Cookie(token, expires))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Logged in successfully",
		"user":    sess,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie())
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *Handler) Me(c echo.Context) error {
	sess := auth.SessionFromContext(c.Request().Context())
	if sess == nil {
		return apperr.NotFound("No user session found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"user": sess})
}

func (h *Handler) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetByUsername(c echo.Context) error {
	u, err := h.svc.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

type updateRequest struct {
	Role         *string `json:"role"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	DepartmentID *string `json:"department_id"`
}

func (h *Handler) Update(c echo.Context) error {
	username := c.Param("username")
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	err := h.svc.Update(c.Request().Context(), username, UpdateFields{
		Role:         req.Role,
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User %s has been updated", username),
	})
}

type usernameRequest struct {
	Username string `json:"username"`
}

func (h *Handler) SetStatus(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	status, err := h.svc.ToggleStatus(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User %s's status has been updated to %t", req.Username, status),
	})
}

type resetPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.ResetPassword(c.Request().Context(), req.Username, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Password for %s has been reset", req.Username),
	})
}

func (h *Handler) Delete(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.Delete(c.Request().Context(), req.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User %s has been deleted", req.Username),
	})
}
