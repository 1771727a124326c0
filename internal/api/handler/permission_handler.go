package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/identityservice/identity-service/internal/api/metrics"
	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

// PermissionHandler handles HTTP requests for permission lifecycle operations.
type PermissionHandler struct {
	service ports.PermissionService
}

func NewPermissionHandler(service ports.PermissionService) *PermissionHandler {
	return &PermissionHandler{service: service}
}

type createPermissionRequest struct {
	Name        string `json:"name"        validate:"required,max=25"`
	Description string `json:"description" validate:"omitempty,max=50"`
}

type updatePermissionRequest struct {
	Description *string `json:"description" validate:"omitempty,max=50"`
}

type permissionResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func toPermissionResponse(p *domain.Permission) permissionResponse {
	return permissionResponse{Name: p.Name, Description: p.Description}
}

// Create registers a new permission.
//
// @Summary      Create a permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPermissionRequest  true  "Permission details"
// @Success      201   {object}  permissionResponse
// @Failure      409   {object}  map[string]string
// @Router       /permissions [post]
func (h *PermissionHandler) Create(c echo.Context) error {
	var req createPermissionRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	permission, err := h.service.Create(c.Request().Context(), ports.CreatePermissionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("permission", "create").Inc()
	return created(c, toPermissionResponse(permission))
}

// GetAll lists every permission.
//
// @Summary      List permissions
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  permissionResponse
// @Router       /permissions [get]
func (h *PermissionHandler) GetAll(c echo.Context) error {
	permissions, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]permissionResponse, 0, len(permissions))
	for i := range permissions {
		resp = append(resp, toPermissionResponse(&permissions[i]))
	}
	return ok(c, resp)
}

// Update applies a partial update to a permission.
//
// @Summary      Update a permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string                   true  "Permission name"
// @Param        body  body      updatePermissionRequest  true  "Fields to change"
// @Success      200   {object}  permissionResponse
// @Failure      404   {object}  map[string]string
// @Router       /permissions/{name} [put]
func (h *PermissionHandler) Update(c echo.Context) error {
	var req updatePermissionRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	permission, err := h.service.Update(c.Request().Context(), c.Param("name"), ports.UpdatePermissionInput{
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("permission", "update").Inc()
	return ok(c, toPermissionResponse(permission))
}

// Delete removes a permission by name; the store detaches it from roles.
//
// @Summary      Delete a permission
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "Permission name"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /permissions/{name} [delete]
func (h *PermissionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("permission", "delete").Inc()
	return noResult(c)
}
