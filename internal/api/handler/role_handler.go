package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/identityservice/identity-service/internal/api/metrics"
	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

// RoleHandler handles HTTP requests for role lifecycle operations.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type createRoleRequest struct {
	Name        string   `json:"name"        validate:"required,max=25"`
	Description string   `json:"description" validate:"omitempty,max=50"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,required,max=25"`
}

type updateRoleRequest struct {
	Description *string   `json:"description" validate:"omitempty,max=50"`
	Permissions *[]string `json:"permissions" validate:"omitempty,dive,required,max=25"`
}

type roleResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

func toRoleResponse(r *domain.Role) roleResponse {
	return roleResponse{Name: r.Name, Description: r.Description, Permissions: r.Permissions}
}

// Create registers a new role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role details"
// @Success      201   {object}  roleResponse
// @Failure      409   {object}  map[string]string
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := h.service.Create(c.Request().Context(), ports.CreateRoleInput{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("role", "create").Inc()
	return created(c, toRoleResponse(role))
}

// GetAll lists every role.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  roleResponse
// @Router       /roles [get]
func (h *RoleHandler) GetAll(c echo.Context) error {
	roles, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]roleResponse, 0, len(roles))
	for i := range roles {
		resp = append(resp, toRoleResponse(&roles[i]))
	}
	return ok(c, resp)
}

// Update applies a partial update to a role.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string             true  "Role name"
// @Param        body  body      updateRoleRequest  true  "Fields to change"
// @Success      200   {object}  roleResponse
// @Failure      404   {object}  map[string]string
// @Router       /roles/{name} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := h.service.Update(c.Request().Context(), c.Param("name"), ports.UpdateRoleInput{
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("role", "update").Inc()
	return ok(c, toRoleResponse(role))
}

// Delete removes a role by name; the store detaches it from users.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "Role name"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /roles/{name} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("role", "delete").Inc()
	return noResult(c)
}
