package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/identityservice/identity-service/internal/api/metrics"
	"github.com/identityservice/identity-service/internal/core/domain"
	"github.com/identityservice/identity-service/internal/core/ports"
)

// dobFormat is the wire format for dates of birth.
const dobFormat = "2006-01-02"

// UserHandler handles HTTP requests for user lifecycle operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username  string `json:"username"  validate:"required,max=25"`
	Password  string `json:"password"  validate:"required,max=25"`
	Firstname string `json:"firstname" validate:"required,max=25"`
	Lastname  string `json:"lastname"  validate:"required,max=25"`
	Dob       string `json:"dob"       validate:"omitempty,datetime=2006-01-02"`
}

type updateUserRequest struct {
	Firstname *string `json:"firstname" validate:"omitempty,max=25"`
	Lastname  *string `json:"lastname"  validate:"omitempty,max=25"`
	Dob       *string `json:"dob"       validate:"omitempty,datetime=2006-01-02"`
}

// userInfoResponse is the transfer representation of a user. The password
// hash is deliberately absent.
type userInfoResponse struct {
	Username  string    `json:"username"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Dob       string    `json:"dob,omitempty"`
	Roles     []string  `json:"roles"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserInfoResponse(u *domain.User) userInfoResponse {
	resp := userInfoResponse{
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Roles:     u.Roles,
		Version:   u.Version,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if !u.Dob.IsZero() {
		resp.Dob = u.Dob.Format(dobFormat)
	}
	return resp
}

// parseDob parses and checks a date of birth; it must lie in the past.
func parseDob(value string) (time.Time, error) {
	dob, err := time.Parse(dobFormat, value)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Fields: map[string]string{"dob": "must be a date in " + dobFormat + " format"}}
	}
	if !dob.Before(time.Now().UTC()) {
		return time.Time{}, &domain.ValidationError{Fields: map[string]string{"dob": "must be in the past"}}
	}
	return dob, nil
}

// Create registers a new user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userInfoResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	}
	if req.Dob != "" {
		dob, err := parseDob(req.Dob)
		if err != nil {
			return err
		}
		input.Dob = dob
	}

	user, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("user", "create").Inc()
	return created(c, toUserInfoResponse(user))
}

// GetAll lists every user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userInfoResponse
// @Router       /user [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userInfoResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserInfoResponse(&users[i]))
	}
	return ok(c, resp)
}

// Get returns one user by username.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userInfoResponse
// @Failure      404       {object}  map[string]string
// @Router       /user/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return ok(c, toUserInfoResponse(user))
}

// Update applies a partial update; absent fields keep their stored values.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Fields to change"
// @Success      200       {object}  userInfoResponse
// @Failure      404       {object}  map[string]string
// @Router       /user/{username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateUserInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	}
	if req.Dob != nil {
		dob, err := parseDob(*req.Dob)
		if err != nil {
			return err
		}
		input.Dob = &dob
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("username"), input)
	if err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("user", "update").Inc()
	return ok(c, toUserInfoResponse(user))
}

// Delete removes a user by username.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}

	metrics.EntityOperationsTotal.WithLabelValues("user", "delete").Inc()
	return noResult(c)
}
