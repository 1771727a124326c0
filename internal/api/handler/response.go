package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// apiResponse is the uniform envelope for every payload. Code zero is
// omitted and implies success; non-zero codes come from the domain error
// taxonomy.
type apiResponse struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Result  any    `json:"result,omitempty"`
}

func ok(c echo.Context, result any) error {
	return c.JSON(http.StatusOK, apiResponse{Result: result})
}

func created(c echo.Context, result any) error {
	return c.JSON(http.StatusCreated, apiResponse{Result: result})
}

func noResult(c echo.Context) error {
	return c.JSON(http.StatusOK, apiResponse{})
}
