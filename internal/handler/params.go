package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id route parameter
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
