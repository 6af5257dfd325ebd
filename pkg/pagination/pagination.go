package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Params holds the skip/limit window extracted from a request.
type Params struct {
	Skip  int
	Limit int
}

// FromContext extracts skip and limit query parameters from the echo
// context. Absent or unparseable values fall back to the defaults; parsed
// values are passed through as-is — the store is responsible for rejecting
// windows it cannot serve.
func FromContext(c echo.Context) Params {
	skip := DefaultSkip
	if raw := c.QueryParam("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			skip = v
		}
	}

	limit := DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	return Params{Skip: skip, Limit: limit}
}
