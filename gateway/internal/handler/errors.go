package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/gateway/internal/errs"
	"github.com/Astemirdum/shareit/gateway/internal/model"
)

const (
	defaultPageSize        = 10
	defaultRequestPageSize = 20
)

// forward writes the upstream answer back unchanged.
func (h *Handler) forward(c echo.Context, data []byte, code int, err error) error {
	if err != nil {
		if !errors.Is(err, errs.ErrUnavailable) {
			h.log.Error("forward", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, errs.ErrUnavailable.Error())
	}
	if len(data) == 0 {
		return c.NoContent(code)
	}
	return c.JSONBlob(code, data)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}

func page(c echo.Context, defSize int) (from, size int, err error) {
	if from, err = queryInt(c, "from", 0); err != nil {
		return 0, 0, err
	}
	if size, err = queryInt(c, "size", defSize); err != nil {
		return 0, 0, err
	}
	if from < 0 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from must not be negative")
	}
	if size < 1 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size must be positive")
	}
	return from, size, nil
}

// state defaults to ALL and is matched case-insensitively.
func state(c echo.Context) (string, error) {
	raw := c.QueryParam("state")
	if raw == "" {
		return "ALL", nil
	}
	s := strings.ToUpper(raw)
	if _, ok := model.States[s]; !ok {
		err := errors.Errorf("%s: %s", errs.ErrUnknownState, raw)
		return "", echo.NewHTTPError(http.StatusBadRequest, errs.StateErrorResponse{Error: err.Error()})
	}
	return s, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
