package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-switch/app/connector"
	"github.com/vibast-solutions/ms-go-switch/app/factory"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type ConnectorsResponse struct {
	Connectors []string `json:"connectors"`
}

type ErrorMessage struct {
	Error string `json:"error"`
}

// SwitchController exposes the diagnostic surface of the switch: liveness
// and the set of registered connectors. The merchant-facing payments API
// lives in a separate service.
type SwitchController struct {
	registry *connector.Registry
	logger   logrus.FieldLogger
}

func NewSwitchController(registry *connector.Registry) *SwitchController {
	return &SwitchController{
		registry: registry,
		logger:   factory.NewModuleLogger("switch-controller"),
	}
}

func (c *SwitchController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

func (c *SwitchController) ListConnectors(ctx echo.Context) error {
	factory.LoggerWithContext(c.logger, ctx).Debug("List connectors")
	return ctx.JSON(http.StatusOK, &ConnectorsResponse{Connectors: c.registry.Names()})
}
