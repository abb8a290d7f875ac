/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	// Version of the credential issuer build.
	Version   string
	BuildTime string
}

type Controller struct {
	version   string
	buildTime string
}

type versionResponse struct {
	Version string `json:"version"`
}

type systemVersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
}

func NewController(r router, cfg Config) *Controller {
	c := &Controller{
		version:   cfg.Version,
		buildTime: cfg.BuildTime,
	}

	r.GET("/version", c.Version)
	r.GET("/version/system", c.SystemVersion)

	return c
}

func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}

func (c *Controller) SystemVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, systemVersionResponse{
		Version:   c.version,
		GoVersion: runtime.Version(),
		BuildTime: c.buildTime,
	})
}
