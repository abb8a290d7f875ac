/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// requestLogSkipper keeps health checks and version lookups out of the request log.
func requestLogSkipper(c echo.Context) bool {
	if c.Path() == healthCheckEndpoint {
		return true
	}

	if strings.HasPrefix(c.Path(), "/version") {
		return true
	}

	return echomw.DefaultSkipper(c)
}
