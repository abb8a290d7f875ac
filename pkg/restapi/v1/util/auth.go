/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer "

var ErrMissingBearerToken = errors.New("missing bearer token in authorization header")

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)

	if len(header) <= len(bearerScheme) || !strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
		return "", ErrMissingBearerToken
	}

	token := strings.TrimSpace(header[len(bearerScheme):])
	if token == "" {
		return "", ErrMissingBearerToken
	}

	return token, nil
}
