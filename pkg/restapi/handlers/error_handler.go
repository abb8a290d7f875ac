/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	issuererr "github.com/trustbloc/credential-issuer/pkg/restapi/resterr/issuer"
)

var logger = log.New("rest-err")

func HTTPErrorHandler(tracer trace.Tracer) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		code, message := processError(err)

		span.SetStatus(codes.Error, http.StatusText(code))
		span.RecordError(err)

		logger.Errorc(ctx, "HTTP Error Handler",
			log.WithURL(c.Request().RequestURI),
			log.WithHTTPStatus(code),
			log.WithError(err),
			logfields.WithAdditionalMessage(fmt.Sprintf("%s", message)),
		)

		sendResponse(c, code, message)
	}
}

func sendResponse(c echo.Context, code int, message interface{}) {
	var err error
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			logger.Errorc(c.Request().Context(), "write http response", log.WithError(err))
		}
	}
}

func processError(err error) (int, interface{}) {
	var echoHTTPError *echo.HTTPError
	if errors.As(err, &echoHTTPError) {
		code, message := echoHTTPError.Code, echoHTTPError.Message

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return code, message
	}

	var issuerError *issuererr.Error
	if errors.As(err, &issuerError) {
		return issuerError.HTTPStatus, issuerError
	}

	return http.StatusInternalServerError, issuererr.NewServerError(err).UsePublicAPIResponse()
}
