/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuer

import (
	"net/http"

	"github.com/trustbloc/credential-issuer/pkg/restapi/resterr"
)

// issuerErrorCode is an error code returned by the credential issuer endpoints.
type issuerErrorCode string

const (
	// invalidToken - the access token is missing, invalid, expired or not bound to a redeemable offer.
	//
	// RFC 6750: https://www.rfc-editor.org/rfc/rfc6750#section-3.1
	invalidToken issuerErrorCode = "invalid_token"

	// invalidProof - the proof in the Credential Request is invalid or not bound to the nonce of the access token.
	invalidProof issuerErrorCode = "invalid_proof"

	// invalidCredentialRequest - the Credential Request is missing a required parameter or is otherwise malformed.
	invalidCredentialRequest issuerErrorCode = "invalid_credential_request" //nolint:gosec

	// invalidNotificationID - the notification_id in the Notification Request was invalid.
	invalidNotificationID issuerErrorCode = "invalid_notification_id"

	// invalidNotificationRequest - the Notification Request is malformed or refers to an unknown credential.
	invalidNotificationRequest issuerErrorCode = "invalid_notification_request"

	// invalidRequest - a request parameter is missing or malformed.
	invalidRequest issuerErrorCode = "invalid_request"

	// notFound proprietary error code.
	notFound issuerErrorCode = "not_found"

	// serverError - an internal failure. The cause is logged, never returned.
	serverError issuerErrorCode = "server_error"
)

// Error represents credential issuer error.
type Error = resterr.RFCError[issuerErrorCode]

func NewInvalidTokenError(err error) *Error {
	return &Error{
		ErrorCode:  invalidToken,
		Err:        err,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewInvalidProofError(err error) *Error {
	return &Error{
		ErrorCode:  invalidProof,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidCredentialRequestError(err error) *Error {
	return &Error{
		ErrorCode:  invalidCredentialRequest,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidNotificationIDError(err error) *Error {
	return &Error{
		ErrorCode:  invalidNotificationID,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidNotificationRequestError(err error) *Error {
	return &Error{
		ErrorCode:  invalidNotificationRequest,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidRequestError(err error) *Error {
	return &Error{
		ErrorCode:  invalidRequest,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewNotFoundError(err error) *Error {
	return &Error{
		ErrorCode:  notFound,
		Err:        err,
		HTTPStatus: http.StatusNotFound,
	}
}

func NewServerError(err error) *Error {
	return &Error{
		ErrorCode:  serverError,
		Err:        err,
		HTTPStatus: http.StatusInternalServerError,
	}
}
