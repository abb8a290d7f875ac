/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RFCError is an OAuth 2.0 style error. The full cause is kept for logs; callers only see the error code and
// Description once UsePublicAPIResponse is set.
type RFCError[T ~string] struct {
	ErrorCode      T
	ErrorComponent Component
	Operation      string
	HTTPStatus     int
	Err            error
	Description    string

	usePublicAPIResponse bool
}

// RFCErrorJSON is a helper struct for JSON encoding of RFCError.
type RFCErrorJSON[T comparable] struct {
	ErrorCode       T         `json:"error"`
	Component       Component `json:"component,omitempty"`
	Operation       string    `json:"operation,omitempty"`
	HTTPStatusField int       `json:"http_status,omitempty"`
	Description     string    `json:"error_description,omitempty"`
}

func (e *RFCError[T]) MarshalJSON() ([]byte, error) {
	if e.usePublicAPIResponse {
		return json.Marshal(&RFCErrorJSON[T]{
			ErrorCode:   e.ErrorCode,
			Description: e.Description,
		})
	}

	return json.Marshal(&RFCErrorJSON[T]{
		ErrorCode:       e.ErrorCode,
		Component:       e.ErrorComponent,
		Operation:       e.Operation,
		HTTPStatusField: e.HTTPStatus,
		Description:     e.causeDescription(),
	})
}

func (e *RFCError[T]) Error() string {
	var description []string

	if e.ErrorComponent != "" {
		description = append(description, fmt.Sprintf("component: %s", e.ErrorComponent))
	}

	if e.Operation != "" {
		description = append(description, fmt.Sprintf("operation: %s", e.Operation))
	}

	if e.HTTPStatus != 0 {
		description = append(description, fmt.Sprintf("http status: %d", e.HTTPStatus))
	}

	return fmt.Sprintf("%s[%s]: %s", e.ErrorCode, strings.Join(description, "; "), e.causeDescription())
}

func (e *RFCError[T]) causeDescription() string {
	if e.Err == nil {
		return e.Description
	}

	return e.Err.Error()
}

func (e *RFCError[T]) WithComponent(component Component) *RFCError[T] {
	e.ErrorComponent = component

	return e
}

func (e *RFCError[T]) WithOperation(operation string) *RFCError[T] {
	e.Operation = operation

	return e
}

func (e *RFCError[T]) WithDescription(description string) *RFCError[T] {
	e.Description = description

	return e
}

func (e *RFCError[T]) WithErrorPrefix(errPrefix string) *RFCError[T] {
	e.Err = fmt.Errorf("%s: %w", errPrefix, e.Err)

	return e
}

func (e *RFCError[T]) UsePublicAPIResponse() *RFCError[T] {
	e.usePublicAPIResponse = true

	return e
}

func (e *RFCError[T]) Code() string {
	return string(e.ErrorCode)
}

func (e *RFCError[T]) Component() string {
	return string(e.ErrorComponent)
}

func (e *RFCError[T]) Unwrap() error {
	return e.Err
}
