/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package revoke . Service

package revoke

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*Wrapper)(nil)

type Service interface {
	RevokeCredentials(ctx context.Context, documentID string) error
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) RevokeCredentials(ctx context.Context, documentID string) error {
	ctx, span := w.tracer.Start(ctx, "revoke.RevokeCredentials")
	defer span.End()

	span.SetAttributes(attribute.String("document_id", documentID))

	return w.svc.RevokeCredentials(ctx, documentID)
}
