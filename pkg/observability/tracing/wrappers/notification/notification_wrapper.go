/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package notification . Service

package notification

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-issuer/pkg/service/notification"
)

var _ Service = (*Wrapper)(nil)

type Service interface {
	ProcessNotification(ctx context.Context, req *notification.Request) error
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) ProcessNotification(ctx context.Context, req *notification.Request) error {
	ctx, span := w.tracer.Start(ctx, "notification.ProcessNotification")
	defer span.End()

	span.SetAttributes(
		attribute.String("notification_id", req.NotificationID),
		attribute.String("event", string(req.Event)),
	)

	return w.svc.ProcessNotification(ctx, req)
}
