/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package credentialoffer . Service

package credentialoffer

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-issuer/pkg/service/credentialoffer"
)

var _ Service = (*Wrapper)(nil)

type Service interface {
	CreateOffer(ctx context.Context, req *credentialoffer.Request) (*credentialoffer.Response, error)
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) CreateOffer(
	ctx context.Context,
	req *credentialoffer.Request,
) (*credentialoffer.Response, error) {
	ctx, span := w.tracer.Start(ctx, "credentialoffer.CreateOffer")
	defer span.End()

	span.SetAttributes(
		attribute.String("item_id", req.ItemID),
		attribute.String("credential_type", req.CredentialType),
	)

	resp, err := w.svc.CreateOffer(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
