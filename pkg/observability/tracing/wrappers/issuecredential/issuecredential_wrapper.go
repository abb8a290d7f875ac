/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package issuecredential . Service

package issuecredential

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-issuer/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/credential-issuer/pkg/service/credential"
)

var _ Service = (*Wrapper)(nil)

type Service interface {
	IssueCredential(ctx context.Context, req *credential.IssueRequest) (*credential.IssueResponse, error)
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) IssueCredential(
	ctx context.Context,
	req *credential.IssueRequest,
) (*credential.IssueResponse, error) {
	ctx, span := w.tracer.Start(ctx, "credential.IssueCredential")
	defer span.End()

	span.SetAttributes(
		attributeutil.JWTHeader("access_token", req.AccessToken),
		attributeutil.JWTHeader("proof", req.ProofJWT),
	)

	resp, err := w.svc.IssueCredential(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "issue credential")

		return nil, err
	}

	span.SetAttributes(attributeutil.JSON("response", resp, attributeutil.WithRedacted("credential")))

	return resp, nil
}
