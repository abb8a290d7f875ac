/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination builder_mocks_test.go -self_package mocks -package mdl_test -source=builder.go -mock_names certificateProvider=MockCertificateProvider,signingService=MockSigningService

// Package mdl builds ISO 18013-5 mobile driving licences.
package mdl

import (
	"context"
	"crypto/x509"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	"github.com/trustbloc/credential-issuer/pkg/credential"
	"github.com/trustbloc/credential-issuer/pkg/kms/signer"
	"github.com/trustbloc/credential-issuer/pkg/mdoc"
)

var logger = log.New("credential-mdl")

type certificateProvider interface {
	GetCertificate(ctx context.Context, id string) (*x509.Certificate, error)
}

type signingService interface {
	Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error)
}

// Config holds the document signing key and the certificate issued for it.
type Config struct {
	SigningKeyID  string
	CertificateID string
	Issuer        *mdoc.Issuer
	Certificates  certificateProvider
	KMS           signingService
	// NewSequence defaults to mdoc.NewDigestIDSequence.
	NewSequence func() (*mdoc.DigestIDSequence, error)
}

// Builder issues org.iso.18013.5.1.mDL credentials.
type Builder struct {
	signingKeyID  string
	certificateID string
	issuer        *mdoc.Issuer
	certificates  certificateProvider
	kms           signingService
	newSequence   func() (*mdoc.DigestIDSequence, error)
}

// NewBuilder returns a Builder.
func NewBuilder(cfg *Config) *Builder {
	newSequence := cfg.NewSequence
	if newSequence == nil {
		newSequence = mdoc.NewDigestIDSequence
	}

	return &Builder{
		signingKeyID:  cfg.SigningKeyID,
		certificateID: cfg.CertificateID,
		issuer:        cfg.Issuer,
		certificates:  cfg.Certificates,
		kms:           cfg.KMS,
		newSequence:   newSequence,
	}
}

// Supports reports whether t is the mobile driving licence.
func (b *Builder) Supports(t credential.Type) bool {
	return t == credential.TypeMobileDrivingLicence
}

// Build returns the base64url IssuerSigned structure bound to the proof key.
func (b *Builder) Build(ctx context.Context, req *credential.BuildRequest) (string, error) {
	lic, err := ParseLicence(req.Document.Data)
	if err != nil {
		return "", err
	}

	seq, err := b.newSequence()
	if err != nil {
		return "", fmt.Errorf("%w: %w", mdoc.ErrMdocBuild, err)
	}

	namespaces, err := lic.Namespaces(seq)
	if err != nil {
		return "", err
	}

	cert, err := b.certificates.GetCertificate(ctx, b.certificateID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", mdoc.ErrCertificate, err)
	}

	issueReq := &mdoc.IssueRequest{
		Namespaces:  namespaces,
		DeviceKey:   req.Proof.PublicKey,
		Signer:      signer.NewCOSESigner(ctx, b.kms, b.signingKeyID),
		Certificate: cert,
	}

	if ttl, ok := credential.TTL(req.Document); ok {
		issueReq.TTL = ttl
	}

	if req.Status != nil {
		issueReq.Status = &mdoc.StatusListInfo{Idx: req.Status.Idx, URI: req.Status.URI}
	}

	issued, err := b.issuer.Issue(issueReq)
	if err != nil {
		return "", err
	}

	logger.Debugc(ctx, "Mobile driving licence issued",
		logfields.WithDocumentID(req.Document.DocumentID),
		logfields.WithKeyID(b.signingKeyID))

	return issued, nil
}
