/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination iacas_service_mocks_test.go -self_package mocks -package iacas_test -source=iacas_service.go -mock_names certificateStore=MockCertificateStore

package iacas

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3"
)

var ErrInvalidARN = errors.New("invalid certificate authority ARN")

type certificateStore interface {
	GetCertificate(ctx context.Context, id string) (*x509.Certificate, error)
}

type Config struct {
	CertificateAuthorityARN string
	Certificates            certificateStore
}

// Iacas lists the issuing authority certificate authorities trusted for mdoc verification.
type Iacas struct {
	Data []*Iaca `json:"data"`
}

type Iaca struct {
	ID                     string           `json:"id"`
	Active                 bool             `json:"active"`
	CertificatePem         string           `json:"certificatePem"`
	CertificateData        *CertificateData `json:"certificateData"`
	CertificateFingerprint string           `json:"certificateFingerprint"`
	PublicKeyJwk           *jose.JSONWebKey `json:"publicKeyJwk"`
}

type CertificateData struct {
	Subject   string    `json:"subject"`
	NotBefore time.Time `json:"notBefore"`
	NotAfter  time.Time `json:"notAfter"`
}

type Service struct {
	caARN        string
	certificates certificateStore
}

func NewService(cfg *Config) *Service {
	return &Service{
		caARN:        cfg.CertificateAuthorityARN,
		certificates: cfg.Certificates,
	}
}

// GetIacas returns the certificate authority that signs the document signing certificates.
func (s *Service) GetIacas(ctx context.Context) (*Iacas, error) {
	caID, err := ExtractCertificateAuthorityID(s.caARN)
	if err != nil {
		return nil, err
	}

	cert, err := s.certificates.GetCertificate(ctx, caID)
	if err != nil {
		return nil, fmt.Errorf("get certificate authority certificate: %w", err)
	}

	iaca, err := fromCertificate(caID, cert)
	if err != nil {
		return nil, err
	}

	return &Iacas{Data: []*Iaca{iaca}}, nil
}

func fromCertificate(id string, cert *x509.Certificate) (*Iaca, error) {
	pub, ok := cert.PublicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate %s does not hold an EC public key", id)
	}

	fingerprint := sha256.Sum256(cert.Raw)

	return &Iaca{
		ID:             id,
		Active:         true,
		CertificatePem: string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})),
		CertificateData: &CertificateData{
			Subject:   cert.Subject.String(),
			NotBefore: cert.NotBefore.UTC(),
			NotAfter:  cert.NotAfter.UTC(),
		},
		CertificateFingerprint: hex.EncodeToString(fingerprint[:]),
		PublicKeyJwk:           &jose.JSONWebKey{Key: pub},
	}, nil
}

// ExtractCertificateAuthorityID returns the trailing resource id of an ACM PCA ARN such as
// arn:aws:acm-pca:eu-west-2:123456789012:certificate-authority/<id>.
func ExtractCertificateAuthorityID(arn string) (string, error) {
	const arnSections = 6

	sections := strings.SplitN(arn, ":", arnSections)
	if len(sections) != arnSections || sections[0] != "arn" {
		return "", fmt.Errorf("%w: %q", ErrInvalidARN, arn)
	}

	resource := sections[5]
	id := resource[strings.LastIndex(resource, "/")+1:]

	if id == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidARN, arn)
	}

	return id, nil
}
