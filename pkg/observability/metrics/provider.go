/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "credential_issuer"

	// KMS signing oracle operations.
	KMS                     = "kms"
	KMSSignCountMetric      = "sign_total"
	KMSSignTimeMetric       = "sign_seconds"
	KMSExportPublicKeyCount = "export_public_key_total"
	KMSExportPublicKeyTime  = "export_public_key_seconds"

	// Issuance operations.
	Issuance                  = "issuance"
	CredentialIssuedMetric    = "credentials_issued_total"
	IssueCredentialTimeMetric = "issue_credential_seconds"
	VCTypeLabel               = "vc_type"
	NotificationEventMetric   = "notifications_total"
	NotificationEventLabel    = "event"
)

// Metrics is an interface for the metrics to be supported by the provider.
//
//nolint:interfacebloat
type Metrics interface {
	SignCount()
	SignTime(value time.Duration)
	ExportPublicKeyCount()
	ExportPublicKeyTime(value time.Duration)
	CredentialIssued(vcType string)
	IssueCredentialTime(value time.Duration)
	NotificationReceived(event string)
}
