/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

// GetMetrics returns metrics implementation registered with the default registerer.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics(prometheus.DefaultRegisterer)
	})

	return instance
}

// PromMetrics manages the metrics for the credential issuer.
type PromMetrics struct {
	signCount            prometheus.Counter
	signTime             prometheus.Histogram
	exportPublicKeyCount prometheus.Counter
	exportPublicKeyTime  prometheus.Histogram
	credentialsIssued    *prometheus.CounterVec
	issueCredentialTime  prometheus.Histogram
	notifications        *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) *PromMetrics {
	pm := &PromMetrics{
		signCount: newCounter(
			metrics.KMS, metrics.KMSSignCountMetric,
			"The number of KMS sign calls.",
		),
		signTime: newHistogram(
			metrics.KMS, metrics.KMSSignTimeMetric,
			"The time (in seconds) it takes to sign a digest with KMS.",
		),
		exportPublicKeyCount: newCounter(
			metrics.KMS, metrics.KMSExportPublicKeyCount,
			"The number of KMS public key exports.",
		),
		exportPublicKeyTime: newHistogram(
			metrics.KMS, metrics.KMSExportPublicKeyTime,
			"The time (in seconds) it takes to export a public key from KMS.",
		),
		credentialsIssued: newCounterVec(
			metrics.Issuance, metrics.CredentialIssuedMetric,
			"The number of credentials issued.",
			metrics.VCTypeLabel,
		),
		issueCredentialTime: newHistogram(
			metrics.Issuance, metrics.IssueCredentialTimeMetric,
			"The time (in seconds) it takes to issue a credential.",
		),
		notifications: newCounterVec(
			metrics.Issuance, metrics.NotificationEventMetric,
			"The number of wallet notifications received.",
			metrics.NotificationEventLabel,
		),
	}

	registerer.MustRegister(
		pm.signCount, pm.signTime, pm.exportPublicKeyCount, pm.exportPublicKeyTime,
		pm.credentialsIssued, pm.issueCredentialTime, pm.notifications,
	)

	return pm
}

// SignCount increments the number of KMS sign calls.
func (pm *PromMetrics) SignCount() {
	pm.signCount.Inc()
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("kms sign time", log.WithDuration(value))
}

func (pm *PromMetrics) ExportPublicKeyCount() {
	pm.exportPublicKeyCount.Inc()
}

func (pm *PromMetrics) ExportPublicKeyTime(value time.Duration) {
	pm.exportPublicKeyTime.Observe(value.Seconds())

	logger.Debug("kms export public key time", log.WithDuration(value))
}

// CredentialIssued counts an issued credential of vcType.
func (pm *PromMetrics) CredentialIssued(vcType string) {
	pm.credentialsIssued.WithLabelValues(vcType).Inc()
}

// IssueCredentialTime records the time for IssueCredential service call.
func (pm *PromMetrics) IssueCredentialTime(value time.Duration) {
	pm.issueCredentialTime.Observe(value.Seconds())

	logger.Debug("IssueCredential service call time", log.WithDuration(value))
}

func (pm *PromMetrics) NotificationReceived(event string) {
	pm.notifications.WithLabelValues(event).Inc()
}

func newCounter(subsystem, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}

func newCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func newHistogram(subsystem, name, help string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}
