/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
)

// ConnectRetryInterval is the pause between two connection attempts.
const ConnectRetryInterval = time.Second

// Connect runs task until it succeeds or numRetries further attempts have failed.
func Connect(name string, task func() error, numRetries uint64, logger *log.Log) error {
	return ConnectWithBackOff(name, task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(ConnectRetryInterval), numRetries), logger)
}

// ConnectWithBackOff is Connect with a caller supplied retry policy.
func ConnectWithBackOff(name string, task func() error, b backoff.BackOff, logger *log.Log) error {
	return backoff.RetryNotify(
		task,
		b,
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to "+name+", will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
