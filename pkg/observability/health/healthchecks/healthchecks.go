/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"

	"github.com/trustbloc/credential-issuer/pkg/observability/health/healthutil"
	mongocheck "github.com/trustbloc/credential-issuer/pkg/observability/health/mongo"
	redischeck "github.com/trustbloc/credential-issuer/pkg/observability/health/redis"
)

const (
	checkTimeout = 5 * time.Second
	cacheTTL     = 2 * time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

type kmsChecker interface {
	HealthCheck(ctx context.Context) error
}

// Config names the dependencies to check. Nil entries are skipped.
type Config struct {
	Redis   pinger
	MongoDB pinger
	KMS     kmsChecker
}

func Get(config *Config) []health.Check {
	var checks []health.Check

	if config.Redis != nil {
		checks = append(checks, health.Check{
			Name:               "redis",
			Check:              redischeck.New(config.Redis),
			Timeout:            checkTimeout,
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	if config.MongoDB != nil {
		checks = append(checks, health.Check{
			Name:               "mongodb",
			Check:              mongocheck.New(config.MongoDB),
			Timeout:            checkTimeout,
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	if config.KMS != nil {
		checks = append(checks, health.Check{
			Name:    "kms",
			Check:   config.KMS.HealthCheck,
			Timeout: checkTimeout,
		})
	}

	return checks
}

// NewHandler returns the /healthcheck handler running checks on every uncached request.
func NewHandler(checks []health.Check) http.Handler {
	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithCacheDuration(cacheTTL),
		health.WithTimeout(checkTimeout),
		health.WithInterceptors(responseTimes.Interceptor()),
	}

	for _, c := range checks {
		opts = append(opts, health.WithCheck(c))
	}

	return health.NewHandler(
		health.NewChecker(opts...),
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)),
	)
}
