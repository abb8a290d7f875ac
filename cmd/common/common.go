/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting log levels.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting log levels.
	LogLevelEnvKey = "LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting log levels.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Sets logging levels for individual modules as well as the default level. " +
		"The format of the string is as follows: module1=level1:module2=level2:defaultLevel. " +
		"Supported levels are: PANIC, FATAL, ERROR, WARNING, INFO, DEBUG. " +
		"Modules include credential-issuer, credential-service, credential-offer-service, notification-service, " +
		"revoke-service, credential-mdl, credential-jwtvc, kms-aws, status-list-client and rest-err. " +
		"Example: credential-service=DEBUG:kms-aws=WARNING:INFO. " +
		"Defaults to INFO if not set. Alternatively, this can be set with the following environment variable: " +
		LogLevelEnvKey
)

// SetLogLevels applies a module=level:...:defaultLevel log spec. An empty spec sets the default level to INFO.
// An invalid spec is reported through logger and also falls back to an INFO default.
func SetLogLevels(logger *log.Log, spec string) {
	if spec == "" {
		log.SetLevel("", log.INFO)

		return
	}

	if err := log.SetSpec(spec); err != nil {
		logger.Warn("Invalid log level spec, defaulting to INFO",
			logfields.WithUserLogLevel(spec), log.WithError(err))

		log.SetLevel("", log.INFO)

		return
	}

	if log.GetLevel("") == log.DEBUG {
		logger.Info(`Default log level set to "DEBUG". Performance may be adversely impacted.`)
	}
}
