/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/credential-issuer/cmd/common"
	"github.com/trustbloc/credential-issuer/pkg/observability/tracing"
	"github.com/trustbloc/credential-issuer/pkg/storage/redis"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the credential issuer on. Format: HostName:Port. Defaults to " +
		defaultHostURL + ". " + commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey  = "CRI_HOST_URL"
	defaultHostURL = "0.0.0.0:8080"

	internalHostURLFlagName  = "internal-host-url"
	internalHostURLFlagUsage = "URL to serve metrics and readiness on. Format: HostName:Port. Defaults to " +
		defaultInternalHostURL + ". " + commonEnvVarUsageText + internalHostURLEnvKey
	internalHostURLEnvKey  = "CRI_INTERNAL_HOST_URL"
	defaultInternalHostURL = "0.0.0.0:8081"

	selfURLFlagName  = "self-url"
	selfURLFlagUsage = "Public URL of the credential issuer. It is the audience of access tokens and proofs. " +
		commonEnvVarUsageText + selfURLEnvKey
	selfURLEnvKey  = "SELF_URL"
	defaultSelfURL = "http://localhost:8080"

	authServerURLFlagName  = "one-login-auth-server-url"
	authServerURLFlagUsage = "URL of the authorization server issuing access tokens. " +
		commonEnvVarUsageText + authServerURLEnvKey
	authServerURLEnvKey  = "ONE_LOGIN_AUTH_SERVER_URL"
	defaultAuthServerURL = "http://localhost:8001"

	jwksURLFlagName  = "jwks-url"
	jwksURLFlagUsage = "URL of the authorization server JWKS. Defaults to <auth server>/.well-known/jwks.json. " +
		commonEnvVarUsageText + jwksURLEnvKey
	jwksURLEnvKey = "JWKS_URL"

	jwksCacheTTLFlagName  = "jwks-cache-ttl"
	jwksCacheTTLFlagUsage = "How long fetched JWKS keys are cached, for example 5m. " +
		commonEnvVarUsageText + jwksCacheTTLEnvKey
	jwksCacheTTLEnvKey  = "JWKS_CACHE_TTL"
	defaultJWKSCacheTTL = 5 * time.Minute

	credentialStoreURLFlagName  = "credential-store-url"
	credentialStoreURLFlagUsage = "URL of the credential store holding documents. " +
		commonEnvVarUsageText + credentialStoreURLEnvKey
	credentialStoreURLEnvKey  = "CREDENTIAL_STORE_URL"
	defaultCredentialStoreURL = "http://localhost:8001"

	statusListURLFlagName  = "status-list-url"
	statusListURLFlagUsage = "URL of the status list service. " + commonEnvVarUsageText + statusListURLEnvKey
	statusListURLEnvKey    = "STATUS_LIST_URL"

	statusListClientIDFlagName  = "status-list-client-id"
	statusListClientIDFlagUsage = "Client id registered with the status list service. " +
		commonEnvVarUsageText + statusListClientIDEnvKey
	statusListClientIDEnvKey = "STATUS_LIST_CLIENT_ID"

	oidcClientIDFlagName  = "oidc-client-id"
	oidcClientIDFlagUsage = "Client id the issuer uses towards the authorization server. " +
		commonEnvVarUsageText + oidcClientIDEnvKey
	oidcClientIDEnvKey = "OIDC_CLIENT_ID"

	didControllerFlagName  = "did-controller"
	didControllerFlagUsage = "Host part of the issuer did:web. " + commonEnvVarUsageText + didControllerEnvKey
	didControllerEnvKey    = "DID_CONTROLLER"
	defaultDIDController   = "localhost:8080"

	walletDeepLinkURLFlagName  = "wallet-deep-link-url"
	walletDeepLinkURLFlagUsage = "Optional wallet deep link used in place of the openid-credential-offer scheme. " +
		commonEnvVarUsageText + walletDeepLinkURLEnvKey
	walletDeepLinkURLEnvKey = "WALLET_DEEP_LINK_URL"

	logoURLFlagName  = "logo-url"
	logoURLFlagUsage = "Optional logo advertised in the issuer metadata. " + commonEnvVarUsageText + logoURLEnvKey
	logoURLEnvKey    = "LOGO_URL"
)

// aws params
const (
	awsRegionFlagName  = "aws-region"
	awsRegionFlagUsage = "AWS region. " + commonEnvVarUsageText + awsRegionEnvKey
	awsRegionEnvKey    = "AWS_REGION"
	defaultAWSRegion   = "eu-west-2"

	awsEndpointFlagName  = "aws-endpoint"
	awsEndpointFlagUsage = "Optional AWS endpoint override, for example a localstack URL. " +
		commonEnvVarUsageText + awsEndpointEnvKey
	awsEndpointEnvKey = "AWS_ENDPOINT"

	signingKeyAliasFlagName  = "signing-key-alias"
	signingKeyAliasFlagUsage = "KMS alias of the key signing JWT credentials and offers. " +
		commonEnvVarUsageText + signingKeyAliasEnvKey
	signingKeyAliasEnvKey  = "SIGNING_KEY_ALIAS"
	defaultSigningKeyAlias = "alias/localSigningKeyAlias"

	documentSigningKeyARNFlagName  = "document-signing-key-arn"
	documentSigningKeyARNFlagUsage = "ARN of the KMS key signing mdoc credentials. " +
		commonEnvVarUsageText + documentSigningKeyARNEnvKey
	documentSigningKeyARNEnvKey = "DOCUMENT_SIGNING_KEY_1_ARN"

	certificateAuthorityARNFlagName  = "certificate-authority-arn"
	certificateAuthorityARNFlagUsage = "ARN of the issuing authority certificate authority. " +
		commonEnvVarUsageText + certificateAuthorityARNEnvKey
	certificateAuthorityARNEnvKey = "CERTIFICATE_AUTHORITY_ARN"

	certificatesBucketFlagName  = "certificates-bucket"
	certificatesBucketFlagUsage = "S3 bucket holding certificates. " + commonEnvVarUsageText + certificatesBucketEnvKey
	certificatesBucketEnvKey    = "CERTIFICATES_BUCKET_NAME"
	defaultCertificatesBucket   = "certificates"
)

// storage params
const (
	redisURLFlagName  = "redis-url"
	redisURLFlagUsage = "Comma separated Redis addresses. " + commonEnvVarUsageText + redisURLEnvKey
	redisURLEnvKey    = "REDIS_URL"

	// Linter gosec flags these as "potential hardcoded credentials". They are not, hence the nolint annotations.
	redisPasswordFlagName  = "redis-password" //nolint: gosec
	redisPasswordFlagUsage = "Optional Redis password. " + commonEnvVarUsageText + redisPasswordEnvKey
	redisPasswordEnvKey    = "REDIS_PASSWORD" //nolint: gosec

	mongoDBConnectionStringFlagName  = "mongodb-connection-string"
	mongoDBConnectionStringFlagUsage = "MongoDB connection string. " +
		commonEnvVarUsageText + mongoDBConnectionStringEnvKey
	mongoDBConnectionStringEnvKey = "MONGODB_CONNECTION_STRING"

	mongoDBDatabaseFlagName  = "mongodb-database"
	mongoDBDatabaseFlagUsage = "MongoDB database name. " + commonEnvVarUsageText + mongoDBDatabaseEnvKey
	mongoDBDatabaseEnvKey    = "MONGODB_DATABASE"
	defaultMongoDBDatabase   = "credential_issuer"

	connectRetriesFlagName  = "connect-retries"
	connectRetriesFlagUsage = "Attempts made to reach Redis and MongoDB on startup, one second apart. Defaults to " +
		"30. " + commonEnvVarUsageText + connectRetriesEnvKey
	connectRetriesEnvKey  = "CONNECT_RETRIES"
	defaultConnectRetries = 30

	credentialOfferTTLFlagName  = "credential-offer-ttl"
	credentialOfferTTLFlagUsage = "Credential offer lifetime in seconds. " +
		commonEnvVarUsageText + credentialOfferTTLEnvKey
	credentialOfferTTLEnvKey  = "CREDENTIAL_OFFER_TTL"
	defaultCredentialOfferTTL = 900

	preAuthorizedCodeTTLFlagName  = "pre-authorized-code-ttl"
	preAuthorizedCodeTTLFlagUsage = "Pre-authorized code lifetime in seconds. " +
		commonEnvVarUsageText + preAuthorizedCodeTTLEnvKey
	preAuthorizedCodeTTLEnvKey  = "PRE_AUTHORIZED_CODE_TTL"
	defaultPreAuthorizedCodeTTL = 300
)

const (
	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (prometheus). Metrics are disabled when not set. " +
		commonEnvVarUsageText + metricsProviderEnvKey
	metricsProviderPrometheus = "prometheus"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderFlagUsage = "Tracing provider (JAEGER,STDOUT). Tracing is disabled when not set. " +
		commonEnvVarUsageText + tracingProviderEnvKey
	tracingProviderEnvKey = "TRACING_PROVIDER"
)

type startupParameters struct {
	hostURL                 string
	internalHostURL         string
	selfURL                 string
	authServerURL           string
	jwksURL                 string
	jwksCacheTTL            time.Duration
	credentialStoreURL      string
	statusListURL           string
	statusListClientID      string
	oidcClientID            string
	didController           string
	walletDeepLinkURL       string
	logoURL                 string
	awsRegion               string
	awsEndpoint             string
	signingKeyAlias         string
	documentSigningKeyARN   string
	certificateAuthorityARN string
	certificatesBucket      string
	redisAddrs              []string
	redisPassword           string
	mongoDBConnectionString string
	mongoDBDatabase         string
	connectRetries          uint64
	credentialOfferTTL      int32
	preAuthorizedCodeTTL    int32
	metricsProviderName     string
	tracingProvider         string
	logLevel                string
}

// nolint: funlen,gocyclo
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := getWithDefault(cmd, hostURLFlagName, hostURLEnvKey, defaultHostURL)
	if err != nil {
		return nil, err
	}

	internalHostURL, err := getWithDefault(cmd, internalHostURLFlagName, internalHostURLEnvKey,
		defaultInternalHostURL)
	if err != nil {
		return nil, err
	}

	selfURL, err := getWithDefault(cmd, selfURLFlagName, selfURLEnvKey, defaultSelfURL)
	if err != nil {
		return nil, err
	}

	authServerURL, err := getWithDefault(cmd, authServerURLFlagName, authServerURLEnvKey, defaultAuthServerURL)
	if err != nil {
		return nil, err
	}

	jwksURL, err := getWithDefault(cmd, jwksURLFlagName, jwksURLEnvKey,
		strings.TrimSuffix(authServerURL, "/")+"/.well-known/jwks.json")
	if err != nil {
		return nil, err
	}

	jwksCacheTTL, err := getDuration(cmd, jwksCacheTTLFlagName, jwksCacheTTLEnvKey, defaultJWKSCacheTTL)
	if err != nil {
		return nil, err
	}

	credentialStoreURL, err := getWithDefault(cmd, credentialStoreURLFlagName, credentialStoreURLEnvKey,
		defaultCredentialStoreURL)
	if err != nil {
		return nil, err
	}

	didController, err := getWithDefault(cmd, didControllerFlagName, didControllerEnvKey, defaultDIDController)
	if err != nil {
		return nil, err
	}

	awsRegion, err := getWithDefault(cmd, awsRegionFlagName, awsRegionEnvKey, defaultAWSRegion)
	if err != nil {
		return nil, err
	}

	signingKeyAlias, err := getWithDefault(cmd, signingKeyAliasFlagName, signingKeyAliasEnvKey,
		defaultSigningKeyAlias)
	if err != nil {
		return nil, err
	}

	certificatesBucket, err := getWithDefault(cmd, certificatesBucketFlagName, certificatesBucketEnvKey,
		defaultCertificatesBucket)
	if err != nil {
		return nil, err
	}

	mongoDBDatabase, err := getWithDefault(cmd, mongoDBDatabaseFlagName, mongoDBDatabaseEnvKey,
		defaultMongoDBDatabase)
	if err != nil {
		return nil, err
	}

	connectRetries, err := getInt(cmd, connectRetriesFlagName, connectRetriesEnvKey, defaultConnectRetries)
	if err != nil {
		return nil, err
	}

	credentialOfferTTL, err := getInt(cmd, credentialOfferTTLFlagName, credentialOfferTTLEnvKey,
		defaultCredentialOfferTTL)
	if err != nil {
		return nil, err
	}

	preAuthorizedCodeTTL, err := getInt(cmd, preAuthorizedCodeTTLFlagName, preAuthorizedCodeTTLEnvKey,
		defaultPreAuthorizedCodeTTL)
	if err != nil {
		return nil, err
	}

	metricsProviderName, err := getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	tracingProvider, err := tracing.ParseExporter(
		cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey))
	if err != nil {
		return nil, err
	}

	statusListURL, err := cmdutils.GetUserSetVarFromString(cmd, statusListURLFlagName, statusListURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	statusListClientID, err := cmdutils.GetUserSetVarFromString(cmd, statusListClientIDFlagName,
		statusListClientIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	oidcClientID, err := cmdutils.GetUserSetVarFromString(cmd, oidcClientIDFlagName, oidcClientIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	documentSigningKeyARN, err := cmdutils.GetUserSetVarFromString(cmd, documentSigningKeyARNFlagName,
		documentSigningKeyARNEnvKey, false)
	if err != nil {
		return nil, err
	}

	certificateAuthorityARN, err := cmdutils.GetUserSetVarFromString(cmd, certificateAuthorityARNFlagName,
		certificateAuthorityARNEnvKey, false)
	if err != nil {
		return nil, err
	}

	redisURL, err := cmdutils.GetUserSetVarFromString(cmd, redisURLFlagName, redisURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	mongoDBConnectionString, err := cmdutils.GetUserSetVarFromString(cmd, mongoDBConnectionStringFlagName,
		mongoDBConnectionStringEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:                 hostURL,
		internalHostURL:         internalHostURL,
		selfURL:                 selfURL,
		authServerURL:           authServerURL,
		jwksURL:                 jwksURL,
		jwksCacheTTL:            jwksCacheTTL,
		credentialStoreURL:      credentialStoreURL,
		statusListURL:           statusListURL,
		statusListClientID:      statusListClientID,
		oidcClientID:            oidcClientID,
		didController:           didController,
		walletDeepLinkURL:       cmdutils.GetUserSetOptionalVarFromString(cmd, walletDeepLinkURLFlagName, walletDeepLinkURLEnvKey),
		logoURL:                 cmdutils.GetUserSetOptionalVarFromString(cmd, logoURLFlagName, logoURLEnvKey),
		awsRegion:               awsRegion,
		awsEndpoint:             cmdutils.GetUserSetOptionalVarFromString(cmd, awsEndpointFlagName, awsEndpointEnvKey),
		signingKeyAlias:         signingKeyAlias,
		documentSigningKeyARN:   documentSigningKeyARN,
		certificateAuthorityARN: certificateAuthorityARN,
		certificatesBucket:      certificatesBucket,
		redisAddrs:              redis.ParseAddrs(redisURL),
		redisPassword:           cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		mongoDBConnectionString: mongoDBConnectionString,
		mongoDBDatabase:         mongoDBDatabase,
		connectRetries:          uint64(connectRetries),
		credentialOfferTTL:      int32(credentialOfferTTL),
		preAuthorizedCodeTTL:    int32(preAuthorizedCodeTTL),
		metricsProviderName:     metricsProviderName,
		tracingProvider:         tracingProvider,
		logLevel:                cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
	}, nil
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider, err := cmdutils.GetUserSetVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey, true)
	if err != nil {
		return "", err
	}

	if metricsProvider != "" && metricsProvider != metricsProviderPrometheus {
		return "", fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return metricsProvider, nil
}

func getWithDefault(cmd *cobra.Command, flagName, envKey, defaultValue string) (string, error) {
	value, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return "", err
	}

	if value == "" {
		return defaultValue, nil
	}

	return value, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func getInt(cmd *cobra.Command, flagName, envKey string, defaultValue int) (int, error) {
	valueStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return -1, fmt.Errorf("invalid value [%s] for %s: must be a positive integer", valueStr, flagName)
	}

	return value, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(internalHostURLFlagName, "", "", internalHostURLFlagUsage)
	startCmd.Flags().StringP(selfURLFlagName, "", "", selfURLFlagUsage)
	startCmd.Flags().StringP(authServerURLFlagName, "", "", authServerURLFlagUsage)
	startCmd.Flags().StringP(jwksURLFlagName, "", "", jwksURLFlagUsage)
	startCmd.Flags().StringP(jwksCacheTTLFlagName, "", "", jwksCacheTTLFlagUsage)
	startCmd.Flags().StringP(credentialStoreURLFlagName, "", "", credentialStoreURLFlagUsage)
	startCmd.Flags().StringP(statusListURLFlagName, "", "", statusListURLFlagUsage)
	startCmd.Flags().StringP(statusListClientIDFlagName, "", "", statusListClientIDFlagUsage)
	startCmd.Flags().StringP(oidcClientIDFlagName, "", "", oidcClientIDFlagUsage)
	startCmd.Flags().StringP(didControllerFlagName, "", "", didControllerFlagUsage)
	startCmd.Flags().StringP(walletDeepLinkURLFlagName, "", "", walletDeepLinkURLFlagUsage)
	startCmd.Flags().StringP(logoURLFlagName, "", "", logoURLFlagUsage)
	startCmd.Flags().StringP(awsRegionFlagName, "", "", awsRegionFlagUsage)
	startCmd.Flags().StringP(awsEndpointFlagName, "", "", awsEndpointFlagUsage)
	startCmd.Flags().StringP(signingKeyAliasFlagName, "", "", signingKeyAliasFlagUsage)
	startCmd.Flags().StringP(documentSigningKeyARNFlagName, "", "", documentSigningKeyARNFlagUsage)
	startCmd.Flags().StringP(certificateAuthorityARNFlagName, "", "", certificateAuthorityARNFlagUsage)
	startCmd.Flags().StringP(certificatesBucketFlagName, "", "", certificatesBucketFlagUsage)
	startCmd.Flags().StringP(redisURLFlagName, "", "", redisURLFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(mongoDBConnectionStringFlagName, "", "", mongoDBConnectionStringFlagUsage)
	startCmd.Flags().StringP(mongoDBDatabaseFlagName, "", "", mongoDBDatabaseFlagUsage)
	startCmd.Flags().StringP(connectRetriesFlagName, "", "", connectRetriesFlagUsage)
	startCmd.Flags().StringP(credentialOfferTTLFlagName, "", "", credentialOfferTTLFlagUsage)
	startCmd.Flags().StringP(preAuthorizedCodeTTLFlagName, "", "", preAuthorizedCodeTTLFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "",
		common.LogLevelPrefixFlagUsage)
}
