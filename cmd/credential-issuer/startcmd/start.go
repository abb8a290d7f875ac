/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-issuer/cmd/common"
	"github.com/trustbloc/credential-issuer/pkg/authorization"
	credentialapi "github.com/trustbloc/credential-issuer/pkg/credential"
	"github.com/trustbloc/credential-issuer/pkg/credential/jwtvc"
	"github.com/trustbloc/credential-issuer/pkg/credential/mdl"
	"github.com/trustbloc/credential-issuer/pkg/documentstore"
	"github.com/trustbloc/credential-issuer/pkg/jwks"
	awskms "github.com/trustbloc/credential-issuer/pkg/kms/aws"
	"github.com/trustbloc/credential-issuer/pkg/mdoc"
	"github.com/trustbloc/credential-issuer/pkg/observability/health/healthchecks"
	"github.com/trustbloc/credential-issuer/pkg/observability/metrics/noop"
	"github.com/trustbloc/credential-issuer/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/credential-issuer/pkg/observability/tracing"
	credentialofferwrapper "github.com/trustbloc/credential-issuer/pkg/observability/tracing/wrappers/credentialoffer"
	issuecredentialwrapper "github.com/trustbloc/credential-issuer/pkg/observability/tracing/wrappers/issuecredential"
	notificationwrapper "github.com/trustbloc/credential-issuer/pkg/observability/tracing/wrappers/notification"
	revokewrapper "github.com/trustbloc/credential-issuer/pkg/observability/tracing/wrappers/revoke"
	"github.com/trustbloc/credential-issuer/pkg/restapi/handlers"
	"github.com/trustbloc/credential-issuer/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/credential-issuer/pkg/restapi/v1/issuer"
	"github.com/trustbloc/credential-issuer/pkg/restapi/v1/version"
	"github.com/trustbloc/credential-issuer/pkg/service/credential"
	"github.com/trustbloc/credential-issuer/pkg/service/credentialoffer"
	"github.com/trustbloc/credential-issuer/pkg/service/diddocument"
	"github.com/trustbloc/credential-issuer/pkg/service/iacas"
	"github.com/trustbloc/credential-issuer/pkg/service/metadata"
	"github.com/trustbloc/credential-issuer/pkg/service/notification"
	"github.com/trustbloc/credential-issuer/pkg/service/revoke"
	"github.com/trustbloc/credential-issuer/pkg/statuslist"
	"github.com/trustbloc/credential-issuer/pkg/storage/mongodb"
	"github.com/trustbloc/credential-issuer/pkg/storage/mongodb/credentialstore"
	"github.com/trustbloc/credential-issuer/pkg/storage/redis"
	"github.com/trustbloc/credential-issuer/pkg/storage/redis/offerstore"
	"github.com/trustbloc/credential-issuer/pkg/storage/s3/certificatestore"
)

var logger = log.New("credential-issuer")

const (
	healthCheckEndpoint = "/healthcheck"
	httpClientTimeout   = 10 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// HTTPServer serves a handler until it is shut down.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type startOpts struct {
	version   string
	buildTime string
	newServer func(addr string, handler http.Handler) HTTPServer
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithVersion sets the version reported at /version.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithBuildTime sets the build time reported at /version/system.
func WithBuildTime(buildTime string) StartOpts {
	return func(opts *startOpts) {
		opts.buildTime = buildTime
	}
}

// WithHTTPServer replaces the net/http server used for the public and internal listeners.
func WithHTTPServer(newServer func(addr string, handler http.Handler) HTTPServer) StartOpts {
	return func(opts *startOpts) {
		opts.newServer = newServer
	}
}

func newHTTPServer(addr string, handler http.Handler) HTTPServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: httpClientTimeout,
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start credential-issuer",
		Long:  "Start the credential issuer API",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			o := &startOpts{newServer: newHTTPServer}

			for _, opt := range opts {
				opt(o)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return startService(ctx, params, o)
		},
	}
}

func startService(ctx context.Context, params *startupParameters, opts *startOpts) error {
	common.SetLogLevels(logger, params.logLevel)

	shutdownTracing, tracer, err := tracing.Initialize(&tracing.Config{
		Exporter:       params.tracingProvider,
		ServiceVersion: opts.version,
	})
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracing()

	deps, err := buildDependencies(ctx, params, tracer)
	if err != nil {
		return err
	}

	defer deps.close()

	e := newEcho(tracer)

	issuer.NewController(deps.controllerConfig).RegisterHandlers(e)
	version.NewController(e, version.Config{Version: opts.version, BuildTime: opts.buildTime})
	e.GET(healthCheckEndpoint, healthcheck.NewController(healthchecks.NewHandler(deps.checks)).GetHealthcheck)

	internalEcho := echo.New()
	internalEcho.HideBanner = true
	internalEcho.HidePort = true

	if params.metricsProviderName == metricsProviderPrometheus {
		internalEcho.GET(prometheus.MetricsPath, echo.WrapHandler(prometheus.NewHandler()))
	}

	readiness := newReadinessController(internalEcho)

	servers := []HTTPServer{
		opts.newServer(params.hostURL, e),
		opts.newServer(params.internalHostURL, internalEcho),
	}

	errCh := make(chan error, len(servers))

	for _, srv := range servers {
		go func(srv HTTPServer) {
			if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				errCh <- serveErr
			}
		}(srv)
	}

	readiness.Ready(true)

	logger.Info("Started credential issuer", log.WithURL(params.hostURL))

	select {
	case <-ctx.Done():
		logger.Info("Shutting down credential issuer")
	case err = <-errCh:
		logger.Error("Credential issuer server failed", log.WithError(err))
	}

	readiness.Ready(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("Server shutdown failed", log.WithError(shutdownErr))
		}
	}

	return err
}

func newEcho(tracer trace.Tracer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		Skipper:    requestLogSkipper,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Debugc(c.Request().Context(), "Request served",
				log.WithURL(v.URI), log.WithHTTPStatus(v.Status), log.WithDuration(v.Latency))

			return nil
		},
	}))

	return e
}

type dependencies struct {
	controllerConfig *issuer.Config
	checks           []health.Check
	closers          []func() error
}

func (d *dependencies) close() {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			logger.Warn("Failed to close connection", log.WithError(err))
		}
	}
}

// nolint: funlen
func buildDependencies(
	ctx context.Context,
	params *startupParameters,
	tracer trace.Tracer,
) (*dependencies, error) {
	deps := &dependencies{}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(params.awsRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	metrics := noop.GetMetrics()
	if params.metricsProviderName == metricsProviderPrometheus {
		metrics = prometheus.GetMetrics()
	}

	httpClient := &http.Client{Timeout: httpClientTimeout}

	kmsService := awskms.New(&awsCfg, metrics, params.signingKeyAlias, awskms.WithEndpoint(params.awsEndpoint))

	var signingKeyID string

	err = common.Connect("kms", func() error {
		var getErr error

		signingKeyID, getErr = kmsService.GetKeyID(ctx, params.signingKeyAlias)

		return getErr
	}, params.connectRetries, logger)
	if err != nil {
		return nil, fmt.Errorf("resolve signing key: %w", err)
	}

	documentSigningKeyID, err := awskms.ExtractKeyID(params.documentSigningKeyARN)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if params.awsEndpoint != "" {
			o.BaseEndpoint = aws.String(params.awsEndpoint)
			o.UsePathStyle = true
		}
	})

	certificates := certificatestore.NewStore(s3Client, params.certificatesBucket)

	var redisClient *redis.Client

	err = common.Connect("redis", func() error {
		var connErr error

		redisClient, connErr = redis.New(params.redisAddrs,
			redis.WithPassword(params.redisPassword),
			redis.WithTraceProvider(otel.GetTracerProvider()),
		)

		return connErr
	}, params.connectRetries, logger)
	if err != nil {
		return nil, err
	}

	deps.closers = append(deps.closers, redisClient.Close)

	mongoClient, err := mongodb.New(params.mongoDBConnectionString, params.mongoDBDatabase,
		mongodb.WithTraceProvider(otel.GetTracerProvider()))
	if err != nil {
		deps.close()

		return nil, err
	}

	deps.closers = append(deps.closers, mongoClient.Close)

	err = common.Connect("mongodb", func() error {
		pingCtx, cancel := mongoClient.ContextWithTimeout()
		defer cancel()

		return mongoClient.Ping(pingCtx)
	}, params.connectRetries, logger)
	if err != nil {
		deps.close()

		return nil, err
	}

	credentials, err := credentialstore.New(ctx, mongoClient)
	if err != nil {
		deps.close()

		return nil, err
	}

	offers := offerstore.New(redisClient, params.credentialOfferTTL)

	keys, err := jwks.New(&jwks.Config{
		JWKSURL:    params.jwksURL,
		HTTPClient: httpClient,
		CacheTTL:   params.jwksCacheTTL,
	})
	if err != nil {
		deps.close()

		return nil, err
	}

	deps.closers = append(deps.closers, func() error {
		keys.Close()

		return nil
	})

	statusList := statuslist.New(&statuslist.Config{
		URL:          params.statusListURL,
		ClientID:     params.statusListClientID,
		SigningKeyID: signingKeyID,
		KMS:          kmsService,
		HTTPClient:   httpClient,
	})

	registry, err := credentialapi.NewRegistry(
		jwtvc.NewBuilder(&jwtvc.Config{
			DIDController: params.didController,
			SigningKeyID:  signingKeyID,
			KMS:           kmsService,
			Display:       jwtvc.DefaultDisplay(),
		}),
		mdl.NewBuilder(&mdl.Config{
			SigningKeyID:  params.documentSigningKeyARN,
			CertificateID: documentSigningKeyID,
			Issuer: mdoc.NewIssuer(mdoc.NewMobileSecurityObjectFactory(
				mdoc.NewValidityInfoFactory(time.Now))),
			Certificates: certificates,
			KMS:          kmsService,
		}),
	)
	if err != nil {
		deps.close()

		return nil, err
	}

	validator, err := credentialapi.NewSchemaValidator()
	if err != nil {
		deps.close()

		return nil, err
	}

	accessTokens := authorization.NewAccessTokenVerifier(&authorization.AccessTokenConfig{
		AuthServerURL: params.authServerURL,
		SelfURL:       params.selfURL,
		Keys:          keys,
	})

	credentialService := credential.NewService(&credential.Config{
		AccessTokens: accessTokens,
		Proofs:       authorization.NewProofVerifier(params.selfURL, time.Now),
		Offers:       offers,
		Documents:    documentstore.New(params.credentialStoreURL, httpClient),
		Registry:     registry,
		Validator:    validator,
		StatusList:   statusList,
		Credentials:  credentials,
		Metrics:      metrics,
	})

	offerService := credentialoffer.NewService(&credentialoffer.Config{
		SelfURL:              params.selfURL,
		AuthServerURL:        params.authServerURL,
		ClientID:             params.oidcClientID,
		WalletDeepLinkURL:    params.walletDeepLinkURL,
		SigningKeyID:         signingKeyID,
		KMS:                  kmsService,
		Offers:               offers,
		OfferTTL:             time.Duration(params.credentialOfferTTL) * time.Second,
		PreAuthorizedCodeTTL: time.Duration(params.preAuthorizedCodeTTL) * time.Second,
	})

	notificationService := notification.NewService(&notification.Config{
		AccessTokens: accessTokens,
		Credentials:  credentials,
		Metrics:      metrics,
	})

	revokeService := revoke.NewService(&revoke.Config{
		Credentials: credentials,
		StatusList:  statusList,
	})

	deps.controllerConfig = &issuer.Config{
		CredentialService:      issuecredentialwrapper.Wrap(credentialService, tracer),
		NotificationService:    notificationwrapper.Wrap(notificationService, tracer),
		CredentialOfferService: credentialofferwrapper.Wrap(offerService, tracer),
		RevokeService:          revokewrapper.Wrap(revokeService, tracer),
		DIDDocumentService: diddocument.NewService(&diddocument.Config{
			DIDController:   params.didController,
			SigningKeyAlias: params.signingKeyAlias,
			KMS:             kmsService,
		}),
		MetadataService: metadata.NewService(&metadata.Config{
			SelfURL:            params.selfURL,
			AuthServerURL:      params.authServerURL,
			CredentialStoreURL: params.credentialStoreURL,
			LogoURL:            params.logoURL,
		}),
		IacasService: iacas.NewService(&iacas.Config{
			CertificateAuthorityARN: params.certificateAuthorityARN,
			Certificates:            certificates,
		}),
		Tracer: tracer,
	}

	deps.checks = healthchecks.Get(&healthchecks.Config{
		Redis:   redisClient,
		MongoDB: mongoClient,
		KMS:     kmsService,
	})

	return deps, nil
}
