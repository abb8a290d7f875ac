/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package issuer_test . CredentialService,NotificationService,CredentialOfferService,RevokeService,DIDDocumentService,MetadataService,IacasService

package issuer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-jose/go-jose/v3"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-issuer/pkg/authorization"
	"github.com/trustbloc/credential-issuer/pkg/restapi/resterr"
	issuererr "github.com/trustbloc/credential-issuer/pkg/restapi/resterr/issuer"
	"github.com/trustbloc/credential-issuer/pkg/restapi/v1/util"
	"github.com/trustbloc/credential-issuer/pkg/service/credential"
	"github.com/trustbloc/credential-issuer/pkg/service/credentialoffer"
	"github.com/trustbloc/credential-issuer/pkg/service/diddocument"
	"github.com/trustbloc/credential-issuer/pkg/service/iacas"
	"github.com/trustbloc/credential-issuer/pkg/service/metadata"
	"github.com/trustbloc/credential-issuer/pkg/service/notification"
	"github.com/trustbloc/credential-issuer/pkg/service/revoke"
)

const proofTypeJWT = "jwt"

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type CredentialService interface {
	IssueCredential(ctx context.Context, req *credential.IssueRequest) (*credential.IssueResponse, error)
}

type NotificationService interface {
	ProcessNotification(ctx context.Context, req *notification.Request) error
}

type CredentialOfferService interface {
	CreateOffer(ctx context.Context, req *credentialoffer.Request) (*credentialoffer.Response, error)
}

type RevokeService interface {
	RevokeCredentials(ctx context.Context, documentID string) error
}

type DIDDocumentService interface {
	GetDIDDocument(ctx context.Context) (*diddocument.Document, error)
	GetJWKS(ctx context.Context) (*jose.JSONWebKeySet, error)
}

type MetadataService interface {
	GetMetadata() *metadata.Metadata
}

type IacasService interface {
	GetIacas(ctx context.Context) (*iacas.Iacas, error)
}

// Config holds configuration options for Controller.
type Config struct {
	CredentialService      CredentialService
	NotificationService    NotificationService
	CredentialOfferService CredentialOfferService
	RevokeService          RevokeService
	DIDDocumentService     DIDDocumentService
	MetadataService        MetadataService
	IacasService           IacasService
	Tracer                 trace.Tracer
}

// Controller for the credential issuer API.
type Controller struct {
	credentials   CredentialService
	notifications NotificationService
	offers        CredentialOfferService
	revocations   RevokeService
	didDocuments  DIDDocumentService
	metadata      MetadataService
	iacas         IacasService
	tracer        trace.Tracer
}

// NewController creates a new Controller instance.
func NewController(cfg *Config) *Controller {
	return &Controller{
		credentials:   cfg.CredentialService,
		notifications: cfg.NotificationService,
		offers:        cfg.CredentialOfferService,
		revocations:   cfg.RevokeService,
		didDocuments:  cfg.DIDDocumentService,
		metadata:      cfg.MetadataService,
		iacas:         cfg.IacasService,
		tracer:        cfg.Tracer,
	}
}

// RegisterHandlers adds the issuer routes to router.
func (c *Controller) RegisterHandlers(r router) {
	r.POST("/credential", c.PostCredential)
	r.POST("/notification", c.PostNotification)
	r.GET("/credential_offer", c.GetCredentialOffer)
	r.POST("/revoke", c.PostRevoke)
	r.POST("/revoke/:documentId", c.PostRevoke)
	r.GET("/.well-known/did.json", c.GetDIDDocument)
	r.GET("/.well-known/jwks.json", c.GetJWKS)
	r.GET("/.well-known/openid-credential-issuer", c.GetMetadata)
	r.GET("/iacas", c.GetIacas)
}

// PostCredential issues a credential for a redeemed credential offer (POST /credential).
func (c *Controller) PostCredential(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "PostCredential")
	defer span.End()

	token, err := util.BearerToken(e)
	if err != nil {
		return issuererr.NewInvalidTokenError(err).UsePublicAPIResponse()
	}

	var body CredentialRequest

	if err = util.ReadBody(e, &body); err != nil {
		return issuererr.NewInvalidCredentialRequestError(err).UsePublicAPIResponse()
	}

	if err = body.validate(); err != nil {
		return err
	}

	resp, err := c.credentials.IssueCredential(ctx, &credential.IssueRequest{
		AccessToken: token,
		ProofJWT:    body.Proof.JWT,
	})
	if err != nil {
		return credentialError(err)
	}

	return util.WriteOutput(e)(resp, nil)
}

// PostNotification records a wallet notification about an issued credential (POST /notification).
func (c *Controller) PostNotification(e echo.Context) error {
	token, err := util.BearerToken(e)
	if err != nil {
		return issuererr.NewInvalidTokenError(err).UsePublicAPIResponse()
	}

	var body NotificationRequest

	if err = util.ReadBody(e, &body); err != nil {
		return issuererr.NewInvalidNotificationRequestError(err).UsePublicAPIResponse()
	}

	if body.NotificationID == "" {
		return issuererr.NewInvalidNotificationRequestError(errors.New("notification_id is required")).
			UsePublicAPIResponse()
	}

	err = c.notifications.ProcessNotification(e.Request().Context(), &notification.Request{
		AccessToken:      token,
		NotificationID:   body.NotificationID,
		Event:            notification.Event(body.Event),
		EventDescription: body.EventDescription,
	})
	if err != nil {
		return notificationError(err)
	}

	return e.NoContent(http.StatusNoContent)
}

// GetCredentialOffer creates a credential offer for a wallet (GET /credential_offer).
func (c *Controller) GetCredentialOffer(e echo.Context) error {
	resp, err := c.offers.CreateOffer(e.Request().Context(), &credentialoffer.Request{
		WalletSubjectID: e.QueryParam("walletSubjectId"),
		ItemID:          e.QueryParam("documentId"),
		CredentialType:  e.QueryParam("credentialType"),
	})
	if err != nil {
		if errors.Is(err, credentialoffer.ErrInvalidRequest) {
			return issuererr.NewInvalidRequestError(err).
				WithComponent(resterr.CredentialOfferSvcComponent).
				WithDescription("invalid credential offer request").
				UsePublicAPIResponse()
		}

		return serverError(err, resterr.CredentialOfferSvcComponent, "CreateOffer")
	}

	return util.WriteOutput(e)(resp, nil)
}

// PostRevoke revokes all credentials issued for a document (POST /revoke).
func (c *Controller) PostRevoke(e echo.Context) error {
	documentID := e.Param("documentId")

	if documentID == "" {
		var body RevokeRequest

		if err := util.ReadBody(e, &body); err != nil {
			return issuererr.NewInvalidRequestError(err).UsePublicAPIResponse()
		}

		documentID = body.DocumentID
	}

	err := c.revocations.RevokeCredentials(e.Request().Context(), documentID)
	if err != nil {
		switch {
		case errors.Is(err, revoke.ErrInvalidDocumentID):
			return issuererr.NewInvalidRequestError(err).
				WithComponent(resterr.RevokeSvcComponent).
				UsePublicAPIResponse()
		case errors.Is(err, revoke.ErrCredentialNotFound):
			return issuererr.NewNotFoundError(err).
				WithComponent(resterr.RevokeSvcComponent).
				UsePublicAPIResponse()
		default:
			return serverError(err, resterr.RevokeSvcComponent, "RevokeCredentials")
		}
	}

	return e.NoContent(http.StatusAccepted)
}

// GetDIDDocument returns the issuer did:web document (GET /.well-known/did.json).
func (c *Controller) GetDIDDocument(e echo.Context) error {
	doc, err := c.didDocuments.GetDIDDocument(e.Request().Context())
	if err != nil {
		return serverError(err, resterr.DIDDocumentSvcComponent, "GetDIDDocument")
	}

	return util.WriteOutput(e)(doc, nil)
}

// GetJWKS returns the issuer signing key set (GET /.well-known/jwks.json).
func (c *Controller) GetJWKS(e echo.Context) error {
	jwks, err := c.didDocuments.GetJWKS(e.Request().Context())
	if err != nil {
		return serverError(err, resterr.DIDDocumentSvcComponent, "GetJWKS")
	}

	return util.WriteOutput(e)(jwks, nil)
}

// GetMetadata returns the credential issuer metadata (GET /.well-known/openid-credential-issuer).
func (c *Controller) GetMetadata(e echo.Context) error {
	return util.WriteOutput(e)(c.metadata.GetMetadata(), nil)
}

// GetIacas returns the issuing authority certificates (GET /iacas).
func (c *Controller) GetIacas(e echo.Context) error {
	resp, err := c.iacas.GetIacas(e.Request().Context())
	if err != nil {
		return serverError(err, resterr.IacasSvcComponent, "GetIacas")
	}

	return util.WriteOutput(e)(resp, nil)
}

func credentialError(err error) error {
	var e *issuererr.Error

	switch {
	case errors.Is(err, authorization.ErrAccessTokenValidation),
		errors.Is(err, credential.ErrCredentialOffer):
		e = issuererr.NewInvalidTokenError(err)
	case errors.Is(err, authorization.ErrProofValidation),
		errors.Is(err, credential.ErrNonceMismatch):
		e = issuererr.NewInvalidProofError(err)
	default:
		return serverError(err, resterr.CredentialSvcComponent, "IssueCredential")
	}

	return e.WithComponent(resterr.CredentialSvcComponent).
		WithOperation("IssueCredential").
		UsePublicAPIResponse()
}

func notificationError(err error) error {
	var e *issuererr.Error

	switch {
	case errors.Is(err, authorization.ErrAccessTokenValidation),
		errors.Is(err, notification.ErrWalletSubjectMismatch):
		e = issuererr.NewInvalidTokenError(err)
	case errors.Is(err, notification.ErrInvalidNotificationID):
		e = issuererr.NewInvalidNotificationIDError(err)
	case errors.Is(err, notification.ErrInvalidEvent),
		errors.Is(err, notification.ErrCredentialNotFound):
		e = issuererr.NewInvalidNotificationRequestError(err)
	default:
		return serverError(err, resterr.NotificationSvcComponent, "ProcessNotification")
	}

	return e.WithComponent(resterr.NotificationSvcComponent).
		WithOperation("ProcessNotification").
		UsePublicAPIResponse()
}

func serverError(err error, component resterr.Component, operation string) error {
	return issuererr.NewServerError(fmt.Errorf("%s: %w", operation, err)).
		WithComponent(component).
		WithOperation(operation).
		UsePublicAPIResponse()
}
