/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package documentstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	"github.com/trustbloc/credential-issuer/pkg/credential"
)

var logger = log.New("document-store-client")

// ErrDocumentStore is returned when a document cannot be fetched.
var ErrDocumentStore = errors.New("document store error")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads documents from the credential store.
type Client struct {
	baseURL    string
	httpClient httpClient
}

// New returns a Client for the credential store at baseURL. A nil client means http.DefaultClient.
func New(baseURL string, client httpClient) *Client {
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// GetDocument fetches the document stored under itemID.
func (c *Client) GetDocument(ctx context.Context, itemID string) (*credential.Document, error) {
	doc, err := c.getDocument(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentStore, err)
	}

	return doc, nil
}

func (c *Client) getDocument(ctx context.Context, itemID string) (*credential.Document, error) {
	endpoint := c.baseURL + "/document/" + url.PathEscape(itemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)

		logger.Warnc(ctx, "document not returned",
			logfields.WithItemID(itemID), log.WithURL(endpoint), log.WithHTTPStatus(resp.StatusCode))

		return nil, fmt.Errorf("status code: %d, msg: %s", resp.StatusCode, string(b))
	}

	var doc credential.Document

	if err = json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	return &doc, nil
}
