// Package jellyfin implements the MediaServer port against the Jellyfin REST API.
package jellyfin

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gregjones/httpcache"

	"github.com/ericfisherdev/jellyshell/internal/domain/model"
	"github.com/ericfisherdev/jellyshell/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.MediaServer = (*Client)(nil)

// RequestTimeout bounds every call to the media server. It is not configurable.
const RequestTimeout = 3 * time.Second

const (
	authenticatePath = "/users/AuthenticateByName"
	publicInfoPath   = "/System/Info/Public"

	// maxDrain caps how much of an error body is read before closing it.
	maxDrain = 64 << 10
)

var validate = validator.New()

// Identity describes this client to the server. Every field is sent in the
// request headers.
type Identity struct {
	ClientName    string
	ClientVersion string
	DeviceName    string
	DeviceID      string
}

// Client implements driven.MediaServer.
type Client struct {
	http      *http.Client
	serverURL string
	identity  Identity
	logger    *slog.Logger
}

// NewClient creates a media-server client with the following transport stack:
//  1. httpcache (memory cache, honors Cache-Control on the public info request)
//  2. net/http default transport
func NewClient(serverURL string, identity Identity, logger *slog.Logger) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	httpClient := &http.Client{
		Transport: cacheTransport,
		Timeout:   RequestTimeout,
	}
	return NewClientWithHTTPClient(httpClient, serverURL, identity, logger)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, serverURL string, identity Identity, logger *slog.Logger) *Client {
	return &Client{
		http:      httpClient,
		serverURL: strings.TrimRight(serverURL, "/"),
		identity:  identity,
		logger:    logger,
	}
}

// AuthenticateByName exchanges a username and password for a session.
// A 401 maps to driven.ErrUnauthorized, an undecodable 200 body to
// driven.ErrDecodeFailure, and everything else to driven.ErrTransportFailure.
func (c *Client) AuthenticateByName(ctx context.Context, creds model.Credentials) (*model.AuthenticationResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("%w: encode credentials: %w", driven.ErrTransportFailure, err)
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+authenticatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", driven.ErrTransportFailure, err)
	}
	c.setAuthHeaders(req)

	c.logger.Debug("authenticating user", "username", creds.Username, "server", c.serverURL)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("authenticate request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", driven.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var result model.AuthenticationResult
		if err := decodeBody(resp, &result); err != nil {
			c.logger.Warn("authenticate response did not decode", "error", err)
			return nil, fmt.Errorf("%w: %w", driven.ErrDecodeFailure, err)
		}
		if err := validate.Struct(&result); err != nil {
			c.logger.Warn("authenticate response is incomplete", "error", err)
			return nil, fmt.Errorf("%w: %w", driven.ErrDecodeFailure, err)
		}
		c.logger.Info("user authenticated", "user_id", result.User.ID, "server_id", result.Server())
		return &result, nil

	case http.StatusUnauthorized:
		drain(resp.Body)
		c.logger.Info("authentication rejected", "username", creds.Username)
		return nil, driven.ErrUnauthorized

	default:
		drain(resp.Body)
		c.logger.Warn("unexpected authenticate status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", driven.ErrTransportFailure, resp.StatusCode)
	}
}

// PublicInfo fetches the unauthenticated server description. It is used only
// as a reachability check.
func (c *Client) PublicInfo(ctx context.Context) (*model.PublicSystemInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+publicInfoPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", driven.ErrTransportFailure, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.identity.product())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", driven.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d", driven.ErrTransportFailure, resp.StatusCode)
	}

	var info model.PublicSystemInfo
	if err := decodeBody(resp, &info); err != nil {
		return nil, fmt.Errorf("%w: %w", driven.ErrDecodeFailure, err)
	}

	c.logger.Debug("server reachable",
		"server_name", info.ServerName,
		"version", info.Version,
		"from_cache", resp.Header.Get(httpcache.XFromCache) == "1",
	)
	return &info, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	product := c.identity.product()
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("X-Application", product)
	req.Header.Set("Accept-Charset", "UTF-8,*")
	req.Header.Set("Accept-encoding", "gzip")
	req.Header.Set("User-Agent", product)
	req.Header.Set("X-Emby-Authorization", c.identity.authorization())
}

func (id Identity) product() string {
	return id.ClientName + "/" + id.ClientVersion
}

// authorization renders the MediaBrowser authorization-scheme header value.
func (id Identity) authorization() string {
	return fmt.Sprintf("MediaBrowser Client='%s', Device='%s', DeviceId='%s', Version='%s'",
		id.ClientName, id.DeviceName, id.DeviceID, id.ClientVersion)
}

// decodeBody decodes a JSON response into v. Because the request sets
// Accept-Encoding itself, net/http does not decompress and gzip is handled here.
// The body is read to EOF so httpcache can store cacheable responses.
func decodeBody(resp *http.Response, v any) error {
	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("gzip reader: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrain))
}
