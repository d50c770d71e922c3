// Package cloudinary uploads product imagery through Cloudinary's unsigned
// upload endpoint.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

var errCloudNameRequired = errors.New("cloudinary cloud name is required")

// Client talks to the Cloudinary upload API for a single cloud.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured upload base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds the Cloudinary client for the given cloud and unsigned
// upload preset.
func NewClient(cloudName, uploadPreset string, opts ...Option) (*Client, error) {
	trimmedCloud := strings.TrimSpace(cloudName)
	if trimmedCloud == "" {
		return nil, errCloudNameRequired
	}

	client := &Client{
		cloudName:    trimmedCloud,
		uploadPreset: strings.TrimSpace(uploadPreset),
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// UploadImage streams the file to Cloudinary and returns the hosted HTTPS
// URL of the stored asset.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "cloudinary client not configured")
	}
	if file == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image file is required")
	}
	if strings.TrimSpace(filename) == "" {
		filename = "upload"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	filePart, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build upload form")
	}
	if _, err := io.Copy(filePart, file); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read image file")
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build upload form")
	}
	if err := writer.Close(); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build upload form")
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", strings.TrimRight(c.baseURL, "/"), url.PathEscape(c.cloudName))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build upload request")
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute upload request")
	}
	defer func() { _ = resp.Body.Close() }()

	var apiResp struct {
		SecureURL string `json:"secure_url"`
		Error     *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode upload response")
	}

	if apiResp.Error != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New(apiResp.Error.Message), "upload rejected")
	}
	if apiResp.SecureURL == "" {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d", resp.StatusCode), "upload returned no asset url")
	}

	return apiResp.SecureURL, nil
}
