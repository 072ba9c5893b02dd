package imgbb

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
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const maxResponseBody = 64 << 10

var ErrUpload = errors.New("imgbb upload failed")

type Config interface {
	APIKey() string
	URL() string
	Timeout() time.Duration
	Expiration() time.Duration
}

type client struct {
	http       *http.Client
	fs         afero.Fs
	endpoint   string
	apiKey     string
	expiration time.Duration
}

type uploadResponse struct {
	Data *struct {
		ID         string `json:"id"`
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Error   *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// NewClient reads staged files from fs and posts them to the configured
// upload endpoint.
func NewClient(cfg Config, fs afero.Fs) *client {
	return &client{
		http:       &http.Client{Timeout: cfg.Timeout()},
		fs:         fs,
		endpoint:   cfg.URL(),
		apiKey:     cfg.APIKey(),
		expiration: cfg.Expiration(),
	}
}

// Upload sends the file at path and returns its display URL.
func (c *client) Upload(ctx context.Context, path, name string) (string, error) {
	const op = "imgbb.Upload"

	body, contentType, err := c.buildBody(path, name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	endpoint, err := c.uploadURL()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrUpload, err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&out); err != nil {
		return "", fmt.Errorf("%s: %w: status %d: decode response: %w", op, ErrUpload, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("%s: %w: status %d: %s", op, ErrUpload, resp.StatusCode, msg)
	}

	if out.Data == nil || out.Data.DisplayURL == "" {
		return "", fmt.Errorf("%s: %w: response has no display_url", op, ErrUpload)
	}

	return out.Data.DisplayURL, nil
}

func (c *client) uploadURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	if c.expiration > 0 {
		q.Set("expiration", strconv.FormatInt(int64(c.expiration/time.Second), 10))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *client) buildBody(path, name string) (io.Reader, string, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open staged file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if base := strings.TrimSuffix(name, filepath.Ext(name)); base != "" {
		if err := w.WriteField("name", base); err != nil {
			return nil, "", err
		}
	}

	filename := filepath.Base(name)
	if name == "" {
		filename = "image"
	}

	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("read staged file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
