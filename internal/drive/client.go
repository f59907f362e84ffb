// Package drive implements the Google Drive OAuth flow and file upload
// against the raw REST endpoints. Tokens live in memory for the lifetime of
// the process; reconnecting re-runs the consent flow.
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	authEndpoint   = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint  = "https://oauth2.googleapis.com/token"
	uploadEndpoint = "https://www.googleapis.com/upload/drive/v3/files"

	// drive.file grants access only to files this app creates.
	scopeDriveFile = "https://www.googleapis.com/auth/drive.file"

	docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Client drives the OAuth exchange and multipart uploads.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client

	mu    sync.Mutex
	token *token
}

type token struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

func NewClient(clientID, clientSecret, redirectURI string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured reports whether the OAuth credentials are present.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != "" && c.redirectURI != ""
}

// Connected reports whether a token was obtained this session.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != nil
}

// AuthURL builds the consent URL. access_type=offline plus prompt=consent
// forces Google to issue a refresh token on every connect.
func (c *Client) AuthURL() string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", c.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", scopeDriveFile)
	q.Set("access_type", "offline")
	q.Set("prompt", "consent")
	return authEndpoint + "?" + q.Encode()
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Error        string `json:"error"`
	ErrorDesc    string `json:"error_description"`
}

// Exchange trades an authorization code for tokens and stores them.
func (c *Client) Exchange(ctx context.Context, code string) error {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", c.redirectURI)
	form.Set("grant_type", "authorization_code")

	tok, err := c.requestToken(ctx, form)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}

	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
	return nil
}

func (c *Client) requestToken(ctx context.Context, form url.Values) (*token, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("token endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(respBody, &tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || tr.Error != "" {
		return nil, fmt.Errorf("token endpoint status %d: %s: %s", resp.StatusCode, tr.Error, tr.ErrorDesc)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned no access token")
	}

	return &token{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}

// accessToken returns a valid access token, refreshing when the stored one
// is expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	tok := c.token
	c.mu.Unlock()

	if tok == nil {
		return "", ErrNotConnected
	}
	if time.Now().Before(tok.Expiry.Add(-30 * time.Second)) {
		return tok.AccessToken, nil
	}
	if tok.RefreshToken == "" {
		return "", ErrNotConnected
	}

	form := url.Values{}
	form.Set("refresh_token", tok.RefreshToken)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "refresh_token")

	fresh, err := c.requestToken(ctx, form)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	// Google omits the refresh token on refresh responses; keep the old one.
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = tok.RefreshToken
	}

	c.mu.Lock()
	c.token = fresh
	c.mu.Unlock()
	return fresh.AccessToken, nil
}

// ErrNotConnected means no usable Drive session exists; the caller should
// restart the consent flow.
var ErrNotConnected = fmt.Errorf("google drive not connected")

// UploadResult identifies the created Drive file.
type UploadResult struct {
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	WebViewLink string `json:"webViewLink"`
}

// Upload stores a docx in Drive via a multipart/related create request.
// folderID is optional; empty means the Drive root.
func (c *Client) Upload(ctx context.Context, fileName, folderID string, data []byte) (*UploadResult, error) {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	meta := map[string]any{
		"name":     fileName,
		"mimeType": docxMIME,
	}
	if folderID != "" {
		meta["parents"] = []string{folderID}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	metaHdr := textproto.MIMEHeader{}
	metaHdr.Set("Content-Type", "application/json; charset=UTF-8")
	part, err := mw.CreatePart(metaHdr)
	if err != nil {
		return nil, fmt.Errorf("create metadata part: %w", err)
	}
	if _, err := part.Write(metaJSON); err != nil {
		return nil, fmt.Errorf("write metadata part: %w", err)
	}

	fileHdr := textproto.MIMEHeader{}
	fileHdr.Set("Content-Type", docxMIME)
	part, err = mw.CreatePart(fileHdr)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	u := uploadEndpoint + "?uploadType=multipart&fields=" + url.QueryEscape("id,name,webViewLink")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "multipart/related; boundary="+mw.Boundary())
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("drive upload: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.mu.Lock()
		c.token = nil
		c.mu.Unlock()
		return nil, ErrNotConnected
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive upload status %d: %s", resp.StatusCode, string(respBody))
	}

	var created struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		WebViewLink string `json:"webViewLink"`
	}
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	return &UploadResult{
		FileID:      created.ID,
		FileName:    created.Name,
		WebViewLink: created.WebViewLink,
	}, nil
}

// Close releases any resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
