package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rest-demo/internal/config"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/utils"
	"github.com/MKhiriev/go-rest-demo/models"
	"github.com/go-resty/resty/v2"
)

// AuthTokenHeader carries the caller identity on protected requests.
const AuthTokenHeader = "X-Auth-Token"

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme
// defaults to http. Returns an error if the address is empty or cannot be
// parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		token:  strings.TrimSpace(appCfg.AuthToken),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Hello(ctx context.Context) (string, error) {
	return h.getText(ctx, h.client.R(), "/hello")
}

func (h *httpServerAdapter) GetRest(ctx context.Context, id int32) (models.RestItem, error) {
	var item models.RestItem

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(int64(id), 10)).
		Get("/rest/{id}")
	if err != nil {
		return item, fmt.Errorf("get rest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return item, err
	}

	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return item, fmt.Errorf("decode rest item: %w", err)
	}
	return item, nil
}

func (h *httpServerAdapter) ListRest(ctx context.Context) ([]models.StatusRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/rest")
	if err != nil {
		return nil, fmt.Errorf("list rest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.StatusRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode status records: %w", err)
	}
	return records, nil
}

func (h *httpServerAdapter) CreateRest(ctx context.Context, doc models.RestDocument) (models.RestDocument, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post("/rest")
	if err != nil {
		return nil, fmt.Errorf("create rest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()

	var created models.RestDocument
	if err = dec.Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created document: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) Add(ctx context.Context, a, b int32) (string, error) {
	req := h.client.R().SetPathParams(map[string]string{
		"a": strconv.FormatInt(int64(a), 10),
		"b": strconv.FormatInt(int64(b), 10),
	})
	return h.getText(ctx, req, "/add/{a}/{b}")
}

func (h *httpServerAdapter) Basic(ctx context.Context, name string, age int32) (string, error) {
	req := h.client.R().SetPathParams(map[string]string{
		"name": name,
		"age":  strconv.FormatInt(int64(age), 10),
	})
	return h.getText(ctx, req, "/basic/{name}/{age}")
}

func (h *httpServerAdapter) Items(ctx context.Context, name string, query url.Values) (string, error) {
	req := h.client.R().
		SetPathParam("name", name).
		SetQueryParamsFromValues(query)
	return h.getText(ctx, req, "/items/{name}")
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	return h.getText(ctx, h.client.R(), "/api/version")
}

func (h *httpServerAdapter) getText(ctx context.Context, req *resty.Request, path string) (string, error) {
	resp, err := req.SetContext(ctx).Get(path)
	if err != nil {
		return "", fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader(AuthTokenHeader, h.token)
	}
	return req
}
