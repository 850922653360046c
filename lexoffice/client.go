package lexoffice

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-contact-bridge/core"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

// ClientConfig carries the vendor endpoint settings the client needs.
type ClientConfig struct {
	BaseURL           string
	Dialect           core.Dialect
	DefaultSalutation string
}

// Client implements the adapter contract against the vendor API. Every
// operation mints a fresh access token from the caller's API key, runs a
// sequential chain of requests, and aborts on the first failure.
type Client struct {
	config     ClientConfig
	authorizer core.APIKeyAuthorizer
	transport  core.TransportAdapter
	mapper     *Mapper
	dialect    APIDialect
	logger     core.Logger
}

type ClientOption func(*Client)

func WithClientLogger(logger core.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(
	config ClientConfig,
	authorizer core.APIKeyAuthorizer,
	transport core.TransportAdapter,
	opts ...ClientOption,
) (*Client, error) {
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, core.NewConfigError("lexoffice: base url is required")
	}
	if authorizer == nil {
		return nil, core.NewConfigError("lexoffice: client requires an api key authorizer")
	}
	if transport == nil {
		return nil, core.NewConfigError("lexoffice: client requires a transport adapter")
	}
	dialect, err := DialectFor(config.Dialect)
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:     config,
		authorizer: authorizer,
		transport:  transport,
		mapper:     NewMapper(config.DefaultSalutation),
		dialect:    dialect,
		logger:     glog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// GetContacts lists every contact the credential can see. Pages are fetched
// sequentially; the loop stops on the vendor's last marker or on an empty
// page, returning whatever accumulated so far.
func (c *Client) GetContacts(ctx context.Context, apiKey string) ([]core.Contact, error) {
	startedAt := time.Now()
	auth, err := c.authorizer.AuthorizeAPIKey(ctx, apiKey)
	if err != nil {
		c.observe(ctx, startedAt, "get_contacts", err, nil)
		return nil, err
	}

	var contacts []core.Contact
	pages := 0
	for page := 0; ; page++ {
		res, err := c.do(ctx, auth, http.MethodGet, c.dialect.CollectionURL(c.config.BaseURL), nil, map[string]string{
			"page": strconv.Itoa(page),
		})
		if err != nil {
			c.observe(ctx, startedAt, "get_contacts", err, map[string]any{"pages": pages})
			return nil, err
		}
		decoded, err := decodePage(res.Body)
		if err != nil {
			c.observe(ctx, startedAt, "get_contacts", err, map[string]any{"pages": pages})
			return nil, err
		}
		pages++
		if len(decoded.Content) == 0 {
			break
		}
		for _, record := range decoded.Content {
			if contact := c.mapper.ToContact(record); contact != nil {
				contacts = append(contacts, *contact)
			}
		}
		if decoded.Last {
			break
		}
	}

	c.observe(ctx, startedAt, "get_contacts", nil, map[string]any{
		"pages":    pages,
		"contacts": len(contacts),
	})
	return contacts, nil
}

// CreateContact maps the template, posts it, and returns the canonical shape
// of the record the vendor actually stored via a follow-up fetch.
func (c *Client) CreateContact(ctx context.Context, apiKey string, template core.ContactTemplate) (*core.Contact, error) {
	startedAt := time.Now()
	auth, err := c.authorizer.AuthorizeAPIKey(ctx, apiKey)
	if err != nil {
		c.observe(ctx, startedAt, "create_contact", err, nil)
		return nil, err
	}

	body, err := c.dialect.EncodeRecord(c.mapper.FromTemplate(template))
	if err != nil {
		c.observe(ctx, startedAt, "create_contact", err, nil)
		return nil, err
	}
	res, err := c.do(ctx, auth, http.MethodPost, c.dialect.CollectionURL(c.config.BaseURL), body, nil)
	if err != nil {
		c.observe(ctx, startedAt, "create_contact", err, nil)
		return nil, err
	}
	created, err := c.dialect.DecodeRecord(res.Body)
	if err != nil {
		c.observe(ctx, startedAt, "create_contact", err, nil)
		return nil, err
	}
	if strings.TrimSpace(created.ID) == "" {
		err = core.NewMappingError("lexoffice: create response is missing a contact id")
		c.observe(ctx, startedAt, "create_contact", err, nil)
		return nil, err
	}

	contact, err := c.fetchContact(ctx, auth, created.ID)
	c.observe(ctx, startedAt, "create_contact", err, map[string]any{"contact_id": created.ID})
	return contact, err
}

// UpdateContact fetches the current record, applies the update on a deep
// copy, puts the full record back, and returns the stored result.
func (c *Client) UpdateContact(ctx context.Context, apiKey string, update core.ContactUpdate) (*core.Contact, error) {
	startedAt := time.Now()
	if err := update.Validate(); err != nil {
		err = goerrors.Wrap(err, goerrors.CategoryBadInput, "lexoffice: contact update requires an id").
			WithTextCode(core.ErrorCodeBadInput).
			WithCode(http.StatusBadRequest)
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}
	auth, err := c.authorizer.AuthorizeAPIKey(ctx, apiKey)
	if err != nil {
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}

	itemURL := c.dialect.ItemURL(c.config.BaseURL, update.ID)
	res, err := c.do(ctx, auth, http.MethodGet, itemURL, nil, nil)
	if err != nil {
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}
	previous, err := c.dialect.DecodeRecord(res.Body)
	if err != nil {
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}

	body, err := c.dialect.EncodeRecord(c.mapper.FromUpdate(update, previous))
	if err != nil {
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}
	res, err = c.do(ctx, auth, http.MethodPut, itemURL, body, nil)
	if err != nil {
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}
	updated, err := c.dialect.DecodeRecord(res.Body)
	if err != nil {
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}
	if strings.TrimSpace(updated.ID) == "" {
		err = core.NewMappingError("lexoffice: update response is missing a contact id")
		c.observe(ctx, startedAt, "update_contact", err, nil)
		return nil, err
	}

	contact, err := c.fetchContact(ctx, auth, updated.ID)
	c.observe(ctx, startedAt, "update_contact", err, map[string]any{"contact_id": updated.ID})
	return contact, err
}

// DeleteContact removes one contact. Only the status is checked.
func (c *Client) DeleteContact(ctx context.Context, apiKey string, id string) error {
	startedAt := time.Now()
	if strings.TrimSpace(id) == "" {
		err := goerrors.New("lexoffice: contact id is required", goerrors.CategoryBadInput).
			WithTextCode(core.ErrorCodeBadInput).
			WithCode(http.StatusBadRequest)
		c.observe(ctx, startedAt, "delete_contact", err, nil)
		return err
	}
	auth, err := c.authorizer.AuthorizeAPIKey(ctx, apiKey)
	if err != nil {
		c.observe(ctx, startedAt, "delete_contact", err, nil)
		return err
	}

	_, err = c.do(ctx, auth, http.MethodDelete, c.dialect.ItemURL(c.config.BaseURL, id), nil, nil)
	c.observe(ctx, startedAt, "delete_contact", err, map[string]any{"contact_id": id})
	return err
}

// OAuth2RedirectURL builds the vendor consent URL from configuration alone.
func (c *Client) OAuth2RedirectURL() (string, error) {
	redirectURL := c.authorizer.AuthorizeURL()
	if strings.TrimSpace(redirectURL) == "" {
		return "", core.NewConfigError("lexoffice: authorize url is not configured")
	}
	return redirectURL, nil
}

func (c *Client) fetchContact(ctx context.Context, auth core.Authorization, id string) (*core.Contact, error) {
	res, err := c.do(ctx, auth, http.MethodGet, c.dialect.ItemURL(c.config.BaseURL, id), nil, nil)
	if err != nil {
		return nil, err
	}
	record, err := c.dialect.DecodeRecord(res.Body)
	if err != nil {
		return nil, err
	}
	contact := c.mapper.ToContact(record)
	if contact == nil {
		return nil, core.NewMappingError("lexoffice: fetched contact is archived or missing an id")
	}
	return contact, nil
}

// do executes one vendor request through the transport adapter and turns any
// non-2xx status into a vendor request error carrying the status text.
func (c *Client) do(
	ctx context.Context,
	auth core.Authorization,
	method string,
	url string,
	body []byte,
	query map[string]string,
) (core.TransportResponse, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + auth.AccessToken,
		"Accept":        "application/json",
		"X-Request-Id":  uuid.NewString(),
	}
	if len(body) > 0 {
		headers["Content-Type"] = "application/json"
	}

	res, err := c.transport.Do(ctx, core.TransportRequest{
		Method:  method,
		URL:     url,
		Query:   query,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return core.TransportResponse{}, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		status := strings.TrimSpace(res.Status)
		if status == "" {
			status = strconv.Itoa(res.StatusCode)
		}
		return core.TransportResponse{}, core.NewVendorRequestError(
			fmt.Sprintf("lexoffice: vendor responded with %s", status),
			res.StatusCode,
		)
	}
	return res, nil
}

// observe logs the operation outcome. Tokens and API keys never reach the
// log fields.
func (c *Client) observe(ctx context.Context, startedAt time.Time, operation string, err error, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation":   operation,
		"dialect":     c.dialect.Name(),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}
	for key, value := range fields {
		logFields[key] = value
	}

	logger := c.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(core.FieldsLogger); ok {
		logger = fieldsLogger.WithFields(logFields)
	}
	if err != nil {
		logger.Error(operation+" failed", "error", err.Error())
		return
	}
	logger.Info(operation + " succeeded")
}

var _ core.Adapter = (*Client)(nil)
