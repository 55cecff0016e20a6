// Package businessprofile calls the Google Business Profile APIs.
package businessprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"studio/config"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/infra/gateway"
	"studio/internal/util"
)

const (
	defaultAccountManagementURL   = "https://mybusinessaccountmanagement.googleapis.com"
	defaultBusinessProfileURL     = "https://businessprofile.googleapis.com"
	defaultBusinessInformationURL = "https://mybusinessbusinessinformation.googleapis.com"
	defaultMyBusinessURL          = "https://mybusiness.googleapis.com"

	locationReadMask  = "name,title,storefrontAddress,phoneNumbers,websiteUri,categories"
	locationPageSize  = 100
	reviewPageSize    = 50
	mediaPageSize     = 50
	maxErrorBodyRunes = 200
)

// accountEndpoint is one candidate of the account lookup.
type accountEndpoint struct {
	name string
	url  string
}

type client struct {
	gw                     *gateway.Gateway
	accountEndpoints       []accountEndpoint
	businessInformationURL string
	myBusinessURL          string
}

// NewClient builds the Business Profile client. Empty base URLs use Google production hosts.
func NewClient(cfg *config.Config, gw *gateway.Gateway) service.BusinessProfileClient {
	api := cfg.GoogleAPI
	if api == nil {
		api = &config.GoogleAPIConfig{}
	}

	return &client{
		gw: gw,
		accountEndpoints: []accountEndpoint{
			{name: "accounts.accountmanagement", url: baseURL(api.AccountManagementURL, defaultAccountManagementURL) + "/v1/accounts"},
			{name: "accounts.businessprofile", url: baseURL(api.BusinessProfileURL, defaultBusinessProfileURL) + "/v1/accounts"},
		},
		businessInformationURL: baseURL(api.BusinessInformationURL, defaultBusinessInformationURL),
		myBusinessURL:          baseURL(api.MyBusinessURL, defaultMyBusinessURL),
	}
}

func baseURL(configured, fallback string) string {
	if configured == "" {
		return fallback
	}

	return strings.TrimRight(configured, "/")
}

type accountsPayload struct {
	Accounts []service.GoogleAccount `json:"accounts"`
	Items    []service.GoogleAccount `json:"items"`
}

// ListAccounts tries each account endpoint and returns the first non-empty list.
// Transport failures abort the lookup; non-2xx answers fall through to the next endpoint.
func (c *client) ListAccounts(ctx context.Context, token string) ([]service.GoogleAccount, error) {
	var lastErr error
	answered := false

	for _, endpoint := range c.accountEndpoints {
		resp, err := c.get(ctx, endpoint.name, endpoint.url, token)
		if err != nil {
			return nil, err
		}
		if !resp.OK() {
			lastErr = apiError(domainerrors.ErrAccountsAPI, resp)

			continue
		}
		answered = true

		var payload accountsPayload
		if err := json.Unmarshal(resp.Body, &payload); err != nil {
			lastErr = domainerrors.ErrAccountsAPI.WithDetails("decode: " + err.Error())

			continue
		}

		accounts := payload.Accounts
		if len(accounts) == 0 {
			accounts = payload.Items
		}
		if len(accounts) > 0 {
			return accounts, nil
		}
	}

	if !answered && lastErr != nil {
		return nil, lastErr
	}

	return []service.GoogleAccount{}, nil
}

func (c *client) ListLocations(ctx context.Context, token, accountName, pageToken string) (*service.Page[service.GoogleLocation], error) {
	query := url.Values{}
	query.Set("readMask", locationReadMask)
	query.Set("pageSize", strconv.Itoa(locationPageSize))
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}
	endpoint := fmt.Sprintf("%s/v1/%s/locations?%s", c.businessInformationURL, accountName, query.Encode())

	raws, next, err := c.list(ctx, "locations", endpoint, token, "locations", domainerrors.ErrLocationsAPI)
	if err != nil {
		return nil, err
	}

	page := &service.Page[service.GoogleLocation]{NextPageToken: next, Items: make([]service.GoogleLocation, 0, len(raws))}
	for _, raw := range raws {
		var loc service.GoogleLocation
		if err := json.Unmarshal(raw, &loc); err != nil {
			return nil, domainerrors.ErrLocationsAPI.WithDetails("decode location: " + err.Error())
		}
		loc.Raw = raw
		page.Items = append(page.Items, loc)
	}

	return page, nil
}

func (c *client) ListReviews(ctx context.Context, token, locationName string, opts service.ReviewListOptions) (*service.Page[service.GoogleReview], error) {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(reviewPageSize))
	if opts.PageToken != "" {
		query.Set("pageToken", opts.PageToken)
	}
	if opts.OrderBy != "" {
		query.Set("orderBy", opts.OrderBy)
	}
	endpoint := fmt.Sprintf("%s/v4/%s/reviews?%s", c.myBusinessURL, locationName, query.Encode())

	return listTyped[service.GoogleReview](ctx, c, "reviews", endpoint, token, "reviews", domainerrors.ErrReviewsAPI)
}

func (c *client) ListMedia(ctx context.Context, token, locationName, pageToken string) (*service.Page[service.GoogleMedia], error) {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(mediaPageSize))
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}
	endpoint := fmt.Sprintf("%s/v4/%s/media?%s", c.myBusinessURL, locationName, query.Encode())

	return listTyped[service.GoogleMedia](ctx, c, "media", endpoint, token, "mediaItems", domainerrors.ErrMediaAPI)
}

func (c *client) ReplyToReview(ctx context.Context, token, reviewName, comment string) (*service.ReviewReply, error) {
	body, err := json.Marshal(map[string]string{"comment": comment})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.gw.Do(ctx, &gateway.Request{
		Name:   "reviews.reply",
		Method: http.MethodPut,
		URL:    fmt.Sprintf("%s/v4/%s/reply", c.myBusinessURL, reviewName),
		Header: http.Header{
			"Authorization": []string{"Bearer " + token},
			"Content-Type":  []string{"application/json"},
		},
		Body: body,
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, apiError(domainerrors.ErrReplyAPI, resp)
	}

	reply := &service.ReviewReply{Comment: comment}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, reply); err != nil {
			return nil, domainerrors.ErrReplyAPI.WithDetails("decode: " + err.Error())
		}
	}

	return reply, nil
}

func listTyped[T any](ctx context.Context, c *client, name, endpoint, token, itemsKey string, apiErr *domainerrors.BaseError) (*service.Page[T], error) {
	raws, next, err := c.list(ctx, name, endpoint, token, itemsKey, apiErr)
	if err != nil {
		return nil, err
	}

	page := &service.Page[T]{NextPageToken: next, Items: make([]T, 0, len(raws))}
	for _, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, apiErr.WithDetails("decode " + name + ": " + err.Error())
		}
		page.Items = append(page.Items, item)
	}

	return page, nil
}

// list fetches one page and splits it into raw items and the next page token.
func (c *client) list(ctx context.Context, name, endpoint, token, itemsKey string, apiErr *domainerrors.BaseError) ([]json.RawMessage, string, error) {
	resp, err := c.get(ctx, name, endpoint, token)
	if err != nil {
		return nil, "", err
	}
	if !resp.OK() {
		return nil, "", apiError(apiErr, resp)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, "", apiErr.WithDetails("decode: " + err.Error())
	}

	var items []json.RawMessage
	if raw, ok := payload[itemsKey]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, "", apiErr.WithDetails("decode " + itemsKey + ": " + err.Error())
		}
	}

	var next string
	if raw, ok := payload["nextPageToken"]; ok {
		_ = json.Unmarshal(raw, &next)
	}

	return items, next, nil
}

func (c *client) get(ctx context.Context, name, endpoint, token string) (*gateway.Response, error) {
	return c.gw.Do(ctx, &gateway.Request{
		Name:   name,
		Method: http.MethodGet,
		URL:    endpoint,
		Header: http.Header{"Authorization": []string{"Bearer " + token}},
	})
}

func apiError(base *domainerrors.BaseError, resp *gateway.Response) error {
	body := util.TruncateRunes(string(resp.Body), maxErrorBodyRunes)

	return base.WithDetails(fmt.Sprintf("status %d: %s", resp.StatusCode, body))
}
