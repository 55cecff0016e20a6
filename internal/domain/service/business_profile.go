// Package service defines interfaces for domain collaborators implemented in infra.
package service

import (
	"context"
	"encoding/json"
)

// GoogleAccount is one entry of the account management API.
type GoogleAccount struct {
	Name        string `json:"name"`
	AccountName string `json:"accountName"`
	Type        string `json:"type"`
}

// PostalAddress mirrors storefrontAddress.
type PostalAddress struct {
	AddressLines       []string `json:"addressLines"`
	Locality           string   `json:"locality"`
	AdministrativeArea string   `json:"administrativeArea"`
	PostalCode         string   `json:"postalCode"`
}

// GoogleLocation is a Business Information API location. Raw keeps the original object.
type GoogleLocation struct {
	Name              string         `json:"name"`
	Title             string         `json:"title"`
	StorefrontAddress *PostalAddress `json:"storefrontAddress"`
	PhoneNumbers      *struct {
		PrimaryPhone string `json:"primaryPhone"`
	} `json:"phoneNumbers"`
	WebsiteURI string `json:"websiteUri"`
	Categories *struct {
		PrimaryCategory *struct {
			DisplayName string `json:"displayName"`
		} `json:"primaryCategory"`
	} `json:"categories"`

	Raw json.RawMessage `json:"-"`
}

// GoogleReview is a v4 review resource.
type GoogleReview struct {
	Name     string `json:"name"`
	ReviewID string `json:"reviewId"`
	Reviewer *struct {
		DisplayName string `json:"displayName"`
	} `json:"reviewer"`
	StarRating  json.RawMessage `json:"starRating"`
	Comment     string          `json:"comment"`
	CreateTime  string          `json:"createTime"`
	UpdateTime  string          `json:"updateTime"`
	ReviewReply *ReviewReply    `json:"reviewReply"`
}

// ReviewReply is the owner reply attached to a review.
type ReviewReply struct {
	Comment    string `json:"comment"`
	UpdateTime string `json:"updateTime"`
}

// GoogleMedia is a v4 media item.
type GoogleMedia struct {
	Name        string `json:"name"`
	MediaFormat string `json:"mediaFormat"`
	GoogleURL   string `json:"googleUrl"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
}

// Page is one page of a list call.
type Page[T any] struct {
	Items         []T
	NextPageToken string
}

// ReviewListOptions narrows a review listing.
type ReviewListOptions struct {
	PageToken string
	OrderBy   string
}

// BusinessProfileClient reads and writes Google Business Profile resources with a bearer token.
type BusinessProfileClient interface {
	// ListAccounts returns the accounts visible to the token, trying each account endpoint in order.
	ListAccounts(ctx context.Context, token string) ([]GoogleAccount, error)

	ListLocations(ctx context.Context, token, accountName, pageToken string) (*Page[GoogleLocation], error)

	ListReviews(ctx context.Context, token, locationName string, opts ReviewListOptions) (*Page[GoogleReview], error)

	ListMedia(ctx context.Context, token, locationName, pageToken string) (*Page[GoogleMedia], error)

	// ReplyToReview creates or replaces the owner reply of a review.
	ReplyToReview(ctx context.Context, token, reviewName, comment string) (*ReviewReply, error)
}
