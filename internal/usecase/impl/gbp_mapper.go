package impl

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"studio/internal/domain/entity"
	"studio/internal/domain/service"
)

//nolint:gochecknoglobals
var starRatings = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

// mapLocation translates one Business Information location into a local row.
func mapLocation(account *entity.GMBAccount, loc *service.GoogleLocation) *entity.Location {
	name := loc.Title
	if name == "" {
		name = loc.Name
	}

	row := &entity.Location{
		GMBAccountID: account.ID,
		UserID:       account.UserID,
		LocationID:   loc.Name,
		Name:         name,
		Address:      formatAddress(loc.StorefrontAddress),
		Website:      loc.WebsiteURI,
		IsActive:     true,
		Metadata:     loc.Raw,
	}
	if loc.PhoneNumbers != nil {
		row.Phone = loc.PhoneNumbers.PrimaryPhone
	}
	if loc.Categories != nil && loc.Categories.PrimaryCategory != nil {
		row.Category = loc.Categories.PrimaryCategory.DisplayName
	}

	return row
}

// formatAddress renders "line1, line2, locality, area postal".
func formatAddress(addr *service.PostalAddress) string {
	if addr == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(addr.AddressLines, ", "))
	if addr.Locality != "" {
		b.WriteString(", " + addr.Locality)
	}
	if addr.AdministrativeArea != "" {
		b.WriteString(", " + addr.AdministrativeArea)
	}
	if addr.PostalCode != "" {
		b.WriteString(" " + addr.PostalCode)
	}

	return b.String()
}

// mapReview translates a v4 review; the foreign key is the local location id.
func mapReview(account *entity.GMBAccount, location *entity.Location, review *service.GoogleReview) *entity.Review {
	row := &entity.Review{
		GMBAccountID:     account.ID,
		UserID:           account.UserID,
		LocationID:       location.ID,
		ExternalReviewID: review.Name,
		Rating:           parseStarRating(review.StarRating),
		Text:             review.Comment,
		ReviewDate:       parseTimestamp(review.CreateTime),
	}
	if row.ExternalReviewID == "" {
		row.ExternalReviewID = review.ReviewID
	}
	if review.Reviewer != nil {
		row.ReviewerName = review.Reviewer.DisplayName
	}
	if review.ReviewReply != nil {
		comment := review.ReviewReply.Comment
		row.ReplyText = &comment
		row.ReplyDate = parseTimestamp(review.ReviewReply.UpdateTime)
		row.HasReply = comment != ""
	}

	return row
}

// parseStarRating accepts the enum form ("FOUR") or a number.
func parseStarRating(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var enum string
	if err := json.Unmarshal(raw, &enum); err == nil {
		if v, ok := starRatings[strings.ToUpper(enum)]; ok {
			return &v
		}
		if v, err := strconv.Atoi(enum); err == nil && v >= 1 && v <= 5 {
			return &v
		}

		return nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		v := int(number)
		if v >= 1 && v <= 5 {
			return &v
		}
	}

	return nil
}

func mapMedia(account *entity.GMBAccount, location *entity.Location, media *service.GoogleMedia) *entity.Media {
	return &entity.Media{
		GMBAccountID:    account.ID,
		LocationID:      location.ID,
		ExternalMediaID: media.Name,
		Type:            media.MediaFormat,
		URL:             media.GoogleURL,
		CreatedAt:       parseTimestamp(media.CreateTime),
		UpdatedAt:       parseTimestamp(media.UpdateTime),
	}
}

// reviewUpdatedAt is the update time, falling back to the create time.
func reviewUpdatedAt(review *service.GoogleReview) *time.Time {
	if t := parseTimestamp(review.UpdateTime); t != nil {
		return t
	}

	return parseTimestamp(review.CreateTime)
}

func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}

	return &t
}

// locationResource qualifies a stored location name with the account resource when needed.
func locationResource(accountName, locationName string) string {
	if strings.HasPrefix(locationName, "accounts/") || accountName == "" {
		return locationName
	}

	return accountName + "/" + locationName
}
