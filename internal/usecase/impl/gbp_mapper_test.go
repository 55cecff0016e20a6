package impl

import (
	"encoding/json"
	"testing"
	"time"

	"studio/internal/domain/entity"
	"studio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLocation(t *testing.T) {
	account := &entity.GMBAccount{ID: uuid.New(), UserID: uuid.New()}

	var loc service.GoogleLocation
	raw := []byte(`{
		"name": "locations/456",
		"title": "Cafe Nile",
		"storefrontAddress": {"addressLines": ["1 Main St", "Floor 2"], "locality": "Cairo", "administrativeArea": "C", "postalCode": "11511"},
		"phoneNumbers": {"primaryPhone": "+20 2 1234"},
		"websiteUri": "https://cafe.example",
		"categories": {"primaryCategory": {"displayName": "Cafe"}}
	}`)
	require.NoError(t, json.Unmarshal(raw, &loc))
	loc.Raw = raw

	row := mapLocation(account, &loc)

	assert.Equal(t, account.ID, row.GMBAccountID)
	assert.Equal(t, account.UserID, row.UserID)
	assert.Equal(t, "locations/456", row.LocationID)
	assert.Equal(t, "Cafe Nile", row.Name)
	assert.Equal(t, "1 Main St, Floor 2, Cairo, C 11511", row.Address)
	assert.Equal(t, "+20 2 1234", row.Phone)
	assert.Equal(t, "Cafe", row.Category)
	assert.Equal(t, "https://cafe.example", row.Website)
	assert.True(t, row.IsActive)
	assert.JSONEq(t, string(raw), string(row.Metadata))
}

func TestMapLocation_NameFallsBackToResource(t *testing.T) {
	row := mapLocation(&entity.GMBAccount{}, &service.GoogleLocation{Name: "locations/9"})

	assert.Equal(t, "locations/9", row.Name)
	assert.Empty(t, row.Address)
	assert.Empty(t, row.Phone)
}

func TestParseStarRating(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{raw: `"FIVE"`, want: intPtr(5)},
		{raw: `"one"`, want: intPtr(1)},
		{raw: `"3"`, want: intPtr(3)},
		{raw: `4`, want: intPtr(4)},
		{raw: `"STAR_RATING_UNSPECIFIED"`},
		{raw: `9`},
		{raw: `null`},
		{raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseStarRating(json.RawMessage(tt.raw)))
		})
	}
}

func TestMapReview(t *testing.T) {
	account := &entity.GMBAccount{ID: uuid.New(), UserID: uuid.New()}
	location := &entity.Location{ID: uuid.New()}

	var review service.GoogleReview
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "accounts/1/locations/2/reviews/r1",
		"reviewer": {"displayName": "Mona"},
		"starRating": "FOUR",
		"comment": "Great coffee",
		"createTime": "2026-01-02T10:00:00Z",
		"updateTime": "2026-01-03T10:00:00Z",
		"reviewReply": {"comment": "Thanks!", "updateTime": "2026-01-04T08:00:00.5Z"}
	}`), &review))

	row := mapReview(account, location, &review)

	assert.Equal(t, location.ID, row.LocationID)
	assert.Equal(t, "accounts/1/locations/2/reviews/r1", row.ExternalReviewID)
	assert.Equal(t, "Mona", row.ReviewerName)
	assert.Equal(t, intPtr(4), row.Rating)
	assert.Equal(t, "Great coffee", row.Text)
	require.NotNil(t, row.ReviewDate)
	assert.Equal(t, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), *row.ReviewDate)
	require.NotNil(t, row.ReplyText)
	assert.Equal(t, "Thanks!", *row.ReplyText)
	assert.True(t, row.HasReply)
	require.NotNil(t, row.ReplyDate)
}

func TestMapReview_WithoutReply(t *testing.T) {
	row := mapReview(&entity.GMBAccount{}, &entity.Location{}, &service.GoogleReview{ReviewID: "r2"})

	assert.Equal(t, "r2", row.ExternalReviewID)
	assert.Nil(t, row.ReplyText)
	assert.Nil(t, row.ReplyDate)
	assert.False(t, row.HasReply)
	assert.Nil(t, row.Rating)
}

func TestMapMedia(t *testing.T) {
	location := &entity.Location{ID: uuid.New()}
	row := mapMedia(&entity.GMBAccount{}, location, &service.GoogleMedia{
		Name:        "accounts/1/locations/2/media/m1",
		MediaFormat: "PHOTO",
		GoogleURL:   "https://lh3.example/m1",
		CreateTime:  "2026-02-01T00:00:00Z",
	})

	assert.Equal(t, location.ID, row.LocationID)
	assert.Equal(t, "accounts/1/locations/2/media/m1", row.ExternalMediaID)
	assert.Equal(t, "PHOTO", row.Type)
	assert.Equal(t, "https://lh3.example/m1", row.URL)
	assert.NotNil(t, row.CreatedAt)
	assert.Nil(t, row.UpdatedAt)
}

func TestLocationResource(t *testing.T) {
	assert.Equal(t, "accounts/1/locations/2", locationResource("accounts/1", "locations/2"))
	assert.Equal(t, "accounts/1/locations/2", locationResource("accounts/9", "accounts/1/locations/2"))
	assert.Equal(t, "locations/2", locationResource("", "locations/2"))
}

func TestReviewUpdatedAt_FallsBackToCreateTime(t *testing.T) {
	got := reviewUpdatedAt(&service.GoogleReview{CreateTime: "2026-01-02T10:00:00Z", UpdateTime: "garbage"})

	require.NotNil(t, got)
	assert.Equal(t, 2, got.Day())
}

func intPtr(v int) *int {
	return &v
}
