package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliate_bot/internal/domain"
)

func TestNewPublicationMessage(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &domain.PublicationRecord{
		ID: "01JNQ5ZK0000000000000000AB",
		Submission: domain.Submission{
			ReferralLink: "https://shop.example/x?ref=ABC",
			Photos:       []domain.MediaRef{domain.RemoteMedia("p1"), domain.LocalMedia("/tmp/p2.jpg")},
			ProductName:  "Red Sneakers",
			Price:        "$59",
			Category:     "shoes",
		},
		Report: domain.PublishReport{
			{Target: domain.DestinationTarget{Locale: "it", DisplayName: "Italiano", Address: "@it"}, Succeeded: true},
			{Target: domain.DestinationTarget{Locale: "en", DisplayName: "English", Address: "@en"}, ErrorDetail: "chat not found"},
		},
		CreatedAt: created,
	}

	msg := newPublicationMessage(rec, created.Add(time.Second))

	assert.Equal(t, ActionPublished, msg.Action)
	assert.Equal(t, 2, msg.Publication.PhotoCount)
	require.Len(t, msg.Publication.Destinations, 2)
	assert.True(t, msg.Publication.Destinations[0].Succeeded)
	assert.Equal(t, "chat not found", msg.Publication.Destinations[1].Error)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "published", raw["action"])
	pub := raw["publication"].(map[string]any)
	assert.Equal(t, "Red Sneakers", pub["product_name"])
	assert.Equal(t, "https://shop.example/x?ref=ABC", pub["referral_link"])
	dest := pub["destinations"].([]any)[0].(map[string]any)
	assert.NotContains(t, dest, "error")
}
