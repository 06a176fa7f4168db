package events

import (
	"encoding/json"
	"testing"

	"github.com/emberhq/ember/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	base := NewBaseEvent(ProfileCreatedEvent, "profile-1")

	assert.NotEmpty(t, base.ID)
	assert.Equal(t, ProfileCreatedEvent, base.Type)
	assert.Equal(t, "profile-1", base.ProfileID)
	assert.False(t, base.Timestamp.IsZero())
	assert.NotEqual(t, base.ID, NewBaseEvent(ProfileCreatedEvent, "profile-1").ID)
}

func TestGlobalActiveChanged_OmitsProfileID(t *testing.T) {
	event := GlobalActiveChanged{
		BaseEvent: NewBaseEvent(GlobalActiveChangedEvent, ""),
		Active:    true,
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.NotContains(t, decoded, "profile_id")
	assert.Equal(t, true, decoded["active"])
	assert.Equal(t, string(GlobalActiveChangedEvent), decoded["type"])
}

func TestBestSellerUpdated_Payload(t *testing.T) {
	item := models.BestSellerItem{ID: "item-1", Name: "Auto UH", Hotkey: "F1", Enabled: true, Delay: 82}
	event := BestSellerUpdated{BaseEvent: NewBaseEvent(BestSellerUpdatedEvent, "default"), Item: item}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded BestSellerUpdated
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, item, decoded.Item)
	assert.Equal(t, "default", decoded.ProfileID)
	assert.Equal(t, BestSellerUpdatedEvent, decoded.GetType())
}
