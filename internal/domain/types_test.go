package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostRange_EncodesAsText(t *testing.T) {
	data, err := json.Marshal(Itinerary{EstimatedTotalCost: CostRange{Low: 3000, High: 10000}})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "₹3000 - ₹10000 per person", raw["estimatedTotalCost"])
}

func TestCostRange_DecodesText(t *testing.T) {
	var it Itinerary
	require.NoError(t, json.Unmarshal([]byte(`{"estimatedTotalCost":"₹1500 - ₹5000 per person"}`), &it))
	assert.Equal(t, CostRange{Low: 1500, High: 5000}, it.EstimatedTotalCost)

	var c CostRange
	assert.Error(t, c.UnmarshalText([]byte("cheap")))
}

func TestActivityEntry_Labels(t *testing.T) {
	assert.Equal(t, "1 hour", ActivityEntry{Duration: 1}.DurationLabel())
	assert.Equal(t, "3 hours", ActivityEntry{Duration: 3}.DurationLabel())
	assert.Equal(t, "₹750", ActivityEntry{EstimatedCost: 750}.CostLabel())
}
