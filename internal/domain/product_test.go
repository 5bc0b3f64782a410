package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_AcceptsArrayAndBareString(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"sku":"A","roomType":["bedroom","living"]}`), &p))
	assert.Equal(t, StringList{"bedroom", "living"}, p.RoomTypes)

	var q Product
	require.NoError(t, json.Unmarshal([]byte(`{"sku":"B","roomType":"hallway"}`), &q))
	assert.Equal(t, StringList{"hallway"}, q.RoomTypes)

	var r Product
	require.NoError(t, json.Unmarshal([]byte(`{"sku":"C","roomType":""}`), &r))
	assert.Empty(t, r.RoomTypes)
}

func TestAggregateFilterOptions(t *testing.T) {
	products := []Product{
		{Color: "red, orange", Material: "wool/nylon", RoomTypes: StringList{"bedroom"}},
		{Color: "red", Material: "jute", RoomTypes: StringList{" living ", ""}},
	}

	opts := AggregateFilterOptions(products)

	assert.Equal(t, []string{"orange", "red"}, opts.Colors)
	assert.Equal(t, []string{"jute", "nylon", "wool"}, opts.Materials)
	assert.Equal(t, []string{"bedroom", "living"}, opts.RoomTypes)
}
