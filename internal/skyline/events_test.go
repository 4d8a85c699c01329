package skyline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Empty(t, Events(nil))

	got := Events([]Building{b(2, 9, 10), b(3, 7, 15)})
	assert.Equal(t, []Event{
		{X: 2, Height: 10, Kind: Start},
		{X: 9, Height: 10, Kind: End},
		{X: 3, Height: 15, Kind: Start},
		{X: 7, Height: 15, Kind: End},
	}, got)
}

func TestEventLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want bool
	}{
		{"smaller x first", Event{X: 1, Height: 1, Kind: End}, Event{X: 2, Height: 9, Kind: Start}, true},
		{"larger x later", Event{X: 3, Height: 9, Kind: Start}, Event{X: 2, Height: 1, Kind: End}, false},
		{"start before end", Event{X: 2, Height: 1, Kind: Start}, Event{X: 2, Height: 9, Kind: End}, true},
		{"end after start", Event{X: 2, Height: 9, Kind: End}, Event{X: 2, Height: 1, Kind: Start}, false},
		{"taller start first", Event{X: 2, Height: 9, Kind: Start}, Event{X: 2, Height: 1, Kind: Start}, true},
		{"shorter start later", Event{X: 2, Height: 1, Kind: Start}, Event{X: 2, Height: 9, Kind: Start}, false},
		{"shorter end first", Event{X: 2, Height: 1, Kind: End}, Event{X: 2, Height: 9, Kind: End}, true},
		{"taller end later", Event{X: 2, Height: 9, Kind: End}, Event{X: 2, Height: 1, Kind: End}, false},
		{"equal is not less", Event{X: 2, Height: 5, Kind: End}, Event{X: 2, Height: 5, Kind: End}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EventLess(tt.a, tt.b))
		})
	}
}

func TestSortEvents(t *testing.T) {
	events := []Event{
		{X: 5, Height: 3, Kind: End},
		{X: 5, Height: 8, Kind: End},
		{X: 5, Height: 2, Kind: Start},
		{X: 5, Height: 6, Kind: Start},
		{X: 1, Height: 4, Kind: End},
	}
	SortEvents(events)

	assert.Equal(t, []Event{
		{X: 1, Height: 4, Kind: End},
		{X: 5, Height: 6, Kind: Start},
		{X: 5, Height: 2, Kind: Start},
		{X: 5, Height: 3, Kind: End},
		{X: 5, Height: 8, Kind: End},
	}, events)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "end", End.String())
}
