package skyline

import "sort"

// EventKind distinguishes where a building starts and stops covering the sweep line.
type EventKind uint8

const (
	Start EventKind = iota
	End
)

func (k EventKind) String() string {
	if k == Start {
		return "start"
	}
	return "end"
}

// Event is one building edge.
type Event struct {
	X      float64
	Height float64
	Kind   EventKind
}

// Events returns two events per building, in input order.
func Events(buildings []Building) []Event {
	events := make([]Event, 0, 2*len(buildings))
	for _, b := range buildings {
		events = append(events,
			Event{X: b.Left, Height: b.Height, Kind: Start},
			Event{X: b.Right, Height: b.Height, Kind: End},
		)
	}
	return events
}

// EventLess is the sweep order.
//
//   - x ascending.
//   - At equal x, START before END: a building starting where another ends
//     leaves no gap.
//   - Two STARTs: taller first, so the new maximum is set by the first event.
//   - Two ENDs: shorter first, so the dominant height is removed last and the
//     drop happens in a single step.
func EventLess(a, b Event) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Kind != b.Kind {
		return a.Kind == Start
	}
	if a.Kind == Start {
		return a.Height > b.Height
	}
	return a.Height < b.Height
}

// SortEvents orders events in place with EventLess. The sort is stable.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool { return EventLess(events[i], events[j]) })
}
