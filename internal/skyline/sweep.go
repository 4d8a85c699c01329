package skyline

import "fmt"

// Compute validates the buildings and returns their skyline.
// Empty input yields an empty, non-nil result.
func Compute(buildings []Building) ([]KeyPoint, error) {
	if len(buildings) == 0 {
		return []KeyPoint{}, nil
	}
	if err := Validate(buildings); err != nil {
		return nil, err
	}

	events := Events(buildings)
	SortEvents(events)
	return Sweep(events)
}

// Sweep walks events that are already in EventLess order. After every single
// event the maximum active height is recomputed, and a key point is appended
// when it differs from the previous maximum.
func Sweep(events []Event) ([]KeyPoint, error) {
	result := []KeyPoint{}
	active := newActiveHeights()
	prevMax := 0.0

	for i, ev := range events {
		switch ev.Kind {
		case Start:
			active.add(ev.Height)
		case End:
			if !active.remove(ev.Height) {
				return nil, fmt.Errorf("%w: event %d ends height %g which is not active",
					ErrUnbalancedSweep, i, ev.Height)
			}
		}

		currMax := active.max()
		if currMax != prevMax {
			result = append(result, KeyPoint{X: ev.X, Height: currMax})
			prevMax = currMax
		}
	}

	if !active.empty() || prevMax != 0 {
		return nil, fmt.Errorf("%w: %d distinct heights left, last height %g",
			ErrUnbalancedSweep, len(active.counts), prevMax)
	}
	return result, nil
}
