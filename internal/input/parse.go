// Package input turns user-supplied building text into validated buildings.
package input

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"skyline/internal/skyline"
)

// Shape and range violations of the text format.
var (
	ErrNotArray      = errors.New("Input must be an array")
	ErrBuildingShape = errors.New("Each building must be an array with 3 elements [left, right, height]")
	ErrNotNumber     = errors.New("Building coordinates and height must be numbers")
	ErrLeftRight     = errors.New("Left position must be less than right position")
	ErrHeight        = errors.New("Height must be greater than 0")
)

// Error is what ParseJSON returns for any rejected input.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "Invalid input format: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// ParseJSON parses `[[left, right, height], ...]`.
func ParseJSON(data []byte) ([]skyline.Building, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Err: err}
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, &Error{Err: ErrNotArray}
	}

	buildings := make([]skyline.Building, 0, len(list))
	for i, item := range list {
		b, err := parseBuilding(item)
		if err != nil {
			return nil, &Error{Err: fmt.Errorf("building %d: %w", i, err)}
		}
		buildings = append(buildings, b)
	}
	return buildings, nil
}

func parseBuilding(item interface{}) (skyline.Building, error) {
	fields, ok := item.([]interface{})
	if !ok || len(fields) != 3 {
		return skyline.Building{}, ErrBuildingShape
	}

	var nums [3]float64
	for k, f := range fields {
		n, ok := f.(float64)
		if !ok {
			return skyline.Building{}, ErrNotNumber
		}
		nums[k] = n
	}

	b := skyline.Building{Left: nums[0], Right: nums[1], Height: nums[2]}
	if b.Left >= b.Right {
		return skyline.Building{}, ErrLeftRight
	}
	if b.Height <= 0 {
		return skyline.Building{}, ErrHeight
	}
	return b, nil
}
