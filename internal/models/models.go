package models

// Point is a key point on the wire: [x, height].
type Point [2]float64

type Summary struct {
	KeyPoints int     `json:"key_points" yaml:"key_points"`
	Peak      float64 `json:"peak" yaml:"peak"`
	Start     float64 `json:"start" yaml:"start"`
	End       float64 `json:"end" yaml:"end"`
	Area      float64 `json:"area" yaml:"area"`
}

type SkylineResult struct {
	Skyline   []Point  `json:"skyline" yaml:"skyline"`
	Summary   *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Buildings int      `json:"buildings" yaml:"buildings"`
}

type BatchResponse struct {
	Results []SkylineResult `json:"results"`
}

type Health struct {
	Status string `json:"status"`
}
