package engine

import (
	"context"
	"runtime"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"

	"skyline/internal/models"
	"skyline/internal/skyline"
)

// Summarize computes outline statistics from an ordered key point sequence.
// Area is the integral of the piecewise-constant outline.
func Summarize(points []skyline.KeyPoint) models.Summary {
	s := models.Summary{KeyPoints: len(points)}
	if len(points) == 0 {
		return s
	}
	s.Start = points[0].X
	s.End = points[len(points)-1].X

	for i, kp := range points {
		if kp.Height > s.Peak {
			s.Peak = kp.Height
		}
		if i+1 < len(points) {
			s.Area += (points[i+1].X - kp.X) * kp.Height
		}
	}
	return s
}

// ToPoints converts key points to their wire form.
func ToPoints(points []skyline.KeyPoint) []models.Point {
	out := make([]models.Point, len(points))
	for i, kp := range points {
		out[i] = models.Point{kp.X, kp.Height}
	}
	return out
}

// Result computes one skyline and packages it for output.
func Result(buildings []skyline.Building) (models.SkylineResult, error) {
	points, err := skyline.Compute(buildings)
	if err != nil {
		return models.SkylineResult{}, err
	}
	summary := Summarize(points)
	return models.SkylineResult{
		Skyline:   ToPoints(points),
		Summary:   &summary,
		Buildings: len(buildings),
	}, nil
}

// ComputeBatch computes each building set concurrently, at most workers at a
// time (0 means one per CPU). Results keep the input order. The first failing
// set cancels the rest.
func ComputeBatch(ctx context.Context, sets [][]skyline.Building, workers int) ([]models.SkylineResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]models.SkylineResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, set := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Result(set)
			if err != nil {
				return &SetError{Index: i, Err: err}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debugf("Batch complete. Sets: %d. Workers: %d", len(sets), workers)
	return results, nil
}
