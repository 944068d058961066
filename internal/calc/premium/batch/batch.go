package batch

import (
	"errors"
	"fmt"

	"Psychro/internal/calc/point"
)

type PointBatchInput struct {
	Items []point.Input `json:"items"`
}

// PointBatchItem pairs one computed state with its outcome. Undefined points
// do not abort the batch; they come back flagged instead.
type PointBatchItem struct {
	Result    *point.Result `json:"result,omitempty"`
	Undefined bool          `json:"undefined,omitempty"`
}

type PointBatchResult struct {
	Results []PointBatchItem `json:"results"`
}

func CalculatePoints(in PointBatchInput) (PointBatchResult, error) {
	if len(in.Items) == 0 {
		return PointBatchResult{}, fmt.Errorf("no items")
	}
	out := PointBatchResult{Results: make([]PointBatchItem, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := point.Calculate(item)
		if errors.Is(err, point.ErrPointUndefined) {
			out.Results = append(out.Results, PointBatchItem{Undefined: true})
			continue
		}
		if err != nil {
			return PointBatchResult{}, err
		}
		out.Results = append(out.Results, PointBatchItem{Result: &res})
	}
	return out, nil
}
