// Package batch runs the stub joint check over a list of joints in one
// request, for surveys that cover every stub on a header.
package batch

import (
	"fmt"

	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

type StubBatchInput struct {
	Items []stub.Input `json:"items"`
}

type StubBatchResult struct {
	Results []stub.Result `json:"results"`
}

// CalculateStub checks every item in order and stops on the first one
// that fails, so a survey is either fully verified or rejected with the
// offending item named.
func CalculateStub(in StubBatchInput, table *rd10249.Table) (StubBatchResult, error) {
	if len(in.Items) == 0 {
		return StubBatchResult{}, fmt.Errorf("no items")
	}
	out := StubBatchResult{Results: make([]stub.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := stub.Calculate(item, table)
		if err != nil {
			return StubBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
