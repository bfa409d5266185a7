package worker

import (
	"context"
	"fmt"
	"sort"

	"github.com/ppiankov/nameparser/internal/model"
)

// Parser defines the interface for parsing one name
type Parser interface {
	Parse(input string) model.ParsedName
}

// ParseJob represents one name to parse
type ParseJob struct {
	Index  int // Position in the caller's input list
	Input  string
	Parser Parser
}

// Execute executes the parse job
func (j *ParseJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ParseResult{Index: j.Index, Input: j.Input, Error: err}
	}
	return &ParseResult{
		Index: j.Index,
		Input: j.Input,
		Name:  j.Parser.Parse(j.Input),
	}
}

// ParseResult represents the result of a parse job
type ParseResult struct {
	Index int
	Input string
	Name  model.ParsedName
	Error error
}

// GetError returns the error from the parse result
func (r *ParseResult) GetError() error {
	return r.Error
}

// BatchProcessor parses multiple names concurrently
type BatchProcessor struct {
	parser      Parser
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(parser Parser, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		parser:      parser,
		concurrency: concurrency,
	}
}

// ProcessNames parses the inputs concurrently and returns the results in
// input order. It fails with the context error if ctx ends before every
// input was parsed.
func (b *BatchProcessor) ProcessNames(ctx context.Context, inputs []string) ([]*ParseResult, error) {
	if len(inputs) == 0 {
		return []*ParseResult{}, nil
	}

	workers := b.concurrency
	if workers > len(inputs) {
		workers = len(inputs)
	}

	// Create worker pool
	pool := NewPool(ctx, workers)
	pool.Start()

	// Submit jobs
	for i, input := range inputs {
		job := &ParseJob{
			Index:  i,
			Input:  input,
			Parser: b.parser,
		}
		if !pool.Submit(job) {
			break
		}
	}

	// Wait for all jobs to complete
	results := pool.Wait()

	// Convert to ParseResults in input order
	parseResults := make([]*ParseResult, 0, len(results))
	for _, result := range results {
		if err := result.GetError(); err != nil {
			return nil, fmt.Errorf("parse %q: %w", result.(*ParseResult).Input, err)
		}
		parseResults = append(parseResults, result.(*ParseResult))
	}
	if len(parseResults) != len(inputs) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("parsed %d of %d names", len(parseResults), len(inputs))
	}

	sort.Slice(parseResults, func(i, j int) bool {
		return parseResults[i].Index < parseResults[j].Index
	})

	return parseResults, nil
}
