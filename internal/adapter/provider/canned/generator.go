// Package canned provides a generator that always replies with the same
// text. It stands in for a live model in demos and tests.
package canned

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

// SampleReply is a recorded model reply with ten words per category,
// surrounded by commentary and markdown noise.
//
//go:embed sample_reply.txt
var SampleReply string

// Generator returns a fixed reply regardless of the request.
type Generator struct {
	reply string
	calls atomic.Int64
}

// New creates a Generator replying with text.
func New(text string) *Generator {
	return &Generator{reply: text}
}

// NewSample creates a Generator replying with SampleReply.
func NewSample() *Generator {
	return New(SampleReply)
}

// NewFromFile creates a Generator replying with the contents of path.
func NewFromFile(path string) (*Generator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("canned: read %s: %w", path, err)
	}
	return New(string(data)), nil
}

// Generate returns the fixed reply. It fails only if ctx is already done.
func (g *Generator) Generate(ctx context.Context, _ domain.GenerationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g.calls.Add(1)
	return g.reply, nil
}

// Calls reports how many times Generate produced a reply.
func (g *Generator) Calls() int {
	return int(g.calls.Load())
}
