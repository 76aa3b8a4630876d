// Package approval asks an operator to confirm mutating tool invocations.
package approval

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// DeclinedMessage is the payload a mutating tool returns when the operator says no.
// A decline is a successful outcome, not a failure.
const DeclinedMessage = "User declined the change."

// ErrNoAnswer is returned by Scripted when its queue is exhausted.
var ErrNoAnswer = errors.New("no scripted answer left")

// Request describes one pending mutating action.
type Request struct {
	Tool    string
	Summary string
	// Detail is optional extra context shown under the summary, such as the command line
	// or the start of the content to be written.
	Detail string
}

// Approver decides whether a pending action may proceed. A decision applies to one
// invocation only; nothing is remembered between calls.
type Approver interface {
	Approve(ctx context.Context, req Request) (bool, error)
}

// Func adapts a plain function to Approver.
type Func func(ctx context.Context, req Request) (bool, error)

func (f Func) Approve(ctx context.Context, req Request) (bool, error) {
	return f(ctx, req)
}

// Always returns an approver that gives the same answer without asking.
func Always(allow bool) Approver {
	return Func(func(context.Context, Request) (bool, error) {
		return allow, nil
	})
}

// Scripted answers from a fixed queue of raw input lines, parsed the same way Console
// parses operator input, and records every request it receives.
type Scripted struct {
	mu       sync.Mutex
	answers  []string
	requests []Request
}

// NewScripted creates a Scripted approver that will answer with the given lines in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) Approve(_ context.Context, req Request) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if len(s.answers) == 0 {
		return false, fmt.Errorf("%w for %s", ErrNoAnswer, req.Tool)
	}
	line := s.answers[0]
	s.answers = s.answers[1:]
	return IsAffirmative(line), nil
}

// Requests returns the requests received so far.
func (s *Scripted) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}
