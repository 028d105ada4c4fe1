package domain

import (
	"context"
	"errors"
	"time"
)

// DrillInfo is the registry metadata for a runnable drill.
type DrillInfo struct {
	ID      string
	Title   string
	Summary string
	Topics  []string
}

// Params holds string-typed drill parameters. Suite vars and CLI flags merge
// into these; drills parse them into concrete types on entry.
type Params map[string]string

// MergeParams layers over on top of base without mutating either.
func MergeParams(base Params, over Params) Params {
	out := Params{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// RunErrorKind is a high-level classification of drill runtime errors.
type RunErrorKind string

const (
	RunErrorUnknown  RunErrorKind = "unknown"
	RunErrorCanceled RunErrorKind = "canceled"
	RunErrorTimeout  RunErrorKind = "timeout"
	RunErrorParam    RunErrorKind = "param"
	RunErrorExec     RunErrorKind = "execution"
)

// RunError represents a structured error produced by a drill run.
type RunError struct {
	Kind    RunErrorKind `json:"kind"`
	Message string       `json:"message"`
}

// ClassifyRunError maps an error to a RunErrorKind.
func ClassifyRunError(err error) RunErrorKind {
	switch {
	case err == nil:
		return RunErrorUnknown
	case errors.Is(err, context.Canceled):
		return RunErrorCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return RunErrorTimeout
	case IsKind(err, KindInvalidParam):
		return RunErrorParam
	default:
		return RunErrorExec
	}
}

// NewRunError builds a RunError from a raw error.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{
		Kind:    ClassifyRunError(err),
		Message: err.Error(),
	}
}

// Report is the outcome of a single drill run. Data holds the
// JSON-serializable facts the run produced; suite assertions and extraction
// evaluate JSONPath expressions against it.
type Report struct {
	DrillID   string         `json:"drill"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at"`
	LatencyMS int64          `json:"latency_ms"`
	Output    string         `json:"output,omitempty"`
	Data      map[string]any `json:"data"`
	Error     *RunError      `json:"error,omitempty"`
}

// Failed reports whether the run ended in error.
func (r Report) Failed() bool {
	return r.Error != nil
}
