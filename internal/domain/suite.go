package domain

import "time"

// JSONPathAssertion defines a JSONPath-based check against a report's data.
type JSONPathAssertion struct {
	Exists bool
	Equals *string
}

// AssertionsSpec defines checks for one suite step.
type AssertionsSpec struct {
	// MaxLatencyMS is a maximum allowed drill latency in milliseconds (optional).
	MaxLatencyMS *int

	// JSONPath contains JSONPath assertions keyed by expression.
	JSONPath map[string]JSONPathAssertion
}

// ExtractSpec defines variable extraction from a report's data.
// Map: variableName -> jsonpathExpression
type ExtractSpec map[string]string

// StepSpec describes a single suite step: which drill to run, with which
// parameters, and what to check and carry forward.
type StepSpec struct {
	Name    string
	Drill   string
	Params  Params
	Assert  AssertionsSpec
	Extract ExtractSpec
}

// Suite groups multiple drill steps under one logical unit (Git-friendly).
type Suite struct {
	Name string

	// Vars are default parameters available to all steps in the suite.
	// Step params and extracted runtime vars override them.
	Vars Params

	Steps []StepSpec
}

// SuiteRef is a lightweight reference to a suite file on disk.
type SuiteRef struct {
	Name string
	Path string
}

// AssertionResult is the output of a single assertion.
type AssertionResult struct {
	Name    string
	Passed  bool
	Message string
}

// ExtractResult is the output of a single extraction rule.
type ExtractResult struct {
	Name    string
	Success bool
	Message string
}

// StepResult is the result of executing one suite step.
type StepResult struct {
	Name  string
	Drill string

	Report Report

	Assertions []AssertionResult
	Extracts   []ExtractResult
	Extracted  Params
}

// SuiteResult represents the result of executing a suite.
type SuiteResult struct {
	SuiteName string
	SuitePath string

	StartedAt time.Time
	EndedAt   time.Time

	Results []StepResult
}

// SuiteArtifact represents a persisted suite run for reproducibility.
type SuiteArtifact struct {
	ID string

	SuiteName string
	SuitePath string

	StartedAt  time.Time
	FinishedAt time.Time

	Results []StepResult
}
