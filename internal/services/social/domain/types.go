// Package domain holds social collection types independent of transport
package domain

// Source labels where a batch came from
type Source string

const (
	// SourceMock is the fabricated generator path
	SourceMock Source = "twitter_mock"

	// SourceReal is the live Twitter v2 path
	SourceReal Source = "twitter_real"
)

// Step labels which phase of the real flow failed
type Step string

const (
	// StepLookup is the username to user id resolution
	StepLookup Step = "lookup"

	// StepFetch is the timeline fetch after lookup
	StepFetch Step = "fetch"
)
