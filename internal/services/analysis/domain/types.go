// Package domain holds analysis core types independent of transport
package domain

// VerdictKind is the resolved classification outcome
type VerdictKind string

const (
	// VerdictRelevant means the text matters to the ministry
	VerdictRelevant VerdictKind = "RELEVANT"

	// VerdictNotRelevant means the text does not
	VerdictNotRelevant VerdictKind = "NOT RELEVANT"

	// VerdictEmpty means there was nothing to classify; no remote call is made
	VerdictEmpty VerdictKind = "EMPTY"

	// VerdictError wraps any transport or model failure as a value
	VerdictError VerdictKind = "ERROR"
)

// Verdict is a classification outcome. Detail carries the failure message
// for VerdictError and the raw model reply when it was unparseable
type Verdict struct {
	Kind   VerdictKind `json:"kind" example:"RELEVANT"`
	Detail string      `json:"detail,omitempty"`
}

// Neutral is the fallback verdict when no classification was produced
func Neutral() Verdict { return Verdict{Kind: VerdictEmpty} }
