package domain

import "context"

// ClassifierPort is the surface other modules use to classify text
type ClassifierPort interface {
	Classify(ctx context.Context, text string) Verdict
	ClassifyBatch(ctx context.Context, texts []string) Verdict
}
