// Package domain holds DTOs for analysis http and service contracts
package domain

// AnalyzeInput is the raw JSON array of texts posted to analyze/posts
type AnalyzeInput []string

// AnalyzeResult is the batch classification response
type AnalyzeResult struct {
	Status     string  `json:"status" example:"ok"`
	InputCount int     `json:"input_count" example:"3"`
	Analysis   Verdict `json:"analysis"`
}
