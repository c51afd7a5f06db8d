package models

import (
	"time"
)

// EmbedResult contains the results of hiding a secret image inside a cover image
type EmbedResult struct {
	CoverPath     string        `json:"coverPath"`
	SecretPath    string        `json:"secretPath"`
	OutputPath    string        `json:"outputPath"`
	CoverFormat   string        `json:"coverFormat"`
	SecretFormat  string        `json:"secretFormat"`
	OutputFormat  string        `json:"outputFormat"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	SecretWidth   int           `json:"secretWidth"`  // before resizing
	SecretHeight  int           `json:"secretHeight"` // before resizing
	Resized       bool          `json:"resized"`
	Resampler     string        `json:"resampler"`
	Quality       QualityReport `json:"quality"` // stego compared to cover
	Findings      []Finding     `json:"findings"`
	OperationTime time.Time     `json:"operationTime"`
	Duration      time.Duration `json:"duration"`
}

// ExtractResult contains the results of recovering a hidden image
type ExtractResult struct {
	StegoPath      string        `json:"stegoPath"`
	OutputPath     string        `json:"outputPath"`
	StegoFormat    string        `json:"stegoFormat"`
	OutputFormat   string        `json:"outputFormat"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	DistinctLevels int           `json:"distinctLevels"` // gray levels present in the recovered image (at most 16)
	Findings       []Finding     `json:"findings"`
	OperationTime  time.Time     `json:"operationTime"`
	Duration       time.Duration `json:"duration"`
}

// QualityReport compares two intensity grids of equal size
type QualityReport struct {
	MSE        float64 `json:"mse"`
	PSNR       float64 `json:"psnr"` // dB, +Inf for identical grids
	MaxAbsDiff int     `json:"maxAbsDiff"`
}

// Finding represents a note produced while running an operation
type Finding struct {
	Description string `json:"description"`
	Details     string `json:"details"`
	Warning     bool   `json:"warning"` // shown even without verbose output
}

// AddFinding adds a finding to the embed result
func (r *EmbedResult) AddFinding(description, details string) {
	r.Findings = append(r.Findings, Finding{
		Description: description,
		Details:     details,
	})
}

// AddWarning adds a finding the user must always see to the embed result
func (r *EmbedResult) AddWarning(description, details string) {
	r.Findings = append(r.Findings, Finding{
		Description: description,
		Details:     details,
		Warning:     true,
	})
}

// AddFinding adds a finding to the extract result
func (r *ExtractResult) AddFinding(description, details string) {
	r.Findings = append(r.Findings, Finding{
		Description: description,
		Details:     details,
	})
}
