package domain

import "time"

// SummaryProfile bundles a summarisation model with its length bounds.
type SummaryProfile struct {
	// Name is the profile identifier used in config and flags.
	Name string

	// Model is the hosted model the profile maps to.
	Model string

	// MaxLength caps the generated summary, in model tokens.
	MaxLength int

	// MinLength floors the generated summary, in model tokens.
	MinLength int
}

// Built-in profile names.
const (
	// ProfileDistilBART is the compact default summariser.
	ProfileDistilBART = "distilbart"

	// ProfileBART is the larger summariser with longer output.
	ProfileBART = "bart"
)

// SummaryProfiles returns the built-in profiles keyed by name.
func SummaryProfiles() map[string]SummaryProfile {
	return map[string]SummaryProfile{
		ProfileDistilBART: {
			Name:      ProfileDistilBART,
			Model:     "sshleifer/distilbart-cnn-12-6",
			MaxLength: 130,
			MinLength: 30,
		},
		ProfileBART: {
			Name:      ProfileBART,
			Model:     "facebook/bart-large-cnn",
			MaxLength: 200,
			MinLength: 50,
		},
	}
}

// AllSummaryProfiles returns the built-in profiles in display order.
func AllSummaryProfiles() []SummaryProfile {
	profiles := SummaryProfiles()
	return []SummaryProfile{
		profiles[ProfileDistilBART],
		profiles[ProfileBART],
	}
}

// SummaryOptions configures a summarisation run.
type SummaryOptions struct {
	// Profile selects a built-in profile by name. Empty means the
	// configured default.
	Profile string

	// SkipMemoryCheck bypasses the available-memory gate.
	SkipMemoryCheck bool
}

// Summary is the outcome of a summarisation run.
type Summary struct {
	// Text is the generated summary as returned by the model.
	Text string

	// Points is the summary split into sentence points for
	// numbered rendering.
	Points []string

	// Model is the model that produced the summary.
	Model string

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
