package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// Ensure SummariseService implements the interface.
var _ driving.SummariseService = (*SummariseService)(nil)

// SummariseConfig configures the summarise service.
type SummariseConfig struct {
	// DefaultProfile is used when a call names no profile.
	DefaultProfile string

	// MinAvailableMB is the available-memory floor for model work.
	MinAvailableMB uint64

	// HostedModels says the provider runs the per-profile hosted
	// models (Hugging Face). Prompt-based providers run their own
	// configured model and ignore the profile's.
	HostedModels bool
}

// SummariseService condenses user-supplied text with an external
// pretrained model. Profiles map onto hosted models and their length
// bounds; prompt-based providers approximate the bounds in the prompt.
type SummariseService struct {
	summariser driven.SummariserService
	probe      driven.ResourceProbe
	cfg        SummariseConfig
}

// NewSummariseService creates a new summarise service.
// The probe is optional - if nil, the memory gate is disabled.
func NewSummariseService(summariser driven.SummariserService, probe driven.ResourceProbe, cfg SummariseConfig) *SummariseService {
	if cfg.DefaultProfile == "" {
		cfg.DefaultProfile = domain.ProfileDistilBART
	}
	if cfg.MinAvailableMB == 0 {
		cfg.MinAvailableMB = domain.DefaultMinAvailableMB
	}
	return &SummariseService{
		summariser: summariser,
		probe:      probe,
		cfg:        cfg,
	}
}

// Summarise generates a summary and splits it into sentence points.
func (s *SummariseService) Summarise(ctx context.Context, text string, opts domain.SummaryOptions) (*domain.Summary, error) {
	start := time.Now()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: nothing to summarise", domain.ErrInvalidInput)
	}

	profile, err := s.resolveProfile(opts.Profile)
	if err != nil {
		return nil, err
	}

	if !opts.SkipMemoryCheck {
		if err := ensureMemory(ctx, s.probe, s.cfg.MinAvailableMB); err != nil {
			return nil, err
		}
	}

	logger.Section("Summarisation")
	logger.Debug("Profile %s (%d-%d tokens) over %d bytes", profile.Name, profile.MinLength, profile.MaxLength, len(text))

	summary, err := s.summariser.Summarise(ctx, text, driven.SummariseParams{
		Model:     profile.Model,
		MaxLength: profile.MaxLength,
		MinLength: profile.MinLength,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	model := s.summariser.ModelName()
	if s.cfg.HostedModels {
		model = profile.Model
	}

	logger.Info("Summarised in %s with %s", time.Since(start).Round(time.Millisecond), model)
	return &domain.Summary{
		Text:    summary,
		Points:  splitPoints(summary),
		Model:   model,
		Elapsed: time.Since(start),
	}, nil
}

// Profiles returns the built-in model profiles in display order.
func (s *SummariseService) Profiles() []domain.SummaryProfile {
	return domain.AllSummaryProfiles()
}

// resolveProfile maps a profile name to its definition, falling back
// to the configured default for an empty name.
func (s *SummariseService) resolveProfile(name string) (domain.SummaryProfile, error) {
	if name == "" {
		name = s.cfg.DefaultProfile
	}
	profile, ok := domain.SummaryProfiles()[name]
	if !ok {
		return domain.SummaryProfile{}, fmt.Errorf("%w: unknown profile %q", domain.ErrInvalidInput, name)
	}
	return profile, nil
}

// splitPoints breaks a summary into sentences for numbered rendering.
// Splitting on ". " is deliberately naive; the summarisation models
// emit plain declarative sentences.
func splitPoints(summary string) []string {
	parts := strings.Split(summary, ". ")
	points := make([]string, 0, len(parts))
	for _, part := range parts {
		point := strings.TrimSuffix(strings.TrimSpace(part), ".")
		if point == "" {
			continue
		}
		points = append(points, point)
	}
	return points
}
