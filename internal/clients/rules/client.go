// Package rules wraps the public D&D 5e SRD API. Lookups are best-effort
// reference data: the conversation degrades gracefully when the service is
// unreachable.
package rules

//go:generate mockgen -destination=mock/mock_client.go -package=rulesmock github.com/tavernkeep/tavernkeep/internal/clients/rules Client

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/tavernkeep/tavernkeep/internal/errors"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

// Slug converts a user-typed name into the API's key format,
// e.g. "Magic Missile" -> "magic-missile".
func Slug(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return regexp.MustCompile(`-+`).ReplaceAllString(slug, "-")
}

// Client defines the interface for SRD rules lookups
type Client interface {
	// GetSpell fetches spell reference data by user-facing name
	GetSpell(ctx context.Context, name string) (*SpellData, error)

	// ListClasses returns the SRD class list, used to offer known class
	// names when multiclassing
	ListClasses(ctx context.Context) ([]ClassRef, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the rules client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new rules client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	// Reference data barely changes; cache aggressively
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) GetSpell(_ context.Context, name string) (*SpellData, error) {
	key := Slug(name)
	if key == "" {
		return nil, errors.InvalidArgument("spell name cannot be empty")
	}

	spell, err := c.dnd5eClient.GetSpell(key)
	if err != nil {
		return nil, errors.Unavailablef("failed to look up spell %q: %v", name, err)
	}

	notes := make([]string, 0, 2)
	if spell.Ritual {
		notes = append(notes, "Ritual")
	}
	if spell.Concentration {
		notes = append(notes, "Concentration")
	}

	description := fmt.Sprintf("%s spell, casting time %s, range %s, duration %s",
		spell.SpellSchool.Name, spell.CastingTime, spell.Range, spell.Duration)
	if len(notes) > 0 {
		description += " (" + strings.Join(notes, ", ") + ")"
	}

	return &SpellData{
		ID:          spell.Key,
		Name:        spell.Name,
		Level:       spell.SpellLevel,
		School:      spell.SpellSchool.Name,
		CastingTime: spell.CastingTime,
		Range:       spell.Range,
		Duration:    spell.Duration,
		Description: description,
	}, nil
}

func (c *client) ListClasses(_ context.Context) ([]ClassRef, error) {
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, errors.Unavailablef("failed to list classes: %v", err)
	}

	classes := make([]ClassRef, 0, len(refs))
	for _, ref := range refs {
		classes = append(classes, ClassRef{ID: ref.Key, Name: ref.Name})
	}
	return classes, nil
}
