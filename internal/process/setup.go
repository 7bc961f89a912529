// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"context"
	"fmt"
	"io"

	"github.com/tkoval/anki-vocab/internal/anki"
	"github.com/tkoval/anki-vocab/internal/card"
	"github.com/tkoval/anki-vocab/pkg/types"
)

// ModelClient is the slice of the AnkiConnect API the setup step needs.
type ModelClient interface {
	Ping(ctx context.Context) error
	CreateDeck(ctx context.Context, name string) error
	ModelNames(ctx context.Context) ([]string, error)
	CreateModel(ctx context.Context, name string, fields []string, css string, templates []anki.CardTemplate) error
	EnsureModelFields(ctx context.Context, model string, required []string) error
	UpdateModelTemplates(ctx context.Context, name, css string, template anki.CardTemplate) error
}

// cardTemplateName names the single card layout of the vocabulary
// model.
const cardTemplateName = "Vocabulary Card"

// SetupAnki makes sure the target deck and note model exist and are up
// to date. An existing model gets missing fields added and its
// templates refreshed rather than being recreated.
func SetupAnki(ctx context.Context, client ModelClient, cfg types.AnkiConfig, w io.Writer) error {
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("reaching AnkiConnect: %w", err)
	}

	if err := client.CreateDeck(ctx, cfg.DeckName); err != nil {
		return fmt.Errorf("creating deck %q: %w", cfg.DeckName, err)
	}
	fmt.Fprintf(w, "deck ready: %s\n", cfg.DeckName)

	models, err := client.ModelNames(ctx)
	if err != nil {
		return fmt.Errorf("listing models: %w", err)
	}

	template := anki.CardTemplate{
		Name:  cardTemplateName,
		Front: card.FrontTemplate(),
		Back:  card.BackTemplate(),
	}

	for _, m := range models {
		if m != cfg.ModelName {
			continue
		}
		if err := client.EnsureModelFields(ctx, cfg.ModelName, card.AllFields()); err != nil {
			return fmt.Errorf("updating model fields: %w", err)
		}
		if err := client.UpdateModelTemplates(ctx, cfg.ModelName, card.CSS(), template); err != nil {
			return fmt.Errorf("updating model templates: %w", err)
		}
		fmt.Fprintf(w, "model updated: %s\n", cfg.ModelName)
		return nil
	}

	err = client.CreateModel(ctx, cfg.ModelName, card.AllFields(), card.CSS(),
		[]anki.CardTemplate{template})
	if err != nil {
		return fmt.Errorf("creating model %q: %w", cfg.ModelName, err)
	}
	fmt.Fprintf(w, "model created: %s\n", cfg.ModelName)
	return nil
}
