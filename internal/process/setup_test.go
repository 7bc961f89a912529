// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/tkoval/anki-vocab/internal/anki"
	"github.com/tkoval/anki-vocab/internal/card"
	"github.com/tkoval/anki-vocab/pkg/types"
)

type fakeModelClient struct {
	pingErr       error
	models        []string
	decksCreated  []string
	modelsCreated []string
	fieldsEnsured []string
	tmplUpdated   bool
}

func (f *fakeModelClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeModelClient) CreateDeck(_ context.Context, name string) error {
	f.decksCreated = append(f.decksCreated, name)
	return nil
}

func (f *fakeModelClient) ModelNames(context.Context) ([]string, error) {
	return f.models, nil
}

func (f *fakeModelClient) CreateModel(_ context.Context, name string, fields []string, css string, templates []anki.CardTemplate) error {
	f.modelsCreated = append(f.modelsCreated, name)
	f.fieldsEnsured = fields
	return nil
}

func (f *fakeModelClient) EnsureModelFields(_ context.Context, model string, required []string) error {
	f.fieldsEnsured = required
	return nil
}

func (f *fakeModelClient) UpdateModelTemplates(_ context.Context, name, css string, template anki.CardTemplate) error {
	f.tmplUpdated = true
	return nil
}

func TestSetupAnkiCreatesModel(t *testing.T) {
	client := &fakeModelClient{models: []string{"Basic"}}
	cfg := types.AnkiConfig{DeckName: "Vocabulary", ModelName: "VocabModel"}

	var out bytes.Buffer
	if err := SetupAnki(context.Background(), client, cfg, &out); err != nil {
		t.Fatalf("SetupAnki: %v", err)
	}
	if len(client.decksCreated) != 1 || client.decksCreated[0] != "Vocabulary" {
		t.Errorf("decks = %v", client.decksCreated)
	}
	if len(client.modelsCreated) != 1 || client.modelsCreated[0] != "VocabModel" {
		t.Errorf("models = %v", client.modelsCreated)
	}
	if len(client.fieldsEnsured) != len(card.AllFields()) {
		t.Errorf("model created with %d fields", len(client.fieldsEnsured))
	}
}

func TestSetupAnkiUpdatesExistingModel(t *testing.T) {
	client := &fakeModelClient{models: []string{"VocabModel"}}
	cfg := types.AnkiConfig{DeckName: "Vocabulary", ModelName: "VocabModel"}

	if err := SetupAnki(context.Background(), client, cfg, &bytes.Buffer{}); err != nil {
		t.Fatalf("SetupAnki: %v", err)
	}
	if len(client.modelsCreated) != 0 {
		t.Error("existing model must not be recreated")
	}
	if !client.tmplUpdated {
		t.Error("templates not refreshed")
	}
	if len(client.fieldsEnsured) == 0 {
		t.Error("fields not ensured on existing model")
	}
}

func TestSetupAnkiUnreachable(t *testing.T) {
	client := &fakeModelClient{pingErr: errors.New("connection refused")}
	cfg := types.AnkiConfig{DeckName: "d", ModelName: "m"}
	if err := SetupAnki(context.Background(), client, cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error when AnkiConnect is unreachable")
	}
}
