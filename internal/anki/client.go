// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package anki talks to a running Anki instance through the
// AnkiConnect add-on's JSON API.
package anki

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tkoval/anki-vocab/pkg/types"
)

// connectVersion is the AnkiConnect protocol version this client
// speaks.
const connectVersion = 6

// DefaultURL is the standard AnkiConnect endpoint.
const DefaultURL = "http://localhost:8765"

// Client is an AnkiConnect API client.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a client from config. The logger may be nil.
func NewClient(cfg types.AnkiConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		logger:     logger.With("client", "anki-connect"),
	}
}

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// invoke sends one action and decodes the result into out (which may be
// nil when the result is irrelevant).
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	payload, err := json.Marshal(request{Action: action, Version: connectVersion, Params: params})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", action, err)
	}
	defer resp.Body.Close()

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding %s response: %w", action, err)
	}
	if envelope.Error != nil && *envelope.Error != "" {
		return fmt.Errorf("%s: %s", action, *envelope.Error)
	}
	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decoding %s result: %w", action, err)
		}
	}
	return nil
}

// Ping checks that AnkiConnect is reachable and speaking a compatible
// protocol version.
func (c *Client) Ping(ctx context.Context) error {
	var version int
	if err := c.invoke(ctx, "version", nil, &version); err != nil {
		return err
	}
	if version < connectVersion {
		return fmt.Errorf("AnkiConnect version %d too old, need %d", version, connectVersion)
	}
	return nil
}

// DeckNames lists all decks.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CreateDeck creates a deck unless it already exists.
func (c *Client) CreateDeck(ctx context.Context, name string) error {
	existing, err := c.DeckNames(ctx)
	if err != nil {
		return err
	}
	for _, d := range existing {
		if d == name {
			return nil
		}
	}
	return c.invoke(ctx, "createDeck", map[string]any{"deck": name}, nil)
}

// ModelNames lists all note models.
func (c *Client) ModelNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "modelNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CardTemplate is one card layout of a note model.
type CardTemplate struct {
	Name  string `json:"Name"`
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

// CreateModel creates a note model with the given ordered fields,
// styling, and card templates.
func (c *Client) CreateModel(ctx context.Context, name string, fields []string, css string, templates []CardTemplate) error {
	params := map[string]any{
		"modelName":     name,
		"inOrderFields": fields,
		"css":           css,
		"cardTemplates": templates,
	}
	return c.invoke(ctx, "createModel", params, nil)
}

// UpdateModelTemplates replaces the card templates of an existing
// model, then its styling.
func (c *Client) UpdateModelTemplates(ctx context.Context, name, css string, template CardTemplate) error {
	tmplParams := map[string]any{
		"model": map[string]any{
			"name": name,
			"templates": map[string]any{
				template.Name: map[string]string{
					"Front": template.Front,
					"Back":  template.Back,
				},
			},
		},
	}
	if err := c.invoke(ctx, "updateModelTemplates", tmplParams, nil); err != nil {
		return err
	}
	cssParams := map[string]any{
		"model": map[string]any{"name": name, "css": css},
	}
	return c.invoke(ctx, "updateModelStyling", cssParams, nil)
}

// ModelFieldNames lists the fields of a model.
func (c *Client) ModelFieldNames(ctx context.Context, model string) ([]string, error) {
	var names []string
	err := c.invoke(ctx, "modelFieldNames", map[string]any{"modelName": model}, &names)
	if err != nil {
		return nil, err
	}
	return names, nil
}

// EnsureModelFields adds any of the required fields missing from the
// model. Individual add failures are logged and skipped; older
// AnkiConnect builds lack modelFieldAdd.
func (c *Client) EnsureModelFields(ctx context.Context, model string, required []string) error {
	existing, err := c.ModelFieldNames(ctx, model)
	if err != nil {
		return err
	}
	have := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		have[f] = struct{}{}
	}
	for _, f := range required {
		if _, ok := have[f]; ok {
			continue
		}
		params := map[string]any{"modelName": model, "fieldName": f}
		if err := c.invoke(ctx, "modelFieldAdd", params, nil); err != nil {
			c.logger.DebugContext(ctx, "adding model field failed",
				"model", model, "field", f, "error", err)
		}
	}
	return nil
}

// AddNote adds a note and returns its id. Duplicate checking is scoped
// to the target deck so the same word can live in different decks.
func (c *Client) AddNote(ctx context.Context, deck, model string, fields map[string]string, tags []string) (int64, error) {
	if tags == nil {
		tags = []string{}
	}
	params := map[string]any{
		"note": map[string]any{
			"deckName":  deck,
			"modelName": model,
			"fields":    fields,
			"options": map[string]any{
				"allowDuplicate": false,
				"duplicateScope": "deck",
				"duplicateScopeOptions": map[string]any{
					"deckName":       deck,
					"checkChildren":  true,
					"checkAllModels": false,
				},
			},
			"tags": tags,
		},
	}
	var id int64
	if err := c.invoke(ctx, "addNote", params, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateNoteFields overwrites fields on an existing note.
func (c *Client) UpdateNoteFields(ctx context.Context, noteID int64, fields map[string]string) error {
	params := map[string]any{
		"note": map[string]any{"id": noteID, "fields": fields},
	}
	return c.invoke(ctx, "updateNoteFields", params, nil)
}

// FindNotes returns the note ids matching an Anki search query.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	if err := c.invoke(ctx, "findNotes", map[string]any{"query": query}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// StoreMediaFile uploads a local file into Anki's media collection and
// returns the stored filename.
func (c *Client) StoreMediaFile(ctx context.Context, path, filename string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading media file: %w", err)
	}
	if filename == "" {
		filename = filepath.Base(path)
	}
	params := map[string]any{
		"filename": filename,
		"data":     base64.StdEncoding.EncodeToString(data),
	}
	var stored string
	if err := c.invoke(ctx, "storeMediaFile", params, &stored); err != nil {
		return "", err
	}
	if stored == "" {
		stored = filename
	}
	return stored, nil
}
