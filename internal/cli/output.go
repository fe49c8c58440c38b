package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/govalues/measure"
	"github.com/govalues/measure/internal/config"
)

// newLogger returns a logger writing to w in the configured format.
func newLogger(w io.Writer, c config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if c.Debug {
		opts.Level = slog.LevelDebug
	}
	if c.Format == config.OutputJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output == config.OutputJSON
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a writer aligning tab-separated columns.
// Callers must flush it.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
}

// categoryView is the JSON form of a category
type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BaseUnitID  string `json:"baseUnitId"`
	Description string `json:"description,omitempty"`
	DefaultFrom string `json:"defaultFrom"`
	DefaultTo   string `json:"defaultTo"`
}

func newCategoryView(c measure.Category) categoryView {
	from, to := c.DefaultPair()
	return categoryView{
		ID:          c.ID,
		Name:        c.Name,
		BaseUnitID:  c.BaseUnitID,
		Description: c.Description,
		DefaultFrom: from,
		DefaultTo:   to,
	}
}

// unitView is the JSON form of a unit
type unitView struct {
	ID         string   `json:"id"`
	CategoryID string   `json:"categoryId"`
	Name       string   `json:"name"`
	Symbol     string   `json:"symbol,omitempty"`
	Aliases    []string `json:"aliases,omitempty"`
	Factor     string   `json:"factor"`
	Offset     string   `json:"offset,omitempty"`
}

func newUnitView(u measure.UnitDef) unitView {
	return unitView{
		ID:         u.ID,
		CategoryID: u.CategoryID,
		Name:       u.Name,
		Symbol:     u.Symbol,
		Aliases:    u.Aliases,
		Factor:     u.Factor,
		Offset:     u.Offset,
	}
}
