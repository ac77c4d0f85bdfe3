package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/go-pi-config/internal/logger"
	"github.com/MKhiriev/go-pi-config/internal/merge"
	"github.com/MKhiriev/go-pi-config/models"
)

func (a *App) show(explain bool) error {
	doc := a.svc.Config()
	if !explain {
		return a.writeJSON(doc)
	}

	origins := a.svc.Origins()
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, compact(doc[k]), origins[k]})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "VALUE", "ORIGIN").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return originStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(a.out, t.String())
	return err
}

func (a *App) get(key string) error {
	val, ok := merge.GetPath(a.svc.Config(), key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	if s, isString := val.(string); isString {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}
	return a.writeJSON(val)
}

func (a *App) set(ctx context.Context, log *logger.Logger, key, raw string, target models.LayerName) error {
	if err := a.svc.Set(ctx, key, parseValue(raw), target); err != nil {
		return err
	}
	if err := a.svc.Save(ctx, target); err != nil {
		return err
	}

	log.Info().Str("key", key).Str("layer", target.String()).Msg("config value saved")
	_, err := fmt.Fprintf(a.out, "%s saved to %s config (%s)\n", key, target, a.svc.Paths()[target])
	return err
}

func (a *App) unset(ctx context.Context, log *logger.Logger, key string, target models.LayerName) error {
	if err := a.svc.Unset(ctx, key, target); err != nil {
		return err
	}
	if err := a.svc.Save(ctx, target); err != nil {
		return err
	}

	log.Info().Str("key", key).Str("layer", target.String()).Msg("config value removed")
	_, err := fmt.Fprintf(a.out, "%s removed from %s config (%s)\n", key, target, a.svc.Paths()[target])
	return err
}

func (a *App) paths() error {
	paths := a.svc.Paths()
	for _, name := range models.LayerNames {
		if _, err := fmt.Fprintf(a.out, "%-12s %s\n", name, paths[name]); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// parseValue reads raw as a JSON (or JSONC) value. Anything that does not
// parse is kept as a plain string, so `set model gpt` needs no quoting.
func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}

	var v any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(trimmed)), &v); err != nil {
		return raw
	}
	return v
}

func compact(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
