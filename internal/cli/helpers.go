package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Lookup errors returned by FindColumn and FindCard
var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous reference")
	ErrEmpty     = errors.New("must not be empty")
)

// Open returns the CLI for cmd's context. On failure the error has already
// been reported through f.
func Open(ctx context.Context, f *OutputFormatter) (*CLI, func(), error) {
	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return nil, nil, Fail(f, ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}, nil
}

// ValidateTitle trims s and rejects an empty result
func ValidateTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("title %w", ErrEmpty)
	}
	return s, nil
}

// FindColumn resolves ref as a column id, a 1-based position or a
// case-insensitive title, in that order
func FindColumn(b models.Board, ref string) (models.Column, error) {
	if col, ok := b.Column(types.ColumnID(ref)); ok {
		return col, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(b.Columns) {
		return b.Columns[n-1], nil
	}

	var matches []models.Column
	for _, col := range b.Columns {
		if strings.EqualFold(col.Title, strings.TrimSpace(ref)) {
			matches = append(matches, col)
		}
	}
	switch len(matches) {
	case 0:
		return models.Column{}, fmt.Errorf("column %q %w", ref, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Column{}, fmt.Errorf("%w: %d columns titled %q", ErrAmbiguous, len(matches), ref)
	}
}

// FindCard resolves ref as a card id or a unique id prefix and returns the
// card together with the column holding it
func FindCard(b models.Board, ref string) (models.Card, types.ColumnID, error) {
	if ref == "" {
		return models.Card{}, "", fmt.Errorf("card id %w", ErrEmpty)
	}
	if card, ok := b.Card(types.CardID(ref)); ok {
		col, _ := b.ColumnOf(card.ID)
		return card, col, nil
	}

	var found []models.Card
	for id, card := range b.Cards {
		if strings.HasPrefix(string(id), ref) {
			found = append(found, card)
		}
	}
	switch len(found) {
	case 0:
		return models.Card{}, "", fmt.Errorf("card %q %w", ref, ErrNotFound)
	case 1:
		col, _ := b.ColumnOf(found[0].ID)
		return found[0], col, nil
	default:
		return models.Card{}, "", fmt.Errorf("%w: %d cards start with %q", ErrAmbiguous, len(found), ref)
	}
}

// LookupExitCode maps lookup errors to exit codes
func LookupExitCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrAmbiguous), errors.Is(err, ErrEmpty):
		return ExitUsage
	default:
		return ExitError
	}
}

// Confirm asks a yes/no question on cmd's streams; anything but y/yes is no
func Confirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && response == "" {
		slog.Debug("Error reading user input", "error", err)
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// ShortID abbreviates an id for human-readable output
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
