package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	SummaryFile      = "summary.json"
	CurrentMatchFile = "current_match.json"
)

// Source provides the latest summary and, when a match is live, its participants.
type Source interface {
	Load(ctx context.Context) (*Summary, *CurrentMatch, error)
}

// DirSource reads the files the league runner writes into its overlay directory.
type DirSource struct {
	dir string
}

var _ Source = (*DirSource)(nil)

// NewDirSource creates a Source reading from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load reads summary.json, which must exist, and current_match.json, which may not.
func (d *DirSource) Load(ctx context.Context) (*Summary, *CurrentMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	s, err := readFile(filepath.Join(d.dir, SummaryFile), Decode)
	if err != nil {
		return nil, nil, err
	}

	current, err := d.LoadCurrentMatch(ctx)
	if err != nil {
		return nil, nil, err
	}
	return s, current, nil
}

// LoadCurrentMatch reads current_match.json. It returns nil without an error
// when the file does not exist.
func (d *DirSource) LoadCurrentMatch(ctx context.Context) (*CurrentMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	current, err := readFile(filepath.Join(d.dir, CurrentMatchFile), DecodeCurrentMatch)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("No current match file, nothing is being played", "dir", d.dir)
		return nil, nil
	}
	return current, err
}

// LoadActions reads data.json. A missing file reads as an idle feed.
func (d *DirSource) LoadActions(ctx context.Context) (*ActionsData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	actions, err := readFile(filepath.Join(d.dir, ActionsFile), DecodeActions)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("No actions file, match comms tracker is not running", "dir", d.dir)
		return &ActionsData{}, nil
	}
	return actions, err
}

func readFile[T any](path string, decode func(io.Reader) (*T, error)) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}
