// Package feed reads contest data dumps into the plain records the
// board engine consumes. A feed holds config.json, team.json and
// run.json (each optionally zstd-compressed as *.json.zst), plus an
// optional hand-maintained contest.toml that overrides config.json.
package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/programme-lv/scoreboard/board"
)

// Files are the raw feed documents, already decompressed. ContestToml
// is optional; the other three are required.
type Files struct {
	Config      []byte
	ContestToml []byte
	Team        []byte
	Run         []byte
}

// Contest bundles everything a feed describes.
type Contest struct {
	Contest     *board.Contest
	Teams       []*board.Team
	Submissions []*board.Submission
}

// Parse turns raw feed documents into engine records. Codec failures
// are errors here; the referential tolerance rules live in the engine,
// not in the codec.
func Parse(files Files) (*Contest, error) {
	cfg, err := parseContestConfig(files.Config, files.ContestToml)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contest config: %w", err)
	}
	contest := board.NewContest(cfg)

	teams, err := parseTeams(files.Team)
	if err != nil {
		return nil, fmt.Errorf("failed to parse team roster: %w", err)
	}

	subs, err := parseRuns(files.Run, contest)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run stream: %w", err)
	}

	return &Contest{Contest: contest, Teams: teams, Submissions: subs}, nil
}

// DirSource loads feeds from a local directory.
type DirSource struct {
	Dir string
}

func (s DirSource) LoadContest(ctx context.Context) (*Contest, error) {
	return Load(s.Dir)
}

// Load reads a feed directory and parses it.
func Load(dir string) (*Contest, error) {
	files := Files{}
	var err error

	files.Config, err = readFeedFile(dir, "config")
	if err != nil {
		return nil, err
	}
	files.Team, err = readFeedFile(dir, "team")
	if err != nil {
		return nil, err
	}
	files.Run, err = readFeedFile(dir, "run")
	if err != nil {
		return nil, err
	}

	tomlPath := filepath.Join(dir, "contest.toml")
	files.ContestToml, err = os.ReadFile(tomlPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", tomlPath, err)
	}

	return Parse(files)
}

// readFeedFile returns the contents of <base>.json, falling back to the
// zstd-compressed <base>.json.zst.
func readFeedFile(dir string, base string) ([]byte, error) {
	plain := filepath.Join(dir, base+".json")
	content, err := os.ReadFile(plain)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", plain, err)
	}

	compressed := plain + ".zst"
	content, err = os.ReadFile(compressed)
	if err != nil {
		return nil, fmt.Errorf("neither %s nor %s found: %w", plain, compressed, err)
	}
	return Decompress(content)
}

// Decompress decodes a zstd-compressed feed document.
func Decompress(compressed []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to init zstd reader: %w", err)
	}
	defer dec.Close()

	content, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return content, nil
}
