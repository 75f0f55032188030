package feed

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"betboard/internal/board"
)

// SnapshotProvider defines the contract for anything that supplies board data.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*board.Snapshot, error)
}

// FileProvider reads a snapshot from a YAML (or JSON) file on every call.
type FileProvider struct {
	Path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

func (p *FileProvider) Snapshot(ctx context.Context) (*board.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", p.Path, err)
	}

	log.WithFields(log.Fields{
		"path":        p.Path,
		"leaderboard": len(snap.Leaderboard),
		"ongoing":     len(snap.OngoingBets),
		"ended":       len(snap.EndedBets),
	}).Debug("snapshot loaded")
	return snap, nil
}

// Decode parses YAML or JSON snapshot bytes and normalizes the period keys.
func Decode(data []byte) (*board.Snapshot, error) {
	var snap board.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	for key := range snap.TopPlayers {
		if _, err := board.ParsePeriod(string(key)); err != nil {
			return nil, err
		}
	}
	snap.Normalize()
	return &snap, nil
}

// New picks the file provider when path is set and demo data otherwise.
func New(path string, seed int64) SnapshotProvider {
	if path != "" {
		return NewFileProvider(path)
	}
	return NewDemoProvider(seed, DefaultDemoConfig())
}
