package tsv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsinha/stockpile/pkg/domain/entities"
)

const snapshotExt = ".tsv"

// LatestSnapshot returns the most recently modified *.tsv file in dir.
// Ties on modification time go to the lexically greater file name.
func LatestSnapshot(dir string) (entities.Snapshot, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return entities.Snapshot{}, fmt.Errorf("%w: current stock directory %s", ErrMissingFile, dir)
		}
		return entities.Snapshot{}, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return entities.Snapshot{}, fmt.Errorf("%w: %s is not a directory", ErrMissingFile, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var newest entities.Snapshot
	var newestName string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			return entities.Snapshot{}, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}

		mod := fi.ModTime()
		if newestName == "" || mod.After(newest.ModifiedAt) ||
			(mod.Equal(newest.ModifiedAt) && entry.Name() > newestName) {
			newestName = entry.Name()
			newest = entities.Snapshot{
				Path:       filepath.Join(dir, entry.Name()),
				ModifiedAt: mod,
			}
		}
	}

	if newestName == "" {
		return entities.Snapshot{}, fmt.Errorf("%w in %s", ErrNoSnapshots, dir)
	}
	return newest, nil
}
