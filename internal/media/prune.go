package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Prune removes cached files older than the retention period.
type Prune struct {
	dir       string
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func NewPrune(dir string, retention time.Duration, logger *slog.Logger) *Prune {
	return &Prune{
		dir:       dir,
		retention: retention,
		now:       time.Now,
		logger:    logger.With("component", "media_prune"),
	}
}

func (p *Prune) Name() string {
	return "media_prune"
}

func (p *Prune) Run(ctx context.Context) error {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return fmt.Errorf("read media dir: %w", err)
	}

	cutoff := p.now().Add(-p.retention)
	removed := 0

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(p.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
			p.logger.Warn("failed to remove cached media", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		p.logger.Info("cached media pruned", "removed", removed)
	}
	return nil
}
