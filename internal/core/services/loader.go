package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
	"github.com/custodia-labs/postliste/internal/logger"
)

// Ensure DatasetLoader implements the interface.
var _ driving.DatasetService = (*DatasetLoader)(nil)

// LoaderConfig names the data files relative to the data source.
type LoaderConfig struct {
	IndexFile   string
	RecordsFile string
	ChangesFile string
}

// LoaderConfigFrom builds a LoaderConfig from data settings.
func LoaderConfigFrom(s domain.DataSettings) LoaderConfig {
	return LoaderConfig{
		IndexFile:   s.IndexFile,
		RecordsFile: s.RecordsFile,
		ChangesFile: s.ChangesFile,
	}
}

// DatasetLoader fetches the published files and merges them into a Dataset.
type DatasetLoader struct {
	source driven.DataSource
	config LoaderConfig
}

// NewDatasetLoader creates a loader reading from source.
// Empty file names in config fall back to the defaults.
func NewDatasetLoader(source driven.DataSource, config LoaderConfig) *DatasetLoader {
	defaults := domain.DefaultAppSettings().Data
	if config.IndexFile == "" {
		config.IndexFile = defaults.IndexFile
	}
	if config.RecordsFile == "" {
		config.RecordsFile = defaults.RecordsFile
	}
	if config.ChangesFile == "" {
		config.ChangesFile = defaults.ChangesFile
	}
	return &DatasetLoader{source: source, config: config}
}

// LoadRecords loads the record list and merges it by DocumentID.
//
// When the index file exists, every shard it lists is fetched concurrently.
// The shards are merged in listing order once all of them have arrived, so
// a later shard wins over an earlier one regardless of which finished first.
// Without an index the single records file is used instead.
func (l *DatasetLoader) LoadRecords(ctx context.Context) (*domain.Dataset, error) {
	logger.Section("Load records")
	defer logger.Timed("load records")()

	shards, err := l.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	if shards == nil {
		logger.Debug("no %s at %s, reading %s", l.config.IndexFile, l.source.Location(), l.config.RecordsFile)
		records, err = l.loadRecordFile(ctx, l.config.RecordsFile)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Debug("index lists %d shards", len(shards))
		records, err = l.loadShards(ctx, shards)
		if err != nil {
			return nil, err
		}
	}

	ds, skipped := domain.NewDataset(records)
	if skipped > 0 {
		logger.Warn("skipped %d records without a document ID", skipped)
	}
	logger.Info("merged %d records into %d distinct", len(records), ds.Len())
	return ds, nil
}

// loadIndex returns the shard names, or nil when there is no index file.
// An empty index yields an empty, non-nil list.
func (l *DatasetLoader) loadIndex(ctx context.Context) ([]string, error) {
	data, err := l.source.Fetch(ctx, l.config.IndexFile)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.LoadError{File: l.config.IndexFile, Err: err}
	}

	var shards []string
	if err := json.Unmarshal(data, &shards); err != nil {
		return nil, &domain.LoadError{File: l.config.IndexFile, Err: fmt.Errorf("decoding index: %w", err)}
	}
	if shards == nil {
		shards = []string{}
	}
	return shards, nil
}

func (l *DatasetLoader) loadShards(ctx context.Context, shards []string) ([]domain.Record, error) {
	results := make([][]domain.Record, len(shards))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range shards {
		g.Go(func() error {
			records, err := l.loadRecordFile(gctx, name)
			if err != nil {
				return err
			}
			results[i] = records
			logger.Debug("shard %s: %d records", name, len(records))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	records := make([]domain.Record, 0, total)
	for _, r := range results {
		records = append(records, r...)
	}
	return records, nil
}

// loadRecordFile decodes a JSON array of records. A file that is not an
// array, or that holds an element which is not a record, fails the load.
func (l *DatasetLoader) loadRecordFile(ctx context.Context, name string) ([]domain.Record, error) {
	data, err := l.source.Fetch(ctx, name)
	if err != nil {
		return nil, &domain.LoadError{File: name, Err: err}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &domain.LoadError{File: name, Err: fmt.Errorf("decoding records: %w", err)}
	}

	records := make([]domain.Record, 0, len(raw))
	for i, msg := range raw {
		var r domain.Record
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, &domain.LoadError{File: name, Err: fmt.Errorf("decoding record %d: %w", i, err)}
		}
		records = append(records, r)
	}
	return records, nil
}

// LoadChangeEvents loads the change log, newest first.
// Events whose timestamp does not parse are kept at the end in file order.
func (l *DatasetLoader) LoadChangeEvents(ctx context.Context) ([]domain.ChangeEvent, error) {
	defer logger.Timed("load changes")()

	name := l.config.ChangesFile
	data, err := l.source.Fetch(ctx, name)
	if err != nil {
		return nil, &domain.LoadError{File: name, Err: err}
	}

	var events []domain.ChangeEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, &domain.LoadError{File: name, Err: fmt.Errorf("decoding changes: %w", err)}
	}

	for i := range events {
		if at, ok := domain.ParseTimestamp(events[i].Timestamp); ok {
			events[i].At = at
		}
	}
	slices.SortStableFunc(events, func(a, b domain.ChangeEvent) int {
		switch {
		case a.At.IsZero() && b.At.IsZero():
			return 0
		case a.At.IsZero():
			return 1
		case b.At.IsZero():
			return -1
		}
		return b.At.Compare(a.At)
	})

	logger.Debug("loaded %d change events", len(events))
	return events, nil
}
