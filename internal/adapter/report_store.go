package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// Format identifies a results artifact format.
type Format string

// Supported results artifact formats.
const (
	// FormatAuto sniffs the format from the artifact contents.
	FormatAuto Format = "auto"
	// FormatMutmut is `mutmut results` style text.
	FormatMutmut Format = "mutmut"
	// FormatCosmicRay is cosmic-ray's line-delimited JSON session dump.
	FormatCosmicRay Format = "cosmic-ray"
	// FormatSummary is the condensed {"mutation_score": N} JSON report.
	FormatSummary Format = "summary"
	// FormatNative is mutgate's own YAML report.
	FormatNative Format = "mutgate"
)

// ParseFormat validates a configured format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatAuto, FormatMutmut, FormatCosmicRay, FormatSummary, FormatNative:
		return Format(name), nil
	}

	return "", fmt.Errorf("%w: unknown report format %q", m.ErrConfig, name)
}

// ReportStore abstracts loading and saving results artifacts.
type ReportStore interface {
	// LoadResult reads the artifact at path. A directory is treated as
	// a set of shard files and merged in name order.
	LoadResult(ctx context.Context, path m.Path, format Format) (m.RunResult, error)

	// SaveResult writes a native-format report.
	SaveResult(path m.Path, result m.RunResult) error
}

// localReportStore reads artifacts from the local file system.
type localReportStore struct{}

// NewReportStore creates a local ReportStore.
func NewReportStore() ReportStore {
	return &localReportStore{}
}

// shardLoadParallelism bounds concurrent shard file reads.
const shardLoadParallelism = 4

func (s *localReportStore) LoadResult(ctx context.Context, path m.Path, format Format) (m.RunResult, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return m.RunResult{}, fmt.Errorf("%w: results artifact %s: %v", m.ErrParse, path, err)
	}

	if info.IsDir() {
		return s.loadDir(ctx, path, format)
	}

	return s.loadFile(path, format)
}

// loadDir parses every regular file in the directory concurrently and
// merges the shards in file name order so the result is deterministic.
func (s *localReportStore) loadDir(ctx context.Context, dir m.Path, format Format) (m.RunResult, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return m.RunResult{}, fmt.Errorf("%w: results directory %s: %v", m.ErrParse, dir, err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		names = append(names, entry.Name())
	}

	if len(names) == 0 {
		return m.RunResult{}, fmt.Errorf("%w: results directory %s is empty", m.ErrParse, dir)
	}

	sort.Strings(names)

	shards := make([]m.RunResult, len(names))
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(shardLoadParallelism)

	for i, name := range names {
		group.Go(func() error {
			shard, err := s.loadFile(m.Path(filepath.Join(string(dir), name)), format)
			if err != nil {
				return err
			}

			shards[i] = shard

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.RunResult{}, err
	}

	var merged m.RunResult
	for _, shard := range shards {
		merged.Merge(shard)
	}

	slog.Debug("merged shard reports", "dir", dir, "shards", len(shards))

	return merged, nil
}

func (s *localReportStore) loadFile(path m.Path, format Format) (m.RunResult, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunResult{}, fmt.Errorf("%w: results artifact %s: %v", m.ErrParse, path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return m.RunResult{}, fmt.Errorf("%w: results artifact %s is empty", m.ErrParse, path)
	}

	if format == FormatAuto {
		format = sniffFormat(data)
	}

	result, err := parseArtifact(data, format)
	if err != nil {
		return m.RunResult{}, fmt.Errorf("%s: %w", path, err)
	}

	return result, nil
}

func parseArtifact(data []byte, format Format) (m.RunResult, error) {
	switch format {
	case FormatMutmut:
		return ParseMutmutResults(string(data))
	case FormatCosmicRay:
		return ParseCosmicRayDump(data)
	case FormatSummary:
		return ParseSummaryReport(data)
	case FormatNative, FormatAuto:
		return parseNative(data)
	}

	return m.RunResult{}, fmt.Errorf("%w: unknown report format %q", m.ErrConfig, format)
}

// sniffFormat guesses the artifact format from its contents.
func sniffFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)

	// A single JSON document carrying a score is the summary report.
	if trimmed[0] == '{' {
		var summary map[string]any
		if err := json.Unmarshal(trimmed, &summary); err == nil {
			if _, ok := summary["mutation_score"]; ok {
				return FormatSummary
			}
		}

		return FormatCosmicRay
	}

	if trimmed[0] == '[' {
		return FormatCosmicRay
	}

	// Native reports are YAML mappings whose "key: value" lines would
	// also match the mutmut results shape; check the top-level keys
	// before the mutmut heuristics.
	if nativeKeyRe.Match(trimmed) {
		return FormatNative
	}

	if bytes.Contains(trimmed, []byte("🎉")) || looksLikeMutmutResults(trimmed) {
		return FormatMutmut
	}

	return FormatNative
}

var nativeKeyRe = regexp.MustCompile(`(?m)^(engine|mutants|tally|summary_score):`)

// sniffLineLimit caps how many leading non-empty lines are inspected
// for the mutmut results shape.
const sniffLineLimit = 5

// looksLikeMutmutResults reports whether any leading line has the
// "<mutant id>: <status>" shape. `mutmut results` prefixes its listing
// with hint lines, so the first line alone is not conclusive.
func looksLikeMutmutResults(data []byte) bool {
	checked := 0

	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if mutmutResultLineRe.Match(line) {
			return true
		}

		checked++
		if checked >= sniffLineLimit {
			break
		}
	}

	return false
}

func parseNative(data []byte) (m.RunResult, error) {
	var result m.RunResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		return m.RunResult{}, fmt.Errorf("%w: invalid report: %v", m.ErrParse, err)
	}

	if result.Engine == "" && len(result.Mutants) == 0 && len(result.Tally) == 0 && result.SummaryScore == nil {
		return m.RunResult{}, fmt.Errorf("%w: report carries no run data", m.ErrParse)
	}

	if result.SummaryScore != nil {
		if err := validateSummaryScore(*result.SummaryScore); err != nil {
			return m.RunResult{}, err
		}
	}

	// Normalize outcome words so hand-edited reports behave like
	// engine-produced ones.
	for i := range result.Mutants {
		result.Mutants[i].Outcome = m.ParseOutcome(string(result.Mutants[i].Outcome))
	}

	return result, nil
}

func (s *localReportStore) SaveResult(path m.Path, result m.RunResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("saved report", "path", path, "mutants", len(result.Mutants))

	return nil
}
