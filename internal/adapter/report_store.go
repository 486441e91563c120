package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// ErrUnsupportedReportVersion is returned for reports written by a newer tool.
var ErrUnsupportedReportVersion = errors.New("unsupported report version")

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
	LoadReport(path m.Path) (m.RunReport, error)
}

type yamlReportStore struct{}

// NewReportStore returns a ReportStore writing YAML documents.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

func (s *yamlReportStore) SaveReport(path m.Path, report m.RunReport) error {
	if report.Version == 0 {
		report.Version = m.CurrentReportVersion
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (s *yamlReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	// #nosec G304 -- report path comes from the command line.
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	if report.Version > m.CurrentReportVersion {
		return m.RunReport{}, fmt.Errorf("%w: %d", ErrUnsupportedReportVersion, report.Version)
	}

	return report, nil
}
