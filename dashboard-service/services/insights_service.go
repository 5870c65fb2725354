package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/constants"
	"github.com/Bipul-Dubey/placement-dashboard/shared/db"
	sharedmodels "github.com/Bipul-Dubey/placement-dashboard/shared/models"
)

const (
	MsgDatasetLoaded   = "Dataset loaded successfully!"
	WarnNoStatusColumn = "'PlacementStatus' column not found in the dataset."
	WarnNoBranchColumn = "'Branch' column not found in the dataset; branch comparison skipped."
	defaultPreviewRows = 5
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type InsightsService interface {
	Analyze(ctx context.Context, fileName string, r io.Reader) (*models.InsightsResult, error)
}

type insightsService struct {
	charts      ChartService
	snapshots   db.SnapshotStore
	previewRows int
}

// NewInsightsService wires the dataset path. snapshots may be nil.
func NewInsightsService(charts ChartService, snapshots db.SnapshotStore, previewRows int) InsightsService {
	if previewRows < 1 {
		previewRows = defaultPreviewRows
	}
	return &insightsService{
		charts:      charts,
		snapshots:   snapshots,
		previewRows: previewRows,
	}
}

type dataset struct {
	header []string
	rows   [][]string
}

func (d dataset) column(name string) int {
	for i, h := range d.header {
		if h == name {
			return i
		}
	}
	return -1
}

func parseDataset(r io.Reader) (dataset, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	// Short rows and stray quotes are tolerated; missing cells read as empty.
	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return dataset{}, fmt.Errorf("%w: %v", ErrDatasetParse, err)
	}
	if len(records) == 0 {
		return dataset{}, fmt.Errorf("%w: no columns to parse from file", ErrDatasetParse)
	}

	header := records[0]
	for i, row := range records[1:] {
		if len(row) > len(header) {
			return dataset{}, fmt.Errorf("%w: expected %d fields in line %d, saw %d", ErrDatasetParse, len(header), i+2, len(row))
		}
	}
	return dataset{header: header, rows: records[1:]}, nil
}

// cell returns row[col], or "" when the row is shorter than the header.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// Analyze parses the upload and builds the insight charts. Only a parse
// failure is returned as an error; missing columns become warnings.
func (s *insightsService) Analyze(ctx context.Context, fileName string, r io.Reader) (*models.InsightsResult, error) {
	ds, err := parseDataset(r)
	if err != nil {
		log.Printf("[WARN] Failed to parse dataset %s: %v", fileName, err)
		return nil, err
	}

	result := &models.InsightsResult{
		FileName: fileName,
		Rows:     len(ds.rows),
		Columns:  ds.header,
		Preview:  ds.rows[:min(len(ds.rows), s.previewRows)],
		Message:  MsgDatasetLoaded,
		Charts:   []models.ChartSpec{},
	}
	log.Printf("Dataset %s loaded: %d rows, %d columns", fileName, result.Rows, len(ds.header))

	statusCol := ds.column(constants.ColumnPlacementStatus)
	if statusCol < 0 {
		result.Warnings = append(result.Warnings, WarnNoStatusColumn)
		return result, nil
	}
	branchCol := ds.column(constants.ColumnBranch)

	snapshot := &sharedmodels.DatasetSnapshot{
		FileName:  fileName,
		Rows:      len(ds.rows),
		HasBranch: branchCol >= 0,
		Counts:    countStatuses(ds, statusCol, branchCol),
	}

	result.Charts = append(result.Charts, s.charts.DistributionChart(snapshot.StatusTotals()))
	if branchCol >= 0 {
		result.Charts = append(result.Charts, s.charts.BranchComparisonChart(withBranch(snapshot.Counts)))
	} else {
		result.Warnings = append(result.Warnings, WarnNoBranchColumn)
	}

	// Nothing counted, nothing to feed the placement ratio.
	if s.snapshots != nil && len(snapshot.Counts) > 0 {
		if err := s.snapshots.Save(ctx, snapshot); err != nil {
			log.Printf("[WARN] Failed to store dataset snapshot: %v", err)
		} else {
			result.SnapshotID = snapshot.ID.String()
		}
	}
	return result, nil
}

// countStatuses groups rows by (branch, status). Rows with an empty status
// are skipped. Branch is left empty when there is no branch column.
func countStatuses(ds dataset, statusCol, branchCol int) []sharedmodels.StatusCount {
	counts := map[[2]string]int{}
	for _, row := range ds.rows {
		status := cell(row, statusCol)
		if status == "" {
			continue
		}
		branch := cell(row, branchCol)
		counts[[2]string{branch, status}]++
	}

	out := make([]sharedmodels.StatusCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, sharedmodels.StatusCount{Branch: key[0], Status: key[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Branch != out[j].Branch {
			return out[i].Branch < out[j].Branch
		}
		return out[i].Status < out[j].Status
	})
	return out
}

// withBranch drops rows whose branch cell was empty.
func withBranch(counts []sharedmodels.StatusCount) []sharedmodels.StatusCount {
	out := make([]sharedmodels.StatusCount, 0, len(counts))
	for _, c := range counts {
		if c.Branch != "" {
			out = append(out, c)
		}
	}
	return out
}

// IsParseError reports whether err came from reading the upload.
func IsParseError(err error) bool {
	return errors.Is(err, ErrDatasetParse)
}
