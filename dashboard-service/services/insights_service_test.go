package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
)

const sampleDataset = `CGPA,Branch,PlacementStatus
8.1,CSE,Placed
6.2,IT,Not Placed
7.5,CSE,Placed
5.9,ECE,Not Placed
9.0,IT,Placed
7.0,ECE,Placed
`

func newTestInsights(store *memorySnapshots) InsightsService {
	if store == nil {
		return NewInsightsService(NewChartService(nil), nil, 5)
	}
	return NewInsightsService(NewChartService(store), store, 5)
}

func TestAnalyzeBuildsBothCharts(t *testing.T) {
	store := &memorySnapshots{}
	result, err := newTestInsights(store).Analyze(context.Background(), "batch.csv", strings.NewReader(sampleDataset))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.Message != MsgDatasetLoaded || result.Rows != 6 {
		t.Fatalf("unexpected result %q with %d rows", result.Message, result.Rows)
	}
	if len(result.Preview) != 5 {
		t.Errorf("preview rows = %d, want 5", len(result.Preview))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", result.Warnings)
	}
	if len(result.Charts) != 2 {
		t.Fatalf("charts = %d, want 2", len(result.Charts))
	}

	pie := result.Charts[0]
	if pie.Title != "Placement Distribution" || pie.Kind != models.ChartPie {
		t.Errorf("first chart is %q (%s)", pie.Title, pie.Kind)
	}
	if !reflect.DeepEqual(pie.Categories, []string{"Placed", "Not Placed"}) || !reflect.DeepEqual(pie.Series[0].Values, []float64{4, 2}) {
		t.Errorf("pie = %v %v", pie.Categories, pie.Series[0].Values)
	}

	bar := result.Charts[1]
	if bar.Title != "Branch-wise Placement Comparison" || bar.Kind != models.ChartStackedBar {
		t.Errorf("second chart is %q (%s)", bar.Title, bar.Kind)
	}
	if !reflect.DeepEqual(bar.Categories, []string{"CSE", "ECE", "IT"}) {
		t.Errorf("bar categories = %v", bar.Categories)
	}

	if result.SnapshotID == "" || len(store.saved) != 1 {
		t.Fatalf("snapshot not stored: id %q, saved %d", result.SnapshotID, len(store.saved))
	}
	if totals := store.saved[0].StatusTotals(); totals["Placed"] != 4 || totals["Not Placed"] != 2 {
		t.Errorf("stored totals = %v", totals)
	}
}

func TestAnalyzeWithoutStatusColumn(t *testing.T) {
	store := &memorySnapshots{}
	csv := "CGPA,Branch\n8.1,CSE\n6.2,IT\n"

	result, err := newTestInsights(store).Analyze(context.Background(), "no-status.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Charts) != 0 {
		t.Errorf("charts = %d, want 0", len(result.Charts))
	}
	if !reflect.DeepEqual(result.Warnings, []string{WarnNoStatusColumn}) {
		t.Errorf("warnings = %v", result.Warnings)
	}
	if len(store.saved) != 0 {
		t.Error("a dataset without statuses should not be stored")
	}
}

func TestAnalyzeWithoutBranchColumn(t *testing.T) {
	csv := "CGPA,PlacementStatus\n8.1,Placed\n6.2,Not Placed\n7.7,Placed\n"

	result, err := newTestInsights(nil).Analyze(context.Background(), "no-branch.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Charts) != 1 || result.Charts[0].Title != "Placement Distribution" {
		t.Fatalf("charts = %+v", result.Charts)
	}
	if !reflect.DeepEqual(result.Warnings, []string{WarnNoBranchColumn}) {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestAnalyzeSkipsEmptyCells(t *testing.T) {
	csv := "Branch,PlacementStatus\nCSE,Placed\n,Placed\nIT,\n"

	result, err := newTestInsights(nil).Analyze(context.Background(), "gaps.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := result.Charts[0].Series[0].Values; !reflect.DeepEqual(got, []float64{2}) {
		t.Errorf("pie values = %v, want [2]", got)
	}
	if got := result.Charts[1].Categories; !reflect.DeepEqual(got, []string{"CSE"}) {
		t.Errorf("bar categories = %v, want [CSE]", got)
	}
}

func TestAnalyzeHeaderOnlyAndBOM(t *testing.T) {
	csv := "\xEF\xBB\xBFBranch,PlacementStatus\n"

	result, err := newTestInsights(nil).Analyze(context.Background(), "empty.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Rows != 0 || result.Columns[0] != "Branch" {
		t.Errorf("rows = %d, columns = %q", result.Rows, result.Columns)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("BOM hid the status column: %v", result.Warnings)
	}
}

func TestAnalyzeParseFailures(t *testing.T) {
	tests := map[string]string{
		"empty":       "",
		"long row":    "Branch,PlacementStatus\nCSE,Placed,extra\n",
		"blank lines": "\n\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := newTestInsights(nil).Analyze(context.Background(), name+".csv", strings.NewReader(body))
			if !errors.Is(err, ErrDatasetParse) {
				t.Fatalf("expected ErrDatasetParse, got %v", err)
			}
			if !IsParseError(err) || result != nil {
				t.Errorf("unexpected result %+v", result)
			}
		})
	}
}

func TestAnalyzeStoreFailureIsLogged(t *testing.T) {
	svc := NewInsightsService(NewChartService(nil), brokenSnapshots{}, 5)

	result, err := svc.Analyze(context.Background(), "batch.csv", strings.NewReader(sampleDataset))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.SnapshotID != "" || len(result.Charts) != 2 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestAnalyzeToleratesShortRowsAndStrayQuotes(t *testing.T) {
	store := &memorySnapshots{}
	csv := "Name,Branch,PlacementStatus,Notes\n" +
		"A,CSE,Placed\n" +
		"B,C\"SE,Placed,late\n" +
		"C,IT\n"

	result, err := newTestInsights(store).Analyze(context.Background(), "ragged.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Rows != 3 || len(result.Charts) != 2 {
		t.Fatalf("rows = %d, charts = %d", result.Rows, len(result.Charts))
	}
	if got := result.Charts[0].Series[0].Values; !reflect.DeepEqual(got, []float64{2}) {
		t.Errorf("pie values = %v, want [2]", got)
	}
	if got := result.Charts[1].Categories; !reflect.DeepEqual(got, []string{"C\"SE", "CSE"}) {
		t.Errorf("bar categories = %v", got)
	}
	if len(store.saved) != 1 {
		t.Errorf("saved %d snapshots, want 1", len(store.saved))
	}
}

func TestAnalyzeWithoutCountedRowsStoresNothing(t *testing.T) {
	tests := map[string]string{
		"header only":    "Branch,PlacementStatus\n",
		"empty statuses": "Branch,PlacementStatus\nCSE,\nIT,\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			store := &memorySnapshots{}
			svc := NewInsightsService(NewChartService(store), store, 5)

			result, err := svc.Analyze(context.Background(), name+".csv", strings.NewReader(body))
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if result.SnapshotID != "" || len(store.saved) != 0 {
				t.Errorf("snapshot stored for a dataset with no statuses")
			}

			ratio := NewChartService(store).PlacementRatioChart(context.Background())
			if ratio.Source != models.SourceIllustrative {
				t.Errorf("placement ratio source = %s, want illustrative", ratio.Source)
			}
		})
	}
}
