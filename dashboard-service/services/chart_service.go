package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/db"
	sharedmodels "github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Placeholder split shown until a dataset has been uploaded.
const (
	illustrativePlaced   = 70
	illustrativeUnplaced = 30
)

const (
	colorPlaced   = "#2ecc71"
	colorUnplaced = "#e74c3c"
)

// viridis stops, low to high.
var viridis = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

var qualitative = []string{"#8dd3c7", "#bebada", "#fb8072", "#80b1d3", "#fdb462", "#b3de69", "#fccde5", "#d9d9d9"}

type ChartService interface {
	PerformanceChart(r sharedmodels.StudentRecord) models.ChartSpec
	PlacementRatioChart(ctx context.Context) models.ChartSpec
	DistributionChart(totals map[string]int) models.ChartSpec
	BranchComparisonChart(counts []sharedmodels.StatusCount) models.ChartSpec
	Render(spec models.ChartSpec) (string, error)
}

type chartService struct {
	snapshots db.SnapshotStore
}

// NewChartService builds the chart service. snapshots may be nil, in which
// case the placement ratio is always illustrative.
func NewChartService(snapshots db.SnapshotStore) ChartService {
	return &chartService{snapshots: snapshots}
}

// PerformanceChart scores the four categories shown after a prediction.
func (s *chartService) PerformanceChart(r sharedmodels.StudentRecord) models.ChartSpec {
	internship := 5.0
	if r.HasInternship() {
		internship = 10.0
	}
	return models.ChartSpec{
		ID:         "performance-summary",
		Kind:       models.ChartBar,
		Title:      "Performance Summary",
		Source:     models.SourceInput,
		Categories: []string{"CGPA", "Communication", "Projects", "Internship"},
		Series: []models.SeriesSpec{{
			Name: "Score",
			Values: []float64{
				r.CGPA,
				float64(r.Communication),
				float64(r.MajorProjects + r.MiniProjects),
				internship,
			},
		}},
	}
}

// PlacementRatioChart uses the latest dataset snapshot when there is one.
// Otherwise it returns the fixed illustrative split, marked as such.
func (s *chartService) PlacementRatioChart(ctx context.Context) models.ChartSpec {
	if s.snapshots != nil {
		snapshot, err := s.snapshots.Latest(ctx)
		switch {
		case err == nil && len(snapshot.StatusTotals()) > 0:
			spec := s.DistributionChart(snapshot.StatusTotals())
			spec.ID = "placement-ratio"
			spec.Title = "Overall Placement Ratio"
			spec.Subtitle = fmt.Sprintf("From %s (%d rows)", snapshot.FileName, snapshot.Rows)
			return spec
		case err != nil && !errors.Is(err, db.ErrNoSnapshot):
			log.Printf("[WARN] Failed to load dataset snapshot: %v", err)
		}
	}
	return models.ChartSpec{
		ID:         "placement-ratio",
		Kind:       models.ChartPie,
		Title:      "Overall Placement Ratio",
		Subtitle:   "Illustrative example, not derived from this prediction",
		Source:     models.SourceIllustrative,
		Categories: []string{"Placed", "Unplaced"},
		Series: []models.SeriesSpec{{
			Name:   "Count",
			Values: []float64{illustrativePlaced, illustrativeUnplaced},
		}},
	}
}

// DistributionChart orders statuses by count, then name.
func (s *chartService) DistributionChart(totals map[string]int) models.ChartSpec {
	statuses := make([]string, 0, len(totals))
	for status := range totals {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		if totals[statuses[i]] != totals[statuses[j]] {
			return totals[statuses[i]] > totals[statuses[j]]
		}
		return statuses[i] < statuses[j]
	})

	values := make([]float64, len(statuses))
	for i, status := range statuses {
		values[i] = float64(totals[status])
	}
	return models.ChartSpec{
		ID:         "placement-distribution",
		Kind:       models.ChartPie,
		Title:      "Placement Distribution",
		Source:     models.SourceDataset,
		Categories: statuses,
		Series:     []models.SeriesSpec{{Name: "Count", Values: values}},
	}
}

// BranchComparisonChart stacks one series per status over sorted branches.
func (s *chartService) BranchComparisonChart(counts []sharedmodels.StatusCount) models.ChartSpec {
	branchSet := map[string]bool{}
	statusSet := map[string]bool{}
	cell := map[[2]string]int{}
	for _, c := range counts {
		branchSet[c.Branch] = true
		statusSet[c.Status] = true
		cell[[2]string{c.Branch, c.Status}] += c.Count
	}

	branches := sortedKeys(branchSet)
	statuses := sortedKeys(statusSet)

	series := make([]models.SeriesSpec, len(statuses))
	for i, status := range statuses {
		values := make([]float64, len(branches))
		for j, branch := range branches {
			values[j] = float64(cell[[2]string{branch, status}])
		}
		series[i] = models.SeriesSpec{Name: status, Values: values}
	}

	return models.ChartSpec{
		ID:         "branch-comparison",
		Kind:       models.ChartStackedBar,
		Title:      "Branch-wise Placement Comparison",
		Source:     models.SourceDataset,
		Categories: branches,
		Series:     series,
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render turns a ChartSpec into a standalone HTML page.
func (s *chartService) Render(spec models.ChartSpec) (string, error) {
	var buf bytes.Buffer
	var err error
	switch spec.Kind {
	case models.ChartBar:
		err = renderBar(&buf, spec)
	case models.ChartStackedBar:
		err = renderStackedBar(&buf, spec)
	case models.ChartPie:
		err = renderPie(&buf, spec)
	default:
		return "", fmt.Errorf("unknown chart kind %q", spec.Kind)
	}
	if err != nil {
		return "", fmt.Errorf("failed to render chart %s: %w", spec.ID, err)
	}
	return buf.String(), nil
}

func globalOptions(spec models.ChartSpec) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: spec.Title,
			Width:     "100%",
			Height:    "360px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    spec.Title,
			Subtitle: spec.Subtitle,
		}),
	}
}

func renderBar(buf *bytes.Buffer, spec models.ChartSpec) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec)...)
	bar.SetXAxis(spec.Categories)
	for _, series := range spec.Series {
		maxValue := 0.0
		for _, v := range series.Values {
			if v > maxValue {
				maxValue = v
			}
		}
		data := make([]opts.BarData, len(series.Values))
		for i, v := range series.Values {
			data[i] = opts.BarData{
				Value:     v,
				ItemStyle: &opts.ItemStyle{Color: scaleColor(v, maxValue)},
			}
		}
		bar.AddSeries(series.Name, data)
	}
	return bar.Render(buf)
}

func renderStackedBar(buf *bytes.Buffer, spec models.ChartSpec) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec)...)
	bar.SetXAxis(spec.Categories)
	for i, series := range spec.Series {
		color := qualitative[i%len(qualitative)]
		data := make([]opts.BarData, len(series.Values))
		for j, v := range series.Values {
			data[j] = opts.BarData{Value: v, ItemStyle: &opts.ItemStyle{Color: color}}
		}
		bar.AddSeries(series.Name, data, charts.WithBarChartOpts(opts.BarChart{Stack: "placement"}))
	}
	return bar.Render(buf)
}

func renderPie(buf *bytes.Buffer, spec models.ChartSpec) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions(spec)...)
	if len(spec.Series) == 0 {
		return errors.New("pie chart needs one series")
	}
	values := spec.Series[0].Values
	data := make([]opts.PieData, len(spec.Categories))
	for i, name := range spec.Categories {
		var v float64
		if i < len(values) {
			v = values[i]
		}
		data[i] = opts.PieData{
			Name:      name,
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: pieColor(spec, i, name)},
		}
	}
	pie.AddSeries(spec.Series[0].Name, data)
	return pie.Render(buf)
}

func pieColor(spec models.ChartSpec, i int, name string) string {
	if spec.Source == models.SourceIllustrative {
		if name == "Placed" {
			return colorPlaced
		}
		return colorUnplaced
	}
	return viridis[i%len(viridis)]
}

func scaleColor(v, maxValue float64) string {
	if maxValue <= 0 {
		return viridis[0]
	}
	idx := int(v / maxValue * float64(len(viridis)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(viridis) {
		idx = len(viridis) - 1
	}
	return viridis[idx]
}
