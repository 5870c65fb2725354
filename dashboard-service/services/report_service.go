package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
	sharedmodels "github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-pdf/fpdf"
)

const mirrorTimeout = 15 * time.Second

// ReportMirror receives a copy of every report written to disk.
type ReportMirror interface {
	Upload(ctx context.Context, key string, body []byte) error
}

type s3Mirror struct {
	client *s3.Client
	bucket string
}

func NewS3Mirror(client *s3.Client, bucket string) ReportMirror {
	return &s3Mirror{client: client, bucket: bucket}
}

func (m *s3Mirror) Upload(ctx context.Context, key string, body []byte) error {
	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to %s: %w", key, m.bucket, err)
	}
	return nil
}

type ReportService interface {
	Export(ctx context.Context, record sharedmodels.StudentRecord, result sharedmodels.PredictionResult) (models.ReportStatus, error)
	Render(record sharedmodels.StudentRecord, result sharedmodels.PredictionResult) ([]byte, error)
	// Latest returns the path of the last written report, or os.ErrNotExist.
	Latest() (string, error)
}

type ReportOptions struct {
	Path   string
	Mirror ReportMirror
	// Compress deflates page streams. Off makes the text greppable.
	Compress bool
}

type reportService struct {
	path     string
	mirror   ReportMirror
	compress bool
}

func NewReportService(opts ReportOptions) ReportService {
	return &reportService{
		path:     opts.Path,
		mirror:   opts.Mirror,
		compress: opts.Compress,
	}
}

// Render lays out the one page report.
func (s *reportService) Render(record sharedmodels.StudentRecord, result sharedmodels.PredictionResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(s.compress)
	pdf.SetTitle("Student Placement Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Student Placement Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, line := range reportLines(record, result) {
		pdf.CellFormat(190, 10, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportExport, err)
	}
	return buf.Bytes(), nil
}

func reportLines(record sharedmodels.StudentRecord, result sharedmodels.PredictionResult) []string {
	return []string{
		"CGPA: " + formatCGPA(record.CGPA),
		"Branch: " + record.Branch,
		fmt.Sprintf("Communication: %d/10", record.Communication),
		"Internship: " + record.Internship,
		"Prediction: " + result.DisplayLabel(),
	}
}

// formatCGPA always keeps one decimal place, so 8 prints as 8.0.
func formatCGPA(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Export renders the report and replaces the file at the configured path.
// The previous report stays intact if anything fails before the rename.
func (s *reportService) Export(ctx context.Context, record sharedmodels.StudentRecord, result sharedmodels.PredictionResult) (models.ReportStatus, error) {
	status := models.ReportStatus{Path: s.path}

	data, err := s.Render(record, result)
	if err != nil {
		status.Error = err.Error()
		return status, err
	}
	if err := utils.WriteFileAtomic(s.path, data, 0o644); err != nil {
		err = fmt.Errorf("%w: %v", ErrReportExport, err)
		status.Error = err.Error()
		return status, err
	}
	status.Written = true
	log.Printf("Report saved as %s (%d bytes)", s.path, len(data))

	if s.mirror != nil {
		mirrorCtx, cancel := context.WithTimeout(ctx, mirrorTimeout)
		defer cancel()
		key := mirrorKey(s.path, time.Now())
		if err := s.mirror.Upload(mirrorCtx, key, data); err != nil {
			log.Printf("[WARN] Report mirror failed: %v", err)
		} else {
			status.Mirrored = true
		}
	}
	return status, nil
}

func (s *reportService) Latest() (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", s.path, os.ErrNotExist)
	}
	return s.path, nil
}

// mirrorKey files reports by day so uploads never overwrite each other.
func mirrorKey(path string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf("reports/%s/%s-%d.pdf", now.UTC().Format("2006-01-02"), base, now.UnixNano())
}

