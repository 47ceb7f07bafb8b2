package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/export"
)

type reportStore interface {
	ClassRanking(className string) []models.RankedStudent
	ClassStatistics(className string) models.ClassStatistics
	Settings() models.Settings
}

// Report formats accepted by ClassReport.
const (
	ReportFormatCSV  = "csv"
	ReportFormatPDF  = "pdf"
	ReportFormatXLSX = "xlsx"
)

var reportHeaders = []string{"Peringkat", "ID Siswa", "Nama", "Rata-rata", "Jumlah Nilai", "Predikat"}

// ReportConfig tunes report rendering.
type ReportConfig struct {
	Enabled bool
}

// ReportFile is a rendered document ready for download.
type ReportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ReportService renders class ranking reports.
type ReportService struct {
	store     reportStore
	renderers map[string]export.Renderer
	cfg       ReportConfig
	logger    *zap.Logger
}

// NewReportService constructs the report service. Without explicit renderers
// CSV, PDF and XLSX are available.
func NewReportService(store reportStore, cfg ReportConfig, logger *zap.Logger, renderers ...export.Renderer) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(renderers) == 0 {
		renderers = []export.Renderer{export.NewCSVExporter(), export.NewPDFExporter(), export.NewXLSXExporter()}
	}
	byFormat := make(map[string]export.Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Extension()] = r
	}
	return &ReportService{store: store, renderers: byFormat, cfg: cfg, logger: logger}
}

// ClassReport renders the ranking and statistics of a class in format.
func (s *ReportService) ClassReport(ctx context.Context, className, format string) (*ReportFile, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrFeatureDisabled, "reports are disabled")
	}
	if strings.TrimSpace(className) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class is required")
	}
	if format == "" {
		format = ReportFormatCSV
	}
	renderer, ok := s.renderers[strings.ToLower(format)]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
	}

	ranking := s.store.ClassRanking(className)
	if len(ranking) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class has no active students")
	}

	start := time.Now()
	dataset := s.buildDataset(className, ranking, s.store.ClassStatistics(className), s.store.Settings())
	payload, err := renderer.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}
	s.logger.Info("class report rendered",
		zap.String("class", className),
		zap.String("format", renderer.Extension()),
		zap.Int("bytes", len(payload)),
		zap.Duration("duration", time.Since(start)),
	)

	return &ReportFile{
		Filename:    fmt.Sprintf("laporan-%s.%s", sanitizeFilename(className), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Payload:     payload,
	}, nil
}

func (s *ReportService) buildDataset(className string, ranking []models.RankedStudent, stats models.ClassStatistics, settings models.Settings) export.Dataset {
	rows := make([]map[string]string, 0, len(ranking))
	for _, r := range ranking {
		rows = append(rows, map[string]string{
			"Peringkat":    strconv.Itoa(r.Rank),
			"ID Siswa":     r.StudentID,
			"Nama":         r.Name,
			"Rata-rata":    formatScore(r.Average),
			"Jumlah Nilai": strconv.Itoa(r.GradeCount),
			"Predikat":     string(r.Predicate),
		})
	}

	summary := []string{
		fmt.Sprintf("Tahun ajaran %s, semester %d", settings.AcademicYear, settings.Semester),
		fmt.Sprintf("Jumlah siswa: %d, jumlah nilai: %d", stats.TotalStudents, stats.TotalGrades),
		fmt.Sprintf("Rata-rata kelas: %s", formatScore(stats.AverageGrade)),
	}
	if stats.TotalGrades > 0 {
		summary = append(summary,
			fmt.Sprintf("Nilai tertinggi: %s, terendah: %s", formatScore(stats.HighestGrade), formatScore(stats.LowestGrade)))
		parts := make([]string, 0, len(stats.GradeDistribution))
		for _, letter := range models.Letters() {
			parts = append(parts, fmt.Sprintf("%s %d", letter, stats.GradeDistribution[letter]))
		}
		summary = append(summary, "Distribusi: "+strings.Join(parts, ", "))
	}

	return export.Dataset{
		Title:   fmt.Sprintf("%s - Laporan Kelas %s", settings.SchoolName, className),
		Headers: reportHeaders,
		Rows:    rows,
		Summary: summary,
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func sanitizeFilename(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
