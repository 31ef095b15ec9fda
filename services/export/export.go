// Package export renders dashboard pages to PDF through headless Chromium.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medportal/config"
	"medportal/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Routes are the dashboard pages the exporter knows how to render.
var Routes = []string{"/login", "/calendario", "/documentos", "/conta", "/gestao-perfil"}

// RouteResult reports the outcome of one page in a bulk export.
type RouteResult struct {
	Route   string `json:"route"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	PDFSize int    `json:"pdfSize,omitempty"`
}

// ExportService renders dashboard routes to PDF.
type ExportService interface {
	ExportPage(ctx context.Context, route string) ([]byte, error)
	ExportAll(ctx context.Context) []RouteResult
}

// DefaultExportService is the production implementation.
type DefaultExportService struct {
	BaseURL string
	Timeout time.Duration
}

func NewDefaultExportService() *DefaultExportService {
	return &DefaultExportService{
		BaseURL: strings.TrimRight(config.AppConfig.DashboardBaseURL, "/"),
		Timeout: defaultTimeout,
	}
}

// ExportPage navigates to the route, waits for the page to settle, and
// returns an A4 portrait PDF.
func (s *DefaultExportService) ExportPage(ctx context.Context, route string) ([]byte, error) {
	if !validRoute(route) {
		return nil, fmt.Errorf("unknown route %q", route)
	}
	if s.BaseURL == "" {
		return nil, fmt.Errorf("dashboard base URL is not configured")
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, timeout)
	defer timeoutCancel()

	var pdf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(s.BaseURL + route),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// Small extra delay to allow final paints.
		chromedp.Sleep(500 * time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithLandscape(false).
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("export: chromedp run failed for %s: %w", route, err)
	}
	return pdf, nil
}

// ExportAll renders every known route, best effort. Failures are reported
// per route, not fatal.
func (s *DefaultExportService) ExportAll(ctx context.Context) []RouteResult {
	results := make([]RouteResult, 0, len(Routes))
	for _, route := range Routes {
		pdf, err := s.ExportPage(ctx, route)
		if err != nil {
			utils.GetLogger().Warn("ExportAll: route failed", zap.String("route", route), zap.Error(err))
			results = append(results, RouteResult{Route: route, OK: false, Error: err.Error()})
			continue
		}
		results = append(results, RouteResult{Route: route, OK: true, PDFSize: len(pdf)})
	}
	return results
}

func validRoute(route string) bool {
	for _, r := range Routes {
		if r == route {
			return true
		}
	}
	return false
}
