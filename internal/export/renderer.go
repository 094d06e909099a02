package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer turns an HTML page into a binary artifact.
type Renderer interface {
	PDF(ctx context.Context, html string) ([]byte, error)
	JPEG(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer drives a headless Chrome instance. CHROME_PATH overrides
// the binary location when set.
type ChromeRenderer struct {
	Timeout time.Duration
}

// NewChromeRenderer constructs a ChromeRenderer with a 60s render timeout.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{Timeout: 60 * time.Second}
}

// PDF prints the page to an A4 PDF with backgrounds.
func (r *ChromeRenderer) PDF(ctx context.Context, html string) ([]byte, error) {
	var out []byte
	err := r.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		// A4 in inches.
		out, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(8.27).
			WithPaperHeight(11.69).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return err
	}))
	return out, err
}

// JPEG captures a full-page screenshot.
func (r *ChromeRenderer) JPEG(ctx context.Context, html string) ([]byte, error) {
	var out []byte
	err := r.run(ctx, html, chromedp.FullScreenshot(&out, 90))
	return out, err
}

func (r *ChromeRenderer) run(ctx context.Context, html string, capture chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	// Navigating a file URL avoids data-URI size limits for large pages.
	tmpDir, err := os.MkdirTemp("", "resume-render-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return err
	}

	return chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		capture,
	)
}

var _ Renderer = (*ChromeRenderer)(nil)
