package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const engineTimeout = 60 * time.Second

// Engine turns an HTML page into PDF bytes.
type Engine interface {
	PDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeEngine drives a headless Chrome instance through the DevTools
// protocol. Each call gets its own allocator and browser context so a
// crashed render never poisons later exports; everything is released via
// the deferred cancels on all exit paths.
type ChromeEngine struct {
	// ExecPath overrides the browser binary. Empty means chromedp's
	// default lookup.
	ExecPath string
}

// NewChromeEngine constructs a ChromeEngine, honoring CHROME_PATH when
// execPath is empty.
func NewChromeEngine(execPath string) *ChromeEngine {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	return &ChromeEngine{ExecPath: execPath}
}

func (e *ChromeEngine) PDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, engineTimeout)
	defer cancelRun()

	// Chrome's print pipeline handles file:// navigation more reliably
	// than data URLs for multi-kilobyte documents.
	tmpDir, err := os.MkdirTemp("", "export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		enableLifecycleEvents(),
		chromedp.Navigate("file://"+htmlPath),
		waitNetworkIdle(),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm in inches.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	if len(pdfBuf) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrEngine)
	}
	return pdfBuf, nil
}

// enableLifecycleEvents turns on Page lifecycle notifications so the
// print can be gated on network idle.
func enableLifecycleEvents() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		if err := page.Enable().Do(ctx); err != nil {
			return err
		}
		return page.SetLifecycleEventsEnabled(true).Do(ctx)
	}
}

// waitNetworkIdle blocks until the page reports the networkIdle
// lifecycle event. Body readiness is not enough for client-supplied
// markup: images and webfonts can still be in flight when the DOM is
// parsed, and printing then captures a half-loaded page.
func waitNetworkIdle() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		idle := make(chan struct{})
		lctx, cancel := context.WithCancel(ctx)
		defer cancel()
		chromedp.ListenTarget(lctx, networkIdleListener(func() { close(idle) }))
		select {
		case <-idle:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// networkIdleListener adapts the DevTools event stream to a one-shot
// callback fired on the networkIdle lifecycle event.
func networkIdleListener(done func()) func(ev interface{}) {
	var once sync.Once
	return func(ev interface{}) {
		if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" {
			once.Do(done)
		}
	}
}

var _ Engine = (*ChromeEngine)(nil)
