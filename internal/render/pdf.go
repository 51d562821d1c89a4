package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single PDF print job.
// Requires Chrome/Chromium to be installed on the system.
const DefaultTimeout = 60 * time.Second

// A4 paper size in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Renderer turns CV text into PDF files under OutputDir.
type Renderer struct {
	OutputDir string
	Timeout   time.Duration
	Verbose   bool
}

// NewRenderer creates a Renderer writing into outputDir.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		OutputDir: outputDir,
		Timeout:   DefaultTimeout,
	}
}

// RenderPDF converts Markdown CV text to a styled PDF and returns the file
// path. The source HTML is staged as a temp file so the browser can load it
// with a plain file:// navigation.
func (r *Renderer) RenderPDF(ctx context.Context, markdownText string) (string, error) {
	docHTML, err := BuildDocument(markdownText)
	if err != nil {
		return "", err
	}

	htmlFile, err := os.CreateTemp("", "cv-*.html")
	if err != nil {
		return "", fmt.Errorf("failed to stage HTML: %w", err)
	}
	defer os.Remove(htmlFile.Name())

	if _, err := htmlFile.WriteString(docHTML); err != nil {
		htmlFile.Close()
		return "", fmt.Errorf("failed to stage HTML: %w", err)
	}
	if err := htmlFile.Close(); err != nil {
		return "", fmt.Errorf("failed to stage HTML: %w", err)
	}

	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	outputPath := filepath.Join(r.OutputDir, fmt.Sprintf("generated_cv_%s.pdf", time.Now().Format("20060102_150405")))

	pdfData, err := r.printToPDF(ctx, "file://"+htmlFile.Name())
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, pdfData, 0o644); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	if r.Verbose {
		log.Printf("[RENDER] Wrote PDF: %s (%d bytes)", outputPath, len(pdfData))
	}

	return outputPath, nil
}

// printToPDF loads the staged page in a headless browser and prints it.
func (r *Renderer) printToPDF(ctx context.Context, url string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("PDF rendering failed: %w", err)
	}

	return pdfData, nil
}
