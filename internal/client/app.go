package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/service"
	"github.com/MKhiriev/go-rest-demo/models"
)

// App runs the demo pass and prints its results.
type App struct {
	demo   service.DemoService
	out    io.Writer
	styles styles
	logger *logger.Logger
}

func NewApp(demo service.DemoService, out io.Writer, logger *logger.Logger) (*App, error) {
	if demo == nil {
		return nil, errNoDemoService
	}
	if out == nil {
		return nil, errNoOutput
	}

	return &App{
		demo:   demo,
		out:    out,
		styles: newStyles(out),
		logger: logger,
	}, nil
}

// Run prints every call result and returns ErrCallsFailed, wrapped with the
// failure count, when at least one call failed.
func (a *App) Run(ctx context.Context) error {
	results := a.demo.Run(ctx)

	fmt.Fprintln(a.out, a.styles.title.Render("go-rest-demo"))
	fmt.Fprintln(a.out)

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
		fmt.Fprintln(a.out, a.renderResult(result))
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.styles.summary.Render(fmt.Sprintf("%d calls, %d failed", len(results), failed)))

	a.logger.Info().Int("calls", len(results)).Int("failed", failed).Msg("demo pass finished")

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCallsFailed, failed, len(results))
	}
	return nil
}

func (a *App) renderResult(result models.CallResult) string {
	var b strings.Builder

	status := a.styles.ok.Render("ok  ")
	if result.Failed() {
		status = a.styles.failed.Render("FAIL")
	}

	b.WriteString(status)
	b.WriteString(" ")
	b.WriteString(result.Name)
	b.WriteString(" ")
	b.WriteString(a.styles.endpoint.Render(result.Method + " " + result.Path))
	if result.Duration > 0 {
		b.WriteString(" ")
		b.WriteString(a.styles.help.Render(result.Duration.String()))
	}

	body := result.Output
	if result.Failed() {
		body = result.Err.Error()
	}
	if body != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.output.Render(body))
	}

	return b.String()
}
