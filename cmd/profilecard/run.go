package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/profilecard/internal/card"
	"github.com/akyairhashvil/profilecard/internal/config"
	"github.com/akyairhashvil/profilecard/internal/fetch"
	"github.com/akyairhashvil/profilecard/internal/progress"
	"github.com/akyairhashvil/profilecard/internal/source"
	"github.com/akyairhashvil/profilecard/internal/util"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func run(ctx context.Context, opts options, logger *zap.Logger, stdout, stderr io.Writer) error {
	p, path, err := config.Resolve(opts.configPath, util.ConfigPath(config.AppName, config.ConfigFileName))
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("loaded profile", zap.String("path", path))
	}
	if opts.theme != "" {
		if _, ok := card.Themes[opts.theme]; !ok {
			return fmt.Errorf("unknown theme %q", opts.theme)
		}
		p.Theme = opts.theme
	}

	sources, err := source.FromProfile(p)
	if err != nil {
		return err
	}
	client := fetch.New(fetch.WithTimeout(opts.timeout), fetch.WithLogger(logger))

	var display *progress.Display
	if opts.progress && isTerminal(stderr) {
		display = progress.Start(stderr, len(sources))
	}
	values := fetchAll(ctx, client, sources, logger, display)

	c := card.Assemble(p, values)
	theme := card.ThemeByName(p.Theme)
	r := card.NewRenderer(p.Width, theme)
	if width, ok := terminalWidth(stdout); ok && width < p.Width+2 {
		logger.Debug("terminal narrower than card",
			zap.Int("terminal", width),
			zap.Int("card", p.Width+2))
	}
	if _, err := io.WriteString(stdout, r.Text(c)); err != nil {
		return fmt.Errorf("write card: %w", err)
	}

	if opts.pdfPath != "" {
		if err := writePDF(util.ExpandPath(opts.pdfPath), c, theme); err != nil {
			return err
		}
		logger.Debug("wrote pdf", zap.String("path", opts.pdfPath))
	}
	return nil
}

// fetchAll settles every source. The display, if any, has exited before this
// returns, so it cannot draw over the card.
func fetchAll(ctx context.Context, g source.Getter, sources []source.Source, logger *zap.Logger, display *progress.Display) []string {
	if display == nil {
		return source.FetchAll(ctx, g, sources, logger, nil)
	}
	values := source.FetchAll(ctx, g, sources, logger, display.Report)
	util.LogError(logger, "progress display failed", display.Stop())
	return values
}

func writePDF(path string, c card.Card, theme card.Theme) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pdf: %w", err)
	}
	if err := card.WritePDF(f, c, theme); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) (int, bool) {
	if !isTerminal(w) {
		return 0, false
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return 0, false
	}
	return width, true
}
