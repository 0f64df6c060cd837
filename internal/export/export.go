// Package export renders the site into a directory of static files that any
// web host can serve without the Go process.
package export

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MaroIng01/portfolio/internal/apperr"
	"github.com/MaroIng01/portfolio/internal/config"
	"github.com/MaroIng01/portfolio/internal/locale"
	"github.com/MaroIng01/portfolio/internal/logger"
	"github.com/MaroIng01/portfolio/internal/media"
	"github.com/MaroIng01/portfolio/internal/site"
	"github.com/MaroIng01/portfolio/internal/web"
)

// Asset directories copied from ASSETS_DIR.
var assetDirs = []string{"images", "cv", "music"}

type snapshot struct {
	file  string
	scene string
}

var snapshots = []snapshot{
	{file: "background.svg", scene: web.BackgroundScene},
	{file: "background-" + web.WelcomeScene + ".svg", scene: web.WelcomeScene},
}

// Report lists what a build wrote, relative to the output directory.
type Report struct {
	Pages     []string
	Snapshots []string
	Assets    []string
}

// Build replaces out with the exported site: one page per language under
// out/<lang>/, the default language again at out/index.html, background
// snapshots, the embedded static tree and the asset directories.
func Build(ctx context.Context, cfg config.Config, out string) (Report, error) {
	const op = "export.build"
	log := logger.L()

	if err := checkOut(out, cfg.AssetsDir); err != nil {
		return Report{}, err
	}
	catalog, err := locale.Load(cfg.DefaultLang)
	if err != nil {
		return Report{}, err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return Report{}, err
	}

	if err := os.RemoveAll(out); err != nil {
		return Report{}, &apperr.OpError{Op: op, Kind: apperr.KindExecution, Path: out, Err: err}
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return Report{}, &apperr.OpError{Op: op, Kind: apperr.KindExecution, Path: out, Err: err}
	}

	opts := site.Options{
		Static:      true,
		Background:  web.BackgroundScene,
		SnapshotURL: "/" + snapshots[0].file,
		WelcomeURL:  "/" + snapshots[1].file,
		MusicURL:    "/music/" + web.MusicFile,
	}
	if t, err := media.Probe(filepath.Join(cfg.AssetsDir, "music", web.MusicFile)); err == nil {
		opts.MusicDuration = t.Duration
	} else {
		log.Warn("export.music", "error", err)
	}

	var rep Report
	for _, lang := range catalog.Languages() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		var buf bytes.Buffer
		if err := web.RenderPage(&buf, tmpl, site.NewPage(catalog, lang, opts)); err != nil {
			return rep, err
		}
		targets := []string{filepath.Join(lang, "index.html")}
		if lang == catalog.Default() {
			targets = append(targets, "index.html")
		}
		for _, rel := range targets {
			if err := writeFile(filepath.Join(out, rel), buf.Bytes()); err != nil {
				return rep, err
			}
			rep.Pages = append(rep.Pages, rel)
		}
	}

	for _, snap := range snapshots {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		var buf bytes.Buffer
		err := web.WriteSnapshot(&buf, web.Snapshot{
			Scene:  snap.scene,
			Width:  1920,
			Height: 1080,
			Seed:   1,
			Frames: 120,
			FPS:    cfg.ParticleFPS,
		})
		if err != nil {
			return rep, err
		}
		if err := writeFile(filepath.Join(out, snap.file), buf.Bytes()); err != nil {
			return rep, err
		}
		rep.Snapshots = append(rep.Snapshots, snap.file)
	}

	if err := os.CopyFS(filepath.Join(out, "static"), web.Static()); err != nil {
		return rep, &apperr.OpError{Op: op, Kind: apperr.KindExecution, Path: "static", Err: err}
	}
	rep.Assets = append(rep.Assets, "static")

	for _, dir := range assetDirs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		src := filepath.Join(cfg.AssetsDir, dir)
		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			log.Warn("export.assets.missing", "dir", src)
			continue
		}
		if err := os.CopyFS(filepath.Join(out, dir), os.DirFS(src)); err != nil {
			return rep, &apperr.OpError{Op: op, Kind: apperr.KindExecution, Path: src, Err: err}
		}
		rep.Assets = append(rep.Assets, dir)
	}

	log.Info("export.done", "out", out, "pages", len(rep.Pages), "assets", rep.Assets)
	return rep, nil
}

// checkOut refuses output directories whose replacement would delete the
// working directory, the filesystem root or the asset sources, and output
// directories nested inside the asset sources.
func checkOut(out, assets string) error {
	const op = "export.check"
	if strings.TrimSpace(out) == "" {
		return apperr.New(op, apperr.KindInvalidInput, "output directory is empty")
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return &apperr.OpError{Op: op, Kind: apperr.KindInvalidInput, Path: out, Err: err}
	}
	if abs == filepath.Dir(abs) {
		return apperr.New(op, apperr.KindInvalidInput, "refusing to replace the filesystem root")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return &apperr.OpError{Op: op, Kind: apperr.KindExecution, Err: err}
	}
	if within(cwd, abs) {
		return apperr.New(op, apperr.KindInvalidInput, "refusing to replace %s, it contains the working directory", abs)
	}

	if strings.TrimSpace(assets) == "" {
		return nil
	}
	src, err := filepath.Abs(assets)
	if err != nil {
		return &apperr.OpError{Op: op, Kind: apperr.KindInvalidInput, Path: assets, Err: err}
	}
	if within(src, abs) || within(abs, src) {
		return apperr.New(op, apperr.KindInvalidInput, "refusing to export to %s, it overlaps the asset directory %s", abs, src)
	}
	return nil
}

// within reports whether path is dir or lies below it. Both are absolute.
func within(path, dir string) bool {
	sep := string(filepath.Separator)
	return path == dir || strings.HasPrefix(path+sep, strings.TrimSuffix(dir, sep)+sep)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &apperr.OpError{Op: "export.write", Kind: apperr.KindExecution, Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &apperr.OpError{Op: "export.write", Kind: apperr.KindExecution, Path: path, Err: err}
	}
	return nil
}
