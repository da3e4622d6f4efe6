package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bench-ai/benchdocs"
)

func runServe() error {
	secret := benchdocs.EnvOr("BENCHDOCS_SESSION_SECRET", "")
	if secret == "" {
		var err error
		secret, err = randomSecret()
		if err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
		log.Println("BENCHDOCS_SESSION_SECRET not set; banner dismissals will not survive a restart")
	}
	secure, _ := strconv.ParseBool(benchdocs.EnvOr("BENCHDOCS_COOKIE_SECURE", "false"))

	app := benchdocs.New(benchdocs.SiteConfig{
		Addr:          benchdocs.EnvOr("BENCHDOCS_ADDR", ":3000"),
		URL:           benchdocs.EnvOr("BENCHDOCS_URL", "http://localhost:3000"),
		SessionSecret: secret,
		CookieSecure:  secure,
	}, benchdocs.Config())
	defer app.Close()

	return app.Start()
}

func runExport(path string) error {
	ctx := context.Background()
	if path == "" {
		return benchdocs.WriteExport(ctx, os.Stdout, benchdocs.Config())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := benchdocs.WriteExport(ctx, f, benchdocs.Config()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "  created %s\n", path)
	return nil
}

func runIcons(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	svg, err := benchdocs.FaviconSVG(context.Background())
	if err != nil {
		return err
	}
	files := map[string][]byte{"favicon.svg": svg}
	for name, kind := range map[string]benchdocs.IconKind{
		"favicon.png": benchdocs.IconFavicon,
		"preview.png": benchdocs.IconPreview,
	} {
		data, err := benchdocs.RenderIcon(kind)
		if err != nil {
			return err
		}
		files[name] = data
	}

	for name, data := range files {
		out := filepath.Join(dir, name)
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("  created %s\n", out)
	}
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
