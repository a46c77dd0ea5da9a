package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ListingScraper/internal/app"
	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/infra/document"
	"github.com/ListingScraper/internal/infra/extractor"
	"github.com/ListingScraper/internal/infra/fetcher"
	"github.com/ListingScraper/internal/infra/pagination"
	"github.com/ListingScraper/pkg/logging"
	"github.com/spf13/cobra"
)

var errScrapeFailed = errors.New("scrape failed")

type options struct {
	page       int
	baseURL    string
	publicURL  string
	layoutFile string
	timeout    time.Duration
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errScrapeFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "scrape",
		Short:         "Scrape one listing page and print the result as JSON",
		Long:          `Fetches one archive page, extracts its listing entries and adjacent page links, and prints the result document.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "archive page number")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "https://haxnode.net/", "URL of the first archive page")
	cmd.Flags().StringVar(&opts.publicURL, "public-url", "http://localhost:8080/", "URL used to build the ?page= links")
	cmd.Flags().StringVar(&opts.layoutFile, "layout-file", "", "YAML layout file (default: built-in post-inner layout)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall timeout")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger := logging.NewLogger(cmd.ErrOrStderr(), opts.logLevel, "text")

	layout := extractor.PostInnerLayout()
	if opts.layoutFile != "" {
		var err error
		if layout, err = extractor.LoadLayout(opts.layoutFile); err != nil {
			return err
		}
	}

	reqCtx, err := requestContextFromURL(opts.publicURL)
	if err != nil {
		return err
	}

	ex, err := extractor.NewExtractor(layout)
	if err != nil {
		return err
	}

	baseURL := opts.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	svc := app.NewListingService(
		baseURL,
		fetcher.NewHTTPFetcher(fetcher.Options{}),
		document.NewParser(),
		ex,
		pagination.NewResolver(layout.NextSelector, layout.PrevSelector),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	logger.Debug("Scraping", "base_url", baseURL, "page", opts.page)
	page := opts.page
	if page < 1 {
		page = 1
	}
	result := svc.Scrape(ctx, page, reqCtx)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if !result.Success {
		logger.Error("Scrape failed", "error", result.Error)
		return errScrapeFailed
	}
	return nil
}

// requestContextFromURL splits the public URL of the service into the parts
// used to build query URLs.
func requestContextFromURL(raw string) (domain.RequestContext, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return domain.RequestContext{}, fmt.Errorf("invalid public URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return domain.RequestContext{}, fmt.Errorf("public URL must be http or https: %s", raw)
	}
	if u.Host == "" {
		return domain.RequestContext{}, fmt.Errorf("public URL has no host: %s", raw)
	}

	return domain.RequestContext{Scheme: u.Scheme, Host: u.Host, Path: u.Path}, nil
}
