package main

import (
	"fmt"

	"github.com/fwojciec/webcite"
	"github.com/fwojciec/webcite/cite"
	"github.com/fwojciec/webcite/goquery"
	webcitehttp "github.com/fwojciec/webcite/http"
	webciteslog "github.com/fwojciec/webcite/slog"
	"golang.org/x/sync/errgroup"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	service := deps.Service
	if service == nil {
		service = c.buildService(deps)
	}

	// Requests are independent, so URLs fan out concurrently; output
	// stays in input order.
	records := make([]string, len(c.URLs))
	errs := make([]error, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, u := range c.URLs {
		i, u := i, u
		g.Go(func() error {
			records[i], errs[i] = service.Generate(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	var failed error
	for i, u := range c.URLs {
		if errs[i] != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", u, webcite.ErrorMessage(errs[i]))
			if failed == nil {
				failed = errs[i]
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, records[i])
	}

	return failed
}

// buildService wires the production cascade from command flags.
func (c *GetCmd) buildService(deps *Dependencies) webcite.CitationService {
	opts := []webcitehttp.Option{webcitehttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		opts = append(opts, webcitehttp.WithUserAgent(c.UserAgent))
	}
	client := webcitehttp.NewClient(opts...)

	resolver := webciteslog.NewLoggingResolver(webcitehttp.NewResolver(client), deps.Logger)
	generator := cite.NewGenerator(
		resolver,
		webcitehttp.NewFetcher(client),
		goquery.NewStructuredData(),
		goquery.NewMetaTags(),
	)

	return webciteslog.NewLoggingService(generator, deps.Logger)
}
