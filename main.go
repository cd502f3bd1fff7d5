package main

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"

	"github.com/raysh454/posty/internal/api"
	"github.com/raysh454/posty/internal/app"
	"github.com/raysh454/posty/internal/cli"
	"github.com/raysh454/posty/internal/demoserver"
	"github.com/raysh454/posty/internal/logging"
	"github.com/raysh454/posty/internal/model"
	"github.com/raysh454/posty/internal/repository"
	"github.com/raysh454/posty/internal/webclient"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "posty: %v\n", err)
		os.Exit(2)
	}

	cfg, err := app.LoadConfig(args.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "posty: %v\n", err)
		os.Exit(1)
	}
	if args.BaseURL != "" {
		cfg.BaseURL = args.BaseURL
	}

	logger := logging.NewStdoutLogger("posty")

	// With -demo, run against an in-process fixture instead of the real service.
	if args.Demo {
		ds := demoserver.NewDemoServer(cfg.DemoServerCfg, demoserver.NewMemoryStore(), logger)
		ts := httptest.NewServer(ds.Handler())
		defer ts.Close()
		defer ds.Close()
		cfg.BaseURL = ts.URL
	}

	wc, err := webclient.NewWebClient(cfg.WebClientCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "posty: %v\n", err)
		os.Exit(1)
	}
	defer wc.Close()

	pipeline := webclient.NewHeaderClient(wc, cfg.Headers, logger)
	client := api.NewClient(cfg.BaseURL, pipeline, logger)
	repo := repository.NewAPIRepository(client)
	dispatcher := app.NewDispatcher(repo, logger)

	// Observers print each landed result; they stay registered for the whole run.
	dispatcher.PostCell.Observe(func(r api.CallResult[model.Post]) {
		printResult("post", r, func(p model.Post) string {
			return fmt.Sprintf("#%d %q (user %d)", p.ID, p.Title, p.UserID)
		})
	})
	dispatcher.PostsCell.Observe(func(r api.CallResult[[]model.Post]) {
		printResult("posts", r, func(ps []model.Post) string {
			return fmt.Sprintf("%d posts", len(ps))
		})
	})
	dispatcher.CreatedCell.Observe(func(r api.CallResult[model.Post]) {
		printResult("created", r, func(p model.Post) string {
			return fmt.Sprintf("#%d %q (user %d)", p.ID, p.Title, p.UserID)
		})
	})

	ctx := context.Background()
	opts := api.Options{}
	if args.Sort != "" {
		opts["_sort"] = args.Sort
	}
	if args.Order != "" {
		opts["_order"] = args.Order
	}

	run := func(op string) {
		switch op {
		case "fetch-default":
			dispatcher.FetchDefault(ctx)
		case "fetch-by-id":
			dispatcher.FetchByID(ctx, args.ID)
		case "fetch-by-owner":
			dispatcher.FetchByOwner(ctx, args.UserID)
		case "fetch-by-owner-filtered":
			dispatcher.FetchByOwnerFiltered(ctx, args.UserID, opts)
		case "create":
			dispatcher.Create(ctx, model.Post{UserID: args.UserID, Title: args.Title, Body: args.Body})
		case "create-form":
			dispatcher.CreateForm(ctx, args.UserID, 0, args.Title, args.Body)
		}
	}

	if args.Op == "all" {
		for _, op := range []string{
			"fetch-default", "fetch-by-id", "fetch-by-owner",
			"fetch-by-owner-filtered", "create", "create-form",
		} {
			run(op)
		}
	} else {
		run(args.Op)
	}

	dispatcher.Wait()
}

// printResult branches on the outcome tag; all three cases are handled here
// so a transport fault never goes unreported.
func printResult[T any](label string, r api.CallResult[T], describe func(T) string) {
	switch r.Outcome {
	case api.OutcomeSuccess:
		fmt.Printf("%s: %s (status %d)\n", label, describe(r.Body), r.StatusCode)
	case api.OutcomeFailure:
		fmt.Printf("%s: request failed with status %d\n", label, r.StatusCode)
	case api.OutcomeTransportError:
		fmt.Printf("%s: transport error: %v\n", label, r.Err)
	}
}
