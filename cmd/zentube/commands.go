package main

import (
	"fmt"
	"io"
	"strings"

	"zentube/internal/domain"
	"zentube/internal/service/feed"

	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}
	var pages int

	root := &cobra.Command{
		Use:           "zentube",
		Short:         "A distraction-free YouTube catalog browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level written to stderr")
	root.PersistentFlags().IntVar(&pages, "pages", 1, "number of pages to load")

	runFeed := func(cmd *cobra.Command, heading string, req domain.FeedRequest) error {
		defer a.close()

		ctx := cmd.Context()
		services, log, err := a.services(ctx)
		if err != nil {
			return err
		}

		session := feed.NewSession(services.Feed, log)
		if err := session.Load(ctx, req); err != nil {
			return err
		}
		for i := 1; i < pages; i++ {
			more, err := session.LoadMore(ctx)
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}

		newRenderer(cmd.OutOrStdout()).feed(heading, session.Snapshot().Page)
		return nil
	}

	var order string

	trending := &cobra.Command{
		Use:   "trending",
		Short: "Show the most popular videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFeed(cmd, "Trending", domain.FeedRequest{Mode: domain.FeedModeTrending})
		},
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search videos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runFeed(cmd, fmt.Sprintf("Search: %s", query), domain.FeedRequest{
				Mode:  domain.FeedModeSearch,
				Query: query,
				Order: order,
			})
		},
	}
	search.Flags().StringVar(&order, "order", "", "relevance, date, viewCount or rating")

	browse := &cobra.Command{
		Use:   "browse",
		Short: "Browse without a query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFeed(cmd, "Browse", domain.FeedRequest{Mode: domain.FeedModeSearch, Order: order})
		},
	}
	browse.Flags().StringVar(&order, "order", "", "relevance, date, viewCount or rating")

	category := &cobra.Command{
		Use:   "category <id>",
		Short: "Show popular videos in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			heading := "Category " + args[0]
			for _, c := range domain.Categories {
				if c.ID == args[0] {
					heading = c.Name
				}
			}
			return runFeed(cmd, heading, domain.FeedRequest{Mode: domain.FeedModeCategory, CategoryID: args[0]})
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List explorable categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			newRenderer(cmd.OutOrStdout()).categories(domain.Categories)
		},
	}

	root.AddCommand(
		newSetupCmd(a),
		trending,
		search,
		browse,
		category,
		categories,
		newHistoryCmd(a, runFeed),
		newWatchCmd(a),
	)
	return root
}

func newSetupCmd(a *app) *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "setup [api-key]",
		Short: "Show, save or clear the YouTube API key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			ctx := cmd.Context()
			services, _, err := a.services(ctx)
			if err != nil {
				return err
			}
			creds := services.Credential

			switch {
			case clearAll:
				if err := creds.Clear(ctx); err != nil {
					return err
				}
			case len(args) == 1:
				if err := creds.Set(ctx, args[0]); err != nil {
					return err
				}
			}

			newRenderer(cmd.OutOrStdout()).setupStatus(creds.IsConfigured(ctx))
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "remove the saved key")
	return cmd
}

func newHistoryCmd(a *app, runFeed func(*cobra.Command, string, domain.FeedRequest) error) *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recently watched videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !clearAll {
				return runFeed(cmd, "History", domain.FeedRequest{Mode: domain.FeedModeHistory})
			}

			defer a.close()
			services, _, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			if err := services.History.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "remove all entries")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <video-id>",
		Short: "Show a video with related videos and record it in the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			ctx := cmd.Context()
			services, _, err := a.services(ctx)
			if err != nil {
				return err
			}

			session, err := services.Watch.Open(ctx, args[0])
			if err != nil {
				return err
			}

			newRenderer(cmd.OutOrStdout()).watch(session)
			return nil
		},
	}
}
