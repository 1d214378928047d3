package cmd

import (
	"context"

	"threadline/internal/api"
	"threadline/internal/cmd/flags"
	"threadline/internal/core"
	"threadline/internal/feed"
	"threadline/internal/identity"
	"threadline/internal/interactions"
	"threadline/internal/invalidation"
	"threadline/internal/metrics"
	"threadline/internal/nats"
	"threadline/internal/persistence"
	"threadline/internal/persistence/likes"
	"threadline/internal/persistence/notifications"
	"threadline/internal/persistence/posts"
	"threadline/internal/persistence/users"
	"threadline/internal/posting"
	"threadline/pkg/ident"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var serverCmd = &cli.Command{
	Name:  "server",
	Usage: "Run the API, serving the feed and the mutation endpoints",
	Flags: []cli.Flag{
		flags.DatabaseURL,
		flags.NATSUrl,
		flags.NATSInit,
		flags.ListenAddr,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		identCfg, err := ident.ConfigFromEnv()
		if err != nil {
			return err
		}

		return run(ctx, c,
			pal.Provide[core.DB](&persistence.DB{}),
			pal.Provide[core.UserRepository](&users.Repository{}),
			pal.Provide[core.PostRepository](&posts.Repository{}),
			pal.Provide[core.LikeRepository](&likes.Repository{}),
			pal.Provide[core.NotificationRepository](&notifications.Repository{}),
			pal.Provide[identity.Provider](ident.NewClient(identCfg)),
			pal.Provide[core.IdentityResolver](&identity.Resolver{}),
			pal.Provide[core.CacheInvalidator](&invalidation.Invalidator{}),
			pal.Provide[core.PostingService](&posting.Service{}),
			pal.Provide[core.InteractionService](&interactions.Service{}),
			pal.Provide[core.FeedService](&feed.Service{}),
			pal.Provide[core.MetricsServer](&metrics.HTTPServer{}),
			pal.Provide[core.MetricsCollector](&metrics.Collector{}),
			pal.Provide(&api.Server{}),
			nats.Provide(),
		)
	},
}
