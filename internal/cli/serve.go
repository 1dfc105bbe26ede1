package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jebreimo/HexPic/pkg/cache"
	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/pipeline"
	"github.com/jebreimo/HexPic/pkg/server"
)

// keyPrefix namespaces server cache keys in a shared Redis.
const keyPrefix = appName + ":"

// serveCommand creates the serve command for the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	flags := newOptionFlags()
	var (
		addr     string
		redisURL string
		noCache  bool
		maxBody  int64
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve renders over HTTP",
		Long: `Serve the render API over HTTP.

Render flags set the defaults each request starts from; requests override
them with query parameters. Renders are cached in Redis when --redis is
given, otherwise in the local cache directory.`,
		Example: `  hexpic serve --addr :8080
  hexpic serve --redis redis://localhost:6379/0 --fontsize 14
  curl --data-binary @firmware.bin 'localhost:8080/v1/render?address=0x1000&fade_in=2' > out.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := flags.resolve(cmd, c.configPath)
			if err != nil {
				return err
			}
			return c.runServe(cmd, defaults, addr, redisURL, noCache, maxBody, timeout)
		},
	}

	flags.addLayout(cmd.Flags())
	flags.addOutput(cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the shared render cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBody, "request body limit in bytes")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request time limit")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, defaults pipeline.Options, addr, redisURL string, noCache bool, maxBody int64, timeout time.Duration) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := defaults.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var (
		store cache.Cache
		err   error
	)
	switch {
	case noCache:
		store = cache.NewNullCache()
	case redisURL != "":
		if err := errors.ValidateRedisURL(redisURL); err != nil {
			return err
		}
		store, err = cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return err
		}
		logger.Info("using redis cache")
	default:
		store, err = newCache(false)
		if err != nil {
			return err
		}
	}

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), keyPrefix)
	runner := pipeline.NewRunner(store, keyer, logger)
	defer runner.Close()

	srv := server.New(runner, logger,
		server.WithDefaults(defaults),
		server.WithMaxBody(maxBody),
		server.WithTimeout(timeout),
	)
	printInfo("Serving on %s", StyleLink.Render(addr))
	printNextStep("Try", "curl --data-binary @file.bin "+displayURL(addr)+"/v1/render > out.png")
	return srv.ListenAndServe(ctx, addr)
}

// displayURL turns a listen address such as ":8080" into a URL for messages.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
