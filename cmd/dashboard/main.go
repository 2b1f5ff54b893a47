//go:generate swagger generate spec

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/citizenwallet/govdash/internal/cache"
	"github.com/citizenwallet/govdash/internal/config"
	"github.com/citizenwallet/govdash/internal/governance"
	"github.com/citizenwallet/govdash/internal/networks"
	"github.com/citizenwallet/govdash/internal/services/db"
	"github.com/citizenwallet/govdash/internal/services/subgraph"
	"github.com/citizenwallet/govdash/internal/services/webhook"
	"github.com/citizenwallet/govdash/pkg/queue"
	"github.com/citizenwallet/govdash/pkg/router"
	"github.com/citizenwallet/govdash/pkg/warm"
	"github.com/getsentry/sentry-go"
)

// @title           Governance Dashboard API
// @version         1.0
// @description     Proposals, votes and governance parameters of Cosmos networks, read from The Graph.
// @termsOfService  https://citizenwallet.xyz

// @contact.name   API Support
// @contact.url    https://github.com/citizenwallet
// @contact.email  support@citizenspring.earth

// @license.name  MIT
// @license.url   https://raw.githubusercontent.com/citizenwallet/govdash/main/LICENSE

// @host      localhost:3000
// @BasePath  /

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	log.Default().Println("launching governance dashboard...")

	env := flag.String("env", ".env", "path to .env file")

	port := flag.Int("port", 3000, "port to listen on")

	warmEvery := flag.Duration("warm", 10*time.Minute, "interval between cache warm ups, 0 disables warming")

	retention := flag.Duration("retention", 7*24*time.Hour, "how long unused snapshots are kept")

	bufferSize := flag.Int("buffer", 100, "refresh queue buffer size (default: 100)")

	notify := flag.Bool("notify", true, "enable notifications")

	flag.Parse()

	ctx := context.Background()

	conf, err := config.New(ctx, *env)
	if err != nil {
		log.Fatal(err)
	}

	if conf.SentryURL != "" && conf.SentryURL != "x" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn: conf.SentryURL,
			// Set TracesSampleRate to 1.0 to capture 100%
			// of transactions for performance monitoring.
			TracesSampleRate: 1.0,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		// Flush buffered events before the program terminates.
		defer sentry.Flush(2 * time.Second)
	}

	log.Default().Println("loading networks...")

	nets, err := networks.Load(conf.NetworksFile)
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range nets.All() {
		log.Default().Println("serving network: ", n.Name)
	}

	log.Default().Println("starting snapshot store...")

	var d *db.DB
	switch conf.DB.Driver {
	case config.DBDriverSQLite:
		d, err = db.NewDB(conf.DB.Path)
	case config.DBDriverPostgres:
		d, err = db.NewPostgresDB(conf.DB.User, conf.DB.Password, conf.DB.Name, conf.DB.Host, conf.DB.ReaderHost)
	default:
		log.Fatal("unsupported db driver (must be one of: sqlite, postgres)")
	}
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	w := webhook.NewMessager(conf.DiscordURL, "govdash", *notify)

	sg := subgraph.New(conf.GraphGatewayURL, conf.GraphAPIKey, conf.SubgraphTimeout)

	src := cache.New(governance.NewLoader(sg), d.SnapshotDB, conf.CacheMaxAge, conf.CacheSWR)

	quitAck := make(chan error)

	refreshq := queue.NewService("refresh", 3, *bufferSize, ctx, w)

	src.SetQueue(refreshq)

	go func() {
		quitAck <- refreshq.Start(src)
	}()

	if *warmEvery > 0 {
		log.Default().Println("starting cache warmer...")

		wr := warm.New(nets.All(), src, d.SnapshotDB, *retention, w)

		go func() {
			quitAck <- wr.Background(ctx, *warmEvery)
		}()
	}

	log.Default().Println("starting api service...")

	api := router.NewServer(nets, src, refreshq, conf.AdminAPIKey)

	go func() {
		quitAck <- api.Start(*port)
	}()

	log.Default().Println("listening on port: ", *port)

	for err := range quitAck {
		if err != nil {
			w.NotifyError(ctx, err)
			sentry.CaptureException(err)
			log.Fatal(err)
		}
	}
}
