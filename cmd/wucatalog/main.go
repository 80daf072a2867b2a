// Command wucatalog discovers Windows builds offered by the update service,
// lists their languages and editions, resolves file URLs and downloads files.
//
// Usage:
//
//	wucatalog [flags] builds
//	wucatalog [flags] languages <update-id>
//	wucatalog [flags] editions <update-id> [lang]
//	wucatalog [flags] files <update-id>
//	wucatalog [flags] download <update-id> [name-filter]
//	wucatalog version
//
// With a database DSN (-d) discovered builds are cached and the per-build
// commands work from the cache instead of running a new discovery.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/service"
	"github.com/MKhiriev/go-wu-catalog/internal/store"
	"github.com/MKhiriev/go-wu-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, rest, err := config.Load(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return errUsage
	}

	command, operands, verbose := splitCommand(rest)
	log := logger.NewConsoleLogger("wucatalog", verbose)

	if command == "version" {
		printVersion(os.Stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	catalogAdapter, err := adapter.NewSOAPAdapter(cfg.Adapter, log)
	if err != nil {
		return err
	}

	var storages *store.Storages
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnect(ctx, cfg.Storage, log)
		if err != nil {
			return err
		}
		defer db.Close()
		storages = store.NewStorages(db, log)
	}

	services := service.NewServices(catalogAdapter, storages, *cfg, log)
	c := &cli{
		catalog:   services.CatalogService,
		snapshots: services.SnapshotService,
		cfg:       cfg.Catalog,
		out:       os.Stdout,
		logger:    log,
	}
	return c.dispatch(ctx, command, operands)
}

// splitCommand separates the command name from its operands and strips a -v
// switch placed after the command.
func splitCommand(rest []string) (string, []string, bool) {
	var (
		operands []string
		verbose  bool
	)
	for _, arg := range rest[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			continue
		}
		operands = append(operands, arg)
	}
	return rest[0], operands, verbose
}
