package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/service"
	"github.com/MKhiriev/go-wu-catalog/models"
)

const usage = `usage: wucatalog [flags] <command> [args] [-v]

commands:
  builds                          discover available builds
  languages <update-id>           list languages of a build
  editions <update-id> [lang]     list editions of a build in a language
  files <update-id>               resolve download URLs of a build
  download <update-id> [filter]   download files whose name contains filter
  version                         print build information
`

var (
	errUsage         = errors.New("invalid usage")
	errBuildNotFound = errors.New("build not found, run `builds` first or check the id")
	errNoFiles       = errors.New("no files matched")
)

type cli struct {
	catalog   service.CatalogService
	snapshots service.SnapshotService
	cfg       config.Catalog
	out       io.Writer

	logger *logger.Logger
}

func (c *cli) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "builds":
		return c.builds(ctx)
	case "languages":
		if len(args) != 1 {
			return errUsage
		}
		return c.languages(ctx, args[0])
	case "editions":
		if len(args) < 1 || len(args) > 2 {
			return errUsage
		}
		lang := c.cfg.Language
		if len(args) == 2 {
			lang = args[1]
		}
		return c.editions(ctx, args[0], lang)
	case "files":
		if len(args) != 1 {
			return errUsage
		}
		return c.files(ctx, args[0])
	case "download":
		if len(args) < 1 || len(args) > 2 {
			return errUsage
		}
		var filter string
		if len(args) == 2 {
			filter = args[1]
		}
		return c.download(ctx, args[0], filter)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (c *cli) machine() (models.MachineType, error) {
	machine, ok := models.ParseMachineType(c.cfg.Machine)
	if !ok {
		return 0, fmt.Errorf("%w: %q", service.ErrUnknownMachine, c.cfg.Machine)
	}
	return machine, nil
}

func (c *cli) builds(ctx context.Context) error {
	machine, err := c.machine()
	if err != nil {
		return err
	}

	builds, err := c.catalog.GetAvailableBuilds(ctx, machine)
	if err != nil {
		return err
	}

	if c.snapshots != nil && len(builds) > 0 {
		if err = c.snapshots.SaveBuilds(ctx, machine, builds); err != nil {
			c.logger.Warn().Err(err).Msg("builds were discovered but not cached")
		}
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tRING\tTITLE")
	for _, b := range builds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", b.UpdateID(), b.Created.Format("2006-01-02"), b.Ring, b.Title)
	}
	return tw.Flush()
}

// record finds the build with the given id, first in the snapshot cache and
// then by running a discovery for the configured machine.
func (c *cli) record(ctx context.Context, rawID string) (*models.UpdateRecord, error) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: %q", service.ErrInvalidUpdateID, rawID)
	}

	if c.snapshots != nil {
		record, err := c.snapshots.GetRecord(ctx, id)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, service.ErrBuildNotFound) {
			return nil, err
		}
		c.logger.Debug().Uint64("update_id", id).Msg("build is not cached, running discovery")
	}

	machine, err := c.machine()
	if err != nil {
		return nil, err
	}
	builds, err := c.catalog.GetAvailableBuilds(ctx, machine)
	if err != nil {
		return nil, err
	}
	for _, b := range builds {
		if b.UpdateID() == id {
			return b.Update, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", errBuildNotFound, id)
}

func (c *cli) languages(ctx context.Context, rawID string) error {
	record, err := c.record(ctx, rawID)
	if err != nil {
		return err
	}

	langs, err := c.catalog.GetAvailableBuildLanguages(ctx, record)
	if err != nil {
		return err
	}
	for _, lang := range langs {
		fmt.Fprintln(c.out, lang)
	}
	return nil
}

func (c *cli) editions(ctx context.Context, rawID, lang string) error {
	record, err := c.record(ctx, rawID)
	if err != nil {
		return err
	}

	editions, err := c.catalog.GetAvailableEditions(ctx, record, lang)
	if err != nil {
		return err
	}
	for _, edition := range editions {
		fmt.Fprintln(c.out, edition)
	}
	return nil
}

// resolvedFile pairs a download location with its descriptor file name.
type resolvedFile struct {
	name string
	info models.FileDownloadInfo
}

func (c *cli) resolve(ctx context.Context, record *models.UpdateRecord) ([]resolvedFile, error) {
	infos, err := c.catalog.GetFileURLs(ctx, record)
	if err != nil {
		return nil, err
	}

	files := make([]resolvedFile, 0, len(infos))
	for _, info := range infos {
		name := info.Digest
		if f, ok := record.Xml.FileByDigest(info.Digest); ok && f.FileName != "" {
			name = f.FileName
		}
		files = append(files, resolvedFile{name: name, info: info})
	}
	return files, nil
}

func (c *cli) files(ctx context.Context, rawID string) error {
	record, err := c.record(ctx, rawID)
	if err != nil {
		return err
	}
	files, err := c.resolve(ctx, record)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tENCRYPTED\tEXPIRES\tURL")
	for _, f := range files {
		expires := "-"
		if exp, ok := f.info.Expiration(); ok {
			expires = exp.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n", f.name, f.info.Encrypted(), expires, f.info.URL)
	}
	return tw.Flush()
}

func (c *cli) download(ctx context.Context, rawID, filter string) error {
	record, err := c.record(ctx, rawID)
	if err != nil {
		return err
	}
	files, err := c.resolve(ctx, record)
	if err != nil {
		return err
	}

	dir := filepath.Join(c.cfg.DownloadDir, strconv.FormatUint(record.ID, 10))
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}

	var downloaded int
	for _, f := range files {
		if filter != "" && !strings.Contains(strings.ToLower(f.name), strings.ToLower(filter)) {
			continue
		}
		dest := filepath.Join(dir, filepath.Base(f.name))
		c.logger.Info().Str("file", f.name).Str("dest", dest).Msg("downloading")
		if err = c.catalog.DownloadFile(ctx, f.info, dest); err != nil {
			return fmt.Errorf("download %s: %w", f.name, err)
		}
		fmt.Fprintln(c.out, dest)
		downloaded++
	}
	if downloaded == 0 {
		return errNoFiles
	}
	return nil
}

func printVersion(w io.Writer, info models.AppBuildInfo) {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}
