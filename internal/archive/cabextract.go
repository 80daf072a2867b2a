package archive

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
)

// DefaultBinary is the cabextract executable looked up on PATH.
const DefaultBinary = "cabextract"

type cabExtract struct {
	binary string
	run    func(ctx context.Context, name string, args ...string) ([]byte, error)

	logger *logger.Logger
}

// NewCabExtract returns an Archive backed by the cabextract command line
// tool. An empty binary selects DefaultBinary.
func NewCabExtract(binary string, logger *logger.Logger) Archive {
	if binary == "" {
		binary = DefaultBinary
	}
	return &cabExtract{
		binary: binary,
		run:    runCommand,
		logger: logger,
	}
}

func (c *cabExtract) Extract(ctx context.Context, cabPath, destDir string) error {
	if err := requireFile(cabPath); err != nil {
		return err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", destDir, err)
	}

	if _, err := c.run(ctx, c.binary, "-q", "-d", destDir, cabPath); err != nil {
		return err
	}

	c.logger.Debug().Str("cab", cabPath).Str("dest", destDir).Msg("cabinet extracted")
	return nil
}

func (c *cabExtract) ListEntries(ctx context.Context, cabPath string) ([]string, error) {
	if err := requireFile(cabPath); err != nil {
		return nil, err
	}

	out, err := c.run(ctx, c.binary, "-l", cabPath)
	if err != nil {
		return nil, err
	}
	return parseListing(out), nil
}

func requireFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchiveAbsent, path, err)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %w: %s", ErrToolFailed, name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// parseListing extracts entry names from `cabextract -l` output:
//
//	 File size | Date       Time     | Name
//	-----------+---------------------+-------------
//	      1234 | 01.01.2020 00:00:00 | DesktopTargetCompDB_Professional_en-us.xml.cab
func parseListing(out []byte) []string {
	var names []string
	inTable := false

	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "-----------+") {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}

		parts := strings.SplitN(line, " | ", 3)
		if len(parts) != 3 {
			inTable = false
			continue
		}
		if name := strings.TrimSpace(parts[2]); name != "" {
			names = append(names, name)
		}
	}
	return names
}
