package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-e catalog endpoint base URL
//	-timeout protocol request timeout (e.g., "30s", "1m")
//	-insecure skip TLS certificate verification
//	-rate-limit outbound requests per second
//	-breaker-failures consecutive failures that open the circuit
//	-ticket account ticket for the security header
//	-m machine type (x86, amd64, arm, arm64)
//	-content-type content type kept by discovery
//	-max-pages sync page cap per ring
//	-lang default language code
//	-o download directory
//	-d database DSN
//	-a server address in format [host]:[port]
//	-server-timeout inbound request timeout
//	-refresh-interval snapshot refresh interval
//	-parallel maximum rings synced at once
//	-c/-config json file path with configs
//
// Parsing stops at the first non-flag argument; the remaining arguments are
// returned untouched.
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("wucatalog", flag.ContinueOnError)

	var serverAddress NetAddress
	var endpoint, ticket string
	var requestTimeout, serverTimeout, refreshInterval time.Duration
	var insecure bool
	var rateLimit float64
	var breakerFailures uint
	var machine, contentType, language, downloadDir string
	var maxPages, parallel int
	var databaseDSN string
	var jsonConfigPath string

	fs.StringVar(&endpoint, "e", "", "Catalog endpoint base URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Protocol request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second")
	fs.UintVar(&breakerFailures, "breaker-failures", 0, "Consecutive failures that open the circuit")
	fs.StringVar(&ticket, "ticket", "", "Account ticket")
	fs.StringVar(&machine, "m", "", "Machine type")
	fs.StringVar(&contentType, "content-type", "", "Content type kept by discovery")
	fs.IntVar(&maxPages, "max-pages", 0, "Sync page cap per ring")
	fs.StringVar(&language, "lang", "", "Default language code")
	fs.StringVar(&downloadDir, "o", "", "Download directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Snapshot refresh interval")
	fs.IntVar(&parallel, "parallel", 0, "Maximum rings synced at once")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			Endpoint:           endpoint,
			RequestTimeout:     requestTimeout,
			InsecureSkipVerify: insecure,
			RateLimit:          rateLimit,
			BreakerFailures:    uint32(breakerFailures),
			Ticket:             ticket,
		},
		Catalog: Catalog{
			Machine:     machine,
			ContentType: contentType,
			MaxPages:    maxPages,
			Language:    language,
			DownloadDir: downloadDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Workers: Workers{
			RefreshInterval:     refreshInterval,
			MaxParallelProfiles: parallel,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
