package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver name (pgx or sqlite3)
//	-c/-config json file path with configs
//	-pepper password pepper
//	-bcrypt-cost bcrypt cost for new password hashes
//	-activation-ttl activation token lifetime (e.g., "24h")
//	-autologin-ttl autologin token lifetime (e.g., "720h")
//	-max-tries failure count that escalates into a ban
//	-relevance-window failure counting window (e.g., "1m")
//	-ban-duration ban lifetime (e.g., "15m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var pepper string
	var bcryptCost int
	var activationRequired bool
	var activationTTL time.Duration
	var autologinEnabled bool
	var autologinTTL time.Duration
	var maxTries int
	var relevanceWindow time.Duration
	var banDuration time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&pepper, "pepper", "", "Password pepper")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost for new password hashes")
	flag.BoolVar(&activationRequired, "activation-required", false, "Require activation-by-mail for new accounts")
	flag.DurationVar(&activationTTL, "activation-ttl", 0, "Activation token lifetime (e.g., 24h)")
	flag.BoolVar(&autologinEnabled, "autologin", false, "Enable the remember-me mechanism")
	flag.DurationVar(&autologinTTL, "autologin-ttl", 0, "Autologin token lifetime (e.g., 720h)")
	flag.IntVar(&maxTries, "max-tries", 0, "Failure count that escalates into a ban")
	flag.DurationVar(&relevanceWindow, "relevance-window", 0, "Failure counting window (e.g., 1m)")
	flag.DurationVar(&banDuration, "ban-duration", 0, "Ban lifetime (e.g., 15m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Pepper:             pepper,
			BcryptCost:         bcryptCost,
			ActivationRequired: activationRequired,
			ActivationTTL:      activationTTL,
			AutologinEnabled:   autologinEnabled,
			AutologinTTL:       autologinTTL,
			MaxTries:           maxTries,
			RelevanceWindow:    relevanceWindow,
			BanDuration:        banDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
