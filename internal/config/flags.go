// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses the process command line into a partial
// [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout per-request timeout (e.g. "30s", "1m")
//	-static-dir directory served as static content
//	-public-create serve POST /rest without X-Auth-Token
//	-max-body-bytes JSON request body limit
//	-log-level debug|info|warn|error
//	-version application version reported by /api/version
//	-c/-config json file path with configs
//	-server demo client target address in format [host]:[port]
//	-client-timeout demo client request timeout
//	-token demo client X-Auth-Token value
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var requestTimeout, clientTimeout time.Duration
	var staticDir, logLevel, version, jsonConfigPath, token string
	var publicCreate bool
	var maxBodyBytes int64

	fs := flag.NewFlagSet("go-rest-demo", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&staticDir, "static-dir", "", "Directory with static files")
	fs.BoolVar(&publicCreate, "public-create", false, "Allow POST /rest without X-Auth-Token")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum JSON request body size in bytes")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Var(&adapterAddress, "server", "Demo client target host:port")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Demo client request timeout")
	fs.StringVar(&token, "token", "", "Demo client X-Auth-Token value")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:  logLevel,
			Version:   version,
			AuthToken: token,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
			PublicCreate:   publicCreate,
			MaxBodyBytes:   maxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: clientTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
