package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/shiftdeck/shiftdeck/internal/config"
	"github.com/shiftdeck/shiftdeck/internal/stubserver"
	"github.com/shiftdeck/shiftdeck/pkg/logging"
)

func main() {
	env := flag.String("env", "dev", "Environment (dev, prod)")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	flag.Parse()

	if err := run(*env, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(env, addr string) error {
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if addr == "" {
		addr = "localhost:8080"
		if cfg, err := config.Load(); err == nil {
			addr = cfg.StubListenAddr
		}
	}

	server := stubserver.NewServer(logger)
	logger.Info("Stub scheduling service listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, server.Mux)
}
