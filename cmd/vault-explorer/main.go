package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"

	"github.com/0xDegenDeveloper/ui-clone/handlers"
	"github.com/0xDegenDeveloper/ui-clone/metrics"
	"github.com/0xDegenDeveloper/ui-clone/services"
	"github.com/0xDegenDeveloper/ui-clone/types"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file, if empty string defaults will be used")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &types.Config{}
	err := utils.ReadConfig(cfg, *configPath)
	if err != nil {
		logrus.Fatalf("error reading config file: %v", err)
	}
	utils.Config = cfg
	logWriter, logger := utils.InitLogger()
	defer logWriter.Dispose()

	logger.WithFields(logrus.Fields{
		"config":  *configPath,
		"version": utils.BuildVersion,
		"release": utils.BuildRelease,
	}).Printf("starting")

	err = startServices(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("error starting services: %v", err)
	}

	var webserver *http.Server
	if cfg.Frontend.Enabled {
		webserver, err = startWebserver(logger)
		if err != nil {
			logger.Fatalf("error starting webserver: %v", err)
		}
	}

	if cfg.Metrics.Enabled && !cfg.Metrics.Public {
		err = metrics.StartMetricsServer(logger.WithField("module", "metrics"), cfg.Metrics.Host, cfg.Metrics.Port)
		if err != nil {
			logger.Fatalf("error starting metrics server: %v", err)
		}
	}

	utils.WaitForCtrlC()
	logger.Println("exiting...")

	if webserver != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
		defer shutdownCancel()
		if err := webserver.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("error shutting down webserver")
		}
	}
	services.GlobalVaultService.Close()
}

// startServices prepares everything the page handlers read, it must complete before the webserver accepts requests.
func startServices(ctx context.Context, cfg *types.Config, logger logrus.FieldLogger) error {
	err := services.InitVaultService(ctx, logger)
	if err != nil {
		return fmt.Errorf("error initializing vault service: %w", err)
	}

	if cfg.RateLimit.Enabled {
		err = services.StartCallRateLimiter(cfg.RateLimit.ProxyCount, cfg.RateLimit.Rate, cfg.RateLimit.Burst)
		if err != nil {
			return fmt.Errorf("error starting call rate limiter: %w", err)
		}
	}

	return nil
}

func startWebserver(logger logrus.FieldLogger) (*http.Server, error) {
	router := mux.NewRouter()

	router.HandleFunc("/", handlers.Index).Methods("GET")
	router.HandleFunc("/vaults", handlers.Vaults).Methods("GET")
	router.HandleFunc("/vaults/{address}", handlers.Vault).Methods("GET")
	router.HandleFunc("/vaults/{address}/card", handlers.VaultCard).Methods("GET")
	router.HandleFunc("/vaults/{address}/open", handlers.VaultOpen).Methods("GET")

	if utils.Config.Frontend.Pprof {
		// add pprof handler
		router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
		router.Handle("/debug/metrics", metrics.GetMetricsHandler())
	}

	if utils.Config.Metrics.Enabled && utils.Config.Metrics.Public {
		router.Handle("/metrics", metrics.GetMetricsHandler())
	}

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	n.UseHandler(router)

	if utils.Config.Frontend.HttpWriteTimeout == 0 {
		utils.Config.Frontend.HttpWriteTimeout = time.Second * 15
	}
	if utils.Config.Frontend.HttpReadTimeout == 0 {
		utils.Config.Frontend.HttpReadTimeout = time.Second * 15
	}
	if utils.Config.Frontend.HttpIdleTimeout == 0 {
		utils.Config.Frontend.HttpIdleTimeout = time.Second * 60
	}
	srv := &http.Server{
		Addr:         utils.Config.Server.Host + ":" + utils.Config.Server.Port,
		WriteTimeout: utils.Config.Frontend.HttpWriteTimeout,
		ReadTimeout:  utils.Config.Frontend.HttpReadTimeout,
		IdleTimeout:  utils.Config.Frontend.HttpIdleTimeout,
		Handler:      n,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, err
	}

	logger.Printf("http server listening on %v", srv.Addr)
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Error serving frontend")
		}
	}()

	return srv, nil
}
