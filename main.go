package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lguibr/curver/bollywood"
	"github.com/lguibr/curver/server"
	"github.com/lguibr/curver/utils"
)

var version = "dev"

func main() {
	cfg := utils.DefaultConfig()

	address := flag.String("address", cfg.Address, "bind address for the HTTP listener")
	port := flag.Int("port", cfg.Port, "bind port for the HTTP listener")
	debugUI := flag.Bool("debug-ui", cfg.DebugUI, "draw live trails to the terminal on sync ticks")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg.Address = *address
	cfg.Port = *port
	cfg.DebugUI = *debugUI

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	engine := bollywood.NewEngine()
	defer engine.Shutdown(5 * time.Second)

	srv := server.New(engine, cfg)

	bind := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	logrus.WithField("address", bind).Info("Server listening")

	if err := http.ListenAndServe(bind, srv.Handler()); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
