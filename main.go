package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth"

	"github.com/formfeed/formfeed/app"
	"github.com/formfeed/formfeed/config"
	"github.com/formfeed/formfeed/database"
	"github.com/formfeed/formfeed/log"
	"github.com/formfeed/formfeed/routes"
	"github.com/formfeed/formfeed/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg.DBUrl)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	app := app.App{
		Store:   store.New(db),
		JWTAuth: jwtauth.New("HS256", []byte(cfg.TokenSecret), nil),
		Config:  cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
