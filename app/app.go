package app

import (
	"github.com/go-chi/jwtauth"

	"github.com/formfeed/formfeed/config"
	"github.com/formfeed/formfeed/store"
)

type App struct {
	*store.Store
	*jwtauth.JWTAuth
	config.Config
}
