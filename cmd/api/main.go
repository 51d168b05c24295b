package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-guard/api"
	api_i "github.com/beka-birhanu/vinom-guard/api/i"
	"github.com/beka-birhanu/vinom-guard/api/identity"
	walkapi "github.com/beka-birhanu/vinom-guard/api/walk"
	"github.com/beka-birhanu/vinom-guard/config"
	logger "github.com/beka-birhanu/vinom-guard/infrastruture/log"
	"github.com/beka-birhanu/vinom-guard/infrastruture/token"
	"github.com/beka-birhanu/vinom-guard/service"
	"github.com/beka-birhanu/vinom-guard/service/i"
)

// Global variables for dependencies
var (
	appLogger      i.Logger
	walkSolver     i.WalkSolver
	jwtTokenizer   i.Tokenizer
	walkController api_i.Controller
	router         *api.Router
)

func initWalkSolver() {
	walkLogger, err := logger.New("GUARD-WALK", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating walk logger: %v", err))
		os.Exit(1)
	}

	walkSolver, err = service.NewWalkService(walkLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating walk service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Walk service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.MustJWTSecret(), config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initWalkController() {
	var err error
	walkController, err = walkapi.NewWalkController(walkSolver)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating walk controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Walk controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{walkController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initWalkSolver()
	initJWTTokenizer()
	initWalkController()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
