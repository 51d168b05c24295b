package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-guard/config"
	logger "github.com/beka-birhanu/vinom-guard/infrastruture/log"
	"github.com/beka-birhanu/vinom-guard/service"
	"github.com/beka-birhanu/vinom-guard/service/i"
)

func main() {
	appLogger, err := logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(appLogger, config.Envs.InputFile); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}

func run(appLogger i.Logger, inputFile string) error {
	walkLogger, err := logger.New("GUARD-WALK", config.ColorCyan, os.Stderr)
	if err != nil {
		return fmt.Errorf("creating walk logger: %w", err)
	}

	solver, err := service.NewWalkService(walkLogger)
	if err != nil {
		return fmt.Errorf("creating walk service: %w", err)
	}
	appLogger.Info("Walk service initialized")

	report, err := solver.SolveFile(inputFile)
	if err != nil {
		return err
	}

	fmt.Printf("Part 1: %d\n", report.Part1)
	fmt.Printf("Part 2: %d\n", report.Part2)
	return nil
}
