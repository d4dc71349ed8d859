package main

import (
	"context"
	"io"

	"zentube/internal/config"
	"zentube/internal/container"
	"zentube/internal/service"
	"zentube/pkg/logger"
)

// app opens the container on first use and closes it when the command ends
type app struct {
	stderr   io.Writer
	logLevel string

	container *container.Container
}

func (a *app) services(ctx context.Context) (*service.Services, *logger.Logger, error) {
	if a.container != nil {
		return a.container.Services, a.container.GetLogger(), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	log, err := logger.NewWithOutput(cfg.LogLevel, a.stderr)
	if err != nil {
		return nil, nil, err
	}

	c, err := container.New(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	a.container = c
	return c.Services, log, nil
}

func (a *app) close() {
	if a.container != nil {
		a.container.Close()
		a.container = nil
	}
}
