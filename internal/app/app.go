package app

import (
	"go.uber.org/zap"

	"mailguard/internal/logger"
)

// App is the resolved configuration, its logger and the dependency graph.
type App struct {
	Config Config
	Log    *zap.Logger
	*Wire
}

// New builds the logger from cfg and wires the dependency graph.
func New(cfg Config, opts ...WireOption) (*App, error) {
	log, err := logger.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return nil, err
	}
	w, err := NewWire(cfg, log, opts...)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Log: log, Wire: w}, nil
}

// Close flushes buffered log entries.
func (a *App) Close() {
	// Sync on a terminal stderr returns EINVAL on some platforms.
	_ = a.Log.Sync()
}
