package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/internal/config"
	"github.com/talmaimon/basecycle/pkg/postgres"
)

// AppContext holds the dependencies shared by all commands. It is populated
// by the root command's PersistentPreRunE before any subcommand runs.
type AppContext struct {
	Ctx    context.Context
	Cfg    *config.Config
	Logger *zap.Logger
	Store  *postgres.Store
}
