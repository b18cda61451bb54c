package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/shiftdeck/shiftdeck/internal/config"
	"github.com/shiftdeck/shiftdeck/pkg/clients/rosterclient"
	"github.com/shiftdeck/shiftdeck/pkg/core/schedule"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg        *config.Config
	Roster     *rosterclient.Client
	Aggregator *schedule.Aggregator
	Logger     *zap.Logger
	Ctx        context.Context
}
