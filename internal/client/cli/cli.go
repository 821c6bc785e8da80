package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/moodkeeper/internal/client/auth"
	"github.com/iudanet/moodkeeper/internal/client/data"
	"github.com/iudanet/moodkeeper/internal/client/iocli"
	"github.com/iudanet/moodkeeper/internal/client/mode"
	"github.com/iudanet/moodkeeper/internal/client/storage"
)

// Cli связывает терминальные команды с клиентскими сервисами
type Cli struct {
	io          iocli.IO
	authService *auth.Service
	dataService data.Service
	resolver    *mode.Resolver
	sessions    storage.SessionStorage
}

// New создает CLI поверх клиентских сервисов
func New(io iocli.IO, authService *auth.Service, dataService data.Service, resolver *mode.Resolver, sessions storage.SessionStorage) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		resolver:    resolver,
		sessions:    sessions,
	}
}

// Run выполняет одну команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx)
	case "delete":
		return c.runDelete(ctx, args)
	case "mode":
		return c.runMode(ctx, args)
	case "watch":
		return c.runWatch(ctx)
	case "help", "":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
