package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arkfx/BiblioShare/internal/client/iocli"
)

// ErrUnknownCommand команда не найдена
var ErrUnknownCommand = errors.New("unknown command")

// SessionExpiredMessage выводится, когда сессия закрыта после неудачного обновления токена
const SessionExpiredMessage = "Session expired, please login again."

type Cli struct {
	io           iocli.IO
	authService  AuthService
	transactions TransactionService
	chat         ChatEngine
	logger       *slog.Logger
}

func New(io iocli.IO, authService AuthService, transactions TransactionService, chat ChatEngine, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:           io,
		authService:  authService,
		transactions: transactions,
		chat:         chat,
		logger:       logger,
	}
}

// Run выполняет команду
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
	case "profile":
		return c.runProfile(ctx, args)
	case "transactions":
		return c.runTransactions(ctx)
	case "transaction":
		return c.runTransaction(ctx, args)
	case "accept", "refuse", "cancel":
		return c.runAction(ctx, command, args)
	case "chat":
		return c.runChat(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// PrintUsage выводит справку
func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `BiblioShare Client

Usage:
  biblioshare [OPTIONS] COMMAND [ARGS]

Options:
  --version          Show version information
  --config PATH      Config file (.toml, .yaml, .json)
  --server URL       Server API URL
  --db PATH          Path to local database
  --log-level LEVEL  debug, info, warn, error

Environment:
  BIBLIOSHARE_SERVER, BIBLIOSHARE_DB, BIBLIOSHARE_LOG_LEVEL,
  BIBLIOSHARE_POLL_INTERVAL, BIBLIOSHARE_TIMEOUT

Commands:
  register              Register new user
  login                 Login to server
  logout                Remove local session
  status                Show authentication status
  profile [flags]       Show profile; --first-name, --last-name, --city, --state update it
  transactions          List your transactions
  transaction <id>      Show transaction details
  accept <id>           Accept a pending request (book owner)
  refuse <id>           Refuse a pending request (book owner)
  cancel <id>           Cancel a pending or accepted transaction
  chat <id>             Open transaction chat (type /quit to leave)

Examples:
  biblioshare login
  biblioshare --server https://biblioshare.example/api transactions
  biblioshare chat 42
`)
}
