package cli

import (
	"context"

	"github.com/arkfx/BiblioShare/internal/client/auth"
	"github.com/arkfx/BiblioShare/internal/client/chat"
	"github.com/arkfx/BiblioShare/internal/client/transaction"
	"github.com/arkfx/BiblioShare/internal/models"
	pkgapi "github.com/arkfx/BiblioShare/pkg/api"
)

//go:generate moq -out interfaces_mock.go . AuthService TransactionService ChatEngine

// AuthService операции сессии, используемые командами
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Profile, error)
	Register(ctx context.Context, in auth.RegisterInput) (*models.Profile, error)
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Profile(ctx context.Context) (*models.Profile, error)
	CurrentProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, update pkgapi.ProfileUpdate) (*models.Profile, error)
	TokenInfo() (*auth.TokenInfo, error)
}

// TransactionService операции над транзакциями
type TransactionService interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, id int64) (*models.Transaction, error)
	Perform(ctx context.Context, tx *models.Transaction, actorID int64, action transaction.Action) (*models.Transaction, error)
}

// ChatEngine синхронизация чата транзакции
type ChatEngine interface {
	Start(ctx context.Context, transactionID int64)
	Stop()
	Send(ctx context.Context, content string) (*models.Message, error)
	Subscribe(listener chat.Listener) (unsubscribe func())
}
