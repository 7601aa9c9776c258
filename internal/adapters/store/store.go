package store

import (
	"context"
	"fmt"

	"github.com/playmixer/coursemart/internal/adapters/store/database"
	"github.com/playmixer/coursemart/internal/adapters/store/model"
	"go.uber.org/zap"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	CreateUser(ctx context.Context, email, passwordHash string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	TouchLastLogin(ctx context.Context, userID uint) error
	GrantModule(ctx context.Context, userID uint, module string) error
	GetUserModules(ctx context.Context, userID uint) ([]string, error)
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrder(ctx context.Context, orderID string) (model.Order, error)
	SetOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (bool, error)
	ConsumePromoCode(ctx context.Context, code, usedBy string, reward int) error
	SpendBonuses(ctx context.Context, email string, amount int) error
	GetContentByModule(ctx context.Context, module string) (model.Content, error)
	ListContent(ctx context.Context) ([]*model.Content, error)
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
