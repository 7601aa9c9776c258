package database

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/playmixer/coursemart/internal/adapters/store/errstore"
	"github.com/playmixer/coursemart/internal/adapters/store/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	referralCodeLength  = 5
	referralCodeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderIDRandomLength = 5
	orderIDMaxLength    = 35
	createOrderAttempts = 3
)

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.Order{},
		&model.PromoCode{},
		&model.UserModule{},
		&model.Content{},
	)

	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := s.seedContent(); err != nil {
		return nil, fmt.Errorf("failed seed content: %w", err)
	}

	return s, nil
}

// seedContent fills an empty catalog with the starter modules.
func (s *Store) seedContent() error {
	var count int64
	if err := s.db.Model(&model.Content{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed count content: %w", err)
	}
	if count > 0 {
		return nil
	}

	starter := []model.Content{
		{Module: "A1", Title: "Базовые понятия", VideoURL: "https://vimeo.com/1096940811/313e75f168", VideoType: "vimeo", Price: 3000},
		{Module: "A2", Title: "Продвинутые техники", VideoURL: "https://vimeo.com/1091471583", VideoType: "vimeo", Price: 3000},
	}
	if err := s.db.Create(&starter).Error; err != nil {
		return fmt.Errorf("failed create starter content: %w", err)
	}
	s.log.Info("seeded starter content", zap.Int("modules", len(starter)))

	return nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (model.User, error) {
	user := model.User{
		Email:        email,
		PasswordHash: passwordHash,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := generateReferralCode()
		if err != nil {
			return fmt.Errorf("failed generate referral code: %w", err)
		}
		user.ReferralCode = code
		if err := tx.Create(&user).Error; err != nil {
			var sqlError *pgconn.PgError
			if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
				return errstore.ErrEmailNotUnique
			}
			return fmt.Errorf("failed save user: %w", err)
		}
		promo := model.PromoCode{
			Code:   user.ReferralCode,
			UserID: user.ID,
		}
		if err := tx.Create(&promo).Error; err != nil {
			return fmt.Errorf("failed save promo code: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrEmailNotUnique) {
			return user, err
		}
		return user, fmt.Errorf("failed complite transaction: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	result := tx.Where(&model.User{Email: email}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", result.Error)
	}

	return user, nil
}

func (s *Store) TouchLastLogin(ctx context.Context, userID uint) error {
	now := time.Now()
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", &now)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed update last login: %w", err)
	}

	return nil
}

// GrantModule opens module access for the user. A repeated grant is a no-op.
func (s *Store) GrantModule(ctx context.Context, userID uint, module string) error {
	grant := model.UserModule{
		UserID: userID,
		Module: module,
	}
	result := s.db.WithContext(ctx).Create(&grant)
	if err := result.Error; err != nil {
		var sqlError *pgconn.PgError
		if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
			return nil
		}
		return fmt.Errorf("failed save module grant: %w", err)
	}

	return nil
}

func (s *Store) GetUserModules(ctx context.Context, userID uint) ([]string, error) {
	grants := []*model.UserModule{}
	if err := s.db.WithContext(ctx).Where(&model.UserModule{UserID: userID}).Find(&grants).Error; err != nil {
		return nil, fmt.Errorf("failed get module grants: %w", err)
	}

	modules := make([]string, 0, len(grants))
	for _, grant := range grants {
		modules = append(modules, grant.Module)
	}

	return modules, nil
}

// CreateOrder persists a fresh pending order and fills in its generated ID.
func (s *Store) CreateOrder(ctx context.Context, order *model.Order) error {
	tx := s.db.WithContext(ctx)
	order.Status = model.OrderStatusPending
	for attempt := 0; attempt < createOrderAttempts; attempt++ {
		id, err := generateOrderID()
		if err != nil {
			return fmt.Errorf("failed generate order id: %w", err)
		}
		order.ID = id
		if err := tx.Create(order).Error; err != nil {
			var sqlError *pgconn.PgError
			if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
				s.log.Warn("order id collision", zap.String("orderID", id))
				continue
			}
			return fmt.Errorf("failed save order: %w", err)
		}
		return nil
	}

	return errstore.ErrOrderIDNotFresh
}

func (s *Store) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	order := model.Order{}
	result := s.db.WithContext(ctx).Where(&model.Order{ID: orderID}).First(&order)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errors.Join(errstore.ErrNotFoundData, err)
		}
		return order, fmt.Errorf("error found order: %w", result.Error)
	}

	return order, nil
}

// SetOrderStatus moves a pending order into a terminal status. The update is
// conditional on the row still being pending, so of two racing webhook
// deliveries only one observes applied=true.
func (s *Store) SetOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusPending).
		Update("status", status)
	if err := result.Error; err != nil {
		return false, fmt.Errorf("failed update order status: %w", err)
	}

	return result.RowsAffected > 0, nil
}

// ConsumePromoCode marks the code used by the buyer and credits the reward to
// the code owner. An already consumed code yields ErrPromoCodeUsed.
func (s *Store) ConsumePromoCode(ctx context.Context, code, usedBy string, reward int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		promo := model.PromoCode{}
		if err := tx.Where(&model.PromoCode{Code: code}).First(&promo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select promo code: %w", err)
		}

		now := time.Now()
		result := tx.Model(&model.PromoCode{}).
			Where("code = ? AND used_by IS NULL", code).
			Updates(map[string]interface{}{"used_by": usedBy, "used_at": &now})
		if err := result.Error; err != nil {
			return fmt.Errorf("failed mark promo code used: %w", err)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrPromoCodeUsed
		}

		if err := tx.Model(&model.User{}).
			Where("id = ?", promo.UserID).
			Update("bonus_balance", gorm.Expr("bonus_balance + ?", reward)).Error; err != nil {
			return fmt.Errorf("failed credit promo owner: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) || errors.Is(err, errstore.ErrPromoCodeUsed) {
			return err
		}
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}

// SpendBonuses debits the user balance, refusing to go below zero.
func (s *Store) SpendBonuses(ctx context.Context, email string, amount int) error {
	if amount <= 0 {
		return nil
	}
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ? AND bonus_balance >= ?", email, amount).
		Update("bonus_balance", gorm.Expr("bonus_balance - ?", amount))
	if err := result.Error; err != nil {
		return fmt.Errorf("failed spend bonuses: %w", err)
	}
	if result.RowsAffected == 0 {
		s.log.Warn("bonus debit skipped", zap.String("email", email), zap.Int("amount", amount))
	}

	return nil
}

func (s *Store) GetContentByModule(ctx context.Context, module string) (model.Content, error) {
	content := model.Content{}
	result := s.db.WithContext(ctx).Where(&model.Content{Module: module}).First(&content)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return content, errors.Join(errstore.ErrNotFoundData, err)
		}
		return content, fmt.Errorf("error found content: %w", result.Error)
	}

	return content, nil
}

func (s *Store) ListContent(ctx context.Context) ([]*model.Content, error) {
	content := []*model.Content{}
	if err := s.db.WithContext(ctx).Order("module").Find(&content).Error; err != nil {
		return nil, fmt.Errorf("failed get content: %w", err)
	}

	return content, nil
}

// generateOrderID composes a gateway-safe id from a time prefix and a
// crypto-random suffix, e.g. order_lz0c4q2h_k3vq9.
func generateOrderID() (string, error) {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	random, err := randomString(orderIDRandomLength, referralCodeCharset)
	if err != nil {
		return "", err
	}
	id := "order_" + timestamp + "_" + random
	if len(id) > orderIDMaxLength {
		id = id[:orderIDMaxLength]
	}

	return id, nil
}

func generateReferralCode() (string, error) {
	return randomString(referralCodeLength, referralCodeCharset)
}

func randomString(length int, charset string) (string, error) {
	result := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed read random: %w", err)
		}
		result[i] = charset[n.Int64()]
	}

	return string(result), nil
}
