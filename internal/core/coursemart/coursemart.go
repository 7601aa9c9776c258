package coursemart

import (
	"context"
	"errors"
	"fmt"

	"github.com/playmixer/coursemart/internal/adapters/gateway"
	"github.com/playmixer/coursemart/internal/adapters/store/errstore"
	"github.com/playmixer/coursemart/internal/adapters/store/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=coursemart.go -destination=../../mocks/mocks.go -package=mocks

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

type Gateway interface {
	CreatePayment(ctx context.Context, req *gateway.PaymentRequest, returnURL string) (string, error)
	VerifyCallback(orderID, amount, signature string) bool
}

type Mailer interface {
	SendAccessGranted(email, moduleTitle, orderID, password string) error
}

type Config struct {
	DefaultPrice int `env:"DEFAULT_MODULE_PRICE" envDefault:"3000"`
}

type Coursemart struct {
	log     *zap.Logger
	cfg     *Config
	store   Store
	gateway Gateway
	mailer  Mailer
}

type option func(*Coursemart)

func Logger(log *zap.Logger) option {
	return func(c *Coursemart) {
		if log != nil {
			c.log = log
		}
	}
}

func New(cfg *Config, store Store, gw Gateway, mailer Mailer, options ...option) *Coursemart {
	c := &Coursemart{
		log:     zap.NewNop(),
		cfg:     cfg,
		store:   store,
		gateway: gw,
		mailer:  mailer,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// CreatePayment prices the purchase, persists a pending order and asks the
// gateway for the payment page. Every call creates exactly one order.
func (c *Coursemart) CreatePayment(ctx context.Context, email, module, promoCode string, bonuses int, returnURL string) (string, string, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return "", "", err
	}
	if module == "" {
		return "", "", ErrModuleNotValid
	}

	basePrice, err := c.modulePrice(ctx, module)
	if err != nil {
		return "", "", err
	}

	bonuses, err = c.usableBonuses(ctx, email, bonuses)
	if err != nil {
		return "", "", err
	}

	amount, bonusApplied := finalPrice(basePrice, promoCode != "", bonuses)

	order := model.Order{
		Email:     email,
		Module:    module,
		AmountRUB: amount,
		Bonuses:   bonusApplied,
	}
	if promoCode != "" {
		order.PromoCode = &promoCode
	}
	if err := c.store.CreateOrder(ctx, &order); err != nil {
		return "", "", fmt.Errorf("failed create order: %w", err)
	}

	title := c.moduleTitle(ctx, module)
	req := &gateway.PaymentRequest{
		OrderID:       order.ID,
		ItemName:      title,
		AmountKop:     amount * 100,
		ItemAmountKop: amount * 100,
		Quantity:      1,
	}

	html, err := c.gateway.CreatePayment(ctx, req, returnURL)
	if err != nil {
		// The order stays pending so a late webhook can still resolve it.
		return order.ID, "", fmt.Errorf("failed create payment: %w", err)
	}

	c.log.Info("payment initiated",
		zap.String("orderID", order.ID),
		zap.String("module", module),
		zap.Int("amountRUB", amount),
	)

	return order.ID, html, nil
}

// usableBonuses clamps the client-requested bonus amount to the balance the
// ledger actually holds for the email. Unknown emails get no bonuses.
func (c *Coursemart) usableBonuses(ctx context.Context, email string, requested int) (int, error) {
	if requested <= 0 {
		return 0, nil
	}

	user, err := c.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed get bonus balance: %w", err)
	}

	if requested > user.BonusBalance {
		return user.BonusBalance, nil
	}

	return requested, nil
}

func (c *Coursemart) moduleTitle(ctx context.Context, module string) string {
	content, err := c.store.GetContentByModule(ctx, module)
	if err != nil {
		return "Модуль " + module
	}

	return content.Title
}

// CallbackPayload is the reconciliation-relevant part of the gateway webhook.
type CallbackPayload struct {
	OrderID   string
	Status    string
	Amount    string
	Signature string
}

const gatewayStatusSucceeded = "succeeded"

// HandleCallback applies the gateway verdict to the order. A webhook for an
// order already in a terminal status is acknowledged without repeating side
// effects.
func (c *Coursemart) HandleCallback(ctx context.Context, payload CallbackPayload) error {
	if payload.OrderID == "" || payload.Status == "" || payload.Amount == "" || payload.Signature == "" {
		return ErrCallbackNotValid
	}

	if !c.gateway.VerifyCallback(payload.OrderID, payload.Amount, payload.Signature) {
		c.log.Warn("callback signature mismatch",
			zap.String("orderID", payload.OrderID),
			zap.String("status", payload.Status),
		)
		return ErrSignatureMismatch
	}

	order, err := c.store.GetOrder(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.log.Warn("callback for unknown order", zap.String("orderID", payload.OrderID))
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed get order: %w", err)
	}

	if order.Status.Terminal() {
		c.log.Info("callback for settled order ignored",
			zap.String("orderID", order.ID),
			zap.String("orderStatus", string(order.Status)),
		)
		return nil
	}

	if payload.Status != gatewayStatusSucceeded {
		if _, err := c.store.SetOrderStatus(ctx, order.ID, model.OrderStatusFailed); err != nil {
			return fmt.Errorf("failed set order failed: %w", err)
		}
		c.log.Info("payment failed",
			zap.String("orderID", order.ID),
			zap.String("gatewayStatus", payload.Status),
		)
		return nil
	}

	applied, err := c.store.SetOrderStatus(ctx, order.ID, model.OrderStatusSucceeded)
	if err != nil {
		return fmt.Errorf("failed set order succeeded: %w", err)
	}
	if !applied {
		// A concurrent delivery won the transition and owns the side effects.
		return nil
	}

	return c.fulfillOrder(ctx, &order)
}

// fulfillOrder runs the success side effects exactly once per order: promo
// consumption, bonus debit, account provisioning and the module grant.
func (c *Coursemart) fulfillOrder(ctx context.Context, order *model.Order) error {
	if order.PromoCode != nil {
		err := c.store.ConsumePromoCode(ctx, *order.PromoCode, order.Email, promoReward)
		switch {
		case errors.Is(err, errstore.ErrPromoCodeUsed):
			c.log.Info("promo code already consumed",
				zap.String("orderID", order.ID),
				zap.String("promoCode", *order.PromoCode),
			)
		case errors.Is(err, errstore.ErrNotFoundData):
			// unknown code was priced without a discount, nothing to consume
		case err != nil:
			return fmt.Errorf("failed consume promo code: %w", err)
		}
	}

	if order.Bonuses > 0 {
		if err := c.store.SpendBonuses(ctx, order.Email, order.Bonuses); err != nil {
			return fmt.Errorf("failed spend bonuses: %w", err)
		}
	}

	user, err := c.store.GetUserByEmail(ctx, order.Email)
	password := ""
	if err != nil {
		if !errors.Is(err, errstore.ErrNotFoundData) {
			return fmt.Errorf("failed get user: %w", err)
		}
		password, err = generatePassword()
		if err != nil {
			return fmt.Errorf("failed generate password: %w", err)
		}
		hashPass, err := HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed hash password: %w", err)
		}
		user, err = c.store.CreateUser(ctx, order.Email, hashPass)
		if err != nil {
			return fmt.Errorf("failed create user: %w", err)
		}
		c.log.Info("user provisioned from payment", zap.String("orderID", order.ID))
	}

	if err := c.store.GrantModule(ctx, user.ID, order.Module); err != nil {
		return fmt.Errorf("failed grant module: %w", err)
	}

	title := c.moduleTitle(ctx, order.Module)
	if err := c.mailer.SendAccessGranted(order.Email, title, order.ID, password); err != nil {
		// The grant is already durable, the gateway must not see a retryable failure.
		c.log.Error("failed send access mail", zap.String("orderID", order.ID), zap.Error(err))
	}

	c.log.Info("module access granted",
		zap.String("orderID", order.ID),
		zap.String("module", order.Module),
	)

	return nil
}

// OrderStatus returns the order as seen by the status poll.
func (c *Coursemart) OrderStatus(ctx context.Context, orderID string) (model.Order, error) {
	order, err := c.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return order, ErrOrderNotFound
		}
		return order, fmt.Errorf("failed get order: %w", err)
	}

	return order, nil
}

func (c *Coursemart) Register(ctx context.Context, email, password string) (model.User, error) {
	var user model.User
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return user, err
	}
	if err := validatePassword(password); err != nil {
		return user, err
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return user, fmt.Errorf("failed hash password: %w", err)
	}

	user, err = c.store.CreateUser(ctx, email, hashPass)
	if err != nil {
		return user, fmt.Errorf("failed register user: %w", err)
	}

	return user, nil
}

func (c *Coursemart) Login(ctx context.Context, email, password string) (model.User, error) {
	var user model.User
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return user, err
	}
	if err := validatePassword(password); err != nil {
		return user, err
	}

	user, err := c.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return user, ErrCredentialsWrong
		}
		return user, fmt.Errorf("failed getting user: %w", err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrCredentialsWrong
	}

	if err := c.store.TouchLastLogin(ctx, user.ID); err != nil {
		c.log.Error("failed touch last login", zap.Error(err))
	}

	return user, nil
}

func (c *Coursemart) EmailExists(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return false, err
	}

	_, err := c.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return false, nil
		}
		return false, fmt.Errorf("failed check email: %w", err)
	}

	return true, nil
}

func (c *Coursemart) UserModules(ctx context.Context, userID uint) ([]string, error) {
	modules, err := c.store.GetUserModules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed get user modules: %w", err)
	}

	return modules, nil
}

func (c *Coursemart) Catalog(ctx context.Context) ([]*model.Content, error) {
	content, err := c.store.ListContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed get catalog: %w", err)
	}

	return content, nil
}
