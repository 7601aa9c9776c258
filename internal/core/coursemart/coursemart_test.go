package coursemart_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/playmixer/coursemart/internal/adapters/gateway"
	"github.com/playmixer/coursemart/internal/adapters/store/errstore"
	"github.com/playmixer/coursemart/internal/adapters/store/model"
	"github.com/playmixer/coursemart/internal/core/coursemart"
	"github.com/playmixer/coursemart/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*coursemart.Coursemart, *mocks.MockStore, *mocks.MockGateway, *mocks.MockMailer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockStore(ctrl)
	gatewayMock := mocks.NewMockGateway(ctrl)
	mailerMock := mocks.NewMockMailer(ctrl)

	mart := coursemart.New(&coursemart.Config{DefaultPrice: 3000}, storeMock, gatewayMock, mailerMock)

	return mart, storeMock, gatewayMock, mailerMock
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		mart, _, _, _ := newService(t)

		_, _, err := mart.CreatePayment(ctx, "", "A1", "", 0, "")
		assert.ErrorIs(t, err, coursemart.ErrEmailNotValid)

		_, _, err = mart.CreatePayment(ctx, "buyer@example.com", "", "", 0, "")
		assert.ErrorIs(t, err, coursemart.ErrModuleNotValid)
	})

	t.Run("success", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		storeMock.EXPECT().
			GetContentByModule(ctx, "A1").
			Return(model.Content{Module: "A1", Title: "Базовые понятия", Price: 3000}, nil).
			Times(2)

		var created model.Order
		storeMock.EXPECT().
			CreateOrder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, order *model.Order) error {
				order.ID = "order_test_1"
				created = *order
				return nil
			})

		gatewayMock.EXPECT().
			CreatePayment(ctx, gomock.Any(), "https://shop.example.com/result").
			DoAndReturn(func(_ context.Context, req *gateway.PaymentRequest, _ string) (string, error) {
				assert.Equal(t, "order_test_1", req.OrderID)
				assert.Equal(t, 300000, req.AmountKop)
				assert.Equal(t, 300000, req.ItemAmountKop)
				assert.Equal(t, "Базовые понятия", req.ItemName)
				assert.Equal(t, 1, req.Quantity)
				return "<html/>", nil
			})

		orderID, html, err := mart.CreatePayment(ctx, "Buyer@Example.com", "A1", "", 0, "https://shop.example.com/result")
		require.NoError(t, err)
		assert.Equal(t, "order_test_1", orderID)
		assert.Equal(t, "<html/>", html)
		assert.Equal(t, "buyer@example.com", created.Email)
		assert.Equal(t, 3000, created.AmountRUB)
		assert.Equal(t, 0, created.Bonuses)
		assert.Nil(t, created.PromoCode)
	})

	t.Run("bonuses clamped to ledger balance", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		storeMock.EXPECT().
			GetContentByModule(ctx, "A1").
			Return(model.Content{Module: "A1", Title: "Базовые понятия", Price: 3000}, nil).
			Times(2)
		storeMock.EXPECT().
			GetUserByEmail(ctx, "buyer@example.com").
			Return(model.User{ID: 1, Email: "buyer@example.com", BonusBalance: 200}, nil)

		var created model.Order
		storeMock.EXPECT().
			CreateOrder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, order *model.Order) error {
				order.ID = "order_test_2"
				created = *order
				return nil
			})
		gatewayMock.EXPECT().
			CreatePayment(ctx, gomock.Any(), "").
			Return("<html/>", nil)

		_, _, err := mart.CreatePayment(ctx, "buyer@example.com", "A1", "", 1000, "")
		require.NoError(t, err)
		assert.Equal(t, 200, created.Bonuses)
		assert.Equal(t, 2800, created.AmountRUB)
	})

	t.Run("promo and bonuses zero out the charge", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		storeMock.EXPECT().
			GetContentByModule(ctx, "A1").
			Return(model.Content{Module: "A1", Title: "Базовые понятия", Price: 3000}, nil).
			Times(2)
		storeMock.EXPECT().
			GetUserByEmail(ctx, "buyer@example.com").
			Return(model.User{ID: 1, BonusBalance: 5000}, nil)

		var created model.Order
		storeMock.EXPECT().
			CreateOrder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, order *model.Order) error {
				order.ID = "order_test_3"
				created = *order
				return nil
			})
		gatewayMock.EXPECT().
			CreatePayment(ctx, gomock.Any(), "").
			Return("<html/>", nil)

		_, _, err := mart.CreatePayment(ctx, "buyer@example.com", "A1", "FRIEND", 1000, "")
		require.NoError(t, err)
		assert.Equal(t, 0, created.AmountRUB)
		assert.Equal(t, 1000, created.Bonuses)
		require.NotNil(t, created.PromoCode)
		assert.Equal(t, "FRIEND", *created.PromoCode)
	})

	t.Run("unknown module uses default price", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		storeMock.EXPECT().
			GetContentByModule(ctx, "Z9").
			Return(model.Content{}, errstore.ErrNotFoundData).
			Times(2)

		var created model.Order
		storeMock.EXPECT().
			CreateOrder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, order *model.Order) error {
				order.ID = "order_test_4"
				created = *order
				return nil
			})
		gatewayMock.EXPECT().
			CreatePayment(ctx, gomock.Any(), "").
			DoAndReturn(func(_ context.Context, req *gateway.PaymentRequest, _ string) (string, error) {
				assert.Equal(t, "Модуль Z9", req.ItemName)
				return "<html/>", nil
			})

		_, _, err := mart.CreatePayment(ctx, "buyer@example.com", "Z9", "", 0, "")
		require.NoError(t, err)
		assert.Equal(t, 3000, created.AmountRUB)
	})

	t.Run("gateway unavailable keeps order pending", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		storeMock.EXPECT().
			GetContentByModule(ctx, "A1").
			Return(model.Content{Module: "A1", Title: "Базовые понятия", Price: 3000}, nil).
			Times(2)
		storeMock.EXPECT().
			CreateOrder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, order *model.Order) error {
				order.ID = "order_test_5"
				return nil
			})
		gatewayMock.EXPECT().
			CreatePayment(ctx, gomock.Any(), "").
			Return("", fmt.Errorf("%w: connection refused", gateway.ErrUnavailable))

		orderID, _, err := mart.CreatePayment(ctx, "buyer@example.com", "A1", "", 0, "")
		assert.ErrorIs(t, err, gateway.ErrUnavailable)
		assert.Equal(t, "order_test_5", orderID)
	})
}

func TestHandleCallback(t *testing.T) {
	ctx := context.Background()

	payload := coursemart.CallbackPayload{
		OrderID:   "order_test_1",
		Status:    "succeeded",
		Amount:    "300000",
		Signature: "signature",
	}

	t.Run("missing fields", func(t *testing.T) {
		mart, _, _, _ := newService(t)

		err := mart.HandleCallback(ctx, coursemart.CallbackPayload{OrderID: "order_test_1"})
		assert.ErrorIs(t, err, coursemart.ErrCallbackNotValid)
	})

	t.Run("signature mismatch mutates nothing", func(t *testing.T) {
		mart, _, gatewayMock, _ := newService(t)

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(false)

		err := mart.HandleCallback(ctx, payload)
		assert.ErrorIs(t, err, coursemart.ErrSignatureMismatch)
	})

	t.Run("unknown order", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(true)
		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(model.Order{}, errstore.ErrNotFoundData)

		err := mart.HandleCallback(ctx, payload)
		assert.ErrorIs(t, err, coursemart.ErrOrderNotFound)
	})

	t.Run("settled order acknowledged without side effects", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(true)
		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(model.Order{ID: "order_test_1", Status: model.OrderStatusSucceeded}, nil)

		err := mart.HandleCallback(ctx, payload)
		assert.NoError(t, err)
	})

	t.Run("lost transition race applies nothing", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(true)
		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(model.Order{ID: "order_test_1", Status: model.OrderStatusPending}, nil)
		storeMock.EXPECT().
			SetOrderStatus(ctx, "order_test_1", model.OrderStatusSucceeded).
			Return(false, nil)

		err := mart.HandleCallback(ctx, payload)
		assert.NoError(t, err)
	})

	t.Run("success provisions new user and grants module", func(t *testing.T) {
		mart, storeMock, gatewayMock, mailerMock := newService(t)

		promo := "FRIEND"
		order := model.Order{
			ID:        "order_test_1",
			Email:     "buyer@example.com",
			Module:    "A1",
			Status:    model.OrderStatusPending,
			PromoCode: &promo,
			AmountRUB: 2300,
			Bonuses:   200,
		}

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(true)
		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(order, nil)
		storeMock.EXPECT().
			SetOrderStatus(ctx, "order_test_1", model.OrderStatusSucceeded).
			Return(true, nil)
		storeMock.EXPECT().
			ConsumePromoCode(ctx, "FRIEND", "buyer@example.com", 500).
			Return(nil)
		storeMock.EXPECT().
			SpendBonuses(ctx, "buyer@example.com", 200).
			Return(nil)
		storeMock.EXPECT().
			GetUserByEmail(ctx, "buyer@example.com").
			Return(model.User{}, errstore.ErrNotFoundData)
		storeMock.EXPECT().
			CreateUser(ctx, "buyer@example.com", gomock.Any()).
			Return(model.User{ID: 7, Email: "buyer@example.com"}, nil)
		storeMock.EXPECT().
			GrantModule(ctx, uint(7), "A1").
			Return(nil)
		storeMock.EXPECT().
			GetContentByModule(ctx, "A1").
			Return(model.Content{Module: "A1", Title: "Базовые понятия"}, nil)
		mailerMock.EXPECT().
			SendAccessGranted("buyer@example.com", "Базовые понятия", "order_test_1", gomock.Not("")).
			Return(nil)

		err := mart.HandleCallback(ctx, payload)
		assert.NoError(t, err)
	})

	t.Run("consumed promo code does not block fulfillment", func(t *testing.T) {
		mart, storeMock, gatewayMock, mailerMock := newService(t)

		promo := "FRIEND"
		order := model.Order{
			ID:        "order_test_1",
			Email:     "buyer@example.com",
			Module:    "A1",
			Status:    model.OrderStatusPending,
			PromoCode: &promo,
			AmountRUB: 2500,
		}

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(true)
		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(order, nil)
		storeMock.EXPECT().
			SetOrderStatus(ctx, "order_test_1", model.OrderStatusSucceeded).
			Return(true, nil)
		storeMock.EXPECT().
			ConsumePromoCode(ctx, "FRIEND", "buyer@example.com", 500).
			Return(errstore.ErrPromoCodeUsed)
		storeMock.EXPECT().
			GetUserByEmail(ctx, "buyer@example.com").
			Return(model.User{ID: 7, Email: "buyer@example.com"}, nil)
		storeMock.EXPECT().
			GrantModule(ctx, uint(7), "A1").
			Return(nil)
		storeMock.EXPECT().
			GetContentByModule(ctx, "A1").
			Return(model.Content{Module: "A1", Title: "Базовые понятия"}, nil)
		mailerMock.EXPECT().
			SendAccessGranted("buyer@example.com", "Базовые понятия", "order_test_1", "").
			Return(nil)

		err := mart.HandleCallback(ctx, payload)
		assert.NoError(t, err)
	})

	t.Run("success for known user sends no password", func(t *testing.T) {
		mart, storeMock, gatewayMock, mailerMock := newService(t)

		order := model.Order{
			ID:        "order_test_1",
			Email:     "buyer@example.com",
			Module:    "A1",
			Status:    model.OrderStatusPending,
			AmountRUB: 3000,
		}

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(true)
		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(order, nil)
		storeMock.EXPECT().
			SetOrderStatus(ctx, "order_test_1", model.OrderStatusSucceeded).
			Return(true, nil)
		storeMock.EXPECT().
			GetUserByEmail(ctx, "buyer@example.com").
			Return(model.User{ID: 7, Email: "buyer@example.com"}, nil)
		storeMock.EXPECT().
			GrantModule(ctx, uint(7), "A1").
			Return(nil)
		storeMock.EXPECT().
			GetContentByModule(ctx, "A1").
			Return(model.Content{Module: "A1", Title: "Базовые понятия"}, nil)
		mailerMock.EXPECT().
			SendAccessGranted("buyer@example.com", "Базовые понятия", "order_test_1", "").
			Return(nil)

		err := mart.HandleCallback(ctx, payload)
		assert.NoError(t, err)
	})

	t.Run("failed payment only settles the order", func(t *testing.T) {
		mart, storeMock, gatewayMock, _ := newService(t)

		failed := payload
		failed.Status = "canceled"

		gatewayMock.EXPECT().
			VerifyCallback("order_test_1", "300000", "signature").
			Return(true)
		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(model.Order{ID: "order_test_1", Status: model.OrderStatusPending}, nil)
		storeMock.EXPECT().
			SetOrderStatus(ctx, "order_test_1", model.OrderStatusFailed).
			Return(true, nil)

		err := mart.HandleCallback(ctx, failed)
		assert.NoError(t, err)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mart, storeMock, _, _ := newService(t)

		storeMock.EXPECT().
			CreateUser(ctx, "user@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, email, hash string) (model.User, error) {
				assert.NotEqual(t, "pass", hash)
				return model.User{ID: 1, Email: email, ReferralCode: "AB12C"}, nil
			})

		user, err := mart.Register(ctx, " User@example.com ", "pass")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, "AB12C", user.ReferralCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mart, storeMock, _, _ := newService(t)

		storeMock.EXPECT().
			CreateUser(ctx, "user@example.com", gomock.Any()).
			Return(model.User{}, errstore.ErrEmailNotUnique)

		_, err := mart.Register(ctx, "user@example.com", "pass")
		assert.ErrorIs(t, err, errstore.ErrEmailNotUnique)
	})

	t.Run("invalid input", func(t *testing.T) {
		mart, _, _, _ := newService(t)

		_, err := mart.Register(ctx, "", "pass")
		assert.ErrorIs(t, err, coursemart.ErrEmailNotValid)

		_, err = mart.Register(ctx, "user@example.com", "")
		assert.ErrorIs(t, err, coursemart.ErrPasswordNotValid)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mart, storeMock, _, _ := newService(t)

		hash, err := coursemart.HashPassword("pass")
		require.NoError(t, err)

		storeMock.EXPECT().
			GetUserByEmail(ctx, "user@example.com").
			Return(model.User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil)
		storeMock.EXPECT().
			TouchLastLogin(ctx, uint(1)).
			Return(nil)

		user, err := mart.Login(ctx, "user@example.com", "pass")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mart, storeMock, _, _ := newService(t)

		hash, err := coursemart.HashPassword("pass")
		require.NoError(t, err)

		storeMock.EXPECT().
			GetUserByEmail(ctx, "user@example.com").
			Return(model.User{ID: 1, PasswordHash: hash}, nil)

		_, err = mart.Login(ctx, "user@example.com", "wrong")
		assert.ErrorIs(t, err, coursemart.ErrCredentialsWrong)
	})

	t.Run("unknown user", func(t *testing.T) {
		mart, storeMock, _, _ := newService(t)

		storeMock.EXPECT().
			GetUserByEmail(ctx, "user@example.com").
			Return(model.User{}, errstore.ErrNotFoundData)

		_, err := mart.Login(ctx, "user@example.com", "pass")
		assert.ErrorIs(t, err, coursemart.ErrCredentialsWrong)
	})
}

func TestOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("known order", func(t *testing.T) {
		mart, storeMock, _, _ := newService(t)

		storeMock.EXPECT().
			GetOrder(ctx, "order_test_1").
			Return(model.Order{ID: "order_test_1", Status: model.OrderStatusSucceeded}, nil)

		order, err := mart.OrderStatus(ctx, "order_test_1")
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusSucceeded, order.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		mart, storeMock, _, _ := newService(t)

		storeMock.EXPECT().
			GetOrder(ctx, "order_none").
			Return(model.Order{}, errstore.ErrNotFoundData)

		_, err := mart.OrderStatus(ctx, "order_none")
		assert.ErrorIs(t, err, coursemart.ErrOrderNotFound)
	})
}

func TestEmailExists(t *testing.T) {
	ctx := context.Background()
	mart, storeMock, _, _ := newService(t)

	storeMock.EXPECT().
		GetUserByEmail(ctx, "user@example.com").
		Return(model.User{ID: 1}, nil)
	exists, err := mart.EmailExists(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	storeMock.EXPECT().
		GetUserByEmail(ctx, "ghost@example.com").
		Return(model.User{}, errstore.ErrNotFoundData)
	exists, err = mart.EmailExists(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
