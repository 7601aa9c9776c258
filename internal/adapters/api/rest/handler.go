package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/coursemart/internal/adapters/gateway"
	"github.com/playmixer/coursemart/internal/adapters/store/errstore"
	"github.com/playmixer/coursemart/internal/core/coursemart"
	"go.uber.org/zap"
)

var (
	msgErrorCloseBody = "failed close body request"
	msgInternalError  = "Internal server error"
)

//	@Summary	Create payment
//	@Schemes
//	@Description	создание платежа и получение страницы оплаты шлюза
//	@Tags			payment
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		tCreatePayment	true	"payment"
//	@Success		200		{object}	tCreatePaymentResponse	"платеж создан"
//	@failure		400		"email и модуль обязательны"
//	@failure		500		"шлюз недоступен или внутренняя ошибка"
//	@Router			/api/create-payment [post]
func (s *Server) handlerCreatePayment(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tCreatePayment{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email и модуль обязательны"})
		return
	}

	orderID, html, err := s.service.CreatePayment(ctx, jBody.Email, jBody.Module, jBody.PromoCode, jBody.Bonuses, jBody.ReturnURL)
	if err != nil {
		if errors.Is(err, coursemart.ErrEmailNotValid) || errors.Is(err, coursemart.ErrModuleNotValid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email и модуль обязательны"})
			return
		}
		if errors.Is(err, gateway.ErrUnavailable) {
			s.log.Error("payment gateway unavailable", zap.String("orderID", orderID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
			return
		}

		s.log.Error("failed create payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, tCreatePaymentResponse{
		OrderID:         orderID,
		PaymentPageHTML: html,
	})
}

//	@Summary	Payment callback
//	@Schemes
//	@Description	вебхук платежного шлюза о результате оплаты
//	@Tags			payment
//	@Accept			x-www-form-urlencoded
//	@Produce		plain
//	@Success		200	"обработано"
//	@failure		400	"невалидный запрос, подпись или неизвестный заказ"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/callback [post]
func (s *Server) handlerCallback(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := s.parseCallback(c)
	if err != nil {
		s.log.Warn("failed parse callback", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.HandleCallback(ctx, payload); err != nil {
		if errors.Is(err, coursemart.ErrCallbackNotValid) ||
			errors.Is(err, coursemart.ErrSignatureMismatch) ||
			errors.Is(err, coursemart.ErrOrderNotFound) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed handle callback", zap.String("orderID", payload.OrderID), zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}

// parseCallback accepts both encodings the gateway is known to send:
// x-www-form-urlencoded and JSON.
func (s *Server) parseCallback(c *gin.Context) (coursemart.CallbackPayload, error) {
	payload := coursemart.CallbackPayload{}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return payload, fmt.Errorf("failed read body: %w", err)
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	body := string(bBody)
	contentType := strings.ToLower(c.ContentType())

	if strings.Contains(contentType, "json") || strings.HasPrefix(strings.TrimSpace(body), "{") {
		fields := map[string]interface{}{}
		if err := json.Unmarshal(bBody, &fields); err != nil {
			return payload, fmt.Errorf("failed parse json callback: %w", err)
		}
		payload.OrderID = fieldString(fields, "order_id")
		payload.Status = fieldString(fields, "status")
		payload.Amount = fieldString(fields, "amount")
		payload.Signature = fieldString(fields, "signature")
		return payload, nil
	}

	values, err := url.ParseQuery(body)
	if err != nil {
		return payload, fmt.Errorf("failed parse form callback: %w", err)
	}
	payload.OrderID = values.Get("order_id")
	payload.Status = values.Get("status")
	payload.Amount = values.Get("amount")
	payload.Signature = values.Get("signature")

	return payload, nil
}

func fieldString(fields map[string]interface{}, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		// Amounts arrive as JSON numbers, always whole kopecks.
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}

//	@Summary	Order status
//	@Schemes
//	@Description	проверка статуса заказа со стороны фронта
//	@Tags			payment
//	@Produce		json
//	@Param			id	query		string	true	"order id"
//	@Success		200	{object}	tOrderStatusResponse	"статус заказа"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/order-status [get]
func (s *Server) handlerOrderStatus(c *gin.Context) {
	ctx := c.Request.Context()

	orderID := c.Query("id")
	if orderID == "" {
		c.JSON(http.StatusOK, tOrderStatusResponse{Status: "unknown"})
		return
	}

	order, err := s.service.OrderStatus(ctx, orderID)
	if err != nil {
		if errors.Is(err, coursemart.ErrOrderNotFound) {
			c.JSON(http.StatusOK, tOrderStatusResponse{Status: "unknown"})
			return
		}

		s.log.Error("failed get order status", zap.String("orderID", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, tOrderStatusResponse{
		Status: string(order.Status),
		Payload: &tOrderPayload{
			Email:     order.Email,
			Module:    order.Module,
			AmountRUB: order.AmountRUB,
			Bonuses:   order.Bonuses,
			PromoCode: order.PromoCode,
		},
	})
}

//	@Summary	Register user
//	@Schemes
//	@Description	регистрация пользователя
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200	"пользователь зарегистрирован"
//	@failure		400	"неверный формат запроса"
//	@failure		409	"email уже занят"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tRegistration{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email и пароль обязательны"})
		return
	}

	user, err := s.service.Register(ctx, jBody.Email, jBody.Password)
	if err != nil {
		if errors.Is(err, errstore.ErrEmailNotUnique) {
			c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким email уже существует"})
			return
		}
		if errors.Is(err, coursemart.ErrEmailNotValid) || errors.Is(err, coursemart.ErrPasswordNotValid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email и пароль обязательны"})
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	if err = s.authorize(c, user.ID); err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

//	@Summary	Login user
//	@Schemes
//	@Description	авторизация пользователя
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			auth	body		tAuthorization	true	"auth"
//	@Success		200		{object}	tLoginResponse	"пользователь аутентифицирован"
//	@failure		400		"неверный формат запроса"
//	@failure		401		"неверная пара email/пароль"
//	@failure		500		"внутренняя ошибка сервера"
//	@Router			/api/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tAuthorization{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email и пароль обязательны"})
		return
	}

	user, err := s.service.Login(ctx, jBody.Email, jBody.Password)
	if err != nil {
		if errors.Is(err, coursemart.ErrEmailNotValid) || errors.Is(err, coursemart.ErrPasswordNotValid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email и пароль обязательны"})
			return
		}
		if errors.Is(err, coursemart.ErrCredentialsWrong) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный email или пароль"})
			return
		}

		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = s.authorize(c, user.ID); err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tLoginResponse{
		Success: true,
		User: tUser{
			ID:           user.ID,
			Email:        user.Email,
			ReferralCode: user.ReferralCode,
			BonusBalance: user.BonusBalance,
		},
	})
}

//	@Summary	Check email
//	@Schemes
//	@Description	проверка существования email перед оплатой
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			check	body		tCheckEmail	true	"check"
//	@Success		200		{object}	tCheckEmailResponse	"результат проверки"
//	@failure		400		"email обязателен"
//	@failure		500		"внутренняя ошибка сервера"
//	@Router			/api/check-email [post]
func (s *Server) handlerCheckEmail(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tCheckEmail{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email обязателен"})
		return
	}

	exists, err := s.service.EmailExists(ctx, jBody.Email)
	if err != nil {
		if errors.Is(err, coursemart.ErrEmailNotValid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email обязателен"})
			return
		}

		s.log.Error("failed check email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, tCheckEmailResponse{Exists: exists})
}

//	@Summary	Module catalog
//	@Schemes
//	@Description	каталог модулей с ценами
//	@Tags			content
//	@Produce		json
//	@Success		200	{array}	tContent	"каталог"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/content [get]
func (s *Server) handlerContent(c *gin.Context) {
	ctx := c.Request.Context()

	content, err := s.service.Catalog(ctx)
	if err != nil {
		s.log.Error("failed get catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	response := []tContent{}
	for _, item := range content {
		response = append(response, tContent{
			Module: item.Module,
			Title:  item.Title,
			Price:  item.Price,
		})
	}

	c.JSON(http.StatusOK, response)
}

//	@Summary	User modules
//	@Schemes
//	@Description	модули, доступные пользователю
//	@Tags			content
//	@Produce		json
//	@Success		200	{array}	string	"список модулей"
//	@failure		401	"пользователь не авторизован"
//	@failure		500	"внутренняя ошибка сервера"
//	@Router			/api/user/modules [get]
func (s *Server) handlerUserModules(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetUint(contextUserID)
	if userID == 0 {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	modules, err := s.service.UserModules(ctx, userID)
	if err != nil {
		s.log.Error("failed get user modules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	if modules == nil {
		modules = []string{}
	}

	c.JSON(http.StatusOK, modules)
}
