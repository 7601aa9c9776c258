package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/playmixer/coursemart/docs"
	"github.com/playmixer/coursemart/internal/adapters/store/model"
	"github.com/playmixer/coursemart/internal/core/coursemart"
	"github.com/playmixer/coursemart/pkg/jwt"
)

var (
	cookieName    = "token"
	cookieKey     = "UserID"
	contextUserID = "userID"
)

type coursemartI interface {
	CreatePayment(ctx context.Context, email, module, promoCode string, bonuses int, returnURL string) (string, string, error)
	HandleCallback(ctx context.Context, payload coursemart.CallbackPayload) error
	OrderStatus(ctx context.Context, orderID string) (model.Order, error)
	Register(ctx context.Context, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UserModules(ctx context.Context, userID uint) ([]string, error)
	Catalog(ctx context.Context) ([]*model.Content, error)
}

type Server struct {
	log     *zap.Logger
	engine  *gin.Engine
	service coursemartI
	address string
	secret  []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
	}
}

//	@title			Coursemart
//	@version		1.0
//	@description	Продажа доступа к видеокурсам: платежи, вебхуки, доступы.
//	@host			localhost:8080
//	@BasePath		/

func New(service coursemartI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
	)
	api := s.engine.Group("/api")
	{
		api.POST("/create-payment", s.handlerCreatePayment)
		api.POST("/callback", s.handlerCallback)
		api.GET("/order-status", s.handlerOrderStatus)
		api.POST("/register", s.handlerRegister)
		api.POST("/login", s.handlerLogin)
		api.POST("/check-email", s.handlerCheckEmail)
		api.GET("/content", s.handlerContent)

		authAPI := api.Group("/user")
		authAPI.Use(s.Authentication())
		{
			authAPI.GET("/modules", s.handlerUserModules)
		}
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			s.log.Error("failed shutdown server", zap.Error(err))
		}
	}()

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, err error) {
	var ok bool
	var userIDS string
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed reade user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err = jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return 0, fmt.Errorf("unverify usercookie: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorize(c *gin.Context, userID uint) error {
	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(userID)))
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}
