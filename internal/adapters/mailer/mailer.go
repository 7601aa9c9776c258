package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Config struct {
	Host    string `env:"SMTP_HOST"`
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
	From    string `env:"MAIL_FROM"`
	SiteURL string `env:"SITE_URL" envDefault:"https://program-kids.vercel.app"`
	Port    int    `env:"SMTP_PORT" envDefault:"465"`
}

type Mailer struct {
	log    *zap.Logger
	dialer *gomail.Dialer
	cfg    *Config
}

type option func(*Mailer)

func Logger(log *zap.Logger) option {
	return func(m *Mailer) {
		if log != nil {
			m.log = log
		}
	}
}

func New(cfg *Config, options ...option) *Mailer {
	m := &Mailer{
		log:    zap.NewNop(),
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		cfg:    cfg,
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// SendAccessGranted mails the buyer that the module is open. password is empty
// for already registered users.
func (m *Mailer) SendAccessGranted(email, moduleTitle, orderID, password string) error {
	passwordInfo := "Пароль — как при предыдущем входе"
	if password != "" {
		passwordInfo = fmt.Sprintf("Пароль: <b>%s</b>", password)
	}

	body := fmt.Sprintf(`<div style="font-family:Arial,Helvetica,sans-serif;font-size:14px;color:#222">
<p>Здравствуйте!</p>
<p>Оплата по заказу <b>%s</b> получена. Доступ к модулю <b>%s</b> открыт.</p>
<p>Логин (email): <b>%s</b><br/>%s</p>
<p>Войти можно по ссылке: <a href="%s#auth">%s</a></p>
<hr/>
<p style="color:#666">Если письмо пришло по ошибке — просто проигнорируйте его.</p>
</div>`, orderID, moduleTitle, email, passwordInfo, m.cfg.SiteURL, m.cfg.SiteURL)

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Доступ к модулю «%s» открыт", moduleTitle))
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("failed send mail",
			zap.String("to", email),
			zap.String("orderID", orderID),
			zap.Error(err),
		)
		return fmt.Errorf("failed send mail: %w", err)
	}
	m.log.Info("access mail sent",
		zap.String("to", email),
		zap.String("orderID", orderID),
	)

	return nil
}
