package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"civix/internal/services"
	"civix/pkg/config"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	smtpCfg := services.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		FromName: cfg.MailFromName,
		UseSSL:   cfg.SMTPPort == 465,

		AppName: "Civix",
	}

	mailService, err := services.NewSMTPMailService(smtpCfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
