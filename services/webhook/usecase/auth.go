package usecase

import (
	"context"
	"strings"

	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/piresc/gamestore-webhook/internal/utils"
)

// StartLogin issues a one-time code to the email of the customer owning the CPF.
// With a server-side store the code itself stays out of the session.
func (u *WebhookUC) StartLogin(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	cpf, ok := utils.NormalizeCPF(params.CPF.String())
	if !ok {
		return models.NewWebhookResponse(msgMalformedCPF, models.StatusParams{Status: statusMalformedCPF})
	}

	customer, err := u.repo.GetCustomerByCPF(ctx, cpf)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to look up customer for login",
			logger.String("cpf", utils.MaskCPF(cpf)),
			logger.Err(err))
		return models.NewWebhookResponse(msgDatabaseError, models.ErrorParams{
			Status:       statusError,
			ErrorMessage: err.Error(),
			CPF:          cpf,
		})
	}
	if customer == nil {
		return models.NewWebhookResponse(msgCPFNotFoundLogin, nil)
	}

	code, err := utils.GenerateNumericCode(authCodeDigits)
	if err != nil {
		return u.authCodeNotSent(ctx, cpf, err)
	}

	ttl := u.cfg.AuthCode.TTL
	authCode := models.NewAuthCode(code, u.now(), ttl)

	tokenInfo := authCode
	if u.cfg.AuthCode.ServerSide() {
		hash, err := utils.HashSecret(code)
		if err != nil {
			return u.authCodeNotSent(ctx, cpf, err)
		}
		if err := u.repo.SaveAuthCode(ctx, cpf, hash, ttl); err != nil {
			return u.authCodeNotSent(ctx, cpf, err)
		}
		tokenInfo = &models.AuthCode{ValidUntil: authCode.ValidUntil}
	}

	if err := u.mailGW.SendAuthCode(ctx, customer.Email, code, ttl); err != nil {
		return u.authCodeNotSent(ctx, cpf, err)
	}

	logger.InfoCtx(ctx, "Auth code issued",
		logger.String("cpf", utils.MaskCPF(cpf)),
		logger.String("valid_until", authCode.ValidUntil),
		logger.String("store", u.cfg.AuthCode.Store))

	return models.NewWebhookResponse("", models.LoginParams{
		TokenInfo: tokenInfo,
		Email:     customer.Email,
		Name:      customer.Name,
		LoggedIn:  true,
	})
}

func (u *WebhookUC) authCodeNotSent(ctx context.Context, cpf string, err error) *models.WebhookResponse {
	logger.ErrorCtx(ctx, "Failed to issue auth code",
		logger.String("cpf", utils.MaskCPF(cpf)),
		logger.Err(err))
	return models.NewWebhookResponse(msgAuthCodeNotSent, models.ErrorParams{
		Status:       statusError,
		ErrorMessage: err.Error(),
	})
}

// VerifyAuthCode checks the typed code. Expiry wins over a matching code.
func (u *WebhookUC) VerifyAuthCode(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	tokenInfo := params.TokenInfo
	if tokenInfo == nil || (!u.cfg.AuthCode.ServerSide() && tokenInfo.Code == "") {
		return models.NewWebhookResponse(msgAuthCodeMissing, models.ErrorParams{
			Status:       statusError,
			ErrorMessage: missingAuthCodeErrorMsg,
		})
	}

	if tokenInfo.Expired(u.now()) {
		return authCodeExpired()
	}

	input := strings.TrimSpace(params.CodeInput.String())
	matches := input == tokenInfo.Code
	cpf := utils.FormatCPF(params.CPF.String())
	if u.cfg.AuthCode.ServerSide() {
		stored, err := u.repo.GetAuthCode(ctx, cpf)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to read auth code",
				logger.String("cpf", utils.MaskCPF(cpf)),
				logger.Err(err))
			return models.NewWebhookResponse(msgDatabaseError, models.ErrorParams{
				Status:       statusError,
				ErrorMessage: err.Error(),
			})
		}
		if stored == "" {
			return authCodeExpired()
		}
		matches = utils.SecretMatches(stored, input)
	}

	if !matches {
		return models.NewWebhookResponse(msgAuthCodeWrong, models.AuthCodeResultParams{Token: false})
	}

	if u.cfg.AuthCode.ServerSide() {
		if err := u.repo.DeleteAuthCode(ctx, cpf); err != nil {
			logger.WarnCtx(ctx, "Failed to consume auth code",
				logger.String("cpf", utils.MaskCPF(cpf)),
				logger.Err(err))
		}
	}

	return models.NewWebhookResponse("", models.AuthCodeResultParams{Token: true})
}

func authCodeExpired() *models.WebhookResponse {
	return models.NewWebhookResponse("", models.AuthCodeExpiredParams{Token: statusAuthCodeExpired})
}
