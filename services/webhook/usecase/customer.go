package usecase

import (
	"context"
	"strings"

	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/piresc/gamestore-webhook/internal/utils"
)

// RegisterCustomer stores a new customer. Name and email are checked before the CPF.
func (u *WebhookUC) RegisterCustomer(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	if name == "" || email == "" {
		return models.NewWebhookResponse(msgRequiredFields, models.StatusParams{Status: statusInvalidData})
	}

	cpf, ok := utils.NormalizeCPF(params.CPF.String())
	if !ok {
		return models.NewWebhookResponse(msgInvalidCPF, models.InvalidCPFParams{
			Status:       statusInvalidCPF,
			ErrorMessage: invalidCPFErrorMessage,
		})
	}

	customer := &models.Customer{CPF: cpf, Name: name, Email: email}
	if err := u.repo.CreateCustomer(ctx, customer); err != nil {
		logger.ErrorCtx(ctx, "Failed to register customer",
			logger.String("cpf", utils.MaskCPF(cpf)),
			logger.Err(err))
		return models.NewWebhookResponse(msgInsertFailed, models.ErrorParams{
			Status:       statusError,
			ErrorMessage: err.Error(),
		})
	}

	logger.InfoCtx(ctx, "Customer registered", logger.String("cpf", utils.MaskCPF(cpf)))

	return models.NewWebhookResponse("", models.CustomerParams{
		Name:  customer.Name,
		CPF:   customer.CPF,
		Email: customer.Email,
	})
}

// ResetEmail makes the flow ask for the email again
func (u *WebhookUC) ResetEmail(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	return models.NewWebhookResponse("", models.ResetEmailParams{Status: statusEmailReset})
}

// ResetCPF makes the flow ask for the CPF again
func (u *WebhookUC) ResetCPF(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	return models.NewWebhookResponse(msgRetypeCPF, models.ResetCPFParams{Status: statusCPFReset})
}

// ChangeEmail replaces the stored email of an existing customer
func (u *WebhookUC) ChangeEmail(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	cpf := utils.FormatCPF(params.CPF.String())
	email := strings.TrimSpace(params.Email)
	if email == "" {
		return models.NewWebhookResponse(msgEmailRequired, models.StatusParams{Status: statusInvalidData})
	}

	customer, err := u.repo.GetCustomerByCPF(ctx, cpf)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to look up customer for email change",
			logger.String("cpf", utils.MaskCPF(cpf)),
			logger.Err(err))
		return models.NewWebhookResponse(msgCustomerLookupErr, models.ErrorParams{
			Status:       statusError,
			ErrorMessage: err.Error(),
		})
	}
	if customer == nil {
		return models.NewWebhookResponse(msgCPFNotFoundEmail, models.StatusParams{Status: statusCPFNotFound})
	}

	if err := u.repo.UpdateCustomerEmail(ctx, cpf, email); err != nil {
		logger.ErrorCtx(ctx, "Failed to update customer email",
			logger.String("cpf", utils.MaskCPF(cpf)),
			logger.Err(err))
		return models.NewWebhookResponse(msgEmailUpdateErr, models.ErrorParams{
			Status:       statusError,
			ErrorMessage: err.Error(),
		})
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = customer.Name
	}

	logger.InfoCtx(ctx, "Customer email changed",
		logger.String("cpf", utils.MaskCPF(cpf)),
		logger.String("email", utils.MaskEmail(email)))

	return models.NewWebhookResponse("", models.CustomerParams{Name: name, CPF: cpf, Email: email})
}

// LookupCustomer tells the flow whether the CPF belongs to a registered customer
func (u *WebhookUC) LookupCustomer(ctx context.Context, params *models.SessionParams) *models.WebhookResponse {
	cpf, ok := utils.NormalizeCPF(params.CPF.String())
	if !ok {
		return models.NewWebhookResponse(msgInvalidCPF, models.InvalidCPFParams{
			Status:       statusInvalidLookupCPF,
			ErrorMessage: invalidCPFErrorMessage,
		})
	}

	customer, err := u.repo.GetCustomerByCPF(ctx, cpf)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to look up customer",
			logger.String("cpf", utils.MaskCPF(cpf)),
			logger.Err(err))
		return models.NewWebhookResponse(msgDatabaseError, models.ErrorParams{
			Status:       statusError,
			ErrorMessage: err.Error(),
			CPF:          cpf,
		})
	}
	if customer == nil {
		return models.NewWebhookResponse("", models.CustomerLookupParams{CPF: cpf, Registered: false})
	}

	return models.NewWebhookResponse("", models.CustomerLookupParams{
		CPF:        cpf,
		Registered: true,
		Email:      customer.Email,
		Name:       customer.Name,
	})
}
