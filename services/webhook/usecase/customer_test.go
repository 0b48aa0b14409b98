package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing name or email wins over a bad CPF", func(t *testing.T) {
		cases := []models.SessionParams{
			{Name: "", Email: "ana@example.com", CPF: "123"},
			{Name: "Ana", Email: "", CPF: "12345678900"},
			{Name: "  ", Email: "ana@example.com", CPF: "12345678900"},
		}
		for _, params := range cases {
			d := newTestUC(t, models.AuthCodeStoreSession)
			params := params

			resp := d.uc.RegisterCustomer(ctx, &params)

			assert.Equal(t, "Erro: Nome e e-mail são obrigatórios!", resp.Text())
			assert.JSONEq(t, `{"status_retorno":"Erro nos dados"}`, paramsJSON(t, resp))
		}
	})

	t.Run("Invalid CPF clears it", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		resp := d.uc.RegisterCustomer(ctx, &models.SessionParams{Name: "Ana", Email: "ana@example.com", CPF: "123"})

		assert.Equal(t, "CPF inválido! Deseja tentar novamente?", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"CPF inválido","msg_erro":"deu ruim","cpf_cliente":null}`, paramsJSON(t, resp))
	})

	t.Run("Success stores the normalised CPF", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		d.repo.EXPECT().
			CreateCustomer(gomock.Any(), &models.Customer{CPF: "12345678900", Name: "Ana", Email: "ana@example.com"}).
			Return(nil)

		resp := d.uc.RegisterCustomer(ctx, &models.SessionParams{Name: "Ana", Email: "ana@example.com", CPF: "123.456.789-00"})

		assert.Empty(t, resp.Text())
		assert.JSONEq(t, `{"nome_cliente":"Ana","cpf_cliente":"12345678900","email_cliente":"ana@example.com"}`, paramsJSON(t, resp))
	})

	t.Run("Database error", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		d.repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

		resp := d.uc.RegisterCustomer(ctx, &models.SessionParams{Name: "Ana", Email: "ana@example.com", CPF: "12345678900"})

		assert.Equal(t, "Erro ao inserir cliente.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"duplicate key"}`, paramsJSON(t, resp))
	})
}

func TestResets(t *testing.T) {
	d := newTestUC(t, models.AuthCodeStoreSession)
	ctx := context.Background()

	resp := d.uc.ResetEmail(ctx, &models.SessionParams{Email: "old@example.com"})
	assert.Empty(t, resp.Text())
	assert.JSONEq(t, `{"status_retorno":"Email resetado","usuario_cadastrado":null,"email_cliente":null}`, paramsJSON(t, resp))

	resp = d.uc.ResetCPF(ctx, &models.SessionParams{CPF: "12345678900"})
	assert.Equal(t, "Por favor, digite o CPF novamente", resp.Text())
	assert.JSONEq(t, `{"status_retorno":"CPF resetado","validar_cpf":null,"cpf_cliente":null}`, paramsJSON(t, resp))
}

func TestChangeEmail(t *testing.T) {
	ctx := context.Background()
	stored := &models.Customer{CPF: "12345678900", Name: "Ana", Email: "old@example.com"}

	t.Run("Email required", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		resp := d.uc.ChangeEmail(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.Equal(t, "Erro: E-mail é obrigatório!", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"Erro nos dados"}`, paramsJSON(t, resp))
	})

	t.Run("Unknown CPF", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").Return(nil, nil)

		resp := d.uc.ChangeEmail(ctx, &models.SessionParams{CPF: "123.456.789-00", Email: "new@example.com"})

		assert.Equal(t, "CPF não encontrado. Não foi possível atualizar o e-mail.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"CPF não encontrado"}`, paramsJSON(t, resp))
	})

	t.Run("Updated with session name", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		gomock.InOrder(
			d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").Return(stored, nil),
			d.repo.EXPECT().UpdateCustomerEmail(gomock.Any(), "12345678900", "new@example.com").Return(nil),
		)

		resp := d.uc.ChangeEmail(ctx, &models.SessionParams{CPF: "12345678900", Email: "new@example.com", Name: "Ana Maria"})

		assert.JSONEq(t, `{"nome_cliente":"Ana Maria","cpf_cliente":"12345678900","email_cliente":"new@example.com"}`, paramsJSON(t, resp))
	})

	t.Run("Name falls back to the stored one", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").Return(stored, nil)
		d.repo.EXPECT().UpdateCustomerEmail(gomock.Any(), "12345678900", "new@example.com").Return(nil)

		resp := d.uc.ChangeEmail(ctx, &models.SessionParams{CPF: "12345678900", Email: "new@example.com"})

		assert.JSONEq(t, `{"nome_cliente":"Ana","cpf_cliente":"12345678900","email_cliente":"new@example.com"}`, paramsJSON(t, resp))
	})

	t.Run("Lookup error", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		resp := d.uc.ChangeEmail(ctx, &models.SessionParams{CPF: "12345678900", Email: "new@example.com"})

		assert.Equal(t, "Erro ao buscar cliente.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"timeout"}`, paramsJSON(t, resp))
	})

	t.Run("Update error", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().UpdateCustomerEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read only"))

		resp := d.uc.ChangeEmail(ctx, &models.SessionParams{CPF: "12345678900", Email: "new@example.com"})

		assert.Equal(t, "Erro ao atualizar o e-mail.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"read only"}`, paramsJSON(t, resp))
	})
}

func TestLookupCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid CPF", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		resp := d.uc.LookupCustomer(ctx, &models.SessionParams{CPF: "123"})

		assert.Equal(t, "CPF inválido! Deseja tentar novamente?", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"Invalido","msg_erro":"deu ruim","cpf_cliente":null}`, paramsJSON(t, resp))
	})

	t.Run("Registered", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").
			Return(&models.Customer{CPF: "12345678900", Name: "Ana", Email: "ana@example.com"}, nil)

		resp := d.uc.LookupCustomer(ctx, &models.SessionParams{CPF: "123.456.789-00"})

		assert.Empty(t, resp.Text())
		assert.JSONEq(t, `{"cpf_cliente":"12345678900","usuario_cadastrado":true,"email_cliente":"ana@example.com","nome_cliente":"Ana"}`, paramsJSON(t, resp))
	})

	t.Run("Not registered", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").Return(nil, nil)

		resp := d.uc.LookupCustomer(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.JSONEq(t, `{"cpf_cliente":"12345678900","usuario_cadastrado":false}`, paramsJSON(t, resp))
	})

	t.Run("Database error keeps the CPF", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		resp := d.uc.LookupCustomer(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.Equal(t, "Ocorreu um erro ao acessar o banco de dados.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"connection refused","cpf_cliente":"12345678900"}`, paramsJSON(t, resp))
	})
}
