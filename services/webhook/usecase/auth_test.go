package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var ana = &models.Customer{CPF: "12345678900", Name: "Ana", Email: "ana@example.com"}

func TestStartLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Malformed CPF", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		resp := d.uc.StartLogin(ctx, &models.SessionParams{CPF: "1234"})

		assert.Equal(t, "CPF em formato inválido!", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"invalid"}`, paramsJSON(t, resp))
	})

	t.Run("Unknown CPF sends no parameters", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").Return(nil, nil)

		resp := d.uc.StartLogin(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.Equal(t, "CPF não encontrado. Deseja se cadastrar ou tentar novamente?", resp.Text())
		assert.Nil(t, resp.SessionInfo.Parameters)
	})

	t.Run("Database error", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		resp := d.uc.StartLogin(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.Equal(t, "Ocorreu um erro ao acessar o banco de dados.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"boom","cpf_cliente":"12345678900"}`, paramsJSON(t, resp))
	})

	t.Run("Session store carries the code", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").Return(ana, nil)

		var mailed string
		d.mail.EXPECT().SendAuthCode(gomock.Any(), "ana@example.com", gomock.Any(), 3*time.Minute).
			DoAndReturn(func(_ context.Context, _, code string, _ time.Duration) error {
				mailed = code
				return nil
			})

		resp := d.uc.StartLogin(ctx, &models.SessionParams{CPF: "123.456.789-00"})

		params, ok := resp.SessionInfo.Parameters.(models.LoginParams)
		require.True(t, ok)
		require.NotNil(t, params.TokenInfo)
		assert.Len(t, mailed, 6)
		assert.Equal(t, mailed, params.TokenInfo.Code)
		assert.Equal(t, "2026-10-15 14:03:00", params.TokenInfo.ValidUntil)
		assert.Equal(t, "ana@example.com", params.Email)
		assert.Equal(t, "Ana", params.Name)
		assert.True(t, params.LoggedIn)
	})

	t.Run("Redis store keeps the code out of the session", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreRedis)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), "12345678900").Return(ana, nil)

		var saved string
		gomock.InOrder(
			d.repo.EXPECT().SaveAuthCode(gomock.Any(), "12345678900", gomock.Any(), 3*time.Minute).
				DoAndReturn(func(_ context.Context, _, code string, _ time.Duration) error {
					saved = code
					return nil
				}),
			d.mail.EXPECT().SendAuthCode(gomock.Any(), "ana@example.com", gomock.Any(), 3*time.Minute).Return(nil),
		)

		resp := d.uc.StartLogin(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.NotEmpty(t, saved)
		assert.NotRegexp(t, `^\d{6}$`, saved)
		assert.JSONEq(t, `{"token_info":{"valid_until":"2026-10-15 14:03:00"},"email":"ana@example.com","nome_cliente":"Ana","logou":true}`, paramsJSON(t, resp))
	})

	t.Run("Mail failure is reported", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), gomock.Any()).Return(ana, nil)
		d.mail.EXPECT().SendAuthCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("535 bad credentials"))

		resp := d.uc.StartLogin(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.Equal(t, "Não foi possível enviar o código de autenticação. Tente novamente.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"535 bad credentials"}`, paramsJSON(t, resp))
	})

	t.Run("Redis failure skips the mail", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreRedis)
		d.repo.EXPECT().GetCustomerByCPF(gomock.Any(), gomock.Any()).Return(ana, nil)
		d.repo.EXPECT().SaveAuthCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		resp := d.uc.StartLogin(ctx, &models.SessionParams{CPF: "12345678900"})

		assert.Equal(t, "Não foi possível enviar o código de autenticação. Tente novamente.", resp.Text())
	})
}

func TestVerifyAuthCode_SessionStore(t *testing.T) {
	ctx := context.Background()
	valid := &models.AuthCode{Code: "654321", ValidUntil: "2026-10-15 14:03:00"}

	t.Run("No code issued", func(t *testing.T) {
		for _, info := range []*models.AuthCode{nil, {ValidUntil: "2026-10-15 14:03:00"}} {
			d := newTestUC(t, models.AuthCodeStoreSession)

			resp := d.uc.VerifyAuthCode(ctx, &models.SessionParams{TokenInfo: info, CodeInput: "654321"})

			assert.Equal(t, "Erro:Código não fornecido.", resp.Text())
			assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"Dados ausentes"}`, paramsJSON(t, resp))
		}
	})

	t.Run("Expired even when the code matches", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)
		d.uc.now = func() time.Time { return fixedNow.Add(3*time.Minute + time.Second) }

		resp := d.uc.VerifyAuthCode(ctx, &models.SessionParams{TokenInfo: valid, CodeInput: "654321"})

		assert.Empty(t, resp.Text())
		assert.JSONEq(t, `{"token_info":null,"token_cliente":null,"token":"Expirado"}`, paramsJSON(t, resp))
	})

	t.Run("Unreadable expiry counts as expired", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		resp := d.uc.VerifyAuthCode(ctx, &models.SessionParams{
			TokenInfo: &models.AuthCode{Code: "654321", ValidUntil: "soon"},
			CodeInput: "654321",
		})

		assert.JSONEq(t, `{"token_info":null,"token_cliente":null,"token":"Expirado"}`, paramsJSON(t, resp))
	})

	t.Run("Match", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		resp := d.uc.VerifyAuthCode(ctx, &models.SessionParams{TokenInfo: valid, CodeInput: "654321"})

		assert.Empty(t, resp.Text())
		assert.JSONEq(t, `{"token":true,"token_cliente":null}`, paramsJSON(t, resp))
	})

	t.Run("Mismatch", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreSession)

		resp := d.uc.VerifyAuthCode(ctx, &models.SessionParams{TokenInfo: valid, CodeInput: "111111"})

		assert.Equal(t, "Código incorreto. Tente novamente.", resp.Text())
		assert.JSONEq(t, `{"token":false,"token_cliente":null}`, paramsJSON(t, resp))
	})
}

func TestVerifyAuthCode_RedisStore(t *testing.T) {
	ctx := context.Background()
	info := &models.AuthCode{ValidUntil: "2026-10-15 14:03:00"}
	params := func(code string) *models.SessionParams {
		return &models.SessionParams{CPF: "123.456.789-00", TokenInfo: info, CodeInput: models.FlexString(code)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("654321"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := string(hash)

	t.Run("Match consumes the stored code", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreRedis)
		gomock.InOrder(
			d.repo.EXPECT().GetAuthCode(gomock.Any(), "12345678900").Return(stored, nil),
			d.repo.EXPECT().DeleteAuthCode(gomock.Any(), "12345678900").Return(nil),
		)

		resp := d.uc.VerifyAuthCode(ctx, params("654321"))

		assert.JSONEq(t, `{"token":true,"token_cliente":null}`, paramsJSON(t, resp))
	})

	t.Run("Missing key is expired", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreRedis)
		d.repo.EXPECT().GetAuthCode(gomock.Any(), "12345678900").Return("", nil)

		resp := d.uc.VerifyAuthCode(ctx, params("654321"))

		assert.JSONEq(t, `{"token_info":null,"token_cliente":null,"token":"Expirado"}`, paramsJSON(t, resp))
	})

	t.Run("Mismatch keeps the stored code", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreRedis)
		d.repo.EXPECT().GetAuthCode(gomock.Any(), "12345678900").Return(stored, nil)

		resp := d.uc.VerifyAuthCode(ctx, params("000000"))

		assert.JSONEq(t, `{"token":false,"token_cliente":null}`, paramsJSON(t, resp))
	})

	t.Run("Store error", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreRedis)
		d.repo.EXPECT().GetAuthCode(gomock.Any(), gomock.Any()).Return("", errors.New("redis down"))

		resp := d.uc.VerifyAuthCode(ctx, params("654321"))

		assert.Equal(t, "Ocorreu um erro ao acessar o banco de dados.", resp.Text())
		assert.JSONEq(t, `{"status_retorno":"erro","msg_erro":"redis down"}`, paramsJSON(t, resp))
	})

	t.Run("Expiry is checked before the store", func(t *testing.T) {
		d := newTestUC(t, models.AuthCodeStoreRedis)
		d.uc.now = func() time.Time { return fixedNow.Add(time.Hour) }

		resp := d.uc.VerifyAuthCode(ctx, params("654321"))

		assert.JSONEq(t, `{"token_info":null,"token_cliente":null,"token":"Expirado"}`, paramsJSON(t, resp))
	})
}
