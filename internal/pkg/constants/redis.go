package constants

// Redis key formats
const (
	// Webhook Service
	KeyAuthCode = "webhook:auth_code:%s" // Format: webhook:auth_code:{cpf}
)
