package models

// Session parameter updates, one per handler outcome. Fields typed Null are always sent
// as null so the platform forgets them.

// StatusParams flags a validation outcome
type StatusParams struct {
	Status string `json:"status_retorno"`
}

// ErrorParams reports a failure together with the underlying error text
type ErrorParams struct {
	Status       string `json:"status_retorno,omitempty"`
	ErrorMessage string `json:"msg_erro"`
	CPF          string `json:"cpf_cliente,omitempty"`
}

// InvalidCPFParams rejects a CPF and clears it
type InvalidCPFParams struct {
	Status       string `json:"status_retorno"`
	ErrorMessage string `json:"msg_erro"`
	CPF          Null   `json:"cpf_cliente"`
}

// CustomerParams echoes a customer's identity
type CustomerParams struct {
	Name  string `json:"nome_cliente"`
	CPF   string `json:"cpf_cliente"`
	Email string `json:"email_cliente"`
}

// CustomerLookupParams reports whether a CPF belongs to a registered customer
type CustomerLookupParams struct {
	CPF        string `json:"cpf_cliente"`
	Registered bool   `json:"usuario_cadastrado"`
	Email      string `json:"email_cliente,omitempty"`
	Name       string `json:"nome_cliente,omitempty"`
}

// ResetEmailParams clears the captured email
type ResetEmailParams struct {
	Status     string `json:"status_retorno"`
	Registered Null   `json:"usuario_cadastrado"`
	Email      Null   `json:"email_cliente"`
}

// ResetCPFParams clears the captured CPF
type ResetCPFParams struct {
	Status      string `json:"status_retorno"`
	ValidateCPF Null   `json:"validar_cpf"`
	CPF         Null   `json:"cpf_cliente"`
}

// LoginParams is returned once a code has been issued and mailed
type LoginParams struct {
	TokenInfo *AuthCode `json:"token_info"`
	Email     string    `json:"email"`
	Name      string    `json:"nome_cliente"`
	LoggedIn  bool      `json:"logou"`
}

// AuthCodeExpiredParams discards an expired code
type AuthCodeExpiredParams struct {
	TokenInfo Null   `json:"token_info"`
	CodeInput Null   `json:"token_cliente"`
	Token     string `json:"token"`
}

// AuthCodeResultParams reports whether the typed code matched
type AuthCodeResultParams struct {
	Token     bool `json:"token"`
	CodeInput Null `json:"token_cliente"`
}

// GameNotFoundParams clears the searched game
type GameNotFoundParams struct {
	Game     Null `json:"jogo"`
	Platform Null `json:"plataforma"`
}

// CatalogParams clears the platform after listing the catalog
type CatalogParams struct {
	Platform Null `json:"plataforma"`
}

// GamePriceParams carries the unit price of the found game
type GamePriceParams struct {
	Price float64 `json:"valor"`
}

// CartParams carries the updated cart
type CartParams struct {
	LineTotal float64    `json:"valor_total"`
	Items     []CartItem `json:"lista_jogos"`
	Total     float64    `json:"total_compra"`
}
