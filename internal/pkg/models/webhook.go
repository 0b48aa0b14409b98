package models

// WebhookRequest is the fulfillment request sent by the conversational platform
type WebhookRequest struct {
	FulfillmentInfo *FulfillmentInfo `json:"fulfillmentInfo"`
	SessionInfo     SessionInfoIn    `json:"sessionInfo"`
}

// FulfillmentInfo identifies which webhook handler must run
type FulfillmentInfo struct {
	Tag string `json:"tag"`
}

// SessionInfoIn carries the caller's current session parameters
type SessionInfoIn struct {
	Parameters SessionParams `json:"parameters"`
}

// SessionParams are the inbound session parameters understood by the webhook.
// Absent keys decode to their zero value.
type SessionParams struct {
	CPF       FlexString `json:"cpf_cliente"`
	Email     string     `json:"email_cliente"`
	Name      string     `json:"nome_cliente"`
	TokenInfo *AuthCode  `json:"token_info"`
	CodeInput FlexString `json:"token_cliente"`
	Game      string     `json:"jogo"`
	Platform  string     `json:"plataforma"`
	Price     FlexFloat  `json:"valor"`
	Quantity  FlexInt    `json:"quantidade"`
	Cart      []CartItem `json:"lista_jogos"`
}

// WebhookResponse is the fulfillment reply
type WebhookResponse struct {
	FulfillmentResponse FulfillmentResponse `json:"fulfillment_response"`
	SessionInfo         SessionInfoOut      `json:"session_info"`
}

// FulfillmentResponse holds the messages shown to the end user
type FulfillmentResponse struct {
	Messages []ResponseMessage `json:"messages"`
}

// ResponseMessage is a single text message
type ResponseMessage struct {
	Text ResponseText `json:"text"`
}

// ResponseText holds the text lines of a message
type ResponseText struct {
	Text []string `json:"text"`
}

// SessionInfoOut carries the session parameter update. Parameters is one of the
// *Params structs below, or nil for no update.
type SessionInfoOut struct {
	Parameters interface{} `json:"parameters,omitempty"`
}

// NewWebhookResponse builds a reply with a single text message and a parameter update
func NewWebhookResponse(text string, params interface{}) *WebhookResponse {
	return &WebhookResponse{
		FulfillmentResponse: FulfillmentResponse{
			Messages: []ResponseMessage{{Text: ResponseText{Text: []string{text}}}},
		},
		SessionInfo: SessionInfoOut{Parameters: params},
	}
}

// Text returns the first message line, or "" when there is none
func (r *WebhookResponse) Text() string {
	if len(r.FulfillmentResponse.Messages) == 0 || len(r.FulfillmentResponse.Messages[0].Text.Text) == 0 {
		return ""
	}
	return r.FulfillmentResponse.Messages[0].Text.Text[0]
}

// WebhookError is the body of a rejected request
type WebhookError struct {
	Error string `json:"error"`
}
