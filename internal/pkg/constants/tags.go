package constants

// Fulfillment tags sent by the conversational platform
const (
	TagRegisterCustomer = "cadastrar_cliente"
	TagResetEmail       = "reset_email"
	TagChangeEmail      = "trocar_email"
	TagLookupCustomer   = "consultar_cpf"
	TagResetCPF         = "reset_webhook"
	TagStartLogin       = "validar_cpf"
	TagVerifyAuthCode   = "validar_token"
	TagSearchGame       = "buscar_jogo"
	TagAddToCart        = "valor_total"
)

// CatalogPlatform is the platform value that asks for the whole catalog
const CatalogPlatform = "catalogo"

