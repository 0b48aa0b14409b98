package usecase

// Replies shown to the customer
const (
	msgRequiredFields    = "Erro: Nome e e-mail são obrigatórios!"
	msgEmailRequired     = "Erro: E-mail é obrigatório!"
	msgInvalidCPF        = "CPF inválido! Deseja tentar novamente?"
	msgInsertFailed      = "Erro ao inserir cliente."
	msgCustomerLookupErr = "Erro ao buscar cliente."
	msgEmailUpdateErr    = "Erro ao atualizar o e-mail."
	msgCPFNotFoundEmail  = "CPF não encontrado. Não foi possível atualizar o e-mail."
	msgDatabaseError     = "Ocorreu um erro ao acessar o banco de dados."
	msgRetypeCPF         = "Por favor, digite o CPF novamente"
	msgMalformedCPF      = "CPF em formato inválido!"
	msgCPFNotFoundLogin  = "CPF não encontrado. Deseja se cadastrar ou tentar novamente?"
	msgAuthCodeNotSent   = "Não foi possível enviar o código de autenticação. Tente novamente."
	msgAuthCodeMissing   = "Erro:Código não fornecido."
	msgAuthCodeWrong     = "Código incorreto. Tente novamente."
	msgGameNotFound      = "Infelizmente não temos esse jogo disponível. Gostaria de consultar o nosso catalogo ou tentar buscar outro jogo?"
	msgGamePrice         = "O jogo %s custa: R$ %s Gostaria de comprar?"
	msgGameSearchErr     = "Erro ao buscar jogo."
	msgInvalidQuantity   = "Quantidade inválida. Informe um número maior que zero."
)

// Values of the status_retorno session parameter
const (
	statusInvalidData       = "Erro nos dados"
	statusInvalidCPF        = "CPF inválido"
	statusInvalidLookupCPF  = "Invalido"
	statusMalformedCPF      = "invalid"
	statusError             = "erro"
	statusCPFNotFound       = "CPF não encontrado"
	statusEmailReset        = "Email resetado"
	statusCPFReset          = "CPF resetado"
	statusInvalidQuantity   = "Quantidade inválida"
	statusAuthCodeExpired   = "Expirado"
	invalidCPFErrorMessage  = "deu ruim"
	missingAuthCodeErrorMsg = "Dados ausentes"
)
