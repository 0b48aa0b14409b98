package models

// Customer represents a registered store customer, keyed by CPF
type Customer struct {
	CPF   string `json:"cpf" db:"cpf"`
	Name  string `json:"nome" db:"nome"`
	Email string `json:"email" db:"email"`
}
