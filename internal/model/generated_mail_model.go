package model

type GeneratedMail struct {
	Job   JobRecord `json:"job"`
	Email string    `json:"email"`
}
