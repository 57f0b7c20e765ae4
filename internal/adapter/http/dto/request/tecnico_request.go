package request

// TecnicoRequest carries técnico registration and edit payloads.
type TecnicoRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}
