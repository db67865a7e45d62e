package request

import "motorcar_consultancy/internal/usecase"

type ContactRequest struct {
	Name    string `json:"name" example:"A"`
	Email   string `json:"email" example:"a@x.com"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" example:"hi"`
}

func (r ContactRequest) ToInput() usecase.SendContactInput {
	return usecase.SendContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}
