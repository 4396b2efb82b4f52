package response

import "gyeonjeok/internal/usecase/interfaces"

type SignupUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SignupResponse struct {
	Message string             `json:"message"`
	User    SignupUserResponse `json:"user"`
}

func FromIdentity(message string, id interfaces.Identity) SignupResponse {
	return SignupResponse{
		Message: message,
		User: SignupUserResponse{
			ID:    id.ID,
			Email: id.Email,
			Name:  id.Name,
		},
	}
}
