package dto

type PaymentItemDTO struct {
	Name     string `json:"name" example:"Starter pack"`
	Price    int64  `json:"price" example:"5"`
	Quantity int64  `json:"quantity" example:"1"`
}

type PaymentRequestDTO struct {
	Email string           `json:"email" example:"reader@example.com"`
	Items []PaymentItemDTO `json:"items"`
}

type PaymentResponseDTO struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
	Coins            int64  `json:"coins" example:"100"`
	Amount           int64  `json:"amount" example:"500"`
}
