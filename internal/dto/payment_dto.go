package dto

type CreatePaypalOrderRequest struct {
	Total    string `json:"total" validate:"required,numeric"`
	Currency string `json:"currency" validate:"required,len=3"`
}

type PaypalOrderResponse struct {
	OrderId     string `json:"order_id"`
	Status      string `json:"status"`
	ApproveLink string `json:"approve_link,omitempty"`
}

type CapturePaypalOrderRequest struct {
	OrderId string `json:"order_id" validate:"required"`
}

type PaypalCaptureResponse struct {
	OrderId string `json:"order_id"`
	Status  string `json:"status"`
}
