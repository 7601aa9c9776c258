package rest

type tCreatePayment struct {
	Email     string `json:"email"`
	Module    string `json:"module"`
	PromoCode string `json:"promoCode"`
	ReturnURL string `json:"returnUrl"`
	Bonuses   int    `json:"bonuses"`
}

type tCreatePaymentResponse struct {
	OrderID         string `json:"orderId"`
	PaymentPageHTML string `json:"paymentPageHtml"`
}

type tOrderPayload struct {
	PromoCode *string `json:"promoCode"`
	Email     string  `json:"email"`
	Module    string  `json:"module"`
	AmountRUB int     `json:"amountRUB"`
	Bonuses   int     `json:"bonuses"`
}

type tOrderStatusResponse struct {
	Payload *tOrderPayload `json:"payload,omitempty"`
	Status  string         `json:"status"`
}

type tRegistration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tAuthorization struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tUser struct {
	Email        string `json:"email"`
	ReferralCode string `json:"referralCode"`
	ID           uint   `json:"id"`
	BonusBalance int    `json:"bonusBalance"`
}

type tLoginResponse struct {
	User    tUser `json:"user"`
	Success bool  `json:"success"`
}

type tCheckEmail struct {
	Email string `json:"email"`
}

type tCheckEmailResponse struct {
	Exists bool `json:"exists"`
}

type tContent struct {
	Module string `json:"module"`
	Title  string `json:"title"`
	Price  int    `json:"price"`
}
