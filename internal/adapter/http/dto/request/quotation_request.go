package request

type CreateQuotationRequest struct {
	ClientID         string   `json:"client_id" binding:"required"`
	ProjectSetupID   string   `json:"project_setup_id" binding:"required"`
	SelectedAddOnIDs []string `json:"selected_add_on_ids"`
	CouponCode       string   `json:"coupon_code"`
}

type RejectQuotationRequest struct {
	Reason string `json:"reason"`
}
