package dto

type TokenAddressResponseDTO struct {
	Address string `json:"address"`
}

// ExecuteRequestDTO documents the execute envelope: exactly one variant is set.
type ExecuteRequestDTO struct {
	SetTokenAddress *AddressDTO `json:"set_token_address,omitempty"`
	BuyToken        *AmountDTO  `json:"buy_token,omitempty"`
	Deposit         *AmountDTO  `json:"deposit,omitempty"`
	Withdraw        *AmountDTO  `json:"withdraw,omitempty"`
}

// QueryRequestDTO documents the query envelope: exactly one variant is set.
type QueryRequestDTO struct {
	GetTokenAddress *struct{}   `json:"get_token_address,omitempty"`
	GetBalance      *AddressDTO `json:"get_balance,omitempty"`
	GetAllUsers     *struct{}   `json:"get_all_users,omitempty"`
	GetUserInfo     *AddressDTO `json:"get_user_info,omitempty"`
	GetTopUsers     *struct{}   `json:"get_top_users,omitempty"`
}

type AddressDTO struct {
	Address string `json:"address" example:"S0"`
}

type AmountDTO struct {
	Amount string `json:"amount" example:"10"`
}
