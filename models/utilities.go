package models

type TaxRequest struct {
	Amount float64 `json:"amount"`
	Mode   string  `json:"mode"`
}

type TaxResponse struct {
	Effective string `json:"effective"`
	Tax       string `json:"tax"`
	Total     string `json:"total"`
	Rate      string `json:"rate"`
}

type ConvertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

type ConvertResponse struct {
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}

type EpochRequest struct {
	Mode  string `json:"mode"`
	Value string `json:"value"`
}

type EpochResponse struct {
	Mode   string `json:"mode"`
	Result string `json:"result"`
}
