package dto

type PairConversionResponse struct {
	Result         string  `json:"result"`
	ErrorType      string  `json:"error-type"`
	BaseCode       string  `json:"base_code"`
	TargetCode     string  `json:"target_code"`
	ConversionRate float64 `json:"conversion_rate"`
}
