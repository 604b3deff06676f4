// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// ChartResponse represents the JSON response from the v8 chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"chart"`
}

// ChartResult holds one symbol's series. Indicator arrays are parallel to Timestamp
// and contain nulls for bars without trades.
type ChartResult struct {
	Meta       ChartMeta `json:"meta"`
	Timestamp  []int64   `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// ChartMeta is the instrument summary Yahoo attaches to every chart result.
// Every field is optional upstream, so descriptive fields are pointers.
type ChartMeta struct {
	Symbol               string   `json:"symbol"`
	Currency             *string  `json:"currency"`
	ExchangeName         *string  `json:"exchangeName"`
	ExchangeTimezoneName string   `json:"exchangeTimezoneName"`
	LongName             *string  `json:"longName"`
	ShortName            *string  `json:"shortName"`
	PreviousClose        *float64 `json:"previousClose"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	RegularMarketVolume  *int64   `json:"regularMarketVolume"`
	FiftyTwoWeekHigh     *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      *float64 `json:"fiftyTwoWeekLow"`
	CurrentTradingPeriod *struct {
		Pre     TradingPeriod `json:"pre"`
		Regular TradingPeriod `json:"regular"`
		Post    TradingPeriod `json:"post"`
	} `json:"currentTradingPeriod"`
	DataGranularity string `json:"dataGranularity"`
	Range                string   `json:"range"`
}

// TradingPeriod is a session window in Unix seconds.
type TradingPeriod struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// APIError is the error object Yahoo embeds in chart responses.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
