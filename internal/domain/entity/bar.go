package entity

import "time"

// Bar represents one OHLCV (Open, High, Low, Close, Volume) bucket of a price history.
type Bar struct {
	Time   time.Time // Start of the bucket, in the exchange's location
	Open   float64   // Opening price
	High   float64   // Highest price during the bucket
	Low    float64   // Lowest price during the bucket
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// Chart is a price history for one symbol as requested by a client.
type Chart struct {
	Symbol    string
	Period    Period
	Interval  string
	Bars      []Bar // provider order (ascending), never re-sorted
	Timestamp time.Time
}
