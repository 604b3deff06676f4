package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
	_ "time/tzdata" // 取引所タイムゾーンの解決にOSのzoneinfoを要求しない

	"stock_directory/internal/domain/entity"
	"stock_directory/internal/feature/quote/usecase"
	"stock_directory/internal/platform/externalapi/yahoo/dto"
)

// YahooMarket はYahoo Finance外部APIから株価データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client, now: time.Now}
}

// GetMetadata はv8 chart APIのmetaブロックから銘柄の付随情報を取得します。
// v7 quote APIはcookieとcrumbなしでは401を返すため使用しません。
// 該当銘柄がない場合は空のMetadataを返します。
func (y *YahooMarket) GetMetadata(ctx context.Context, symbol string) (entity.Metadata, error) {
	r, err := y.chart(ctx, symbol, entity.Period1d, "1d")
	if err != nil || r == nil {
		return entity.Metadata{}, err
	}

	m := r.Meta
	name := m.LongName
	if name == nil {
		name = m.ShortName
	}
	prev := m.PreviousClose
	if prev == nil {
		prev = m.ChartPreviousClose
	}
	// 時価総額・PER・配当利回りはchart APIに含まれないためnilのまま
	return entity.Metadata{
		LongName:         name,
		PreviousClose:    prev,
		Volume:           m.RegularMarketVolume,
		FiftyTwoWeekHigh: m.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  m.FiftyTwoWeekLow,
		Currency:         m.Currency,
		Exchange:         m.ExchangeName,
		MarketState:      marketState(m, y.now()),
	}, nil
}

// marketState は当日の取引時間帯から市場状態を判定します。
// 取引時間帯が含まれない場合はnilを返します。
func marketState(m dto.ChartMeta, now time.Time) *string {
	p := m.CurrentTradingPeriod
	if p == nil {
		return nil
	}
	in := func(tp dto.TradingPeriod) bool {
		t := now.Unix()
		return tp.Start <= t && t < tp.End
	}

	state := "CLOSED"
	switch {
	case in(p.Regular):
		state = "REGULAR"
	case in(p.Pre):
		state = "PRE"
	case in(p.Post):
		state = "POST"
	}
	return &state
}

// GetHistory はv8 chart APIから価格履歴を取得し、古い順のBarとして返します。
//
// OHLCのいずれかがnullの足（取引のない時間帯）は除外します。
// 足の時刻は取引所のタイムゾーンで表現されます。
func (y *YahooMarket) GetHistory(ctx context.Context, symbol string, period entity.Period, interval string) ([]entity.Bar, error) {
	r, err := y.chart(ctx, symbol, period, interval)
	if err != nil || r == nil {
		return nil, err
	}
	return toBars(*r)
}

// chart はv8 chart APIを呼び出して先頭の結果を返します。
// 該当銘柄がない場合は nil, nil を返します。
func (y *YahooMarket) chart(ctx context.Context, symbol string, period entity.Period, interval string) (*dto.ChartResult, error) {
	q := url.Values{}
	q.Set("range", string(period))
	q.Set("interval", interval)
	q.Set("includePrePost", "false")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	found, err := y.get(ctx, u, &body)
	if err != nil || !found {
		return nil, err
	}
	if e := body.Chart.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, nil
		}
		return nil, fmt.Errorf("yahoo: %s: %s", e.Code, e.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, nil
	}
	return &body.Chart.Result[0], nil
}

// get はGETリクエストを送信してJSONをoutにデコードします。
// 404の場合は found=false を返します。
func (y *YahooMarket) get(ctx context.Context, u string, out any) (found bool, err error) {
	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if y.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", y.cfg.UserAgent)
	}

	// リクエストを実行
	res, err := y.client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if res.StatusCode >= 400 {
		return false, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return false, fmt.Errorf("yahoo decode: %w", err)
	}
	return true, nil
}

func toBars(r dto.ChartResult) ([]entity.Bar, error) {
	if len(r.Timestamp) == 0 || len(r.Indicators.Quote) == 0 {
		return nil, nil
	}

	loc := time.UTC
	if tz := r.Meta.ExchangeTimezoneName; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("load exchange timezone %q: %w", tz, err)
		}
		loc = l
	}

	quote := r.Indicators.Quote[0]
	bars := make([]entity.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		o, h, l, c := at(quote.Open, i), at(quote.High, i), at(quote.Low, i), at(quote.Close, i)
		// nullの足はスキップ（休場など）
		if o == nil || h == nil || l == nil || c == nil {
			continue
		}
		var vol int64
		if v := at(quote.Volume, i); v != nil {
			vol = *v
		}

		bars = append(bars, entity.Bar{
			Time:   time.Unix(ts, 0).In(loc),
			Open:   *o,
			High:   *h,
			Low:    *l,
			Close:  *c,
			Volume: vol,
		})
	}
	return bars, nil
}

// at はスライスの長さが揃っていない場合にも安全に要素を取り出します。
func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}
