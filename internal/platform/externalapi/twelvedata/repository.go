package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
	_ "time/tzdata"

	"stock_directory/internal/domain/entity"
	"stock_directory/internal/feature/quote/usecase"
	"stock_directory/internal/platform/externalapi/twelvedata/dto"
	"stock_directory/internal/shared/ratelimiter"
)

// time_seriesの1回あたりの最大取得件数
const maxOutputSize = 5000

// intervals はYahoo形式の足種をTwelve Data形式に変換します。未知の足種はそのまま渡します。
var intervals = map[string]string{
	"1m":  "1min",
	"5m":  "5min",
	"15m": "15min",
	"30m": "30min",
	"60m": "1h",
	"1h":  "1h",
	"1d":  "1day",
	"1wk": "1week",
	"1mo": "1month",
}

// TwelveDataMarket はTwelve Data外部APIから株価データを取得するMarketRepository実装です。
type TwelveDataMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
	now     func() time.Time
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
// リクエストは cfg.RateLimit（1分あたり）に従って間引かれます。
func NewTwelveDataMarket(cfg Config, client *http.Client) *TwelveDataMarket {
	return &TwelveDataMarket{
		cfg:     cfg,
		client:  client,
		limiter: ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute),
		now:     time.Now,
	}
}

// GetMetadata はquote APIから銘柄の付随情報を取得します。
// 時価総額・PER・配当利回りはこのAPIでは提供されないためnilのままです。
func (t *TwelveDataMarket) GetMetadata(ctx context.Context, symbol string) (entity.Metadata, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	var body dto.QuoteResponse
	found, err := t.get(ctx, "quote", q, &body)
	if err != nil || !found {
		return entity.Metadata{}, err
	}
	if body.Status == "error" {
		if notFound(body.Code) {
			return entity.Metadata{}, nil
		}
		return entity.Metadata{}, fmt.Errorf("twelvedata: %s", body.Message)
	}

	meta := entity.Metadata{
		LongName: nonEmpty(body.Name),
		Currency: nonEmpty(body.Currency),
		Exchange: nonEmpty(body.Exchange),
	}
	if meta.PreviousClose, err = parseFloat("previous_close", body.PreviousClose); err != nil {
		return entity.Metadata{}, err
	}
	if meta.Volume, err = parseInt("volume", body.Volume); err != nil {
		return entity.Metadata{}, err
	}
	if meta.FiftyTwoWeekHigh, err = parseFloat("fifty_two_week.high", body.FiftyTwoWeek.High); err != nil {
		return entity.Metadata{}, err
	}
	if meta.FiftyTwoWeekLow, err = parseFloat("fifty_two_week.low", body.FiftyTwoWeek.Low); err != nil {
		return entity.Metadata{}, err
	}
	if body.IsMarketOpen != nil {
		state := "CLOSED"
		if *body.IsMarketOpen {
			state = "REGULAR"
		}
		meta.MarketState = &state
	}
	return meta, nil
}

// GetHistory はtime_series APIから価格履歴を取得し、古い順のBarとして返します。
//
// Twelve Dataには期間指定がないため、periodを開始日に変換して問い合わせます。
// 1d/5d は休場日を考慮して広めに取得し、直近の取引日数に切り詰めます。
func (t *TwelveDataMarket) GetHistory(ctx context.Context, symbol string, period entity.Period, interval string) ([]entity.Bar, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("symbol", symbol)
	q.Set("interval", toInterval(interval))
	q.Set("outputsize", strconv.Itoa(maxOutputSize))
	q.Set("order", "asc")
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	start, days := window(period, t.now())
	if !start.IsZero() {
		q.Set("start_date", start.Format(time.DateOnly))
	}

	var body dto.TimeSeriesResponse
	found, err := t.get(ctx, "time_series", q, &body)
	if err != nil || !found {
		return nil, err
	}
	if body.Status == "error" {
		if notFound(body.Code) {
			return nil, nil
		}
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	loc := time.UTC
	if tz := body.Meta.ExchangeTimezone; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("load exchange timezone %q: %w", tz, err)
		}
		loc = l
	}

	bars := make([]entity.Bar, 0, len(body.Values))
	for _, v := range body.Values {
		// タイムスタンプをパース
		tm, err := time.ParseInLocation(time.DateTime, v.Datetime, loc)
		if err != nil {
			tm, err = time.ParseInLocation(time.DateOnly, v.Datetime, loc)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		// 始値をパース
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		// 高値をパース
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		// 安値をパース
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		// 終値をパース
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		// 出来高をパース
		vol, err := parseInt("volume", v.Volume)
		if err != nil {
			return nil, err
		}

		bars = append(bars, entity.Bar{
			Time:   tm,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: entity.IntOr(vol, 0),
		})
	}

	if days > 0 {
		bars = lastTradingDays(bars, days)
	}
	return bars, nil
}

// get はエンドポイントへGETリクエストを送信してJSONをoutにデコードします。
// HTTP 404 の場合は found=false を返します。
func (t *TwelveDataMarket) get(ctx context.Context, endpoint string, q url.Values, out any) (found bool, err error) {
	// 上限に達していれば枠が空くまで待つ（ctxの期限を超える場合はエラー）
	if err := t.limiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("twelvedata rate limit: %w", err)
	}

	// URLを生成
	u := fmt.Sprintf("%s/%s?%s", t.cfg.BaseURL, endpoint, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}

	// リクエストを実行
	res, err := t.client.Do(req)
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
		return false, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

func toInterval(interval string) string {
	if interval == "" {
		return "1day"
	}
	if v, ok := intervals[interval]; ok {
		return v
	}
	return interval
}

// window はperiodを取得開始日に変換します。
// days>0 の場合、呼び出し側は結果を直近days営業日分に切り詰めます。
// maxは開始日なし（ゼロ値）を返します。
func window(p entity.Period, now time.Time) (start time.Time, days int) {
	switch p {
	case entity.Period1d:
		return now.AddDate(0, 0, -4), 1
	case entity.Period5d:
		return now.AddDate(0, 0, -9), 5
	case entity.Period1mo:
		return now.AddDate(0, -1, 0), 0
	case entity.Period3mo:
		return now.AddDate(0, -3, 0), 0
	case entity.Period6mo:
		return now.AddDate(0, -6, 0), 0
	case entity.Period2y:
		return now.AddDate(-2, 0, 0), 0
	case entity.Period5y:
		return now.AddDate(-5, 0, 0), 0
	case entity.Period10y:
		return now.AddDate(-10, 0, 0), 0
	case entity.PeriodYtd:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), 0
	case entity.PeriodMax:
		return time.Time{}, 0
	default:
		return now.AddDate(-1, 0, 0), 0
	}
}

// lastTradingDays は古い順のbarsから、直近n日分の取引日に属する足だけを返します。
func lastTradingDays(bars []entity.Bar, n int) []entity.Bar {
	seen := 0
	prev := ""
	for i := len(bars) - 1; i >= 0; i-- {
		d := bars[i].Time.Format(time.DateOnly)
		if d == prev {
			continue
		}
		if seen == n {
			return bars[i+1:]
		}
		seen++
		prev = d
	}
	return bars
}

// notFound はTwelve Dataのエラーコードが「データなし」を表すかを判定します。
func notFound(code int) bool {
	return code == http.StatusBadRequest || code == http.StatusNotFound
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseFloat(field, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return &f, nil
}

func parseInt(field, s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return &n, nil
}
