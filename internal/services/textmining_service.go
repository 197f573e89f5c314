package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"macrolens/internal/textmining"
	"macrolens/pkg/contracts/domain"
)

// excerptRunes is how much raw extracted text is echoed back for the
// "show raw text" expander of the UI.
const excerptRunes = 500

// TextMiningService fetches a web article and turns its paragraph text into
// ranked word frequencies for the word-cloud page. The single outbound
// fetch is bounded by the client timeout and throttled by a rate limiter so
// the dashboard cannot be used to hammer third-party sites. A failed fetch
// is reported to the caller and leaves no state behind.
type TextMiningService struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	maxWords  int
	logger    *slog.Logger
}

// TextMiningConfig holds the tunables of the text-mining path.
type TextMiningConfig struct {
	FetchTimeout     time.Duration
	UserAgent        string
	MaxWords         int
	FetchesPerMinute float64
}

// NewTextMiningService creates the service with a dedicated HTTP client.
func NewTextMiningService(cfg TextMiningConfig, logger *slog.Logger) *TextMiningService {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = 50
	}
	if cfg.FetchesPerMinute <= 0 {
		cfg.FetchesPerMinute = 10
	}
	return &TextMiningService{
		client:    &http.Client{Timeout: cfg.FetchTimeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.FetchesPerMinute/60), 1),
		userAgent: cfg.UserAgent,
		maxWords:  cfg.MaxWords,
		logger:    logger.With(slog.String("component", "textmining_service")),
	}
}

// WordCloud fetches the article at the given URL, extracts its paragraph
// text and returns ranked word frequencies. maxWords <= 0 falls back to the
// configured default. Network failures and non-success status codes map to
// ErrFetchFailed; they are reported, never retried, and never fatal to the
// session.
func (s *TextMiningService) WordCloud(ctx context.Context, url string, maxWords int) (*domain.WordCloud, error) {
	if maxWords <= 0 {
		maxWords = s.maxWords
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("throttle article fetch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "article fetch failed",
			slog.String("url", url),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.WarnContext(ctx, "article fetch returned non-success status",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	text, err := textmining.ExtractParagraphs(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if text == "" {
		return nil, ErrEmptyArticle
	}

	words := textmining.CountWords(textmining.Clean(text), maxWords)

	s.logger.InfoContext(ctx, "article analysed",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Int("distinct_words", len(words)),
		slog.Duration("fetch_duration", time.Since(start)))

	return &domain.WordCloud{
		URL:        url,
		TotalWords: len(words),
		Words:      words,
		Excerpt:    excerpt(text, excerptRunes),
	}, nil
}

func excerpt(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + " [...]"
}
