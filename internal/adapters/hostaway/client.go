package hostaway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/adapters/wire"
	"flex_reviews/internal/domain"
)

const tokenCacheKey = "hostaway:token"

// refresh the bearer token this long before it actually expires
const tokenRefreshSlack = 60 * time.Second

type Options struct {
	BaseURL   string
	AccountID string
	APIKey    string
	Scope     string
	UseAPI    bool
	RPS       int
	// Tokens holds the OAuth bearer token between requests. In-process by
	// default; a Redis-backed cache lets multiple instances share it.
	Tokens domain.Cache
}

// Client fetches reviews from the Hostaway API using the OAuth2
// client-credentials grant. Every failure mode folds into the FetchReviews
// outcome; the client never surfaces an error to its caller.
type Client struct {
	base      string
	accountID string
	apiKey    string
	scope     string
	useAPI    bool
	hc        *http.Client
	rl        *rate.Limiter
	tokens    domain.Cache
}

func New(o Options) *Client {
	if o.RPS <= 0 {
		o.RPS = 5
	}
	if o.Scope == "" {
		o.Scope = "general"
	}
	return &Client{
		base:      strings.TrimRight(o.BaseURL, "/"),
		accountID: o.AccountID,
		apiKey:    o.APIKey,
		scope:     o.Scope,
		useAPI:    o.UseAPI,
		hc:        &http.Client{Timeout: 20 * time.Second},
		rl:        rate.NewLimiter(rate.Limit(o.RPS), o.RPS),
		tokens:    o.Tokens,
	}
}

// FetchReviews performs one best-effort live fetch. It returns nil when the
// live path is disabled or unconfigured (callers fall back to seed data),
// and an outcome with status 401 when no bearer token could be obtained.
func (c *Client) FetchReviews(ctx context.Context) *domain.HostawayFetch {
	if !c.useAPI || c.accountID == "" {
		return nil
	}
	if err := c.rl.Wait(ctx); err != nil {
		return nil
	}

	token := c.accessToken(ctx)
	if token == "" {
		return &domain.HostawayFetch{Status: http.StatusUnauthorized}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/reviews?limit=200&order=desc", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-account-id", c.accountID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("hostaway", "reviews", 0, time.Since(start))
		log.Warn().Err(err).Msg("hostaway reviews fetch failed")
		return nil
	}
	defer resp.Body.Close()
	observability.ObserveExternal("hostaway", "reviews", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &domain.HostawayFetch{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	list, err := ParsePayload(body)
	if err != nil {
		// server said OK but the payload was unusable; keep the status so
		// operators can tell this apart from an upstream failure
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("hostaway payload rejected")
		return &domain.HostawayFetch{Status: resp.StatusCode}
	}
	return &domain.HostawayFetch{Reviews: NormalizeReviews(list), Status: resp.StatusCode}
}

// SeedReviews yields the embedded fallback payload, normalized.
func (c *Client) SeedReviews() []domain.Review {
	return NormalizeReviews(Seed())
}

type cachedToken struct {
	Token string `json:"token"`
	Exp   int64  `json:"exp"` // unix milliseconds
}

// accessToken returns a cached bearer token, refreshing it through the
// client-credentials grant when it is absent or within the refresh slack of
// expiry. An empty string means authentication failed.
func (c *Client) accessToken(ctx context.Context) string {
	if c.accountID == "" || c.apiKey == "" {
		return ""
	}

	var tok cachedToken
	if ok, _ := c.tokens.Get(ctx, tokenCacheKey, &tok); ok {
		if time.Now().UnixMilli() < tok.Exp-tokenRefreshSlack.Milliseconds() {
			return tok.Token
		}
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.accountID},
		"client_secret": {c.apiKey},
		"scope":         {c.scope},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/accessTokens", strings.NewReader(form.Encode()))
	if err != nil {
		return ""
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("hostaway", "token", 0, time.Since(start))
		log.Warn().Err(err).Msg("hostaway token request failed")
		return ""
	}
	defer resp.Body.Close()
	observability.ObserveExternal("hostaway", "token", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return ""
	}

	var grant struct {
		AccessToken string      `json:"access_token"`
		ExpiresIn   wire.Number `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return ""
	}
	if grant.AccessToken == "" {
		return ""
	}

	expires := 3600.0
	if v := grant.ExpiresIn.Value(); v != nil && *v > 0 {
		expires = *v
	}
	tok = cachedToken{
		Token: grant.AccessToken,
		Exp:   time.Now().Add(time.Duration(expires) * time.Second).UnixMilli(),
	}
	_ = c.tokens.Set(ctx, tokenCacheKey, tok, int(expires))
	return tok.Token
}
