package tarkovdev

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Client talks to the tarkov.dev GraphQL API. It owns no caching; every
// call is a live request, throttling and reuse happen in the layers above.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// queryFor injects the PvE game mode into a query document. The upstream
// schema switches economies via an argument on the items root field, so
// the PvP document is the canonical one.
func queryFor(query string, mode value.GameMode) string {
	if mode != value.GameModePvE {
		return query
	}

	return strings.NewReplacer(
		"items(ids: $ids)", "items(ids: $ids, gameMode: pve)",
		"items(names: $names)", "items(names: $names, gameMode: pve)",
	).Replace(query)
}

func post[T any](ctx context.Context, c *Client, query string, variables map[string]any) (T, error) {
	var zero T

	body, err := json.Marshal(graphQLRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return zero, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, domain.WrapError(err, errcodes.UpstreamUnavailable, "tarkov.dev request failed")
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zero, domain.NewError(errcodes.UpstreamBadResponse,
			fmt.Sprintf("tarkov.dev status %d", resp.StatusCode))
	}

	var parsed graphQLResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return zero, domain.WrapError(err, errcodes.UpstreamBadResponse, "tarkov.dev response decode failed")
	}

	if len(parsed.Errors) > 0 {
		messages := lox.Map(parsed.Errors, func(e graphQLError) string { return e.Message })

		return zero, domain.NewError(errcodes.UpstreamBadResponse,
			"tarkov.dev graphql errors: "+strings.Join(messages, ", "))
	}

	return parsed.Data, nil
}

// Tasks fetches the full upstream task list with item objectives.
func (c *Client) Tasks(ctx context.Context) ([]entity.Task, error) {
	data, err := post[tasksData](ctx, c, tasksQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("tasks query: %w", err)
	}

	return lox.Map(data.Tasks, toEntityTask), nil
}

// Items fetches full catalog records (crafts, barters, sale offers) for
// the given item ids in one mode's economy.
func (c *Client) Items(ctx context.Context, ids []string, mode value.GameMode) ([]entity.Item, error) {
	data, err := post[itemsData](ctx, c, queryFor(itemsQuery, mode), map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("items query (%s): %w", mode, err)
	}

	return lox.Map(data.Items, toEntityItem), nil
}

// BundledItems fetches composite items by display-name search terms,
// including their contained sub-parts.
func (c *Client) BundledItems(ctx context.Context, names []string, mode value.GameMode) ([]entity.BundledItem, error) {
	if len(names) == 0 {
		return nil, nil
	}

	data, err := post[itemsData](ctx, c, queryFor(bundledItemsQuery, mode), map[string]any{"names": names})
	if err != nil {
		return nil, fmt.Errorf("bundled items query (%s): %w", mode, err)
	}

	return lox.Map(data.Items, toEntityBundled), nil
}

// Prices fetches a flat price index for ingredient ids. Items the market
// does not price come back at 0 and are simply absent from the index.
func (c *Client) Prices(ctx context.Context, ids []string, mode value.GameMode) (value.PriceIndex, error) {
	data, err := post[itemsData](ctx, c, queryFor(pricesQuery, mode), map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("prices query (%s): %w", mode, err)
	}

	index := make(value.PriceIndex, len(data.Items))

	for _, item := range data.Items {
		price := item.Avg24hPrice
		if price == 0 {
			price = item.LastLowPrice
		}

		if price > 0 {
			index[item.ID] = price
		}
	}

	return index, nil
}
