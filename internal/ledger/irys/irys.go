// Package irys is an implementation of the ledger over Irys node, gateway and signing bundler proxy.
package irys

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/quill/internal/ledger"
)

var log = logrus.WithField("layer", "ledger").WithField("package", "irys")

// maxPageSize is the largest page node returns.
const maxPageSize = 100

const transactionsQuery = `query($ids: [String!], $tags: [TagFilter!], $limit: Int, $cursor: String) {
  transactions(ids: $ids, tags: $tags, limit: $limit, after: $cursor, order: DESC) {
    edges {
      cursor
      node { id address token receipt { timestamp } tags { name value } timestamp }
    }
    pageInfo { hasNextPage }
  }
}`

// Config ...
type Config struct {
	// NodeURL serves /graphql, /tx/{id} and /info.
	NodeURL string
	// GatewayURL serves /{id} with records' bodies.
	GatewayURL string
	// BundlerURL is a signing proxy serving /tx, /price/{token}/{bytes} and /account/fund.
	BundlerURL string
	// Token is a payment token name.
	Token   string
	Timeout time.Duration
}

// Client is a ledger which uses remote Irys services.
type Client struct {
	c   *http.Client
	cfg Config
}

var _ ledger.Ledger = (*Client)(nil)

// New creates new instance of Client.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Token == "" {
		cfg.Token = "ethereum"
	}

	return &Client{
		c:   &http.Client{Timeout: cfg.Timeout},
		cfg: cfg,
	}
}

// Ping checks node availability.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, c.cfg.NodeURL+"/info", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("node is not available: status=%d", resp.StatusCode)
	}

	return nil
}

type variables struct {
	IDs    []string           `json:"ids,omitempty"`
	Tags   []ledger.TagFilter `json:"tags,omitempty"`
	Limit  int                `json:"limit,omitempty"`
	Cursor string             `json:"cursor,omitempty"`
}

type graphQLRequest struct {
	Query     string    `json:"query"`
	Variables variables `json:"variables"`
}

type node struct {
	ID        string       `json:"id"`
	Address   string       `json:"address"`
	Token     string       `json:"token"`
	Tags      []ledger.Tag `json:"tags"`
	Timestamp int64        `json:"timestamp"`
	Receipt   *struct {
		Timestamp int64 `json:"timestamp"`
	} `json:"receipt"`
}

type graphQLResponse struct {
	Data struct {
		Transactions struct {
			Edges []struct {
				Cursor string `json:"cursor"`
				Node   node   `json:"node"`
			} `json:"edges"`
			PageInfo struct {
				HasNextPage bool `json:"hasNextPage"`
			} `json:"pageInfo"`
		} `json:"transactions"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (n node) record() ledger.Record {
	ts := n.Timestamp
	if ts == 0 && n.Receipt != nil {
		ts = n.Receipt.Timestamp
	}

	return ledger.Record{
		ID:        n.ID,
		Timestamp: ts,
		Address:   n.Address,
		Tags:      n.Tags,
	}
}

// QueryPage ...
func (c *Client) QueryPage(ctx context.Context, filters []ledger.TagFilter, limit int, cursor string) (*ledger.Page, error) {
	p, _, err := c.query(ctx, variables{Tags: filters, Limit: limit, Cursor: cursor})
	return p, err
}

// QueryByTags ...
func (c *Client) QueryByTags(ctx context.Context, filters []ledger.TagFilter, limit int) ([]ledger.Record, error) {
	return c.collect(ctx, variables{Tags: filters}, limit)
}

// QueryByIDs ...
func (c *Client) QueryByIDs(ctx context.Context, ids []string) ([]ledger.Record, error) {
	if len(ids) == 0 {
		return []ledger.Record{}, nil
	}

	return c.collect(ctx, variables{IDs: ids}, 0)
}

// collect fetches pages until limit is reached. Zero limit means all pages.
func (c *Client) collect(ctx context.Context, v variables, limit int) ([]ledger.Record, error) {
	var out []ledger.Record

	for {
		v.Limit = maxPageSize
		if limit > 0 && limit-len(out) < maxPageSize {
			v.Limit = limit - len(out)
		}

		p, next, err := c.query(ctx, v)
		if err != nil {
			return nil, err
		}

		out = append(out, p.Records()...)

		if !next || p.Cursor() == "" || (limit > 0 && len(out) >= limit) {
			break
		}

		v.Cursor = p.Cursor()
	}

	ledger.SortRecords(out)

	return out, nil
}

func (c *Client) query(ctx context.Context, v variables) (*ledger.Page, bool, error) {
	b, err := json.Marshal(graphQLRequest{Query: transactionsQuery, Variables: v})
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal query: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.cfg.NodeURL+"/graphql", b)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("graphql query is not ok")
		return nil, false, nil
	}

	var gr graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, false, fmt.Errorf("failed to decode query response: %w", err)
	}

	if len(gr.Errors) > 0 {
		return nil, false, fmt.Errorf("query failed: %s", gr.Errors[0].Message)
	}

	edges := gr.Data.Transactions.Edges
	p := ledger.Page{Edges: make([]ledger.Edge, len(edges))}
	for i, v := range edges {
		p.Edges[i] = ledger.Edge{Record: v.Node.record(), Cursor: v.Cursor}
	}

	return &p, gr.Data.Transactions.PageInfo.HasNextPage, nil
}

// GetData ...
func (c *Client) GetData(ctx context.Context, id string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, c.cfg.GatewayURL+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		log.WithField("id", id).WithField("status", resp.StatusCode).Debug("data is not resolved")
		return nil, nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read data of %s: %w", id, err)
	}

	return b, nil
}

// Owner ...
func (c *Client) Owner(ctx context.Context, id string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, c.cfg.NodeURL+"/tx/"+url.PathEscape(id), nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() // nolint

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", fmt.Errorf("failed to get tx %s: %w", id, ledger.ErrNotFound)
	default:
		return "", fmt.Errorf("failed to get tx %s: status=%d", id, resp.StatusCode)
	}

	var tx struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return "", fmt.Errorf("failed to decode tx %s: %w", id, err)
	}

	return tx.Address, nil
}

// Upload ...
func (c *Client) Upload(ctx context.Context, body []byte, tags ledger.Tags) (*ledger.Receipt, error) {
	b, err := json.Marshal(struct {
		Data string       `json:"data"`
		Tags []ledger.Tag `json:"tags"`
	}{
		Data: base64.StdEncoding.EncodeToString(body),
		Tags: tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.cfg.BundlerURL+"/tx", b)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("failed to upload: %w", err)
	}

	var rc struct {
		ID        string `json:"id"`
		Timestamp int64  `json:"timestamp"`
		Address   string `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rc); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}

	return &ledger.Receipt{
		ID:        rc.ID,
		Timestamp: rc.Timestamp,
		Address:   rc.Address,
	}, nil
}

// Price ...
func (c *Client) Price(ctx context.Context, size int) (uint64, error) {
	resp, err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("%s/price/%s/%d", c.cfg.BundlerURL, url.PathEscape(c.cfg.Token), size), nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close() // nolint

	if err := checkStatus(resp); err != nil {
		return 0, fmt.Errorf("failed to get price: %w", err)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read price: %w", err)
	}

	price, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price: %w", err)
	}

	return price, nil
}

// Fund ...
func (c *Client) Fund(ctx context.Context, amount uint64) error {
	b, err := json.Marshal(struct {
		Amount string `json:"amount"`
	}{
		Amount: strconv.FormatUint(amount, 10),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal fund request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.cfg.BundlerURL+"/account/fund", b)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("failed to fund: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, u string, body []byte) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s %s: %w", method, u, err)
	}

	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	return fmt.Errorf("status=%d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
}
