package resource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/pkg/apperror"

	jsoniter "github.com/json-iterator/go"
)

// Collection names served by the record store.
const (
	Users           = "users"
	Jobs            = "jobs"
	JobApplications = "jobapplications"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to a json-server compatible record store. Calls are made once,
// with no retry and no client-side timeout; the caller's context bounds them.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Collection is a typed accessor for one named collection.
type Collection[T any] struct {
	client *Client
	name   string
}

func NewCollection[T any](client *Client, name string) *Collection[T] {
	return &Collection[T]{client: client, name: name}
}

func NewUserRepository(client *Client) domain.UserRepository {
	return NewCollection[domain.User](client, Users)
}

func NewJobRepository(client *Client) domain.JobRepository {
	return NewCollection[domain.Job](client, Jobs)
}

func NewApplicationRepository(client *Client) domain.ApplicationRepository {
	return NewCollection[domain.JobApplication](client, JobApplications)
}

func (c *Collection[T]) List(ctx context.Context, q domain.Query) ([]T, error) {
	endpoint := c.client.baseURL + "/" + c.name
	if len(q) > 0 {
		values := url.Values{}
		for k, v := range q {
			values.Set(k, v)
		}
		endpoint += "?" + values.Encode()
	}

	records := make([]T, 0)
	if err := c.client.do(ctx, "list", c.name, http.MethodGet, endpoint, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Collection[T]) Get(ctx context.Context, id int64) (*T, error) {
	var record T
	if err := c.client.do(ctx, "get", c.name, http.MethodGet, c.itemURL(id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Collection[T]) Create(ctx context.Context, record *T) (*T, error) {
	var created T
	if err := c.client.do(ctx, "create", c.name, http.MethodPost, c.client.baseURL+"/"+c.name, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Collection[T]) Patch(ctx context.Context, id int64, fields map[string]interface{}) (*T, error) {
	var updated T
	if err := c.client.do(ctx, "patch", c.name, http.MethodPatch, c.itemURL(id), fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Collection[T]) itemURL(id int64) string {
	return c.client.baseURL + "/" + c.name + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, op, collection, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", op, collection, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &apperror.NetworkError{Op: op, Collection: collection, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperror.NetworkError{Op: op, Collection: collection, Err: err}
	}
	defer resp.Body.Close()

	if op == "get" && resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &apperror.NetworkError{Op: op, Collection: collection, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperror.NetworkError{Op: op, Collection: collection, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
