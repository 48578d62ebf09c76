package cityimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Record is one municipality as the importer stores it.
type Record struct {
	Name  string
	State string
}

// municipio mirrors the part of the IBGE payload that is read:
// nome + regiao-imediata.regiao-intermediaria.UF.sigla.
type municipio struct {
	Nome           string `json:"nome"`
	RegiaoImediata *struct {
		RegiaoIntermediaria *struct {
			UF *struct {
				Sigla string `json:"sigla"`
			} `json:"UF"`
		} `json:"regiao-intermediaria"`
	} `json:"regiao-imediata"`
}

var ErrMalformedRecord = errors.New("cityimport: malformed record")

type Client struct {
	http *http.Client
	url  string
}

// NewClient builds a client for the municipalities endpoint. timeout bounds
// the whole request, body included.
func NewClient(url string, timeout time.Duration) *Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &Client{
		url: url,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           dialer.DialContext,
				ForceAttemptHTTP2:     true,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
}

// FetchCities downloads the full list. Any record without a name or a
// state path fails the whole fetch.
func (c *Client) FetchCities(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("cityimport: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cityimport: fetch %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("cityimport: fetch %s: status %d: %s", c.url, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload []municipio
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cityimport: decode: %w", err)
	}

	records := make([]Record, 0, len(payload))
	for i, m := range payload {
		state := m.state()
		name := strings.TrimSpace(m.Nome)
		if name == "" || state == "" {
			return nil, fmt.Errorf("%w: index %d (nome=%q)", ErrMalformedRecord, i, m.Nome)
		}
		records = append(records, Record{Name: name, State: strings.ToUpper(state)})
	}
	return records, nil
}

func (m municipio) state() string {
	if m.RegiaoImediata == nil ||
		m.RegiaoImediata.RegiaoIntermediaria == nil ||
		m.RegiaoImediata.RegiaoIntermediaria.UF == nil {
		return ""
	}
	return strings.TrimSpace(m.RegiaoImediata.RegiaoIntermediaria.UF.Sigla)
}
