package caju

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rcardoso/beneficio-ofx-go/internal/domain/entity"
	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// ProviderName is the display name carried into the OFX account block.
const ProviderName = "Caju"

// DefaultBaseURL is the production API gateway.
const DefaultBaseURL = "https://apigw.caju.com.br"

// pageSize é o tamanho de página usado na paginação do extrato mensal.
const pageSize = 20

// Client fala com a API do app móvel da Caju. O token bearer é trocado uma
// vez em Login e reutilizado em todas as chamadas seguintes.
type Client struct {
	baseURL    string
	userID     string
	employeeID string
	httpClient *http.Client
	bearer     string
}

// NewClient creates a Caju client. An empty baseURL falls back to production.
func NewClient(baseURL, userID, employeeID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		userID:     userID,
		employeeID: employeeID,
		httpClient: &http.Client{},
	}
}

// Name returns the provider display name.
func (c *Client) Name() string {
	return ProviderName
}

// Login troca o par bearer/refresh capturado do app por um token novo e o
// instala no cliente para as chamadas seguintes.
func (c *Client) Login(ctx context.Context, existingToken, refreshToken types.Secret) error {
	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken.Reveal()})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/v1/user/%s/bearer_token", c.baseURL, c.userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+existingToken.Reveal())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("caju login: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("caju login: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("caju login: unexpected status %d: %s", resp.StatusCode, raw)
	}

	var login LoginResponse
	if err := json.Unmarshal(raw, &login); err != nil {
		return &types.ParseError{Err: err, Body: string(raw)}
	}
	if login.BearerToken == "" {
		return &types.ParseError{Err: fmt.Errorf("response carried no bearerToken"), Body: string(raw)}
	}

	c.bearer = login.BearerToken
	return nil
}

// Statement fetches one page of the statement endpoint.
func (c *Client) Statement(ctx context.Context, query StatementQuery) (*StatementResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/employee/%s/statement", c.baseURL, c.employeeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	startDate, endDate := "", ""
	if !query.StartDate.IsZero() {
		startDate = query.StartDate.Format("2006-01-02")
	}
	if !query.EndDate.IsZero() {
		endDate = query.EndDate.Format("2006-01-02")
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("cursor", query.Cursor)
	params.Set("order", "DESC")
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	req.URL.RawQuery = params.Encode()

	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("caju statement: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("caju statement: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caju statement: unexpected status %d: %s", resp.StatusCode, raw)
	}

	var page StatementResponse
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &types.ParseError{Err: err, Body: string(raw)}
	}
	return &page, nil
}

// MonthStatement pagina o extrato do mês inteiro e converte para o modelo
// canônico. A ordem é descendente; o cursor da próxima página é o do ÚLTIMO
// item da página anterior.
func (c *Client) MonthStatement(ctx context.Context, year int, month time.Month) (*entity.Statement, error) {
	if year == 0 {
		year = time.Now().Local().Year()
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	var items []StatementItem
	cursor := ""
	for hasNext := true; hasNext; {
		page, err := c.Statement(ctx, StatementQuery{
			Limit:     pageSize,
			Cursor:    cursor,
			StartDate: firstDay,
			EndDate:   lastDay,
		})
		if err != nil {
			return nil, err
		}

		hasNext = page.HasNext
		if len(page.Items) == 0 {
			// Saída defensiva: uma resposta malformada com hasNext=true e
			// página vazia não pode virar loop infinito.
			break
		}
		cursor = page.Items[len(page.Items)-1].Cursor

		for _, entry := range page.Items {
			items = append(items, entry.Item)
		}
	}

	return ToStatement(items)
}
