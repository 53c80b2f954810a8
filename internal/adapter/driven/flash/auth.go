package flash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	idptypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

type signInEmployeeResponse struct {
	Result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	} `json:"result"`
}

// InitiateAuth inicia o password grant contra o provedor de identidade da
// Flash e guarda a sessão devolvida. Chamar de novo depois que a sessão já
// avançou é um no-op; uma falha deixa o estado em NotStarted.
func (c *Client) InitiateAuth(ctx context.Context) error {
	if c.state != authNotStarted {
		return nil
	}

	out, err := c.idp.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: idptypes.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.endpoints.ClientID),
		AuthParameters: map[string]string{
			"USERNAME": c.username,
			"PASSWORD": c.password.Reveal(),
		},
		ClientMetadata: map[string]string{
			"preferredMfa": "SMS_MFA",
		},
	})
	if err != nil {
		return fmt.Errorf("flash initiate auth: %w", err)
	}
	if out.Session == nil || *out.Session == "" {
		return fmt.Errorf("flash initiate auth: response carried no session")
	}

	c.session = *out.Session
	c.state = authInitialized
	return nil
}

// FinishLogin envia o código SMS do segundo fator e troca o access token
// resultante pelo token de aplicação usado nas chamadas de extrato. Uma
// tentativa falhada deixa a sessão em Initialized, então um código novo pode
// ser reenviado sem repetir InitiateAuth.
func (c *Client) FinishLogin(ctx context.Context, secondFactor string) error {
	switch c.state {
	case authNotStarted:
		return types.ErrAuthNotStarted
	case authAuthenticated:
		return nil
	}

	out, err := c.idp.RespondToAuthChallenge(ctx, &cognitoidentityprovider.RespondToAuthChallengeInput{
		ChallengeName: idptypes.ChallengeNameTypeSmsMfa,
		ChallengeResponses: map[string]string{
			"USERNAME":     c.username,
			"SMS_MFA_CODE": secondFactor,
		},
		ClientId: aws.String(c.endpoints.ClientID),
		Session:  aws.String(c.session),
	})
	if err != nil {
		return fmt.Errorf("flash second factor: %w", err)
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		return fmt.Errorf("flash second factor: response carried no access token")
	}

	token, err := c.signInEmployee(ctx, *out.AuthenticationResult.AccessToken)
	if err != nil {
		return err
	}

	c.token = token
	c.state = authAuthenticated
	return nil
}

// signInEmployee faz a troca final: o access token do Cognito vira o token de
// aplicação de longa duração, amarrado ao employeeId/companyId.
func (c *Client) signInEmployee(ctx context.Context, accessToken string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"employeeId": c.employeeID,
		"companyId":  c.companyID,
	})
	if err != nil {
		return "", err
	}

	endpoint := c.endpoints.WebAuthURL + "/trpc/signInEmployee"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("flash sign-in employee: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("flash sign-in employee: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("flash sign-in employee: unexpected status %d: %s", resp.StatusCode, raw)
	}

	var parsed signInEmployeeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &types.ParseError{Err: err, Body: string(raw)}
	}
	if parsed.Result.Data.Token == "" {
		return "", &types.ParseError{Err: fmt.Errorf("response carried no token"), Body: string(raw)}
	}

	return parsed.Result.Data.Token, nil
}
