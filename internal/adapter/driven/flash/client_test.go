package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

const badSMSCode = "000000"

// fakeIdentityProvider emula as duas operações do Cognito usadas no login.
// Códigos SMS iguais a badSMSCode respondem com CodeMismatchException.
func fakeIdentityProvider(t *testing.T, calls *map[string]int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := r.Header.Get("X-Amz-Target")
		(*calls)[target]++

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")

		switch target {
		case "AWSCognitoIdentityProviderService.InitiateAuth":
			var req struct {
				AuthFlow       string            `json:"AuthFlow"`
				ClientId       string            `json:"ClientId"`
				AuthParameters map[string]string `json:"AuthParameters"`
				ClientMetadata map[string]string `json:"ClientMetadata"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "USER_PASSWORD_AUTH", req.AuthFlow)
			assert.Equal(t, "client-1", req.ClientId)
			assert.Equal(t, "user@example.com", req.AuthParameters["USERNAME"])
			assert.Equal(t, "hunter2", req.AuthParameters["PASSWORD"])
			assert.Equal(t, "SMS_MFA", req.ClientMetadata["preferredMfa"])

			fmt.Fprint(w, `{"ChallengeName":"SMS_MFA","Session":"sess-1"}`)

		case "AWSCognitoIdentityProviderService.RespondToAuthChallenge":
			var req struct {
				ChallengeName      string            `json:"ChallengeName"`
				ChallengeResponses map[string]string `json:"ChallengeResponses"`
				Session            string            `json:"Session"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "SMS_MFA", req.ChallengeName)
			assert.Equal(t, "sess-1", req.Session)
			assert.Equal(t, "user@example.com", req.ChallengeResponses["USERNAME"])

			if req.ChallengeResponses["SMS_MFA_CODE"] == badSMSCode {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"__type":"CodeMismatchException","message":"Invalid code or auth state for the user."}`)
				return
			}
			fmt.Fprint(w, `{"AuthenticationResult":{"AccessToken":"access-1"}}`)

		default:
			t.Errorf("unexpected identity operation %q", target)
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
}

// fakeWebAuth emula o signInEmployee do trpc.
func fakeWebAuth(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trpc/signInEmployee", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"employeeId":"emp-1","companyId":"comp-1"}`, string(body))

		fmt.Fprint(w, `{"result":{"data":{"token":"app-token-1"}}}`)
	}))
}

func newTestClient(t *testing.T, calls *map[string]int) *Client {
	t.Helper()
	idpServer := fakeIdentityProvider(t, calls)
	t.Cleanup(idpServer.Close)
	webAuthServer := fakeWebAuth(t)
	t.Cleanup(webAuthServer.Close)

	return NewClient("user@example.com", types.NewSecret("hunter2"), "comp-1", "emp-1", Endpoints{
		AuthURL:    idpServer.URL,
		WebAuthURL: webAuthServer.URL,
		ClientID:   "client-1",
	})
}

func TestFinishLoginBeforeInitiate(t *testing.T) {
	calls := map[string]int{}
	client := newTestClient(t, &calls)

	err := client.FinishLogin(context.Background(), "123456")
	assert.ErrorIs(t, err, types.ErrAuthNotStarted)
	assert.Empty(t, calls)
}

func TestInitiateAuthIsIdempotent(t *testing.T) {
	calls := map[string]int{}
	client := newTestClient(t, &calls)

	require.NoError(t, client.InitiateAuth(context.Background()))
	assert.Equal(t, authInitialized, client.state)
	assert.Equal(t, "sess-1", client.session)

	// A segunda chamada é um no-op: nenhuma requisição extra.
	require.NoError(t, client.InitiateAuth(context.Background()))
	assert.Equal(t, 1, calls["AWSCognitoIdentityProviderService.InitiateAuth"])
}

func TestFinishLoginRetryAfterBadCode(t *testing.T) {
	calls := map[string]int{}
	client := newTestClient(t, &calls)
	require.NoError(t, client.InitiateAuth(context.Background()))

	// Um código errado falha mas não derruba a sessão: o estado continua
	// Initialized e um código novo pode ser tentado direto.
	err := client.FinishLogin(context.Background(), badSMSCode)
	require.Error(t, err)
	assert.Equal(t, authInitialized, client.state)

	require.NoError(t, client.FinishLogin(context.Background(), "123456"))
	assert.Equal(t, authAuthenticated, client.state)
	assert.Equal(t, "app-token-1", client.token)

	// Depois de autenticado, FinishLogin vira no-op.
	require.NoError(t, client.FinishLogin(context.Background(), "999999"))
	assert.Equal(t, 2, calls["AWSCognitoIdentityProviderService.RespondToAuthChallenge"])
}

func TestNewClientWithTokenSkipsLogin(t *testing.T) {
	client := NewClientWithToken("app-token-1", "comp-1", "emp-1", Endpoints{})
	assert.Equal(t, authAuthenticated, client.state)
	assert.Equal(t, "app-token-1", client.token)
	assert.Equal(t, ProviderName, client.Name())
}

func TestEndpointsFillDefaults(t *testing.T) {
	var e Endpoints
	e.fillDefaults()
	assert.Equal(t, DefaultAuthURL, e.AuthURL)
	assert.Equal(t, DefaultWebAuthURL, e.WebAuthURL)
	assert.Equal(t, DefaultBFFURL, e.BFFURL)
	assert.Equal(t, DefaultClientID, e.ClientID)
}
