package flash

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/rcardoso/beneficio-ofx-go/internal/shared/types"
)

// ProviderName is the display name carried into the OFX account block.
const ProviderName = "Flash"

// Endpoints de produção da Flash. O provedor de identidade é um user pool
// Cognito atrás do host hros-auth.
const (
	DefaultAuthURL    = "https://hros-auth.flashapp.services"
	DefaultWebAuthURL = "https://flashos-entrance.us.flashapp.services/v1/auth"
	DefaultBFFURL     = "https://corporate-card-bff.us.flashapp.services/bff/trpc"
	DefaultClientID   = "4r4ki1jqohppg2dko3uf7rvq13"
)

// The BFF rejects requests without a browser user agent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:135.0) Gecko/20100101 Firefox/135.0"

// Endpoints lets tests point the client at local fakes. Zero values fall
// back to production.
type Endpoints struct {
	AuthURL    string
	WebAuthURL string
	BFFURL     string
	ClientID   string
}

func (e *Endpoints) fillDefaults() {
	if e.AuthURL == "" {
		e.AuthURL = DefaultAuthURL
	}
	if e.WebAuthURL == "" {
		e.WebAuthURL = DefaultWebAuthURL
	}
	if e.BFFURL == "" {
		e.BFFURL = DefaultBFFURL
	}
	if e.ClientID == "" {
		e.ClientID = DefaultClientID
	}
}

// authState é o estado da sessão de autenticação. As transições são
// unidirecionais: NotStarted -> Initialized -> Authenticated.
type authState int

const (
	authNotStarted authState = iota
	authInitialized
	authAuthenticated
)

// Client drives Flash's three-step login and the statement query. The
// password is write-only and never leaves the client except inside the
// InitiateAuth request.
type Client struct {
	username   string
	password   types.Secret
	companyID  string
	employeeID string
	endpoints  Endpoints
	httpClient *http.Client
	idp        *cognitoidentityprovider.Client

	state   authState
	session string // Cognito session token, set by InitiateAuth
	token   string // application token, set by FinishLogin
}

// NewClient creates an unauthenticated Flash client.
func NewClient(username string, password types.Secret, companyID, employeeID string, endpoints Endpoints) *Client {
	endpoints.fillDefaults()
	return &Client{
		username:   username,
		password:   password,
		companyID:  companyID,
		employeeID: employeeID,
		endpoints:  endpoints,
		httpClient: &http.Client{},
		idp:        newIdentityClient(endpoints.AuthURL),
		state:      authNotStarted,
	}
}

// NewClientWithToken cria um cliente já autenticado com um token de aplicação
// obtido fora da ferramenta, pulando a máquina de estados inteira.
func NewClientWithToken(token, companyID, employeeID string, endpoints Endpoints) *Client {
	endpoints.fillDefaults()
	return &Client{
		companyID:  companyID,
		employeeID: employeeID,
		endpoints:  endpoints,
		httpClient: &http.Client{},
		idp:        newIdentityClient(endpoints.AuthURL),
		state:      authAuthenticated,
		token:      token,
	}
}

// Name returns the provider display name.
func (c *Client) Name() string {
	return ProviderName
}

// newIdentityClient aponta o SDK do Cognito para o host de autenticação da
// Flash. InitiateAuth e RespondToAuthChallenge são operações anônimas, então
// nenhuma credencial AWS é necessária.
func newIdentityClient(authURL string) *cognitoidentityprovider.Client {
	return cognitoidentityprovider.New(cognitoidentityprovider.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(authURL),
		Credentials:  aws.AnonymousCredentials{},
	})
}
