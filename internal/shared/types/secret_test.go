package types

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretNeverLeaksThroughFormatting(t *testing.T) {
	secret := NewSecret("super-sensitive-token")

	assert.NotContains(t, fmt.Sprintf("%v", secret), "super-sensitive-token")
	assert.NotContains(t, fmt.Sprintf("%+v", secret), "super-sensitive-token")
	assert.NotContains(t, fmt.Sprintf("%#v", secret), "super-sensitive-token")
	assert.NotContains(t, fmt.Sprintf("%s", secret), "super-sensitive-token")

	assert.Equal(t, "********", secret.String())
}

func TestSecretMarshalJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Token Secret `json:"token"`
	}{Token: NewSecret("super-sensitive-token")})
	require.NoError(t, err)

	assert.JSONEq(t, `{"token":"********"}`, string(payload))
}

func TestSecretReveal(t *testing.T) {
	secret := NewSecret("value")
	assert.Equal(t, "value", secret.Reveal())
	assert.False(t, secret.IsZero())
	assert.True(t, NewSecret("").IsZero())
}
