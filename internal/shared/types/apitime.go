package types

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	apiTimeInLayout  = "2006-01-02T15:04:05.999999999Z"
	apiTimeOutLayout = "2006-01-02T15:04:05.000Z"
)

// APITime decodifica os timestamps dos provedores ("2006-01-02T15:04:05.000Z").
// O valor é tratado como data-hora naive: nenhuma conversão de fuso é
// aplicada, e só a data de calendário é significativa no restante do
// pipeline.
type APITime struct {
	time.Time
}

// NewAPITime wraps a time value for request serialization.
func NewAPITime(t time.Time) APITime {
	return APITime{Time: t}
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := time.Parse(apiTimeInLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date-time %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

func (t APITime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(apiTimeOutLayout))
}
