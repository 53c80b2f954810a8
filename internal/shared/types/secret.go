package types

// Secret guarda uma credencial em modo write-only: a formatação padrão nunca
// expõe o valor, então um log acidental imprime apenas a máscara.
type Secret struct {
	value string
}

// NewSecret wraps a credential value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the underlying value. Callers should pass the result
// straight into a request and never log it.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether the secret is empty.
func (s Secret) IsZero() bool {
	return s.value == ""
}

func (s Secret) String() string {
	return "********"
}

func (s Secret) GoString() string {
	return "types.Secret{}"
}

// MarshalJSON sempre emite a máscara, nunca o valor.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"********"`), nil
}
