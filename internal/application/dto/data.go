package dto

import (
	"fmt"
	"strings"
	"time"
)

const formatoData = "2006-01-02"

// Data é uma data civil (sem hora) serializada como "AAAA-MM-DD" no JSON.
// Aceita também RFC 3339 na entrada, para clientes que enviam timestamp completo.
type Data struct {
	time.Time
}

// NovaData constrói uma Data a partir de um time.Time.
func NovaData(t time.Time) Data {
	return Data{Time: t}
}

// MarshalJSON serializa como "AAAA-MM-DD". Data zero vira null.
func (d Data) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(formatoData) + `"`), nil
}

// UnmarshalJSON aceita "AAAA-MM-DD", RFC 3339 ou null.
func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(formatoData, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("data inválida %q: esperado AAAA-MM-DD", s)
	}
	d.Time = t
	return nil
}
