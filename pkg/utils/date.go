package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD; string vazia retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// UnixHour retorna a hora unix (segundos / 3600) de um instante
func UnixHour(t time.Time) int64 {
	return t.Unix() / 3600
}

// DisplayTimestamp formata um instante no formato exibido pelo dashboard
func DisplayTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000000")
}
