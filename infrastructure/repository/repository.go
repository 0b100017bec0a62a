// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

//go:generate mockgen -source=campaign.go -destination=mocks/campaign.go -package=mocks
//go:generate mockgen -source=hourly_metric.go -destination=mocks/hourly_metric.go -package=mocks
//go:generate mockgen -source=hierarchy.go -destination=mocks/hierarchy.go -package=mocks
//go:generate mockgen -source=sync_history.go -destination=mocks/sync_history.go -package=mocks

// queryError anexa o código do postgres quando disponível
func queryError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

func syncTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
