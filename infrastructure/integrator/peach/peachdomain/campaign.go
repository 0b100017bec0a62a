package peachdomain

import "fmt"

// Campaign é a campanha como retornada por GET /admin/campaigns.
// Os campos obrigatórios são ponteiros para distinguir ausência de valor zero.
type Campaign struct {
	ID            *int64  `json:"id"`
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	TrackingURL   *string `json:"tracking_url"`
	IsServing     bool    `json:"is_serving"`
	ServingURL    *string `json:"serving_url"`
	TrafficWeight int     `json:"traffic_weight"`
	DeletedAt     *string `json:"deleted_at"`
	CreatedAt     *string `json:"created_at"`
	UpdatedAt     *string `json:"updated_at"`
	Slug          *string `json:"slug"`
	Path          *string `json:"path"`
}

// Validate verifica os campos exigidos pelo warehouse
func (c Campaign) Validate() error {
	switch {
	case c.ID == nil:
		return fmt.Errorf("missing required field: id")
	case c.Name == nil:
		return fmt.Errorf("missing required field: name")
	case c.CreatedAt == nil:
		return fmt.Errorf("missing required field: created_at")
	case c.UpdatedAt == nil:
		return fmt.Errorf("missing required field: updated_at")
	}
	return nil
}
