package models

import (
	"encoding/json"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"

	"archbudget/internal/engine"
)

// Budget matches the budgets table: a saved calculation owned by one user.
// Name, client and project columns are denormalized so listings never have to
// deserialize the data blob; Data and Results live in JSONB.
type Budget struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Name        string          `json:"name"`
	ClientName  *string         `json:"client_name,omitempty"`
	ProjectName *string         `json:"project_name,omitempty"`
	Data        engine.Snapshot `json:"data"`
	Results     engine.Results  `json:"results"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BudgetListing is the blob-free projection used by list endpoints.
type BudgetListing struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ClientName  *string   `json:"client_name,omitempty"`
	ProjectName *string   `json:"project_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *Budget) Prepare() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.Name = html.EscapeString(strings.TrimSpace(b.Name))
}

// MarshalData serializes the input snapshot for the JSONB column.
func (b *Budget) MarshalData() ([]byte, error) {
	return json.Marshal(b.Data)
}

// MarshalResults serializes the computed results for the JSONB column.
func (b *Budget) MarshalResults() ([]byte, error) {
	return json.Marshal(b.Results)
}
