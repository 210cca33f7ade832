package entities

import "time"

type MarketingType string

const (
	MarketingTypeEmail    MarketingType = "email"
	MarketingTypeSocial   MarketingType = "social"
	MarketingTypeAds      MarketingType = "ads"
	MarketingTypeEvento   MarketingType = "evento"
	MarketingTypeConteudo MarketingType = "conteudo"
)

type MarketingStatus string

const (
	MarketingStatusPlanejada MarketingStatus = "planejada"
	MarketingStatusAtiva     MarketingStatus = "ativa"
	MarketingStatusPausada   MarketingStatus = "pausada"
	MarketingStatusConcluida MarketingStatus = "concluida"
)

// Marketing is a campaign record. Budget and Spent are in minor currency
// units.
type Marketing struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        MarketingType   `json:"type"`
	Status      MarketingStatus `json:"status"`
	Budget      int64           `json:"budget"`
	Spent       int64           `json:"spent"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}
