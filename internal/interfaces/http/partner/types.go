package partner

// Mesmo vocabulário JSON do contexto público; o aplicativo do parceiro
// reaproveita as telas de listagem.

type establishmentResponse struct {
	ID           string   `json:"id"`
	OwnerID      string   `json:"ownerId"`
	Name         string   `json:"nome"`
	Category     string   `json:"tipo"`
	Address      string   `json:"endereco"`
	Phone        string   `json:"telefone"`
	Hours        string   `json:"horario"`
	Description  string   `json:"descricao"`
	PriceTier    string   `json:"preco"`
	Services     []string `json:"servico"`
	ReviewsCount int      `json:"reviewsCount"`
	Rating       float64  `json:"rating"`
}

type establishmentListResponse struct {
	Items []establishmentResponse `json:"items"`
	Total int                     `json:"total"`
}

type upsertEstablishmentRequest struct {
	Name        string   `json:"nome"`
	Category    string   `json:"tipo"`
	Address     string   `json:"endereco"`
	Phone       string   `json:"telefone"`
	Hours       string   `json:"horario"`
	Description string   `json:"descricao"`
	PriceTier   string   `json:"preco"`
	Services    []string `json:"servico"`
}

type updateEstablishmentRequest struct {
	Name        *string   `json:"nome"`
	Category    *string   `json:"tipo"`
	Address     *string   `json:"endereco"`
	Phone       *string   `json:"telefone"`
	Hours       *string   `json:"horario"`
	Description *string   `json:"descricao"`
	PriceTier   *string   `json:"preco"`
	Services    *[]string `json:"servico"`
}

type reviewResponse struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type reviewBoardResponse struct {
	Reviews   []reviewResponse `json:"reviews"`
	Count     int              `json:"count"`
	Average   float64          `json:"average"`
	Histogram map[int]int      `json:"histogram"`
}

type dashboardResponse struct {
	Establishments int     `json:"estabelecimentos"`
	TotalReviews   int     `json:"totalAvaliacoes"`
	AverageRating  float64 `json:"mediaGeral"`
}
