package public

// Os nomes de campo JSON em português vêm do aplicativo legado e precisam
// permanecer estáveis para os clientes existentes.

type listingResponse struct {
	ID           string   `json:"id"`
	OwnerID      string   `json:"ownerId"`
	Name         string   `json:"nome"`
	Category     string   `json:"tipo"`
	Rating       float64  `json:"rating"`
	RatingLabel  string   `json:"ratingLabel"`
	ReviewsCount int      `json:"reviewsCount"`
	PriceTag     string   `json:"preco"`
	Address      string   `json:"endereco"`
	Phone        string   `json:"telefone"`
	Hours        string   `json:"horario"`
	Description  string   `json:"descricao"`
	Services     []string `json:"servico"`
}

type listingListResponse struct {
	Items []listingResponse `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
}

type reviewResponse struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type reviewSummaryResponse struct {
	Count     int         `json:"count"`
	Average   float64     `json:"average"`
	Histogram map[int]int `json:"histogram"`
}

type establishmentDetailResponse struct {
	listingResponse
	Reviews []reviewResponse      `json:"reviews"`
	Summary reviewSummaryResponse `json:"summary"`
}

type signupRequest struct {
	FullName    string `json:"nome"`
	Email       string `json:"email"`
	Password    string `json:"senha"`
	AccountType string `json:"tipoConta"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type userResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"nome"`
	Email       string `json:"email"`
	AccountType string `json:"tipoConta"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type reviewCreateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type reviewDeleteRequest struct {
	Review        *reviewResponse `json:"review"`
	FallbackIndex *int            `json:"fallbackIndex"`
}
