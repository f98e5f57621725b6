package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	publicdomain "github.com/petzim/petzim-services/api/internal/public/domain"
)

type seedOptions struct {
	mongoURI           string
	database           string
	userCollection     string
	estabCollection    string
	partnerCount       int
	tutorCount         int
	establishmentCount int
	maxReviews         int
	dropCollections    bool
	randomSeed         int64
}

type userDocument struct {
	ID          string    `bson:"_id"`
	FullName    string    `bson:"fullName"`
	Email       string    `bson:"email"`
	Password    string    `bson:"password"`
	AccountType string    `bson:"accountType"`
	CreatedAt   time.Time `bson:"createdAt"`
}

type reviewDocument struct {
	ID      string `bson:"id,omitempty"`
	Name    string `bson:"name"`
	Rating  int    `bson:"rating"`
	Comment string `bson:"comment,omitempty"`
	Date    string `bson:"date"`
}

type establishmentDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	OwnerID      string             `bson:"ownerId"`
	Name         string             `bson:"nome"`
	Category     string             `bson:"tipo"`
	Address      string             `bson:"endereco"`
	Phone        string             `bson:"telefone"`
	Hours        string             `bson:"horario,omitempty"`
	Description  string             `bson:"descricao,omitempty"`
	PriceTier    string             `bson:"preco,omitempty"`
	Services     []string           `bson:"servico,omitempty"`
	Reviews      []reviewDocument   `bson:"reviews"`
	ReviewsCount int                `bson:"reviewsCount"`
	Rating       float64            `bson:"rating"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

var categories = []string{"Pet Shop", "Clínica Veterinária", "Hotel para Pets", "Banho e Tosa", "Adestramento"}

var priceTiers = []string{"Baixo", "Médio", "Alto"}

var serviceOptions = []string{"Banho", "Tosa", "Consulta", "Vacinação", "Hospedagem", "Táxi Pet", "Adestramento"}

var establishmentNames = []string{
	"Mundo Pet", "Amigo Fiel", "Patas & Cia", "Recanto Animal", "Vida de Pet",
	"Bicho Feliz", "Espaço Pet", "Cão & Gato", "Planeta Pet", "Toca do Bicho",
}

var neighborhoods = []string{"Centro", "Aldeota", "Meireles", "Benfica", "Messejana", "Parangaba"}

var tutorNames = []string{
	"Ana Souza", "Carlos Lima", "Mariana Alves", "João Pereira", "Beatriz Costa",
	"Rafael Santos", "Larissa Rocha", "Pedro Martins", "Camila Dias", "Lucas Moreira",
}

var comments = []string{
	"Atendimento excelente, meu cachorro adorou!",
	"Preço justo e equipe muito atenciosa.",
	"Demorou um pouco, mas o serviço foi bom.",
	"Voltarei com certeza, recomendo.",
	"O banho ficou ótimo, mas a tosa podia ser melhor.",
	"Lugar limpo e organizado.",
	"",
}

func main() {
	opts := parseFlags()
	rng := rand.New(rand.NewSource(opts.randomSeed))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(opts.mongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("falha na conexão com o MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(opts.database)
	users := db.Collection(opts.userCollection)
	establishments := db.Collection(opts.estabCollection)

	if opts.dropCollections {
		if err := users.Drop(ctx); err != nil {
			log.Fatalf("falha ao limpar %s: %v", opts.userCollection, err)
		}
		if err := establishments.Drop(ctx); err != nil {
			log.Fatalf("falha ao limpar %s: %v", opts.estabCollection, err)
		}
	}

	partners := seedUsers(ctx, users, opts.partnerCount, "Parceiro", rng)
	tutors := seedUsers(ctx, users, opts.tutorCount, "Tutor", rng)
	total := seedEstablishments(ctx, establishments, partners, tutors, opts, rng)

	log.Printf("seed concluído: %d parceiros, %d tutores, %d estabelecimentos", len(partners), len(tutors), total)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.StringVar(&opts.mongoURI, "mongo-uri", "mongodb://localhost:27017", "URI de conexão do MongoDB")
	flag.StringVar(&opts.database, "db", "petzim", "nome do banco")
	flag.StringVar(&opts.userCollection, "users", "users", "coleção de contas")
	flag.StringVar(&opts.estabCollection, "establishments", "estabelecimentos", "coleção de estabelecimentos")
	flag.IntVar(&opts.partnerCount, "partners", 4, "quantidade de contas Parceiro")
	flag.IntVar(&opts.tutorCount, "tutors", 8, "quantidade de contas Tutor")
	flag.IntVar(&opts.establishmentCount, "per-partner", 3, "estabelecimentos por parceiro")
	flag.IntVar(&opts.maxReviews, "max-reviews", 6, "máximo de avaliações por estabelecimento")
	flag.BoolVar(&opts.dropCollections, "drop", false, "limpa as coleções antes de inserir")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "semente do gerador aleatório")
	flag.Parse()
	return opts
}

func seedUsers(ctx context.Context, collection *mongo.Collection, count int, accountType string, rng *rand.Rand) []publicdomain.User {
	created := make([]publicdomain.User, 0, count)
	for i := 0; i < count; i++ {
		name := tutorNames[rng.Intn(len(tutorNames))]
		email := fmt.Sprintf("%s%d@exemplo.com", emailSlug(name), rng.Intn(10000))
		user := publicdomain.User{
			ID:          publicdomain.SafeKey(email),
			FullName:    name,
			Email:       email,
			Password:    "123456",
			AccountType: accountType,
			CreatedAt:   time.Now().UTC(),
		}

		doc := userDocument{
			ID:          user.ID,
			FullName:    user.FullName,
			Email:       user.Email,
			Password:    user.Password,
			AccountType: user.AccountType,
			CreatedAt:   user.CreatedAt,
		}
		if _, err := collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			log.Fatalf("falha ao inserir conta: %v", err)
		}
		created = append(created, user)
	}
	return created
}

func seedEstablishments(ctx context.Context, collection *mongo.Collection, partners, tutors []publicdomain.User, opts seedOptions, rng *rand.Rand) int {
	total := 0
	for _, partner := range partners {
		for i := 0; i < opts.establishmentCount; i++ {
			reviews := randomReviews(tutors, opts.maxReviews, rng)
			summary := publicdomain.Summarize(reviews)

			now := time.Now().UTC()
			doc := establishmentDocument{
				ID:           primitive.NewObjectID(),
				OwnerID:      partner.ID,
				Name:         fmt.Sprintf("%s %s", establishmentNames[rng.Intn(len(establishmentNames))], neighborhoods[rng.Intn(len(neighborhoods))]),
				Category:     categories[rng.Intn(len(categories))],
				Address:      fmt.Sprintf("Rua %d, %s", 100+rng.Intn(900), neighborhoods[rng.Intn(len(neighborhoods))]),
				Phone:        fmt.Sprintf("(85) 9%04d-%04d", rng.Intn(10000), rng.Intn(10000)),
				Hours:        "Seg a Sáb, 8h às 18h",
				Description:  "Cuidamos do seu pet com carinho e profissionais qualificados.",
				PriceTier:    priceTiers[rng.Intn(len(priceTiers))],
				Services:     randomServices(rng),
				Reviews:      toReviewDocuments(reviews),
				ReviewsCount: summary.Count,
				Rating:       summary.Average,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if _, err := collection.InsertOne(ctx, doc); err != nil {
				log.Fatalf("falha ao inserir estabelecimento: %v", err)
			}
			total++
		}
	}

	// Índice de apoio às consultas por dono.
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}},
	})
	if err != nil {
		log.Printf("falha ao criar índice ownerId: %v", err)
	}
	return total
}

func randomReviews(tutors []publicdomain.User, maxReviews int, rng *rand.Rand) []publicdomain.Review {
	if len(tutors) == 0 || maxReviews <= 0 {
		return nil
	}
	count := rng.Intn(maxReviews + 1)
	reviews := make([]publicdomain.Review, 0, count)
	for i := 0; i < count; i++ {
		tutor := tutors[rng.Intn(len(tutors))]
		date := time.Now().AddDate(0, 0, -rng.Intn(120)).Format("02/01/2006")
		reviews = append(reviews, publicdomain.Review{
			ID:      uuid.NewString(),
			Name:    tutor.FullName,
			Rating:  1 + rng.Intn(5),
			Comment: comments[rng.Intn(len(comments))],
			Date:    date,
		})
	}
	return reviews
}

func randomServices(rng *rand.Rand) []string {
	count := 1 + rng.Intn(4)
	picked := make([]string, 0, count)
	seen := make(map[string]struct{})
	for len(picked) < count {
		service := serviceOptions[rng.Intn(len(serviceOptions))]
		if _, ok := seen[service]; ok {
			continue
		}
		seen[service] = struct{}{}
		picked = append(picked, service)
	}
	return picked
}

func toReviewDocuments(reviews []publicdomain.Review) []reviewDocument {
	docs := make([]reviewDocument, 0, len(reviews))
	for _, review := range reviews {
		docs = append(docs, reviewDocument{
			ID:      review.ID,
			Name:    review.Name,
			Rating:  review.Rating,
			Comment: review.Comment,
			Date:    review.Date,
		})
	}
	return docs
}

func emailSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", ".")
	return slug
}
