package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petzim/petzim-services/api/internal/public/application"
)

// EstablishmentWatcher alimenta o catálogo em memória: carga inicial
// completa e recarga a cada mutação observada no change stream da coleção.
type EstablishmentWatcher struct {
	collection *mongo.Collection
	repo       *EstablishmentRepository
	catalog    *application.Catalog
	logger     *log.Logger
}

// NewEstablishmentWatcher creates a watcher bound to the establishments
// collection.
func NewEstablishmentWatcher(db *mongo.Database, collectionName string, repo *EstablishmentRepository, catalog *application.Catalog, logger *log.Logger) *EstablishmentWatcher {
	return &EstablishmentWatcher{
		collection: db.Collection(collectionName),
		repo:       repo,
		catalog:    catalog,
		logger:     logger,
	}
}

// Run bloqueia até o contexto ser cancelado. A carga inicial é síncrona;
// depois dela o catálogo já responde às listagens mesmo que o stream caia.
func (w *EstablishmentWatcher) Run(ctx context.Context) error {
	if err := w.reload(ctx); err != nil {
		return err
	}

	for {
		if err := w.watch(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// Stream derrubado (failover, rede): reabre após um respiro.
			w.logger.Printf("stream de estabelecimentos interrompido: %v", err)
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				return nil
			}
			continue
		}
		return nil
	}
}

func (w *EstablishmentWatcher) watch(ctx context.Context) error {
	stream, err := w.collection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return err
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		if err := w.reload(ctx); err != nil {
			w.logger.Printf("recarga do catálogo falhou: %v", err)
		}
	}
	return stream.Err()
}

func (w *EstablishmentWatcher) reload(ctx context.Context) error {
	establishments, err := w.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	w.catalog.Replace(establishments)
	return nil
}
