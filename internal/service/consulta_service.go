package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const consultaCacheTTL = 60 * time.Second

// ConsultaService resolves public price checks. Results may come from a
// short-lived cache; the stock ledger itself is always read straight from
// the database.
type ConsultaService interface {
	PreciosPorNombre(ctx context.Context, nombre string) ([]dto.ConsultaPreciosResponse, error)
}

type consultaService struct {
	productoRepo repository.ProductoRepository
	cache        *redis.Client
}

func NewConsultaService(productoRepo repository.ProductoRepository, cache *redis.Client) ConsultaService {
	return &consultaService{productoRepo: productoRepo, cache: cache}
}

func (s *consultaService) PreciosPorNombre(ctx context.Context, nombre string) ([]dto.ConsultaPreciosResponse, error) {
	key := "precios:" + strings.ToLower(strings.TrimSpace(nombre))

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached []dto.ConsultaPreciosResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	productos, err := s.productoRepo.Search(ctx, nombre)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ConsultaPreciosResponse, 0, len(productos))
	for i := range productos {
		p := &productos[i]
		items = append(items, dto.ConsultaPreciosResponse{
			Nombre:      p.Nombre,
			Categoria:   p.Categoria,
			Unidad:      p.Unidad,
			PrecioVenta: p.PrecioVenta(),
			Stock:       p.Stock,
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, raw, consultaCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear la consulta de precios")
			}
		}
	}
	return items, nil
}
