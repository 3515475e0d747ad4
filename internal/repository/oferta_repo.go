package repository

import (
	"context"

	"github.com/CruzGuillermo/stock-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfertaRepository interface {
	List(ctx context.Context) ([]model.OfertaEspecial, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.OfertaEspecial, error)
	CreateTx(tx *gorm.DB, o *model.OfertaEspecial) error
	// ReplaceDetallesTx deletes the bundle's detail rows and inserts the new set.
	ReplaceDetallesTx(tx *gorm.DB, ofertaID uuid.UUID, detalles []model.DetalleOfertaEspecial) error
	UpdateTx(tx *gorm.DB, o *model.OfertaEspecial) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type ofertaRepo struct{ db *gorm.DB }

func NewOfertaRepository(db *gorm.DB) OfertaRepository { return &ofertaRepo{db: db} }

func (r *ofertaRepo) DB() *gorm.DB { return r.db }

func (r *ofertaRepo) List(ctx context.Context) ([]model.OfertaEspecial, error) {
	var ofertas []model.OfertaEspecial
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Find(&ofertas).Error
	return ofertas, err
}

func (r *ofertaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OfertaEspecial, error) {
	var o model.OfertaEspecial
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *ofertaRepo) CreateTx(tx *gorm.DB, o *model.OfertaEspecial) error {
	return tx.Create(o).Error
}

func (r *ofertaRepo) ReplaceDetallesTx(tx *gorm.DB, ofertaID uuid.UUID, detalles []model.DetalleOfertaEspecial) error {
	if err := tx.Delete(&model.DetalleOfertaEspecial{}, "oferta_id = ?", ofertaID).Error; err != nil {
		return err
	}
	for i := range detalles {
		detalles[i].OfertaID = ofertaID
	}
	return tx.Create(&detalles).Error
}

func (r *ofertaRepo) UpdateTx(tx *gorm.DB, o *model.OfertaEspecial) error {
	return tx.Model(&model.OfertaEspecial{}).Where("id = ?", o.ID).
		Updates(map[string]interface{}{"nombre": o.Nombre, "precio_total": o.PrecioTotal}).Error
}

func (r *ofertaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.DetalleOfertaEspecial{}, "oferta_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.OfertaEspecial{}, "id = ?", id).Error
}
