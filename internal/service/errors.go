package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors mapped to 404 by the handlers.
var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrIngresoNoEncontrado  = errors.New("ingreso no encontrado")
	ErrVentaNoEncontrada    = errors.New("venta no encontrada o sin detalle asociado")
	ErrOfertaNoEncontrada   = errors.New("oferta no encontrada")
)

// ValidacionError marks a request rejected before any write reached the
// database. Handlers map it to 400; untyped errors are treated as internal
// and never shown to the client.
type ValidacionError struct {
	Msg string
}

func (e *ValidacionError) Error() string { return e.Msg }

func errValidacion(format string, args ...interface{}) error {
	return &ValidacionError{Msg: fmt.Sprintf(format, args...)}
}

// StockInsuficienteError collects every per-line violation of a sale batch.
// The whole batch is rejected; the caller gets the full enumeration at once.
type StockInsuficienteError struct {
	Errores []string
}

func (e *StockInsuficienteError) Error() string {
	return strings.Join(e.Errores, ", ")
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
