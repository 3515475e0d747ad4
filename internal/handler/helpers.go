package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/CruzGuillermo/stock-app/internal/apierror"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails; the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps service-layer errors onto HTTP statuses: sentinel
// not-found errors become 404, enumerated stock violations and typed
// validation failures 400. Anything untyped (driver errors, rolled-back
// transactions) is logged through the error middleware and answered with a
// generic 500 so SQL details never reach the client.
func writeServiceError(c *gin.Context, err error) {
	var stockErr *service.StockInsuficienteError
	var valErr *service.ValidacionError
	switch {
	case errors.Is(err, service.ErrProductoNoEncontrado),
		errors.Is(err, service.ErrIngresoNoEncontrado),
		errors.Is(err, service.ErrVentaNoEncontrada),
		errors.Is(err, service.ErrOfertaNoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, apierror.NewStock(stockErr.Errores))
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, apierror.New(valErr.Msg))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
