package loteriabet

import validator "gopkg.in/go-playground/validator.v9"

var detalleValidator = validator.New()

// ValidateShape checks the struct-tag invariants on d (kind range,
// numbers present and canonical-shaped, non-negative counters).
// ValidateDetalle runs it first and then still runs its config-aware
// semantic checks, accumulating the errors of both.
func (d DetalleApuesta) ValidateShape() error {
	return detalleValidator.Struct(d)
}
