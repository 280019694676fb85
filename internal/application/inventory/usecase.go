// Package inventory contiene el caso de uso central de la bodega: el flujo de
// movimientos que mantiene consistentes las existencias y el libro.
package inventory

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

// UseCase custodia el estado vivo de la bodega (la raíz de agregado) y aplica
// el flujo de movimientos: validar, mutar stock y asentar en el libro, en ese
// orden. Hay un único escritor lógico; el mutex protege el agregado frente a
// peticiones HTTP concurrentes.
type UseCase struct {
	mu    sync.Mutex
	data  *entity.WineryData
	store SnapshotStore
	log   *logger.Logger
}

// NewUseCase carga el snapshot persistido y construye el caso de uso.
func NewUseCase(store SnapshotStore, log *logger.Logger) (*UseCase, error) {
	data, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &UseCase{data: data, store: store, log: log}, nil
}

// MovementInput entrada para registrar un movimiento manual de stock.
type MovementInput struct {
	ItemID   string
	Type     string  // entity.MovementTypeIN | entity.MovementTypeOUT
	Quantity float64 // magnitud, siempre positiva
	Reason   string
	User     string
	Notes    string
}

// RegisterMovement aplica el flujo completo de un movimiento asentado:
//
//  1. valida dirección y cantidad (positiva y finita);
//  2. resuelve el ítem en las cuatro colecciones;
//  3. rechaza salidas mayores que el stock disponible — sin recorte parcial;
//  4. muta el stock y 5. asienta el movimiento.
//
// Las validaciones van estrictamente antes de la mutación: superados los
// chequeos, mutar y asentar no pueden fallar, con lo que el par queda atómico
// sin necesidad de rollback. Si el snapshot posterior falla se devuelve
// ErrStorageUnavailable junto con el movimiento ya aplicado: la sesión sigue
// siendo válida en memoria y la capa HTTP avisa al usuario.
func (uc *UseCase) RegisterMovement(in MovementInput) (*entity.Movement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if !validQuantity(in.Quantity) {
		return nil, domain.ErrInvalidQuantity
	}
	item, ok := uc.data.FindItem(in.ItemID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if in.Type == entity.MovementTypeOUT && in.Quantity > item.Stock() {
		return nil, domain.ErrInsufficientStock
	}

	delta := in.Quantity
	if in.Type == entity.MovementTypeOUT {
		delta = -delta
	}
	entity.ApplyDelta(item, delta)

	mov := uc.record(item, in.Type, in.Quantity, in.Reason, in.User, in.Notes)
	return &mov, uc.persist()
}

// AdjustStock es el ajuste directo, no asentado como operación comercial:
// aplica delta con piso en cero sobre la colección de la familia k. A
// diferencia del flujo de movimientos, una resta mayor que el stock no se
// rechaza: se trunca a cero. Las dos políticas conviven a propósito — el
// ajuste directo es permisivo, el movimiento asentado es estricto.
func (uc *UseCase) AdjustStock(k entity.Kind, id string, delta float64, user string) (*entity.Movement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !k.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if delta == 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, domain.ErrInvalidQuantity
	}
	item, ok := uc.data.FindItemIn(k, id)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	entity.ApplyDelta(item, delta)

	movType := entity.MovementTypeIN
	if delta < 0 {
		movType = entity.MovementTypeOUT
	}
	if user == "" {
		user = entity.SystemUser
	}
	mov := uc.record(item, movType, math.Abs(delta), "Ajuste Inventario", user, "Ajuste manual de stock")
	return &mov, uc.persist()
}

// RemoveItem elimina el ítem de su colección. El libro no se reescribe: los
// asientos históricos del ítem permanecen referenciando su id.
func (uc *UseCase) RemoveItem(k entity.Kind, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !k.Valid() {
		return domain.ErrInvalidInput
	}
	if !uc.data.RemoveItem(k, id) {
		return domain.ErrItemNotFound
	}
	return uc.persist()
}

// record construye el asiento y lo antepone al libro. El nombre mostrado se
// captura en este instante y no se vuelve a derivar: es historia inmutable
// aunque el ítem se renombre o elimine después.
func (uc *UseCase) record(it entity.Item, movType string, qty float64, reason, user, notes string) entity.Movement {
	mov := entity.Movement{
		ID:       "mov-" + uuid.New().String(),
		Date:     time.Now().UTC(),
		ItemID:   it.ItemID(),
		ItemName: it.DisplayName(),
		Type:     movType,
		Quantity: qty,
		Reason:   reason,
		User:     user,
		Notes:    notes,
	}
	uc.data.PrependMovement(mov)
	return mov
}

// persist vuelca el agregado tras cada mutación. Un fallo de almacenamiento
// no tumba la sesión: se registra y se traduce a ErrStorageUnavailable para
// que la capa superior avise sin descartar el cambio en memoria.
func (uc *UseCase) persist() error {
	if err := uc.store.Save(uc.data); err != nil {
		uc.log.Warn().Err(err).Msg("guardar snapshot de bodega")
		return domain.ErrStorageUnavailable
	}
	return nil
}

func validQuantity(q float64) bool {
	return q > 0 && !math.IsInf(q, 0) && !math.IsNaN(q)
}
