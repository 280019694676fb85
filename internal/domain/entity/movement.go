package entity

import "time"

// Direcciones de un movimiento. Quantity viaja siempre como magnitud positiva;
// el signo lo aporta Type.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Motivo y responsable con los que se asienta el alta inicial de un ítem:
// todo stock que existe es trazable hasta un movimiento, también el de partida.
const (
	ReasonInitialEntry = "Alta inicial"
	SystemUser         = "sistema"
)

// Catálogos de motivos sugeridos por dirección. El motivo sigue siendo texto
// libre; los catálogos solo alimentan el selector de la UI.
var (
	ReasonsIN  = []string{"Compra", "Producción", "Devolución", "Ajuste Inventario"}
	ReasonsOUT = []string{"Venta", "Consumo Interno", "Merma", "Trasiego", "Ajuste Inventario"}
)

// Movement es un asiento del libro de movimientos. Es inmutable una vez
// creado: ItemName se captura al escribir y no se vuelve a derivar, de modo
// que la historia sobrevive a renombres y borrados del ítem.
type Movement struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	ItemID   string    `json:"itemId"`
	ItemName string    `json:"itemName"`
	Type     string    `json:"type"`
	Quantity float64   `json:"quantity"` // magnitud, nunca negativa
	Reason   string    `json:"reason"`
	User     string    `json:"user"` // responsable
	Notes    string    `json:"notes,omitempty"`
}
