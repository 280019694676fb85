package entity

// Kind discrimina las cuatro familias de inventario de la bodega. El campo
// `type` es obligatorio en todos los ítems persistidos: la familia nunca se
// infiere por la presencia de campos.
type Kind string

const (
	KindGrape    Kind = "grape"    // uva recibida (Kg)
	KindBulk     Kind = "bulk"     // vino a granel en tanque o barrica (Lts)
	KindFinished Kind = "finished" // vino embotellado (botellas)
	KindMaterial Kind = "material" // insumos de embotellado (unidades)
)

// Valid informa si k es una de las cuatro familias conocidas.
func (k Kind) Valid() bool {
	switch k {
	case KindGrape, KindBulk, KindFinished, KindMaterial:
		return true
	}
	return false
}

// Unit devuelve la unidad de medida en la que se expresa el stock de la familia.
func (k Kind) Unit() string {
	switch k {
	case KindGrape:
		return "Kg"
	case KindBulk:
		return "Lts"
	}
	return "Uni"
}

// Item es la interfaz común de los cuatro tipos de ítem. Qué campo lleva el
// stock (peso, volumen o cantidad) lo resuelve cada tipo concreto.
type Item interface {
	ItemID() string
	Kind() Kind
	Stock() float64
	SetStock(q float64)
	DisplayName() string
}

// ApplyDelta suma delta al stock del ítem con piso en cero: el stock nunca
// queda negativo, una resta mayor que el disponible lo deja en cero.
func ApplyDelta(it Item, delta float64) {
	q := it.Stock() + delta
	if q < 0 {
		q = 0
	}
	it.SetStock(q)
}
