package entity

// WineryData es la raíz de agregado: las cuatro colecciones de inventario más
// el libro de movimientos. Se persiste y se intercambia siempre como una sola
// unidad, nunca colección a colección.
type WineryData struct {
	Grapes    []GrapeBatch        `json:"grapes"`
	Bulk      []BulkWine          `json:"bulk"`
	Finished  []FinishedWine      `json:"finished"`
	Materials []PackagingMaterial `json:"materials"`
	Movements []Movement          `json:"movements"`
}

// NewWineryData devuelve un agregado vacío con todas las colecciones
// inicializadas (nunca nil, para que serialicen como listas vacías).
func NewWineryData() *WineryData {
	return &WineryData{
		Grapes:    []GrapeBatch{},
		Bulk:      []BulkWine{},
		Finished:  []FinishedWine{},
		Materials: []PackagingMaterial{},
		Movements: []Movement{},
	}
}

// Normalize reemplaza colecciones nil por vacías y sella el discriminante de
// los ítems que lleguen sin él: la familia la fija la colección en la que el
// ítem viene, nunca la forma de sus campos. Se aplica tras deserializar blobs
// parciales o antiguos.
func (w *WineryData) Normalize() {
	if w.Grapes == nil {
		w.Grapes = []GrapeBatch{}
	}
	if w.Bulk == nil {
		w.Bulk = []BulkWine{}
	}
	if w.Finished == nil {
		w.Finished = []FinishedWine{}
	}
	if w.Materials == nil {
		w.Materials = []PackagingMaterial{}
	}
	if w.Movements == nil {
		w.Movements = []Movement{}
	}
	for i := range w.Grapes {
		if w.Grapes[i].Type == "" {
			w.Grapes[i].Type = KindGrape
		}
	}
	for i := range w.Bulk {
		if w.Bulk[i].Type == "" {
			w.Bulk[i].Type = KindBulk
		}
	}
	for i := range w.Finished {
		if w.Finished[i].Type == "" {
			w.Finished[i].Type = KindFinished
		}
	}
	for i := range w.Materials {
		if w.Materials[i].Type == "" {
			w.Materials[i].Type = KindMaterial
		}
	}
}

// FindItem busca id en las cuatro colecciones y devuelve una referencia
// mutable al ítem. Los ids son únicos dentro de cada colección; ante una
// colisión entre colecciones gana el orden uva → granel → botellas → insumos.
func (w *WineryData) FindItem(id string) (Item, bool) {
	for _, k := range []Kind{KindGrape, KindBulk, KindFinished, KindMaterial} {
		if it, ok := w.FindItemIn(k, id); ok {
			return it, true
		}
	}
	return nil, false
}

// FindItemIn busca id solo dentro de la colección de la familia k.
func (w *WineryData) FindItemIn(k Kind, id string) (Item, bool) {
	switch k {
	case KindGrape:
		for i := range w.Grapes {
			if w.Grapes[i].ID == id {
				return &w.Grapes[i], true
			}
		}
	case KindBulk:
		for i := range w.Bulk {
			if w.Bulk[i].ID == id {
				return &w.Bulk[i], true
			}
		}
	case KindFinished:
		for i := range w.Finished {
			if w.Finished[i].ID == id {
				return &w.Finished[i], true
			}
		}
	case KindMaterial:
		for i := range w.Materials {
			if w.Materials[i].ID == id {
				return &w.Materials[i], true
			}
		}
	}
	return nil, false
}

// RemoveItem elimina id de la colección de la familia k. El libro de
// movimientos no se toca: los asientos históricos siguen referenciando el id.
func (w *WineryData) RemoveItem(k Kind, id string) bool {
	switch k {
	case KindGrape:
		for i := range w.Grapes {
			if w.Grapes[i].ID == id {
				w.Grapes = append(w.Grapes[:i], w.Grapes[i+1:]...)
				return true
			}
		}
	case KindBulk:
		for i := range w.Bulk {
			if w.Bulk[i].ID == id {
				w.Bulk = append(w.Bulk[:i], w.Bulk[i+1:]...)
				return true
			}
		}
	case KindFinished:
		for i := range w.Finished {
			if w.Finished[i].ID == id {
				w.Finished = append(w.Finished[:i], w.Finished[i+1:]...)
				return true
			}
		}
	case KindMaterial:
		for i := range w.Materials {
			if w.Materials[i].ID == id {
				w.Materials = append(w.Materials[:i], w.Materials[i+1:]...)
				return true
			}
		}
	}
	return false
}

// PrependMovement antepone m al libro: el orden más-reciente-primero es un
// invariante persistido, no un orden aplicado al leer.
func (w *WineryData) PrependMovement(m Movement) {
	w.Movements = append([]Movement{m}, w.Movements...)
}

// Clone devuelve una copia del agregado. Los elementos son tipos valor sin
// punteros, así que copiar los slices basta para aislar al lector.
func (w *WineryData) Clone() *WineryData {
	c := &WineryData{
		Grapes:    make([]GrapeBatch, len(w.Grapes)),
		Bulk:      make([]BulkWine, len(w.Bulk)),
		Finished:  make([]FinishedWine, len(w.Finished)),
		Materials: make([]PackagingMaterial, len(w.Materials)),
		Movements: make([]Movement, len(w.Movements)),
	}
	copy(c.Grapes, w.Grapes)
	copy(c.Bulk, w.Bulk)
	copy(c.Finished, w.Finished)
	copy(c.Materials, w.Materials)
	copy(c.Movements, w.Movements)
	return c
}
