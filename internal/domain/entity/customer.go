package entity

// Customer representa un cliente con cuenta corriente en el cuaderno.
// El ID es inmutable; Name, Phone y Address se editan en sitio.
type Customer struct {
	ID      string
	Name    string
	Phone   string // opcional
	Address string // opcional
}
