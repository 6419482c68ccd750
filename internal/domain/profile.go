package domain

// ShippingAddress and PaymentMethod are flat records kept in the sealed
// profile store, one record per logical key, fully overwritten on save.
// Neither is owned by the cart subsystem; checkout reads them as-is.

type ShippingAddress struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type PaymentMethod struct {
	Cardholder string `json:"cardholder"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"` // MM/YY
}
