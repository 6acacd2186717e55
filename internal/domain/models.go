package domain

// Product is a catalog row. JSON names match the payload the frontend
// already consumes; db names match the products table columns.
type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"prod_name" json:"prodName"`
	Price       float64 `db:"prod_price" json:"prodPrice"`
	Image       string  `db:"prod_image" json:"prodImage"`
	Description string  `db:"prod_description" json:"prodDescription"`
}

// CartLine is one row of the cart/products join. ProdID comes from the
// cart table, ID from products; both are carried because the payload
// always shipped both.
type CartLine struct {
	ProdID int64   `db:"prod_id" json:"prodID"`
	ID     int64   `db:"id" json:"id"`
	Name   string  `db:"prod_name" json:"prodName"`
	Price  float64 `db:"prod_price" json:"prodPrice"`
	Image  string  `db:"prod_image" json:"prodImage"`
	Qty    int     `db:"prod_qty" json:"prodQty"`
}

// Credential is a user_login or admin_login row. Only the hash is stored.
type Credential struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
}
