package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/isuruAnjula/E-Commerce-Website/internal/config"
	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
	"github.com/isuruAnjula/E-Commerce-Website/internal/services"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	CartHandler    *CartHandler
	AuthHandler    *AuthHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	credRepo := repos.NewCredentialRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, cfg.DBTimeout)
	cartSvc := services.NewCartService(cartRepo, cfg.DBTimeout)
	authSvc := services.NewAuthService(credRepo, cfg.DBTimeout)
	adminSvc := services.NewProductAdminService(prodRepo, cfg.DBTimeout)

	return &Deps{
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		CartHandler:    &CartHandler{Cart: cartSvc},
		AuthHandler:    &AuthHandler{Auth: authSvc},
		AdminHandler:   &AdminHandler{Products: adminSvc, UploadDir: cfg.UploadDir},
	}
}

// Register wires the API route table. Paths are the ones the frontend
// already calls, combined credential segments included.
func (d *Deps) Register(app *fiber.App) {
	app.Get("/", d.CatalogHandler.List)

	app.Get("/cart", d.CartHandler.View)
	app.Post("/addtocart/:prodId", d.CartHandler.Add)
	app.Delete("/deletecart/:id", d.CartHandler.Remove)
	app.Post("/updatecartqty/plus/:id", d.CartHandler.Plus)
	app.Post("/updatecartqty/minus/:id", d.CartHandler.Minus)

	app.Post("/login/:credentials", d.AuthHandler.Login)
	app.Post("/adminlogin/:credentials", d.AuthHandler.AdminLogin)
	app.Post("/signup/:credentials", d.AuthHandler.Signup)

	app.Post("/addproduct", d.AdminHandler.AddProduct)
	app.Post("/updateproduct", d.AdminHandler.UpdateProduct)
	app.Delete("/crud-delete/:id", d.AdminHandler.DeleteProduct)
}
