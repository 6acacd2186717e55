package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"github.com/isuruAnjula/E-Commerce-Website/internal/config"
	"github.com/isuruAnjula/E-Commerce-Website/internal/domain"
	"github.com/isuruAnjula/E-Commerce-Website/internal/http/handlers"
	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
)

func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB, string) {
	t.Helper()
	db, err := repos.OpenDB(":memory:", "admin", "Passw0rd!")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	uploadDir := t.TempDir()
	cfg := config.Config{DBTimeout: time.Second, UploadDir: uploadDir}

	app := fiber.New()
	app.Use(requestid.New())
	handlers.NewDeps(db, cfg).Register(app)
	return app, db, uploadDir
}

func decodeJSON(t *testing.T, body io.Reader, out any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// The full round trip: upload a product, buy it twice, walk the quantity
// down to the floor, then drop it from the cart.
func TestProductAndCartFlow(t *testing.T) {
	app, _, uploadDir := newTestApp(t)

	// add a product with an image
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("prodName", "Widget")
	_ = w.WriteField("prodPrice", "9.99")
	_ = w.WriteField("prodDescription", "test")
	fw, err := w.CreateFormFile("prodImage", "widget.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write([]byte("png-bytes"))
	_ = w.Close()

	req := httptest.NewRequest("POST", "/addproduct", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("addproduct: want 200, got %d", resp.StatusCode)
	}

	// it shows up in the listing with a stored image name
	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	var products []domain.Product
	decodeJSON(t, resp.Body, &products)
	if len(products) != 1 {
		t.Fatalf("want 1 product, got %d", len(products))
	}
	p := products[0]
	if p.Name != "Widget" || p.Price != 9.99 {
		t.Fatalf("bad product: %+v", p)
	}
	if !strings.HasPrefix(p.Image, "prodImage_") || !strings.HasSuffix(p.Image, ".png") {
		t.Fatalf("unexpected stored image name: %s", p.Image)
	}
	if _, err := os.Stat(filepath.Join(uploadDir, p.Image)); err != nil {
		t.Fatalf("uploaded image not stored: %v", err)
	}

	id := strconv.FormatInt(p.ID, 10)

	// two adds accumulate to quantity 2
	for i := 0; i < 2; i++ {
		resp, err = app.Test(httptest.NewRequest("POST", "/addtocart/"+id, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("addtocart: want 200, got %d", resp.StatusCode)
		}
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	var lines []domain.CartLine
	decodeJSON(t, resp.Body, &lines)
	if len(lines) != 1 || lines[0].Qty != 2 {
		t.Fatalf("want one line with qty 2, got %+v", lines)
	}

	// minus down to 1, then the floor rejects
	resp, err = app.Test(httptest.NewRequest("POST", "/updatecartqty/minus/"+id, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("minus: want 200, got %d", resp.StatusCode)
	}
	resp, err = app.Test(httptest.NewRequest("POST", "/updatecartqty/minus/"+id, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("minus at floor: want 400, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Quantity cannot be less than 1.") {
		t.Fatalf("floor message missing; body=%s", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	lines = nil
	decodeJSON(t, resp.Body, &lines)
	if len(lines) != 1 || lines[0].Qty != 1 {
		t.Fatalf("quantity must stay at 1, got %+v", lines)
	}

	// drop it
	resp, err = app.Test(httptest.NewRequest("DELETE", "/deletecart/"+id, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("deletecart: want 200, got %d", resp.StatusCode)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	lines = nil
	decodeJSON(t, resp.Body, &lines)
	if len(lines) != 0 {
		t.Fatalf("cart should be empty, got %+v", lines)
	}
}

func TestCartQtyOnMissingEntryIs404(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, path := range []string{"/updatecartqty/plus/999", "/updatecartqty/minus/999"} {
		resp, err := app.Test(httptest.NewRequest("POST", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 404 {
			t.Fatalf("%s: want 404, got %d", path, resp.StatusCode)
		}
	}
}

func TestUpdateProductAcceptsStringNumbers(t *testing.T) {
	app, db, _ := newTestApp(t)
	db.MustExec(`INSERT INTO products(prod_name, prod_price, prod_image, prod_description)
	  VALUES('Widget', 9.99, 'widget_123.png', 'test')`)

	payload := `{"updateId":"1","updateName":"Widget Pro","updatePrice":"19.95","updateDescription":"updated"}`
	req := httptest.NewRequest("POST", "/updateproduct", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("updateproduct: want 200, got %d", resp.StatusCode)
	}

	var p domain.Product
	if err := db.Get(&p, `SELECT id, prod_name, prod_price, prod_image, prod_description FROM products WHERE id = 1`); err != nil {
		t.Fatal(err)
	}
	if p.Name != "Widget Pro" || p.Price != 19.95 || p.Description != "updated" {
		t.Fatalf("update not applied: %+v", p)
	}
	if p.Image != "widget_123.png" {
		t.Fatalf("image must survive updates, got %q", p.Image)
	}

	// update-if-present: unknown id is still 200
	payload = `{"updateId":999,"updateName":"Ghost","updatePrice":1,"updateDescription":"none"}`
	req = httptest.NewRequest("POST", "/updateproduct", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("update of missing id: want 200, got %d", resp.StatusCode)
	}

	// malformed body
	req = httptest.NewRequest("POST", "/updateproduct", strings.NewReader(`{"updateId":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("malformed body: want 400, got %d", resp.StatusCode)
	}
}

func TestCrudDeleteIsIdempotent(t *testing.T) {
	app, db, _ := newTestApp(t)
	db.MustExec(`INSERT INTO products(prod_name, prod_price, prod_image, prod_description)
	  VALUES('Widget', 9.99, 'widget_123.png', 'test')`)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("DELETE", "/crud-delete/1", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("crud-delete (round %d): want 200, got %d", i+1, resp.StatusCode)
		}
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("product still present after delete")
	}
}

func TestStoreFailureSurfacesAs500(t *testing.T) {
	app, db, _ := newTestApp(t)
	_ = db.Close()

	for _, tc := range []struct{ method, path string }{
		{"GET", "/"},
		{"GET", "/cart"},
		{"POST", "/addtocart/1"},
	} {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 500 {
			t.Fatalf("%s %s: want 500, got %d", tc.method, tc.path, resp.StatusCode)
		}
	}
}
