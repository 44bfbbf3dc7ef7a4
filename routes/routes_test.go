package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biharidelicacies/marketplace-api/auth"
	"github.com/biharidelicacies/marketplace-api/config"
	orderControllers "github.com/biharidelicacies/marketplace-api/controllers/order"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/session"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/biharidelicacies/marketplace-api/upload"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

const testAdminKey = "admin-key"

func setupServer(t *testing.T) (*gin.Engine, Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	log := zap.NewNop().Sugar()

	fs, err := store.NewFileStore(filepath.Join(dir, "data"), false, log)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	codec, err := session.NewCodec("test-secret")
	if err != nil {
		t.Fatal(err)
	}

	d := Deps{
		Config:  config.Config{AdminAPIKey: testAdminKey, UploadDir: filepath.Join(dir, "uploads")},
		Log:     log,
		Store:   fs,
		Gateway: auth.NewGateway(fs, session.NewRegistry(), log),
		Codec:   codec,
		Sink:    upload.NewSink(filepath.Join(dir, "uploads")),
		Hub:     orderControllers.NewHub(log),
	}
	r := gin.New()
	SetupRoutes(r, d)
	return r, d
}

type request struct {
	method  string
	path    string
	body    any
	cookies []*http.Cookie
	headers map[string]string
}

func do(r *gin.Engine, req request) *httptest.ResponseRecorder {
	var body *bytes.Reader
	contentType := "application/json"
	switch b := req.body.(type) {
	case nil:
		body = bytes.NewReader(nil)
	case *multipartBody:
		body = bytes.NewReader(b.buf.Bytes())
		contentType = b.contentType
	case string:
		body = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		body = bytes.NewReader(raw)
	}

	httpReq := httptest.NewRequest(req.method, req.path, body)
	httpReq.Header.Set("Content-Type", contentType)
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}
	for _, ck := range req.cookies {
		httpReq.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

type multipartBody struct {
	buf         bytes.Buffer
	contentType string
}

// form builds a multipart body; files maps field name to file names.
func form(t *testing.T, fields map[string]string, files map[string][]string) *multipartBody {
	t.Helper()
	mb := &multipartBody{}
	w := multipart.NewWriter(&mb.buf)
	for k, v := range fields {
		w.WriteField(k, v)
	}
	for field, names := range files {
		for _, name := range names {
			part, err := w.CreateFormFile(field, name)
			if err != nil {
				t.Fatal(err)
			}
			part.Write([]byte("image-bytes"))
		}
	}
	w.Close()
	mb.contentType = w.FormDataContentType()
	return mb
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON %q: %v", w.Body.String(), err)
	}
	return out
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decode(t, w)["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected an object under data, got %s", w.Body.String())
	}
	return data
}

func sidCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "" {
			return ck
		}
	}
	t.Fatalf("No sid cookie in response %v", w.Header())
	return nil
}

// registerUser returns the session cookie of a fresh user.
func registerUser(t *testing.T, r *gin.Engine, email string) *http.Cookie {
	t.Helper()
	w := do(r, request{method: http.MethodPost, path: "/auth/register", body: map[string]any{
		"email": email, "password": "secret1", "firstName": "Ravi", "lastName": "Sinha",
	}})
	if w.Code != http.StatusCreated {
		t.Fatalf("Register failed: %d %s", w.Code, w.Body.String())
	}
	return sidCookie(t, w)
}

func TestHealth(t *testing.T) {
	r, _ := setupServer(t)
	w := do(r, request{method: http.MethodGet, path: "/health"})
	if w.Code != http.StatusOK || w.Body.String() != `{"data":{"ok":true}}` {
		t.Errorf("Unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestCreateOnProductsTable(t *testing.T) {
	r, _ := setupServer(t)

	w := do(r, request{method: http.MethodPost, path: "/table/create/39102", body: `{"name":"Test Sweet","price":99}`})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d %s", w.Code, w.Body.String())
	}
	if want := `{"data":{"id":1,"name":"Test Sweet","price":99}}`; w.Body.String() != want {
		t.Errorf("Expected %s, got %s", want, w.Body.String())
	}

	w = do(r, request{method: http.MethodGet, path: "/table/get/39102/1"})
	if w.Code != http.StatusOK || dataOf(t, w)["name"] != "Test Sweet" {
		t.Errorf("Round trip failed: %d %s", w.Code, w.Body.String())
	}
	w = do(r, request{method: http.MethodGet, path: "/table/get/39102/2"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for a missing record, got %d", w.Code)
	}
}

func TestPageWithLessThanOrEqualFilter(t *testing.T) {
	r, d := setupServer(t)
	if _, err := d.Store.Insert(context.Background(), models.CollectionProducts, models.Record{"name": "Gaya Tilkut", "price": float64(350)}); err != nil {
		t.Fatal(err)
	}

	w := do(r, request{method: http.MethodPost, path: "/table/page/39102", body: map[string]any{
		"Filters":  []map[string]any{{"name": "price", "op": "LessThanOrEqual", "value": 100}},
		"PageSize": 10,
		"PageNo":   1,
	}})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d %s", w.Code, w.Body.String())
	}
	if want := `{"data":{"List":[],"VirtualCount":0}}`; w.Body.String() != want {
		t.Errorf("Expected %s, got %s", want, w.Body.String())
	}
}

func TestPageWithoutBodyUsesDefaults(t *testing.T) {
	r, d := setupServer(t)
	for i := 0; i < 25; i++ {
		d.Store.Insert(context.Background(), models.CollectionRecipes, models.Record{"title": "r"})
	}

	w := do(r, request{method: http.MethodPost, path: "/table/page/39103"})

	data := dataOf(t, w)
	if data["VirtualCount"] != float64(25) {
		t.Errorf("Expected VirtualCount 25, got %v", data["VirtualCount"])
	}
	if list := data["List"].([]any); len(list) != 20 {
		t.Errorf("Expected default page size 20, got %d", len(list))
	}
}

func TestUnknownTable(t *testing.T) {
	r, _ := setupServer(t)
	for _, path := range []string{"/table/page/12345", "/table/create/abc", "/table/page/39100"} {
		w := do(r, request{method: http.MethodPost, path: path, body: `{}`})
		if w.Code != http.StatusNotFound || w.Body.String() != `{"error":"Unknown table"}` {
			t.Errorf("%s: expected 404 Unknown table, got %d %s", path, w.Code, w.Body.String())
		}
	}
}

func TestLoginScenario(t *testing.T) {
	r, _ := setupServer(t)
	registerUser(t, r, "a@x.com")

	w := do(r, request{method: http.MethodPost, path: "/auth/login", body: map[string]any{"email": "a@x.com", "password": "wrong"}})
	if w.Code != http.StatusUnauthorized || w.Body.String() != `{"error":"Invalid credentials"}` {
		t.Errorf("Expected 401 Invalid credentials, got %d %s", w.Code, w.Body.String())
	}

	w = do(r, request{method: http.MethodPost, path: "/auth/login", body: map[string]any{"email": "a@x.com", "password": "secret1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d %s", w.Code, w.Body.String())
	}
	ck := sidCookie(t, w)
	if !ck.HttpOnly || ck.SameSite != http.SameSiteLaxMode {
		t.Errorf("Unexpected cookie flags %+v", ck)
	}
	user := dataOf(t, w)
	if user["Email"] != "a@x.com" || user["Name"] != "Ravi Sinha" {
		t.Errorf("Unexpected user payload %v", user)
	}
	if roles, _ := user["Roles"].([]any); len(roles) != 1 || roles[0] != "user" {
		t.Errorf("Unexpected roles %v", user["Roles"])
	}
	if _, ok := user["password"]; ok {
		t.Error("Password leaked in the payload")
	}
}

func TestRegisterErrors(t *testing.T) {
	r, _ := setupServer(t)
	registerUser(t, r, "a@x.com")

	w := do(r, request{method: http.MethodPost, path: "/auth/register", body: map[string]any{
		"email": "A@x.com", "password": "p", "firstName": "x", "lastName": "y",
	}})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d %s", w.Code, w.Body.String())
	}

	w = do(r, request{method: http.MethodPost, path: "/auth/register", body: map[string]any{"email": "b@x.com"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	w = do(r, request{method: http.MethodPost, path: "/auth/login", body: `not json`})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a malformed body, got %d", w.Code)
	}
}

func TestMeAndLogout(t *testing.T) {
	r, _ := setupServer(t)
	ck := registerUser(t, r, "me@x.com")

	w := do(r, request{method: http.MethodGet, path: "/auth/me", cookies: []*http.Cookie{ck}})
	if w.Code != http.StatusOK || dataOf(t, w)["Email"] != "me@x.com" {
		t.Fatalf("Expected the current user, got %d %s", w.Code, w.Body.String())
	}

	if w := do(r, request{method: http.MethodGet, path: "/auth/me"}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without cookie, got %d", w.Code)
	}
	forged := &http.Cookie{Name: session.CookieName, Value: "forged"}
	if w := do(r, request{method: http.MethodGet, path: "/auth/me", cookies: []*http.Cookie{forged}}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with a forged cookie, got %d", w.Code)
	}

	w = do(r, request{method: http.MethodPost, path: "/auth/logout", cookies: []*http.Cookie{ck}})
	if w.Code != http.StatusOK || w.Body.String() != `{"data":true}` {
		t.Errorf("Unexpected logout response %d %s", w.Code, w.Body.String())
	}
	if w := do(r, request{method: http.MethodGet, path: "/auth/me", cookies: []*http.Cookie{ck}}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 after logout, got %d", w.Code)
	}
	if w := do(r, request{method: http.MethodPost, path: "/auth/logout"}); w.Code != http.StatusOK {
		t.Errorf("Logout without a session must succeed, got %d", w.Code)
	}
}

func TestSellerAndProductFlow(t *testing.T) {
	r, d := setupServer(t)
	ck := registerUser(t, r, "seller@x.com")
	cookies := []*http.Cookie{ck}

	w := do(r, request{method: http.MethodPost, path: "/sellers", body: form(t, map[string]string{"businessName": "Nope"}, nil)})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a session, got %d", w.Code)
	}

	w = do(r, request{method: http.MethodGet, path: "/sellers/me", cookies: cookies})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 before the profile exists, got %d", w.Code)
	}
	w = do(r, request{method: http.MethodPost, path: "/products", cookies: cookies, body: form(t, map[string]string{"name": "Thekua"}, nil)})
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Seller not found") {
		t.Errorf("Expected 404 Seller not found, got %d %s", w.Code, w.Body.String())
	}

	w = do(r, request{method: http.MethodPost, path: "/sellers", cookies: cookies, body: form(t,
		map[string]string{"businessName": "Silao Khaja Ghar", "location": "Nalanda"},
		map[string][]string{"profile_image": {"logo.png"}},
	)})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d %s", w.Code, w.Body.String())
	}
	seller := dataOf(t, w)
	if url, _ := seller["profile_image"].(string); !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, "-logo.png") {
		t.Errorf("Unexpected profile_image %v", seller["profile_image"])
	}
	if seller["businessName"] != "Silao Khaja Ghar" || seller["userId"] == nil {
		t.Errorf("Unexpected seller %v", seller)
	}

	w = do(r, request{method: http.MethodPost, path: "/sellers", cookies: cookies, body: form(t, map[string]string{"businessName": "Again"}, nil)})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for a second profile, got %d", w.Code)
	}

	w = do(r, request{method: http.MethodPost, path: "/products", cookies: cookies, body: form(t,
		map[string]string{"name": "Khaja", "price": "420", "stock": "30"},
		map[string][]string{"main_image": {"khaja.jpg"}, "additional_images": {"1.jpg", "2.jpg"}},
	)})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d %s", w.Code, w.Body.String())
	}
	product := dataOf(t, w)
	if product["price"] != float64(420) || product["stock"] != float64(30) {
		t.Errorf("Numeric fields not coerced: %v", product)
	}
	if product["sellerId"] != seller["id"] {
		t.Errorf("Expected sellerId %v, got %v", seller["id"], product["sellerId"])
	}
	if imgs, _ := product["additional_images"].([]any); len(imgs) != 2 {
		t.Errorf("Expected 2 additional images, got %v", product["additional_images"])
	}

	// legacy records use seller_id
	d.Store.Insert(context.Background(), models.CollectionProducts, models.Record{"name": "Old Anarsa", "seller_id": seller["id"]})
	d.Store.Insert(context.Background(), models.CollectionProducts, models.Record{"name": "Someone else's", "sellerId": float64(999)})

	w = do(r, request{method: http.MethodGet, path: "/products/me", cookies: cookies})
	var mine struct {
		Data []map[string]any `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &mine)
	if len(mine.Data) != 2 {
		t.Errorf("Expected 2 products, got %d: %s", len(mine.Data), w.Body.String())
	}

	w = do(r, request{method: http.MethodGet, path: "/sellers/me", cookies: cookies})
	if w.Code != http.StatusOK || dataOf(t, w)["id"] != seller["id"] {
		t.Errorf("Unexpected /sellers/me response %d %s", w.Code, w.Body.String())
	}
}

func TestUpload(t *testing.T) {
	r, _ := setupServer(t)

	w := do(r, request{method: http.MethodPost, path: "/upload", body: form(t, nil, map[string][]string{"image": {"my photo.jpg"}})})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d %s", w.Code, w.Body.String())
	}
	url, _ := dataOf(t, w)["url"].(string)
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, "-my_photo.jpg") {
		t.Errorf("Unexpected url %q", url)
	}

	w = do(r, request{method: http.MethodPost, path: "/upload", body: form(t, map[string]string{"x": "y"}, nil)})
	if w.Code != http.StatusBadRequest || w.Body.String() != `{"error":"No file uploaded"}` {
		t.Errorf("Expected 400 No file uploaded, got %d %s", w.Code, w.Body.String())
	}

	name := url[strings.LastIndex(url, "/")+1:]
	if w := do(r, request{method: http.MethodDelete, path: "/admin/uploads/" + name}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without API key, got %d", w.Code)
	}
	admin := map[string]string{"X-API-KEY": testAdminKey}
	if w := do(r, request{method: http.MethodDelete, path: "/admin/uploads/" + name, headers: admin}); w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d %s", w.Code, w.Body.String())
	}
	if w := do(r, request{method: http.MethodDelete, path: "/admin/uploads/" + name, headers: admin}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for a deleted file, got %d", w.Code)
	}
}

func TestOrderAndPaymentFlow(t *testing.T) {
	r, d := setupServer(t)
	ck := registerUser(t, r, "buyer@x.com")
	ctx := context.Background()

	w := do(r, request{method: http.MethodPost, path: "/orders", cookies: []*http.Cookie{ck}, body: map[string]any{
		"items": []map[string]any{{"productId": 1, "quantity": 2}},
		"total": 700,
	}})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d %s", w.Code, w.Body.String())
	}
	created := dataOf(t, w)
	if created["id"] != float64(1) || created["orderRef"] == "" {
		t.Errorf("Unexpected order response %v", created)
	}

	order, _ := d.Store.FindOne(ctx, models.CollectionOrders, store.ByID("1"))
	if order["status"] != "pending" || order["paymentStatus"] != "pending" || order["createdAt"] == nil {
		t.Errorf("Order not stamped: %v", order)
	}

	w = do(r, request{method: http.MethodGet, path: "/orders/me", cookies: []*http.Cookie{ck}})
	var mine struct {
		Data []map[string]any `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &mine)
	if len(mine.Data) != 1 {
		t.Errorf("Expected 1 order for the buyer, got %s", w.Body.String())
	}

	w = do(r, request{method: http.MethodPost, path: "/payment/simulate", body: map[string]any{
		"orderId": 1, "amount": 700, "method": "card", "cardNumber": "4000 0000 0000 0002",
	}})
	if w.Code != http.StatusOK || dataOf(t, w)["status"] != "failed" {
		t.Fatalf("Expected a declined payment, got %d %s", w.Code, w.Body.String())
	}
	order, _ = d.Store.FindOne(ctx, models.CollectionOrders, store.ByID("1"))
	if order["paymentStatus"] != "failed" || order["status"] != "pending" {
		t.Errorf("Unexpected order after decline: %v", order)
	}

	w = do(r, request{method: http.MethodPost, path: "/payment/simulate", body: map[string]any{
		"orderId": 1, "amount": 700, "method": "upi",
	}})
	res := dataOf(t, w)
	if res["status"] != "paid" || !strings.HasPrefix(res["transactionRef"].(string), "TXN-") {
		t.Errorf("Unexpected payment result %v", res)
	}
	order, _ = d.Store.FindOne(ctx, models.CollectionOrders, store.ByID("1"))
	if order["paymentStatus"] != "paid" || order["status"] != "confirmed" {
		t.Errorf("Unexpected order after payment: %v", order)
	}

	w = do(r, request{method: http.MethodPost, path: "/payment/simulate", body: map[string]any{"orderId": 42, "amount": 1, "method": "upi"}})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown order, got %d", w.Code)
	}
	w = do(r, request{method: http.MethodPost, path: "/payment/simulate", body: map[string]any{"amount": 0, "method": "upi"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a zero amount, got %d", w.Code)
	}
}

func TestAdminOrderUpdates(t *testing.T) {
	r, _ := setupServer(t)
	do(r, request{method: http.MethodPost, path: "/orders", body: map[string]any{"total": 100}})
	admin := map[string]string{"X-API-KEY": testAdminKey}

	if w := do(r, request{method: http.MethodPut, path: "/orders/1/status", body: map[string]any{"status": "cancelled"}}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without API key, got %d", w.Code)
	}

	w := do(r, request{method: http.MethodPut, path: "/orders/1/status", headers: admin, body: map[string]any{"status": "cancelled"}})
	if w.Code != http.StatusOK || dataOf(t, w)["status"] != "cancelled" {
		t.Errorf("Unexpected status update %d %s", w.Code, w.Body.String())
	}
	w = do(r, request{method: http.MethodPut, path: "/orders/1/status", headers: admin, body: map[string]any{"status": "teleported"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unknown status, got %d", w.Code)
	}
	w = do(r, request{method: http.MethodPut, path: "/orders/1/payment-status", headers: admin, body: map[string]any{"paymentStatus": "paid"}})
	if w.Code != http.StatusOK || dataOf(t, w)["paymentStatus"] != "paid" {
		t.Errorf("Unexpected payment update %d %s", w.Code, w.Body.String())
	}

	if w := do(r, request{method: http.MethodDelete, path: "/orders/1", headers: admin}); w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if w := do(r, request{method: http.MethodDelete, path: "/orders/1", headers: admin}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestAdminUsersAndProfileUpdate(t *testing.T) {
	r, _ := setupServer(t)
	ck := registerUser(t, r, "first@x.com")
	registerUser(t, r, "second@x.com")

	w := do(r, request{method: http.MethodPut, path: "/users/me", cookies: []*http.Cookie{ck}, body: map[string]any{"firstName": "Meera", "phone": "98765"}})
	if w.Code != http.StatusOK || dataOf(t, w)["Name"] != "Meera Sinha" {
		t.Errorf("Unexpected profile update %d %s", w.Code, w.Body.String())
	}

	w = do(r, request{method: http.MethodGet, path: "/admin/users", headers: map[string]string{"X-API-KEY": testAdminKey}})
	var users struct {
		Data []map[string]any `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &users)
	if len(users.Data) != 2 || users.Data[0]["Email"] != "second@x.com" {
		t.Errorf("Expected newest user first, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("Admin listing leaked passwords")
	}
}

func TestExportTable(t *testing.T) {
	r, d := setupServer(t)
	d.Store.Insert(context.Background(), models.CollectionCategories, models.Record{"name": "Sweets", "slug": "sweets"})

	if w := do(r, request{method: http.MethodGet, path: "/table/export/39105"}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without API key, got %d", w.Code)
	}

	w := do(r, request{method: http.MethodGet, path: "/table/export/39105", headers: map[string]string{"X-API-KEY": testAdminKey}})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "categories.xlsx") {
		t.Errorf("Unexpected Content-Disposition %q", w.Header().Get("Content-Disposition"))
	}

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	if err != nil {
		t.Fatalf("Response is not a workbook: %v", err)
	}
	rows := file.Sheets[0].Rows
	if len(rows) != 2 {
		t.Fatalf("Expected header and one row, got %d rows", len(rows))
	}
	if rows[0].Cells[0].Value != "id" || rows[0].Cells[1].Value != "name" || rows[1].Cells[1].Value != "Sweets" {
		t.Errorf("Unexpected sheet content")
	}
}
