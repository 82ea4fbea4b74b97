package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/database"
	"restaurant-pos/internal/logger"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type testAPI struct {
	t      *testing.T
	engine *gin.Engine
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "api_test.db"),
		},
		App: config.AppSubConfig{PageSize: 50},
	}
	db, err := database.Init(cfg.Database)
	if err != nil {
		t.Fatalf("Init test database failed: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logger.NewWithWriter("pos-test", "error", io.Discard)
	return &testAPI{t: t, engine: SetupRouter(cfg, db, log)}
}

// do sends body (marshalled unless it is a string) and decodes the envelope.
func (a *testAPI) do(method, path string, body interface{}) (int, envelope) {
	a.t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			a.t.Fatalf("%s %s: decode body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, env
}

// create posts body and returns the decoded representation, failing on non-201.
func (a *testAPI) create(path string, body interface{}) map[string]interface{} {
	a.t.Helper()
	code, env := a.do(http.MethodPost, path, body)
	if code != http.StatusCreated {
		a.t.Fatalf("POST %s = %d (%s %v), want 201", path, code, env.Message, env.Errors)
	}
	return decodeData(a.t, env)
}

func decodeData(t *testing.T, env envelope) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
	return m
}

func id(m map[string]interface{}) int {
	return int(m["id"].(float64))
}

func table(username string, no int) map[string]interface{} {
	return map[string]interface{}{
		"username": username,
		"name":     "Guest " + username,
		"table_no": no,
		"contact":  "1234567890",
	}
}

func (a *testAPI) menuItem(price string) map[string]interface{} {
	course := a.create("/api/main-courses", map[string]interface{}{"main_name": "Course for " + price})
	return a.create("/api/menu-items", map[string]interface{}{
		"main_course_id": id(course),
		"name":           "Dish " + price,
		"description":    "Tasty",
		"image_url":      "https://example.com/dish.png",
		"price":          price,
	})
}

func TestOrderLifecycle_WorkedExample(t *testing.T) {
	api := setupAPI(t)

	tbl := api.create("/api/user-tables", map[string]interface{}{
		"username": "t1", "name": "Window", "table_no": 5, "contact": "1234567890",
	})
	if tbl["order_count"].(float64) != 0 {
		t.Errorf("order_count = %v, want 0", tbl["order_count"])
	}

	item := api.menuItem("20.00")
	order := api.create("/api/final-orders", map[string]interface{}{
		"user_table_id": id(tbl),
		"order_item_id": id(item),
		"quantity":      3,
		"total_amount":  "1.00",
	})
	if order["total_amount"] != "60.00" {
		t.Errorf("total_amount = %v, want 60.00", order["total_amount"])
	}
	nestedTable := order["user_table"].(map[string]interface{})
	if nestedTable["username"] != "t1" || nestedTable["order_count"].(float64) != 1 {
		t.Errorf("nested user_table = %v", nestedTable)
	}
	nestedItem := order["order_item"].(map[string]interface{})
	if nestedItem["price"] != "20.00" || nestedItem["is_expensive"] != false {
		t.Errorf("nested order_item = %v", nestedItem)
	}

	path := fmt.Sprintf("/api/final-orders/%d", id(order))
	code, env := api.do(http.MethodPatch, path, map[string]interface{}{"quantity": 5})
	if code != http.StatusOK {
		t.Fatalf("PATCH = %d (%v)", code, env.Errors)
	}
	if got := decodeData(t, env)["total_amount"]; got != "100.00" {
		t.Errorf("total_amount after patch = %v, want 100.00", got)
	}

	code, env = api.do(http.MethodGet, path, nil)
	if code != http.StatusOK || decodeData(t, env)["total_amount"] != "100.00" {
		t.Errorf("GET after patch = %d %s", code, env.Data)
	}

	code, env = api.do(http.MethodGet, fmt.Sprintf("/api/user-tables/%d", id(tbl)), nil)
	if code != http.StatusOK || decodeData(t, env)["order_count"].(float64) != 1 {
		t.Errorf("table after order = %d %s", code, env.Data)
	}
}

func TestOrderUpdate_ItemChangeAndFullReplace(t *testing.T) {
	api := setupAPI(t)
	tbl := api.create("/api/user-tables", table("t1", 1))
	cheap := api.menuItem("20.00")
	steak := api.menuItem("55.50")

	order := api.create("/api/final-orders", map[string]interface{}{
		"user_table_id": id(tbl), "order_item_id": id(cheap), "quantity": 4,
	})
	path := fmt.Sprintf("/api/final-orders/%d", id(order))

	code, env := api.do(http.MethodPatch, path, map[string]interface{}{"order_item_id": id(steak)})
	if code != http.StatusOK {
		t.Fatalf("PATCH item = %d (%v)", code, env.Errors)
	}
	got := decodeData(t, env)
	if got["total_amount"] != "222.00" {
		t.Errorf("total_amount = %v, want 222.00", got["total_amount"])
	}
	if got["order_item"].(map[string]interface{})["is_expensive"] != true {
		t.Errorf("new item should be expensive: %v", got["order_item"])
	}

	// PUT without quantity keeps the stored one
	code, env = api.do(http.MethodPut, path, map[string]interface{}{
		"user_table_id": id(tbl), "order_item_id": id(cheap),
	})
	if code != http.StatusOK {
		t.Fatalf("PUT = %d (%v)", code, env.Errors)
	}
	if got := decodeData(t, env); got["quantity"].(float64) != 4 || got["total_amount"] != "80.00" {
		t.Errorf("after PUT = %v", got)
	}

	// PUT must carry every required field
	code, env = api.do(http.MethodPut, path, map[string]interface{}{"quantity": 2})
	if code != http.StatusBadRequest || len(env.Errors["order_item_id"]) == 0 || len(env.Errors["user_table_id"]) == 0 {
		t.Errorf("PUT partial body = %d %v, want 400 naming both references", code, env.Errors)
	}
}

func TestOrderCreate_Rejections(t *testing.T) {
	api := setupAPI(t)
	tbl := api.create("/api/user-tables", table("t1", 1))
	item := api.menuItem("20.00")

	code, env := api.do(http.MethodPost, "/api/final-orders", map[string]interface{}{
		"user_table_id": id(tbl), "order_item_id": 999,
	})
	if code != http.StatusNotFound || len(env.Errors["order_item_id"]) == 0 {
		t.Errorf("unknown item = %d %v, want 404 on order_item_id", code, env.Errors)
	}

	code, env = api.do(http.MethodPost, "/api/final-orders", map[string]interface{}{
		"user_table_id": id(tbl), "order_item_id": id(item), "quantity": 0,
	})
	if code != http.StatusBadRequest || len(env.Errors["quantity"]) == 0 {
		t.Errorf("quantity 0 = %d %v, want 400 on quantity", code, env.Errors)
	}

	code, _ = api.do(http.MethodPost, "/api/final-orders", `{"user_table_id": "x"`)
	if code != http.StatusBadRequest {
		t.Errorf("malformed body = %d, want 400", code)
	}

	code, env = api.do(http.MethodGet, "/api/final-orders", nil)
	if code != http.StatusOK {
		t.Fatalf("list = %d", code)
	}
	var list struct {
		Items []interface{} `json:"items"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 0 || len(list.Items) != 0 {
		t.Errorf("rejected orders were stored: %+v", list)
	}
}

func TestUserTable_TableNoBoundaries(t *testing.T) {
	api := setupAPI(t)
	cases := []struct {
		no   int
		want int
	}{
		{0, http.StatusBadRequest},
		{1, http.StatusCreated},
		{100, http.StatusCreated},
		{101, http.StatusBadRequest},
	}
	for _, tc := range cases {
		code, env := api.do(http.MethodPost, "/api/user-tables", table(fmt.Sprintf("t%d", tc.no), tc.no))
		if code != tc.want {
			t.Errorf("table_no=%d: status = %d (%v), want %d", tc.no, code, env.Errors, tc.want)
		}
		if tc.want == http.StatusBadRequest && len(env.Errors["table_no"]) == 0 {
			t.Errorf("table_no=%d: errors = %v, want table_no", tc.no, env.Errors)
		}
	}
}

func TestUserTable_DuplicateUsernameAndShape(t *testing.T) {
	api := setupAPI(t)
	api.create("/api/user-tables", table("t1", 1))

	code, env := api.do(http.MethodPost, "/api/user-tables", table("t1", 2))
	if code != http.StatusBadRequest || len(env.Errors["username"]) == 0 {
		t.Errorf("duplicate username = %d %v, want 400 on username", code, env.Errors)
	}

	bad := table("bad name", 3)
	bad["contact"] = "12-34"
	code, env = api.do(http.MethodPost, "/api/user-tables", bad)
	if code != http.StatusBadRequest || len(env.Errors["username"]) == 0 || len(env.Errors["contact"]) == 0 {
		t.Errorf("bad shape = %d %v, want username and contact errors", code, env.Errors)
	}
}

func TestDayBook_CRUD(t *testing.T) {
	api := setupAPI(t)
	entry := api.create("/api/day-books", map[string]interface{}{
		"name": "Rent", "purpose": "June", "bill_no": 10, "amount": 1500.5, "pay_option": "rent",
		"bill_date": "2001-01-01T00:00:00Z",
	})
	if entry["amount"] != "1500.50" || entry["pay_option"] != "rent" {
		t.Errorf("created = %v", entry)
	}
	if s, _ := entry["formatted_date"].(string); s == "" || strings.HasPrefix(entry["bill_date"].(string), "2001") {
		t.Errorf("bill_date must be server-set: %v / %v", entry["bill_date"], entry["formatted_date"])
	}

	code, env := api.do(http.MethodPost, "/api/day-books", map[string]interface{}{
		"name": "Other", "purpose": "x", "bill_no": 10, "amount": "1.00",
	})
	if code != http.StatusBadRequest || len(env.Errors["bill_no"]) == 0 {
		t.Errorf("duplicate bill_no = %d %v", code, env.Errors)
	}

	code, env = api.do(http.MethodPost, "/api/day-books", map[string]interface{}{
		"name": "Other", "purpose": "x", "bill_no": 11, "amount": "1.00", "pay_option": "food",
	})
	if code != http.StatusBadRequest || len(env.Errors["pay_option"]) == 0 {
		t.Errorf("bad pay_option = %d %v", code, env.Errors)
	}

	path := fmt.Sprintf("/api/day-books/%d", id(entry))
	code, env = api.do(http.MethodPatch, path, map[string]interface{}{"amount": "99.99"})
	if code != http.StatusOK {
		t.Fatalf("PATCH = %d %v", code, env.Errors)
	}
	patched := decodeData(t, env)
	if patched["amount"] != "99.99" {
		t.Errorf("patched amount = %v", patched["amount"])
	}
	before, _ := time.Parse(time.RFC3339Nano, entry["bill_date"].(string))
	after, _ := time.Parse(time.RFC3339Nano, patched["bill_date"].(string))
	if !before.Equal(after) {
		t.Errorf("bill_date changed from %v to %v", before, after)
	}

	// PUT without pay_option keeps the stored choice
	code, env = api.do(http.MethodPut, path, map[string]interface{}{
		"name": "Rent", "purpose": "July", "bill_no": 10, "amount": "1600.00",
	})
	if code != http.StatusOK {
		t.Fatalf("PUT = %d %v", code, env.Errors)
	}
	if got := decodeData(t, env); got["pay_option"] != "rent" || got["purpose"] != "July" {
		t.Errorf("after PUT = %v, want pay_option rent", got)
	}

	if code, _ := api.do(http.MethodDelete, path, nil); code != http.StatusNoContent {
		t.Errorf("DELETE = %d, want 204", code)
	}
	if code, _ := api.do(http.MethodGet, path, nil); code != http.StatusNotFound {
		t.Errorf("GET deleted = %d, want 404", code)
	}
	if code, _ := api.do(http.MethodDelete, path, nil); code != http.StatusNotFound {
		t.Errorf("DELETE again = %d, want 404", code)
	}
}

func TestMenu_ExpensiveFlagAndCascade(t *testing.T) {
	api := setupAPI(t)
	course := api.create("/api/main-courses", map[string]interface{}{"main_name": "Grill"})
	courseID := id(course)
	if course["item_count"].(float64) != 0 {
		t.Errorf("item_count = %v, want 0", course["item_count"])
	}

	code, env := api.do(http.MethodPost, "/api/main-courses", map[string]interface{}{"main_name": "Grill"})
	if code != http.StatusBadRequest || len(env.Errors["main_name"]) == 0 {
		t.Errorf("duplicate main_name = %d %v", code, env.Errors)
	}

	newItem := func(price string) map[string]interface{} {
		return api.create("/api/menu-items", map[string]interface{}{
			"main_course_id": courseID,
			"name":           "Item " + price,
			"description":    "d",
			"image_url":      "https://example.com/i.png",
			"price":          price,
		})
	}
	at := newItem("50.00")
	above := newItem("50.01")
	if at["is_expensive"] != false || above["is_expensive"] != true {
		t.Errorf("is_expensive at/above = %v/%v", at["is_expensive"], above["is_expensive"])
	}
	if at["main_course"] != "Grill" {
		t.Errorf("main_course = %v, want Grill", at["main_course"])
	}

	tbl := api.create("/api/user-tables", table("t1", 1))
	order := api.create("/api/final-orders", map[string]interface{}{
		"user_table_id": id(tbl), "order_item_id": id(at),
	})

	code, env = api.do(http.MethodGet, fmt.Sprintf("/api/main-courses/%d", courseID), nil)
	if code != http.StatusOK || decodeData(t, env)["item_count"].(float64) != 2 {
		t.Errorf("course after items = %d %s", code, env.Data)
	}

	if code, _ := api.do(http.MethodDelete, fmt.Sprintf("/api/main-courses/%d", courseID), nil); code != http.StatusNoContent {
		t.Fatalf("DELETE course = %d", code)
	}
	for _, path := range []string{
		fmt.Sprintf("/api/menu-items/%d", id(at)),
		fmt.Sprintf("/api/menu-items/%d", id(above)),
		fmt.Sprintf("/api/final-orders/%d", id(order)),
	} {
		if code, _ := api.do(http.MethodGet, path, nil); code != http.StatusNotFound {
			t.Errorf("GET %s after cascade = %d, want 404", path, code)
		}
	}
	if code, _ := api.do(http.MethodGet, fmt.Sprintf("/api/user-tables/%d", id(tbl)), nil); code != http.StatusOK {
		t.Errorf("table should survive course delete, got %d", code)
	}
}

func TestMenuItem_UnknownCourse(t *testing.T) {
	api := setupAPI(t)
	code, env := api.do(http.MethodPost, "/api/menu-items", map[string]interface{}{
		"main_course_id": 77, "name": "x", "description": "x",
		"image_url": "https://example.com/x.png", "price": "1.00",
	})
	if code != http.StatusNotFound || len(env.Errors["main_course_id"]) == 0 {
		t.Errorf("unknown course = %d %v, want 404 on main_course_id", code, env.Errors)
	}
}

func TestInvalidIDAndHealth(t *testing.T) {
	api := setupAPI(t)
	if code, _ := api.do(http.MethodGet, "/api/user-tables/abc", nil); code != http.StatusBadRequest {
		t.Errorf("GET bad id = %d, want 400", code)
	}
	if code, _ := api.do(http.MethodGet, "/api/user-tables/42", nil); code != http.StatusNotFound {
		t.Errorf("GET unknown id = %d, want 404", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("healthz = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestExportDayBooks(t *testing.T) {
	api := setupAPI(t)
	api.create("/api/day-books", map[string]interface{}{
		"name": "Paper", "purpose": "Office supplies", "bill_no": 3, "amount": "12.40", "pay_option": "office",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/export/day-books/csv", nil)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("csv export = %d", w.Code)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "3,Paper,Office supplies,12.40,office,") {
		t.Errorf("csv = %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/export/day-books/xlsx", nil)
	w = httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx export = %d", w.Code)
	}
	// xlsx is a zip archive
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Errorf("xlsx body does not look like a zip archive")
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), ".xlsx") {
		t.Errorf("Content-Disposition = %q", w.Header().Get("Content-Disposition"))
	}
}
