package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/antech/configstore/internal/domain/errors"
	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/dto"
	"github.com/antech/configstore/internal/server/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authFacadeStub implements AuthFacade via function overrides.
type authFacadeStub struct {
	RegisterFn     func(ctx context.Context, email, password, fullName, phone, address string) (*model.User, error)
	LoginFn        func(ctx context.Context, login, password string) (*model.User, *model.Session, error)
	RequestResetFn func(ctx context.Context, email string) error
	ConfirmResetFn func(ctx context.Context, email, code, newPassword string) error
	ListUsersFn    func(ctx context.Context) ([]model.User, error)
	ChangeRoleFn   func(ctx context.Context, userID int64, role model.Role) error
}

func (s authFacadeStub) Register(ctx context.Context, email, password, fullName, phone, address string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, fullName, phone, address)
	}
	return &model.User{ID: 1, Email: email, FullName: fullName, Phone: phone, Address: address, Role: model.RoleUser}, nil
}

func (s authFacadeStub) Login(ctx context.Context, login, password string) (*model.User, *model.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, login, password)
	}
	return &model.User{ID: 1, Email: login, Role: model.RoleUser}, &model.Session{Token: "session-token"}, nil
}

func (s authFacadeStub) Logout(ctx context.Context, token string) error { return nil }

func (s authFacadeStub) DeleteAccount(ctx context.Context, caller *model.User) error { return nil }

func (s authFacadeStub) RequestPasswordReset(ctx context.Context, email string) error {
	if s.RequestResetFn != nil {
		return s.RequestResetFn(ctx, email)
	}
	return nil
}

func (s authFacadeStub) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	if s.ConfirmResetFn != nil {
		return s.ConfirmResetFn(ctx, email, code, newPassword)
	}
	return nil
}

func (s authFacadeStub) ListUsers(ctx context.Context) ([]model.User, error) {
	if s.ListUsersFn != nil {
		return s.ListUsersFn(ctx)
	}
	return nil, nil
}

func (s authFacadeStub) ChangeRole(ctx context.Context, userID int64, role model.Role) error {
	if s.ChangeRoleFn != nil {
		return s.ChangeRoleFn(ctx, userID, role)
	}
	return nil
}

// orderFacadeStub implements OrderFacade via function overrides.
type orderFacadeStub struct {
	CreateOrderFn    func(ctx context.Context, caller *model.User, configurationID int64, quantity int) (*model.Order, error)
	OrderFn          func(ctx context.Context, caller *model.User, id int64) (*model.Order, error)
	SetOrderStatusFn func(ctx context.Context, caller *model.User, orderID int64, statusName string) error
	AttachFn         func(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error)
}

func (s orderFacadeStub) CreateOrder(ctx context.Context, caller *model.User, configurationID int64, quantity int) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, caller, configurationID, quantity)
	}
	return &model.Order{ID: 1, UserID: caller.ID, Total: decimal.NewFromInt(750), Status: model.StatusPending}, nil
}

func (s orderFacadeStub) Orders(ctx context.Context, caller *model.User) ([]model.Order, error) {
	return nil, nil
}

func (s orderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) { return nil, nil }

func (s orderFacadeStub) Order(ctx context.Context, caller *model.User, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, caller, id)
	}
	return &model.Order{ID: id, UserID: caller.ID, Status: model.StatusPending}, nil
}

func (s orderFacadeStub) DeleteOrder(ctx context.Context, caller *model.User, id int64) error {
	return nil
}

func (s orderFacadeStub) AttachConfiguration(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	if s.AttachFn != nil {
		return s.AttachFn(ctx, orderID, configurationID, quantity)
	}
	return &model.OrderConfiguration{OrderID: orderID, ConfigurationID: configurationID, Quantity: quantity}, nil
}

func (s orderFacadeStub) UpdateOrderConfiguration(ctx context.Context, orderID, configurationID int64, quantity int) (*model.OrderConfiguration, error) {
	return &model.OrderConfiguration{OrderID: orderID, ConfigurationID: configurationID, Quantity: quantity}, nil
}

func (s orderFacadeStub) RemoveOrderConfiguration(ctx context.Context, orderID, configurationID int64) error {
	return nil
}

func (s orderFacadeStub) SetOrderStatus(ctx context.Context, caller *model.User, orderID int64, statusName string) error {
	if s.SetOrderStatusFn != nil {
		return s.SetOrderStatusFn(ctx, caller, orderID, statusName)
	}
	return nil
}

func (s orderFacadeStub) OrderStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	return []model.OrderStatus{{ID: 1, Name: model.StatusPending}}, nil
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(user *model.User) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, user)
		c.Set(middleware.TokenContextKey, "tok")
	}
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	user := &model.User{ID: 42}
	c.Set(middleware.UserContextKey, user)
	if got := CurrentUser(c); got != user {
		t.Fatalf("expected stored user, got %+v", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{
		Email: "ivan@example.ru", Password: "secret", FullName: "Иван", Phone: "+79001234567",
	})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(authFacadeStub{}).Register, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var user dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Email != "ivan@example.ru" || user.Role != string(model.RoleUser) {
		t.Fatalf("unexpected response %+v", user)
	}
}

func TestAuthHandlerRegisterErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid payload", domainErrors.ErrInvalid, http.StatusUnprocessableEntity},
		{"duplicate", domainErrors.ErrAlreadyExists, http.StatusConflict},
		{"storage down", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := authFacadeStub{RegisterFn: func(context.Context, string, string, string, string, string) (*model.User, error) {
				return nil, tc.err
			}}
			body, _ := json.Marshal(dto.RegisterRequest{Email: "ivan@example.ru", Password: "x"})
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(stub).Register, nil, body)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestAuthHandlerRegisterMalformedJSON(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(authFacadeStub{}).Register, nil, []byte("{"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginSetsCookie(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Login: "+79001234567", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(authFacadeStub{}).Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "Bearer session-token" {
		t.Fatalf("authorization header missing: %q", resp.Header().Get("Authorization"))
	}
	if resp.Header().Get("Set-Cookie") == "" {
		t.Fatalf("session cookie missing")
	}
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	stub := authFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, *model.Session, error) {
		return nil, nil, domainErrors.ErrInvalidCredentials
	}}
	body, _ := json.Marshal(dto.LoginRequest{Login: "ivan@example.ru", Password: "wrong"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(stub).Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestUserHandlerMe(t *testing.T) {
	user := &model.User{ID: 7, FullName: "Иван", Email: "ivan@example.ru", Role: model.RoleUser}
	resp := performRequest(t, http.MethodGet, "/me", NewUserHandler(authFacadeStub{}).Me, asUser(user), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 7 || got.FullName != "Иван" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	user := &model.User{ID: 1, Role: model.RoleUser}
	body, _ := json.Marshal(dto.OrderCreateRequest{ConfigurationID: 3, Quantity: 3})
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(orderFacadeStub{}).Create, asUser(user), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if order.Total != "750.00" || order.Status != model.StatusPending {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestOrderHandlerCreateErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"foreign configuration", domainErrors.ErrNotFound, http.StatusNotFound},
		{"empty configuration", domainErrors.ErrEmptyConfiguration, http.StatusUnprocessableEntity},
		{"bad quantity", domainErrors.ErrInvalid, http.StatusUnprocessableEntity},
	}
	user := &model.User{ID: 1, Role: model.RoleUser}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := orderFacadeStub{CreateOrderFn: func(context.Context, *model.User, int64, int) (*model.Order, error) {
				return nil, tc.err
			}}
			body, _ := json.Marshal(dto.OrderCreateRequest{ConfigurationID: 3, Quantity: 1})
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(stub).Create, asUser(user), body)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestOrderHandlerSetStatusForbidden(t *testing.T) {
	user := &model.User{ID: 1, Role: model.RoleUser}
	stub := orderFacadeStub{SetOrderStatusFn: func(context.Context, *model.User, int64, string) error {
		return domainErrors.ErrForbidden
	}}
	body, _ := json.Marshal(dto.StatusChangeRequest{Status: model.StatusDelivered})
	resp := performRequest(t, http.MethodPatch, "/orders/1/status", NewOrderHandler(stub).SetStatus, func(c *gin.Context) {
		asUser(user)(c)
		c.Params = append(c.Params, gin.Param{Key: "id", Value: "1"})
	}, body)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestOrderHandlerAttachConflict(t *testing.T) {
	stub := orderFacadeStub{AttachFn: func(context.Context, int64, int64, int) (*model.OrderConfiguration, error) {
		return nil, domainErrors.ErrAlreadyExists
	}}
	body, _ := json.Marshal(dto.SnapshotRequest{ConfigurationID: 3, Quantity: 1})
	resp := performRequest(t, http.MethodPost, "/orders/1/configurations", NewOrderHandler(stub).Attach, func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "id", Value: "1"})
	}, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestOrderHandlerGetBadID(t *testing.T) {
	user := &model.User{ID: 1, Role: model.RoleUser}
	router := gin.New()
	router.GET("/orders/:id", func(c *gin.Context) {
		asUser(user)(c)
		NewOrderHandler(orderFacadeStub{}).Get(c)
	})

	// A non-numeric identifier cannot name an order.
	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
