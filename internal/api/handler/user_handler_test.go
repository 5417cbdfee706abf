package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*ports.UserResult, error)
	getFn    func(ctx context.Context, id int64) (*ports.UserResult, error)
	listFn   func(ctx context.Context, filter ports.ListFilter) (*ports.UserPage, error)
	updateFn func(ctx context.Context, id int64, input ports.EditUserInput) (*ports.UserResult, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.UserResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*ports.UserResult, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, filter ports.ListFilter) (*ports.UserPage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubUserService) Update(ctx context.Context, id int64, input ports.EditUserInput) (*ports.UserResult, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) LoadByUsername(context.Context, string) (*ports.Principal, error) {
	return nil, domain.ErrCredentialsLookup
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*ports.UserResult, error) {
			if input.Username != "alice" || input.Password != "pw1" || input.Role != domain.RoleUser {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.UserResult{ID: 1, Username: "alice"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users", `{"username":"alice","password":"pw1","role":"USER"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(1) || resp["username"] != "alice" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("password leaked into response")
	}
	if _, ok := resp["role"]; ok {
		t.Fatalf("role leaked into response")
	}
}

func TestUserHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*ports.UserResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users", "not-json")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_MissingFields(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*ports.UserResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"alice"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_BadRole(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*ports.UserResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"alice","password":"pw","role":"ROOT"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_Conflict(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*ports.UserResult, error) {
			return nil, domain.UsernameAlreadyExists("alice")
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"alice","password":"pw","role":"USER"}`)
	err := h.Create(c)

	// The handler propagates the domain failure untouched for the error
	// translator to format.
	if !errors.Is(err, domain.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists to propagate, got %v", err)
	}
}

func TestUserHandler_Get_Success(t *testing.T) {
	stub := &stubUserService{
		getFn: func(_ context.Context, id int64) (*ports.UserResult, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &ports.UserResult{ID: 7, Username: "bob"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubUserService{
		getFn: func(_ context.Context, id int64) (*ports.UserResult, error) {
			return nil, domain.UserNotFoundByID(id)
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/users/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(_ context.Context, filter ports.ListFilter) (*ports.UserPage, error) {
			if filter.Page != 2 || filter.Limit != 5 || filter.Sort != "username,desc" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return &ports.UserPage{
				Items:      []ports.UserResult{{ID: 6, Username: "f"}},
				Total:      6,
				Page:       2,
				Limit:      5,
				TotalPages: 2,
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users?page=2&limit=5&sort=username,desc", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Pagination.Total != 6 || resp.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if len(resp.Data) != 1 || resp.Data[0].Username != "f" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, id int64, input ports.EditUserInput) (*ports.UserResult, error) {
			if id != 1 || input.Username != "alice2" || input.Role != domain.RoleAdmin {
				t.Fatalf("unexpected args: id=%d input=%+v", id, input)
			}
			return &ports.UserResult{ID: 1, Username: "alice2"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/users/1", `{"username":"alice2","password":"pw2","role":"ADMIN"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	called := 0
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id int64) error {
			called++
			if id != 3 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if called != 1 {
		t.Fatalf("expected exactly one delete call, got %d", called)
	}
}
