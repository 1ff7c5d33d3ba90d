package contact

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	contactUC "pressroom/internal/usecase/contact"
)

type stubContactRepo struct {
	data   map[int64]*entity.ContactMessage
	nextID int64
	err    error
}

func newContactStub() *stubContactRepo {
	return &stubContactRepo{data: map[int64]*entity.ContactMessage{}, nextID: 1}
}

func (s *stubContactRepo) Get(_ context.Context, id int64) (*entity.ContactMessage, error) {
	return s.data[id], s.err
}

func (s *stubContactRepo) List(_ context.Context, status *entity.ContactStatus, _, _ int) ([]*entity.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.ContactMessage
	for _, m := range s.data {
		if status != nil && m.Status != *status {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *stubContactRepo) Count(_ context.Context, status *entity.ContactStatus) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, m := range s.data {
		if status != nil && m.Status != *status {
			continue
		}
		n++
	}
	return n, nil
}

func (s *stubContactRepo) Create(_ context.Context, m *entity.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	m.ID = s.nextID
	s.nextID++
	s.data[m.ID] = m
	return nil
}

func (s *stubContactRepo) UpdateStatus(_ context.Context, id int64, status entity.ContactStatus) error {
	if s.err != nil {
		return s.err
	}
	s.data[id].Status = status
	return nil
}

func seedMessage(stub *stubContactRepo, status entity.ContactStatus) *entity.ContactMessage {
	m := &entity.ContactMessage{
		ID:      stub.nextID,
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Just saying hi.",
		Status:  status,
	}
	stub.nextID++
	stub.data[m.ID] = m
	return m
}

func TestSubmitHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid message",
			body:       `{"name":"Visitor","email":"visitor@example.com","subject":"Hi","message":"A question about your article."}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing subject and message",
			body:       `{"name":"Visitor","email":"visitor@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"name"`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := SubmitHandler{&contactUC.Service{Repo: newContactStub()}}
			req := httptest.NewRequest("POST", "/contact", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestSubmitHandler_AllViolationsReported(t *testing.T) {
	h := SubmitHandler{&contactUC.Service{Repo: newContactStub()}}

	req := httptest.NewRequest("POST", "/contact", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp struct {
		Errors []struct {
			Path string `json:"path"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	paths := map[string]bool{}
	for _, e := range resp.Errors {
		paths[e.Path] = true
	}
	for _, want := range []string{"name", "email", "subject", "message"} {
		if !paths[want] {
			t.Errorf("missing field error for %q", want)
		}
	}
}

func TestSubmitHandler_StoresNew(t *testing.T) {
	stub := newContactStub()
	h := SubmitHandler{&contactUC.Service{Repo: stub}}

	req := httptest.NewRequest("POST", "/contact",
		strings.NewReader(`{"name":"V","email":"v@example.com","subject":"S","message":"M"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	for _, m := range stub.data {
		if m.Status != entity.ContactNew {
			t.Errorf("status = %s, want NEW", m.Status)
		}
	}
}

func TestListHandler_StatusFilter(t *testing.T) {
	stub := newContactStub()
	seedMessage(stub, entity.ContactNew)
	seedMessage(stub, entity.ContactRead)
	h := ListHandler{
		Svc:           &contactUC.Service{Repo: stub},
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	req := httptest.NewRequest("POST", "/admin/contacts/get",
		strings.NewReader(`{"page":1,"limit":10,"status":"NEW"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data []DTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Status != "NEW" {
		t.Errorf("data = %+v, want one NEW message", resp.Data)
	}
}

func TestListHandler_UnknownStatus(t *testing.T) {
	h := ListHandler{
		Svc:           &contactUC.Service{Repo: newContactStub()},
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	req := httptest.NewRequest("POST", "/admin/contacts/get",
		strings.NewReader(`{"page":1,"limit":10,"status":"URGENT"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUpdateHandler(t *testing.T) {
	stub := newContactStub()
	seedMessage(stub, entity.ContactNew)
	h := UpdateHandler{&contactUC.Service{Repo: stub}}

	req := httptest.NewRequest("PUT", "/admin/contacts/update",
		strings.NewReader(`{"id":1,"status":"READ"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	if got := stub.data[1].Status; got != entity.ContactRead {
		t.Errorf("status = %s, want READ", got)
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	h := UpdateHandler{&contactUC.Service{Repo: newContactStub()}}

	req := httptest.NewRequest("PUT", "/admin/contacts/update",
		strings.NewReader(`{"id":9,"status":"READ"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
