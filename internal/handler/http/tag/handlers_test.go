package tag

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
	tagUC "pressroom/internal/usecase/tag"
)

type stubTagRepo struct {
	data     map[int64]*entity.Tag
	articles map[int64]int64 // tag id -> live article count
	nextID   int64
	err      error
}

func newTagStub() *stubTagRepo {
	return &stubTagRepo{
		data:     map[int64]*entity.Tag{},
		articles: map[int64]int64{},
		nextID:   1,
	}
}

func (s *stubTagRepo) Get(_ context.Context, id int64) (*entity.Tag, error) {
	return s.data[id], s.err
}

func (s *stubTagRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Tag, 0, len(s.data))
	for _, t := range s.data {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTagRepo) Count(_ context.Context, _ string) (int64, error) {
	return int64(len(s.data)), s.err
}

func (s *stubTagRepo) FindByNames(_ context.Context, names []string) ([]*entity.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Tag
	for _, t := range s.data {
		for _, name := range names {
			if t.Name == name {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (s *stubTagRepo) Create(_ context.Context, t *entity.Tag) error {
	if s.err != nil {
		return s.err
	}
	t.ID = s.nextID
	s.nextID++
	s.data[t.ID] = t
	return nil
}

func (s *stubTagRepo) Update(_ context.Context, t *entity.Tag) error {
	if s.err != nil {
		return s.err
	}
	s.data[t.ID] = t
	return nil
}

func (s *stubTagRepo) SoftDelete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubTagRepo) CountByName(_ context.Context, name string, excludeID int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, t := range s.data {
		if t.Name == name && t.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (s *stubTagRepo) CountArticles(_ context.Context, id int64) (int64, error) {
	return s.articles[id], s.err
}

func seedTag(stub *stubTagRepo, name string) *entity.Tag {
	t := &entity.Tag{ID: stub.nextID, Name: name}
	stub.nextID++
	stub.data[t.ID] = t
	return t
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid tag", `{"name":"golang"}`, http.StatusCreated},
		{"name trimmed to empty", `{"name":"   "}`, http.StatusBadRequest},
		{"malformed json", `{"name"`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CreateHandler{&tagUC.Service{Repo: newTagStub()}}
			req := httptest.NewRequest("POST", "/admin/tags/create", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestCreateHandler_DuplicateName(t *testing.T) {
	stub := newTagStub()
	seedTag(stub, "golang")
	h := CreateHandler{&tagUC.Service{Repo: stub}}

	req := httptest.NewRequest("POST", "/admin/tags/create",
		strings.NewReader(`{"name":"golang"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "already exists") {
		t.Errorf("body = %s, want a conflict message", rec.Body.String())
	}
}

func TestUpdateHandler_Rename(t *testing.T) {
	stub := newTagStub()
	seedTag(stub, "golnag")
	h := UpdateHandler{&tagUC.Service{Repo: stub}}

	req := httptest.NewRequest("PUT", "/admin/tags/update",
		strings.NewReader(`{"id":1,"name":"golang"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Tag struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"tag"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Tag.Name != "golang" {
		t.Errorf("name = %q, want %q", resp.Tag.Name, "golang")
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	h := UpdateHandler{&tagUC.Service{Repo: newTagStub()}}

	req := httptest.NewRequest("PUT", "/admin/tags/update",
		strings.NewReader(`{"id":7,"name":"x"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDeleteHandler_InUse(t *testing.T) {
	stub := newTagStub()
	tag := seedTag(stub, "busy")
	stub.articles[tag.ID] = 2
	h := DeleteHandler{&tagUC.Service{Repo: stub}}

	req := httptest.NewRequest("DELETE", "/admin/tags/delete",
		strings.NewReader(`{"id":1}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "2 articles") {
		t.Errorf("body = %s, want a message naming the blockers", rec.Body.String())
	}
}

func TestDeleteHandler_Success(t *testing.T) {
	stub := newTagStub()
	seedTag(stub, "idle")
	h := DeleteHandler{&tagUC.Service{Repo: stub}}

	req := httptest.NewRequest("DELETE", "/admin/tags/delete",
		strings.NewReader(`{"id":1}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	if len(stub.data) != 0 {
		t.Errorf("tags remaining = %d, want 0", len(stub.data))
	}
}

func TestListHandler(t *testing.T) {
	stub := newTagStub()
	seedTag(stub, "go")
	seedTag(stub, "postgres")
	h := ListHandler{
		Svc:           &tagUC.Service{Repo: stub},
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	req := httptest.NewRequest("POST", "/admin/tags/get",
		strings.NewReader(`{"page":1,"limit":10}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data       []DTO               `json:"data"`
		Pagination pagination.Metadata `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Pagination.Total != 2 {
		t.Errorf("data = %d items, total = %d, want 2/2", len(resp.Data), resp.Pagination.Total)
	}
}
