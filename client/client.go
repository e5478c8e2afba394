// Package client is a stateful API client for the superhero catalog service.
// It mirrors the web frontend's store: it keeps the current list page, the
// selected detail record, pagination metadata, a loading flag and the last
// error, and updates them as actions run.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sync"
	"time"
)

type Store struct {
	baseURL string
	http    *http.Client

	mu          sync.Mutex
	superheroes []SuperheroListItem
	selected    *SuperheroDetail
	pagination  Pagination
	loading     bool
	lastError   string
}

func NewStore(baseURL string) *Store {
	return &Store{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: 30 * time.Second},
		pagination: Pagination{Page: 1, Limit: 5},
	}
}

// Superheroes returns the current list page.
func (s *Store) Superheroes() []SuperheroListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SuperheroListItem(nil), s.superheroes...)
}

// Selected returns a copy of the currently selected detail record, or nil.
func (s *Store) Selected() *SuperheroDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	selected.Images = append([]Image(nil), s.selected.Images...)
	return &selected
}

func (s *Store) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the last failed action, or "".
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// FetchSuperheroes loads one page of the listing into the store.
func (s *Store) FetchSuperheroes(ctx context.Context, page, limit int) error {
	return s.run(func() error {
		env, err := s.do(ctx, http.MethodGet,
			fmt.Sprintf("/superheroes?page=%d&limit=%d", page, limit), "", nil)
		if err != nil {
			return err
		}

		var items []SuperheroListItem
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return fmt.Errorf("failed to decode superhero list: %w", err)
		}

		s.mu.Lock()
		s.superheroes = items
		if env.Pagination != nil {
			s.pagination = *env.Pagination
		}
		s.mu.Unlock()
		return nil
	})
}

// FetchSuperhero loads one detail record into the store.
func (s *Store) FetchSuperhero(ctx context.Context, id string) error {
	return s.run(func() error {
		env, err := s.do(ctx, http.MethodGet, "/superheroes/"+id, "", nil)
		if err != nil {
			return err
		}

		var detail SuperheroDetail
		if err := json.Unmarshal(env.Data, &detail); err != nil {
			return fmt.Errorf("failed to decode superhero: %w", err)
		}

		s.mu.Lock()
		s.selected = &detail
		s.mu.Unlock()
		return nil
	})
}

// CreateSuperhero creates a record with optional images and re-fetches the
// current page.
func (s *Store) CreateSuperhero(ctx context.Context, data CreateSuperheroData, files []UploadFile) error {
	return s.run(func() error {
		body, contentType, err := buildMultipartBody(data, files)
		if err != nil {
			return err
		}
		if _, err := s.do(ctx, http.MethodPost, "/superheroes", contentType, body); err != nil {
			return err
		}
		return s.refetchCurrentPage(ctx)
	})
}

// UpdateSuperhero sends a partial update and re-fetches the current page.
func (s *Store) UpdateSuperhero(ctx context.Context, id string, data UpdateSuperheroData) error {
	return s.run(func() error {
		payload, err := json.Marshal(data)
		if err != nil {
			return err
		}
		env, err := s.do(ctx, http.MethodPut, "/superheroes/"+id, "application/json", bytes.NewReader(payload))
		if err != nil {
			return err
		}

		var detail SuperheroDetail
		if err := json.Unmarshal(env.Data, &detail); err != nil {
			return fmt.Errorf("failed to decode superhero: %w", err)
		}

		s.mu.Lock()
		s.selected = &detail
		s.mu.Unlock()
		return s.refetchCurrentPage(ctx)
	})
}

// DeleteSuperhero removes a record, clears the selection if it was selected,
// and re-fetches the current page.
func (s *Store) DeleteSuperhero(ctx context.Context, id string) error {
	return s.run(func() error {
		if _, err := s.do(ctx, http.MethodDelete, "/superheroes/"+id, "", nil); err != nil {
			return err
		}

		s.mu.Lock()
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
		}
		s.mu.Unlock()
		return s.refetchCurrentPage(ctx)
	})
}

// AddImages attaches images to a record and refreshes its detail view.
func (s *Store) AddImages(ctx context.Context, id string, files []UploadFile) error {
	return s.run(func() error {
		body, contentType, err := buildMultipartBody(CreateSuperheroData{}, files)
		if err != nil {
			return err
		}
		if _, err := s.do(ctx, http.MethodPost, "/superheroes/"+id+"/images", contentType, body); err != nil {
			return err
		}
		return s.refreshSelected(ctx, id)
	})
}

// RemoveImage detaches one image from a record and refreshes its detail view.
func (s *Store) RemoveImage(ctx context.Context, id, imageID string) error {
	return s.run(func() error {
		if _, err := s.do(ctx, http.MethodDelete, "/superheroes/"+id+"/images/"+imageID, "", nil); err != nil {
			return err
		}
		return s.refreshSelected(ctx, id)
	})
}

// run wraps an action with the store's loading/error bookkeeping.
func (s *Store) run(action func() error) error {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()

	err := action()

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
	}
	s.mu.Unlock()
	return err
}

// refetchCurrentPage reloads the page the store is currently on. Mutations
// always re-sync with the server instead of patching local state.
func (s *Store) refetchCurrentPage(ctx context.Context) error {
	s.mu.Lock()
	page, limit := s.pagination.Page, s.pagination.Limit
	s.mu.Unlock()
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 5
	}

	env, err := s.do(ctx, http.MethodGet, fmt.Sprintf("/superheroes?page=%d&limit=%d", page, limit), "", nil)
	if err != nil {
		return err
	}

	var items []SuperheroListItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return fmt.Errorf("failed to decode superhero list: %w", err)
	}

	s.mu.Lock()
	s.superheroes = items
	if env.Pagination != nil {
		s.pagination = *env.Pagination
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) refreshSelected(ctx context.Context, id string) error {
	env, err := s.do(ctx, http.MethodGet, "/superheroes/"+id, "", nil)
	if err != nil {
		return err
	}

	var detail SuperheroDetail
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		return fmt.Errorf("failed to decode superhero: %w", err)
	}

	s.mu.Lock()
	s.selected = &detail
	s.mu.Unlock()
	return nil
}

// do performs one HTTP call and decodes the envelope. Non-success envelopes
// become errors carrying the server's error message.
func (s *Store) do(ctx context.Context, method, path, contentType string, body io.Reader) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("HTTP error, status: %d", resp.StatusCode)
	}

	if !env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("%s", env.Message)
		}
		if env.Error != "" {
			return nil, fmt.Errorf("%s", env.Error)
		}
		return nil, fmt.Errorf("HTTP error, status: %d", resp.StatusCode)
	}

	return &env, nil
}

// buildMultipartBody assembles the create/add-images form: the text fields
// (when non-empty) plus one "images" part per file.
func buildMultipartBody(data CreateSuperheroData, files []UploadFile) (io.Reader, string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fields := map[string]string{
		"nickname":          data.Nickname,
		"realName":          data.RealName,
		"originDescription": data.OriginDescription,
		"superpowers":       data.Superpowers,
		"catchPhrase":       data.CatchPhrase,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	for _, file := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, file.Name))
		h.Set("Content-Type", file.ContentType)

		fw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := fw.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write file data: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &b, w.FormDataContentType(), nil
}
