package client

import "encoding/json"

// CreateSuperheroData are the text fields for a new record.
type CreateSuperheroData struct {
	Nickname          string
	RealName          string
	OriginDescription string
	Superpowers       string
	CatchPhrase       string
}

// UpdateSuperheroData is a partial update; nil fields are not sent.
type UpdateSuperheroData struct {
	Nickname          *string `json:"nickname,omitempty"`
	RealName          *string `json:"realName,omitempty"`
	OriginDescription *string `json:"originDescription,omitempty"`
	Superpowers       *string `json:"superpowers,omitempty"`
	CatchPhrase       *string `json:"catchPhrase,omitempty"`
}

// UploadFile is one image to attach to a record.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type Image struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

type SuperheroDetail struct {
	ID                string  `json:"id"`
	Nickname          string  `json:"nickname"`
	RealName          string  `json:"realName"`
	OriginDescription string  `json:"originDescription"`
	Superpowers       string  `json:"superpowers"`
	CatchPhrase       string  `json:"catchPhrase"`
	Images            []Image `json:"images"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

type SuperheroListItem struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Image    *Image `json:"image,omitempty"`
}

type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// envelope mirrors the server's uniform response wrapper. Data is decoded
// lazily because its shape depends on the endpoint.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Message    string          `json:"message"`
	Pagination *Pagination     `json:"pagination"`
}
