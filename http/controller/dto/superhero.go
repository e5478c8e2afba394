package dto

import "github.com/google/uuid"

type CreateSuperheroRequest struct {
	Nickname          string `form:"nickname" json:"nickname" binding:"required,min=1,max=100"`
	RealName          string `form:"realName" json:"realName" binding:"required,min=1,max=100"`
	OriginDescription string `form:"originDescription" json:"originDescription" binding:"required,min=10,max=2000"`
	Superpowers       string `form:"superpowers" json:"superpowers" binding:"required,min=1,max=1000"`
	CatchPhrase       string `form:"catchPhrase" json:"catchPhrase" binding:"required,min=1,max=200"`
}

// UpdateSuperheroRequest carries a partial update: nil pointers mean "leave
// this field untouched".
// omitnil (not omitempty) so an explicit empty string still fails the
// min bound instead of being skipped as a zero value.
type UpdateSuperheroRequest struct {
	Nickname          *string `json:"nickname" binding:"omitnil,min=1,max=100"`
	RealName          *string `json:"realName" binding:"omitnil,min=1,max=100"`
	OriginDescription *string `json:"originDescription" binding:"omitnil,min=10,max=2000"`
	Superpowers       *string `json:"superpowers" binding:"omitnil,min=1,max=1000"`
	CatchPhrase       *string `json:"catchPhrase" binding:"omitnil,min=1,max=200"`
}

// Fields maps the present fields to their database columns.
func (r *UpdateSuperheroRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Nickname != nil {
		fields["nickname"] = *r.Nickname
	}
	if r.RealName != nil {
		fields["real_name"] = *r.RealName
	}
	if r.OriginDescription != nil {
		fields["origin_description"] = *r.OriginDescription
	}
	if r.Superpowers != nil {
		fields["superpowers"] = *r.Superpowers
	}
	if r.CatchPhrase != nil {
		fields["catch_phrase"] = *r.CatchPhrase
	}
	return fields
}

// ListQuery holds the pagination query params. Values outside the bounds are
// rejected, never silently clamped.
type ListQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=5" binding:"min=1,max=50"`
}

// ImageDetail is the full image projection returned by the image endpoints.
type ImageDetail struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimetype"`
}

// ImageSummary is the thumbnail projection used in listings.
type ImageSummary struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	Path     string    `json:"path"`
}

// SuperheroListItem is the abbreviated projection for the paginated list:
// id, nickname, and the oldest image (if any) as thumbnail.
type SuperheroListItem struct {
	ID       uuid.UUID     `json:"id"`
	Nickname string        `json:"nickname"`
	Image    *ImageSummary `json:"image,omitempty"`
}
