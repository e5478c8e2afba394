package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func validCreateRequest() CreateSuperheroRequest {
	return CreateSuperheroRequest{
		Nickname:          "Superman",
		RealName:          "Clark Kent",
		OriginDescription: "Born on Krypton, raised in Kansas.",
		Superpowers:       "flight, super strength",
		CatchPhrase:       "Up, up and away!",
	}
}

func TestCreateSuperheroRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateSuperheroRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateSuperheroRequest) {}, false},
		{"missing nickname", func(r *CreateSuperheroRequest) { r.Nickname = "" }, true},
		{"nickname too long", func(r *CreateSuperheroRequest) { r.Nickname = strings.Repeat("x", 101) }, true},
		{"nickname at max length", func(r *CreateSuperheroRequest) { r.Nickname = strings.Repeat("x", 100) }, false},
		{"origin description too short", func(r *CreateSuperheroRequest) { r.OriginDescription = "too short" }, true},
		{"origin description at min length", func(r *CreateSuperheroRequest) { r.OriginDescription = strings.Repeat("x", 10) }, false},
		{"origin description too long", func(r *CreateSuperheroRequest) { r.OriginDescription = strings.Repeat("x", 2001) }, true},
		{"superpowers too long", func(r *CreateSuperheroRequest) { r.Superpowers = strings.Repeat("x", 1001) }, true},
		{"catch phrase too long", func(r *CreateSuperheroRequest) { r.CatchPhrase = strings.Repeat("x", 201) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := binding.Validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateSuperheroRequestValidation(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     UpdateSuperheroRequest
		wantErr bool
	}{
		{"all fields absent", UpdateSuperheroRequest{}, false},
		{"valid nickname only", UpdateSuperheroRequest{Nickname: str("Batman")}, false},
		{"explicit empty nickname rejected", UpdateSuperheroRequest{Nickname: str("")}, true},
		{"nickname too long", UpdateSuperheroRequest{Nickname: str(strings.Repeat("x", 101))}, true},
		{"origin description too short", UpdateSuperheroRequest{OriginDescription: str("short")}, true},
		{"valid origin description", UpdateSuperheroRequest{OriginDescription: str("A dark alley in Gotham City.")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateSuperheroRequestFields(t *testing.T) {
	str := func(s string) *string { return &s }

	empty := UpdateSuperheroRequest{}
	assert.Empty(t, empty.Fields())

	partial := UpdateSuperheroRequest{
		Nickname:    str("Batman"),
		CatchPhrase: str("I am the night"),
	}
	fields := partial.Fields()
	assert.Equal(t, map[string]interface{}{
		"nickname":     "Batman",
		"catch_phrase": "I am the night",
	}, fields)
}

func TestListQueryValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   ListQuery
		wantErr bool
	}{
		{"defaults", ListQuery{Page: 1, Limit: 5}, false},
		{"upper limit bound", ListQuery{Page: 1, Limit: 50}, false},
		{"limit too large", ListQuery{Page: 1, Limit: 51}, true},
		{"zero limit", ListQuery{Page: 1, Limit: 0}, true},
		{"zero page", ListQuery{Page: 0, Limit: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
