package controller

import (
	"encoding/json"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herocatalog/superhero-catalog/entity"
	"github.com/herocatalog/superhero-catalog/http/controller/dto"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateUploadBatch(t *testing.T) {
	valid := fileHeader("a.png", "image/png", 1024)

	assert.Nil(t, validateUploadBatch(nil))
	assert.Nil(t, validateUploadBatch([]*multipart.FileHeader{valid}))

	jpeg := fileHeader("b.jpg", "image/jpeg", 1024)
	gif := fileHeader("c.gif", "image/gif", 1024)
	webp := fileHeader("d.webp", "image/webp", 1024)
	assert.Nil(t, validateUploadBatch([]*multipart.FileHeader{valid, jpeg, gif, webp}))

	t.Run("invalid type rejects whole batch", func(t *testing.T) {
		pdf := fileHeader("doc.pdf", "application/pdf", 1024)
		err := validateUploadBatch([]*multipart.FileHeader{valid, pdf})
		require.NotNil(t, err)
		assert.Equal(t, "Invalid file type", err.errMsg)
	})

	t.Run("oversized file rejects whole batch", func(t *testing.T) {
		big := fileHeader("big.png", "image/png", MaxFileSizeBytes+1)
		err := validateUploadBatch([]*multipart.FileHeader{valid, big})
		require.NotNil(t, err)
		assert.Equal(t, "File too large", err.errMsg)
	})

	t.Run("file at size limit is accepted", func(t *testing.T) {
		atLimit := fileHeader("edge.png", "image/png", MaxFileSizeBytes)
		assert.Nil(t, validateUploadBatch([]*multipart.FileHeader{atLimit}))
	})

	t.Run("too many files", func(t *testing.T) {
		files := make([]*multipart.FileHeader, MaxUploadFiles+1)
		for i := range files {
			files[i] = fileHeader("a.png", "image/png", 1024)
		}
		err := validateUploadBatch(files)
		require.NotNil(t, err)
		assert.Equal(t, "Too many files uploaded", err.errMsg)
	})
}

func TestBindingErrorDetails(t *testing.T) {
	req := dto.CreateSuperheroRequest{
		OriginDescription: "way too short",
	}
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)

	details := bindingErrorDetails(err)
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "nickname")
	assert.Contains(t, fields, "realName")
	assert.Contains(t, fields, "superpowers")
	assert.Contains(t, fields, "catchPhrase")
	assert.NotContains(t, fields, "originDescription")

	for _, d := range details {
		assert.NotEmpty(t, d.Message)
	}
}

func TestBindingErrorDetailsNonValidatorError(t *testing.T) {
	details := bindingErrorDetails(assert.AnError)
	require.Len(t, details, 1)
	assert.Equal(t, "request", details[0].Field)
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "nickname", lowerFirst("Nickname"))
	assert.Equal(t, "realName", lowerFirst("RealName"))
	assert.Equal(t, "", lowerFirst(""))
}

func TestToListItems(t *testing.T) {
	imgA := entity.SuperheroImage{ID: uuid.New(), Filename: "superhero-1-1.png", Path: "/uploads/superhero-1-1.png"}
	imgB := entity.SuperheroImage{ID: uuid.New(), Filename: "superhero-2-2.png", Path: "/uploads/superhero-2-2.png"}

	withImages := entity.Superhero{
		ID:       uuid.New(),
		Nickname: "Batman",
		Images:   []entity.SuperheroImage{imgA, imgB},
	}
	withoutImages := entity.Superhero{
		ID:       uuid.New(),
		Nickname: "Superman",
	}

	items := toListItems([]entity.Superhero{withImages, withoutImages})
	require.Len(t, items, 2)

	// The first (oldest) image becomes the thumbnail.
	require.NotNil(t, items[0].Image)
	assert.Equal(t, imgA.ID, items[0].Image.ID)
	assert.Equal(t, imgA.Path, items[0].Image.Path)

	assert.Nil(t, items[1].Image)
	assert.Equal(t, "Superman", items[1].Nickname)

	assert.Empty(t, toListItems(nil))
}

func TestToImageDetails(t *testing.T) {
	image := entity.SuperheroImage{
		ID:           uuid.New(),
		SuperheroID:  uuid.New(),
		Filename:     "superhero-1-1.png",
		OriginalName: "a.png",
		MimeType:     "image/png",
		Size:         123,
		Path:         "/uploads/superhero-1-1.png",
		CreatedAt:    time.Now(),
	}

	details := toImageDetails([]entity.SuperheroImage{image})
	require.Len(t, details, 1)
	assert.Equal(t, image.ID, details[0].ID)
	assert.Equal(t, "a.png", details[0].OriginalName)
	assert.Equal(t, "image/png", details[0].MimeType)
	assert.Equal(t, int64(123), details[0].Size)

	// The projection carries only the image's own fields.
	raw, err := json.Marshal(details[0])
	require.NoError(t, err)
	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.NotContains(t, keys, "superheroId")
	assert.NotContains(t, keys, "createdAt")

	assert.Empty(t, toImageDetails(nil))
}
