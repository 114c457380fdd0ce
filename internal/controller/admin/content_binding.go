package admin

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds spreadsheet uploads.
const maxUploadBytes = 10 << 20

func isMultipart(ctx *gin.Context) bool {
	return strings.HasPrefix(ctx.ContentType(), "multipart/form-data")
}

// bindContentForm reads the content half of a multipart create/replace form:
// input_type, text, manual (a JSON array), and the optional "file" upload for
// spreadsheets. A false return means the error response is already written.
func bindContentForm(ctx *gin.Context) (dto.ContentRequest, []byte, bool) {
	var req dto.ContentRequest
	req.InputType = ctx.PostForm("input_type")
	req.Text = ctx.PostForm("text")

	if manual := ctx.PostForm("manual"); manual != "" {
		if err := json.Unmarshal([]byte(manual), &req.Manual); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "manual field is not a valid JSON array", Code: dto.ErrCodeGeneric})
			return req, nil, false
		}
	}

	var file []byte
	if fh, err := ctx.FormFile("file"); err == nil {
		if fh.Size > maxUploadBytes {
			ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "file too large", Code: dto.ErrCodeGeneric})
			return req, nil, false
		}
		f, err := fh.Open()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read upload", Code: dto.ErrCodeGeneric})
			return req, nil, false
		}
		defer f.Close()
		file, err = io.ReadAll(f)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read upload", Code: dto.ErrCodeGeneric})
			return req, nil, false
		}
	}

	if req.InputType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "input_type is required", Code: dto.ErrCodeGeneric})
		return req, nil, false
	}
	return req, file, true
}

// bindContent accepts either a JSON ContentRequest body or a multipart form.
func bindContent(ctx *gin.Context) (dto.ContentRequest, []byte, bool) {
	if isMultipart(ctx) {
		return bindContentForm(ctx)
	}
	var req dto.ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return req, nil, false
	}
	return req, nil, true
}
