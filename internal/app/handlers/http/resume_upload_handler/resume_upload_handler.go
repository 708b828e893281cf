package resume_upload_handler

import (
	"io"
	"log"
	"net/http"

	httpError "github.com/IT-Nick/interview-assistant/pkg/http"
)

// maxUploadSize ограничение на размер файла резюме
const maxUploadSize = 10 << 20

// ResumeUploadHandler принимает файл резюме. Содержимое не разбирается и не сохраняется.
type ResumeUploadHandler struct{}

func NewResumeUploadHandler() *ResumeUploadHandler {
	return &ResumeUploadHandler{}
}

func (h *ResumeUploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	n, err := io.Copy(io.Discard, file)
	if err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Failed to read file")
		return
	}
	log.Printf("Resume %q received (%d bytes), ignored", header.Filename, n)

	httpError.JSONResponse(w, http.StatusAccepted, map[string]any{
		"filename": header.Filename,
		"size":     n,
	})
}
