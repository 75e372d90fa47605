package universities_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/internal/universities"
	"github.com/JaimeStill/scholar/pkg/logging"
	"github.com/JaimeStill/scholar/pkg/routes"
)

func TestHandler_SmallPhotoRoute(t *testing.T) {
	sys, _ := newSystem()
	h := universities.NewHandler(sys, logging.Discard(), testPagination, files.Limits{MaxUploadSize: 1 << 20, MemoryBuffer: 1 << 16})

	rs := routes.New(logging.Discard())
	rs.RegisterGroup(h.Routes())
	srv := httptest.NewServer(rs.Build())
	defer srv.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("name", "KU Leuven")
	fw, _ := mw.CreateFormFile("small_photo", "thumb.jpeg")
	fw.Write([]byte("thumbnail"))
	mw.Close()

	resp, err := http.Post(srv.URL+"/universities", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", resp.StatusCode)
	}

	var created universities.University
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/universities/1/small-photo", http.StatusOK, "thumbnail"},
		{"/universities/1/photo", http.StatusNotFound, ""},
		{"/universities/2/small-photo", http.StatusNotFound, ""},
		{"/universities/x/photo", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantBody != "" {
				data, _ := io.ReadAll(resp.Body)
				if string(data) != tt.wantBody {
					t.Errorf("body = %q, want %q", data, tt.wantBody)
				}
			}
		})
	}
}
