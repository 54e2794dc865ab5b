package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/attention"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/config"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAnalyzer returns a fixed set or error.
type stubAnalyzer struct {
	set attention.Set
	err error
}

func (a stubAnalyzer) Predict(context.Context, []byte, string) (attention.Set, error) {
	return a.set, a.err
}

var stubSet = attention.Set{
	{Order: 1, X: 10, Y: 10, Intensity: 0.9, Label: "logo"},
	{Order: 2, X: 90, Y: 90, Intensity: 0.2},
}

func newTestServer(t *testing.T, analyzer Analyzer) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{MaxUploadBytes: 1 << 20}
	return New(cfg, st, analyzer, nil), st
}

// uploadRequest builds a multipart POST with a real PNG payload.
func uploadRequest(t *testing.T, width, height int) *http.Request {
	t.Helper()
	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "product.png")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := fw.Write(img.Bytes()); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// createViaAPI uploads an image and returns the created analysis id.
func createViaAPI(t *testing.T, router *gin.Engine) int64 {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, 200, 100))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	return created.ID
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{set: stubSet})
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", w.Code)
	}
}

func TestCreateAnalysis(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{set: stubSet})
	router := srv.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, 200, 100))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		ID     int64         `json:"id"`
		Width  int           `json:"width"`
		Height int           `json:"height"`
		Points attention.Set `json:"points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.ID == 0 {
		t.Error("response has no id")
	}
	if created.Width != 200 || created.Height != 100 {
		t.Errorf("metrics = %dx%d, want 200x100", created.Width, created.Height)
	}
	if len(created.Points) != 2 || created.Points[0].Label != "logo" {
		t.Errorf("points = %+v", created.Points)
	}
}

func TestCreateAnalysisRejectsMissingFile(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{set: stubSet})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", nil)
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateAnalysisRejectsUndecodableImage(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{set: stubSet})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("image", "junk.bin")
	fw.Write([]byte("definitely not an image"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateAnalysisAnalyzerFailure(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{err: errors.New("endpoint down")})
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, uploadRequest(t, 50, 50))
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestGetAndListAndDelete(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{set: stubSet})
	router := srv.Router()
	createViaAPI(t, router)

	t.Run("get", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/999", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("get invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp struct {
			Count int `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding list: %v", err)
		}
		if resp.Count != 1 {
			t.Errorf("count = %d, want 1", resp.Count)
		}
	})

	t.Run("delete", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/analyses/1", nil))
		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/analyses/1", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", w.Code)
		}
	})
}

func TestRenderOverlay(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{set: stubSet})
	router := srv.Router()
	createViaAPI(t, router)

	for _, mode := range []string{"heatmap", "fogmap", "path"} {
		t.Run(mode, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
				"/api/v1/analyses/1/overlay?mode="+mode, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if got := w.Header().Get("Content-Type"); got != "image/png" {
				t.Errorf("Content-Type = %q, want image/png", got)
			}
			img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
			if err != nil {
				t.Fatalf("response is not a decodable PNG: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != 200 || b.Dy() != 100 {
				t.Errorf("overlay size = %dx%d, want the image's 200x100", b.Dx(), b.Dy())
			}
		})
	}

	t.Run("default mode is heatmap", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/1/overlay", nil))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/analyses/1/overlay?mode=sparkle", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("invalid set selector", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/analyses/1/overlay?set=tertiary", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("secondary set renders empty overlay", func(t *testing.T) {
		// No secondary set stored: heatmap over an empty set is valid
		// and fully transparent.
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/analyses/1/overlay?set=secondary", nil))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestBuildReport(t *testing.T) {
	srv, _ := newTestServer(t, stubAnalyzer{set: stubSet})
	router := srv.Router()
	createViaAPI(t, router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/1/report", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var summary struct {
		PointCount    int     `json:"point_count"`
		MeanIntensity float64 `json:"mean_intensity"`
		Points        []struct {
			Label string `json:"label"`
		} `json:"points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if summary.PointCount != 2 {
		t.Errorf("point_count = %d, want 2", summary.PointCount)
	}
	if summary.Points[0].Label != "Logo" {
		t.Errorf("label = %q, want title-cased Logo", summary.Points[0].Label)
	}
}
