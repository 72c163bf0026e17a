package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

const defaultSeed = 42

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene name (e.g., "default")
	Width   int    // Image width; height follows the scene's aspect ratio
	Samples int    // Samples per pixel
	Depth   int    // Maximum bounce depth
	Seed    int64  // Seed for scene layout and sampling
	Upload  bool   // Also publish the PNG to S3
}

// parseRenderRequest reads render parameters from the query string. Unset
// samples and depth fall back to the scene's own sampling config.
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()

	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 16, 1920); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 0, 1, 1000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, 1, 100); err != nil {
		return nil, err
	}
	if req.Seed, err = parseSeedParam(query, defaultSeed); err != nil {
		return nil, err
	}
	if upload := query.Get("upload"); upload != "" {
		if req.Upload, err = strconv.ParseBool(upload); err != nil {
			return nil, fmt.Errorf("invalid upload: %s", upload)
		}
	}
	return req, nil
}

// newRaytracer builds the scene for req and a raytracer sized for it
func newRaytracer(req *RenderRequest, logger core.Logger) (*renderer.Raytracer, int, int, error) {
	sceneObj, err := scene.New(req.Scene, req.Seed)
	if err != nil {
		return nil, 0, 0, err
	}

	cameraConfig := sceneObj.CameraConfig
	cameraConfig.Width = req.Width
	width, height := cameraConfig.Width, cameraConfig.Height()

	sampling := sceneObj.SamplingConfig
	if req.Samples > 0 {
		sampling.SamplesPerPixel = req.Samples
	}
	if req.Depth > 0 {
		sampling.MaxDepth = req.Depth
	}

	raytracer := renderer.NewRaytracer(sceneObj, width, height, logger)
	raytracer.SetSamplingConfig(sampling)
	raytracer.SetSampler(core.NewSeededSampler(req.Seed))
	return raytracer, width, height, nil
}

// handleRender renders a scene and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if req.Upload && s.uploader == nil {
		writeError(w, http.StatusBadRequest, "upload requested but S3 is not configured")
		return
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	raytracer, width, height, err := newRaytracer(req, NewRenderLogger(renderID, log.Default()))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.renderMu.Lock()
	img, stats := raytracer.RenderPass()
	s.renderMu.Unlock()

	log.Printf("Render %s: %dx%d, %d spp in %v", renderID, width, height, stats.SamplesPerPixel, stats.Duration)

	data, err := output.EncodePNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Upload {
		key := fmt.Sprintf("%s/render_%d_%d.png", req.Scene, req.Seed, time.Now().Unix())
		if err := s.uploader.Upload(r.Context(), key, data, "image/png"); err != nil {
			log.Printf("Render %s upload failed: %v", renderID, err)
			writeError(w, http.StatusBadGateway, "upload failed")
			return
		}
		w.Header().Set("X-Upload-Key", key)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Render %s: writing response: %v", renderID, err)
	}
}
