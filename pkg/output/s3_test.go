package output

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type recordedPut struct {
	method      string
	path        string
	contentType string
	acl         string
	body        []byte
}

// newFakeS3 starts a server that accepts PutObject calls and records them
func newFakeS3(t *testing.T, status int) (*httptest.Server, func() []recordedPut) {
	t.Helper()
	var mu sync.Mutex
	var puts []recordedPut

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		puts = append(puts, recordedPut{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			acl:         r.Header.Get("X-Amz-Acl"),
			body:        body,
		})
		mu.Unlock()

		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
			return
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server, func() []recordedPut {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedPut(nil), puts...)
	}
}

func testS3Config(endpoint string) S3Config {
	return S3Config{
		AccessKey:  "test-access",
		SecretKey:  "test-secret",
		Endpoint:   endpoint,
		Region:     "us-east-1",
		Bucket:     "renders",
		DisableSSL: true,
	}
}

func TestUploader_UploadPNG(t *testing.T) {
	server, recorded := newFakeS3(t, http.StatusOK)

	config := testS3Config(server.URL)
	config.ACL = "public-read"
	uploader, err := NewUploader(config)
	if err != nil {
		t.Fatalf("NewUploader failed: %v", err)
	}

	if err := uploader.UploadPNG(context.Background(), "default/render.png", testImage(4, 4)); err != nil {
		t.Fatalf("UploadPNG failed: %v", err)
	}

	puts := recorded()
	if len(puts) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(puts))
	}
	put := puts[0]
	if put.method != http.MethodPut {
		t.Errorf("Expected PUT, got %s", put.method)
	}
	// Path-style addressing puts the bucket in the path
	if put.path != "/renders/default/render.png" {
		t.Errorf("Unexpected object path %s", put.path)
	}
	if put.contentType != "image/png" {
		t.Errorf("Expected image/png content type, got %s", put.contentType)
	}
	if put.acl != "public-read" {
		t.Errorf("Expected public-read ACL, got %q", put.acl)
	}
	if len(put.body) < 8 || string(put.body[1:4]) != "PNG" {
		t.Error("Uploaded body is not a PNG")
	}
}

func TestUploader_ErrorResponse(t *testing.T) {
	server, _ := newFakeS3(t, http.StatusForbidden)

	uploader, err := NewUploader(testS3Config(server.URL))
	if err != nil {
		t.Fatalf("NewUploader failed: %v", err)
	}

	err = uploader.Upload(context.Background(), "key.png", []byte("data"), "image/png")
	if err == nil {
		t.Fatal("Expected an error for a rejected upload")
	}
}

func TestNewUploader_RequiresBucket(t *testing.T) {
	if _, err := NewUploader(S3Config{}); err == nil {
		t.Error("Expected an error when no bucket is configured")
	}
}

func TestS3ConfigFromEnv(t *testing.T) {
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("S3_BUCKET", "bucket")
	t.Setenv("S3_ACL", "")

	config := S3ConfigFromEnv()
	if config.AccessKey != "ak" || config.SecretKey != "sk" {
		t.Errorf("Credentials not loaded: %+v", config)
	}
	if config.Endpoint != "http://localhost:9000" || config.Region != "eu-west-1" {
		t.Errorf("Endpoint/region not loaded: %+v", config)
	}
	if !config.Enabled() {
		t.Error("Expected config with a bucket to be enabled")
	}

	if (S3Config{}).Enabled() {
		t.Error("Expected empty config to be disabled")
	}
}
