package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxDocumentBytes caps how much of a content source is read
const maxDocumentBytes = 4 << 20

var (
	// ErrSource marks failures reaching or reading the content source
	ErrSource = errors.New("content source unavailable")
	// ErrDecode marks malformed JSON payloads
	ErrDecode = errors.New("content payload malformed")
)

// Loader fetches and decodes content documents
// Sources starting with http:// or https:// load over HTTP, anything else
// is treated as a filesystem path
type Loader struct {
	client *http.Client
	log    *slog.Logger
}

// NewLoader creates a loader with the given HTTP client and logger
// A nil client gets a default with a sane timeout
func NewLoader(client *http.Client, log *slog.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Loader{client: client, log: log}
}

// Load fetches, decodes, and validates a document from the source
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	start := time.Now()

	raw, err := l.read(ctx, source)
	if err != nil {
		l.log.Error("content load failed", "source", source, "error", err)
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		l.log.Error("content decode failed", "source", source, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := doc.Validate(); err != nil {
		l.log.Error("content validation failed", "source", source, "error", err)
		return nil, err
	}

	l.log.Info("content loaded",
		"source", source,
		"stats", len(doc.Stats),
		"features", len(doc.Features),
		"events", len(doc.Events),
		"elapsed", time.Since(start))
	return &doc, nil
}

// read pulls raw bytes from an HTTP URL or a file path
func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.readHTTP(ctx, source)
	}
	return l.readFile(source)
}

func (l *Loader) readHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrSource, resp.StatusCode, url)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	return raw, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	if len(raw) > maxDocumentBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrSource, path, maxDocumentBytes)
	}
	return raw, nil
}
