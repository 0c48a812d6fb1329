// Package portal provides an in-memory registry portal for tests.
//
// It serves the registry endpoint over httptest, checks signatures of
// published entries the way a real portal does and keeps only the highest
// revision per key. Tests can tamper with stored entries or replace
// responses to exercise client-side verification.
package portal

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/tarantool/go-skynet"
	"github.com/tarantool/go-skynet/crypto"
	"github.com/tarantool/go-skynet/hasher"
)

// Path is the registry endpoint served by the portal.
const Path = "/skynet/registry"

// Entry is an entry as stored by the portal.
type Entry struct {
	Data      []byte
	Revision  uint64
	Signature []byte
}

// Request is a request received by the portal.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type rawResponse struct {
	status int
	body   string
}

// Portal is a thread-safe in-memory registry portal.
type Portal struct {
	server *httptest.Server

	mu       sync.Mutex
	entries  map[string]Entry
	requests []Request
	tamper   func(*Entry)
	override *rawResponse
}

// New starts a portal that is closed when the test finishes.
func New(t testing.TB) *Portal {
	t.Helper()

	p := &Portal{
		server:   nil,
		mu:       sync.Mutex{},
		entries:  make(map[string]Entry),
		requests: nil,
		tamper:   nil,
		override: nil,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+Path, p.handleGet)
	mux.HandleFunc("POST "+Path, p.handlePost)

	p.server = httptest.NewServer(p.record(mux))
	t.Cleanup(p.server.Close)

	return p
}

// URL returns the base URL of the portal.
func (p *Portal) URL() string {
	return p.server.URL
}

// Client returns a skynet client pointed at the portal.
func (p *Portal) Client(opts ...skynet.Option) *skynet.Client {
	opts = append([]skynet.Option{skynet.WithDoer(p.server.Client())}, opts...)

	return skynet.NewClient(p.server.URL, opts...)
}

func storageKey(publicKey crypto.PublicKey, dataKey string) string {
	return publicKey.Hex() + "/" + dataKey
}

// Entry returns the entry stored under publicKey and the hashed dataKey.
func (p *Portal) Entry(publicKey crypto.PublicKey, dataKey string) (Entry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[storageKey(publicKey, dataKey)]

	return entry, ok
}

// Put stores an entry without any checks.
func (p *Portal) Put(publicKey crypto.PublicKey, dataKey string, entry Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries[storageKey(publicKey, dataKey)] = entry
}

// Tamper makes lookups return entries modified by fn. Stored entries are
// left intact. A nil fn turns tampering off.
func (p *Portal) Tamper(fn func(*Entry)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tamper = fn
}

// RespondWith makes every following request get status and body as is.
func (p *Portal) RespondWith(status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.override = &rawResponse{status: status, body: body}
}

// Requests returns the requests received so far.
func (p *Portal) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]Request(nil), p.requests...)
}

func (p *Portal) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p.mu.Lock()
		p.requests = append(p.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		override := p.override
		p.mu.Unlock()

		if override != nil {
			w.WriteHeader(override.status)
			_, _ = io.WriteString(w, override.body)

			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

type getResponse struct {
	Data      string `json:"data"`
	Revision  uint64 `json:"revision"`
	Signature string `json:"signature"`
}

func (p *Portal) handleGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	publicKey, err := crypto.ParsePublicKey(query.Get("publickey"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := strconv.Atoi(query.Get("timeout")); err != nil {
		http.Error(w, "invalid timeout", http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	entry, ok := p.entries[storageKey(publicKey, query.Get("datakey"))]
	tamper := p.tamper
	p.mu.Unlock()

	if !ok {
		http.Error(w, "registry entry not found", http.StatusNotFound)
		return
	}

	entry.Data = append([]byte(nil), entry.Data...)
	entry.Signature = append([]byte(nil), entry.Signature...)

	if tamper != nil {
		tamper(&entry)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(getResponse{
		Data:      hex.EncodeToString(entry.Data),
		Revision:  entry.Revision,
		Signature: hex.EncodeToString(entry.Signature),
	})
}

type setRequest struct {
	PublicKey struct {
		Algorithm string           `json:"algorithm"`
		Key       crypto.ByteArray `json:"key"`
	} `json:"publickey"`
	DataKey   string           `json:"datakey"`
	Revision  uint64           `json:"revision"`
	Data      crypto.ByteArray `json:"data"`
	Signature crypto.ByteArray `json:"signature"`
}

func (p *Portal) handlePost(w http.ResponseWriter, r *http.Request) {
	var req setRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.PublicKey.Algorithm != crypto.AlgorithmEd25519.String() {
		http.Error(w, "unsupported algorithm", http.StatusBadRequest)
		return
	}

	publicKey, err := crypto.PublicKeyFromBytes(req.PublicKey.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	signature, err := crypto.SignatureFromBytes(req.Signature)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := verify(publicKey, req, signature); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := storageKey(publicKey, req.DataKey)

	p.mu.Lock()
	defer p.mu.Unlock()

	if current, ok := p.entries[key]; ok && req.Revision <= current.Revision {
		http.Error(w, fmt.Sprintf("revision %d is not greater than %d", req.Revision, current.Revision),
			http.StatusBadRequest)

		return
	}

	p.entries[key] = Entry{
		Data:      append([]byte(nil), req.Data...),
		Revision:  req.Revision,
		Signature: signature[:],
	}

	w.WriteHeader(http.StatusNoContent)
}

func verify(publicKey crypto.PublicKey, req setRequest, signature crypto.Signature) error {
	digest, err := hasher.Blake2bSum(crypto.HashSize,
		[]byte(req.DataKey), req.Data, []byte(strconv.FormatUint(req.Revision, 10)))
	if err != nil {
		return fmt.Errorf("failed to hash entry: %w", err)
	}

	var hash crypto.Hash

	copy(hash[:], digest)

	if !crypto.Verify(hash, publicKey, signature) {
		return fmt.Errorf("invalid signature for %s/%s", publicKey, req.DataKey)
	}

	return nil
}
