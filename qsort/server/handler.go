package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"znkr.io/quicksort/qsort/seq"
)

type handler struct {
	data atomic.Pointer[Dataset]
	mux  *http.ServeMux
}

func newHandler(ds *Dataset) *handler {
	h := &handler{mux: http.NewServeMux()}
	h.data.Store(ds)
	h.mux.HandleFunc("/", h.serveSorted)
	h.mux.HandleFunc("/search", h.serveSearch)
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
	case http.MethodHead:
	default:
		w.WriteHeader(http.StatusNotImplemented)
		return
	}
	h.mux.ServeHTTP(w, req)
}

// serveSorted writes the sorted values, one per line.
func (h *handler) serveSorted(w http.ResponseWriter, req *http.Request) {
	ds := h.data.Load()

	if req.URL.Path != "/" {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		if req.Method == http.MethodGet {
			w.Write([]byte("not found"))
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain;charset=utf-8")
	w.Header().Set("Last-Modified", ds.Loaded.UTC().Format(http.TimeFormat))
	w.Header().Set("X-Sequence-Length", strconv.Itoa(ds.Sorted.Len()))
	if req.Method == http.MethodHead {
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := seq.Write(w, ds.Sorted); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// serveSearch looks up the value given in the "v" query parameter and writes the index of the
// first value not less than it together with whether it was found.
func (h *handler) serveSearch(w http.ResponseWriter, req *http.Request) {
	ds := h.data.Load()

	q := req.URL.Query()
	if !q.Has("v") {
		http.Error(w, "missing query parameter v", http.StatusBadRequest)
		return
	}

	i, found, err := ds.Sorted.Search(q.Get("v"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain;charset=utf-8")
	if req.Method == http.MethodHead {
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "%d %v\n", i, found); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
