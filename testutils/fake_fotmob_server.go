package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed fotmobdata
var fotmobdata embed.FS

type FakeFotMobServer struct {
	s *httptest.Server
}

func NewFakeFotMobServer() *FakeFotMobServer {
	r := chi.NewRouter()
	r.Get("/teams/{teamID}/squad/{teamName}", squadPageHandler)

	return &FakeFotMobServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeFotMobServer) Close() {
	f.s.Close()
}

func (f *FakeFotMobServer) URL() string {
	return f.s.URL
}

func squadPageHandler(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "734839" {
		servePage(w, "squad.html")
	} else {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not found"))
	}
}

func servePage(w http.ResponseWriter, name string) {
	b, err := fotmobdata.ReadFile(fmt.Sprintf("fotmobdata/%s", name))
	if err != nil {
		log.Printf("error reading fotmobdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
