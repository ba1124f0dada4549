package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	box "github.com/Delta456/box-cli-maker/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	flags "github.com/jessevdk/go-flags"

	"github.com/koblas/cmdmatch/internal/registry"
)

type dispatchRequest struct {
	Text string `json:"text"`
}

type dispatchResponse struct {
	Command  string              `json:"command"`
	Captures map[string][]string `json:"captures,omitempty"`
	Rest     string              `json:"rest,omitempty"`
	Matched  bool                `json:"matched"`
}

func loadRegistry(path string) (*registry.Registry, error) {
	defs, err := registry.LoadDefinitions(path)
	if err != nil {
		return nil, err
	}
	return registry.Build(defs)
}

func dispatchHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dispatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		name, caps, ok := reg.Dispatch(req.Text)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(dispatchResponse{Matched: false})
			return
		}

		values := make(map[string][]string, len(caps.Keys()))
		for _, k := range caps.Keys() {
			m, _ := caps.Get(k)
			values[k] = m.All()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dispatchResponse{
			Command:  name,
			Captures: values,
			Rest:     caps.Rest(),
			Matched:  true,
		})
	}
}

func main() {
	var opts struct {
		Version  bool   `short:"v" long:"version" description:"Display the current version of cmdmatchd"`
		Listen   string `short:"l" long:"listen" description:"Port to listen on" default:"8080"`
		Commands string `short:"c" long:"commands" description:"Path to the command definitions JSON file" default:"commands.json"`
		Debug    bool   `short:"d" long:"debug" description:"Shows debugging information"`
	}

	_, err := flags.Parse(&opts)
	if err != nil {
		if !flags.WroteHelp(err) {
			panic(err)
		}
		os.Exit(0)
	}

	if opts.Version {
		fmt.Printf("0.1.0\n")
		os.Exit(0)
	}

	reg, err := loadRegistry(opts.Commands)
	if err != nil {
		log.Fatal(err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Post("/dispatch", dispatchHandler(reg))

	bx := box.New(box.Config{Px: 4, Py: 1})
	lines := []string{
		fmt.Sprintf("- Local:       http://localhost:%s/dispatch", opts.Listen),
		fmt.Sprintf("- Commands:    %s", strings.Join(reg.Names(), ", ")),
	}
	bx.Println("cmdmatchd", strings.Join(lines, "\n"))

	server := http.Server{
		Addr:    fmt.Sprintf(":%s", opts.Listen),
		Handler: router,
	}
	log.Fatal(server.ListenAndServe())
}
