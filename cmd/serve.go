package cmd

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/engrave/log"
	"github.com/jsphweid/engrave/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves note resolution over HTTP",
	Long:  `Serves note resolution over HTTP for overlay features running in a browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.HTTP.Printf("listening on %s\n", cfg.Addr)
		return http.ListenAndServe(cfg.Addr, Router())
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var input model.ResolveRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := ResolveNote(input)
	if err != nil {
		log.HTTP.Printf("resolve %q: %v\n", input.Pitch, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	return cors.Default().Handler(router)
}
