// Package httpd implements the dbudgeteer HTTP service.
package httpd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/dwaki/dbudgeteer/log"
	"github.com/dwaki/dbudgeteer/spreadsheet"
)

// RangeReader is the API call layer used by the handlers.
type RangeReader interface {
	ReadRange(ctx context.Context, spreadsheetID string, area string) ([][]any, error)
}

type Server struct {
	reader      RangeReader
	spreadsheet string
	area        string
	console     io.Writer
	router      *mux.Router
}

type values struct {
	Spreadsheet string  `json:"spreadsheet"`
	Range       string  `json:"range"`
	Values      [][]any `json:"values"`
}

type failure struct {
	Error string `json:"error"`
}

func NewServer(reader RangeReader, spreadsheetID string, area string) *Server {
	s := Server{
		reader:      reader,
		spreadsheet: spreadsheetID,
		area:        area,
		console:     os.Stdout,
		router:      mux.NewRouter(),
	}

	s.setupRoutes()

	return &s
}

func (s *Server) setupRoutes() {
	s.router.Use(logging)

	s.router.HandleFunc("/test", s.handleTest).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, rq *http.Request) {
	s.router.ServeHTTP(w, rq)
}

// ListenAndServe runs the service on addr until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		log.With("httpd").Infof("listening on %v", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}

		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

func (s *Server) handleTest(w http.ResponseWriter, rq *http.Request) {
	rows, err := s.reader.ReadRange(rq.Context(), s.spreadsheet, s.area)
	if err != nil {
		log.With("httpd").Warnf("error reading %v from %v (%v)", s.area, s.spreadsheet, err)
		reply(w, status(err), failure{Error: err.Error()})
		return
	}

	for _, row := range rows {
		for _, cell := range row {
			fmt.Fprintln(s.console, cell)
		}
	}

	reply(w, http.StatusOK, values{
		Spreadsheet: s.spreadsheet,
		Range:       s.area,
		Values:      rows,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, rq *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok\n")
}

func status(err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, spreadsheet.ErrInvalidRange):
		return http.StatusBadRequest

	case errors.Is(err, spreadsheet.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, spreadsheet.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusBadGateway
	}
}

func reply(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, rq)

		log.With("httpd").Debugf("%v %v (%v)", rq.Method, rq.URL.Path, time.Since(start))
	})
}
