// Package gcdserver serves a small web form that computes the greatest
// common divisor of the numbers submitted through it.
package gcdserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/gcd"
	"mandelbrot/misc"
)

const formPage = `
<title>GCD Calculator</title>
<form action="/gcd" method="post">
    <input type="text" name="n"/>
    <input type="text" name="m"/>
    <button type="submit">Compute GCD</button>
</form>
`

type Server struct {
	logger   bslogger.Logger
	settings Settings

	Mux *http.ServeMux
}

func NewServer(settings Settings) Server {
	server := Server{
		logger: bslogger.NewLogger("GcdServer", bslogger.Normal, nil),
		Mux:    http.NewServeMux(),
	}
	misc.CheckError(settings.Verify(), server.logger, misc.Fatal)
	server.settings = settings

	server.Mux.HandleFunc("/", server.GetForm)
	server.Mux.HandleFunc("/gcd", server.PostGcd)

	return server
}

// Run serves the form until the listener fails
func (s *Server) Run() error {
	s.logger.Infof("Server running at http://%s/", s.settings.Address)
	return http.ListenAndServe(s.settings.Address, s.Mux)
}

func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, formPage)
}

func (s *Server) PostGcd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, fmt.Sprintf("method %s not allowed on /gcd", r.Method), http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Error parsing form data: %s", err), http.StatusBadRequest)
		return
	}

	var numbers []uint64
	for _, name := range []string{"n", "m"} {
		values, ok := r.PostForm[name]
		if !ok {
			http.Error(w, fmt.Sprintf("form data has no %q parameter", name), http.StatusBadRequest)
			return
		}
		for _, unparsed := range values {
			number, err := strconv.ParseUint(unparsed, 10, 64)
			if err != nil || number == 0 {
				http.Error(w, fmt.Sprintf("Value for %q parameter not a positive number: %q", name, unparsed), http.StatusBadRequest)
				return
			}
			numbers = append(numbers, number)
		}
	}

	d := gcd.Fold(numbers)
	s.logger.Debugf("Computed gcd %d of %v", d, numbers)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "The greatest common divisor of the numbers %v is <b>%d</b>\n", numbers, d)
}
