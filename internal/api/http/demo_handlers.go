package http

import (
	"net/http"
	"strconv"

	"github.com/mind-engage/mindengage-rounds/internal/demo"
)

// GET /demos/temperature?f=50
func TemperatureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := 32
		if s := r.URL.Query().Get("f"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				http.Error(w, "f must be an integer", http.StatusBadRequest)
				return
			}
			f = n
		}
		respondJSON(w, http.StatusOK, map[string]int{"fahrenheit": f, "celsius": demo.ToCelsius(f)})
	}
}
