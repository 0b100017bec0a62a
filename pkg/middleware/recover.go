package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type panicResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LogPanicMiddleware recupera panics dos handlers e responde 500 em JSON.
// Com debug ligado a mensagem do panic vai no corpo da resposta.
func LogPanicMiddleware(debug bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := make([]byte, 4096)
				stackSize := runtime.Stack(stack, false)

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(rec),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack[:stackSize]),
				}).Error("http: unhandled panic")

				message := "Something went wrong"
				if debug {
					message = fmt.Sprint(rec)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(panicResponse{
					Error:   "Internal server error",
					Message: message,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
