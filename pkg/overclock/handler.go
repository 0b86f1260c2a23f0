package overclock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Alrightsc/gtnh-flow/pkg/defaults"
	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
	"github.com/Alrightsc/gtnh-flow/pkg/header"
	"github.com/Alrightsc/gtnh-flow/pkg/machine"
	"github.com/Alrightsc/gtnh-flow/pkg/recipe"
	"github.com/Alrightsc/gtnh-flow/pkg/serializer"
	"github.com/Alrightsc/gtnh-flow/pkg/server"
	"github.com/Alrightsc/gtnh-flow/pkg/tier"
)

// QueryTier fills in user_voltage for request recipes that leave it empty.
const QueryTier = "tier"

// CatalogResponse is the body of GET /v1/machines.
type CatalogResponse struct {
	Machines    machine.Bindings     `json:"machines" yaml:"machines"`
	Coils       []machine.Coil       `json:"coils" yaml:"coils"`
	PipeCasings []machine.PipeCasing `json:"pipeCasings" yaml:"pipeCasings"`
}

// TiersResponse is the body of GET /v1/tiers.
type TiersResponse struct {
	Tiers tier.Infos `json:"tiers" yaml:"tiers"`
}

// HandleOverclock handles POST /v1/overclock. The body is a single recipe;
// the response is the overclocked recipe.
func (e *Engine) HandleOverclock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var rec recipe.Recipe
	if !decodeBody(w, r, &rec) {
		return
	}
	if t := r.URL.Query().Get(QueryTier); t != "" && rec.UserVoltage == "" {
		rec.UserVoltage = t
	}

	out, err := e.OverclockContext(r.Context(), &rec)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to overclock recipe", map[string]any{
			"recipe": rec.String(),
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, out)
}

// HandleBatch handles POST /v1/overclock/batch. The body is a recipe book;
// either every recipe is overclocked or the first failure is returned.
func (e *Engine) HandleBatch(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var book recipe.Book
	if !decodeBody(w, r, &book) {
		return
	}

	if !book.Kind.IsValid() {
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("Unsupported document kind %q", book.Kind), false, map[string]any{
				"kind": book.Kind.String(),
				"supported": []string{
					header.KindRecipeBook.String(),
					header.KindOverclockResult.String(),
				},
			})
		return
	}
	if len(book.Recipes) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			"Batch must contain at least one recipe", false, nil)
		return
	}
	if len(book.Recipes) > defaults.MaxBulkRequests {
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("Batch exceeds %d recipes", defaults.MaxBulkRequests), false, map[string]any{
				"count": len(book.Recipes),
				"limit": defaults.MaxBulkRequests,
			})
		return
	}
	if t := r.URL.Query().Get(QueryTier); t != "" {
		book.WithTier(t)
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.BatchHandlerTimeout)
	defer cancel()

	out, err := e.OverclockAll(ctx, book.Recipes, defaults.BatchParallelism)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to overclock batch", map[string]any{
			"count": len(book.Recipes),
		})
		return
	}

	result := &recipe.Book{Recipes: out}
	result.Stamp(e.version, r.URL.Query().Get(QueryTier))
	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleMachines handles GET /v1/machines. An optional family query
// parameter narrows the machine list.
func (e *Engine) HandleMachines(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	machines := e.catalog.Machines()
	if v := r.URL.Query().Get("family"); v != "" {
		f, err := machine.ParseFamily(v)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
				err.Error(), false, map[string]any{"family": v})
			return
		}
		filtered := make(machine.Bindings, 0, len(machines))
		for _, b := range machines {
			if b.Family == f {
				filtered = append(filtered, b)
			}
		}
		machines = filtered
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, CatalogResponse{
		Machines:    machines,
		Coils:       e.catalog.Coils,
		PipeCasings: e.catalog.PipeCasings,
	})
}

// HandleTiers handles GET /v1/tiers.
func (e *Engine) HandleTiers(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, TiersResponse{Tiers: tier.Table()})
}

// Handlers returns the engine's routes keyed by path.
func (e *Engine) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/overclock":       e.HandleOverclock,
		"/v1/overclock/batch": e.HandleBatch,
		"/v1/machines":        e.HandleMachines,
		"/v1/tiers":           e.HandleTiers,
	}
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	server.WriteError(w, r, http.StatusMethodNotAllowed, gterrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{method},
		})
	return false
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		server.WriteError(w, r, http.StatusUnsupportedMediaType, gterrors.ErrCodeInvalidRequest,
			"Content-Type must be application/json", false, map[string]any{"contentType": ct})
		return false
	}

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, gterrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"maxBytes": tooLarge.Limit})
			return false
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			server.WriteErrorFromErr(w, r, fieldTypeError(v, typeErr), "Invalid recipe field", map[string]any{
				"field": typeErr.Field,
			})
			return false
		}
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return false
	}
	return true
}

// fieldTypeError turns a JSON type mismatch into a configuration error naming
// the recipe key. The decoder keeps filling the remaining fields after a
// mismatch, so a single recipe still knows its machine.
func fieldTypeError(v any, typeErr *json.UnmarshalTypeError) error {
	key := typeErr.Field
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	machineName := "recipe book"
	if rec, ok := v.(*recipe.Recipe); ok {
		machineName = rec.Machine
	}
	return gterrors.Configuration(machineName, key,
		fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value))
}

func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(defaults.CatalogCacheTTL.Seconds())))
}
