package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// withSuccess flattens a job summary into a response object with a leading
// success flag.
func withSuccess(result any) map[string]any {
	out := map[string]any{"success": true}
	raw, err := json.Marshal(result)
	if err != nil {
		return out
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func errInvalidDate(value string) error {
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}
