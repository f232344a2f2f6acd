package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/jey-uki/users-api/internal/api/validate"
)

type successBody struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type listBody struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

type messageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorBody struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Details []validate.ErrField `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, successBody{Success: true, Data: data})
}

func WriteList(w http.ResponseWriter, count int, data interface{}) {
	WriteJSON(w, http.StatusOK, listBody{Success: true, Count: count, Data: data})
}

func WriteMessage(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, messageBody{Success: true, Message: msg})
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Error: msg})
}

func WriteValidationError(w http.ResponseWriter, errs validate.Errs) {
	WriteJSON(w, http.StatusBadRequest, errorBody{Error: "Validation failed", Details: errs})
}
